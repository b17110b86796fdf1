package catalog

import (
	"github.com/catalog/backend/internal/domain/catalog"
	"github.com/catalog/backend/internal/domain/shared/valueobject"
)

// AddProductInput is the upsert request for a product. The identifier is
// the only required field; a supplied field replaces the stored value
// wholesale, an omitted (nil) field keeps the prior value.
type AddProductInput struct {
	ID        string        `json:"id"`
	Title     *string       `json:"title"`
	FullTitle *string       `json:"fullTitle"`
	Vendors   []VendorInput `json:"vendors"`
	Offers    []OfferInput  `json:"offers"`
}

// VendorInput names a vendor of a product. A title creates or replaces
// the vendor; an id without a title references an existing vendor.
type VendorInput struct {
	ID    *string `json:"id"`
	Title *string `json:"title"`
}

// OfferInput describes an offer of a product
type OfferInput struct {
	ID       *string      `json:"id"`
	SellerID string       `json:"seller"`
	Prices   []PriceInput `json:"prices"`
}

// PriceInput describes a priced position of an offer
type PriceInput struct {
	ID          *string     `json:"id"`
	Type        string      `json:"type"`
	Header      *string     `json:"header"`
	Description *string     `json:"description"`
	Price       *MoneyInput `json:"price"`
}

// MoneyInput is the transport form of a monetary amount
type MoneyInput struct {
	CurrencyCode string `json:"currencyCode"`
	Units        int64  `json:"units"`
	Nanos        int32  `json:"nanos"`
}

// ProductView is a product in query and mutation responses, with vendor
// and offer references resolved.
type ProductView struct {
	ID        string       `json:"id"`
	Title     string       `json:"title"`
	FullTitle *string      `json:"fullTitle,omitempty"`
	Vendors   []VendorView `json:"vendors"`
	Offers    []OfferView  `json:"offers"`
}

// VendorView is a vendor in responses
type VendorView struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// OfferView is an offer in responses, with the seller resolved to its
// concrete legal-entity variant.
type OfferView struct {
	ID     string          `json:"id"`
	Seller LegalEntityView `json:"seller"`
	Prices []PriceView     `json:"prices"`
}

// LegalEntityView carries exactly one of the two variants
type LegalEntityView struct {
	Kind    string       `json:"kind"`
	Person  *PersonView  `json:"person,omitempty"`
	Company *CompanyView `json:"company,omitempty"`
}

// PersonView is the person variant in responses
type PersonView struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// CompanyView is the company variant in responses
type CompanyView struct {
	ID            string                  `json:"id"`
	Title         string                  `json:"title"`
	FullTitle     *string                 `json:"fullTitle,omitempty"`
	StatutorySeat *valueobject.AddressDTO `json:"statutorySeat,omitempty"`
	Address       *valueobject.AddressDTO `json:"address,omitempty"`
	Notes         []string                `json:"notes,omitempty"`
}

// PriceView is a price in responses
type PriceView struct {
	ID          string     `json:"id"`
	Type        string     `json:"type"`
	Header      *string    `json:"header,omitempty"`
	Description *string    `json:"description,omitempty"`
	Price       *MoneyView `json:"price,omitempty"`
}

// MoneyView is a monetary amount in responses
type MoneyView struct {
	CurrencyCode string `json:"currencyCode,omitempty"`
	Units        int64  `json:"units"`
	Nanos        int32  `json:"nanos"`
}

func toMoneyView(m valueobject.Money) MoneyView {
	return MoneyView{
		CurrencyCode: m.CurrencyCode(),
		Units:        m.Units(),
		Nanos:        m.Nanos(),
	}
}

func toPriceView(p catalog.Price) PriceView {
	view := PriceView{
		ID:          p.ID,
		Type:        p.Type,
		Header:      p.Header,
		Description: p.Description,
	}
	if p.Price != nil {
		money := toMoneyView(*p.Price)
		view.Price = &money
	}
	return view
}
