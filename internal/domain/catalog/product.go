package catalog

import (
	"slices"
	"strings"

	"github.com/catalog/backend/internal/domain/shared"
)

// Product is the aggregate root of the catalog. Vendors and offers are
// held as ordered identifier references; the catalog store owns the
// referenced entities.
type Product struct {
	shared.BaseEntity
	Title     string
	FullTitle *string
	VendorIDs []string
	OfferIDs  []string
}

// NewProduct creates a new product. The title is required.
func NewProduct(id, title string) (*Product, error) {
	if err := validateTitle(title); err != nil {
		return nil, err
	}
	return &Product{
		BaseEntity: shared.NewBaseEntity(id),
		Title:      strings.TrimSpace(title),
	}, nil
}

// Rename replaces the product title
func (p *Product) Rename(title string) error {
	if err := validateTitle(title); err != nil {
		return err
	}
	p.Title = strings.TrimSpace(title)
	p.Touch()
	return nil
}

// SetFullTitle replaces the optional long title; nil clears it
func (p *Product) SetFullTitle(fullTitle *string) {
	p.FullTitle = fullTitle
	p.Touch()
}

// SetVendors replaces the ordered vendor references wholesale
func (p *Product) SetVendors(vendorIDs []string) {
	p.VendorIDs = slices.Clone(vendorIDs)
	p.Touch()
}

// SetOffers replaces the ordered offer references wholesale
func (p *Product) SetOffers(offerIDs []string) {
	p.OfferIDs = slices.Clone(offerIDs)
	p.Touch()
}

// Matches reports whether the query is a case-insensitive substring of
// the title or the full title. An empty query matches every product.
func (p *Product) Matches(query string) bool {
	if query == "" {
		return true
	}
	query = strings.ToLower(query)
	if strings.Contains(strings.ToLower(p.Title), query) {
		return true
	}
	return p.FullTitle != nil && strings.Contains(strings.ToLower(*p.FullTitle), query)
}

// Clone returns a deep copy of the product
func (p *Product) Clone() *Product {
	clone := *p
	clone.VendorIDs = slices.Clone(p.VendorIDs)
	clone.OfferIDs = slices.Clone(p.OfferIDs)
	if p.FullTitle != nil {
		fullTitle := *p.FullTitle
		clone.FullTitle = &fullTitle
	}
	return &clone
}

func validateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return shared.NewDomainError(shared.ErrInvalidProduct.Code, "product title cannot be empty")
	}
	return nil
}
