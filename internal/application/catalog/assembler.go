package catalog

import (
	"context"

	"github.com/catalog/backend/internal/domain/catalog"
	"github.com/catalog/backend/internal/domain/party"
)

// assembler builds response views, resolving vendor and offer references
// through the store and seller references through the legal-entity
// resolver.
type assembler struct {
	store    catalog.Repository
	resolver *party.Resolver
}

func (a *assembler) productView(ctx context.Context, product *catalog.Product) (ProductView, error) {
	view := ProductView{
		ID:        product.ID,
		Title:     product.Title,
		FullTitle: product.FullTitle,
		Vendors:   make([]VendorView, 0, len(product.VendorIDs)),
		Offers:    make([]OfferView, 0, len(product.OfferIDs)),
	}

	for _, vendorID := range product.VendorIDs {
		vendor, err := a.store.FindVendor(ctx, vendorID)
		if err != nil {
			return ProductView{}, err
		}
		view.Vendors = append(view.Vendors, VendorView{ID: vendor.ID, Title: vendor.Title})
	}

	for _, offerID := range product.OfferIDs {
		offer, err := a.store.FindOffer(ctx, offerID)
		if err != nil {
			return ProductView{}, err
		}
		offerView, err := a.offerView(ctx, offer)
		if err != nil {
			return ProductView{}, err
		}
		view.Offers = append(view.Offers, offerView)
	}

	return view, nil
}

func (a *assembler) offerView(ctx context.Context, offer *catalog.Offer) (OfferView, error) {
	seller, err := a.resolver.Resolve(ctx, offer.SellerID)
	if err != nil {
		return OfferView{}, err
	}

	view := OfferView{
		ID:     offer.ID,
		Seller: toLegalEntityView(seller),
		Prices: make([]PriceView, 0, len(offer.Prices)),
	}
	for _, price := range offer.Prices {
		view.Prices = append(view.Prices, toPriceView(price))
	}
	return view, nil
}

// toLegalEntityView exposes only the fields of the resolved variant
func toLegalEntityView(entity party.LegalEntity) LegalEntityView {
	if person, ok := entity.Person(); ok {
		return LegalEntityView{
			Kind:   string(entity.Kind()),
			Person: &PersonView{ID: person.ID, Title: person.Title},
		}
	}
	company, _ := entity.Company()
	view := CompanyView{
		ID:        company.ID,
		Title:     company.Title,
		FullTitle: company.FullTitle,
		Notes:     company.Notes,
	}
	if company.StatutorySeat != nil {
		dto := company.StatutorySeat.ToDTO()
		view.StatutorySeat = &dto
	}
	if company.Address != nil {
		dto := company.Address.ToDTO()
		view.Address = &dto
	}
	return LegalEntityView{
		Kind:    string(entity.Kind()),
		Company: &view,
	}
}
