package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/catalog/backend/internal/domain/catalog"
	"github.com/catalog/backend/internal/domain/party"
	"github.com/catalog/backend/internal/domain/shared"
	"github.com/catalog/backend/internal/domain/shared/valueobject"
	"github.com/catalog/backend/internal/infrastructure/telemetry"
)

// MutationService implements addProduct against the catalog store.
// Mutations are all-or-nothing: every nested value is validated before
// anything is written, and a failed upsert leaves the store unchanged.
type MutationService struct {
	store    catalog.Repository
	registry *shared.IdentityRegistry
	views    *assembler
}

// NewMutationService creates a new MutationService
func NewMutationService(store catalog.Repository, registry *shared.IdentityRegistry, resolver *party.Resolver) *MutationService {
	return &MutationService{
		store:    store,
		registry: registry,
		views:    &assembler{store: store, resolver: resolver},
	}
}

// AddProduct inserts or updates the product named by the input
// identifier and returns the post-mutation state of the affected
// product(s). Supplied fields replace the stored values wholesale;
// omitted fields keep the prior values. A brand-new product requires a
// title.
func (s *MutationService) AddProduct(ctx context.Context, input AddProductInput) ([]ProductView, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "catalog", "add_product",
		telemetry.WithAttribute("product.id", input.ID))
	defer span.End()

	views, err := s.addProduct(ctx, input)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}
	return views, nil
}

func (s *MutationService) addProduct(ctx context.Context, input AddProductInput) ([]ProductView, error) {
	id := strings.TrimSpace(input.ID)
	if id == "" {
		return nil, shared.NewDomainError(shared.ErrInvalidProduct.Code, "product id cannot be empty")
	}

	product, err := s.baseProduct(ctx, id, input.Title)
	if err != nil {
		return nil, err
	}
	if input.Title != nil {
		if err := product.Rename(*input.Title); err != nil {
			return nil, err
		}
	}
	if input.FullTitle != nil {
		product.SetFullTitle(input.FullTitle)
	}

	agg := catalog.ProductAggregate{Product: product}

	if input.Vendors != nil {
		vendors, vendorIDs, err := s.buildVendors(ctx, input.Vendors)
		if err != nil {
			return nil, err
		}
		agg.Vendors = vendors
		product.SetVendors(vendorIDs)
	}

	if input.Offers != nil {
		offers, offerIDs, err := s.buildOffers(input.Offers)
		if err != nil {
			return nil, err
		}
		agg.Offers = offers
		product.SetOffers(offerIDs)
	}

	stored, err := s.store.UpsertProduct(ctx, agg)
	if err != nil {
		return nil, err
	}

	view, err := s.views.productView(ctx, stored)
	if err != nil {
		return nil, err
	}
	return []ProductView{view}, nil
}

// baseProduct loads the existing product for an upsert, or creates a
// fresh one when the identifier is unknown.
func (s *MutationService) baseProduct(ctx context.Context, id string, title *string) (*catalog.Product, error) {
	existing, err := s.store.FindProduct(ctx, id)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}
	if title == nil {
		return nil, shared.NewDomainError(shared.ErrInvalidProduct.Code,
			fmt.Sprintf("product %q does not exist and no title was supplied", id))
	}
	return catalog.NewProduct(id, *title)
}

func (s *MutationService) buildVendors(ctx context.Context, inputs []VendorInput) ([]*catalog.Vendor, []string, error) {
	vendors := make([]*catalog.Vendor, 0, len(inputs))
	vendorIDs := make([]string, 0, len(inputs))

	for _, in := range inputs {
		id := ""
		if in.ID != nil {
			id = strings.TrimSpace(*in.ID)
		}

		if in.Title == nil {
			// Reference to an already-stored vendor.
			if id == "" {
				return nil, nil, shared.NewDomainError(shared.ErrInvalidProduct.Code,
					"vendor reference needs an id or a title")
			}
			if _, err := s.store.FindVendor(ctx, id); err != nil {
				return nil, nil, err
			}
			vendorIDs = append(vendorIDs, id)
			continue
		}

		vendor, err := catalog.NewVendor(id, *in.Title)
		if err != nil {
			return nil, nil, err
		}
		vendors = append(vendors, vendor)
		vendorIDs = append(vendorIDs, vendor.ID)
	}

	return vendors, vendorIDs, nil
}

func (s *MutationService) buildOffers(inputs []OfferInput) ([]*catalog.Offer, []string, error) {
	offers := make([]*catalog.Offer, 0, len(inputs))
	offerIDs := make([]string, 0, len(inputs))

	for _, in := range inputs {
		if err := s.checkSeller(in.SellerID); err != nil {
			return nil, nil, err
		}

		prices := make([]catalog.Price, 0, len(in.Prices))
		for _, priceIn := range in.Prices {
			price, err := buildPrice(priceIn)
			if err != nil {
				return nil, nil, err
			}
			prices = append(prices, *price)
		}

		id := ""
		if in.ID != nil {
			id = strings.TrimSpace(*in.ID)
		}
		offer, err := catalog.NewOffer(id, in.SellerID, prices)
		if err != nil {
			return nil, nil, err
		}
		offers = append(offers, offer)
		offerIDs = append(offerIDs, offer.ID)
	}

	return offers, offerIDs, nil
}

// checkSeller verifies the weak seller reference points at a registered
// legal entity before the offer is accepted.
func (s *MutationService) checkSeller(sellerID string) error {
	sellerID = strings.TrimSpace(sellerID)
	if sellerID == "" {
		return shared.NewDomainError(shared.ErrInvalidProduct.Code, "offer seller cannot be empty")
	}
	kind, err := s.registry.Resolve(sellerID)
	if err != nil {
		return err
	}
	if kind != shared.KindPerson && kind != shared.KindCompany {
		return shared.NewDomainError(shared.ErrAmbiguousLegalEntity.Code,
			fmt.Sprintf("seller %q is registered as %s, not a legal entity", sellerID, kind))
	}
	return nil
}

func buildPrice(in PriceInput) (*catalog.Price, error) {
	opts := make([]catalog.PriceOption, 0, 3)
	if in.Header != nil {
		opts = append(opts, catalog.WithHeader(*in.Header))
	}
	if in.Description != nil {
		opts = append(opts, catalog.WithDescription(*in.Description))
	}
	if in.Price != nil {
		money, err := valueobject.NewMoney(in.Price.CurrencyCode, in.Price.Units, in.Price.Nanos)
		if err != nil {
			return nil, err
		}
		opts = append(opts, catalog.WithAmount(money))
	}

	id := ""
	if in.ID != nil {
		id = strings.TrimSpace(*in.ID)
	}
	return catalog.NewPrice(id, in.Type, opts...)
}
