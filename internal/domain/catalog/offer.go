package catalog

import (
	"strings"

	"github.com/catalog/backend/internal/domain/shared"
)

// Offer binds a seller to a sequence of prices. The seller is a weak
// reference to a legal entity (person or company) held by the party
// registry; prices are owned by the offer.
type Offer struct {
	shared.BaseEntity
	SellerID string
	Prices   []Price
}

// NewOffer creates a new offer. Exactly one seller reference is
// required; the price sequence is required but may be empty.
func NewOffer(id, sellerID string, prices []Price) (*Offer, error) {
	sellerID = strings.TrimSpace(sellerID)
	if sellerID == "" {
		return nil, shared.NewDomainError(shared.ErrInvalidProduct.Code, "offer seller cannot be empty")
	}
	if prices == nil {
		prices = []Price{}
	}
	return &Offer{
		BaseEntity: shared.NewBaseEntity(id),
		SellerID:   sellerID,
		Prices:     prices,
	}, nil
}

// Clone returns a deep copy of the offer
func (o *Offer) Clone() *Offer {
	clone := *o
	clone.Prices = make([]Price, len(o.Prices))
	for i, price := range o.Prices {
		clone.Prices[i] = *price.Clone()
	}
	return &clone
}
