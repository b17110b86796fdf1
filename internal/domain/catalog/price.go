package catalog

import (
	"strings"

	"github.com/catalog/backend/internal/domain/shared"
	"github.com/catalog/backend/internal/domain/shared/valueobject"
)

// Price is a priced position of an offer. The type tag is required and
// free-form; header, description and the monetary amount are optional.
type Price struct {
	shared.BaseEntity
	Type        string
	Header      *string
	Description *string
	Price       *valueobject.Money
}

// PriceOption is a functional option for configuring Price
type PriceOption func(*Price)

// WithHeader sets the display header
func WithHeader(header string) PriceOption {
	return func(p *Price) {
		p.Header = &header
	}
}

// WithDescription sets the display description
func WithDescription(description string) PriceOption {
	return func(p *Price) {
		p.Description = &description
	}
}

// WithAmount sets the monetary amount
func WithAmount(amount valueobject.Money) PriceOption {
	return func(p *Price) {
		p.Price = &amount
	}
}

// NewPrice creates a new price. The type tag is required; a missing tag
// fails the enclosing product mutation.
func NewPrice(id, priceType string, opts ...PriceOption) (*Price, error) {
	priceType = strings.TrimSpace(priceType)
	if priceType == "" {
		return nil, shared.NewDomainError(shared.ErrInvalidProduct.Code, "price type cannot be empty")
	}
	price := &Price{
		BaseEntity: shared.NewBaseEntity(id),
		Type:       priceType,
	}
	for _, opt := range opts {
		opt(price)
	}
	return price, nil
}

// Clone returns a deep copy of the price
func (p *Price) Clone() *Price {
	clone := *p
	if p.Header != nil {
		header := *p.Header
		clone.Header = &header
	}
	if p.Description != nil {
		description := *p.Description
		clone.Description = &description
	}
	if p.Price != nil {
		amount := *p.Price
		clone.Price = &amount
	}
	return &clone
}
