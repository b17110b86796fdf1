// Package memory provides the authoritative in-memory store backing the
// catalog and party repositories. Durable persistence is a pluggable
// collaborator behind the same repository contracts.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/catalog/backend/internal/domain/catalog"
	"github.com/catalog/backend/internal/domain/shared"
)

// CatalogStore is the in-memory catalog.Repository implementation. It
// owns all product, vendor, offer and price instances; a single RWMutex
// guards the maps, and validation happens before the lock so the write
// critical section is only the registry batch plus the map writes.
// Readers therefore never observe a partially-updated aggregate.
type CatalogStore struct {
	mu       sync.RWMutex
	registry *shared.IdentityRegistry

	products map[string]*catalog.Product
	vendors  map[string]*catalog.Vendor
	offers   map[string]*catalog.Offer
	prices   map[string]*catalog.Price

	// order preserves product insertion order for deterministic search
	order []string
}

// NewCatalogStore creates an empty store registering identifiers in the
// given registry. The registry is shared with the party store so that a
// single identifier space spans all entity kinds.
func NewCatalogStore(registry *shared.IdentityRegistry) *CatalogStore {
	return &CatalogStore{
		registry: registry,
		products: make(map[string]*catalog.Product),
		vendors:  make(map[string]*catalog.Vendor),
		offers:   make(map[string]*catalog.Offer),
		prices:   make(map[string]*catalog.Price),
	}
}

// UpsertProduct atomically inserts or replaces the aggregate. The
// identifier batch is registered all-or-nothing first; a kind conflict
// leaves both the registry and the store unchanged.
func (s *CatalogStore) UpsertProduct(ctx context.Context, agg catalog.ProductAggregate) (*catalog.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if agg.Product == nil {
		return nil, shared.NewDomainError(shared.ErrInvalidProduct.Code, "product aggregate is empty")
	}

	regs := []shared.Registration{{ID: agg.Product.ID, Kind: shared.KindProduct}}
	for _, vendor := range agg.Vendors {
		regs = append(regs, shared.Registration{ID: vendor.ID, Kind: shared.KindVendor})
	}
	for _, offer := range agg.Offers {
		regs = append(regs, shared.Registration{ID: offer.ID, Kind: shared.KindOffer})
		for i := range offer.Prices {
			regs = append(regs, shared.Registration{ID: offer.Prices[i].ID, Kind: shared.KindPrice})
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.registry.RegisterAll(regs); err != nil {
		return nil, err
	}

	if _, exists := s.products[agg.Product.ID]; !exists {
		s.order = append(s.order, agg.Product.ID)
	}
	s.products[agg.Product.ID] = agg.Product.Clone()
	for _, vendor := range agg.Vendors {
		s.vendors[vendor.ID] = vendor.Clone()
	}
	for _, offer := range agg.Offers {
		stored := offer.Clone()
		s.offers[offer.ID] = stored
		for i := range stored.Prices {
			s.prices[stored.Prices[i].ID] = &stored.Prices[i]
		}
	}

	return agg.Product.Clone(), nil
}

// FindProduct returns a copy of the product with the given id
func (s *CatalogStore) FindProduct(ctx context.Context, id string) (*catalog.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	product, ok := s.products[id]
	if !ok {
		return nil, shared.NewDomainError(shared.ErrNotFound.Code, fmt.Sprintf("product %q not found", id))
	}
	return product.Clone(), nil
}

// FindProducts returns copies of all matching products in insertion
// order. Cancellation aborts the scan; no partial result is returned.
func (s *CatalogStore) FindProducts(ctx context.Context, predicate func(*catalog.Product) bool) ([]*catalog.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matches := make([]*catalog.Product, 0)
	for _, id := range s.order {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		product := s.products[id]
		if predicate == nil || predicate(product) {
			matches = append(matches, product.Clone())
		}
	}
	return matches, nil
}

// FindVendor returns a copy of the vendor with the given id
func (s *CatalogStore) FindVendor(ctx context.Context, id string) (*catalog.Vendor, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	vendor, ok := s.vendors[id]
	if !ok {
		return nil, shared.NewDomainError(shared.ErrNotFound.Code, fmt.Sprintf("vendor %q not found", id))
	}
	return vendor.Clone(), nil
}

// FindOffer returns a copy of the offer with the given id
func (s *CatalogStore) FindOffer(ctx context.Context, id string) (*catalog.Offer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	offer, ok := s.offers[id]
	if !ok {
		return nil, shared.NewDomainError(shared.ErrNotFound.Code, fmt.Sprintf("offer %q not found", id))
	}
	return offer.Clone(), nil
}
