package catalog

import "context"

// ProductAggregate bundles a product with the vendors and offers it
// references, as assembled for a single atomic upsert.
type ProductAggregate struct {
	Product *Product
	Vendors []*Vendor
	Offers  []*Offer
}

// Repository is the contract of the authoritative catalog store. A
// durable backing store can replace the in-memory implementation behind
// this interface; durability itself is outside the core.
type Repository interface {
	// UpsertProduct atomically inserts or replaces the aggregate,
	// registering every newly-referenced identifier. A failed upsert
	// leaves the store unchanged.
	UpsertProduct(ctx context.Context, agg ProductAggregate) (*Product, error)

	// FindProduct returns a copy of the product with the given id
	FindProduct(ctx context.Context, id string) (*Product, error)

	// FindProducts returns copies of all products matching the
	// predicate, in insertion order. The result is finite and
	// restartable; cancellation aborts the scan without partial results.
	FindProducts(ctx context.Context, predicate func(*Product) bool) ([]*Product, error)

	// FindVendor returns a copy of the vendor with the given id
	FindVendor(ctx context.Context, id string) (*Vendor, error)

	// FindOffer returns a copy of the offer with the given id
	FindOffer(ctx context.Context, id string) (*Offer, error)
}
