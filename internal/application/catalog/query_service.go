package catalog

import (
	"context"

	"github.com/catalog/backend/internal/domain/catalog"
	"github.com/catalog/backend/internal/domain/party"
	"github.com/catalog/backend/internal/infrastructure/telemetry"
)

// QueryService implements searchProduct against the catalog store. It
// only reads; it never mutates state.
type QueryService struct {
	store catalog.Repository
	views *assembler
}

// NewQueryService creates a new QueryService
func NewQueryService(store catalog.Repository, resolver *party.Resolver) *QueryService {
	return &QueryService{
		store: store,
		views: &assembler{store: store, resolver: resolver},
	}
}

// SearchProducts returns all products whose title or full title contains
// the query, case-insensitively, in insertion order. An empty query
// matches every product; no match yields an empty, non-nil result. The
// scan honors context cancellation and returns no partial results.
func (s *QueryService) SearchProducts(ctx context.Context, query string) ([]ProductView, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "catalog", "search_product",
		telemetry.WithAttribute("search.query", query))
	defer span.End()

	products, err := s.store.FindProducts(ctx, func(p *catalog.Product) bool {
		return p.Matches(query)
	})
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	views := make([]ProductView, 0, len(products))
	for _, product := range products {
		view, err := s.views.productView(ctx, product)
		if err != nil {
			telemetry.RecordError(span, err)
			return nil, err
		}
		views = append(views, view)
	}

	return views, nil
}
