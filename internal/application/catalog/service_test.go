package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/catalog/backend/internal/domain/party"
	"github.com/catalog/backend/internal/domain/shared"
	"github.com/catalog/backend/internal/infrastructure/persistence/memory"
)

type fixture struct {
	registry  *shared.IdentityRegistry
	store     *memory.CatalogStore
	parties   *memory.PartyStore
	queries   *QueryService
	mutations *MutationService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	registry := shared.NewIdentityRegistry()
	store := memory.NewCatalogStore(registry)
	parties := memory.NewPartyStore(registry)
	resolver := party.NewResolver(registry, parties)
	return &fixture{
		registry:  registry,
		store:     store,
		parties:   parties,
		queries:   NewQueryService(store, resolver),
		mutations: NewMutationService(store, registry, resolver),
	}
}

func (f *fixture) seedPerson(t *testing.T, id, title string) {
	t.Helper()
	person, err := party.NewPerson(id, title)
	require.NoError(t, err)
	require.NoError(t, f.parties.SavePerson(context.Background(), person))
}

func (f *fixture) seedCompany(t *testing.T, id, title string) {
	t.Helper()
	company, err := party.NewCompany(id, title)
	require.NoError(t, err)
	require.NoError(t, f.parties.SaveCompany(context.Background(), company))
}

func strPtr(s string) *string { return &s }

func TestMutationServiceAddProduct(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a product from a full input", func(t *testing.T) {
		f := newFixture(t)
		f.seedPerson(t, "hans", "Hans Muster")

		views, err := f.mutations.AddProduct(ctx, AddProductInput{
			ID:        "p1",
			Title:     strPtr("Widget"),
			FullTitle: strPtr("Industrial Widget"),
			Vendors:   []VendorInput{{ID: strPtr("v1"), Title: strPtr("Distributor AG")}},
			Offers: []OfferInput{{
				ID:       strPtr("o1"),
				SellerID: "hans",
				Prices: []PriceInput{{
					Type:  "retail",
					Price: &MoneyInput{CurrencyCode: "USD", Units: 19, Nanos: 990_000_000},
				}},
			}},
		})
		require.NoError(t, err)
		require.Len(t, views, 1)

		view := views[0]
		assert.Equal(t, "p1", view.ID)
		assert.Equal(t, "Widget", view.Title)
		require.NotNil(t, view.FullTitle)
		assert.Equal(t, "Industrial Widget", *view.FullTitle)
		require.Len(t, view.Vendors, 1)
		assert.Equal(t, "Distributor AG", view.Vendors[0].Title)
		require.Len(t, view.Offers, 1)
		require.NotNil(t, view.Offers[0].Seller.Person)
		assert.Equal(t, "Hans Muster", view.Offers[0].Seller.Person.Title)
		assert.Nil(t, view.Offers[0].Seller.Company)
		require.Len(t, view.Offers[0].Prices, 1)
		require.NotNil(t, view.Offers[0].Prices[0].Price)
		assert.Equal(t, int64(19), view.Offers[0].Prices[0].Price.Units)
	})

	t.Run("updates an existing product by id", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.mutations.AddProduct(ctx, AddProductInput{ID: "p1", Title: strPtr("Widget")})
		require.NoError(t, err)

		views, err := f.mutations.AddProduct(ctx, AddProductInput{ID: "p1", Title: strPtr("Widget Pro")})
		require.NoError(t, err)
		require.Len(t, views, 1)
		assert.Equal(t, "Widget Pro", views[0].Title)

		all, err := f.queries.SearchProducts(ctx, "")
		require.NoError(t, err)
		require.Len(t, all, 1)
		assert.Equal(t, "Widget Pro", all[0].Title)
	})

	t.Run("keeps omitted fields on update", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.mutations.AddProduct(ctx, AddProductInput{
			ID:        "p1",
			Title:     strPtr("Widget"),
			FullTitle: strPtr("Industrial Widget"),
		})
		require.NoError(t, err)

		views, err := f.mutations.AddProduct(ctx, AddProductInput{ID: "p1"})
		require.NoError(t, err)
		require.Len(t, views, 1)
		assert.Equal(t, "Widget", views[0].Title)
		require.NotNil(t, views[0].FullTitle)
		assert.Equal(t, "Industrial Widget", *views[0].FullTitle)
	})

	t.Run("fails without an id", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.mutations.AddProduct(ctx, AddProductInput{Title: strPtr("Widget")})
		require.ErrorIs(t, err, shared.ErrInvalidProduct)
	})

	t.Run("fails for a new product without a title", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.mutations.AddProduct(ctx, AddProductInput{ID: "p1"})
		require.ErrorIs(t, err, shared.ErrInvalidProduct)
	})

	t.Run("fails when the seller is unknown", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.mutations.AddProduct(ctx, AddProductInput{
			ID:     "p1",
			Title:  strPtr("Widget"),
			Offers: []OfferInput{{SellerID: "ghost"}},
		})
		require.ErrorIs(t, err, shared.ErrUnknownIdentity)
	})

	t.Run("fails when the seller is not a legal entity", func(t *testing.T) {
		f := newFixture(t)
		require.NoError(t, f.registry.Register("v9", shared.KindVendor))

		_, err := f.mutations.AddProduct(ctx, AddProductInput{
			ID:     "p1",
			Title:  strPtr("Widget"),
			Offers: []OfferInput{{SellerID: "v9"}},
		})
		require.ErrorIs(t, err, shared.ErrAmbiguousLegalEntity)
	})

	t.Run("writes nothing when a nested amount is invalid", func(t *testing.T) {
		f := newFixture(t)
		f.seedPerson(t, "hans", "Hans Muster")

		_, err := f.mutations.AddProduct(ctx, AddProductInput{
			ID:    "p1",
			Title: strPtr("Widget"),
			Offers: []OfferInput{{
				SellerID: "hans",
				Prices: []PriceInput{{
					Type:  "retail",
					Price: &MoneyInput{CurrencyCode: "USD", Units: 1, Nanos: -1},
				}},
			}},
		})
		require.ErrorIs(t, err, shared.ErrInvalidMoney)

		all, err := f.queries.SearchProducts(ctx, "")
		require.NoError(t, err)
		assert.Empty(t, all)
		_, err = f.registry.Resolve("p1")
		require.ErrorIs(t, err, shared.ErrUnknownIdentity)
	})

	t.Run("accepts a vendor reference by id", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.mutations.AddProduct(ctx, AddProductInput{
			ID:      "p1",
			Title:   strPtr("Widget"),
			Vendors: []VendorInput{{ID: strPtr("v1"), Title: strPtr("Distributor AG")}},
		})
		require.NoError(t, err)

		views, err := f.mutations.AddProduct(ctx, AddProductInput{
			ID:      "p2",
			Title:   strPtr("Gadget"),
			Vendors: []VendorInput{{ID: strPtr("v1")}},
		})
		require.NoError(t, err)
		require.Len(t, views[0].Vendors, 1)
		assert.Equal(t, "Distributor AG", views[0].Vendors[0].Title)
	})

	t.Run("rejects a vendor reference to a missing vendor", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.mutations.AddProduct(ctx, AddProductInput{
			ID:      "p1",
			Title:   strPtr("Widget"),
			Vendors: []VendorInput{{ID: strPtr("ghost")}},
		})
		require.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("resolves a company seller with only company fields", func(t *testing.T) {
		f := newFixture(t)
		f.seedCompany(t, "acme", "ACME")

		views, err := f.mutations.AddProduct(ctx, AddProductInput{
			ID:     "p1",
			Title:  strPtr("Widget"),
			Offers: []OfferInput{{SellerID: "acme"}},
		})
		require.NoError(t, err)
		require.Len(t, views[0].Offers, 1)

		seller := views[0].Offers[0].Seller
		assert.Equal(t, string(shared.KindCompany), seller.Kind)
		assert.Nil(t, seller.Person)
		require.NotNil(t, seller.Company)
		assert.Equal(t, "ACME", seller.Company.Title)
	})
}

func TestQueryServiceSearchProducts(t *testing.T) {
	ctx := context.Background()

	seed := func(t *testing.T) *fixture {
		t.Helper()
		f := newFixture(t)
		_, err := f.mutations.AddProduct(ctx, AddProductInput{
			ID: "p1", Title: strPtr("Widget"), FullTitle: strPtr("Industrial Widget"),
		})
		require.NoError(t, err)
		_, err = f.mutations.AddProduct(ctx, AddProductInput{ID: "p2", Title: strPtr("Gadget")})
		require.NoError(t, err)
		return f
	}

	t.Run("matches case-insensitively on title", func(t *testing.T) {
		f := seed(t)
		views, err := f.queries.SearchProducts(ctx, "WID")
		require.NoError(t, err)
		require.Len(t, views, 1)
		assert.Equal(t, "p1", views[0].ID)
	})

	t.Run("matches on the full title", func(t *testing.T) {
		f := seed(t)
		views, err := f.queries.SearchProducts(ctx, "industrial")
		require.NoError(t, err)
		require.Len(t, views, 1)
		assert.Equal(t, "p1", views[0].ID)
	})

	t.Run("empty query returns everything in insertion order", func(t *testing.T) {
		f := seed(t)
		views, err := f.queries.SearchProducts(ctx, "")
		require.NoError(t, err)
		require.Len(t, views, 2)
		assert.Equal(t, "p1", views[0].ID)
		assert.Equal(t, "p2", views[1].ID)
	})

	t.Run("no match returns an empty non-nil result", func(t *testing.T) {
		f := seed(t)
		views, err := f.queries.SearchProducts(ctx, "zzz")
		require.NoError(t, err)
		require.NotNil(t, views)
		assert.Empty(t, views)
	})

	t.Run("propagates cancellation", func(t *testing.T) {
		f := seed(t)
		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		_, err := f.queries.SearchProducts(cancelled, "")
		require.ErrorIs(t, err, context.Canceled)
	})
}
