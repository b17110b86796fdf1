package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalogapp "github.com/catalog/backend/internal/application/catalog"
	partyapp "github.com/catalog/backend/internal/application/party"
	"github.com/catalog/backend/internal/domain/party"
	"github.com/catalog/backend/internal/domain/shared"
	"github.com/catalog/backend/internal/infrastructure/persistence/memory"
	"github.com/catalog/backend/internal/interfaces/http/middleware"
	"github.com/catalog/backend/internal/interfaces/http/router"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func newTestServer(t *testing.T) (*gin.Engine, *shared.IdentityRegistry, *memory.PartyStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	registry := shared.NewIdentityRegistry()
	store := memory.NewCatalogStore(registry)
	parties := memory.NewPartyStore(registry)
	resolver := party.NewResolver(registry, parties)

	engine := gin.New()
	middleware.SetupValidator()
	router.NewRouter(engine).
		Register(NewCatalogHandler(
			catalogapp.NewQueryService(store, resolver),
			catalogapp.NewMutationService(store, registry, resolver),
		)).
		Register(NewPartyHandler(partyapp.NewService(parties))).
		Setup()

	return engine, registry, parties
}

func doJSON(t *testing.T, engine *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return rec, env
}

func TestHealthEndpoint(t *testing.T) {
	engine, _, _ := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAddProductEndpoint(t *testing.T) {
	t.Run("creates a product", func(t *testing.T) {
		engine, _, _ := newTestServer(t)
		rec, env := doJSON(t, engine, http.MethodPost, "/api/v1/catalog/products",
			`{"id":"p1","title":"Widget"}`)

		require.Equal(t, http.StatusOK, rec.Code)
		require.True(t, env.Success)

		var products []map[string]any
		require.NoError(t, json.Unmarshal(env.Data, &products))
		require.Len(t, products, 1)
		assert.Equal(t, "p1", products[0]["id"])
		assert.Equal(t, "Widget", products[0]["title"])
	})

	t.Run("rejects a body without an id", func(t *testing.T) {
		engine, _, _ := newTestServer(t)
		rec, env := doJSON(t, engine, http.MethodPost, "/api/v1/catalog/products",
			`{"title":"Widget"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "ERR_BAD_REQUEST", env.Error.Code)
	})

	t.Run("rejects an offer without a seller at binding time", func(t *testing.T) {
		engine, _, _ := newTestServer(t)
		rec, _ := doJSON(t, engine, http.MethodPost, "/api/v1/catalog/products",
			`{"id":"p1","title":"Widget","offers":[{"prices":[]}]}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("maps a new product without title to 422", func(t *testing.T) {
		engine, _, _ := newTestServer(t)
		rec, env := doJSON(t, engine, http.MethodPost, "/api/v1/catalog/products",
			`{"id":"p1"}`)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "INVALID_PRODUCT", env.Error.Code)
	})

	t.Run("maps an unknown seller to 422", func(t *testing.T) {
		engine, _, _ := newTestServer(t)
		rec, env := doJSON(t, engine, http.MethodPost, "/api/v1/catalog/products",
			`{"id":"p1","title":"Widget","offers":[{"seller":"ghost"}]}`)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "UNKNOWN_IDENTITY", env.Error.Code)
	})

	t.Run("maps an identity conflict to 409", func(t *testing.T) {
		engine, registry, _ := newTestServer(t)
		require.NoError(t, registry.Register("p1", shared.KindVendor))

		rec, env := doJSON(t, engine, http.MethodPost, "/api/v1/catalog/products",
			`{"id":"p1","title":"Widget"}`)

		assert.Equal(t, http.StatusConflict, rec.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "IDENTITY_CONFLICT", env.Error.Code)
	})

	t.Run("rejects a malformed currency code at binding time", func(t *testing.T) {
		engine, _, _ := newTestServer(t)
		rec, _ := doJSON(t, engine, http.MethodPost, "/api/v1/catalog/products",
			`{"id":"p1","title":"Widget","offers":[{"seller":"hans","prices":[{"type":"retail","price":{"currencyCode":"NOPE","units":1,"nanos":0}}]}]}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestSearchProductEndpoint(t *testing.T) {
	seed := func(t *testing.T, engine *gin.Engine) {
		t.Helper()
		rec, _ := doJSON(t, engine, http.MethodPost, "/api/v1/catalog/products",
			`{"id":"p1","title":"Widget","fullTitle":"Industrial Widget"}`)
		require.Equal(t, http.StatusOK, rec.Code)
		rec, _ = doJSON(t, engine, http.MethodPost, "/api/v1/catalog/products",
			`{"id":"p2","title":"Gadget"}`)
		require.Equal(t, http.StatusOK, rec.Code)
	}

	t.Run("omitted query yields null data", func(t *testing.T) {
		engine, _, _ := newTestServer(t)
		seed(t, engine)

		rec, env := doJSON(t, engine, http.MethodGet, "/api/v1/catalog/products", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, env.Success)
		assert.Nil(t, env.Data)
	})

	t.Run("empty query returns every product", func(t *testing.T) {
		engine, _, _ := newTestServer(t)
		seed(t, engine)

		rec, env := doJSON(t, engine, http.MethodGet, "/api/v1/catalog/products?query=", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var products []map[string]any
		require.NoError(t, json.Unmarshal(env.Data, &products))
		require.Len(t, products, 2)
		assert.Equal(t, "p1", products[0]["id"])
		assert.Equal(t, "p2", products[1]["id"])
	})

	t.Run("matching query filters case-insensitively", func(t *testing.T) {
		engine, _, _ := newTestServer(t)
		seed(t, engine)

		_, env := doJSON(t, engine, http.MethodGet, "/api/v1/catalog/products?query=WID", "")
		var products []map[string]any
		require.NoError(t, json.Unmarshal(env.Data, &products))
		require.Len(t, products, 1)
		assert.Equal(t, "p1", products[0]["id"])
	})

	t.Run("no match yields an empty list, not null", func(t *testing.T) {
		engine, _, _ := newTestServer(t)
		seed(t, engine)

		_, env := doJSON(t, engine, http.MethodGet, "/api/v1/catalog/products?query=zzz", "")
		assert.Equal(t, "[]", strings.TrimSpace(string(env.Data)))
	})
}

func TestPartyEndpoints(t *testing.T) {
	t.Run("registers a person and sells through it", func(t *testing.T) {
		engine, _, _ := newTestServer(t)
		rec, env := doJSON(t, engine, http.MethodPost, "/api/v1/catalog/parties/persons",
			`{"id":"hans","title":"Hans Muster"}`)
		require.Equal(t, http.StatusCreated, rec.Code)
		require.True(t, env.Success)

		rec, env = doJSON(t, engine, http.MethodPost, "/api/v1/catalog/products",
			`{"id":"p1","title":"Widget","offers":[{"seller":"hans"}]}`)
		require.Equal(t, http.StatusOK, rec.Code)

		var products []map[string]any
		require.NoError(t, json.Unmarshal(env.Data, &products))
		offers := products[0]["offers"].([]any)
		seller := offers[0].(map[string]any)["seller"].(map[string]any)
		assert.Equal(t, "person", seller["kind"])
		assert.NotNil(t, seller["person"])
		assert.Nil(t, seller["company"])
	})

	t.Run("rejects a company address without a region code", func(t *testing.T) {
		engine, _, _ := newTestServer(t)
		rec, _ := doJSON(t, engine, http.MethodPost, "/api/v1/catalog/parties/companies",
			`{"id":"acme","title":"ACME","address":{"addressLines":["no region"]}}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("rejects an unknown region code", func(t *testing.T) {
		engine, _, _ := newTestServer(t)
		rec, _ := doJSON(t, engine, http.MethodPost, "/api/v1/catalog/parties/companies",
			`{"id":"acme","title":"ACME","address":{"regionCode":"not-a-region"}}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("accepts a company with a statutory seat", func(t *testing.T) {
		engine, _, _ := newTestServer(t)
		rec, env := doJSON(t, engine, http.MethodPost, "/api/v1/catalog/parties/companies",
			`{"id":"acme","title":"ACME","fullTitle":"ACME Holding AG","statutorySeat":{"regionCode":"ch","locality":"Zürich"}}`)
		require.Equal(t, http.StatusCreated, rec.Code)

		var company map[string]any
		require.NoError(t, json.Unmarshal(env.Data, &company))
		seat := company["statutorySeat"].(map[string]any)
		assert.Equal(t, "CH", seat["regionCode"])
	})
}
