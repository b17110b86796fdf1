package handler

import (
	"github.com/gin-gonic/gin"

	catalogapp "github.com/catalog/backend/internal/application/catalog"
)

// CatalogHandler handles the product query/mutation endpoints
type CatalogHandler struct {
	BaseHandler
	queries   *catalogapp.QueryService
	mutations *catalogapp.MutationService
}

// NewCatalogHandler creates a new CatalogHandler
func NewCatalogHandler(queries *catalogapp.QueryService, mutations *catalogapp.MutationService) *CatalogHandler {
	return &CatalogHandler{
		queries:   queries,
		mutations: mutations,
	}
}

// RegisterRoutes registers the catalog routes
func (h *CatalogHandler) RegisterRoutes(rg *gin.RouterGroup) {
	products := rg.Group("/catalog/products")
	products.GET("", h.Search)
	products.POST("", h.Add)
}

// addProductRequest mirrors the addProduct mutation input: the id is the
// only required field, everything else is applied as part of the upsert.
type addProductRequest struct {
	ID        string          `json:"id" binding:"required"`
	Title     *string         `json:"title"`
	FullTitle *string         `json:"fullTitle"`
	Vendors   []vendorPayload `json:"vendors" binding:"omitempty,dive"`
	Offers    []offerPayload  `json:"offers" binding:"omitempty,dive"`
}

type vendorPayload struct {
	ID    *string `json:"id"`
	Title *string `json:"title"`
}

type offerPayload struct {
	ID     *string        `json:"id"`
	Seller string         `json:"seller" binding:"required"`
	Prices []pricePayload `json:"prices" binding:"omitempty,dive"`
}

type pricePayload struct {
	ID          *string       `json:"id"`
	Type        string        `json:"type" binding:"required"`
	Header      *string       `json:"header"`
	Description *string       `json:"description"`
	Price       *moneyPayload `json:"price"`
}

type moneyPayload struct {
	CurrencyCode string `json:"currencyCode" binding:"omitempty,iso4217"`
	Units        int64  `json:"units"`
	Nanos        int32  `json:"nanos"`
}

// Search handles searchProduct. An omitted query parameter means no
// search was performed and yields null data, distinct from an empty
// match list.
func (h *CatalogHandler) Search(c *gin.Context) {
	if !c.Request.URL.Query().Has("query") {
		h.Success(c, nil)
		return
	}

	products, err := h.queries.SearchProducts(c.Request.Context(), c.Query("query"))
	if err != nil {
		h.DomainError(c, err)
		return
	}
	h.Success(c, products)
}

// Add handles addProduct (upsert by identifier)
func (h *CatalogHandler) Add(c *gin.Context) {
	var req addProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	products, err := h.mutations.AddProduct(c.Request.Context(), toAddProductInput(req))
	if err != nil {
		h.DomainError(c, err)
		return
	}
	h.Success(c, products)
}

func toAddProductInput(req addProductRequest) catalogapp.AddProductInput {
	input := catalogapp.AddProductInput{
		ID:        req.ID,
		Title:     req.Title,
		FullTitle: req.FullTitle,
	}
	if req.Vendors != nil {
		input.Vendors = make([]catalogapp.VendorInput, 0, len(req.Vendors))
		for _, v := range req.Vendors {
			input.Vendors = append(input.Vendors, catalogapp.VendorInput{ID: v.ID, Title: v.Title})
		}
	}
	if req.Offers != nil {
		input.Offers = make([]catalogapp.OfferInput, 0, len(req.Offers))
		for _, o := range req.Offers {
			offer := catalogapp.OfferInput{ID: o.ID, SellerID: o.Seller}
			for _, p := range o.Prices {
				price := catalogapp.PriceInput{
					ID:          p.ID,
					Type:        p.Type,
					Header:      p.Header,
					Description: p.Description,
				}
				if p.Price != nil {
					price.Price = &catalogapp.MoneyInput{
						CurrencyCode: p.Price.CurrencyCode,
						Units:        p.Price.Units,
						Nanos:        p.Price.Nanos,
					}
				}
				offer.Prices = append(offer.Prices, price)
			}
			input.Offers = append(input.Offers, offer)
		}
	}
	return input
}
