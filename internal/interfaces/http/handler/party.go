package handler

import (
	"github.com/gin-gonic/gin"

	partyapp "github.com/catalog/backend/internal/application/party"
	"github.com/catalog/backend/internal/domain/shared/valueobject"
)

// PartyHandler handles the administrative legal-entity endpoints
type PartyHandler struct {
	BaseHandler
	parties *partyapp.Service
}

// NewPartyHandler creates a new PartyHandler
func NewPartyHandler(parties *partyapp.Service) *PartyHandler {
	return &PartyHandler{parties: parties}
}

// RegisterRoutes registers the party routes
func (h *PartyHandler) RegisterRoutes(rg *gin.RouterGroup) {
	parties := rg.Group("/catalog/parties")
	parties.POST("/persons", h.RegisterPerson)
	parties.POST("/companies", h.RegisterCompany)
}

type registerPersonRequest struct {
	ID    *string `json:"id"`
	Title string  `json:"title" binding:"required"`
}

type registerCompanyRequest struct {
	ID            *string         `json:"id"`
	Title         string          `json:"title" binding:"required"`
	FullTitle     *string         `json:"fullTitle"`
	StatutorySeat *addressPayload `json:"statutorySeat"`
	Address       *addressPayload `json:"address"`
	Notes         []string        `json:"notes"`
}

type addressPayload struct {
	ID                 string      `json:"id"`
	RegionCode         string      `json:"regionCode" binding:"required,region_code"`
	LanguageCode       string      `json:"languageCode"`
	PostalCode         string      `json:"postalCode"`
	SortingCode        string      `json:"sortingCode"`
	AdministrativeArea string      `json:"administrativeArea"`
	Locality           string      `json:"locality"`
	Sublocality        string      `json:"sublocality"`
	AddressLines       []string    `json:"addressLines"`
	Recipients         []string    `json:"recipients"`
	Notes              []string    `json:"notes"`
	GeoCoordinate      *geoPayload `json:"geoCoordinate"`
}

type geoPayload struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// RegisterPerson handles the administrative insertion of a person
func (h *PartyHandler) RegisterPerson(c *gin.Context) {
	var req registerPersonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	person, err := h.parties.RegisterPerson(c.Request.Context(), partyapp.RegisterPersonInput{
		ID:    req.ID,
		Title: req.Title,
	})
	if err != nil {
		h.DomainError(c, err)
		return
	}
	h.Created(c, person)
}

// RegisterCompany handles the administrative insertion of a company
func (h *PartyHandler) RegisterCompany(c *gin.Context) {
	var req registerCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	company, err := h.parties.RegisterCompany(c.Request.Context(), partyapp.RegisterCompanyInput{
		ID:            req.ID,
		Title:         req.Title,
		FullTitle:     req.FullTitle,
		StatutorySeat: toAddressDTO(req.StatutorySeat),
		Address:       toAddressDTO(req.Address),
		Notes:         req.Notes,
	})
	if err != nil {
		h.DomainError(c, err)
		return
	}
	h.Created(c, company)
}

func toAddressDTO(p *addressPayload) *valueobject.AddressDTO {
	if p == nil {
		return nil
	}
	dto := &valueobject.AddressDTO{
		ID:                 p.ID,
		RegionCode:         p.RegionCode,
		LanguageCode:       p.LanguageCode,
		PostalCode:         p.PostalCode,
		SortingCode:        p.SortingCode,
		AdministrativeArea: p.AdministrativeArea,
		Locality:           p.Locality,
		Sublocality:        p.Sublocality,
		AddressLines:       p.AddressLines,
		Recipients:         p.Recipients,
		Notes:              p.Notes,
	}
	if p.GeoCoordinate != nil {
		dto.GeoCoordinate = &valueobject.GeoPoint{
			Latitude:  p.GeoCoordinate.Latitude,
			Longitude: p.GeoCoordinate.Longitude,
		}
	}
	return dto
}
