package party

import (
	"github.com/catalog/backend/internal/domain/party"
	"github.com/catalog/backend/internal/domain/shared/valueobject"
)

// RegisterPersonInput is the administrative request for inserting a person
type RegisterPersonInput struct {
	ID    *string `json:"id"`
	Title string  `json:"title"`
}

// RegisterCompanyInput is the administrative request for inserting a company
type RegisterCompanyInput struct {
	ID            *string                 `json:"id"`
	Title         string                  `json:"title"`
	FullTitle     *string                 `json:"fullTitle"`
	StatutorySeat *valueobject.AddressDTO `json:"statutorySeat"`
	Address       *valueobject.AddressDTO `json:"address"`
	Notes         []string                `json:"notes"`
}

// PersonResponse is a person in administrative responses
type PersonResponse struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// CompanyResponse is a company in administrative responses
type CompanyResponse struct {
	ID            string                  `json:"id"`
	Title         string                  `json:"title"`
	FullTitle     *string                 `json:"fullTitle,omitempty"`
	StatutorySeat *valueobject.AddressDTO `json:"statutorySeat,omitempty"`
	Address       *valueobject.AddressDTO `json:"address,omitempty"`
	Notes         []string                `json:"notes,omitempty"`
}

func toCompanyResponse(c *party.Company) CompanyResponse {
	resp := CompanyResponse{
		ID:        c.ID,
		Title:     c.Title,
		FullTitle: c.FullTitle,
		Notes:     c.Notes,
	}
	if c.StatutorySeat != nil {
		dto := c.StatutorySeat.ToDTO()
		resp.StatutorySeat = &dto
	}
	if c.Address != nil {
		dto := c.Address.ToDTO()
		resp.Address = &dto
	}
	return resp
}
