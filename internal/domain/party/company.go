package party

import (
	"slices"
	"strings"

	"github.com/catalog/backend/internal/domain/shared"
	"github.com/catalog/backend/internal/domain/shared/valueobject"
)

// Company is a legal body that can stand behind an offer
type Company struct {
	shared.BaseEntity
	Title         string
	FullTitle     *string
	StatutorySeat *valueobject.Address
	Address       *valueobject.Address
	Notes         []string
}

// CompanyOption is a functional option for configuring Company
type CompanyOption func(*Company)

// WithFullTitle sets the registered full name
func WithFullTitle(fullTitle string) CompanyOption {
	return func(c *Company) {
		c.FullTitle = &fullTitle
	}
}

// WithStatutorySeat sets the statutory seat address
func WithStatutorySeat(addr valueobject.Address) CompanyOption {
	return func(c *Company) {
		c.StatutorySeat = &addr
	}
}

// WithAddress sets the business address
func WithAddress(addr valueobject.Address) CompanyOption {
	return func(c *Company) {
		c.Address = &addr
	}
}

// WithNotes sets free-text notes
func WithNotes(notes ...string) CompanyOption {
	return func(c *Company) {
		c.Notes = slices.Clone(notes)
	}
}

// NewCompany creates a new company. The short title is required; the
// full title, addresses and notes are refinements.
func NewCompany(id, title string, opts ...CompanyOption) (*Company, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, shared.NewDomainError(shared.ErrInvalidInput.Code, "company title cannot be empty")
	}
	company := &Company{
		BaseEntity: shared.NewBaseEntity(id),
		Title:      title,
	}
	for _, opt := range opts {
		opt(company)
	}
	return company, nil
}
