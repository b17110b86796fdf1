package catalog

import (
	"strings"

	"github.com/catalog/backend/internal/domain/shared"
)

// Vendor is a party distributing a product
type Vendor struct {
	shared.BaseEntity
	Title string
}

// NewVendor creates a new vendor. The title is required; a missing
// title fails the enclosing product mutation.
func NewVendor(id, title string) (*Vendor, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, shared.NewDomainError(shared.ErrInvalidProduct.Code, "vendor title cannot be empty")
	}
	return &Vendor{
		BaseEntity: shared.NewBaseEntity(id),
		Title:      title,
	}, nil
}

// Clone returns a copy of the vendor
func (v *Vendor) Clone() *Vendor {
	clone := *v
	return &clone
}
