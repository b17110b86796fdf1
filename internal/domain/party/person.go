package party

import (
	"strings"

	"github.com/catalog/backend/internal/domain/shared"
)

// Person is a natural person that can stand behind an offer
type Person struct {
	shared.BaseEntity
	Title string
}

// NewPerson creates a new person. The title (name) is required.
func NewPerson(id, title string) (*Person, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, shared.NewDomainError(shared.ErrInvalidInput.Code, "person title cannot be empty")
	}
	return &Person{
		BaseEntity: shared.NewBaseEntity(id),
		Title:      title,
	}, nil
}
