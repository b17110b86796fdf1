package party

import (
	"context"
	"fmt"

	"github.com/catalog/backend/internal/domain/shared"
)

// LegalEntity is the closed union of Person and Company. A value is
// always tagged with its concrete variant; no third variant exists.
type LegalEntity struct {
	kind    shared.Kind
	person  *Person
	company *Company
}

// PersonEntity wraps a person as a legal entity
func PersonEntity(p *Person) LegalEntity {
	return LegalEntity{kind: shared.KindPerson, person: p}
}

// CompanyEntity wraps a company as a legal entity
func CompanyEntity(c *Company) LegalEntity {
	return LegalEntity{kind: shared.KindCompany, company: c}
}

// Kind returns the concrete variant tag
func (e LegalEntity) Kind() shared.Kind {
	return e.kind
}

// NodeID returns the identifier of the underlying entity
func (e LegalEntity) NodeID() string {
	switch e.kind {
	case shared.KindPerson:
		return e.person.ID
	case shared.KindCompany:
		return e.company.ID
	}
	return ""
}

// Title returns the shared title field regardless of variant
func (e LegalEntity) Title() string {
	switch e.kind {
	case shared.KindPerson:
		return e.person.Title
	case shared.KindCompany:
		return e.company.Title
	}
	return ""
}

// Person returns the person variant and whether the entity is one
func (e LegalEntity) Person() (*Person, bool) {
	return e.person, e.kind == shared.KindPerson
}

// Company returns the company variant and whether the entity is one
func (e LegalEntity) Company() (*Company, bool) {
	return e.company, e.kind == shared.KindCompany
}

// Repository is the lookup contract for persons and companies
type Repository interface {
	FindPerson(ctx context.Context, id string) (*Person, error)
	FindCompany(ctx context.Context, id string) (*Company, error)
	SavePerson(ctx context.Context, p *Person) error
	SaveCompany(ctx context.Context, c *Company) error
}

// Resolver resolves a polymorphic legal-entity reference to exactly one
// of the two variants, using the identity registry as the discriminant.
type Resolver struct {
	registry *shared.IdentityRegistry
	parties  Repository
}

// NewResolver creates a resolver backed by the given registry and repository
func NewResolver(registry *shared.IdentityRegistry, parties Repository) *Resolver {
	return &Resolver{registry: registry, parties: parties}
}

// Resolve resolves the reference to a Person or a Company. An identifier
// registered under any other kind fails with AMBIGUOUS_LEGAL_ENTITY;
// an unregistered identifier fails with UNKNOWN_IDENTITY.
func (r *Resolver) Resolve(ctx context.Context, id string) (LegalEntity, error) {
	kind, err := r.registry.Resolve(id)
	if err != nil {
		return LegalEntity{}, err
	}

	switch kind {
	case shared.KindPerson:
		person, err := r.parties.FindPerson(ctx, id)
		if err != nil {
			return LegalEntity{}, err
		}
		return PersonEntity(person), nil
	case shared.KindCompany:
		company, err := r.parties.FindCompany(ctx, id)
		if err != nil {
			return LegalEntity{}, err
		}
		return CompanyEntity(company), nil
	default:
		return LegalEntity{}, shared.NewDomainError(shared.ErrAmbiguousLegalEntity.Code,
			fmt.Sprintf("identifier %q is registered as %s, not a legal entity", id, kind))
	}
}
