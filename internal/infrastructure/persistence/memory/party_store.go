package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/catalog/backend/internal/domain/party"
	"github.com/catalog/backend/internal/domain/shared"
)

// PartyStore is the in-memory party.Repository implementation holding
// persons and companies. It shares the identity registry with the
// catalog store so legal-entity references resolve across aggregates.
type PartyStore struct {
	mu       sync.RWMutex
	registry *shared.IdentityRegistry

	persons   map[string]*party.Person
	companies map[string]*party.Company
}

// NewPartyStore creates an empty party store
func NewPartyStore(registry *shared.IdentityRegistry) *PartyStore {
	return &PartyStore{
		registry:  registry,
		persons:   make(map[string]*party.Person),
		companies: make(map[string]*party.Company),
	}
}

// FindPerson returns the person with the given id
func (s *PartyStore) FindPerson(ctx context.Context, id string) (*party.Person, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	person, ok := s.persons[id]
	if !ok {
		return nil, shared.NewDomainError(shared.ErrNotFound.Code, fmt.Sprintf("person %q not found", id))
	}
	clone := *person
	return &clone, nil
}

// FindCompany returns the company with the given id
func (s *PartyStore) FindCompany(ctx context.Context, id string) (*party.Company, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	company, ok := s.companies[id]
	if !ok {
		return nil, shared.NewDomainError(shared.ErrNotFound.Code, fmt.Sprintf("company %q not found", id))
	}
	clone := *company
	return &clone, nil
}

// SavePerson registers and stores a person (upsert by identifier)
func (s *PartyStore) SavePerson(ctx context.Context, p *party.Person) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.registry.Register(p.ID, shared.KindPerson); err != nil {
		return err
	}
	clone := *p
	s.persons[p.ID] = &clone
	return nil
}

// SaveCompany registers and stores a company (upsert by identifier)
func (s *PartyStore) SaveCompany(ctx context.Context, c *party.Company) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.registry.Register(c.ID, shared.KindCompany); err != nil {
		return err
	}
	clone := *c
	s.companies[c.ID] = &clone
	return nil
}
