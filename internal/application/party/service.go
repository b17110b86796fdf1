package party

import (
	"context"
	"strings"

	"github.com/catalog/backend/internal/domain/party"
	"github.com/catalog/backend/internal/infrastructure/telemetry"
)

// Service is the administrative insertion path for legal entities.
// Persons and companies registered here become resolvable seller
// references for offers.
type Service struct {
	parties party.Repository
}

// NewService creates a new Service
func NewService(parties party.Repository) *Service {
	return &Service{parties: parties}
}

// RegisterPerson validates and inserts a person, allocating an
// identifier when the input carries none.
func (s *Service) RegisterPerson(ctx context.Context, input RegisterPersonInput) (*PersonResponse, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "party", "register_person")
	defer span.End()

	id := ""
	if input.ID != nil {
		id = strings.TrimSpace(*input.ID)
	}
	person, err := party.NewPerson(id, input.Title)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}
	if err := s.parties.SavePerson(ctx, person); err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}
	return &PersonResponse{ID: person.ID, Title: person.Title}, nil
}

// RegisterCompany validates and inserts a company. Nested addresses are
// validated through the Address value object; a failed address leaves
// the store unchanged.
func (s *Service) RegisterCompany(ctx context.Context, input RegisterCompanyInput) (*CompanyResponse, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "party", "register_company")
	defer span.End()

	opts := make([]party.CompanyOption, 0, 4)
	if input.FullTitle != nil {
		opts = append(opts, party.WithFullTitle(*input.FullTitle))
	}
	if input.StatutorySeat != nil {
		addr, err := input.StatutorySeat.ToAddress()
		if err != nil {
			telemetry.RecordError(span, err)
			return nil, err
		}
		opts = append(opts, party.WithStatutorySeat(addr))
	}
	if input.Address != nil {
		addr, err := input.Address.ToAddress()
		if err != nil {
			telemetry.RecordError(span, err)
			return nil, err
		}
		opts = append(opts, party.WithAddress(addr))
	}
	if input.Notes != nil {
		opts = append(opts, party.WithNotes(input.Notes...))
	}

	id := ""
	if input.ID != nil {
		id = strings.TrimSpace(*input.ID)
	}
	company, err := party.NewCompany(id, input.Title, opts...)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}
	if err := s.parties.SaveCompany(ctx, company); err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	resp := toCompanyResponse(company)
	return &resp, nil
}
