package shared

import (
	"fmt"
	"sync"
)

// Kind identifies the concrete type behind a registered identifier
type Kind string

const (
	KindProduct Kind = "product"
	KindVendor  Kind = "vendor"
	KindOffer   Kind = "offer"
	KindPrice   Kind = "price"
	KindPerson  Kind = "person"
	KindCompany Kind = "company"
	KindAddress Kind = "address"
)

// Registration pairs an identifier with its concrete kind
type Registration struct {
	ID   string
	Kind Kind
}

// IdentityRegistry tracks the concrete kind behind each identifier.
// One identifier maps to exactly one kind for the lifetime of the store.
type IdentityRegistry struct {
	mu    sync.RWMutex
	kinds map[string]Kind
}

// NewIdentityRegistry creates an empty registry
func NewIdentityRegistry() *IdentityRegistry {
	return &IdentityRegistry{
		kinds: make(map[string]Kind),
	}
}

// Register records the kind for an identifier. Registering an identifier
// again under the same kind is a no-op; registering it under a different
// kind fails with IDENTITY_CONFLICT.
func (r *IdentityRegistry) Register(id string, kind Kind) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.register(id, kind)
}

// RegisterAll registers a batch of identifiers all-or-nothing: if any
// entry conflicts, no entry is registered.
func (r *IdentityRegistry) RegisterAll(regs []Registration) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	seen := make(map[string]Kind, len(regs))
	for _, reg := range regs {
		if existing, ok := r.kinds[reg.ID]; ok && existing != reg.Kind {
			return conflictError(reg.ID, existing, reg.Kind)
		}
		if existing, ok := seen[reg.ID]; ok && existing != reg.Kind {
			return conflictError(reg.ID, existing, reg.Kind)
		}
		seen[reg.ID] = reg.Kind
	}
	for _, reg := range regs {
		r.kinds[reg.ID] = reg.Kind
	}
	return nil
}

// Resolve returns the kind registered for an identifier, or UNKNOWN_IDENTITY
func (r *IdentityRegistry) Resolve(id string) (Kind, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	kind, ok := r.kinds[id]
	if !ok {
		return "", NewDomainError(ErrUnknownIdentity.Code, fmt.Sprintf("identifier %q is not registered", id))
	}
	return kind, nil
}

func (r *IdentityRegistry) register(id string, kind Kind) error {
	if existing, ok := r.kinds[id]; ok && existing != kind {
		return conflictError(id, existing, kind)
	}
	r.kinds[id] = kind
	return nil
}

func conflictError(id string, existing, requested Kind) error {
	return NewDomainError(ErrIdentityConflict.Code,
		fmt.Sprintf("identifier %q is registered as %s, cannot re-register as %s", id, existing, requested))
}
