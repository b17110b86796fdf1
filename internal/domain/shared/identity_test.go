package shared

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentityRegistryRegister(t *testing.T) {
	t.Run("registers and resolves a kind", func(t *testing.T) {
		registry := NewIdentityRegistry()
		require.NoError(t, registry.Register("v1", KindVendor))

		kind, err := registry.Resolve("v1")
		require.NoError(t, err)
		assert.Equal(t, KindVendor, kind)
	})

	t.Run("re-registering the same kind is a no-op", func(t *testing.T) {
		registry := NewIdentityRegistry()
		require.NoError(t, registry.Register("v1", KindVendor))
		require.NoError(t, registry.Register("v1", KindVendor))
	})

	t.Run("re-registering under another kind conflicts", func(t *testing.T) {
		registry := NewIdentityRegistry()
		require.NoError(t, registry.Register("v1", KindVendor))

		err := registry.Register("v1", KindOffer)
		require.ErrorIs(t, err, ErrIdentityConflict)

		// the original registration survives
		kind, err := registry.Resolve("v1")
		require.NoError(t, err)
		assert.Equal(t, KindVendor, kind)
	})

	t.Run("resolving an unregistered identifier fails", func(t *testing.T) {
		registry := NewIdentityRegistry()
		_, err := registry.Resolve("missing")
		require.ErrorIs(t, err, ErrUnknownIdentity)
	})
}

func TestIdentityRegistryRegisterAll(t *testing.T) {
	t.Run("registers every entry on success", func(t *testing.T) {
		registry := NewIdentityRegistry()
		err := registry.RegisterAll([]Registration{
			{ID: "p1", Kind: KindProduct},
			{ID: "v1", Kind: KindVendor},
			{ID: "o1", Kind: KindOffer},
		})
		require.NoError(t, err)

		for id, want := range map[string]Kind{"p1": KindProduct, "v1": KindVendor, "o1": KindOffer} {
			kind, err := registry.Resolve(id)
			require.NoError(t, err)
			assert.Equal(t, want, kind)
		}
	})

	t.Run("registers nothing when one entry conflicts", func(t *testing.T) {
		registry := NewIdentityRegistry()
		require.NoError(t, registry.Register("v1", KindVendor))

		err := registry.RegisterAll([]Registration{
			{ID: "p1", Kind: KindProduct},
			{ID: "v1", Kind: KindOffer},
		})
		require.ErrorIs(t, err, ErrIdentityConflict)

		_, err = registry.Resolve("p1")
		require.ErrorIs(t, err, ErrUnknownIdentity)
	})

	t.Run("detects a conflict inside the batch itself", func(t *testing.T) {
		registry := NewIdentityRegistry()
		err := registry.RegisterAll([]Registration{
			{ID: "x", Kind: KindVendor},
			{ID: "x", Kind: KindOffer},
		})
		require.ErrorIs(t, err, ErrIdentityConflict)

		_, err = registry.Resolve("x")
		require.ErrorIs(t, err, ErrUnknownIdentity)
	})

	t.Run("allows duplicate entries of the same kind", func(t *testing.T) {
		registry := NewIdentityRegistry()
		err := registry.RegisterAll([]Registration{
			{ID: "v1", Kind: KindVendor},
			{ID: "v1", Kind: KindVendor},
		})
		require.NoError(t, err)
	})
}
