package valueobject

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/catalog/backend/internal/domain/shared"
)

func TestNewAddress(t *testing.T) {
	t.Run("creates minimal address from region code and lines", func(t *testing.T) {
		addr, err := NewAddress("CH", WithAddressLines("Bahnhofstrasse 1"))
		require.NoError(t, err)
		assert.Equal(t, "CH", addr.RegionCode())
		assert.Equal(t, []string{"Bahnhofstrasse 1"}, addr.AddressLines())
	})

	t.Run("fails without region code", func(t *testing.T) {
		_, err := NewAddress("", WithAddressLines("Bahnhofstrasse 1"))
		require.ErrorIs(t, err, shared.ErrInvalidAddress)

		_, err = NewAddress("   ")
		require.ErrorIs(t, err, shared.ErrInvalidAddress)
	})

	t.Run("canonicalizes region code case", func(t *testing.T) {
		addr, err := NewAddress("ch")
		require.NoError(t, err)
		assert.Equal(t, "CH", addr.RegionCode())
	})

	t.Run("never validates the language code", func(t *testing.T) {
		addr, err := NewAddress("DE", WithLanguageCode("certainly-not-a-language-tag"))
		require.NoError(t, err)
		assert.Equal(t, "certainly-not-a-language-tag", addr.LanguageCode())
	})

	t.Run("canonicalizes a parseable language code", func(t *testing.T) {
		addr, err := NewAddress("DE", WithLanguageCode("DE-ch"))
		require.NoError(t, err)
		assert.Equal(t, "de-CH", addr.LanguageCode())
	})

	t.Run("validates the geo coordinate", func(t *testing.T) {
		_, err := NewAddress("US", WithGeoCoordinate(91, 0))
		require.ErrorIs(t, err, shared.ErrInvalidCoordinate)

		addr, err := NewAddress("US", WithGeoCoordinate(45, -122))
		require.NoError(t, err)
		coord, ok := addr.GeoCoordinate()
		require.True(t, ok)
		assert.Equal(t, 45.0, coord.Latitude())
	})

	t.Run("carries all structured fields", func(t *testing.T) {
		addr, err := NewAddress("US",
			WithID("addr-1"),
			WithPostalCode("97205"),
			WithSortingCode("CEDEX"),
			WithAdministrativeArea("OR"),
			WithLocality("Portland"),
			WithSublocality("Pearl District"),
			WithAddressLines("1234 NW Lovejoy St", "Suite 200"),
			WithRecipients("person-1", "person-2"),
			WithNotes("ring twice"),
		)
		require.NoError(t, err)
		assert.Equal(t, "addr-1", addr.NodeID())
		assert.Equal(t, "97205", addr.PostalCode())
		assert.Equal(t, "CEDEX", addr.SortingCode())
		assert.Equal(t, "OR", addr.AdministrativeArea())
		assert.Equal(t, "Portland", addr.Locality())
		assert.Equal(t, "Pearl District", addr.Sublocality())
		assert.Equal(t, []string{"person-1", "person-2"}, addr.Recipients())
		assert.Equal(t, []string{"ring twice"}, addr.Notes())
	})
}

func TestAddressImmutability(t *testing.T) {
	addr, err := NewAddress("US", WithAddressLines("line 1"))
	require.NoError(t, err)

	lines := addr.AddressLines()
	lines[0] = "mutated"
	assert.Equal(t, []string{"line 1"}, addr.AddressLines())
}

func TestAddressString(t *testing.T) {
	addr, err := NewAddress("CH",
		WithPostalCode("8001"),
		WithLocality("Zürich"),
		WithAddressLines("Bahnhofstrasse 1"),
	)
	require.NoError(t, err)
	assert.Equal(t, "Bahnhofstrasse 1, Zürich, 8001 CH", addr.String())

	assert.Empty(t, Address{}.String())
}

func TestAddressDTORoundtrip(t *testing.T) {
	addr, err := NewAddress("FR",
		WithID("addr-7"),
		WithLanguageCode("fr"),
		WithPostalCode("75001"),
		WithLocality("Paris"),
		WithAddressLines("1 Rue de Rivoli"),
		WithGeoCoordinate(48.86, 2.34),
	)
	require.NoError(t, err)

	back, err := addr.ToDTO().ToAddress()
	require.NoError(t, err)
	assert.True(t, addr.Equals(back))
}
