package valueobject

import (
	"slices"
	"strings"

	"golang.org/x/text/language"

	"github.com/catalog/backend/internal/domain/shared"
)

// Address is a value object representing a structured postal address.
// It is immutable - all operations return new Address instances.
//
// The minimal valid representation is a region code plus unstructured
// address lines; every other field is a refinement and is never inferred
// when absent. Recipients are weak references to Person identifiers.
type Address struct {
	id                 string
	regionCode         string
	languageCode       string
	postalCode         string
	sortingCode        string
	administrativeArea string
	locality           string
	sublocality        string
	addressLines       []string
	recipients         []string
	notes              []string
	geoCoordinate      *LatLng
}

// AddressOption is a functional option for configuring Address
type AddressOption func(*Address) error

// WithID sets the address identifier
func WithID(id string) AddressOption {
	return func(a *Address) error {
		a.id = strings.TrimSpace(id)
		return nil
	}
}

// WithLanguageCode sets the BCP-47 language code. The code is a
// formatting hint only: it is canonicalized when parseable and kept
// verbatim otherwise, but it never participates in validation.
func WithLanguageCode(code string) AddressOption {
	return func(a *Address) error {
		code = strings.TrimSpace(code)
		if tag, err := language.Parse(code); err == nil && code != "" {
			a.languageCode = tag.String()
		} else {
			a.languageCode = code
		}
		return nil
	}
}

// WithPostalCode sets the postal code
func WithPostalCode(postalCode string) AddressOption {
	return func(a *Address) error {
		a.postalCode = strings.TrimSpace(postalCode)
		return nil
	}
}

// WithSortingCode sets the postal sorting code
func WithSortingCode(sortingCode string) AddressOption {
	return func(a *Address) error {
		a.sortingCode = strings.TrimSpace(sortingCode)
		return nil
	}
}

// WithAdministrativeArea sets the top-level administrative subdivision
func WithAdministrativeArea(area string) AddressOption {
	return func(a *Address) error {
		a.administrativeArea = strings.TrimSpace(area)
		return nil
	}
}

// WithLocality sets the city or town
func WithLocality(locality string) AddressOption {
	return func(a *Address) error {
		a.locality = strings.TrimSpace(locality)
		return nil
	}
}

// WithSublocality sets the district below locality level
func WithSublocality(sublocality string) AddressOption {
	return func(a *Address) error {
		a.sublocality = strings.TrimSpace(sublocality)
		return nil
	}
}

// WithAddressLines sets the unstructured address lines in envelope order
func WithAddressLines(lines ...string) AddressOption {
	return func(a *Address) error {
		a.addressLines = slices.Clone(lines)
		return nil
	}
}

// WithRecipients sets the recipient person identifiers
func WithRecipients(personIDs ...string) AddressOption {
	return func(a *Address) error {
		a.recipients = slices.Clone(personIDs)
		return nil
	}
}

// WithNotes sets free-text notes
func WithNotes(notes ...string) AddressOption {
	return func(a *Address) error {
		a.notes = slices.Clone(notes)
		return nil
	}
}

// WithGeoCoordinate sets the geographic coordinate, validating the
// WGS84 ranges. Construction fails with INVALID_COORDINATE when a range
// is violated.
func WithGeoCoordinate(latitude, longitude float64) AddressOption {
	return func(a *Address) error {
		coord, err := NewLatLng(latitude, longitude)
		if err != nil {
			return err
		}
		a.geoCoordinate = &coord
		return nil
	}
}

// NewAddress creates a new Address. The CLDR region code is the only
// hard requirement; it is canonicalized when parseable and upper-cased
// otherwise.
func NewAddress(regionCode string, opts ...AddressOption) (Address, error) {
	regionCode = strings.TrimSpace(regionCode)
	if regionCode == "" {
		return Address{}, shared.NewDomainError(shared.ErrInvalidAddress.Code, "region code cannot be empty")
	}
	if region, err := language.ParseRegion(regionCode); err == nil {
		regionCode = region.String()
	} else {
		regionCode = strings.ToUpper(regionCode)
	}

	addr := Address{regionCode: regionCode}
	for _, opt := range opts {
		if err := opt(&addr); err != nil {
			return Address{}, err
		}
	}
	return addr, nil
}

// NodeID returns the address identifier
func (a Address) NodeID() string {
	return a.id
}

// RegionCode returns the CLDR region code
func (a Address) RegionCode() string {
	return a.regionCode
}

// LanguageCode returns the BCP-47 formatting hint, empty when unset
func (a Address) LanguageCode() string {
	return a.languageCode
}

// PostalCode returns the postal code
func (a Address) PostalCode() string {
	return a.postalCode
}

// SortingCode returns the postal sorting code
func (a Address) SortingCode() string {
	return a.sortingCode
}

// AdministrativeArea returns the top-level administrative subdivision
func (a Address) AdministrativeArea() string {
	return a.administrativeArea
}

// Locality returns the city or town
func (a Address) Locality() string {
	return a.locality
}

// Sublocality returns the district below locality level
func (a Address) Sublocality() string {
	return a.sublocality
}

// AddressLines returns the unstructured lines in envelope order
func (a Address) AddressLines() []string {
	return slices.Clone(a.addressLines)
}

// Recipients returns the recipient person identifiers
func (a Address) Recipients() []string {
	return slices.Clone(a.recipients)
}

// Notes returns the free-text notes
func (a Address) Notes() []string {
	return slices.Clone(a.notes)
}

// GeoCoordinate returns the coordinate and whether one is set
func (a Address) GeoCoordinate() (LatLng, bool) {
	if a.geoCoordinate == nil {
		return LatLng{}, false
	}
	return *a.geoCoordinate, true
}

// IsEmpty returns true for the zero-value address
func (a Address) IsEmpty() bool {
	return a.regionCode == ""
}

// Equals returns true if both addresses carry identical fields
func (a Address) Equals(other Address) bool {
	sameGeo := (a.geoCoordinate == nil) == (other.geoCoordinate == nil)
	if sameGeo && a.geoCoordinate != nil {
		sameGeo = a.geoCoordinate.Equals(*other.geoCoordinate)
	}
	return a.id == other.id &&
		a.regionCode == other.regionCode &&
		a.languageCode == other.languageCode &&
		a.postalCode == other.postalCode &&
		a.sortingCode == other.sortingCode &&
		a.administrativeArea == other.administrativeArea &&
		a.locality == other.locality &&
		a.sublocality == other.sublocality &&
		slices.Equal(a.addressLines, other.addressLines) &&
		slices.Equal(a.recipients, other.recipients) &&
		slices.Equal(a.notes, other.notes) &&
		sameGeo
}

// String returns the envelope form: lines first, then locality/region
func (a Address) String() string {
	if a.IsEmpty() {
		return ""
	}
	parts := make([]string, 0, len(a.addressLines)+4)
	parts = append(parts, a.addressLines...)
	if a.sublocality != "" {
		parts = append(parts, a.sublocality)
	}
	if a.locality != "" {
		parts = append(parts, a.locality)
	}
	if a.administrativeArea != "" {
		parts = append(parts, a.administrativeArea)
	}
	region := a.regionCode
	if a.postalCode != "" {
		region = a.postalCode + " " + region
	}
	parts = append(parts, region)
	return strings.Join(parts, ", ")
}

// AddressDTO is the transport form of Address
type AddressDTO struct {
	ID                 string    `json:"id,omitempty"`
	RegionCode         string    `json:"regionCode"`
	LanguageCode       string    `json:"languageCode,omitempty"`
	PostalCode         string    `json:"postalCode,omitempty"`
	SortingCode        string    `json:"sortingCode,omitempty"`
	AdministrativeArea string    `json:"administrativeArea,omitempty"`
	Locality           string    `json:"locality,omitempty"`
	Sublocality        string    `json:"sublocality,omitempty"`
	AddressLines       []string  `json:"addressLines,omitempty"`
	Recipients         []string  `json:"recipients,omitempty"`
	Notes              []string  `json:"notes,omitempty"`
	GeoCoordinate      *GeoPoint `json:"geoCoordinate,omitempty"`
}

// GeoPoint is the transport form of LatLng
type GeoPoint struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// ToDTO converts the Address to its transport form
func (a Address) ToDTO() AddressDTO {
	dto := AddressDTO{
		ID:                 a.id,
		RegionCode:         a.regionCode,
		LanguageCode:       a.languageCode,
		PostalCode:         a.postalCode,
		SortingCode:        a.sortingCode,
		AdministrativeArea: a.administrativeArea,
		Locality:           a.locality,
		Sublocality:        a.sublocality,
		AddressLines:       slices.Clone(a.addressLines),
		Recipients:         slices.Clone(a.recipients),
		Notes:              slices.Clone(a.notes),
	}
	if a.geoCoordinate != nil {
		dto.GeoCoordinate = &GeoPoint{
			Latitude:  a.geoCoordinate.Latitude(),
			Longitude: a.geoCoordinate.Longitude(),
		}
	}
	return dto
}

// ToAddress converts the transport form back to an Address
func (dto AddressDTO) ToAddress() (Address, error) {
	opts := []AddressOption{
		WithID(dto.ID),
		WithLanguageCode(dto.LanguageCode),
		WithPostalCode(dto.PostalCode),
		WithSortingCode(dto.SortingCode),
		WithAdministrativeArea(dto.AdministrativeArea),
		WithLocality(dto.Locality),
		WithSublocality(dto.Sublocality),
		WithAddressLines(dto.AddressLines...),
		WithRecipients(dto.Recipients...),
		WithNotes(dto.Notes...),
	}
	if dto.GeoCoordinate != nil {
		opts = append(opts, WithGeoCoordinate(dto.GeoCoordinate.Latitude, dto.GeoCoordinate.Longitude))
	}
	return NewAddress(dto.RegionCode, opts...)
}
