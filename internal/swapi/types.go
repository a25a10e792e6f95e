package swapi

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"
)

// ErrUnknownField is returned when a field name is not one of the editable
// scalar attributes.
var ErrUnknownField = errors.New("unknown field")

// Editable field names, matching the SWAPI JSON keys.
const (
	FieldName      = "name"
	FieldHeight    = "height"
	FieldMass      = "mass"
	FieldHairColor = "hair_color"
	FieldSkinColor = "skin_color"
	FieldEyeColor  = "eye_color"
	FieldBirthYear = "birth_year"
	FieldGender    = "gender"
)

// EditableFields lists the scalar attributes in display order.
var EditableFields = []string{
	FieldName,
	FieldHeight,
	FieldMass,
	FieldHairColor,
	FieldSkinColor,
	FieldEyeColor,
	FieldBirthYear,
	FieldGender,
}

// Page mirrors the envelope returned by /people/.
type Page struct {
	Count    int      `json:"count"`
	Next     string   `json:"next"`
	Previous string   `json:"previous"`
	Results  []Person `json:"results"`
}

// Person is one character record.
type Person struct {
	Name      string   `json:"name"`
	Height    string   `json:"height"`
	Mass      string   `json:"mass"`
	HairColor string   `json:"hair_color"`
	SkinColor string   `json:"skin_color"`
	EyeColor  string   `json:"eye_color"`
	BirthYear string   `json:"birth_year"`
	Gender    string   `json:"gender"`
	Homeworld string   `json:"homeworld"`
	Films     []string `json:"films"`
	Species   []string `json:"species"`
	Vehicles  []string `json:"vehicles"`
	Starships []string `json:"starships"`
	Created   string   `json:"created"`
	Edited    string   `json:"edited"`
	URL       string   `json:"url"`
}

// Associations holds the cardinality of a person's reference lists.
type Associations struct {
	Films     int
	Species   int
	Vehicles  int
	Starships int
}

// ID returns the identifier carried by the record's URL.
func (p Person) ID() string {
	return IDFromURL(p.URL)
}

// Counts reports how many films, species, vehicles and starships the person
// references.
func (p Person) Counts() Associations {
	return Associations{
		Films:     len(p.Films),
		Species:   len(p.Species),
		Vehicles:  len(p.Vehicles),
		Starships: len(p.Starships),
	}
}

// Clone returns a copy that shares no slices with p.
func (p Person) Clone() Person {
	dup := p
	dup.Films = slices.Clone(p.Films)
	dup.Species = slices.Clone(p.Species)
	dup.Vehicles = slices.Clone(p.Vehicles)
	dup.Starships = slices.Clone(p.Starships)
	return dup
}

// Field returns the value of an editable attribute.
func (p Person) Field(name string) (string, error) {
	ptr := p.fieldPtr(name)
	if ptr == nil {
		return "", fmt.Errorf("%w: %q", ErrUnknownField, name)
	}
	return *ptr, nil
}

// SetField overwrites an editable attribute.
func (p *Person) SetField(name, value string) error {
	ptr := p.fieldPtr(name)
	if ptr == nil {
		return fmt.Errorf("%w: %q", ErrUnknownField, name)
	}
	*ptr = value
	return nil
}

func (p *Person) fieldPtr(name string) *string {
	switch name {
	case FieldName:
		return &p.Name
	case FieldHeight:
		return &p.Height
	case FieldMass:
		return &p.Mass
	case FieldHairColor:
		return &p.HairColor
	case FieldSkinColor:
		return &p.SkinColor
	case FieldEyeColor:
		return &p.EyeColor
	case FieldBirthYear:
		return &p.BirthYear
	case FieldGender:
		return &p.Gender
	default:
		return nil
	}
}

// ParsedEdited returns the Edited timestamp as time.Time when possible.
func (p Person) ParsedEdited() time.Time {
	return parseTime(p.Edited)
}

// IDFromURL returns the last non-empty path segment of a record URL.
func IDFromURL(raw string) string {
	segments := strings.Split(strings.TrimSpace(raw), "/")
	for i := len(segments) - 1; i >= 0; i-- {
		if segments[i] != "" {
			return segments[i]
		}
	}
	return ""
}

func parseTime(value string) time.Time {
	if value == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339} {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}
	return time.Time{}
}
