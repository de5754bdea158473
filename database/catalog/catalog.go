// Package catalog describes the reference data a deployment ensures exists:
// brand systems, accessories and equipment. A Catalog is plain data; the
// seed service receives it as a parameter, so callers can seed the built-in
// Default set, a file loaded from a storage disk, or a small test fixture.
package catalog

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("catalog: invalid")

// BrandSystem is a compatible equipment family.
type BrandSystem struct {
	Name        string `json:"name" yaml:"name" validate:"required,max=255"`
	Description string `json:"description" yaml:"description"`
}

// Accessory is an add-on sold or rented next to equipment.
type Accessory struct {
	Name        string  `json:"name" yaml:"name" validate:"required,max=255"`
	Category    string  `json:"category" yaml:"category" validate:"required,max=100"`
	Price       float64 `json:"price" yaml:"price" validate:"gte=0"`
	Description string  `json:"description" yaml:"description"`
}

// Equipment is a rentable item. BrandSystem names the system it belongs to
// and may be empty.
type Equipment struct {
	Category         string   `json:"category" yaml:"category" validate:"required,max=100"`
	Brand            string   `json:"brand" yaml:"brand" validate:"required,max=100"`
	Name             string   `json:"name" yaml:"name" validate:"required,max=255"`
	Description      string   `json:"description" yaml:"description"`
	ShortDescription string   `json:"short_description" yaml:"short_description" validate:"max=500"`
	DailyRate        float64  `json:"daily_rate" yaml:"daily_rate" validate:"gte=0"`
	Condition        string   `json:"condition" yaml:"condition" validate:"max=50"`
	ImageURLs        []string `json:"image_urls" yaml:"image_urls" validate:"dive,url"`
	BrandSystem      string   `json:"brand_system,omitempty" yaml:"brand_system,omitempty"`
}

// Catalog is the full seed data set, seeded in field order.
type Catalog struct {
	BrandSystems []BrandSystem `json:"brand_systems" yaml:"brand_systems" validate:"dive"`
	Accessories  []Accessory   `json:"accessories" yaml:"accessories" validate:"dive"`
	Equipment    []Equipment   `json:"equipment" yaml:"equipment" validate:"dive"`
}

// SerialNumber returns the serial number for the i-th (1-based) equipment
// entry of a catalog.
func SerialNumber(i int) string {
	return fmt.Sprintf("SN%06d", 1000+i)
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate checks field constraints and that names are unique within each
// list. Every problem found is reported in one error wrapping ErrInvalid.
func (c Catalog) Validate() error {
	var msgs []string

	if err := validate.Struct(c); err != nil {
		var ve validator.ValidationErrors
		if !errors.As(err, &ve) {
			return fmt.Errorf("%w: %v", ErrInvalid, err)
		}
		for _, fe := range ve {
			msgs = append(msgs, fieldError(fe))
		}
	}

	msgs = append(msgs, duplicates("brand_systems", c.BrandSystems, func(b BrandSystem) string { return b.Name })...)
	msgs = append(msgs, duplicates("accessories", c.Accessories, func(a Accessory) string { return a.Name })...)
	msgs = append(msgs, duplicates("equipment", c.Equipment, func(e Equipment) string { return e.Name })...)

	if len(msgs) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(msgs, "; "))
	}
	return nil
}

// Counts returns the number of entries per list.
func (c Catalog) Counts() (brandSystems, accessories, equipment int) {
	return len(c.BrandSystems), len(c.Accessories), len(c.Equipment)
}

func duplicates[T any](list string, items []T, name func(T) string) []string {
	seen := make(map[string]int, len(items))
	var out []string
	for i, it := range items {
		n := name(it)
		if first, ok := seen[n]; ok {
			out = append(out, fmt.Sprintf("%s[%d].name %q duplicates %s[%d]", list, i, n, list, first))
			continue
		}
		seen[n] = i
	}
	return out
}

func fieldError(fe validator.FieldError) string {
	field := strings.TrimPrefix(fe.Namespace(), "Catalog.")
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "gte":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	case "url":
		return fmt.Sprintf("%s must be a URL, got %q", field, fe.Value())
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}
