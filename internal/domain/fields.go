package domain

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// FieldErrors maps a form field name to its message
type FieldErrors map[string]string

// ValidateProduct runs the form-level checks on p. Every field is checked
// so all violations surface together; it never fails.
func ValidateProduct(p Product) FieldErrors {
	errs := FieldErrors{}

	switch {
	case strings.TrimSpace(p.Name) == "":
		errs["name"] = "Product name is required"
	case utf8.RuneCountInString(p.Name) > NameMaxLength:
		errs["name"] = fmt.Sprintf("Product name must be %d characters or less", NameMaxLength)
	}

	switch n := utf8.RuneCountInString(p.Description); {
	case strings.TrimSpace(p.Description) == "":
		errs["description"] = "Description is required"
	case n < DescriptionMinLength:
		errs["description"] = fmt.Sprintf("Description must be at least %d characters", DescriptionMinLength)
	case n > DescriptionMaxLength:
		errs["description"] = fmt.Sprintf("Description must be %d characters or less", DescriptionMaxLength)
	}

	switch {
	case !p.Price.IsPositive():
		errs["price"] = "Price is required"
	case p.Price.GreaterThan(PriceMax):
		errs["price"] = "Price must be less than $1,000,000"
	}

	if !hasKnownPlatform(p.Platforms) {
		errs["platforms"] = "At least one platform must be selected"
	}

	if p.Category != "" && !knownCategory(p.Category) {
		errs["category"] = "Select a category from the list"
	}
	if p.Tone != "" && !p.Tone.Valid() {
		errs["tone"] = "Select a tone from the list"
	}
	if p.Language != "" && !p.Language.Valid() {
		errs["language"] = "Select a language from the list"
	}

	return errs
}

func hasKnownPlatform(platforms []Platform) bool {
	for _, p := range platforms {
		if p.Valid() {
			return true
		}
	}
	return false
}

func knownCategory(category string) bool {
	for _, c := range Categories {
		if c == category {
			return true
		}
	}
	return false
}

var priceInputPattern = regexp.MustCompile(`^\d*\.?\d{0,2}$`)

// IsValidPriceInput reports whether a partially typed price may be
// accepted by the form: digits with at most two decimal places.
func IsValidPriceInput(value string) bool {
	return value == "" || priceInputPattern.MatchString(value)
}
