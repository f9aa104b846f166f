package domain

import (
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"strings"
	"testing"
)

func validProduct() Product {
	return Product{
		Name:        "EcoBottle Pro",
		Description: "A reusable insulated water bottle made from recycled steel.",
		Price:       decimal.RequireFromString("29.99"),
		Category:    "Health & Wellness",
		Tone:        ToneProfessional,
		Platforms:   []Platform{PlatformTwitter},
		Language:    DefaultLanguage,
	}
}

func TestValidateProduct(t *testing.T) {
	testCases := []struct {
		name    string
		modify  func(p *Product)
		field   string
		message string
	}{
		{"Valid", func(p *Product) {}, "", ""},
		{"Whitespace name", func(p *Product) { p.Name = "   " }, "name", "Product name is required"},
		{"Long name", func(p *Product) { p.Name = strings.Repeat("ü", 201) }, "name", "Product name must be 200 characters or less"},
		{"Name of 200 runes", func(p *Product) { p.Name = strings.Repeat("ü", 200) }, "", ""},
		{"Empty description", func(p *Product) { p.Description = "  " }, "description", "Description is required"},
		{"Short description", func(p *Product) { p.Description = "too short" }, "description", "Description must be at least 10 characters"},
		{"Long description", func(p *Product) { p.Description = strings.Repeat("d", 2001) }, "description", "Description must be 2000 characters or less"},
		{"Zero price", func(p *Product) { p.Price = decimal.Zero }, "price", "Price is required"},
		{"Negative price", func(p *Product) { p.Price = decimal.NewFromInt(-5) }, "price", "Price is required"},
		{"Price at maximum", func(p *Product) { p.Price = decimal.NewFromInt(1000000) }, "", ""},
		{"Price above maximum", func(p *Product) { p.Price = decimal.RequireFromString("1000000.01") }, "price", "Price must be less than $1,000,000"},
		{"No platforms", func(p *Product) { p.Platforms = nil }, "platforms", "At least one platform must be selected"},
		{"Only unknown platforms", func(p *Product) { p.Platforms = []Platform{"myspace"} }, "platforms", "At least one platform must be selected"},
		{"Empty category", func(p *Product) { p.Category = "" }, "", ""},
		{"Unknown category", func(p *Product) { p.Category = "Spaceships" }, "category", "Select a category from the list"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p := validProduct()
			tc.modify(&p)

			errs := ValidateProduct(p)

			if tc.field == "" {
				assert.Empty(t, errs)
				return
			}
			assert.Len(t, errs, 1)
			assert.Equal(t, tc.message, errs[tc.field])
		})
	}
}

func TestValidateProductReportsEveryField(t *testing.T) {
	errs := ValidateProduct(Product{})

	assert.Contains(t, errs, "name")
	assert.Contains(t, errs, "description")
	assert.Contains(t, errs, "price")
	assert.Contains(t, errs, "platforms")
}

func TestIsValidPriceInput(t *testing.T) {
	testCases := []struct {
		value string
		valid bool
	}{
		{"", true},
		{"49", true},
		{"49.", true},
		{"49.9", true},
		{"49.99", true},
		{".5", true},
		{"49.999", false},
		{"-5", false},
		{"4a", false},
		{"1.2.3", false},
	}

	for _, tc := range testCases {
		t.Run(tc.value, func(t *testing.T) {
			assert.Equal(t, tc.valid, IsValidPriceInput(tc.value))
		})
	}
}
