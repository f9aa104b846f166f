package ui

import (
	"github.com/kahvecikaan/socialposts/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func filled() State {
	s := Initial()
	s = Reduce(s, SetField{Field: FieldName, Value: "EcoBottle"})
	s = Reduce(s, SetField{Field: FieldDescription, Value: "Reusable insulated water bottle"})
	s = Reduce(s, PriceChanged{Value: "29.99"})
	return s
}

func TestInitial(t *testing.T) {
	s := Initial()

	assert.Equal(t, domain.ToneProfessional, s.Product.Tone)
	assert.Equal(t, domain.AllPlatforms, s.Product.Platforms)
	assert.Equal(t, domain.DefaultLanguage, s.Product.Language)
	assert.False(t, s.Product.IncludeResearch)
	assert.False(t, s.Valid())
	assert.Empty(t, s.VisibleErrors())
}

func TestReduceDoesNotModifyInput(t *testing.T) {
	s := Initial()

	next := Reduce(s, Touch{Field: FieldName})
	next = Reduce(next, TogglePlatform{Platform: domain.PlatformTwitter})

	assert.Empty(t, s.Touched)
	assert.Equal(t, domain.AllPlatforms, s.Product.Platforms)
	assert.True(t, next.Touched[FieldName])
	assert.Equal(t, []domain.Platform{domain.PlatformInstagram, domain.PlatformLinkedIn}, next.Product.Platforms)
}

func TestPriceChanged(t *testing.T) {
	testCases := []struct {
		name  string
		value string
		input string
		price string
	}{
		{"Whole number", "49", "49", "49"},
		{"Two decimals", "49.99", "49.99", "49.99"},
		{"Trailing dot", "49.", "49.", "49"},
		{"Only a dot", ".", ".", "0"},
		{"Cleared", "", "", "0"},
		{"Three decimals are ignored", "49.999", "12", "12"},
		{"Letters are ignored", "4a", "12", "12"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := Reduce(Initial(), PriceChanged{Value: "12"})

			s = Reduce(s, PriceChanged{Value: tc.value})

			assert.Equal(t, tc.input, s.PriceInput)
			assert.True(t, s.Product.Price.Equal(decimal.RequireFromString(tc.price)), "price %s", s.Product.Price)
		})
	}
}

func TestVisibleErrors(t *testing.T) {
	s := Initial()
	assert.Empty(t, s.VisibleErrors())

	s = Reduce(s, Touch{Field: FieldName})
	assert.Equal(t, domain.FieldErrors{FieldName: "Product name is required"}, s.VisibleErrors())

	s = Reduce(s, TouchAll{})
	visible := s.VisibleErrors()
	assert.Contains(t, visible, FieldDescription)
	assert.Contains(t, visible, FieldPrice)
	assert.NotContains(t, visible, FieldPlatforms)
}

func TestGenerateRequested(t *testing.T) {
	invalid := Reduce(Initial(), GenerateRequested{})
	assert.False(t, invalid.Loading)
	assert.True(t, invalid.Touched[FieldName])
	assert.True(t, invalid.Touched[FieldPlatforms])

	s := filled()
	s.Error = "previous failure"
	s = Reduce(s, GenerateRequested{})
	assert.True(t, s.Loading)
	assert.Empty(t, s.Error)
	assert.False(t, s.CanGenerate())
}

func TestGenerateLifecycle(t *testing.T) {
	posts := []domain.SocialMediaPost{{Platform: domain.PlatformTwitter, Content: "hi"}}

	s := Reduce(filled(), GenerateRequested{})
	s = Reduce(s, GenerateSucceeded{Posts: posts})
	assert.False(t, s.Loading)
	assert.Equal(t, posts, s.Posts)

	s = Reduce(s, GenerateRequested{})
	s = Reduce(s, GenerateFailed{Code: domain.CodeOpenAIRate, Message: "rate limited"})
	assert.False(t, s.Loading)
	assert.Nil(t, s.Posts)
	assert.Equal(t, domain.ErrorMessages[domain.CodeOpenAIRate], s.Error)
}

func TestGenerateFailedMessages(t *testing.T) {
	testCases := []struct {
		name    string
		action  Action
		message string
	}{
		{"Known code", GenerateFailed{Code: domain.CodeParse, Message: "raw"}, "Failed to process the response. Please try again."},
		{"Missing code", GenerateFailed{Message: "raw"}, "Something went wrong. Please try again later."},
		{"Unknown code", GenerateFailed{Code: "TEAPOT", Message: "I'm a teapot"}, "I'm a teapot"},
		{"Unreachable", GenerateErrored{}, UnexpectedErrorMessage},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := Reduce(Reduce(filled(), GenerateRequested{}), tc.action)
			assert.Equal(t, tc.message, s.Error)
		})
	}
}

func TestDescriptionLifecycle(t *testing.T) {
	blank := Reduce(Initial(), DescriptionRequested{})
	assert.False(t, blank.GeneratingDescription)
	assert.True(t, blank.Touched[FieldName])

	s := Reduce(Initial(), SetField{Field: FieldName, Value: "EcoBottle"})
	s = Reduce(s, DescriptionRequested{})
	require.True(t, s.GeneratingDescription)

	done := Reduce(s, DescriptionSucceeded{Description: "Keeps drinks cold."})
	assert.False(t, done.GeneratingDescription)
	assert.Equal(t, "Keeps drinks cold.", done.Product.Description)

	failed := Reduce(s, DescriptionFailed{})
	assert.False(t, failed.GeneratingDescription)
	assert.Empty(t, failed.Product.Description)
	assert.Empty(t, failed.Error)
}

func TestSetFields(t *testing.T) {
	s := Initial()
	s = Reduce(s, SetField{Field: FieldCategory, Value: "Technology"})
	s = Reduce(s, SetField{Field: FieldTone, Value: "urgent"})
	s = Reduce(s, SetField{Field: FieldLanguage, Value: "ja"})
	s = Reduce(s, SetIncludeResearch{Value: true})
	s = Reduce(s, SetPlatforms{Platforms: []domain.Platform{domain.PlatformLinkedIn}})

	assert.Equal(t, "Technology", s.Product.Category)
	assert.Equal(t, domain.ToneUrgent, s.Product.Tone)
	assert.Equal(t, domain.Language("ja"), s.Product.Language)
	assert.True(t, s.Product.IncludeResearch)
	assert.Equal(t, []domain.Platform{domain.PlatformLinkedIn}, s.Product.Platforms)
}

func TestReset(t *testing.T) {
	s := Reduce(filled(), GenerateRequested{})
	s = Reduce(s, GenerateSucceeded{Posts: []domain.SocialMediaPost{{Platform: domain.PlatformTwitter}}})

	s = Reduce(s, Reset{})

	assert.Equal(t, Initial(), s)
}
