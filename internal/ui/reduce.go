package ui

import (
	"github.com/kahvecikaan/socialposts/internal/domain"
	"github.com/shopspring/decimal"
	"strings"
)

// Action is a state transition understood by Reduce
type Action interface {
	isAction()
}

// SetField updates a text field of the product: name, description,
// category, tone or language
type SetField struct {
	Field string
	Value string
}

type SetPlatforms struct {
	Platforms []domain.Platform
}

// TogglePlatform adds or removes one platform from the selection
type TogglePlatform struct {
	Platform domain.Platform
}

type SetIncludeResearch struct {
	Value bool
}

// PriceChanged is typed price text. Text that is not a valid partial price
// is ignored.
type PriceChanged struct {
	Value string
}

type Touch struct {
	Field string
}

type TouchAll struct{}

// GenerateRequested marks every required field touched and starts loading
// when the product is valid
type GenerateRequested struct{}

type GenerateSucceeded struct {
	Posts []domain.SocialMediaPost
}

// GenerateFailed is a failure result returned by the action
type GenerateFailed struct {
	Code    domain.ErrorCode
	Message string
}

// GenerateErrored is a failure to reach the action at all
type GenerateErrored struct{}

// DescriptionRequested starts description generation, or only touches the
// name field when it is blank
type DescriptionRequested struct{}

type DescriptionSucceeded struct {
	Description string
}

// DescriptionFailed leaves the form unchanged apart from loading
type DescriptionFailed struct{}

type Reset struct{}

func (SetField) isAction()             {}
func (SetPlatforms) isAction()         {}
func (TogglePlatform) isAction()       {}
func (SetIncludeResearch) isAction()   {}
func (PriceChanged) isAction()         {}
func (Touch) isAction()                {}
func (TouchAll) isAction()             {}
func (GenerateRequested) isAction()    {}
func (GenerateSucceeded) isAction()    {}
func (GenerateFailed) isAction()       {}
func (GenerateErrored) isAction()      {}
func (DescriptionRequested) isAction() {}
func (DescriptionSucceeded) isAction() {}
func (DescriptionFailed) isAction()    {}
func (Reset) isAction()                {}

// requiredFields are touched by TouchAll
var requiredFields = []string{FieldName, FieldDescription, FieldPrice, FieldPlatforms}

// Reduce returns the state after applying action to s. s is not modified.
func Reduce(s State, action Action) State {
	next := s.clone()

	switch a := action.(type) {
	case SetField:
		switch a.Field {
		case FieldName:
			next.Product.Name = a.Value
		case FieldDescription:
			next.Product.Description = a.Value
		case FieldCategory:
			next.Product.Category = a.Value
		case FieldTone:
			next.Product.Tone = domain.Tone(a.Value)
		case FieldLanguage:
			next.Product.Language = domain.Language(a.Value)
		}

	case SetPlatforms:
		next.Product.Platforms = append([]domain.Platform(nil), a.Platforms...)

	case TogglePlatform:
		next.Product.Platforms = toggle(next.Product.Platforms, a.Platform)

	case SetIncludeResearch:
		next.Product.IncludeResearch = a.Value

	case PriceChanged:
		if !domain.IsValidPriceInput(a.Value) {
			return s
		}
		next.PriceInput = a.Value
		next.Product.Price = parsePrice(a.Value)

	case Touch:
		next.Touched[a.Field] = true

	case TouchAll:
		touchAll(&next)

	case GenerateRequested:
		touchAll(&next)
		if next.Valid() && !next.Loading {
			next.Loading = true
			next.Error = ""
		}

	case GenerateSucceeded:
		next.Loading = false
		next.Posts = append([]domain.SocialMediaPost(nil), a.Posts...)

	case GenerateFailed:
		code := a.Code
		if code == "" {
			code = domain.CodeInternal
		}
		next.Loading = false
		next.Error = code.Message(a.Message)
		next.Posts = nil

	case GenerateErrored:
		next.Loading = false
		next.Error = UnexpectedErrorMessage
		next.Posts = nil

	case DescriptionRequested:
		if strings.TrimSpace(next.Product.Name) == "" {
			next.Touched[FieldName] = true
			return next
		}
		next.GeneratingDescription = true

	case DescriptionSucceeded:
		next.GeneratingDescription = false
		next.Product.Description = a.Description

	case DescriptionFailed:
		next.GeneratingDescription = false

	case Reset:
		return Initial()
	}

	return next
}

func touchAll(s *State) {
	for _, field := range requiredFields {
		s.Touched[field] = true
	}
}

func toggle(platforms []domain.Platform, platform domain.Platform) []domain.Platform {
	for i, p := range platforms {
		if p == platform {
			return append(platforms[:i:i], platforms[i+1:]...)
		}
	}
	return append(platforms, platform)
}

// parsePrice reads accepted price text; "" and "." are zero
func parsePrice(value string) decimal.Decimal {
	price, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero
	}
	return price
}
