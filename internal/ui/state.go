// Package ui holds the product form state of a post generator front-end.
// State is a plain value; every change goes through Reduce.
package ui

import (
	"github.com/kahvecikaan/socialposts/internal/domain"
	"github.com/shopspring/decimal"
)

// UnexpectedErrorMessage is shown when an action could not be reached at all
const UnexpectedErrorMessage = "An unexpected error occurred. Please try again."

// Form field names used for touched tracking and field errors
const (
	FieldName        = "name"
	FieldDescription = "description"
	FieldPrice       = "price"
	FieldCategory    = "category"
	FieldTone        = "tone"
	FieldPlatforms   = "platforms"
	FieldLanguage    = "language"
)

type State struct {
	Product               domain.Product
	PriceInput            string
	Posts                 []domain.SocialMediaPost
	Touched               map[string]bool
	Loading               bool
	GeneratingDescription bool
	Error                 string
}

// Initial is the state of an empty form
func Initial() State {
	return State{
		Product: domain.Product{
			Price:     decimal.Zero,
			Tone:      domain.ToneProfessional,
			Platforms: append([]domain.Platform(nil), domain.AllPlatforms...),
			Language:  domain.DefaultLanguage,
		},
		Touched: map[string]bool{},
	}
}

// Errors returns every field error of the current product
func (s State) Errors() domain.FieldErrors {
	return domain.ValidateProduct(s.Product)
}

// VisibleErrors returns the field errors of touched fields only
func (s State) VisibleErrors() domain.FieldErrors {
	visible := domain.FieldErrors{}
	for field, msg := range s.Errors() {
		if s.Touched[field] {
			visible[field] = msg
		}
	}
	return visible
}

func (s State) Valid() bool {
	return len(s.Errors()) == 0
}

// CanGenerate reports whether a generate request may be sent
func (s State) CanGenerate() bool {
	return s.Valid() && !s.Loading
}

// clone copies the reference fields so reductions never alias their input
func (s State) clone() State {
	next := s
	next.Touched = make(map[string]bool, len(s.Touched))
	for k, v := range s.Touched {
		next.Touched[k] = v
	}
	next.Product.Platforms = append([]domain.Platform(nil), s.Product.Platforms...)
	next.Posts = append([]domain.SocialMediaPost(nil), s.Posts...)
	return next
}
