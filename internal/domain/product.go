package domain

import (
	"github.com/shopspring/decimal"
	"strings"
)

// Tone selects the stylistic guidance given to the model
type Tone string

const (
	ToneProfessional  Tone = "professional"
	ToneCasual        Tone = "casual"
	ToneHumorous      Tone = "humorous"
	ToneUrgent        Tone = "urgent"
	ToneInspirational Tone = "inspirational"
)

// AllTones lists the tones in display order
var AllTones = []Tone{ToneProfessional, ToneCasual, ToneHumorous, ToneUrgent, ToneInspirational}

// Label returns the tone name with the first letter upper-cased
func (t Tone) Label() string {
	if t == "" {
		return ""
	}
	return strings.ToUpper(string(t[:1])) + string(t[1:])
}

// Valid reports whether t is one of the known tones
func (t Tone) Valid() bool {
	for _, known := range AllTones {
		if t == known {
			return true
		}
	}
	return false
}

// Platform is a supported social media destination
type Platform string

const (
	PlatformTwitter   Platform = "twitter"
	PlatformInstagram Platform = "instagram"
	PlatformLinkedIn  Platform = "linkedin"
)

// AllPlatforms is the default platform selection
var AllPlatforms = []Platform{PlatformTwitter, PlatformInstagram, PlatformLinkedIn}

func (p Platform) Valid() bool {
	for _, known := range AllPlatforms {
		if p == known {
			return true
		}
	}
	return false
}

// Language is the output language of generated text
type Language string

const DefaultLanguage Language = "en"

// LanguageInfo pairs a language code with its English name
type LanguageInfo struct {
	Code Language `json:"code"`
	Name string   `json:"name"`
}

// Languages lists every supported output language in display order
var Languages = []LanguageInfo{
	{"en", "English"},
	{"es", "Spanish"},
	{"fr", "French"},
	{"de", "German"},
	{"it", "Italian"},
	{"pt", "Portuguese"},
	{"nl", "Dutch"},
	{"pl", "Polish"},
	{"lt", "Lithuanian"},
	{"uk", "Ukrainian"},
	{"zh", "Chinese"},
	{"ja", "Japanese"},
	{"ko", "Korean"},
}

// Name returns the English name of the language, or the raw code when unknown
func (l Language) Name() string {
	for _, info := range Languages {
		if info.Code == l {
			return info.Name
		}
	}
	return string(l)
}

func (l Language) Valid() bool {
	for _, info := range Languages {
		if info.Code == l {
			return true
		}
	}
	return false
}

// Categories are the product categories offered by the form
var Categories = []string{
	"Health & Wellness",
	"Technology",
	"Fashion & Apparel",
	"Beauty & Skincare",
	"Food & Beverage",
	"Home & Living",
	"Sports & Fitness",
	"Electronics",
	"Travel & Leisure",
	"Education",
	"Finance & Business",
	"Entertainment",
	"Pets & Animals",
	"Automotive",
	"Other",
}

// Field limits shared by schema and form validation
const (
	NameMaxLength        = 200
	DescriptionMinLength = 10
	DescriptionMaxLength = 2000
	CategoryMaxLength    = 100
)

// PriceMax is the largest accepted price
var PriceMax = decimal.NewFromInt(1000000)

// Product is a validated product description. It is passed by value and
// never modified after validation.
type Product struct {
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	Price           decimal.Decimal `json:"price"`
	Category        string          `json:"category,omitempty"`
	Tone            Tone            `json:"tone"`
	Platforms       []Platform      `json:"platforms"`
	IncludeResearch bool            `json:"includeResearch"`
	Language        Language        `json:"language"`
}

// HasPlatform reports whether p is one of the selected platforms
func (p Product) HasPlatform(platform Platform) bool {
	for _, selected := range p.Platforms {
		if selected == platform {
			return true
		}
	}
	return false
}

// ProductInput is the raw product shape accepted at the server boundary.
// Optional fields are left zero (or nil) when absent and receive their
// defaults in Product().
//
// swagger:model
type ProductInput struct {
	// required: true
	// max length: 200
	// example: EcoBottle Pro
	Name string `json:"name" validate:"required,notblank,max=200"`

	// required: true
	// min length: 10
	// max length: 2000
	Description string `json:"description" validate:"required,min=10,max=2000"`

	// required: true
	// minimum: 0
	// maximum: 1000000
	// example: 49.99
	Price *decimal.Decimal `json:"price" validate:"required,gte=0,lte=1000000"`

	// max length: 100
	Category string `json:"category,omitempty" validate:"max=100"`

	// enum: professional,casual,humorous,urgent,inspirational
	Tone Tone `json:"tone,omitempty" validate:"omitempty,oneof=professional casual humorous urgent inspirational"`

	// min items: 1
	Platforms []Platform `json:"platforms,omitempty" validate:"omitnil,min=1,dive,oneof=twitter instagram linkedin"`

	IncludeResearch bool `json:"includeResearch,omitempty"`

	// enum: en,es,fr,de,it,pt,nl,pl,lt,uk,zh,ja,ko
	Language Language `json:"language,omitempty" validate:"omitempty,oneof=en es fr de it pt nl pl lt uk zh ja ko"`
}

// Product applies defaults and returns the immutable product value. It
// must only be called on input that passed validation.
func (in ProductInput) Product() Product {
	p := Product{
		Name:            in.Name,
		Description:     in.Description,
		Category:        in.Category,
		Tone:            in.Tone,
		IncludeResearch: in.IncludeResearch,
		Language:        in.Language,
	}
	if in.Price != nil {
		p.Price = *in.Price
	}
	if p.Tone == "" {
		p.Tone = ToneProfessional
	}
	if p.Language == "" {
		p.Language = DefaultLanguage
	}
	if in.Platforms == nil {
		p.Platforms = append([]Platform(nil), AllPlatforms...)
	} else {
		p.Platforms = append([]Platform(nil), in.Platforms...)
	}
	return p
}

// GenerateRequest wraps the product for the generate endpoint
//
// swagger:model
type GenerateRequest struct {
	// required: true
	Product *ProductInput `json:"product" validate:"required"`
}
