package http

import (
	"encoding/json"
	"github.com/hashicorp/go-hclog"
	"github.com/kahvecikaan/socialposts/internal/action"
	"github.com/kahvecikaan/socialposts/internal/config"
	"github.com/kahvecikaan/socialposts/internal/domain"
	"io"
	"net/http"
)

// maxBodyBytes bounds request bodies; descriptions are at most 2000 characters
const maxBodyBytes = 1 << 20

type PostHandler struct {
	actions *action.Actions
	config  *config.Config
	logger  hclog.Logger
}

func NewPostHandler(actions *action.Actions, cfg *config.Config, log hclog.Logger) *PostHandler {
	return &PostHandler{
		actions: actions,
		config:  cfg,
		logger:  log,
	}
}

// GeneratePosts handles POST /api/generate
//
// swagger:route POST /api/generate posts generatePosts
//
// Generates social media posts for a product.
//
// Responses:
//
//	200: generateResponse
//	422: generateResponse
//	429: generateResponse
//	500: generateResponse
//	502: generateResponse
func (h *PostHandler) GeneratePosts(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		h.logger.Error("Error reading request body", "request_id", RequestID(r.Context()), "error", err)
		writeJSON(w, http.StatusRequestEntityTooLarge, action.GenerateResponse{Failure: &action.Failure{
			Error: "Request body too large",
			Code:  domain.CodeValidation,
		}})
		return
	}

	resp := h.actions.GeneratePosts(r.Context(), body)
	if !resp.Success {
		h.logger.Debug("Generation failed", "request_id", RequestID(r.Context()), "code", resp.Code)
	}
	writeJSON(w, resp.StatusCode(), resp)
}

// DescriptionRequest is the body of POST /api/description
//
// swagger:model
type DescriptionRequest struct {
	// required: true
	// example: EcoBottle Pro
	Name string `json:"name"`

	// example: en
	Language domain.Language `json:"language,omitempty"`
}

// GenerateDescription handles POST /api/description
//
// swagger:route POST /api/description posts generateDescription
//
// Writes a short product description from the product name.
//
// Responses:
//
//	200: descriptionResponse
//	422: descriptionResponse
//	500: descriptionResponse
func (h *PostHandler) GenerateDescription(w http.ResponseWriter, r *http.Request) {
	var req DescriptionRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		h.logger.Error("Error decoding description request", "request_id", RequestID(r.Context()), "error", err)
		writeJSON(w, http.StatusUnprocessableEntity, action.DescriptionResponse{Failure: &action.Failure{
			Error: "Invalid request data",
			Code:  domain.CodeValidation,
		}})
		return
	}

	resp := h.actions.GenerateDescription(r.Context(), req.Name, req.Language)
	writeJSON(w, resp.StatusCode(), resp)
}

// ToneOption is a selectable tone
type ToneOption struct {
	Value domain.Tone `json:"value"`
	Label string      `json:"label"`
}

// PlatformOption is a selectable platform with its limits
type PlatformOption struct {
	Value        domain.Platform `json:"value"`
	Label        string          `json:"label"`
	MaxLength    int             `json:"maxLength"`
	HashtagLimit int             `json:"hashtagLimit"`
}

// Options lists every choice the product form offers
//
// swagger:model
type Options struct {
	Tones      []ToneOption          `json:"tones"`
	Platforms  []PlatformOption      `json:"platforms"`
	Languages  []domain.LanguageInfo `json:"languages"`
	Categories []string              `json:"categories"`
}

// ListOptions handles GET /api/options
//
// swagger:route GET /api/options options listOptions
//
// Returns the tones, platforms, languages and categories the form offers.
//
// Responses:
//
//	200: optionsResponse
func (h *PostHandler) ListOptions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, BuildOptions(h.config))
}

// BuildOptions renders the form choices from cfg
func BuildOptions(cfg *config.Config) Options {
	opts := Options{
		Languages:  domain.Languages,
		Categories: domain.Categories,
	}
	for _, tone := range domain.AllTones {
		opts.Tones = append(opts.Tones, ToneOption{Value: tone, Label: tone.Label()})
	}
	for _, platform := range domain.AllPlatforms {
		profile := cfg.Profile(platform)
		opts.Platforms = append(opts.Platforms, PlatformOption{
			Value:        platform,
			Label:        profile.Name,
			MaxLength:    profile.MaxLength,
			HashtagLimit: profile.HashtagLimit,
		})
	}
	return opts
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
