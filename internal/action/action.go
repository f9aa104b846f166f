// Package action is the boundary the user interface calls. It validates
// untrusted input, runs the post service and converts every outcome into a
// serializable result union: the caller never sees a raw error.
package action

import (
	"context"
	"encoding/json"
	"errors"
	"github.com/hashicorp/go-hclog"
	"github.com/kahvecikaan/socialposts/internal/domain"
	"github.com/kahvecikaan/socialposts/internal/service"
	"net/http"
	"strings"
	"time"
)

const unexpectedError = "An unexpected error occurred"

// Failure is the error arm of every result union
type Failure struct {
	Error   string           `json:"error"`
	Code    domain.ErrorCode `json:"code"`
	Details any              `json:"details,omitempty"`

	status int
}

// StatusCode is the HTTP status a transport should answer f with
func (f *Failure) StatusCode() int {
	switch {
	case f == nil:
		return http.StatusOK
	case f.Code == domain.CodeValidation:
		return http.StatusUnprocessableEntity
	case f.Code == domain.CodeInternal:
		return http.StatusInternalServerError
	case f.status > 0:
		return f.status
	}
	return http.StatusBadGateway
}

// GeneratedPosts is the success arm of GenerateResponse
type GeneratedPosts struct {
	Posts       []domain.SocialMediaPost `json:"posts"`
	GeneratedAt time.Time                `json:"generatedAt"`
	Count       int                      `json:"count"`
}

// GenerateResponse carries exactly one of GeneratedPosts or Failure
//
// swagger:model
type GenerateResponse struct {
	Success bool `json:"success"`
	*GeneratedPosts
	*Failure
}

// DescriptionResponse is {success:true, description} or a failure
//
// swagger:model
type DescriptionResponse struct {
	Success     bool   `json:"success"`
	Description string `json:"description,omitempty"`
	*Failure
}

type Actions struct {
	posts      service.PostService
	validation *domain.Validation
	log        hclog.Logger
	now        func() time.Time
}

func New(posts service.PostService, validation *domain.Validation, logger hclog.Logger) *Actions {
	return &Actions{
		posts:      posts,
		validation: validation,
		log:        logger,
		now:        time.Now,
	}
}

// GeneratePosts decodes raw as {"product": {...}}, validates it and
// generates posts. The model is never called for invalid input.
func (a *Actions) GeneratePosts(ctx context.Context, raw json.RawMessage) GenerateResponse {
	var req domain.GenerateRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		a.log.Debug("Unable to decode product", "error", err)
		return GenerateResponse{Failure: decodeFailure(err)}
	}

	if errs := a.validation.Validate(req); len(errs) > 0 {
		a.log.Debug("Product failed validation", "errors", errs.Errors())
		return GenerateResponse{Failure: &Failure{
			Error:   "Invalid product data",
			Code:    domain.CodeValidation,
			Details: errs,
		}}
	}

	posts, err := a.posts.GeneratePosts(ctx, req.Product.Product())
	if err != nil {
		return GenerateResponse{Failure: a.failure(err)}
	}

	return GenerateResponse{
		Success: true,
		GeneratedPosts: &GeneratedPosts{
			Posts:       posts,
			GeneratedAt: a.now().UTC(),
			Count:       len(posts),
		},
	}
}

// GenerateDescription writes a short description for productName
func (a *Actions) GenerateDescription(ctx context.Context, productName string, language domain.Language) DescriptionResponse {
	if strings.TrimSpace(productName) == "" {
		return DescriptionResponse{Failure: &Failure{
			Error: "Product name is required",
			Code:  domain.CodeValidation,
			Details: domain.ValidationErrors{
				{Field: "name", Message: "Product name is required"},
			},
		}}
	}
	if language == "" {
		language = domain.DefaultLanguage
	}
	if !language.Valid() {
		return DescriptionResponse{Failure: &Failure{
			Error: "Unsupported language",
			Code:  domain.CodeValidation,
			Details: domain.ValidationErrors{
				{Field: "language", Message: "Unsupported language"},
			},
		}}
	}

	description, err := a.posts.GenerateDescription(ctx, strings.TrimSpace(productName), language)
	if err != nil {
		return DescriptionResponse{Failure: a.failure(err)}
	}
	return DescriptionResponse{Success: true, Description: description}
}

func (a *Actions) failure(err error) *Failure {
	if appErr, ok := domain.AsAppError(err); ok {
		return &Failure{Error: appErr.Message, Code: appErr.Code, Details: appErr.Details, status: appErr.StatusCode}
	}
	a.log.Error("Unclassified failure", "error", err)
	return &Failure{Error: unexpectedError, Code: domain.CodeInternal}
}

// decodeFailure reports a malformed body as a validation failure so that,
// e.g., a string price is rejected the same way a negative one is
func decodeFailure(err error) *Failure {
	field, message := "product", "Invalid product data"

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		field = typeErr.Field
		message = "Expected " + typeErr.Type.String() + ", got " + typeErr.Value
	}

	return &Failure{
		Error:   "Invalid product data",
		Code:    domain.CodeValidation,
		Details: domain.ValidationErrors{{Field: field, Message: message}},
	}
}
