// Package classification of Social Posts API
//
// # Documentation for Social Posts API
//
// Schemes: http
// BasePath: /
// Version: 1.0.0
//
// Consumes:
// - application/json
//
// Produces:
// - application/json
//
// swagger:meta
package http

import (
	"github.com/kahvecikaan/socialposts/internal/action"
	"github.com/kahvecikaan/socialposts/internal/domain"
)

// NOTE: Types defined here are purely for documentation purposes
// These types are not used by any of the handlers

// Generated posts, or a failure with its error code
// swagger:response generateResponse
type generateResponseWrapper struct {
	// in: body
	Body action.GenerateResponse
}

// A generated description, or a failure with its error code
// swagger:response descriptionResponse
type descriptionResponseWrapper struct {
	// in: body
	Body action.DescriptionResponse
}

// The choices offered by the product form
// swagger:response optionsResponse
type optionsResponseWrapper struct {
	// in: body
	Body Options
}

// swagger:parameters generatePosts
type generateParamsWrapper struct {
	// The product to write posts for.
	// in: body
	// required: true
	Body domain.GenerateRequest
}

// swagger:parameters generateDescription
type descriptionParamsWrapper struct {
	// in: body
	// required: true
	Body DescriptionRequest
}
