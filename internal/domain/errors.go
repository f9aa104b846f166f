package domain

import (
	"errors"
	"fmt"
)

// ErrorCode is the machine-readable failure category returned to the UI
type ErrorCode string

const (
	CodeValidation    ErrorCode = "VALIDATION_ERROR"
	CodeOpenAIInvalid ErrorCode = "OPENAI_INVALID_KEY"
	CodeOpenAIRate    ErrorCode = "OPENAI_RATE_LIMIT"
	CodeOpenAITimeout ErrorCode = "OPENAI_TIMEOUT"
	CodeOpenAI        ErrorCode = "OPENAI_ERROR"
	CodeParse         ErrorCode = "PARSE_ERROR"
	CodeInternal      ErrorCode = "INTERNAL_ERROR"
)

// ErrorMessages are the user-facing messages shown for each code
var ErrorMessages = map[ErrorCode]string{
	CodeOpenAIRate:    "We're experiencing high demand. Please try again in a moment.",
	CodeOpenAIInvalid: "Service configuration error. Please contact support.",
	CodeOpenAITimeout: "The request took too long. Please try again.",
	CodeOpenAI:        "Failed to generate posts. Please try again.",
	CodeValidation:    "Please check your input and try again.",
	CodeParse:         "Failed to process the response. Please try again.",
	CodeInternal:      "Something went wrong. Please try again later.",
}

// Message returns the user-facing message for c, falling back to fallback
func (c ErrorCode) Message(fallback string) string {
	if msg, ok := ErrorMessages[c]; ok {
		return msg
	}
	return fallback
}

// AppError is a classified application failure carrying an HTTP-like status
type AppError struct {
	Message    string
	Code       ErrorCode
	StatusCode int
	Details    any
}

func NewAppError(message string, code ErrorCode, statusCode int, details any) *AppError {
	return &AppError{Message: message, Code: code, StatusCode: statusCode, Details: details}
}

func (e *AppError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// AsAppError extracts an *AppError from err's chain
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
