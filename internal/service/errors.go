package service

import (
	"context"
	"errors"
	"github.com/kahvecikaan/socialposts/internal/domain"
	"github.com/kahvecikaan/socialposts/internal/openai"
	"net"
	"net/http"
)

// classifyError maps a transport failure onto the application taxonomy.
// internalMessage is used for failures that match no known category.
func classifyError(err error, internalMessage string) *domain.AppError {
	if appErr, ok := domain.AsAppError(err); ok {
		return appErr
	}

	if errors.Is(err, openai.ErrMissingAPIKey) {
		return domain.NewAppError("OpenAI API key is not configured", domain.CodeOpenAIInvalid, http.StatusInternalServerError, nil)
	}

	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.StatusCode {
		case http.StatusUnauthorized:
			return domain.NewAppError("Invalid OpenAI API key", domain.CodeOpenAIInvalid, http.StatusUnauthorized, nil)
		case http.StatusTooManyRequests:
			return domain.NewAppError("OpenAI rate limit exceeded. Please try again later.", domain.CodeOpenAIRate, http.StatusTooManyRequests, nil)
		case http.StatusRequestTimeout:
			return domain.NewAppError("OpenAI request timed out. Please try again.", domain.CodeOpenAITimeout, http.StatusRequestTimeout, nil)
		}
		message := apiErr.Message
		if message == "" {
			message = "OpenAI API error"
		}
		status := apiErr.StatusCode
		if status == 0 {
			status = http.StatusBadGateway
		}
		return domain.NewAppError(message, domain.CodeOpenAI, status, nil)
	}

	if isTimeout(err) {
		return domain.NewAppError("Request to OpenAI timed out. Please try again.", domain.CodeOpenAITimeout, http.StatusRequestTimeout, nil)
	}

	if errors.Is(err, openai.ErrMalformedResponse) {
		return domain.NewAppError("OpenAI returned an unreadable response", domain.CodeOpenAI, http.StatusBadGateway, nil)
	}

	return domain.NewAppError(internalMessage, domain.CodeInternal, http.StatusInternalServerError, map[string]string{
		"originalError": err.Error(),
	})
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
