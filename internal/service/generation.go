package service

import (
	"context"
	"encoding/json"
	"github.com/hashicorp/go-hclog"
	"github.com/kahvecikaan/socialposts/internal/config"
	"github.com/kahvecikaan/socialposts/internal/domain"
	"github.com/kahvecikaan/socialposts/internal/openai"
	"github.com/kahvecikaan/socialposts/internal/prompt"
	"net/http"
	"strings"
)

// ChatClient is the part of the openai client used for generation
type ChatClient interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (*openai.ChatCompletionResponse, error)
}

type GenerationService interface {
	// CallLLM sends a built prompt and returns the posts the model produced
	CallLLM(ctx context.Context, userPrompt string) ([]domain.SocialMediaPost, error)
	GenerateDescription(ctx context.Context, productName string, language domain.Language) (string, error)
}

type generationService struct {
	log         hclog.Logger
	client      ChatClient
	generation  config.Generation
	description config.Description
}

func NewGenerationService(logger hclog.Logger, client ChatClient, cfg *config.Config) GenerationService {
	return &generationService{
		log:         logger,
		client:      client,
		generation:  cfg.Generation,
		description: cfg.Description,
	}
}

func (s *generationService) CallLLM(ctx context.Context, userPrompt string) ([]domain.SocialMediaPost, error) {
	s.log.Debug("Calling model for posts", "model", s.generation.Model, "prompt_length", len(userPrompt))
	s.log.Trace("Generation prompt", "prompt", userPrompt)

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.generation.Model,
		Messages: []openai.Message{
			{Role: "system", Content: prompt.GenerationSystemPrompt},
			{Role: "user", Content: userPrompt},
		},
		Temperature:    s.generation.Temperature,
		MaxTokens:      s.generation.MaxTokens,
		ResponseFormat: &openai.ResponseFormat{Type: "json_object"},
	})
	if err != nil {
		appErr := classifyError(err, "An unexpected error occurred while generating posts")
		s.log.Error("Post generation failed", "code", appErr.Code, "error", err)
		return nil, appErr
	}

	content := resp.Content()
	if content == "" {
		return nil, domain.NewAppError("OpenAI returned an empty response", domain.CodeOpenAI, http.StatusBadGateway, nil)
	}

	posts, err := parsePosts(content)
	if err != nil {
		s.log.Error("Unable to parse model output", "error", err)
		return nil, err
	}

	s.log.Debug("Model returned posts", "count", len(posts))
	return posts, nil
}

// parsePosts decodes {"posts": [{platform, content}, ...]}. A missing or
// non-array posts field is a parse failure.
func parsePosts(content string) ([]domain.SocialMediaPost, error) {
	var body map[string]json.RawMessage
	if err := json.Unmarshal([]byte(content), &body); err != nil {
		return nil, domain.NewAppError("Failed to parse OpenAI response as JSON", domain.CodeParse, http.StatusBadGateway,
			map[string]string{"rawContent": content})
	}

	raw, ok := body["posts"]
	if !ok || !strings.HasPrefix(strings.TrimSpace(string(raw)), "[") {
		return nil, domain.NewAppError("OpenAI response missing posts array", domain.CodeParse, http.StatusBadGateway, nil)
	}

	var posts []domain.SocialMediaPost
	if err := json.Unmarshal(raw, &posts); err != nil {
		return nil, domain.NewAppError("Failed to parse OpenAI response as JSON", domain.CodeParse, http.StatusBadGateway,
			map[string]string{"rawContent": content})
	}
	return posts, nil
}

func (s *generationService) GenerateDescription(ctx context.Context, productName string, language domain.Language) (string, error) {
	s.log.Debug("Generating product description", "product", productName, "language", language)

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.generation.Model,
		Messages: []openai.Message{
			{Role: "system", Content: prompt.DescriptionSystemPrompt},
			{Role: "user", Content: prompt.Description(productName, language)},
		},
		Temperature: s.description.Temperature,
		MaxTokens:   s.description.MaxTokens,
	})
	if err != nil {
		appErr := classifyError(err, "Failed to generate description")
		s.log.Error("Description generation failed", "code", appErr.Code, "error", err)
		return "", appErr
	}

	content := strings.TrimSpace(resp.Content())
	if content == "" {
		return "", domain.NewAppError("OpenAI returned an empty response", domain.CodeOpenAI, http.StatusBadGateway, nil)
	}
	return content, nil
}
