package service

import (
	"context"
	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"
	"github.com/kahvecikaan/socialposts/internal/domain"
	"github.com/kahvecikaan/socialposts/internal/events"
	"github.com/kahvecikaan/socialposts/internal/prompt"
	"strings"
	"time"
)

// PostService runs one generation request end to end: optional web
// research, prompt construction, the model call and platform filtering.
type PostService interface {
	GeneratePosts(ctx context.Context, product domain.Product) ([]domain.SocialMediaPost, error)
	GenerateDescription(ctx context.Context, productName string, language domain.Language) (string, error)
}

type postService struct {
	research   ResearchService
	prompts    *prompt.Builder
	generation GenerationService
	eventBus   *events.EventBus[any]
	logger     hclog.Logger
	now        func() time.Time
}

func NewPostService(
	research ResearchService,
	prompts *prompt.Builder,
	generation GenerationService,
	eventBus *events.EventBus[any],
	logger hclog.Logger) PostService {
	return &postService{
		research:   research,
		prompts:    prompts,
		generation: generation,
		eventBus:   eventBus,
		logger:     logger,
		now:        time.Now,
	}
}

func (s *postService) GeneratePosts(ctx context.Context, product domain.Product) ([]domain.SocialMediaPost, error) {
	requestID := uuid.New().String()
	started := s.now()
	log := s.logger.With("request_id", requestID)

	log.Info("Generating posts",
		"product", product.Name,
		"platforms", product.Platforms,
		"research", product.IncludeResearch)

	s.publish(events.GenerationStarted{
		RequestID:       requestID,
		ProductName:     product.Name,
		Platforms:       platformNames(product.Platforms),
		IncludeResearch: product.IncludeResearch,
	})

	var research *domain.WebResearchResult
	if product.IncludeResearch {
		result := s.research.PerformWebResearch(ctx, product)
		research = &result

		s.publish(events.ResearchCompleted{
			RequestID:    requestID,
			HashtagCount: len(result.TrendingHashtags),
			InsightCount: len(result.MarketInsights),
			Degraded:     isDegraded(result),
		})
	}

	userPrompt := s.prompts.Build(product, research)

	posts, err := s.generation.CallLLM(ctx, userPrompt)
	if err != nil {
		appErr := classifyError(err, "An unexpected error occurred while generating posts")
		log.Error("Unable to generate posts", "code", appErr.Code, "error", err)
		s.publish(events.GenerationFailed{
			RequestID: requestID,
			Code:      string(appErr.Code),
			Message:   appErr.Message,
		})
		return nil, appErr
	}

	filtered := filterPosts(posts, product)
	if dropped := len(posts) - len(filtered); dropped > 0 {
		log.Warn("Dropped posts for unrequested platforms", "dropped", dropped)
	}

	duration := s.now().Sub(started)
	log.Info("Generated posts", "count", len(filtered), "duration", duration)
	s.publish(events.GenerationCompleted{
		RequestID: requestID,
		PostCount: len(filtered),
		Dropped:   len(posts) - len(filtered),
		Duration:  duration,
	})
	return filtered, nil
}

func (s *postService) GenerateDescription(ctx context.Context, productName string, language domain.Language) (string, error) {
	requestID := uuid.New().String()
	log := s.logger.With("request_id", requestID)
	log.Debug("Generating description", "product", productName)

	description, err := s.generation.GenerateDescription(ctx, productName, language)
	if err != nil {
		log.Error("Unable to generate description", "error", err)
		return "", err
	}

	s.publish(events.DescriptionGenerated{
		RequestID:   requestID,
		ProductName: productName,
		Length:      len([]rune(description)),
	})
	return description, nil
}

func (s *postService) publish(event any) {
	if s.eventBus != nil {
		s.eventBus.Publish(event)
	}
}

// filterPosts keeps the posts whose platform was requested, in model order
func filterPosts(posts []domain.SocialMediaPost, product domain.Product) []domain.SocialMediaPost {
	filtered := make([]domain.SocialMediaPost, 0, len(posts))
	for _, post := range posts {
		if product.HasPlatform(post.Platform) {
			filtered = append(filtered, post)
		}
	}
	return filtered
}

func isDegraded(result domain.WebResearchResult) bool {
	for _, insight := range result.MarketInsights {
		if strings.Contains(insight, "skipped") || insight == domain.ResearchExtractionFailedInsight {
			return true
		}
	}
	return false
}

func platformNames(platforms []domain.Platform) []string {
	names := make([]string, len(platforms))
	for i, p := range platforms {
		names[i] = string(p)
	}
	return names
}
