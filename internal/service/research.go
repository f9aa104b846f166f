package service

import (
	"context"
	"encoding/json"
	"github.com/hashicorp/go-hclog"
	"github.com/kahvecikaan/socialposts/internal/domain"
	"github.com/kahvecikaan/socialposts/internal/openai"
	"github.com/kahvecikaan/socialposts/internal/prompt"
	"regexp"
	"time"
)

const maxScrapedHashtags = 10

var (
	jsonBlock      = regexp.MustCompile(`(?s)\{.*\}`)
	hashtagPattern = regexp.MustCompile(`#\w+`)
)

// ResponsesClient is the part of the openai client used for web research
type ResponsesClient interface {
	CreateResponse(ctx context.Context, req openai.ResponseRequest) (*openai.Response, error)
}

type ResearchService interface {
	// PerformWebResearch never fails. Any problem degrades to
	// domain.DefaultResearchResult.
	PerformWebResearch(ctx context.Context, product domain.Product) domain.WebResearchResult
}

type researchService struct {
	log    hclog.Logger
	client ResponsesClient
	model  string
	now    func() time.Time
}

func NewResearchService(logger hclog.Logger, client ResponsesClient, model string, now func() time.Time) ResearchService {
	if now == nil {
		now = time.Now
	}
	return &researchService{
		log:    logger,
		client: client,
		model:  model,
		now:    now,
	}
}

// researchPayload mirrors the JSON object the model is asked to return
type researchPayload struct {
	TrendingHashtags []string                `json:"trendingHashtags"`
	MarketInsights   []string                `json:"marketInsights"`
	SeasonalContext  *domain.SeasonalContext `json:"seasonalContext"`
}

func (s *researchService) PerformWebResearch(ctx context.Context, product domain.Product) domain.WebResearchResult {
	now := s.now()
	query := prompt.SearchQuery(product, now)

	s.log.Debug("Performing web research", "product", product.Name, "query", query)

	resp, err := s.client.CreateResponse(ctx, openai.ResponseRequest{
		Model: s.model,
		Input: prompt.Research(product, now),
		Tools: []openai.Tool{openai.ToolWebSearchPreview},
	})
	if err != nil {
		s.log.Warn("Web research failed, continuing without it", "error", err)
		return domain.DefaultResearchResult(query)
	}

	result := parseResearch(resp.OutputText(), query)
	s.log.Debug("Web research finished",
		"hashtags", len(result.TrendingHashtags),
		"insights", len(result.MarketInsights),
		"seasonal", result.SeasonalContext != nil)
	return result
}

// parseResearch extracts the outermost {...} span of text. When the span is
// not valid JSON the hashtags are scraped from the whole text instead.
func parseResearch(text, query string) domain.WebResearchResult {
	if text == "" {
		return domain.DefaultResearchResult(query)
	}

	block := jsonBlock.FindString(text)
	if block == "" {
		return domain.DefaultResearchResult(query)
	}

	var payload researchPayload
	if err := json.Unmarshal([]byte(block), &payload); err != nil {
		return domain.WebResearchResult{
			TrendingHashtags: scrapeHashtags(text),
			MarketInsights:   []string{domain.ResearchExtractionFailedInsight},
			SearchQuery:      query,
		}
	}

	result := domain.WebResearchResult{
		TrendingHashtags: payload.TrendingHashtags,
		MarketInsights:   payload.MarketInsights,
		SeasonalContext:  payload.SeasonalContext,
		SearchQuery:      query,
	}
	if result.TrendingHashtags == nil {
		result.TrendingHashtags = []string{}
	}
	if result.MarketInsights == nil {
		result.MarketInsights = []string{}
	}
	return result
}

// scrapeHashtags returns the distinct hashtags of text in order of first appearance
func scrapeHashtags(text string) []string {
	tags := []string{}
	seen := map[string]struct{}{}
	for _, tag := range hashtagPattern.FindAllString(text, -1) {
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		tags = append(tags, tag)
		if len(tags) == maxScrapedHashtags {
			break
		}
	}
	return tags
}
