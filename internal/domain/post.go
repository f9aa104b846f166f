package domain

// SocialMediaPost is one generated draft
//
// swagger:model
type SocialMediaPost struct {
	// enum: twitter,instagram,linkedin
	Platform Platform `json:"platform"`
	Content  string   `json:"content"`
}

// SeasonalContext frames the current period for marketing
type SeasonalContext struct {
	CurrentSeason   string   `json:"currentSeason"`
	UpcomingEvents  []string `json:"upcomingEvents"`
	MarketingAngles []string `json:"marketingAngles"`
}

// WebResearchResult is best-effort context gathered for a single request
type WebResearchResult struct {
	TrendingHashtags []string         `json:"trendingHashtags"`
	MarketInsights   []string         `json:"marketInsights"`
	SeasonalContext  *SeasonalContext `json:"seasonalContext,omitempty"`
	SearchQuery      string           `json:"searchQuery"`
}

// ResearchSkippedInsight is the placeholder insight of a default result.
// The prompt builder suppresses insights containing "skipped".
const ResearchSkippedInsight = "Web research was skipped or unavailable - using standard generation"

// ResearchExtractionFailedInsight marks a result built from scraped hashtags
const ResearchExtractionFailedInsight = "Research completed but structured data extraction failed"

// DefaultResearchResult is returned whenever research fails
func DefaultResearchResult(searchQuery string) WebResearchResult {
	return WebResearchResult{
		TrendingHashtags: []string{},
		MarketInsights:   []string{ResearchSkippedInsight},
		SearchQuery:      searchQuery,
	}
}
