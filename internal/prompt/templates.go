package prompt

import (
	"fmt"
	"github.com/kahvecikaan/socialposts/internal/domain"
	"time"
)

// GenerationSystemPrompt is sent with every post generation request
const GenerationSystemPrompt = "You are a social media marketing expert. Generate engaging, platform-appropriate posts. Always respond with valid JSON."

// DescriptionSystemPrompt is sent with every description request
const DescriptionSystemPrompt = "You are a marketing copywriter. Write concise, engaging product descriptions."

// Description renders the prompt asking for a short product description
func Description(productName string, language domain.Language) string {
	languageLine := ""
	if language != "" && language != domain.DefaultLanguage {
		languageLine = fmt.Sprintf("- Write in %s\n", language.Name())
	}

	return fmt.Sprintf(`Write a brief product description for %q.
Requirements:
- 1-2 sentences only
- Highlight key benefits or features
- Make it engaging and marketable
%s
Return only the description text, no quotes or extra formatting.`, productName, languageLine)
}

// SearchQuery is the query recorded on a research result
func SearchQuery(product domain.Product, now time.Time) string {
	category := product.Category
	if category == "" {
		category = "products"
	}
	return fmt.Sprintf("trending hashtags %s %s social media marketing %d", category, product.Name, now.Year())
}

// DateContext renders the current date line, e.g.
// "Current date: Wednesday, October 14, 2026"
func DateContext(now time.Time) string {
	return "Current date: " + now.Format("Monday, January 2, 2006")
}

// Research renders the web research instruction for product
func Research(product domain.Product, now time.Time) string {
	category := product.Category
	if category == "" {
		category = "General"
	}

	return fmt.Sprintf(`Research trending hashtags, seasonal context, and market insights for social media marketing.

%s

Product: %s
Description: %s
Category: %s

Please search for and provide:

1. **Seasonal & Holiday Context** (IMPORTANT)
   - What holidays, events, or observances are coming up in the next 2-4 weeks?
   - What seasonal themes are relevant right now (e.g., back-to-school, summer sales, holiday shopping)?
   - Any major shopping events approaching (Black Friday, Cyber Monday, Valentine's Day sales, etc.)?

2. **Trending Hashtags**
   - Currently trending hashtags related to this product category
   - Seasonal/holiday hashtags that are popular right now
   - Any viral trends or challenges that could be leveraged

3. **Market Insights for Marketing**
   - Recent consumer trends or news relevant to this product
   - Popular marketing angles being used for similar products
   - Any sales or promotional themes that resonate with consumers right now

Return your findings as a JSON object with this structure:
{
  "trendingHashtags": ["#hashtag1", "#hashtag2", ...],
  "marketInsights": ["insight 1", "insight 2", ...],
  "seasonalContext": {
    "currentSeason": "e.g., Holiday Season, Back to School, etc.",
    "upcomingEvents": ["event 1", "event 2"],
    "marketingAngles": ["angle 1", "angle 2"]
  }
}

Focus on making the social media posts timely, relevant, and aligned with current consumer sentiment and seasonal opportunities.`,
		DateContext(now), product.Name, product.Description, category)
}
