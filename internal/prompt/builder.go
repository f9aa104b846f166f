// Package prompt turns a validated product into the instruction text sent
// to the model. Every function here is pure: identical input produces
// byte-identical output.
package prompt

import (
	"fmt"
	"github.com/kahvecikaan/socialposts/internal/config"
	"github.com/kahvecikaan/socialposts/internal/domain"
	"strings"
)

// Builder renders generation prompts for a fixed configuration
type Builder struct {
	platforms        map[domain.Platform]config.PlatformProfile
	postsPerPlatform int
}

func NewBuilder(cfg *config.Config) *Builder {
	return &Builder{
		platforms:        cfg.Platforms,
		postsPerPlatform: cfg.Generation.PostsPerPlatform,
	}
}

// Build renders the generation prompt. research may be nil.
func (b *Builder) Build(product domain.Product, research *domain.WebResearchResult) string {
	tone := product.Tone
	if tone == "" {
		tone = domain.ToneProfessional
	}
	selected := product.Platforms
	if len(selected) == 0 {
		selected = domain.AllPlatforms
	}
	language := product.Language
	if language == "" {
		language = domain.DefaultLanguage
	}
	translated := language != domain.DefaultLanguage

	totalPosts := b.postsPerPlatform * len(selected)

	var sb strings.Builder
	fmt.Fprintf(&sb, "Generate exactly %d social media posts for this product.\n\n", totalPosts)

	sb.WriteString("## Product Information\n")
	fmt.Fprintf(&sb, "- **Name**: %s\n", product.Name)
	fmt.Fprintf(&sb, "- **Description**: %s\n", product.Description)
	fmt.Fprintf(&sb, "- **Price**: $%s\n", product.Price.StringFixed(2))
	if product.Category != "" {
		fmt.Fprintf(&sb, "- **Category**: %s\n", product.Category)
	}

	if translated {
		sb.WriteString(languageSection(language.Name()))
	}

	fmt.Fprintf(&sb, "\n## Tone & Style: %s\n", tone.Label())
	sb.WriteString(toneGuidelines[tone])
	sb.WriteString("\n\n")

	if research != nil {
		sb.WriteString(researchSection(*research))
	}

	sb.WriteString("## Platform Requirements\n")
	fmt.Fprintf(&sb, "Generate posts ONLY for these platforms: %s\n\n", joinPlatforms(selected, "%s"))
	sb.WriteString(b.platformRequirements(selected))
	sb.WriteString("\n\n")

	sb.WriteString("## Output Format\n")
	sb.WriteString("Return a JSON object with a \"posts\" array. Each post must have:\n")
	fmt.Fprintf(&sb, "- \"platform\": one of %s (lowercase)\n", joinPlatforms(selected, "%q"))
	sb.WriteString("- \"content\": the post text")
	if translated {
		fmt.Fprintf(&sb, " (in %s)", language.Name())
	}
	sb.WriteString("\n\n")

	fmt.Fprintf(&sb, "Generate %d post(s) per platform. Make each post unique, tailored to its platform's audience, and consistent with the %s tone.\n",
		b.postsPerPlatform, tone)

	return sb.String()
}

func languageSection(languageName string) string {
	return fmt.Sprintf(`
## Language Requirement (CRITICAL)
**Write ALL post content in %[1]s.** The entire post text must be in %[1]s, including hashtags where appropriate. Do not use English unless it's a commonly used term in %[1]s-speaking markets.
`, languageName)
}

// platformRequirements emits one block per selected platform in the fixed
// twitter, instagram, linkedin order
func (b *Builder) platformRequirements(selected []domain.Platform) string {
	var blocks []string
	for _, platform := range domain.AllPlatforms {
		if !containsPlatform(selected, platform) {
			continue
		}
		profile := b.platforms[platform]
		rule := rules[platform]

		lines := []string{
			"### " + profile.Name,
			fmt.Sprintf("- Maximum %d characters%s", profile.MaxLength, rule.lengthSuffix),
			"- " + fmt.Sprintf(rule.hashtagFormat, profile.HashtagLimit),
		}
		for _, style := range rule.style {
			lines = append(lines, "- "+style)
		}
		blocks = append(blocks, strings.Join(lines, "\n"))
	}
	return strings.Join(blocks, "\n\n")
}

// researchSection renders seasonal context, trending hashtags and market
// insights in that order. It returns "" when none of them has content.
func researchSection(research domain.WebResearchResult) string {
	var sections []string

	if sc := research.SeasonalContext; sc != nil {
		section := "### Seasonal & Holiday Context (IMPORTANT)\n**Current Season/Period**: " + sc.CurrentSeason
		if len(sc.UpcomingEvents) > 0 {
			section += "\n**Upcoming Events/Holidays**:\n" + bulletList(sc.UpcomingEvents)
		}
		if len(sc.MarketingAngles) > 0 {
			section += "\n**Recommended Marketing Angles**:\n" + bulletList(sc.MarketingAngles)
		}
		sections = append(sections, section)
	}

	if len(research.TrendingHashtags) > 0 {
		sections = append(sections, "### Trending Hashtags (from web research)\n"+
			"Use these currently trending hashtags when relevant:\n"+
			strings.Join(research.TrendingHashtags, ", "))
	}

	// the default result carries a "skipped" placeholder that is not a real insight
	if len(research.MarketInsights) > 0 && !strings.Contains(research.MarketInsights[0], "skipped") {
		sections = append(sections, "### Market Insights (from web research)\n"+
			"Consider these current market trends:\n"+
			bulletList(research.MarketInsights))
	}

	if len(sections) == 0 {
		return ""
	}

	return "## Web Research Results\n" + strings.Join(sections, "\n\n") + `

**Important**: Incorporate the seasonal context, trending hashtags, and market insights naturally into your posts. Tailor the messaging to current events, holidays, and seasonal themes to maximize engagement and relevance.

`
}

func bulletList(items []string) string {
	lines := make([]string, len(items))
	for i, item := range items {
		lines[i] = "- " + item
	}
	return strings.Join(lines, "\n")
}

func joinPlatforms(platforms []domain.Platform, format string) string {
	parts := make([]string, len(platforms))
	for i, p := range platforms {
		parts[i] = fmt.Sprintf(format, string(p))
	}
	return strings.Join(parts, ", ")
}

func containsPlatform(platforms []domain.Platform, platform domain.Platform) bool {
	for _, p := range platforms {
		if p == platform {
			return true
		}
	}
	return false
}
