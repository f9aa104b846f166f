package prompt

import "github.com/kahvecikaan/socialposts/internal/domain"

var toneGuidelines = map[domain.Tone]string{
	domain.ToneProfessional: `
- Use formal, polished language
- Focus on value propositions and benefits
- Include relevant industry terminology
- Maintain credibility and authority
- Avoid slang or overly casual expressions`,
	domain.ToneCasual: `
- Use friendly, conversational language
- Write as if talking to a friend
- Include relatable expressions
- Keep it light and approachable
- Use contractions naturally`,
	domain.ToneHumorous: `
- Include wit, puns, or playful language
- Use unexpected twists or wordplay
- Keep it fun but still on-brand
- Don't force jokes - let humor flow naturally
- Balance humor with product value`,
	domain.ToneUrgent: `
- Create a sense of time-sensitivity
- Use action words: "Now", "Today", "Limited", "Don't miss"
- Highlight scarcity or exclusivity
- Include strong calls-to-action
- Emphasize immediate benefits`,
	domain.ToneInspirational: `
- Use uplifting, motivational language
- Connect product to aspirations and goals
- Include empowering messages
- Focus on transformation and possibilities
- Use vivid, emotional imagery`,
}

// platformRules describes how each platform's limits and style are phrased
type platformRules struct {
	lengthSuffix  string
	hashtagFormat string
	style         []string
}

var rules = map[domain.Platform]platformRules{
	domain.PlatformTwitter: {
		lengthSuffix:  " (strict limit)",
		hashtagFormat: "Use up to %d relevant hashtags",
		style: []string{
			"Punchy, attention-grabbing copy",
			"Include a clear call-to-action",
		},
	},
	domain.PlatformInstagram: {
		hashtagFormat: "Use up to %d hashtags (place at end)",
		style: []string{
			"Storytelling approach, lifestyle-focused",
			"Include emojis throughout",
			"Line breaks for readability",
		},
	},
	domain.PlatformLinkedIn: {
		hashtagFormat: "Use up to %d professional hashtags",
		style: []string{
			"Value-focused content",
			"Include industry insights or statistics when relevant",
			"End with engagement question",
		},
	},
}
