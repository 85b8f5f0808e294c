package analyze

import (
	"regexp"
	"strings"
)

// CTA keyword groups, checked in priority order: asking for comments beats
// asking for shares, shares beat subscriptions, and open questions come last.
var ctaGroups = []struct {
	ctaType CTAType
	re      *regexp.Regexp
}{
	{CTAComment, regexp.MustCompile(`(?i)댓글|의견을?\s*남겨|\bcomment\b|\blet me know\b`)},
	{CTAShare, regexp.MustCompile(`(?i)공유해|퍼가|\bshare\b`)},
	{CTASubscribe, regexp.MustCompile(`(?i)구독|이웃\s*추가|팔로우|\bsubscribe\b|\bfollow\b`)},
	{CTAQuestion, regexp.MustCompile(`(?i)궁금한\s*점|질문이?\s*있|\bany questions\b`)},
}

// analyzeEngagement computes the per-section question rate and detects
// call-to-action intent. Sections are heading occurrences plus one.
func (a *Analyzer) analyzeEngagement(text string) EngagementStyle {
	style := EngagementStyle{}

	questions := strings.Count(text, "?") + strings.Count(text, "？")
	sections := len(Headings(text)) + 1
	style.QuestionsPerSection = float64(questions) / float64(sections)

	for _, group := range ctaGroups {
		if group.re.MatchString(text) {
			style.HasCTA = true
			style.CTAType = group.ctaType
			break
		}
	}
	return style
}
