// Package merge folds per-document style profiles into one representative
// guidance object. Numeric fields are arithmetic means, categorical fields a
// plurality vote with ties broken by the latest profile in input order, and
// set fields a frequency-ranked union. Callers should supply profiles
// oldest-first so "latest" means most recent.
package merge

import (
	"fmt"
	"math"
	"sort"

	"github.com/cognicore/styleprof/pkg/styleprof/analyze"
	"github.com/cognicore/styleprof/pkg/styleprof/internalerr"
)

// Guidance is a merged profile plus the number of documents behind it, so
// consumers can judge how much to trust each field.
type Guidance struct {
	analyze.Profile

	SampleSize int `json:"sample_size"`
}

// Merger merges profiles using the thresholds of the analyzer that produced
// them (the dominance rule is re-applied to merged ratios).
type Merger struct {
	cfg analyze.Config
}

// New creates a Merger. Zero-valued Config fields fall back to defaults.
func New(cfg analyze.Config) *Merger {
	return &Merger{cfg: cfg}
}

// Merge combines one or more profiles. A single profile passes through
// unchanged with SampleSize 1. An empty slice is a contract violation.
func (m *Merger) Merge(profiles []analyze.Profile) (Guidance, error) {
	if len(profiles) == 0 {
		return Guidance{}, fmt.Errorf("merge: %w: no profiles", internalerr.ErrInvalidInput)
	}
	if len(profiles) == 1 {
		return Guidance{Profile: profiles[0], SampleSize: 1}, nil
	}

	g := Guidance{SampleSize: len(profiles)}

	g.Tone = analyze.Tone(plurality(profiles, func(p analyze.Profile) string { return string(p.Tone) }))
	g.Complexity = analyze.Complexity(plurality(profiles, func(p analyze.Profile) string { return string(p.Complexity) }))
	g.Perspective = analyze.Perspective(plurality(profiles, func(p analyze.Profile) string { return string(p.Perspective) }))
	g.Vocabulary = analyze.Vocabulary(plurality(profiles, func(p analyze.Profile) string { return string(p.Vocabulary) }))
	g.AverageSentenceLength = mean(profiles, func(p analyze.Profile) float64 { return p.AverageSentenceLength })

	g.Emoji = mergeEmoji(profiles, m.topEmojis())
	g.Korean = m.mergeKorean(profiles)
	g.Heading = mergeHeadings(profiles)
	g.Engagement = mergeEngagement(profiles)
	g.Structure = mergeStructure(profiles)

	return g, nil
}

func (m *Merger) topEmojis() int {
	if m.cfg.TopEmojis > 0 {
		return m.cfg.TopEmojis
	}
	return analyze.DefaultConfig().TopEmojis
}

func (m *Merger) dominant(formal, conversational float64) analyze.Dominance {
	cfg := m.cfg
	if cfg.DominanceThreshold <= 0 {
		cfg = analyze.DefaultConfig()
	}
	return cfg.Dominant(formal, conversational)
}

func mean(profiles []analyze.Profile, field func(analyze.Profile) float64) float64 {
	var sum float64
	for _, p := range profiles {
		sum += field(p)
	}
	return sum / float64(len(profiles))
}

// plurality picks the most frequent value; on a tie the value seen latest in
// the input wins.
func plurality(profiles []analyze.Profile, field func(analyze.Profile) string) string {
	counts := make(map[string]int)
	lastSeen := make(map[string]int)
	for i, p := range profiles {
		v := field(p)
		counts[v]++
		lastSeen[v] = i
	}

	best, bestCount, bestSeen := "", -1, -1
	for v, c := range counts {
		if c > bestCount || (c == bestCount && lastSeen[v] > bestSeen) {
			best, bestCount, bestSeen = v, c, lastSeen[v]
		}
	}
	return best
}

// majority treats booleans as a two-way vote; ties resolve to the latest
// profile's value.
func majority(profiles []analyze.Profile, field func(analyze.Profile) bool) bool {
	trues := 0
	for _, p := range profiles {
		if field(p) {
			trues++
		}
	}
	if trues*2 == len(profiles) {
		return field(profiles[len(profiles)-1])
	}
	return trues*2 > len(profiles)
}

func mergeEmoji(profiles []analyze.Profile, topK int) analyze.EmojiProfile {
	merged := analyze.EmojiProfile{
		Frequency: analyze.EmojiFrequency(plurality(profiles, func(p analyze.Profile) string { return string(p.Emoji.Frequency) })),
	}

	counts := make(map[string]int)
	firstSeen := make(map[string]int)
	order := 0
	for _, p := range profiles {
		for _, e := range p.Emoji.CommonEmojis {
			if _, ok := firstSeen[e]; !ok {
				firstSeen[e] = order
			}
			order++
			counts[e]++
		}
	}
	if len(counts) == 0 {
		return merged
	}

	ranked := make([]string, 0, len(counts))
	for e := range counts {
		ranked = append(ranked, e)
	}
	sort.Slice(ranked, func(i, j int) bool {
		if counts[ranked[i]] != counts[ranked[j]] {
			return counts[ranked[i]] > counts[ranked[j]]
		}
		return firstSeen[ranked[i]] < firstSeen[ranked[j]]
	})
	if len(ranked) > topK {
		ranked = ranked[:topK]
	}
	merged.CommonEmojis = ranked
	return merged
}

// mergeKorean averages only over profiles that actually carry Korean content.
// Profiles without it still count toward SampleSize but not toward these
// denominators.
func (m *Merger) mergeKorean(profiles []analyze.Profile) analyze.KoreanProfile {
	var present []analyze.Profile
	for _, p := range profiles {
		if p.Korean.Present {
			present = append(present, p)
		}
	}

	merged := analyze.KoreanProfile{}
	merged.Ending.DominantEnding = analyze.DominanceMixed
	if len(present) == 0 {
		return merged
	}

	merged.Present = true
	merged.Ending.FormalRatio = mean(present, func(p analyze.Profile) float64 { return p.Korean.Ending.FormalRatio })
	merged.Ending.ConversationalRatio = mean(present, func(p analyze.Profile) float64 { return p.Korean.Ending.ConversationalRatio })
	merged.Ending.DominantEnding = m.dominant(merged.Ending.FormalRatio, merged.Ending.ConversationalRatio)

	merged.Context.Formal = unionTags(present, func(p analyze.Profile) []string { return p.Korean.Context.Formal })
	merged.Context.Conversational = unionTags(present, func(p analyze.Profile) []string { return p.Korean.Context.Conversational })

	for _, p := range present {
		merged.Endings.FormalCount += p.Korean.Endings.FormalCount
		merged.Endings.ConversationalCount += p.Korean.Endings.ConversationalCount
		merged.Endings.UnclassifiedCount += p.Korean.Endings.UnclassifiedCount
	}

	merged.UsesJondaemal = majority(present, func(p analyze.Profile) bool { return p.Korean.UsesJondaemal })
	merged.UsesGueoChae = majority(present, func(p analyze.Profile) bool { return p.Korean.UsesGueoChae })
	merged.HasEmpathy = majority(present, func(p analyze.Profile) bool { return p.Korean.HasEmpathy })

	return merged
}

func unionTags(profiles []analyze.Profile, field func(analyze.Profile) []string) []string {
	counts := make(map[string]int)
	for _, p := range profiles {
		for _, tag := range field(p) {
			counts[tag]++
		}
	}
	if len(counts) == 0 {
		return nil
	}
	tags := make([]string, 0, len(counts))
	for tag := range counts {
		tags = append(tags, tag)
	}
	sort.Slice(tags, func(i, j int) bool {
		if counts[tags[i]] != counts[tags[j]] {
			return counts[tags[i]] > counts[tags[j]]
		}
		return tags[i] < tags[j]
	})
	return tags
}

func mergeHeadings(profiles []analyze.Profile) analyze.HeadingProfile {
	avg := mean(profiles, func(p analyze.Profile) float64 { return float64(p.Heading.AverageLength) })
	return analyze.HeadingProfile{
		UsesNumbers:   majority(profiles, func(p analyze.Profile) bool { return p.Heading.UsesNumbers }),
		UsesEmojis:    majority(profiles, func(p analyze.Profile) bool { return p.Heading.UsesEmojis }),
		AverageLength: int(math.Round(avg)),
	}
}

func mergeEngagement(profiles []analyze.Profile) analyze.EngagementStyle {
	merged := analyze.EngagementStyle{
		QuestionsPerSection: mean(profiles, func(p analyze.Profile) float64 { return p.Engagement.QuestionsPerSection }),
		HasCTA:              majority(profiles, func(p analyze.Profile) bool { return p.Engagement.HasCTA }),
	}
	if merged.HasCTA {
		// Vote only among profiles that actually carry a CTA.
		var withCTA []analyze.Profile
		for _, p := range profiles {
			if p.Engagement.HasCTA {
				withCTA = append(withCTA, p)
			}
		}
		merged.CTAType = analyze.CTAType(plurality(withCTA, func(p analyze.Profile) string { return string(p.Engagement.CTAType) }))
	}
	return merged
}

func mergeStructure(profiles []analyze.Profile) analyze.StructureProfile {
	return analyze.StructureProfile{
		AverageParagraphLength: mean(profiles, func(p analyze.Profile) float64 { return p.Structure.AverageParagraphLength }),
		UsesBulletPoints:       majority(profiles, func(p analyze.Profile) bool { return p.Structure.UsesBulletPoints }),
		UsesNumberedLists:      majority(profiles, func(p analyze.Profile) bool { return p.Structure.UsesNumberedLists }),
		HasIntroGreeting:       majority(profiles, func(p analyze.Profile) bool { return p.Structure.HasIntroGreeting }),
		HasClosingRemarks:      majority(profiles, func(p analyze.Profile) bool { return p.Structure.HasClosingRemarks }),
	}
}
