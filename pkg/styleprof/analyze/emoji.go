package analyze

import (
	"sort"
	"strings"
)

// emojiRanges covers the common emoji blocks: pictographs, emoticons,
// transport, supplemental symbols, and the miscellaneous/dingbat ranges.
var emojiRanges = [][2]rune{
	{0x1F300, 0x1F5FF},
	{0x1F600, 0x1F64F},
	{0x1F680, 0x1F6FF},
	{0x1F900, 0x1F9FF},
	{0x1FA70, 0x1FAFF},
	{0x2600, 0x26FF},
	{0x2700, 0x27BF},
	{0x2B00, 0x2BFF},
}

func isEmoji(r rune) bool {
	for _, rng := range emojiRanges {
		if r >= rng[0] && r <= rng[1] {
			return true
		}
	}
	return false
}

// ContainsEmoji reports whether the string has at least one emoji rune.
func ContainsEmoji(s string) bool {
	return strings.IndexFunc(s, isEmoji) >= 0
}

// analyzeEmoji computes emoji density over the whole document (per 100
// characters) and ranks the most frequent distinct emojis. Ties rank by first
// appearance so the result is deterministic.
func (a *Analyzer) analyzeEmoji(text string) EmojiProfile {
	counts := make(map[rune]int)
	firstSeen := make(map[rune]int)
	totalRunes := 0
	emojiCount := 0

	for _, r := range text {
		totalRunes++
		if !isEmoji(r) {
			continue
		}
		emojiCount++
		if _, ok := firstSeen[r]; !ok {
			firstSeen[r] = totalRunes
		}
		counts[r]++
	}

	prof := EmojiProfile{Frequency: EmojiNone}
	if emojiCount == 0 || totalRunes == 0 {
		return prof
	}

	density := float64(emojiCount) / float64(totalRunes) * 100
	switch {
	case density < a.cfg.EmojiRareMax:
		prof.Frequency = EmojiRare
	case density < a.cfg.EmojiModerateMax:
		prof.Frequency = EmojiModerate
	default:
		prof.Frequency = EmojiHeavy
	}

	ranked := make([]rune, 0, len(counts))
	for r := range counts {
		ranked = append(ranked, r)
	}
	sort.Slice(ranked, func(i, j int) bool {
		if counts[ranked[i]] != counts[ranked[j]] {
			return counts[ranked[i]] > counts[ranked[j]]
		}
		return firstSeen[ranked[i]] < firstSeen[ranked[j]]
	})
	if len(ranked) > a.cfg.TopEmojis {
		ranked = ranked[:a.cfg.TopEmojis]
	}

	prof.CommonEmojis = make([]string, len(ranked))
	for i, r := range ranked {
		prof.CommonEmojis[i] = string(r)
	}
	return prof
}
