package analyze

import (
	"math"
	"regexp"
	"strings"
	"unicode/utf8"
)

// A line counts as a heading when it carries a markdown heading marker, a
// leading number, or a leading bullet glyph. Blog exports frequently use
// numbered or glyph-led lines as section titles, so all three qualify.
var (
	markdownHeadingRe = regexp.MustCompile(`^#{1,6}\s+`)
	numberedLineRe    = regexp.MustCompile(`^\d+[.)]\s+`)
	bulletLineRe      = regexp.MustCompile(`^[-*•▶■◆✔]\s+`)
)

// Headings returns the heading lines of a document with markers intact.
func Headings(text string) []string {
	var headings []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if markdownHeadingRe.MatchString(line) || numberedLineRe.MatchString(line) || bulletLineRe.MatchString(line) {
			headings = append(headings, line)
		}
	}
	return headings
}

// analyzeHeadings reports numbering usage, emoji usage, and the mean heading
// length with markers stripped. Documents without headings yield the zero
// profile.
func (a *Analyzer) analyzeHeadings(text string) HeadingProfile {
	headings := Headings(text)
	if len(headings) == 0 {
		return HeadingProfile{}
	}

	prof := HeadingProfile{}
	totalLen := 0
	for _, h := range headings {
		stripped := stripHeadingMarkers(h)
		if numberedLineRe.MatchString(stripped) {
			prof.UsesNumbers = true
			stripped = strings.TrimSpace(numberedLineRe.ReplaceAllString(stripped, ""))
		}
		if ContainsEmoji(stripped) {
			prof.UsesEmojis = true
		}
		totalLen += utf8.RuneCountInString(stripped)
	}
	prof.AverageLength = int(math.Round(float64(totalLen) / float64(len(headings))))
	return prof
}

func stripHeadingMarkers(line string) string {
	line = markdownHeadingRe.ReplaceAllString(line, "")
	line = bulletLineRe.ReplaceAllString(line, "")
	return strings.TrimSpace(line)
}
