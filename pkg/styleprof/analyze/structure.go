package analyze

import (
	"regexp"
	"strings"
)

var (
	greetingRe = regexp.MustCompile(`(?i)^(안녕하세요|안녕하십니까|반갑습니다|여러분[,!\s]|hello|hi there|hey)`)
	closingRe  = regexp.MustCompile(`(?i)감사합니다|고맙습니다|읽어\s*주셔서|다음\s*(포스팅|글|시간)|또\s*만나요|마치겠습니다|thanks for reading|see you next`)

	numberedListRe = regexp.MustCompile(`(?m)^\s*\d+[.)]\s+`)
	bulletListRe   = regexp.MustCompile(`(?m)^\s*[-*•]\s+`)

	blankLineRe = regexp.MustCompile(`\n\s*\n`)
)

// Paragraphs splits text into blocks separated by at least one blank line.
func Paragraphs(text string) []string {
	var paragraphs []string
	for _, block := range blankLineRe.Split(text, -1) {
		block = strings.TrimSpace(block)
		if block != "" {
			paragraphs = append(paragraphs, block)
		}
	}
	return paragraphs
}

// analyzeStructure measures paragraph granularity, list usage, and the
// greeting/closing conventions. The greeting check anchors on the first
// paragraph; closing remarks can sit anywhere (posts often end with a tag or
// footer block after the thank-you), so that check scans the whole document.
func (a *Analyzer) analyzeStructure(text string, sentenceCount int) StructureProfile {
	prof := StructureProfile{}

	paragraphs := Paragraphs(text)
	if len(paragraphs) > 0 {
		prof.AverageParagraphLength = float64(sentenceCount) / float64(len(paragraphs))
		prof.HasIntroGreeting = greetingRe.MatchString(paragraphs[0])
		prof.HasClosingRemarks = closingRe.MatchString(text)
	}

	prof.UsesBulletPoints = bulletListRe.MatchString(text)
	prof.UsesNumberedLists = numberedListRe.MatchString(text)
	return prof
}
