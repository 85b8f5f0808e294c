package analyze

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"
)

// Ending classification works on the tail of each Hangul sentence. The two
// suffix families are mutually exclusive: the formal family covers the
// hapsyo-che (-습니다) register, the conversational family the haeyo-che
// (-어요/-아요) register. Sentences matching neither stay unclassified and
// are excluded from the ratio denominator.
var (
	hangulRe = regexp.MustCompile(`[가-힣]`)

	// The formal family covers the -ㅂ니다/-습니다 declaratives and their
	// interrogatives; in composed Hangul these always surface as a syllable
	// followed by 니다/니까. The conversational family covers the -요/-죠
	// tails, including contracted vowels (해요, 쉬워요, 봐요). Formal endings
	// never end in 요, so checking formal first keeps the families disjoint.
	formalEndingRe         = regexp.MustCompile(`[가-힣]{0,2}[가-힣](니다|니까)$`)
	conversationalEndingRe = regexp.MustCompile(`[가-힣]{0,2}[가-힣](요|죠)$`)

	// Context cues, re-scanned over classified sentences. A sentence may land
	// in more than one context tag.
	definitionCueRe  = regexp.MustCompile(`이란|란\s|라는\s*것|라고\s*하|정의`)
	explanationCueRe = regexp.MustCompile(`때문에|따라서|그래서|왜냐하면|즉|그러므로|덕분에`)
	mainPointCueRe   = regexp.MustCompile(`중요|핵심|포인트|반드시|꼭|주의`)
	exampleCueRe     = regexp.MustCompile(`예를\s*들어|예시|예컨대|가령|처럼`)
	reassuranceCueRe = regexp.MustCompile(`괜찮|걱정|어렵지\s*않|쉽게|천천히|충분히`)

	empathyCueRe = regexp.MustCompile(`공감|이해해|이해가|그렇죠|맞아요|맞죠|힘들|저도\s*그랬`)
)

// analyzeKorean classifies Hangul sentence endings. Documents without
// classifiable Korean sentences return a profile with Present false and zero
// ratios; the empathy flag is the exception, computed over every Hangul
// candidate.
func (a *Analyzer) analyzeKorean(sentences []string) KoreanProfile {
	prof := KoreanProfile{}
	prof.Ending.DominantEnding = DominanceMixed

	candidates := make([]string, 0, len(sentences))
	for _, s := range sentences {
		if utf8.RuneCountInString(s) <= a.cfg.MinKoreanSentenceLength {
			continue
		}
		if hangulRe.MatchString(s) {
			candidates = append(candidates, s)
		}
	}
	if len(candidates) == 0 {
		return prof
	}

	formalCtx := make(map[string]struct{})
	converseCtx := make(map[string]struct{})

	for _, s := range candidates {
		tail := strings.TrimRight(s, ".!?。 \t")
		switch {
		case formalEndingRe.MatchString(tail):
			prof.Endings.FormalCount++
			prof.Endings.FormalExamples = appendExample(
				prof.Endings.FormalExamples, formalEndingRe.FindString(tail), a.cfg.EndingExamples)
			tagFormalContexts(s, formalCtx)
		case conversationalEndingRe.MatchString(tail):
			prof.Endings.ConversationalCount++
			prof.Endings.ConversationalExamples = appendExample(
				prof.Endings.ConversationalExamples, conversationalEndingRe.FindString(tail), a.cfg.EndingExamples)
			tagConversationalContexts(s, converseCtx)
		default:
			prof.Endings.UnclassifiedCount++
		}
	}

	// Empathy markers are scanned over every Hangul candidate, classified or
	// not, so plain-written Korean text still sets the flag.
	prof.HasEmpathy = empathyCueRe.MatchString(strings.Join(candidates, " "))

	classified := prof.Endings.FormalCount + prof.Endings.ConversationalCount
	if classified == 0 {
		return prof
	}

	prof.Present = true
	prof.Ending.FormalRatio = float64(prof.Endings.FormalCount) / float64(classified)
	prof.Ending.ConversationalRatio = float64(prof.Endings.ConversationalCount) / float64(classified)
	prof.Ending.DominantEnding = a.cfg.Dominant(prof.Ending.FormalRatio, prof.Ending.ConversationalRatio)

	prof.Context.Formal = sortedTags(formalCtx)
	prof.Context.Conversational = sortedTags(converseCtx)

	prof.UsesJondaemal = prof.Ending.FormalRatio > a.cfg.LegacyFlagCutoff
	prof.UsesGueoChae = prof.Ending.ConversationalRatio > a.cfg.LegacyFlagCutoff

	return prof
}

func tagFormalContexts(sentence string, tags map[string]struct{}) {
	if definitionCueRe.MatchString(sentence) {
		tags[ContextDefinitions] = struct{}{}
	}
	if explanationCueRe.MatchString(sentence) {
		tags[ContextExplanations] = struct{}{}
	}
	if mainPointCueRe.MatchString(sentence) {
		tags[ContextMainPoints] = struct{}{}
	}
}

func tagConversationalContexts(sentence string, tags map[string]struct{}) {
	if exampleCueRe.MatchString(sentence) {
		tags[ContextExamples] = struct{}{}
	}
	if reassuranceCueRe.MatchString(sentence) {
		tags[ContextReassurance] = struct{}{}
	}
	if strings.HasSuffix(sentence, "?") {
		tags[ContextQuestions] = struct{}{}
	}
}

// appendExample adds a fragment if it is non-empty, new, and under the cap.
func appendExample(examples []string, fragment string, max int) []string {
	if fragment == "" || len(examples) >= max {
		return examples
	}
	for _, e := range examples {
		if e == fragment {
			return examples
		}
	}
	return append(examples, fragment)
}

func sortedTags(set map[string]struct{}) []string {
	if len(set) == 0 {
		return nil
	}
	tags := make([]string, 0, len(set))
	for t := range set {
		tags = append(tags, t)
	}
	sort.Strings(tags)
	return tags
}
