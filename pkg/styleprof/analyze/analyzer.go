package analyze

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Analyzer turns raw document text into a Profile. It holds no mutable state
// and is safe for concurrent use.
type Analyzer struct {
	cfg Config
}

// New creates an Analyzer. Zero-valued Config fields fall back to defaults.
func New(cfg Config) *Analyzer {
	return &Analyzer{cfg: cfg.normalize()}
}

// Analyze classifies a document. Empty or whitespace-only input yields the
// neutral zero profile; malformed content never produces an error.
func (a *Analyzer) Analyze(text string) Profile {
	var p Profile
	if strings.TrimSpace(text) == "" {
		p.Tone = ToneCasual
		p.Complexity = ComplexitySimple
		p.Perspective = PerspectiveThird
		p.Vocabulary = VocabularyBasic
		p.Emoji.Frequency = EmojiNone
		p.Korean.Ending.DominantEnding = DominanceMixed
		return p
	}

	sentences := SplitSentences(text)

	p.AverageSentenceLength = averageWordsPerSentence(sentences)
	p.Complexity = a.complexityFor(p.AverageSentenceLength)
	p.Vocabulary = a.vocabularyFor(sentences)
	p.Perspective = detectPerspective(text)
	p.Tone = detectTone(text)
	p.Emoji = a.analyzeEmoji(text)
	p.Korean = a.analyzeKorean(sentences)
	p.Heading = a.analyzeHeadings(text)
	p.Engagement = a.analyzeEngagement(text)
	p.Structure = a.analyzeStructure(text, len(sentences))
	return p
}

// Sentence terminators: Western plus the East-Asian full stop.
var sentenceEnd = map[rune]struct{}{'.': {}, '!': {}, '?': {}, '。': {}}

// SplitSentences segments text on sentence terminators, keeping the
// terminator attached to its sentence. Empty fragments are discarded.
func SplitSentences(text string) []string {
	var sentences []string
	var current strings.Builder

	flush := func() {
		s := strings.TrimSpace(current.String())
		// A fragment without a single letter or digit (ellipsis runs,
		// stray punctuation) is not a sentence.
		if strings.IndexFunc(s, func(r rune) bool {
			return unicode.IsLetter(r) || unicode.IsNumber(r)
		}) >= 0 {
			sentences = append(sentences, s)
		}
		current.Reset()
	}

	for _, r := range text {
		current.WriteRune(r)
		if _, ok := sentenceEnd[r]; ok {
			flush()
		}
	}
	flush()

	return sentences
}

func averageWordsPerSentence(sentences []string) float64 {
	if len(sentences) == 0 {
		return 0
	}
	total := 0
	for _, s := range sentences {
		total += len(strings.Fields(s))
	}
	return float64(total) / float64(len(sentences))
}

func (a *Analyzer) complexityFor(avgWords float64) Complexity {
	switch {
	case avgWords < a.cfg.SimpleMaxWords:
		return ComplexitySimple
	case avgWords <= a.cfg.MediumMaxWords:
		return ComplexityMedium
	default:
		return ComplexityAdvanced
	}
}

var trimWordPunct = func(r rune) bool {
	_, terminator := sentenceEnd[r]
	return terminator || strings.ContainsRune(",;:\"'()[]{}…~", r)
}

func (a *Analyzer) vocabularyFor(sentences []string) Vocabulary {
	totalLen, words := 0, 0
	for _, s := range sentences {
		for _, w := range strings.Fields(s) {
			w = strings.TrimFunc(w, trimWordPunct)
			if w == "" {
				continue
			}
			totalLen += utf8.RuneCountInString(w)
			words++
		}
	}
	if words == 0 {
		return VocabularyBasic
	}
	mean := float64(totalLen) / float64(words)
	switch {
	case mean < a.cfg.BasicMaxWordLength:
		return VocabularyBasic
	case mean <= a.cfg.IntermediateMaxWordLength:
		return VocabularyIntermediate
	default:
		return VocabularyAdvanced
	}
}

var (
	secondPersonRe = regexp.MustCompile(`(?i)\b(you|your|yours|yourself)\b|여러분|당신`)
	firstPersonRe  = regexp.MustCompile(`(?i)\b(i|i'm|i've|we|we're|my|our|me|us)\b|저는|제가|저희|우리`)

	casualMarkerRe = regexp.MustCompile(`(?i)\b(gonna|wanna|gotta|kinda|awesome|cool|hey|yeah|stuff|guys|lol)\b|ㅋㅋ|ㅎㅎ|짱|꿀팁|대박`)
	formalMarkerRe = regexp.MustCompile(`(?i)\b(therefore|furthermore|moreover|consequently|thus|hence|regarding|accordingly)\b|그러므로|따라서|또한|그리하여|습니다|입니다`)
	converseCueRe  = regexp.MustCompile(`(?i)\bright\?|\byou know\b|\blet's\b|\bshall we\b|그렇죠|어때요|해볼까요|있으신가요|해요|예요|이에요`)
)

// detectPerspective prefers second person over first; third person is the
// fallback when neither is present.
func detectPerspective(text string) Perspective {
	switch {
	case secondPersonRe.MatchString(text):
		return PerspectiveSecond
	case firstPersonRe.MatchString(text):
		return PerspectiveFirst
	default:
		return PerspectiveThird
	}
}

// detectTone checks casual markers first, then formal, then conversational
// cues; casual is the default register.
func detectTone(text string) Tone {
	switch {
	case casualMarkerRe.MatchString(text):
		return ToneCasual
	case formalMarkerRe.MatchString(text):
		return ToneFormal
	case converseCueRe.MatchString(text):
		return ToneConversational
	default:
		return ToneCasual
	}
}
