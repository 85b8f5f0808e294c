package analyze

// Config collects every tunable threshold used by the classifier heuristics.
// Classification code never hardcodes these values.
type Config struct {
	// SimpleMaxWords and MediumMaxWords bound the complexity buckets:
	// average sentence length < SimpleMaxWords is simple, up to
	// MediumMaxWords is medium, anything longer is advanced.
	SimpleMaxWords float64
	MediumMaxWords float64

	// BasicMaxWordLength and IntermediateMaxWordLength bound the vocabulary
	// buckets by mean word length in runes.
	BasicMaxWordLength        float64
	IntermediateMaxWordLength float64

	// EmojiRareMax and EmojiModerateMax bound the emoji density bands
	// (emoji per 100 characters): 0 is none, below EmojiRareMax is rare,
	// below EmojiModerateMax is moderate, the rest is heavy.
	EmojiRareMax     float64
	EmojiModerateMax float64

	// DominanceThreshold is the ratio at or above which one ending register
	// is labeled dominant instead of mixed.
	DominanceThreshold float64

	// LegacyFlagCutoff is the ratio above which the legacy jondaemal /
	// gueo-chae booleans are set.
	LegacyFlagCutoff float64

	// TopEmojis caps the ranked common-emoji list.
	TopEmojis int

	// EndingExamples caps the example ending fragments kept per register.
	EndingExamples int

	// MinKoreanSentenceLength is the minimum rune count for a sentence to be
	// considered for ending classification.
	MinKoreanSentenceLength int
}

// DefaultConfig returns the stock thresholds.
func DefaultConfig() Config {
	return Config{
		SimpleMaxWords:            15,
		MediumMaxWords:            20,
		BasicMaxWordLength:        4,
		IntermediateMaxWordLength: 6,
		EmojiRareMax:              0.5,
		EmojiModerateMax:          1.5,
		DominanceThreshold:        0.8,
		LegacyFlagCutoff:          0.2,
		TopEmojis:                 5,
		EndingExamples:            5,
		MinKoreanSentenceLength:   3,
	}
}

// normalize fills zero-valued fields with defaults so a partially populated
// Config (for example one loaded from YAML) stays usable.
func (c Config) normalize() Config {
	def := DefaultConfig()
	if c.SimpleMaxWords <= 0 {
		c.SimpleMaxWords = def.SimpleMaxWords
	}
	if c.MediumMaxWords <= 0 {
		c.MediumMaxWords = def.MediumMaxWords
	}
	if c.BasicMaxWordLength <= 0 {
		c.BasicMaxWordLength = def.BasicMaxWordLength
	}
	if c.IntermediateMaxWordLength <= 0 {
		c.IntermediateMaxWordLength = def.IntermediateMaxWordLength
	}
	if c.EmojiRareMax <= 0 {
		c.EmojiRareMax = def.EmojiRareMax
	}
	if c.EmojiModerateMax <= 0 {
		c.EmojiModerateMax = def.EmojiModerateMax
	}
	if c.DominanceThreshold <= 0 {
		c.DominanceThreshold = def.DominanceThreshold
	}
	if c.LegacyFlagCutoff <= 0 {
		c.LegacyFlagCutoff = def.LegacyFlagCutoff
	}
	if c.TopEmojis <= 0 {
		c.TopEmojis = def.TopEmojis
	}
	if c.EndingExamples <= 0 {
		c.EndingExamples = def.EndingExamples
	}
	if c.MinKoreanSentenceLength <= 0 {
		c.MinKoreanSentenceLength = def.MinKoreanSentenceLength
	}
	return c
}

// Dominant applies the dominance rule to a pair of ratios. A register must
// reach the threshold to win; otherwise the result is mixed.
func (c Config) Dominant(formalRatio, conversationalRatio float64) Dominance {
	switch {
	case formalRatio >= c.DominanceThreshold:
		return DominanceFormal
	case conversationalRatio >= c.DominanceThreshold:
		return DominanceConversational
	default:
		return DominanceMixed
	}
}
