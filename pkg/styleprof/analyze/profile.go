package analyze

// Tone classifies the overall register of a document.
type Tone string

const (
	ToneFormal         Tone = "formal"
	ToneCasual         Tone = "casual"
	ToneConversational Tone = "conversational"
)

// Complexity buckets the average sentence length.
type Complexity string

const (
	ComplexitySimple   Complexity = "simple"
	ComplexityMedium   Complexity = "medium"
	ComplexityAdvanced Complexity = "advanced"
)

// Perspective identifies the dominant narrative voice.
type Perspective string

const (
	PerspectiveFirst  Perspective = "first-person"
	PerspectiveSecond Perspective = "second-person"
	PerspectiveThird  Perspective = "third-person"
)

// Vocabulary buckets the average word length.
type Vocabulary string

const (
	VocabularyBasic        Vocabulary = "basic"
	VocabularyIntermediate Vocabulary = "intermediate"
	VocabularyAdvanced     Vocabulary = "advanced"
)

// EmojiFrequency buckets emoji density per 100 characters.
type EmojiFrequency string

const (
	EmojiNone     EmojiFrequency = "none"
	EmojiRare     EmojiFrequency = "rare"
	EmojiModerate EmojiFrequency = "moderate"
	EmojiHeavy    EmojiFrequency = "heavy"
)

// Dominance labels which ending register dominates a document.
type Dominance string

const (
	DominanceFormal         Dominance = "formal"
	DominanceConversational Dominance = "conversational"
	DominanceMixed          Dominance = "mixed"
)

// CTAType identifies the kind of call to action a document closes with.
type CTAType string

const (
	CTAComment   CTAType = "comment"
	CTAShare     CTAType = "share"
	CTASubscribe CTAType = "subscribe"
	CTAQuestion  CTAType = "question"
)

// Korean usage-context tags. Formal contexts come from definition, causal,
// and emphasis cues; conversational contexts from example, reassurance, and
// question cues. A sentence may contribute to several tags at once.
const (
	ContextDefinitions  = "definitions"
	ContextExplanations = "explanations"
	ContextMainPoints   = "main_points"
	ContextExamples     = "examples"
	ContextReassurance  = "reassurance"
	ContextQuestions    = "questions"
)

// Profile is the full analysis result for one document. Every field derives
// purely from the document text; analyzing the same text twice yields an
// identical Profile.
type Profile struct {
	Tone                  Tone             `json:"tone"`
	Complexity            Complexity       `json:"complexity"`
	Perspective           Perspective      `json:"perspective"`
	AverageSentenceLength float64          `json:"average_sentence_length"`
	Vocabulary            Vocabulary       `json:"vocabulary"`
	Emoji                 EmojiProfile     `json:"emoji_usage"`
	Korean                KoreanProfile    `json:"korean_patterns"`
	Heading               HeadingProfile   `json:"heading_style"`
	Engagement            EngagementStyle  `json:"engagement_style"`
	Structure             StructureProfile `json:"structure_preferences"`
}

// EmojiProfile summarizes emoji usage across the whole document.
type EmojiProfile struct {
	Frequency    EmojiFrequency `json:"frequency"`
	CommonEmojis []string       `json:"common_emojis"`
}

// KoreanProfile holds the Korean sentence-ending analysis. Present is false
// when the document contains no classifiable Hangul sentences; all other
// fields are then zero and must be excluded from merge denominators.
type KoreanProfile struct {
	Present bool            `json:"present"`
	Ending  EndingStyle     `json:"ending_style"`
	Context UsageContext    `json:"usage_context"`
	Endings DetectedEndings `json:"detected_endings"`

	// Legacy flags kept for callers that predate the ratio fields.
	UsesJondaemal bool `json:"uses_jondaemal"`
	UsesGueoChae  bool `json:"uses_gueo_chae"`
	HasEmpathy    bool `json:"has_empathy"`
}

// EndingStyle carries the formal/conversational split. The two ratios sum to
// at most 1; the remainder is the unclassified share.
type EndingStyle struct {
	FormalRatio         float64   `json:"formal_ratio"`
	ConversationalRatio float64   `json:"conversational_ratio"`
	DominantEnding      Dominance `json:"dominant_ending"`
}

// UsageContext lists the contexts each register was observed in. Tags are
// sorted and deduplicated.
type UsageContext struct {
	Formal         []string `json:"formal"`
	Conversational []string `json:"conversational"`
}

// DetectedEndings reports raw classification counts plus a few example ending
// fragments per register for traceability.
type DetectedEndings struct {
	FormalCount            int      `json:"formal_count"`
	ConversationalCount    int      `json:"conversational_count"`
	UnclassifiedCount      int      `json:"unclassified_count"`
	FormalExamples         []string `json:"formal_examples"`
	ConversationalExamples []string `json:"conversational_examples"`
}

// HeadingProfile summarizes heading usage.
type HeadingProfile struct {
	UsesNumbers   bool `json:"uses_numbers"`
	UsesEmojis    bool `json:"uses_emojis"`
	AverageLength int  `json:"average_length"`
}

// EngagementStyle summarizes reader-engagement signals.
type EngagementStyle struct {
	QuestionsPerSection float64 `json:"questions_per_section"`
	HasCTA              bool    `json:"has_cta"`
	CTAType             CTAType `json:"cta_type,omitempty"`
}

// StructureProfile summarizes document structure.
type StructureProfile struct {
	AverageParagraphLength float64 `json:"average_paragraph_length"`
	UsesBulletPoints       bool    `json:"uses_bullet_points"`
	UsesNumberedLists      bool    `json:"uses_numbered_lists"`
	HasIntroGreeting       bool    `json:"has_intro_greeting"`
	HasClosingRemarks      bool    `json:"has_closing_remarks"`
}
