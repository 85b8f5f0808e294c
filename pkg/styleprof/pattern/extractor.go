package pattern

import (
	"crypto/rand"
	"math"
	"sort"

	"github.com/oklog/ulid/v2"

	"github.com/cognicore/styleprof/pkg/styleprof/analyze"
	"github.com/cognicore/styleprof/pkg/styleprof/merge"
)

// Config holds the extraction and reconciliation tunables.
type Config struct {
	// MinSampleSize is the minimum number of contributing documents before a
	// group produces a pattern. A single document is noise, not a pattern.
	MinSampleSize int

	// RatioEpsilon is the tolerance for ratio-valued fields when matching a
	// candidate against a stored record.
	RatioEpsilon float64

	// CountEpsilon is the tolerance for count-valued fields (average lengths,
	// question rates).
	CountEpsilon float64
}

// DefaultConfig returns the stock tunables.
func DefaultConfig() Config {
	return Config{
		MinSampleSize: 2,
		RatioEpsilon:  0.1,
		CountEpsilon:  1.0,
	}
}

func (c Config) normalize() Config {
	def := DefaultConfig()
	if c.MinSampleSize <= 0 {
		c.MinSampleSize = def.MinSampleSize
	}
	if c.RatioEpsilon <= 0 {
		c.RatioEpsilon = def.RatioEpsilon
	}
	if c.CountEpsilon <= 0 {
		c.CountEpsilon = def.CountEpsilon
	}
	return c
}

// Observation pairs an analyzed profile with the platform it was written for.
// An empty platform means the document is venue-independent.
type Observation struct {
	Profile  analyze.Profile
	Platform string
}

// Extractor derives representative patterns from groups of observations. The
// grouping and derivation steps are pure; only Reconcile's ULID assignment
// draws entropy.
type Extractor struct {
	cfg     Config
	merger  *merge.Merger
	entropy *ulid.MonotonicEntropy
}

// New creates an Extractor. The analyze config supplies the dominance rule
// used when deriving representative Korean ending mixes.
func New(cfg Config, styleCfg analyze.Config) *Extractor {
	return &Extractor{
		cfg:     cfg.normalize(),
		merger:  merge.New(styleCfg),
		entropy: ulid.Monotonic(rand.Reader, 0),
	}
}

// Extract groups observations by (pattern type, platform) and derives one
// candidate record per group with enough contributing documents. Candidates
// carry no ID and a zero UsageCount; Reconcile assigns both. Groups below the
// minimum sample size are skipped silently.
func (e *Extractor) Extract(observations []Observation) []Record {
	byPlatform := make(map[string][]analyze.Profile)
	for _, obs := range observations {
		byPlatform[obs.Platform] = append(byPlatform[obs.Platform], obs.Profile)
	}

	platforms := make([]string, 0, len(byPlatform))
	for platform := range byPlatform {
		platforms = append(platforms, platform)
	}
	sort.Strings(platforms)

	var records []Record
	for _, typ := range Types() {
		for _, platform := range platforms {
			contributors := contributorsFor(typ, byPlatform[platform])
			if len(contributors) < e.cfg.MinSampleSize {
				continue
			}
			data, ok := e.derive(typ, contributors)
			if !ok {
				continue
			}
			records = append(records, Record{
				Type:     typ,
				Platform: platform,
				Data:     data,
			})
		}
	}
	return records
}

// contributorsFor filters the profiles that carry signal for a pattern type.
// Korean ending patterns only count documents with classified Hangul
// sentences; the other categories derive from every profile.
func contributorsFor(typ Type, profiles []analyze.Profile) []analyze.Profile {
	if typ != TypeKoreanEndingMix {
		return profiles
	}
	var out []analyze.Profile
	for _, p := range profiles {
		if p.Korean.Present {
			out = append(out, p)
		}
	}
	return out
}

// derive computes the representative shape for a group using the same
// averaging rules as merge, scoped to the pattern type's sub-fields.
func (e *Extractor) derive(typ Type, profiles []analyze.Profile) (Data, bool) {
	merged, err := e.merger.Merge(profiles)
	if err != nil {
		return nil, false
	}

	switch typ {
	case TypeKoreanEndingMix:
		if !merged.Korean.Present {
			return nil, false
		}
		return KoreanEndingMix{
			FormalRatio:         merged.Korean.Ending.FormalRatio,
			ConversationalRatio: merged.Korean.Ending.ConversationalRatio,
			DominantEnding:      merged.Korean.Ending.DominantEnding,
		}, true
	case TypeHeadingStructure:
		return HeadingStructure{
			UsesNumbers:   merged.Heading.UsesNumbers,
			UsesEmojis:    merged.Heading.UsesEmojis,
			AverageLength: float64(merged.Heading.AverageLength),
		}, true
	case TypeEmojiUsage:
		return EmojiUsage{
			Frequency:    merged.Emoji.Frequency,
			CommonEmojis: merged.Emoji.CommonEmojis,
		}, true
	case TypeParagraphLength:
		return ParagraphLength{
			AverageSentences:  merged.Structure.AverageParagraphLength,
			UsesBulletPoints:  merged.Structure.UsesBulletPoints,
			UsesNumberedLists: merged.Structure.UsesNumberedLists,
		}, true
	case TypeEngagementStyle:
		return EngagementStyle{
			QuestionsPerSection: merged.Engagement.QuestionsPerSection,
			HasCTA:              merged.Engagement.HasCTA,
			CTAType:             merged.Engagement.CTAType,
		}, true
	default:
		return nil, false
	}
}

// Reconcile matches a candidate against existing records for the same type
// and platform. On a match it returns the existing record with its usage
// count incremented and reports true; otherwise it returns the candidate as a
// fresh record with usage count 1 and a new ULID.
func (e *Extractor) Reconcile(candidate Record, existing []Record) (Record, bool) {
	for _, rec := range existing {
		if rec.Type != candidate.Type || rec.Platform != candidate.Platform {
			continue
		}
		if e.similar(candidate.Data, rec.Data) {
			rec.UsageCount++
			return rec, true
		}
	}

	candidate.ID = ulid.MustNew(ulid.Now(), e.entropy).String()
	candidate.UsageCount = 1
	return candidate, false
}

// similar compares two payloads of the same type: numeric fields within
// epsilon, categorical and boolean fields exactly. Emoji rankings are treated
// as categorical at the frequency level only; the specific top-5 list may
// drift without breaking a match.
func (e *Extractor) similar(a, b Data) bool {
	switch av := a.(type) {
	case KoreanEndingMix:
		bv, ok := b.(KoreanEndingMix)
		return ok &&
			withinEps(av.FormalRatio, bv.FormalRatio, e.cfg.RatioEpsilon) &&
			withinEps(av.ConversationalRatio, bv.ConversationalRatio, e.cfg.RatioEpsilon) &&
			av.DominantEnding == bv.DominantEnding
	case HeadingStructure:
		bv, ok := b.(HeadingStructure)
		return ok &&
			av.UsesNumbers == bv.UsesNumbers &&
			av.UsesEmojis == bv.UsesEmojis &&
			withinEps(av.AverageLength, bv.AverageLength, e.cfg.CountEpsilon)
	case EmojiUsage:
		bv, ok := b.(EmojiUsage)
		return ok && av.Frequency == bv.Frequency
	case ParagraphLength:
		bv, ok := b.(ParagraphLength)
		return ok &&
			withinEps(av.AverageSentences, bv.AverageSentences, e.cfg.CountEpsilon) &&
			av.UsesBulletPoints == bv.UsesBulletPoints &&
			av.UsesNumberedLists == bv.UsesNumberedLists
	case EngagementStyle:
		bv, ok := b.(EngagementStyle)
		return ok &&
			withinEps(av.QuestionsPerSection, bv.QuestionsPerSection, e.cfg.CountEpsilon) &&
			av.HasCTA == bv.HasCTA &&
			av.CTAType == bv.CTAType
	default:
		return false
	}
}

func withinEps(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}
