// Package pattern learns recurring style shapes across a corpus. A pattern is
// only emitted once at least two documents support it; reconciliation against
// previously stored records increments a usage counter instead of creating
// duplicates. Records are never deleted here; pruning is the host's policy.
package pattern

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/cognicore/styleprof/pkg/styleprof/analyze"
	"github.com/cognicore/styleprof/pkg/styleprof/internalerr"
)

// Type enumerates the five closed pattern categories.
type Type string

const (
	TypeKoreanEndingMix  Type = "korean_ending_mix"
	TypeHeadingStructure Type = "heading_structure"
	TypeEmojiUsage       Type = "emoji_usage"
	TypeParagraphLength  Type = "paragraph_length"
	TypeEngagementStyle  Type = "engagement_style"
)

// Types lists all pattern categories in their canonical order.
func Types() []Type {
	return []Type{
		TypeKoreanEndingMix,
		TypeHeadingStructure,
		TypeEmojiUsage,
		TypeParagraphLength,
		TypeEngagementStyle,
	}
}

// Data is the tagged payload of a Record. Exactly one concrete payload type
// exists per pattern Type, so a switch over Data is exhaustive.
type Data interface {
	PatternType() Type
}

// KoreanEndingMix captures the representative formal/conversational split.
type KoreanEndingMix struct {
	FormalRatio         float64           `json:"formal_ratio"`
	ConversationalRatio float64           `json:"conversational_ratio"`
	DominantEnding      analyze.Dominance `json:"dominant_ending"`
}

func (KoreanEndingMix) PatternType() Type { return TypeKoreanEndingMix }

// HeadingStructure captures the representative heading conventions.
type HeadingStructure struct {
	UsesNumbers   bool    `json:"uses_numbers"`
	UsesEmojis    bool    `json:"uses_emojis"`
	AverageLength float64 `json:"average_length"`
}

func (HeadingStructure) PatternType() Type { return TypeHeadingStructure }

// EmojiUsage captures the representative emoji habits.
type EmojiUsage struct {
	Frequency    analyze.EmojiFrequency `json:"frequency"`
	CommonEmojis []string               `json:"common_emojis"`
}

func (EmojiUsage) PatternType() Type { return TypeEmojiUsage }

// ParagraphLength captures the representative paragraph granularity.
type ParagraphLength struct {
	AverageSentences  float64 `json:"average_sentences"`
	UsesBulletPoints  bool    `json:"uses_bullet_points"`
	UsesNumberedLists bool    `json:"uses_numbered_lists"`
}

func (ParagraphLength) PatternType() Type { return TypeParagraphLength }

// EngagementStyle captures the representative reader-engagement habits.
type EngagementStyle struct {
	QuestionsPerSection float64         `json:"questions_per_section"`
	HasCTA              bool            `json:"has_cta"`
	CTAType             analyze.CTAType `json:"cta_type,omitempty"`
}

func (EngagementStyle) PatternType() Type { return TypeEngagementStyle }

// Record is one learned pattern. Platform is empty for venue-independent
// patterns. UsageCount counts how many times this shape was reconciled, not
// the sample size of any one extraction pass.
type Record struct {
	ID         string    `json:"id"`
	Type       Type      `json:"pattern_type"`
	Platform   string    `json:"platform,omitempty"`
	Data       Data      `json:"data"`
	UsageCount int       `json:"usage_count"`
	CreatedAt  time.Time `json:"created_at"`
}

// MarshalData encodes a record payload for storage.
func MarshalData(d Data) ([]byte, error) {
	if d == nil {
		return nil, fmt.Errorf("pattern: %w: nil data", internalerr.ErrInvalidInput)
	}
	return json.Marshal(d)
}

// UnmarshalData decodes a stored payload into the concrete type for typ.
func UnmarshalData(typ Type, raw []byte) (Data, error) {
	switch typ {
	case TypeKoreanEndingMix:
		var d KoreanEndingMix
		if err := json.Unmarshal(raw, &d); err != nil {
			return nil, err
		}
		return d, nil
	case TypeHeadingStructure:
		var d HeadingStructure
		if err := json.Unmarshal(raw, &d); err != nil {
			return nil, err
		}
		return d, nil
	case TypeEmojiUsage:
		var d EmojiUsage
		if err := json.Unmarshal(raw, &d); err != nil {
			return nil, err
		}
		return d, nil
	case TypeParagraphLength:
		var d ParagraphLength
		if err := json.Unmarshal(raw, &d); err != nil {
			return nil, err
		}
		return d, nil
	case TypeEngagementStyle:
		var d EngagementStyle
		if err := json.Unmarshal(raw, &d); err != nil {
			return nil, err
		}
		return d, nil
	default:
		return nil, fmt.Errorf("pattern: %w: unknown pattern type %q", internalerr.ErrInvalidInput, typ)
	}
}
