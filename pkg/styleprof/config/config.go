// Package config loads analyzer and pattern thresholds from YAML. Missing
// fields fall back to the package defaults, so a config file only needs to
// name the thresholds it changes.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cognicore/styleprof/pkg/styleprof/analyze"
	"github.com/cognicore/styleprof/pkg/styleprof/internalerr"
	"github.com/cognicore/styleprof/pkg/styleprof/pattern"
)

// File mirrors the YAML layout.
type File struct {
	Analyzer AnalyzerSection `yaml:"analyzer"`
	Pattern  PatternSection  `yaml:"pattern"`
}

// AnalyzerSection holds the classifier thresholds.
type AnalyzerSection struct {
	SimpleMaxWords            float64 `yaml:"simple_max_words"`
	MediumMaxWords            float64 `yaml:"medium_max_words"`
	BasicMaxWordLength        float64 `yaml:"basic_max_word_length"`
	IntermediateMaxWordLength float64 `yaml:"intermediate_max_word_length"`
	EmojiRareMax              float64 `yaml:"emoji_rare_max"`
	EmojiModerateMax          float64 `yaml:"emoji_moderate_max"`
	DominanceThreshold        float64 `yaml:"dominance_threshold"`
	LegacyFlagCutoff          float64 `yaml:"legacy_flag_cutoff"`
	TopEmojis                 int     `yaml:"top_emojis"`
	EndingExamples            int     `yaml:"ending_examples"`
	MinKoreanSentenceLength   int     `yaml:"min_korean_sentence_length"`
}

// PatternSection holds the extraction tunables.
type PatternSection struct {
	MinSampleSize int     `yaml:"min_sample_size"`
	RatioEpsilon  float64 `yaml:"ratio_epsilon"`
	CountEpsilon  float64 `yaml:"count_epsilon"`
}

// Load reads a YAML threshold file. Zero-valued fields keep their defaults
// downstream, so sparse files are fine.
func Load(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("load config: %w", err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return File{}, fmt.Errorf("parse config: %w: %v", internalerr.ErrInvalidConfig, err)
	}
	return f, nil
}

// AnalyzerConfig converts the analyzer section into analyze.Config.
func (f File) AnalyzerConfig() analyze.Config {
	return analyze.Config{
		SimpleMaxWords:            f.Analyzer.SimpleMaxWords,
		MediumMaxWords:            f.Analyzer.MediumMaxWords,
		BasicMaxWordLength:        f.Analyzer.BasicMaxWordLength,
		IntermediateMaxWordLength: f.Analyzer.IntermediateMaxWordLength,
		EmojiRareMax:              f.Analyzer.EmojiRareMax,
		EmojiModerateMax:          f.Analyzer.EmojiModerateMax,
		DominanceThreshold:        f.Analyzer.DominanceThreshold,
		LegacyFlagCutoff:          f.Analyzer.LegacyFlagCutoff,
		TopEmojis:                 f.Analyzer.TopEmojis,
		EndingExamples:            f.Analyzer.EndingExamples,
		MinKoreanSentenceLength:   f.Analyzer.MinKoreanSentenceLength,
	}
}

// PatternConfig converts the pattern section into pattern.Config.
func (f File) PatternConfig() pattern.Config {
	return pattern.Config{
		MinSampleSize: f.Pattern.MinSampleSize,
		RatioEpsilon:  f.Pattern.RatioEpsilon,
		CountEpsilon:  f.Pattern.CountEpsilon,
	}
}
