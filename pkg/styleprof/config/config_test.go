package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/cognicore/styleprof/pkg/styleprof/analyze"
	"github.com/cognicore/styleprof/pkg/styleprof/internalerr"
	"github.com/cognicore/styleprof/pkg/styleprof/pattern"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "styleprof.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_FullFile(t *testing.T) {
	path := writeConfig(t, `
analyzer:
  simple_max_words: 12
  medium_max_words: 18
  dominance_threshold: 0.9
  top_emojis: 3
pattern:
  min_sample_size: 5
  ratio_epsilon: 0.05
`)

	f, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	if f.Analyzer.SimpleMaxWords != 12 {
		t.Errorf("expected simple_max_words 12, got %f", f.Analyzer.SimpleMaxWords)
	}
	if f.Analyzer.DominanceThreshold != 0.9 {
		t.Errorf("expected dominance_threshold 0.9, got %f", f.Analyzer.DominanceThreshold)
	}
	if f.Pattern.MinSampleSize != 5 {
		t.Errorf("expected min_sample_size 5, got %d", f.Pattern.MinSampleSize)
	}
}

func TestLoad_SparseFileKeepsDefaultsDownstream(t *testing.T) {
	path := writeConfig(t, `
analyzer:
  dominance_threshold: 0.9
`)

	f, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	// Untouched fields stay zero and pick up defaults at construction.
	a := analyze.New(f.AnalyzerConfig())
	p := a.Analyze("안녕하세요. 오늘도 기록을 남깁니다. 내일 다시 만나요.")
	if !p.Korean.Present {
		t.Error("expected defaulted analyzer to still classify Korean text")
	}

	cfg := f.PatternConfig()
	if cfg.MinSampleSize != 0 {
		t.Errorf("expected zero-valued sample size before normalization, got %d", cfg.MinSampleSize)
	}
	e := pattern.New(cfg, f.AnalyzerConfig())
	if recs := e.Extract([]pattern.Observation{{Profile: p}}); len(recs) != 0 {
		t.Error("expected default minimum sample size to gate a single observation")
	}
}

func TestLoad_RaisedDominanceThresholdApplies(t *testing.T) {
	path := writeConfig(t, `
analyzer:
  dominance_threshold: 0.9
`)

	f, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	cfg := f.AnalyzerConfig()
	if got := cfg.Dominant(0.85, 0.15); got != analyze.DominanceMixed {
		t.Errorf("expected 0.85 below a 0.9 threshold to stay mixed, got %s", got)
	}
	if got := cfg.Dominant(0.9, 0.1); got != analyze.DominanceFormal {
		t.Errorf("expected 0.9 to reach the raised threshold, got %s", got)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := writeConfig(t, "analyzer: [not\n  a: map")

	_, err := Load(path)
	if !errors.Is(err, internalerr.ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
}
