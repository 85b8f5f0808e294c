// Package styleprof extracts style profiles from blog corpora, merges them
// into generation guidance, and learns recurring style patterns across a
// growing document set.
package styleprof

import (
	"context"
	"fmt"

	"github.com/cognicore/styleprof/pkg/styleprof/analyze"
	"github.com/cognicore/styleprof/pkg/styleprof/internalerr"
	"github.com/cognicore/styleprof/pkg/styleprof/merge"
	"github.com/cognicore/styleprof/pkg/styleprof/pattern"
	"github.com/cognicore/styleprof/pkg/styleprof/store"
)

// Document is one loaded blog post. Content must already be plain text;
// format-specific decoding (PDF, HTML, database rows) belongs to the loader.
type Document struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Content    string `json:"content"`
	SourceType string `json:"source_type"`
}

// DocumentSource supplies documents from some backing medium. Implemented by
// collaborators (filesystem, database, web); the engine only consumes it.
type DocumentSource interface {
	ListDocuments(ctx context.Context, sourceFilter string) ([]Document, error)
}

// Engine is the main style-guidance facade.
type Engine struct {
	store     store.Store
	analyzer  *analyze.Analyzer
	merger    *merge.Merger
	extractor *pattern.Extractor
}

// Options configures an Engine. Store may be nil for pure analysis without
// pattern learning; zero-valued configs use the package defaults.
type Options struct {
	Store     store.Store
	Analyzer  analyze.Config
	Extractor pattern.Config
}

// New creates an Engine with the given dependencies.
func New(opts Options) *Engine {
	return &Engine{
		store:     opts.Store,
		analyzer:  analyze.New(opts.Analyzer),
		merger:    merge.New(opts.Analyzer),
		extractor: pattern.New(opts.Extractor, opts.Analyzer),
	}
}

// Close cleanly shuts down the Engine.
func (e *Engine) Close() error {
	if e.store == nil {
		return nil
	}
	return e.store.Close()
}

// AnalyzeDoc classifies a single document.
func (e *Engine) AnalyzeDoc(doc Document) analyze.Profile {
	return e.analyzer.Analyze(doc.Content)
}

// Guidance is the combined output consumed by prompt assembly: the merged
// style of the supplied documents plus any patterns learned so far for the
// requested platform.
type Guidance struct {
	MergedStyle merge.Guidance   `json:"merged_style"`
	Patterns    []pattern.Record `json:"patterns"`
}

// BuildGuidance analyzes and merges the documents, then attaches the stored
// patterns scoped to the platform (plus the venue-independent ones). Callers
// should supply documents oldest-first so categorical tie-breaks favor the
// most recent post.
func (e *Engine) BuildGuidance(ctx context.Context, docs []Document, platform string) (Guidance, error) {
	if len(docs) == 0 {
		return Guidance{}, fmt.Errorf("styleprof: %w: no documents", internalerr.ErrInvalidInput)
	}

	profiles := make([]analyze.Profile, len(docs))
	for i, doc := range docs {
		profiles[i] = e.analyzer.Analyze(doc.Content)
	}

	merged, err := e.merger.Merge(profiles)
	if err != nil {
		return Guidance{}, err
	}

	guidance := Guidance{MergedStyle: merged}
	if e.store == nil {
		return guidance, nil
	}

	patterns, err := e.store.GetPatterns(ctx, "", platform)
	if err != nil {
		return Guidance{}, fmt.Errorf("styleprof: load patterns: %w", err)
	}
	if platform != "" {
		global, err := e.store.GetPatterns(ctx, "", "")
		if err != nil {
			return Guidance{}, fmt.Errorf("styleprof: load patterns: %w", err)
		}
		patterns = append(patterns, global...)
	}
	guidance.Patterns = patterns

	return guidance, nil
}

// Learn analyzes the documents, derives candidate patterns, reconciles them
// against the store, and persists the result. It returns the number of
// pattern records created or reinforced. Groups below the minimum sample
// size produce nothing, which is not an error.
func (e *Engine) Learn(ctx context.Context, docs []Document, platform string) (int, error) {
	if e.store == nil {
		return 0, fmt.Errorf("styleprof: %w", internalerr.ErrStoreUnavailable)
	}
	if len(docs) == 0 {
		return 0, fmt.Errorf("styleprof: %w: no documents", internalerr.ErrInvalidInput)
	}

	observations := make([]pattern.Observation, len(docs))
	for i, doc := range docs {
		observations[i] = pattern.Observation{
			Profile:  e.analyzer.Analyze(doc.Content),
			Platform: platform,
		}
	}

	applied := 0
	for _, candidate := range e.extractor.Extract(observations) {
		existing, err := e.store.GetPatterns(ctx, candidate.Type, candidate.Platform)
		if err != nil {
			return applied, fmt.Errorf("styleprof: load patterns: %w", err)
		}
		rec, _ := e.extractor.Reconcile(candidate, existing)
		if _, err := e.store.UpsertPattern(ctx, rec); err != nil {
			return applied, fmt.Errorf("styleprof: upsert pattern: %w", err)
		}
		applied++
	}
	return applied, nil
}
