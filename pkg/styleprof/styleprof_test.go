package styleprof

import (
	"context"
	"errors"
	"testing"

	"github.com/cognicore/styleprof/pkg/styleprof/analyze"
	"github.com/cognicore/styleprof/pkg/styleprof/internalerr"
	"github.com/cognicore/styleprof/pkg/styleprof/pattern"
	"github.com/cognicore/styleprof/pkg/styleprof/store/memstore"
)

var formalDocs = []Document{
	{
		ID:    "post-1",
		Title: "홈카페 시작하기",
		Content: "오늘은 홈카페를 시작하는 방법을 소개합니다. 준비물은 간단합니다. " +
			"원두와 드리퍼만 있으면 충분합니다. 천천히 따라오시면 됩니다.",
		SourceType: "markdown",
	},
	{
		ID:    "post-2",
		Title: "드립 커피 내리기",
		Content: "드립 커피를 내리는 순서를 설명합니다. 물 온도가 중요합니다. " +
			"구십 도 정도가 적당합니다. 추출 시간은 삼 분을 넘기지 않습니다.",
		SourceType: "markdown",
	},
}

func TestAnalyzeDoc_ClassifiesContent(t *testing.T) {
	e := New(Options{})
	defer e.Close()

	p := e.AnalyzeDoc(formalDocs[0])

	if !p.Korean.Present {
		t.Fatal("expected Korean detected")
	}
	if p.Korean.Ending.DominantEnding != analyze.DominanceFormal {
		t.Errorf("expected formal dominance, got %s", p.Korean.Ending.DominantEnding)
	}
}

func TestBuildGuidance_NoDocuments(t *testing.T) {
	e := New(Options{})
	defer e.Close()

	_, err := e.BuildGuidance(context.Background(), nil, "")
	if !errors.Is(err, internalerr.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
}

func TestBuildGuidance_WithoutStore(t *testing.T) {
	e := New(Options{})
	defer e.Close()

	g, err := e.BuildGuidance(context.Background(), formalDocs, "naver_blog")
	if err != nil {
		t.Fatal(err)
	}

	if g.MergedStyle.SampleSize != 2 {
		t.Errorf("expected sample size 2, got %d", g.MergedStyle.SampleSize)
	}
	if len(g.Patterns) != 0 {
		t.Errorf("expected no patterns without a store, got %d", len(g.Patterns))
	}
}

func TestLearn_WithoutStore(t *testing.T) {
	e := New(Options{})
	defer e.Close()

	_, err := e.Learn(context.Background(), formalDocs, "")
	if !errors.Is(err, internalerr.ErrStoreUnavailable) {
		t.Errorf("expected ErrStoreUnavailable, got %v", err)
	}
}

func TestLearn_SingleDocumentBelowThreshold(t *testing.T) {
	e := New(Options{Store: memstore.New()})
	defer e.Close()

	n, err := e.Learn(context.Background(), formalDocs[:1], "naver_blog")
	if err != nil {
		t.Fatal(err)
	}
	if n != 0 {
		t.Errorf("expected nothing learned from one document, got %d", n)
	}
}

func TestLearn_PersistsPatternsForGuidance(t *testing.T) {
	ctx := context.Background()
	e := New(Options{Store: memstore.New()})
	defer e.Close()

	n, err := e.Learn(ctx, formalDocs, "naver_blog")
	if err != nil {
		t.Fatal(err)
	}
	if n == 0 {
		t.Fatal("expected patterns learned from two documents")
	}

	g, err := e.BuildGuidance(ctx, formalDocs, "naver_blog")
	if err != nil {
		t.Fatal(err)
	}
	if len(g.Patterns) != n {
		t.Errorf("expected %d patterns attached, got %d", n, len(g.Patterns))
	}
	for _, rec := range g.Patterns {
		if rec.UsageCount != 1 {
			t.Errorf("expected usage count 1 after first learning pass, got %d for %s", rec.UsageCount, rec.Type)
		}
	}
}

func TestLearn_RepeatReinforcesInsteadOfDuplicating(t *testing.T) {
	ctx := context.Background()
	e := New(Options{Store: memstore.New()})
	defer e.Close()

	first, err := e.Learn(ctx, formalDocs, "naver_blog")
	if err != nil {
		t.Fatal(err)
	}
	second, err := e.Learn(ctx, formalDocs, "naver_blog")
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Errorf("expected same number of reconciliations, got %d then %d", first, second)
	}

	g, err := e.BuildGuidance(ctx, formalDocs, "naver_blog")
	if err != nil {
		t.Fatal(err)
	}
	if len(g.Patterns) != first {
		t.Errorf("expected repeat learning to reinforce, not duplicate: %d records for %d groups",
			len(g.Patterns), first)
	}
	for _, rec := range g.Patterns {
		if rec.UsageCount != 2 {
			t.Errorf("expected usage count 2 after two passes, got %d for %s", rec.UsageCount, rec.Type)
		}
	}
}

func TestBuildGuidance_IncludesGlobalPatterns(t *testing.T) {
	ctx := context.Background()
	st := memstore.New()
	e := New(Options{Store: st})
	defer e.Close()

	if _, err := e.Learn(ctx, formalDocs, ""); err != nil {
		t.Fatal(err)
	}

	g, err := e.BuildGuidance(ctx, formalDocs, "naver_blog")
	if err != nil {
		t.Fatal(err)
	}
	if len(g.Patterns) == 0 {
		t.Error("expected venue-independent patterns attached to platform guidance")
	}
	for _, rec := range g.Patterns {
		if rec.Platform != "" {
			t.Errorf("expected only unscoped records, got platform %q", rec.Platform)
		}
	}
}

func TestLearn_ScopesCandidatesToPlatform(t *testing.T) {
	ctx := context.Background()
	st := memstore.New()
	e := New(Options{Store: st})
	defer e.Close()

	if _, err := e.Learn(ctx, formalDocs, "naver_blog"); err != nil {
		t.Fatal(err)
	}

	stored, err := st.ListPatterns(ctx)
	if err != nil {
		t.Fatal(err)
	}
	for _, rec := range stored {
		if rec.Platform != "naver_blog" {
			t.Errorf("expected platform scope persisted, got %q", rec.Platform)
		}
		if rec.ID == "" {
			t.Error("expected persisted record to carry an ID")
		}
	}
}

func TestLearn_KoreanGroupSkippedWithoutKoreanText(t *testing.T) {
	ctx := context.Background()
	st := memstore.New()
	e := New(Options{Store: st})
	defer e.Close()

	english := []Document{
		{ID: "en-1", Content: "A short note about coffee. Grind fresh beans. Use hot water."},
		{ID: "en-2", Content: "Another note about tea. Steep the leaves. Pour slowly and wait."},
	}
	if _, err := e.Learn(ctx, english, ""); err != nil {
		t.Fatal(err)
	}

	stored, err := st.ListPatterns(ctx)
	if err != nil {
		t.Fatal(err)
	}
	for _, rec := range stored {
		if rec.Type == pattern.TypeKoreanEndingMix {
			t.Error("expected no Korean ending pattern for English-only documents")
		}
	}
}
