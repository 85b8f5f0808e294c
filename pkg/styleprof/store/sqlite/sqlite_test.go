package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/cognicore/styleprof/pkg/styleprof/analyze"
	"github.com/cognicore/styleprof/pkg/styleprof/internalerr"
	"github.com/cognicore/styleprof/pkg/styleprof/pattern"
)

func openTestStore(t *testing.T) (context.Context, *sqliteStore) {
	t.Helper()
	ctx := context.Background()
	s, err := Open(ctx, filepath.Join(t.TempDir(), "patterns.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return ctx, s.(*sqliteStore)
}

func mixRecord(id, platform string, formal float64) pattern.Record {
	return pattern.Record{
		ID:       id,
		Type:     pattern.TypeKoreanEndingMix,
		Platform: platform,
		Data: pattern.KoreanEndingMix{
			FormalRatio:         formal,
			ConversationalRatio: 1 - formal,
			DominantEnding:      analyze.DominanceMixed,
		},
	}
}

func TestUpsertPattern_InsertAndFetch(t *testing.T) {
	ctx, s := openTestStore(t)

	inserted, err := s.UpsertPattern(ctx, mixRecord("01HAAAA", "naver_blog", 0.7))
	if err != nil {
		t.Fatal(err)
	}
	if inserted.UsageCount != 1 {
		t.Errorf("expected usage count 1 on insert, got %d", inserted.UsageCount)
	}

	got, err := s.GetPatterns(ctx, pattern.TypeKoreanEndingMix, "naver_blog")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 record, got %d", len(got))
	}
	data, ok := got[0].Data.(pattern.KoreanEndingMix)
	if !ok {
		t.Fatalf("unexpected payload type %T", got[0].Data)
	}
	if data.FormalRatio != 0.7 {
		t.Errorf("expected formal ratio round-tripped, got %f", data.FormalRatio)
	}
	if got[0].CreatedAt.IsZero() {
		t.Error("expected creation time persisted")
	}
}

func TestUpsertPattern_IncrementsExisting(t *testing.T) {
	ctx, s := openTestStore(t)

	if _, err := s.UpsertPattern(ctx, mixRecord("01HAAAA", "", 0.7)); err != nil {
		t.Fatal(err)
	}
	updated, err := s.UpsertPattern(ctx, mixRecord("01HAAAA", "", 0.75))
	if err != nil {
		t.Fatal(err)
	}
	if updated.UsageCount != 2 {
		t.Errorf("expected usage count 2 after second upsert, got %d", updated.UsageCount)
	}

	got, err := s.GetPatterns(ctx, pattern.TypeKoreanEndingMix, "")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 {
		t.Fatalf("expected a single record after upsert, got %d", len(got))
	}
	if got[0].UsageCount != 2 {
		t.Errorf("expected stored usage count 2, got %d", got[0].UsageCount)
	}
	if got[0].Data.(pattern.KoreanEndingMix).FormalRatio != 0.75 {
		t.Error("expected payload refreshed on increment")
	}
}

func TestUpsertPattern_RequiresID(t *testing.T) {
	ctx, s := openTestStore(t)

	_, err := s.UpsertPattern(ctx, mixRecord("", "", 0.5))
	if !errors.Is(err, internalerr.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
}

func TestGetPatterns_PlatformScoping(t *testing.T) {
	ctx, s := openTestStore(t)

	seed := []pattern.Record{
		mixRecord("01HAAAA", "naver_blog", 0.7),
		mixRecord("01HBBBB", "", 0.6),
		{
			ID:       "01HCCCC",
			Type:     pattern.TypeEmojiUsage,
			Platform: "naver_blog",
			Data:     pattern.EmojiUsage{Frequency: analyze.EmojiRare},
		},
	}
	for _, rec := range seed {
		if _, err := s.UpsertPattern(ctx, rec); err != nil {
			t.Fatal(err)
		}
	}

	got, err := s.GetPatterns(ctx, "", "naver_blog")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Errorf("expected 2 platform records, got %d", len(got))
	}

	got, err = s.GetPatterns(ctx, "", "")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].ID != "01HBBBB" {
		t.Errorf("expected only the unscoped record, got %v", got)
	}

	got, err = s.GetPatterns(ctx, pattern.TypeEmojiUsage, "naver_blog")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].ID != "01HCCCC" {
		t.Errorf("expected the emoji record only, got %v", got)
	}
}

func TestListPatterns_OrderedOldestFirst(t *testing.T) {
	ctx, s := openTestStore(t)

	for _, id := range []string{"01HAAAA", "01HBBBB", "01HCCCC"} {
		if _, err := s.UpsertPattern(ctx, mixRecord(id, "", 0.5)); err != nil {
			t.Fatal(err)
		}
	}

	got, err := s.ListPatterns(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 records, got %d", len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i].CreatedAt.Before(got[i-1].CreatedAt) {
			t.Errorf("expected oldest-first ordering, got %v before %v",
				got[i-1].CreatedAt, got[i].CreatedAt)
		}
	}
}

func TestQueryRecords_CorruptTimestampFailsLoudly(t *testing.T) {
	ctx, s := openTestStore(t)

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO patterns (id, pattern_type, platform, data, usage_count, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		"01HBROKEN", string(pattern.TypeEmojiUsage), "", `{"frequency":"rare"}`, 1, "yesterday-ish")
	if err != nil {
		t.Fatal(err)
	}

	if _, err := s.ListPatterns(ctx); err == nil {
		t.Error("expected decode error for a corrupt created_at value")
	}
	if _, err := s.GetPatterns(ctx, pattern.TypeEmojiUsage, ""); err == nil {
		t.Error("expected decode error from the scoped query as well")
	}
}

func TestOpen_ReopensExistingDatabase(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "patterns.db")

	s, err := Open(ctx, path)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := s.UpsertPattern(ctx, mixRecord("01HAAAA", "", 0.7)); err != nil {
		t.Fatal(err)
	}
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}

	s, err = Open(ctx, path)
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	got, err := s.ListPatterns(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].ID != "01HAAAA" {
		t.Errorf("expected the record to survive reopen, got %v", got)
	}
}
