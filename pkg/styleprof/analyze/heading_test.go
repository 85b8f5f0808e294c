package analyze

import "testing"

func TestAnalyzeHeadings_NoHeadings(t *testing.T) {
	a := New(DefaultConfig())

	p := a.Analyze("Just a plain paragraph.\n\nAnd another one after it.")

	if p.Heading.UsesNumbers || p.Heading.UsesEmojis || p.Heading.AverageLength != 0 {
		t.Errorf("expected zero heading profile, got %+v", p.Heading)
	}
}

func TestAnalyzeHeadings_MarkdownAndNumbered(t *testing.T) {
	a := New(DefaultConfig())
	text := "intro paragraph.\n\n## 1. Setup\n\nbody.\n\n## 2. Usage\n\nbody."

	p := a.Analyze(text)

	if !p.Heading.UsesNumbers {
		t.Error("expected numbered headings detected")
	}
	if p.Heading.UsesEmojis {
		t.Error("expected no emoji headings")
	}
	// Both headings reduce to 5-letter titles once markers are stripped.
	if p.Heading.AverageLength != 5 {
		t.Errorf("expected average heading length 5, got %d", p.Heading.AverageLength)
	}
}

func TestAnalyzeHeadings_EmojiHeading(t *testing.T) {
	a := New(DefaultConfig())

	p := a.Analyze("# 오늘의 메뉴 🍜\n\n본문입니다.")

	if !p.Heading.UsesEmojis {
		t.Error("expected emoji detected in heading")
	}
}

func TestHeadings_BulletGlyphLinesQualify(t *testing.T) {
	headings := Headings("다음을 준비하세요.\n- 노트북\n- 충전기\n")

	if len(headings) != 2 {
		t.Errorf("expected 2 glyph-led lines, got %d: %v", len(headings), headings)
	}
}
