package analyze

import "testing"

func TestAnalyzeEngagement_QuestionsPerSection(t *testing.T) {
	a := New(DefaultConfig())
	// Two headings -> three sections; three questions.
	text := "Is this useful? Maybe.\n\n# One\n\nReally? Yes.\n\n# Two\n\nSure? Done."

	p := a.Analyze(text)

	if p.Engagement.QuestionsPerSection != 1.0 {
		t.Errorf("expected 1.0 questions per section, got %f", p.Engagement.QuestionsPerSection)
	}
}

func TestAnalyzeEngagement_NoQuestions(t *testing.T) {
	a := New(DefaultConfig())

	p := a.Analyze("All statements here. Nothing asked.")

	if p.Engagement.QuestionsPerSection != 0 {
		t.Errorf("expected zero question rate, got %f", p.Engagement.QuestionsPerSection)
	}
}

func TestAnalyzeEngagement_CTAPriority(t *testing.T) {
	a := New(DefaultConfig())

	tests := []struct {
		name string
		text string
		want CTAType
	}{
		{"comment beats share", "마음에 들면 댓글 남겨주세요. 공유해 주셔도 좋아요.", CTAComment},
		{"share beats subscribe", "이 글을 공유해 주세요. 그리고 구독도 부탁드려요.", CTAShare},
		{"subscribe detected", "새 글 알림을 받으려면 구독해 주세요.", CTASubscribe},
		{"question group last", "궁금한 점이 있다면 알려주세요.", CTAQuestion},
	}

	for _, tt := range tests {
		p := a.Analyze(tt.text)
		if !p.Engagement.HasCTA {
			t.Errorf("%s: expected CTA detected", tt.name)
			continue
		}
		if p.Engagement.CTAType != tt.want {
			t.Errorf("%s: expected %s, got %s", tt.name, tt.want, p.Engagement.CTAType)
		}
	}
}

func TestAnalyzeEngagement_NoCTA(t *testing.T) {
	a := New(DefaultConfig())

	p := a.Analyze("오늘 날씨를 기록합니다. 내일도 기록합니다.")

	if p.Engagement.HasCTA {
		t.Errorf("expected no CTA, got %s", p.Engagement.CTAType)
	}
	if p.Engagement.CTAType != "" {
		t.Errorf("expected empty CTA type, got %s", p.Engagement.CTAType)
	}
}
