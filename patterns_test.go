package emotion

import (
	"reflect"
	"testing"
)

func TestSplitSentences(t *testing.T) {
	tests := []struct {
		text     string
		expected []string
		desc     string
	}{
		{"One. Two! Three?", []string{"One", "Two", "Three"}, "Each terminator"},
		{"Wow!!! Really?.. ok", []string{"Wow", "Really", "ok"}, "Runs of terminators"},
		{"  no terminator  ", []string{"no terminator"}, "Single sentence trimmed"},
		{"...", nil, "Only terminators"},
		{"", nil, "Empty text"},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			if got := splitSentences(tt.text); !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Text: %q\nExpected %q\nGot %q", tt.text, tt.expected, got)
			}
		})
	}
}

func TestExtractPatternsOrder(t *testing.T) {
	text := "I feel stress. Calm now! Deadline stress again?"
	got := ExtractPatterns(text, []string{"stress", "deadline"}, Trigger)

	// Grouped by word, then by sentence position.
	expected := []PatternMatch{
		{Keyword: "stress", Context: "I feel stress", Kind: Trigger},
		{Keyword: "stress", Context: "Deadline stress again", Kind: Trigger},
		{Keyword: "deadline", Context: "Deadline stress again", Kind: Trigger},
	}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("Expected %+v\nGot %+v", expected, got)
	}
}

func TestExtractPatternsSubstring(t *testing.T) {
	text := "I was distressed all day"

	matches := ExtractPatterns(text, DefaultLexicon().Triggers, Trigger)
	if len(matches) != 1 || matches[0].Keyword != "stress" {
		t.Errorf("Expected substring match on stress, got %+v", matches)
	}

	// Scoring uses whole words, so the same text has no fear hit.
	if scores, _, _ := MustNewAnalyzer().Score(text); scores[Fear] != 0 {
		t.Errorf("Expected no fear score, got %d", scores[Fear])
	}
}

func TestExtractPatternsCaseInsensitive(t *testing.T) {
	matches := ExtractPatterns("PEACE AND QUIET", []string{"peace"}, Glimmer)
	if len(matches) != 1 {
		t.Fatalf("Expected one match, got %d", len(matches))
	}
	if matches[0].Context != "PEACE AND QUIET" || matches[0].Kind != Glimmer {
		t.Errorf("Unexpected match: %+v", matches[0])
	}
}

func TestExtractPatternsNoMatch(t *testing.T) {
	matches := ExtractPatterns("", DefaultLexicon().Glimmers, Glimmer)
	if matches == nil || len(matches) != 0 {
		t.Errorf("Expected empty non-nil slice, got %#v", matches)
	}
}
