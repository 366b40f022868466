package content

import (
	"errors"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		in      string
		want    Difficulty
		wantErr bool
	}{
		{"beginner", Beginner, false},
		{"Beginner", Beginner, false},
		{"  EASY  ", Beginner, false},
		{"medium", Intermediate, false},
		{"intermediate", Intermediate, false},
		{"hard", Advanced, false},
		{"advanced", Advanced, false},
		{"expert", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		got, err := ParseDifficulty(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseDifficulty(%q): expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseDifficulty(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseDifficulty(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeTopic(t *testing.T) {
	if _, err := NormalizeTopic("   "); !errors.Is(err, ErrEmptyTopic) {
		t.Error("expected ErrEmptyTopic for whitespace")
	}
	if _, err := NormalizeTopic("???!!!"); !errors.Is(err, ErrEmptyTopic) {
		t.Error("expected ErrEmptyTopic for punctuation-only input")
	}

	got, err := NormalizeTopic("  black   holes ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "black holes" {
		t.Errorf("expected collapsed whitespace, got %q", got)
	}

	long := strings.Repeat("photosynthesis ", 20)
	got, err = NormalizeTopic(long)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if utf8.RuneCountInString(got) > MaxTopicLen {
		t.Errorf("topic not truncated: %d runes", utf8.RuneCountInString(got))
	}
}

func TestNormalizeTopicMultiByteTruncation(t *testing.T) {
	// 130 two-byte runes; a byte-offset cut would land mid-rune.
	got, err := NormalizeTopic(strings.Repeat("é", 130))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !utf8.ValidString(got) {
		t.Fatal("truncated topic is not valid UTF-8")
	}
	if n := utf8.RuneCountInString(got); n != MaxTopicLen {
		t.Errorf("expected %d runes, got %d", MaxTopicLen, n)
	}
}

func TestDifficultyLabel(t *testing.T) {
	if Beginner.Label() != "Beginner" {
		t.Errorf("got %q", Beginner.Label())
	}
	if Difficulty("").Label() != "" {
		t.Error("empty difficulty should have empty label")
	}
}
