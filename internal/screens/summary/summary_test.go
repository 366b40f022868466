package summary

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/sciquest/internal/content"
	"github.com/abhisek/sciquest/internal/quiz"
	"github.com/abhisek/sciquest/internal/router"
	"github.com/abhisek/sciquest/internal/session"
)

func testSummary() *SummaryScreen {
	sess := session.New("black holes", content.Beginner)
	q := &quiz.Quiz{
		Topic:      "black holes",
		Difficulty: content.Beginner,
		Source:     quiz.SourceLLM,
		Questions: []quiz.Question{
			{Text: "q1?", Options: []string{"a", "b", "c", "d"}, CorrectIndex: 0},
			{Text: "q2?", Options: []string{"a", "b", "c", "d"}, CorrectIndex: 1},
		},
	}
	result := quiz.Grade(q, []int{0, 3})
	return New(sess, result)
}

func TestViewShowsScore(t *testing.T) {
	s := testSummary()
	view := s.View(100, 40)

	if !strings.Contains(view, "1 / 2") {
		t.Errorf("expected score in view:\n%s", view)
	}
	if !strings.Contains(view, "black holes") {
		t.Error("expected topic in view")
	}
}

func TestReviewToggle(t *testing.T) {
	s := testSummary()

	view := s.View(100, 40)
	if strings.Contains(view, "q2?") {
		t.Error("review should be collapsed initially")
	}

	s.Update(tea.KeyPressMsg{Code: 'r', Text: "r"})
	view = s.View(100, 40)
	if !strings.Contains(view, "q2?") {
		t.Error("review should show questions after toggle")
	}
	// The missed question should show the right answer.
	if !strings.Contains(view, "answer: B") {
		t.Errorf("expected correct answer letter in review:\n%s", view)
	}
}

func TestEscPops(t *testing.T) {
	s := testSummary()
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("expected command from esc")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg")
	}
}
