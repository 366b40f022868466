package quizscreen

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/sciquest/internal/content"
	"github.com/abhisek/sciquest/internal/quiz"
	"github.com/abhisek/sciquest/internal/session"
	"github.com/abhisek/sciquest/internal/speech"
)

func readyScreen(t *testing.T, speaker *speech.Speaker) *QuizScreen {
	t.Helper()
	sess := session.New("gravity", content.Beginner)
	q := New(nil, nil, speaker, sess)
	s, _ := q.Update(quizReadyMsg{Quiz: quiz.Placeholder("gravity", content.Beginner)})
	return s.(*QuizScreen)
}

func TestReadAloudKeyDoesNotAnswer(t *testing.T) {
	q := readyScreen(t, speech.NewSpeaker())

	s, _ := q.Update(tea.KeyPressMsg{Code: 's', Text: "s"})
	q = s.(*QuizScreen)

	if q.mc.Submitted {
		t.Error("read-aloud key must not submit an answer")
	}
	if q.feedback {
		t.Error("read-aloud key must not open the feedback overlay")
	}
}

func TestReadAloudSpeaksQuestion(t *testing.T) {
	speaker := speech.NewSpeaker()
	if !speaker.Available() {
		t.Skip("no TTS engine on this host")
	}
	q := readyScreen(t, speaker)

	s, _ := q.Update(tea.KeyPressMsg{Code: 's', Text: "s"})
	q = s.(*QuizScreen)
	if !speaker.Speaking() {
		t.Fatal("expected playback after pressing s")
	}

	// Leaving the quiz silences the speaker.
	_, _ = q.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if speaker.Speaking() {
		t.Error("expected playback to stop on esc")
	}
}
