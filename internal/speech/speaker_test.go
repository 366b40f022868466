package speech

import "testing"

func TestNewSpeakerNeverNil(t *testing.T) {
	s := NewSpeaker()
	if s == nil {
		t.Fatal("NewSpeaker returned nil")
	}
	// Whether an engine exists depends on the host; Available and Engine
	// must agree either way.
	if s.Available() && s.Engine() == "" {
		t.Error("available speaker must name its engine")
	}
	if !s.Available() && s.Engine() != "" {
		t.Errorf("unavailable speaker reports engine %q", s.Engine())
	}
}

func TestSpeakWithoutEngine(t *testing.T) {
	s := &Speaker{}
	if err := s.Speak("hello"); err == nil {
		t.Error("expected error with no engine")
	}
	// Stop on an idle speaker is a no-op, not a panic.
	s.Stop()
	if s.Speaking() {
		t.Error("idle speaker reports speaking")
	}
}

func TestSpeakEmptyText(t *testing.T) {
	s := NewSpeaker()
	if !s.Available() {
		t.Skip("no TTS engine on this host")
	}
	if err := s.Speak("   "); err != nil {
		t.Errorf("empty text should be a silent no-op: %v", err)
	}
	if s.Speaking() {
		t.Error("empty text should not start playback")
	}
}
