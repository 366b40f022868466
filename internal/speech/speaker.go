// Package speech reads lesson text aloud through whatever TTS engine the
// host system provides. No engine is a supported configuration; callers
// check Available and hide the speak controls when it is false.
package speech

import (
	"fmt"
	"os/exec"
	"strings"
	"sync"
)

// engines in probe order. macOS ships say; Linux distributions commonly
// have espeak-ng, espeak, or flite.
var engines = []engine{
	{name: "say", args: func(text string) []string { return []string{text} }},
	{name: "espeak-ng", args: func(text string) []string { return []string{"-s", "160", text} }},
	{name: "espeak", args: func(text string) []string { return []string{"-s", "160", text} }},
	{name: "flite", args: func(text string) []string { return []string{"-t", text} }},
}

type engine struct {
	name string
	args func(text string) []string
}

// Speaker speaks text asynchronously through a system TTS engine.
// Starting a new utterance stops the previous one.
type Speaker struct {
	mu     sync.Mutex
	engine *engine
	path   string
	cmd    *exec.Cmd
}

// NewSpeaker probes the system for a TTS engine. The returned Speaker is
// usable either way; with no engine, Available reports false and Speak
// returns an error.
func NewSpeaker() *Speaker {
	s := &Speaker{}
	for i := range engines {
		if path, err := exec.LookPath(engines[i].name); err == nil {
			s.engine = &engines[i]
			s.path = path
			break
		}
	}
	return s
}

// Available reports whether a TTS engine was found.
func (s *Speaker) Available() bool {
	return s.engine != nil
}

// Engine returns the name of the engine in use, or "".
func (s *Speaker) Engine() string {
	if s.engine == nil {
		return ""
	}
	return s.engine.name
}

// Speak starts reading text aloud, stopping any utterance in progress.
// It returns once the engine process has started; playback continues in
// the background.
func (s *Speaker) Speak(text string) error {
	if s.engine == nil {
		return fmt.Errorf("no text-to-speech engine found")
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopLocked()

	cmd := exec.Command(s.path, s.engine.args(text)...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start %s: %w", s.engine.name, err)
	}
	s.cmd = cmd

	// Reap the process so it doesn't linger as a zombie.
	go func() {
		_ = cmd.Wait()
		s.mu.Lock()
		if s.cmd == cmd {
			s.cmd = nil
		}
		s.mu.Unlock()
	}()

	return nil
}

// Speaking reports whether an utterance is currently playing.
func (s *Speaker) Speaking() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cmd != nil
}

// Stop silences any utterance in progress.
func (s *Speaker) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopLocked()
}

func (s *Speaker) stopLocked() {
	if s.cmd != nil && s.cmd.Process != nil {
		_ = s.cmd.Process.Kill()
	}
	s.cmd = nil
}
