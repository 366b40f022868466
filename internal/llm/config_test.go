package llm

import "testing"

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"anthropic with key", Config{Provider: "anthropic", Anthropic: AnthropicConfig{APIKey: "k"}}, false},
		{"anthropic without key", Config{Provider: "anthropic"}, true},
		{"openai with key", Config{Provider: "openai", OpenAI: OpenAIConfig{APIKey: "k"}}, false},
		{"openai without key", Config{Provider: "openai"}, true},
		{"gemini without key", Config{Provider: "gemini"}, true},
		{"openrouter without key", Config{Provider: "openrouter"}, true},
		{"mock needs nothing", Config{Provider: "mock"}, false},
		{"unknown provider", Config{Provider: "llama-at-home"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr && err == nil {
				t.Error("expected error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestConfigFromEnv_Overrides(t *testing.T) {
	t.Setenv("SCIQUEST_LLM_PROVIDER", "gemini")
	t.Setenv("SCIQUEST_GEMINI_API_KEY", "test-key")
	t.Setenv("SCIQUEST_GEMINI_MODEL", "gemini-pro")

	cfg := ConfigFromEnv()
	if cfg.Provider != "gemini" {
		t.Errorf("expected gemini provider, got %q", cfg.Provider)
	}
	if cfg.Gemini.APIKey != "test-key" {
		t.Errorf("expected test-key, got %q", cfg.Gemini.APIKey)
	}
	if cfg.Gemini.Model != "gemini-pro" {
		t.Errorf("expected gemini-pro, got %q", cfg.Gemini.Model)
	}
}

func TestDiscoverConfig_PriorityOrder(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "g")
	t.Setenv("OPENAI_API_KEY", "o")
	t.Setenv("ANTHROPIC_API_KEY", "a")
	t.Setenv("OPENROUTER_API_KEY", "r")

	cfg, ok := DiscoverConfig()
	if !ok {
		t.Fatal("expected discovery to succeed")
	}
	if cfg.Provider != "gemini" {
		t.Errorf("expected gemini to win discovery, got %q", cfg.Provider)
	}
}

func TestResolveModel(t *testing.T) {
	if got := resolveModel("claude-haiku", anthropicModels); got != "claude-haiku-4-5-20251001" {
		t.Errorf("friendly name not resolved: %q", got)
	}
	if got := resolveModel("claude-exact-id", anthropicModels); got != "claude-exact-id" {
		t.Errorf("direct ID should pass through: %q", got)
	}
}
