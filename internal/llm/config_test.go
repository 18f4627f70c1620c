package llm

import "testing"

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"gemini with key", Config{Provider: "gemini", Gemini: GeminiConfig{APIKey: "k"}}, false},
		{"gemini without key", Config{Provider: "gemini"}, true},
		{"openai with key", Config{Provider: "openai", OpenAI: OpenAIConfig{APIKey: "k"}}, false},
		{"anthropic without key", Config{Provider: "anthropic"}, true},
		{"mock needs no key", Config{Provider: "mock"}, false},
		{"unknown provider", Config{Provider: "bard"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfigFromEnvProviderOverride(t *testing.T) {
	t.Setenv("QUIZDECK_LLM_PROVIDER", "openai")
	t.Setenv("QUIZDECK_OPENAI_API_KEY", "k")
	t.Setenv("GEMINI_API_KEY", "")

	cfg := ConfigFromEnv()
	if cfg.Provider != "openai" {
		t.Errorf("provider = %q, want openai", cfg.Provider)
	}
	if cfg.OpenAI.APIKey != "k" {
		t.Errorf("api key = %q", cfg.OpenAI.APIKey)
	}
}

func TestConfigFromEnvDiscovery(t *testing.T) {
	t.Setenv("QUIZDECK_LLM_PROVIDER", "")
	t.Setenv("QUIZDECK_GEMINI_API_KEY", "")
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("ANTHROPIC_API_KEY", "standard-key")

	cfg := ConfigFromEnv()
	if cfg.Provider != "anthropic" {
		t.Errorf("provider = %q, want anthropic (discovered)", cfg.Provider)
	}
	if cfg.Anthropic.APIKey != "standard-key" {
		t.Errorf("api key = %q", cfg.Anthropic.APIKey)
	}
}
