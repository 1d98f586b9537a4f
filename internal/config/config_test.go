package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("GROQ_API_KEY", "")
	t.Setenv("VITE_GROQ_API_KEY", "")
	t.Setenv("STORAGE_DRIVER", "memory")

	cfg := Load()

	assert.Equal(t, "5000", cfg.App.Port)
	assert.Equal(t, "demo-user", cfg.App.DemoUserId)
	assert.Equal(t, int64(10*1024*1024), cfg.Upload.MaxBytes)
	assert.Equal(t, "groq", cfg.Ai.LLMProvider)
	assert.Equal(t, 0.7, cfg.Ai.Temperature)
	assert.Equal(t, 2048, cfg.Ai.MaxTokens)
	assert.Empty(t, cfg.Keys.Groq)
	assert.False(t, cfg.IsProduction())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_PORT", "8080")
	t.Setenv("GO_ENV", "production")
	t.Setenv("UPLOAD_MAX_BYTES", "2048")
	t.Setenv("LLM_TEMPERATURE", "0.2")
	t.Setenv("LLM_MAX_TOKENS", "not-a-number")
	t.Setenv("GROQ_API_KEY", "gsk_test")
	t.Setenv("OTEL_ENABLED", "true")

	cfg := Load()

	assert.Equal(t, "8080", cfg.App.Port)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, int64(2048), cfg.Upload.MaxBytes)
	assert.Equal(t, 0.2, cfg.Ai.Temperature)
	assert.Equal(t, 2048, cfg.Ai.MaxTokens, "invalid ints fall back to the default")
	assert.Equal(t, "gsk_test", cfg.Keys.Groq)
	assert.True(t, cfg.Tracing.Enabled)
}

func TestLoadGroqKeyFallback(t *testing.T) {
	tests := []struct {
		name string
		groq string
		vite string
		want string
	}{
		{name: "primary wins", groq: "gsk_primary", vite: "gsk_vite", want: "gsk_primary"},
		{name: "empty primary falls through", groq: "", vite: "gsk_vite", want: "gsk_vite"},
		{name: "neither set", groq: "", vite: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("GROQ_API_KEY", tt.groq)
			t.Setenv("VITE_GROQ_API_KEY", tt.vite)

			assert.Equal(t, tt.want, Load().Keys.Groq)
		})
	}
}

func TestLoadEmptyValueUsesDefault(t *testing.T) {
	t.Setenv("APP_PORT", "")

	assert.Equal(t, "5000", Load().App.Port)
}
