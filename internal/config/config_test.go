package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "SERVER_PORT", "LOG_LEVEL", "SERVICE_NAME", "ENVIRONMENT",
		"LLM_PROVIDER", "CHAT_MODEL", "STYLE_DB_PATH", "OPENAI_API_KEY",
		"GEMINI_API_KEYS", "DATABASE_URL", "ALLOWED_ORIGINS",
	} {
		t.Setenv(key, "")
	}

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "kue-brain", cfg.ServiceName)
	assert.Equal(t, "openai", cfg.LLMProvider)
	assert.Equal(t, "gpt-4o-mini", cfg.ChatModel)
	assert.Equal(t, "user_style.db", cfg.StyleDBPath)
	assert.Equal(t, []string{"*"}, cfg.AllowedOrigins)
	assert.Empty(t, cfg.OpenAIAPIKey)
	assert.Empty(t, cfg.DatabaseURL)
}

func TestLoadConfigGeminiDefaults(t *testing.T) {
	t.Setenv("LLM_PROVIDER", "gemini")
	t.Setenv("CHAT_MODEL", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "gemini-2.0-flash-lite", cfg.ChatModel)
}

func TestLoadConfigKeyList(t *testing.T) {
	t.Setenv("GEMINI_API_KEYS", " key-one, key-two ,\nkey-three ")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, []string{"key-one", "key-two", "key-three"}, cfg.GeminiAPIKeys)
}
