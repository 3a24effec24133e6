package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/d1nch8g/monad/llm"
)

func TestParseArgs_Defaults(t *testing.T) {
	cfg, err := parseArgs([]string{"-k", "sk-test", "-Q", "hello"})
	require.NoError(t, err)

	assert.Equal(t, "sk-test", cfg.APIKey)
	assert.Equal(t, "hello", cfg.Question)
	assert.Equal(t, llm.DefaultModel, cfg.Model)
	assert.Equal(t, llm.DefaultMaxTokens, cfg.MaxTokens)
	assert.Equal(t, "info", cfg.GetLogLevel())
}

func TestParseArgs_Overrides(t *testing.T) {
	cfg, err := parseArgs([]string{
		"-k", "sk-test",
		"-Q", "hello",
		"-m", "gpt-4o",
		"-n", "300",
		"--verbose",
	})
	require.NoError(t, err)

	assert.Equal(t, "gpt-4o", cfg.Model)
	assert.Equal(t, 300, cfg.MaxTokens)
	assert.Equal(t, "debug", cfg.GetLogLevel())
}

func TestParseArgs_Env(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "env-key")

	cfg, err := parseArgs([]string{"-Q", "hello"})
	require.NoError(t, err)

	assert.Equal(t, "env-key", cfg.APIKey)
}

func TestParseArgs_MissingQuestion(t *testing.T) {
	_, err := parseArgs([]string{"-k", "sk-test"})
	assert.Error(t, err)
}

func TestParseArgs_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "monad.yaml")
	yaml := "model: gpt-4o-mini\nmax_tokens: 64\nlog_file: " + filepath.Join(dir, "monad.log") + "\n"
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0644))

	cfg, err := parseArgs([]string{"-k", "sk-test", "-Q", "hello", "-c", path})
	require.NoError(t, err)

	assert.Equal(t, "gpt-4o-mini", cfg.Model)
	assert.Equal(t, 64, cfg.MaxTokens)
	assert.Equal(t, filepath.Join(dir, "monad.log"), cfg.LogFile)
}

func TestParseArgs_FlagsWinOverConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "monad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("model: gpt-4o-mini\nmax_tokens: 64\n"), 0644))

	cfg, err := parseArgs([]string{"-k", "sk-test", "-Q", "hello", "-c", path, "-m", "gpt-4o"})
	require.NoError(t, err)

	assert.Equal(t, "gpt-4o", cfg.Model, "explicit flag must win over file value")
	assert.Equal(t, 64, cfg.MaxTokens, "file value fills the unset field")
}

func TestParseArgs_BadConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "monad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("model: [unclosed"), 0644))

	_, err := parseArgs([]string{"-k", "sk-test", "-Q", "hello", "-c", path})
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := Config{
		APIKey:    "sk-test",
		Question:  "hello",
		Model:     llm.DefaultModel,
		MaxTokens: llm.DefaultMaxTokens,
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"valid", func(c *Config) {}, ""},
		{"missing api key", func(c *Config) { c.APIKey = "" }, "api-key is required"},
		{"missing question", func(c *Config) { c.Question = "" }, "question is required"},
		{"zero max tokens", func(c *Config) { c.MaxTokens = 0 }, "max-tokens must be greater than 0"},
		{"verbose and quiet", func(c *Config) { c.Verbose = true; c.Quiet = true }, "mutually exclusive"},
		{"bad log dir", func(c *Config) { c.LogFile = "/nonexistent-dir/monad.log" }, "does not exist"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestGetLogLevel_Quiet(t *testing.T) {
	cfg := Config{Quiet: true}
	assert.Equal(t, "error", cfg.GetLogLevel())
}
