package config

import (
	"github.com/kahvecikaan/socialposts/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, PlatformProfile{Name: "Twitter/X", MaxLength: 280, HashtagLimit: 3}, cfg.Profile(domain.PlatformTwitter))
	assert.Equal(t, PlatformProfile{Name: "Instagram", MaxLength: 2200, HashtagLimit: 30}, cfg.Profile(domain.PlatformInstagram))
	assert.Equal(t, PlatformProfile{Name: "LinkedIn", MaxLength: 3000, HashtagLimit: 5}, cfg.Profile(domain.PlatformLinkedIn))
	assert.Equal(t, 2, cfg.Generation.PostsPerPlatform)
	assert.Equal(t, "gpt-4o", cfg.Generation.Model)
	assert.Equal(t, 0.8, cfg.Generation.Temperature)
	assert.Equal(t, 2000, cfg.Generation.MaxTokens)
	assert.Equal(t, 0.7, cfg.Description.Temperature)
	assert.Equal(t, 150, cfg.Description.MaxTokens)
	assert.Equal(t, 30*time.Second, cfg.API.Timeout)
	assert.Equal(t, 2, cfg.API.Retries)
	assert.Equal(t, 60*time.Second, cfg.Research.Timeout)
}

func TestLoadWithoutPath(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadEmptyFile(t *testing.T) {
	cfg, err := Load(writeConfig(t, ""))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverlay(t *testing.T) {
	path := writeConfig(t, `
platforms:
  twitter:
    hashtag_limit: 2
generation:
  posts_per_platform: 3
api:
  timeout: 45s
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	// untouched fields of an overridden profile keep their defaults
	assert.Equal(t, PlatformProfile{Name: "Twitter/X", MaxLength: 280, HashtagLimit: 2}, cfg.Profile(domain.PlatformTwitter))
	assert.Equal(t, 2200, cfg.Profile(domain.PlatformInstagram).MaxLength)
	assert.Equal(t, 3, cfg.Generation.PostsPerPlatform)
	assert.Equal(t, "gpt-4o", cfg.Generation.Model)
	assert.Equal(t, 45*time.Second, cfg.API.Timeout)
	assert.Equal(t, 2, cfg.API.Retries)
}

func TestLoadErrors(t *testing.T) {
	testCases := []struct {
		name    string
		content string
	}{
		{"Malformed YAML", "generation: ["},
		{"Unknown platform", "platforms:\n  myspace:\n    max_length: 100\n"},
		{"Non-positive posts per platform", "generation:\n  posts_per_platform: -1\n"},
		{"Temperature out of range", "generation:\n  temperature: 3\n"},
		{"Negative retries", "api:\n  retries: -1\n"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tc.content))
			assert.Error(t, err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
