// Package config holds the tunable parameters of post generation: the
// platform profiles, the model parameters and the upstream API limits.
// Defaults are compiled in; a YAML file may override any subset of them.
package config

import (
	"errors"
	"fmt"
	"github.com/kahvecikaan/socialposts/internal/domain"
	"gopkg.in/yaml.v3"
	"io"
	"os"
	"time"
)

// PlatformProfile is the formatting ceiling for one platform
type PlatformProfile struct {
	Name         string `yaml:"name" json:"name"`
	MaxLength    int    `yaml:"max_length" json:"maxLength"`
	HashtagLimit int    `yaml:"hashtag_limit" json:"hashtagLimit"`
}

// Generation configures the post generation call
type Generation struct {
	PostsPerPlatform int     `yaml:"posts_per_platform"`
	Model            string  `yaml:"model"`
	Temperature      float64 `yaml:"temperature"`
	MaxTokens        int     `yaml:"max_tokens"`
}

// Description configures the product description call
type Description struct {
	Temperature float64 `yaml:"temperature"`
	MaxTokens   int     `yaml:"max_tokens"`
}

// API configures an upstream client
type API struct {
	Timeout time.Duration `yaml:"timeout"`
	Retries int           `yaml:"retries"`
}

// Research configures the web research call
type Research struct {
	Model   string        `yaml:"model"`
	Timeout time.Duration `yaml:"timeout"`
	Retries int           `yaml:"retries"`
}

type Config struct {
	Platforms   map[domain.Platform]PlatformProfile `yaml:"platforms"`
	Generation  Generation                          `yaml:"generation"`
	Description Description                         `yaml:"description"`
	API         API                                 `yaml:"api"`
	Research    Research                            `yaml:"research"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Platforms: map[domain.Platform]PlatformProfile{
			domain.PlatformTwitter:   {Name: "Twitter/X", MaxLength: 280, HashtagLimit: 3},
			domain.PlatformInstagram: {Name: "Instagram", MaxLength: 2200, HashtagLimit: 30},
			domain.PlatformLinkedIn:  {Name: "LinkedIn", MaxLength: 3000, HashtagLimit: 5},
		},
		Generation: Generation{
			PostsPerPlatform: 2,
			Model:            "gpt-4o",
			Temperature:      0.8,
			MaxTokens:        2000,
		},
		Description: Description{
			Temperature: 0.7,
			MaxTokens:   150,
		},
		API: API{
			Timeout: 30 * time.Second,
			Retries: 2,
		},
		Research: Research{
			Model:   "gpt-4o",
			Timeout: 60 * time.Second,
			Retries: 2,
		},
	}
}

// Load returns the defaults overlaid with the YAML file at path. An empty
// path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open configuration file: %w", err)
	}
	defer file.Close()

	// Profiles are merged per platform so a file may override one field
	// of one platform without restating the rest.
	defaults := cfg.Platforms
	cfg.Platforms = nil
	if err := yaml.NewDecoder(file).Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to decode configuration: %w", err)
	}
	cfg.Platforms = mergeProfiles(defaults, cfg.Platforms)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func mergeProfiles(defaults, overrides map[domain.Platform]PlatformProfile) map[domain.Platform]PlatformProfile {
	merged := make(map[domain.Platform]PlatformProfile, len(defaults))
	for platform, profile := range defaults {
		merged[platform] = profile
	}
	for platform, override := range overrides {
		profile := merged[platform]
		if override.Name != "" {
			profile.Name = override.Name
		}
		if override.MaxLength != 0 {
			profile.MaxLength = override.MaxLength
		}
		if override.HashtagLimit != 0 {
			profile.HashtagLimit = override.HashtagLimit
		}
		merged[platform] = profile
	}
	return merged
}

// Validate checks that every limit is usable
func (c *Config) Validate() error {
	for _, platform := range domain.AllPlatforms {
		profile, ok := c.Platforms[platform]
		if !ok {
			return fmt.Errorf("platforms.%s is missing", platform)
		}
		if profile.MaxLength <= 0 {
			return fmt.Errorf("platforms.%s.max_length must be positive", platform)
		}
		if profile.HashtagLimit < 0 {
			return fmt.Errorf("platforms.%s.hashtag_limit must be non-negative", platform)
		}
	}
	for platform := range c.Platforms {
		if !platform.Valid() {
			return fmt.Errorf("platforms.%s is not a supported platform", platform)
		}
	}

	if c.Generation.PostsPerPlatform <= 0 {
		return fmt.Errorf("generation.posts_per_platform must be positive")
	}
	if c.Generation.Model == "" {
		return fmt.Errorf("generation.model must be set")
	}
	if c.Generation.Temperature < 0 || c.Generation.Temperature > 2 {
		return fmt.Errorf("generation.temperature must be between 0 and 2")
	}
	if c.Generation.MaxTokens <= 0 {
		return fmt.Errorf("generation.max_tokens must be positive")
	}
	if c.Description.MaxTokens <= 0 {
		return fmt.Errorf("description.max_tokens must be positive")
	}

	if c.API.Timeout <= 0 {
		return fmt.Errorf("api.timeout must be positive")
	}
	if c.API.Retries < 0 {
		return fmt.Errorf("api.retries must be non-negative")
	}
	if c.Research.Model == "" {
		return fmt.Errorf("research.model must be set")
	}
	if c.Research.Timeout <= 0 {
		return fmt.Errorf("research.timeout must be positive")
	}
	if c.Research.Retries < 0 {
		return fmt.Errorf("research.retries must be non-negative")
	}

	return nil
}

// Profile returns the profile of platform
func (c *Config) Profile(platform domain.Platform) PlatformProfile {
	return c.Platforms[platform]
}
