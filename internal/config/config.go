package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Port            int
	CORSOrigins     []string
	Strategies      []string // transcript resolver chain, in order
	TargetLang      string
	UpstreamTimeout time.Duration

	YouTubeAPIKey string
	OpenAIAPIKey  string

	// OAuth secrets, required only when the "captions" strategy is enabled
	OAuthClientID     string
	OAuthClientSecret string
	OAuthRefreshToken string
}

// knownStrategies are the transcript resolver implementations that can appear
// in TRANSCRIPT_STRATEGIES.
var knownStrategies = map[string]bool{
	"timedtext": true,
	"captions":  true,
	"scrape":    true,
}

func Load() (*Config, error) {
	port, _ := strconv.Atoi(getEnv("PORT", "8080"))

	timeout := 15 * time.Second
	if v := os.Getenv("UPSTREAM_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid UPSTREAM_TIMEOUT %q: %w", v, err)
		}
		timeout = d
	}

	// CORS origins: comma-separated list or "*" (default)
	corsOrigins := []string{"*"}
	if v := os.Getenv("CORS_ORIGINS"); v != "" {
		corsOrigins = splitList(v)
	}

	strategies := splitList(getEnv("TRANSCRIPT_STRATEGIES", "timedtext,scrape"))
	if len(strategies) == 0 {
		return nil, fmt.Errorf("TRANSCRIPT_STRATEGIES is empty")
	}
	for _, s := range strategies {
		if !knownStrategies[s] {
			return nil, fmt.Errorf("unknown transcript strategy %q", s)
		}
	}

	cfg := &Config{
		Port:              port,
		CORSOrigins:       corsOrigins,
		Strategies:        strategies,
		TargetLang:        getEnv("TARGET_LANG", "en"),
		UpstreamTimeout:   timeout,
		YouTubeAPIKey:     os.Getenv("YOUTUBE_API_KEY"),
		OpenAIAPIKey:      os.Getenv("OPENAI_API_KEY"),
		OAuthClientID:     os.Getenv("OAUTH_CLIENT_ID"),
		OAuthClientSecret: os.Getenv("OAUTH_CLIENT_SECRET"),
		OAuthRefreshToken: os.Getenv("OAUTH_REFRESH_TOKEN"),
	}

	// The authorized captions strategy must not degrade silently: all three
	// secrets have to be present before we serve a single request.
	if cfg.HasStrategy("captions") {
		var missing []string
		if cfg.OAuthClientID == "" {
			missing = append(missing, "OAUTH_CLIENT_ID")
		}
		if cfg.OAuthClientSecret == "" {
			missing = append(missing, "OAUTH_CLIENT_SECRET")
		}
		if cfg.OAuthRefreshToken == "" {
			missing = append(missing, "OAUTH_REFRESH_TOKEN")
		}
		if len(missing) > 0 {
			return nil, fmt.Errorf("captions strategy enabled but %s not set", strings.Join(missing, ", "))
		}
	}

	return cfg, nil
}

// HasStrategy reports whether the named strategy is part of the resolver chain.
func (c *Config) HasStrategy(name string) bool {
	for _, s := range c.Strategies {
		if s == name {
			return true
		}
	}
	return false
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
