package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Default endpoints and tuning values
const (
	DefaultTranscriptAPIURL = "https://www.youtube-transcript.io/api/transcripts"
	DefaultGeminiAPIURL     = "https://generativelanguage.googleapis.com/v1beta"
	DefaultGeminiModel      = "gemini-1.5-flash"
	DefaultFallbackModel    = "gemini-pro"
	DefaultSummaryTimeout   = 90 * time.Second
	DefaultMaxTranscript    = 30000 // characters sent to the summarizer
)

// Config holds all configuration for the service
type Config struct {
	Port        string `yaml:"port"`
	DatabaseURL string `yaml:"database_url"`

	TranscriptAPIKey string `yaml:"transcript_api_key"`
	TranscriptAPIURL string `yaml:"transcript_api_url"`

	GeminiAPIKey       string `yaml:"gemini_api_key"`
	GeminiAPIURL       string `yaml:"gemini_api_url"`
	GeminiModel        string `yaml:"gemini_model"`
	GeminiFallback     string `yaml:"gemini_fallback_model"`
	SummaryTimeoutSecs int    `yaml:"summary_timeout_seconds"`

	YouTubeAPIKey string `yaml:"youtube_api_key"`

	MaxTranscriptChars int `yaml:"max_transcript_chars"`
}

// NewConfig loads configuration with the following priority:
// Environment variables > Config file (optional)
func NewConfig(path string) (*Config, error) {
	config := &Config{}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	applyEnv(config)
	applyDefaults(config)

	if config.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	return config, nil
}

// SummaryTimeout returns the summarizer timeout budget.
func (c *Config) SummaryTimeout() time.Duration {
	if c.SummaryTimeoutSecs <= 0 {
		return DefaultSummaryTimeout
	}
	return time.Duration(c.SummaryTimeoutSecs) * time.Second
}

func applyEnv(config *Config) {
	for env, target := range map[string]*string{
		"PORT":               &config.Port,
		"DATABASE_URL":       &config.DatabaseURL,
		"TRANSCRIPT_API_KEY": &config.TranscriptAPIKey,
		"TRANSCRIPT_API_URL": &config.TranscriptAPIURL,
		"GEMINI_API_KEY":     &config.GeminiAPIKey,
		"GEMINI_API_URL":     &config.GeminiAPIURL,
		"GEMINI_MODEL":       &config.GeminiModel,
		"GEMINI_FALLBACK":    &config.GeminiFallback,
		"YOUTUBE_API_KEY":    &config.YouTubeAPIKey,
	} {
		if val := os.Getenv(env); val != "" {
			*target = val
		}
	}
}

func applyDefaults(config *Config) {
	if config.Port == "" {
		config.Port = "8080"
	}
	if config.TranscriptAPIURL == "" {
		config.TranscriptAPIURL = DefaultTranscriptAPIURL
	}
	if config.GeminiAPIURL == "" {
		config.GeminiAPIURL = DefaultGeminiAPIURL
	}
	if config.GeminiModel == "" {
		config.GeminiModel = DefaultGeminiModel
	}
	if config.GeminiFallback == "" {
		config.GeminiFallback = DefaultFallbackModel
	}
	if config.MaxTranscriptChars <= 0 {
		config.MaxTranscriptChars = DefaultMaxTranscript
	}
}
