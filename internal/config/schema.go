// Package config defines the configuration schema for newswatch.
//
// JSON keys use camelCase. The file is reloaded at the top of every
// monitoring cycle so operators can edit providers, profiles, or the
// interval without restarting the daemon.
package config

import (
	"os"
	"path/filepath"
)

// Provider backend kinds. A "claude" provider runs its own internal tool
// loop (the claude CLI); an "openai" provider is driven turn by turn
// through the chat-completions tool loop.
const (
	KindClaude = "claude"
	KindOpenAI = "openai"
)

// ProviderSpec describes one configured LLM backend.
type ProviderSpec struct {
	ID    string `json:"id"`
	Kind  string `json:"kind"`
	Model string `json:"model"`
}

// Profile is a named search specification. It is serialized verbatim into
// the user prompt; the orchestration core never interprets it.
type Profile struct {
	Name         string            `json:"name" yaml:"name"`
	Query        string            `json:"query" yaml:"query"`
	Filters      map[string]string `json:"filters,omitempty" yaml:"filters"`
	Limit        int               `json:"limit,omitempty" yaml:"limit"`
	MinRelevance float64           `json:"minRelevance,omitempty" yaml:"minRelevance"`
}

// EmailConfig names the environment variables holding the sender and
// recipient addresses, plus the subject prefix for notification emails.
type EmailConfig struct {
	ToEnv         string `json:"toEnv"`
	FromEnv       string `json:"fromEnv"`
	SubjectPrefix string `json:"subjectPrefix"`
}

// SlackConfig configures the optional Slack notification target.
type SlackConfig struct {
	Enabled  bool   `json:"enabled"`
	BotToken string `json:"botToken"`
	Channel  string `json:"channel"`
}

// TelegramConfig configures the optional Telegram notification target.
type TelegramConfig struct {
	Enabled bool   `json:"enabled"`
	Token   string `json:"token"`
	ChatID  int64  `json:"chatId"`
}

// Config is the full newswatch configuration.
type Config struct {
	ActiveProvider     string         `json:"activeProvider"`
	Providers          []ProviderSpec `json:"providers"`
	IntervalMinutes    int            `json:"intervalMinutes"`
	ScheduleCron       string         `json:"scheduleCron,omitempty"`
	RelevanceThreshold float64        `json:"relevanceThreshold"`
	NewsfreshPath      string         `json:"newsfreshPath"`
	ProfilesPath       string         `json:"profilesPath,omitempty"`
	Profiles           []Profile      `json:"profiles"`
	Email              EmailConfig    `json:"email"`
	Slack              SlackConfig    `json:"slack"`
	Telegram           TelegramConfig `json:"telegram"`
}

// DefaultConfig returns the configuration used when no file exists yet.
func DefaultConfig() Config {
	return Config{
		IntervalMinutes:    15,
		RelevanceThreshold: 1.0,
		NewsfreshPath:      "newsfresh",
		Email: EmailConfig{
			ToEnv:         "NEWS_RECIPIENT",
			FromEnv:       "NEWS_SENDER",
			SubjectPrefix: "[newswatch]",
		},
	}
}

// ConfigPath returns the default configuration file path:
// ~/.newswatch/config.json.
func ConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".newswatch/config.json"
	}
	return filepath.Join(home, ".newswatch", "config.json")
}

// DataDir returns the newswatch data directory: ~/.newswatch.
func DataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".newswatch"
	}
	return filepath.Join(home, ".newswatch")
}

// SeenPath returns the path of the dedup ledger file.
func SeenPath() string {
	return filepath.Join(DataDir(), "seen.json")
}
