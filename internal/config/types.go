// Package config loads and validates studybot configuration from defaults,
// an optional YAML file, a .env file and environment variables.
package config

import (
	"time"
)

// Config is the full application configuration.
type Config struct {
	Logger    LoggerConfig    `mapstructure:"logger"`
	Notion    NotionConfig    `mapstructure:"notion"`
	Telegram  TelegramConfig  `mapstructure:"telegram"`
	Scheduler SchedulerConfig `mapstructure:"scheduler"`

	// Timezone is the IANA zone used to decide what "today" is. Empty means local time.
	Timezone string `mapstructure:"timezone" validate:"omitempty,timezone"`
}

// LoggerConfig controls log output.
type LoggerConfig struct {
	Level string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
	JSON  bool   `mapstructure:"json"`
}

// NotionConfig holds the task store connection settings. Token and database
// IDs are not required: a missing value only makes the upstream call fail.
type NotionConfig struct {
	Token              string        `mapstructure:"token"`
	DatabaseID         string        `mapstructure:"database_id"`
	ProgressDatabaseID string        `mapstructure:"progress_database_id"`
	BaseURL            string        `mapstructure:"base_url"             validate:"required,url"`
	Version            string        `mapstructure:"version"              validate:"required"`
	Timeout            time.Duration `mapstructure:"timeout"              validate:"min=1s,max=5m"`
}

// TelegramConfig holds the bot credentials and the destination chat.
type TelegramConfig struct {
	Token     string `mapstructure:"token"`
	ChatID    string `mapstructure:"chat_id"`
	ServerURL string `mapstructure:"server_url" validate:"omitempty,url"`
	Listen    bool   `mapstructure:"listen"`
}

// SchedulerConfig configures the in-process scheduler used by serve mode.
type SchedulerConfig struct {
	Tasks map[string]TaskConfig `mapstructure:"tasks" validate:"dive"`
}

// TaskConfig configures one scheduled task.
type TaskConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Schedule string `mapstructure:"schedule" validate:"required_if=Enabled true"`
}

// Location returns the configured time zone, falling back to local time.
func (c *Config) Location() *time.Location {
	if c.Timezone == "" {
		return time.Local
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}
