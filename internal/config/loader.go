package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Options tells Load where to look for configuration.
type Options struct {
	// ConfigPath is an explicit YAML file. When empty, config.yaml in the
	// working directory is used if present.
	ConfigPath string
	// EnvFiles are dotenv files loaded into the process environment. Variables
	// already set are never overridden. Missing files are ignored.
	EnvFiles []string
	// Flags override every other source for the keys listed in FlagKeys,
	// but only when the flag was set on the command line.
	Flags *pflag.FlagSet
	// FlagKeys maps configuration keys to flag names in Flags.
	FlagKeys map[string]string
}

// Load reads configuration from (lowest to highest precedence) defaults,
// the YAML file, dotenv files, environment variables and flags, then validates it.
func Load(opts Options) (*Config, error) {
	if err := loadEnvFiles(opts.EnvFiles); err != nil {
		return nil, err
	}

	v := viper.New()
	setDefaults(v)

	for key, names := range envBindings {
		if err := v.BindEnv(append([]string{key}, names...)...); err != nil {
			return nil, fmt.Errorf("failed to bind environment for %s: %w", key, err)
		}
	}

	if opts.Flags != nil {
		for key, name := range opts.FlagKeys {
			flag := opts.Flags.Lookup(name)
			if flag == nil {
				continue
			}
			if err := v.BindPFlag(key, flag); err != nil {
				return nil, fmt.Errorf("failed to bind flag --%s: %w", name, err)
			}
		}
	}

	if err := readConfigFile(v, opts.ConfigPath); err != nil {
		return nil, err
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.Notion.ProgressDatabaseID == "" {
		cfg.Notion.ProgressDatabaseID = cfg.Notion.DatabaseID
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	slog.Debug("Configuration loaded",
		"config_file", v.ConfigFileUsed(),
		"log_level", cfg.Logger.Level,
		"timezone", cfg.Timezone,
		"notion_token_set", cfg.Notion.Token != "",
		"telegram_token_set", cfg.Telegram.Token != "")

	return cfg, nil
}

func readConfigFile(v *viper.Viper, path string) error {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		return nil
	}

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Allow missing config file
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}
	return nil
}

func loadEnvFiles(files []string) error {
	for _, file := range files {
		if err := godotenv.Load(file); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("failed to load env file %s: %w", file, err)
		}
		slog.Debug("Loaded env file", "path", file)
	}
	return nil
}
