package config

import (
	"time"

	"github.com/spf13/viper"
)

// Default values for configuration
const (
	DefaultLogLevel = "info"

	DefaultNotionBaseURL = "https://api.notion.com"
	DefaultNotionVersion = "2022-06-28"
	DefaultNotionTimeout = 30 * time.Second

	DefaultDailyPlanSchedule     = "0 0 7 * * *"  // 07:00 every day
	DefaultProgressCheckSchedule = "0 0 22 * * *" // 22:00 every day
)

// Task names used as scheduler keys and in logs.
const (
	TaskDailyPlan     = "daily_plan"
	TaskProgressCheck = "progress_check"
)

// envBindings maps configuration keys to the environment variables read for
// them. When several names are listed, the first one that is set wins.
var envBindings = map[string][]string{
	"notion.token":                {"NOTION_TOKEN"},
	"notion.database_id":          {"DATABASE_ID"},
	"notion.progress_database_id": {"PROGRESS_DATABASE_ID"},
	"notion.base_url":             {"NOTION_BASE_URL"},
	"notion.version":              {"NOTION_VERSION"},
	"notion.timeout":              {"NOTION_TIMEOUT"},
	"telegram.token":              {"TELEGRAM_TOKEN"},
	"telegram.chat_id":            {"TELEGRAM_CHAT_ID", "CHAT_ID"},
	"telegram.server_url":         {"TELEGRAM_SERVER_URL"},
	"telegram.listen":             {"TELEGRAM_LISTEN"},
	"timezone":                    {"TZ_NAME"},
	"logger.level":                {"LOG_LEVEL"},
	"logger.json":                 {"LOG_JSON"},
}

// setDefaults sets default values for optional configuration parameters
func setDefaults(v *viper.Viper) {
	v.SetDefault("logger.level", DefaultLogLevel)
	v.SetDefault("logger.json", false)

	v.SetDefault("notion.base_url", DefaultNotionBaseURL)
	v.SetDefault("notion.version", DefaultNotionVersion)
	v.SetDefault("notion.timeout", DefaultNotionTimeout)

	v.SetDefault("telegram.listen", false)

	v.SetDefault("scheduler.tasks."+TaskDailyPlan+".enabled", true)
	v.SetDefault("scheduler.tasks."+TaskDailyPlan+".schedule", DefaultDailyPlanSchedule)
	v.SetDefault("scheduler.tasks."+TaskProgressCheck+".enabled", true)
	v.SetDefault("scheduler.tasks."+TaskProgressCheck+".schedule", DefaultProgressCheckSchedule)
}
