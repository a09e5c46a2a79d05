package config

import (
	"time"

	"github.com/spf13/viper"
)

type (
	Config struct {
		HTTP
		Database
		Cache
		Global
		Tasks
		Enrichment
		Playback
	}

	HTTP struct {
		Port int32
		Host string
	}
	Database struct {
		Path string
	}
	Cache struct {
		// Freshness is the window after which cached word content is no
		// longer trusted and is refetched from the database.
		Freshness time.Duration
	}
	Global struct {
		ShutdownTimeoutInSeconds int
	}
	Tasks struct {
		Enabled           bool
		Workers           int
		MaxRetries        int
		RetryDelay        time.Duration
		TaskTimeout       time.Duration
		ReleaseAfter      time.Duration
		CleanupInterval   time.Duration
		RetentionDuration time.Duration
	}
	Enrichment struct {
		Enabled  bool
		Schedule string // Cron format: "0 */6 * * *" = every 6 hours
	}
	Playback struct {
		CharDelay      time.Duration
		ResetCharDelay time.Duration
		TokenSlot      time.Duration
	}
)

func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("port", 5000)
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("shutdown_timeout_in_seconds", 2)
	v.SetDefault("database_path", DefaultDatabasePath)
	v.SetDefault("cache_freshness", "5m")

	// Playback timing defaults mirror the original client animation
	v.SetDefault("playback_char_delay", "80ms")
	v.SetDefault("playback_reset_char_delay", "40ms")
	v.SetDefault("playback_token_slot", "2s")

	// Enrichment defaults
	v.SetDefault("enrichment_enabled", false)
	v.SetDefault("enrichment_schedule", "0 */6 * * *") // Every 6 hours

	// Task queue defaults
	v.SetDefault("tasks_enabled", true)
	v.SetDefault("task_workers", 2)
	v.SetDefault("task_max_retries", 3)
	v.SetDefault("task_retry_delay", "1m")
	v.SetDefault("task_timeout", "5m")
	v.SetDefault("task_release_after", "15m")
	v.SetDefault("task_cleanup_interval", "1h")
	v.SetDefault("task_retention_duration", "24h")

	return &Config{
		HTTP: HTTP{
			Port: v.GetInt32("PORT"),
			Host: v.GetString("HOST"),
		},
		Database: Database{
			Path: v.GetString("DATABASE_PATH"),
		},
		Cache: Cache{
			Freshness: v.GetDuration("CACHE_FRESHNESS"),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
		},
		Tasks: Tasks{
			Enabled:           v.GetBool("TASKS_ENABLED"),
			Workers:           v.GetInt("TASK_WORKERS"),
			MaxRetries:        v.GetInt("TASK_MAX_RETRIES"),
			RetryDelay:        v.GetDuration("TASK_RETRY_DELAY"),
			TaskTimeout:       v.GetDuration("TASK_TIMEOUT"),
			ReleaseAfter:      v.GetDuration("TASK_RELEASE_AFTER"),
			CleanupInterval:   v.GetDuration("TASK_CLEANUP_INTERVAL"),
			RetentionDuration: v.GetDuration("TASK_RETENTION_DURATION"),
		},
		Enrichment: Enrichment{
			Enabled:  v.GetBool("ENRICHMENT_ENABLED"),
			Schedule: v.GetString("ENRICHMENT_SCHEDULE"),
		},
		Playback: Playback{
			CharDelay:      v.GetDuration("PLAYBACK_CHAR_DELAY"),
			ResetCharDelay: v.GetDuration("PLAYBACK_RESET_CHAR_DELAY"),
			TokenSlot:      v.GetDuration("PLAYBACK_TOKEN_SLOT"),
		},
	}
}
