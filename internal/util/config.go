package util

import (
	"errors"
	"fmt"
	"os"
	"time"
	
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// Config stores all configuration of the application.
// The values are read by viper from a config file or environment variables.
type Config struct {
	Environment                 string        `mapstructure:"ENVIRONMENT"`
	LogLevel                    string        `mapstructure:"LOG_LEVEL"`
	HTTPServerAddress           string        `mapstructure:"HTTP_SERVER_ADDRESS"`
	AllowedOrigins              []string      `mapstructure:"ALLOWED_ORIGINS"`
	NotificationDefaultDuration time.Duration `mapstructure:"NOTIFICATION_DEFAULT_DURATION"`
	RecentDevelopmentsLimit     int           `mapstructure:"RECENT_DEVELOPMENTS_LIMIT"`
	DefaultTheme                string        `mapstructure:"DEFAULT_THEME"`
	ChatWidgetScriptURL         string        `mapstructure:"CHAT_WIDGET_SCRIPT_URL"`
	ChatWidgetID                string        `mapstructure:"CHAT_WIDGET_ID"`
	TimelineLastUpdated         string        `mapstructure:"TIMELINE_LAST_UPDATED"`
}

// LoadConfig reads configuration from file or environment variables.
// A missing config file is not an error; defaults and environment variables still apply.
func LoadConfig(path string) (config Config, err error) {
	v := viper.New()
	
	// Set defaults for non-sensitive config
	v.SetDefault("ENVIRONMENT", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("HTTP_SERVER_ADDRESS", "0.0.0.0:8080")
	v.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:3000"})
	v.SetDefault("NOTIFICATION_DEFAULT_DURATION", "5s")
	v.SetDefault("RECENT_DEVELOPMENTS_LIMIT", 3)
	v.SetDefault("DEFAULT_THEME", "system")
	v.SetDefault("CHAT_WIDGET_SCRIPT_URL", "")
	v.SetDefault("CHAT_WIDGET_ID", "")
	v.SetDefault("TIMELINE_LAST_UPDATED", "2024-03-01")
	
	// Prefer environment variables over config file
	v.AutomaticEnv()
	
	if path != "" {
		if _, statErr := os.Stat(path); statErr == nil {
			v.SetConfigFile(path)
			v.SetConfigType("env")
			if err = v.ReadInConfig(); err != nil {
				return config, fmt.Errorf("failed to read config file: %w", err)
			}
		} else if !errors.Is(statErr, os.ErrNotExist) {
			return config, fmt.Errorf("failed to stat config file: %w", statErr)
		}
	}
	
	// Unmarshal config into struct
	err = v.UnmarshalExact(&config)
	if err != nil {
		return
	}
	
	// Validate required configuration
	err = validateConfig(config)
	return
}

func validateConfig(config Config) error {
	if config.HTTPServerAddress == "" {
		return fmt.Errorf("HTTP_SERVER_ADDRESS is required")
	}
	if len(config.AllowedOrigins) == 0 {
		return fmt.Errorf("ALLOWED_ORIGINS is required")
	}
	if config.NotificationDefaultDuration <= 0 {
		return fmt.Errorf("NOTIFICATION_DEFAULT_DURATION must be positive")
	}
	if config.RecentDevelopmentsLimit <= 0 {
		return fmt.Errorf("RECENT_DEVELOPMENTS_LIMIT must be positive")
	}
	switch config.DefaultTheme {
	case "light", "dark", "system":
	default:
		return fmt.Errorf("DEFAULT_THEME must be one of light, dark, system")
	}
	if config.ChatWidgetScriptURL != "" && config.ChatWidgetID == "" {
		return fmt.Errorf("CHAT_WIDGET_ID is required when CHAT_WIDGET_SCRIPT_URL is set")
	}
	if _, err := zerolog.ParseLevel(config.LogLevel); err != nil {
		return fmt.Errorf("LOG_LEVEL is invalid: %w", err)
	}
	
	return nil
}

// IsProduction reports whether the app runs in production mode.
func (c Config) IsProduction() bool {
	return c.Environment == "production"
}
