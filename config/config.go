package config

import (
	"strings"

	"github.com/spf13/viper"

	"github.com/homebills/tracker/common"
)

// Config holds all service configuration. Values come from the environment
// (HOMEBILLS_ prefix) with an optional config.yaml next to the binary.
type Config struct {
	Addr string `mapstructure:"addr"`

	// Firebase project backing remote mode. Empty forces local-only mode.
	FirebaseProjectID string `mapstructure:"firebase_project_id"`

	// Optional service-account key file for the Firebase clients. Empty
	// falls back to application default credentials.
	GoogleCredentialsFile string `mapstructure:"google_credentials_file"`

	// Owner identity used for requests that carry no bearer token.
	OwnerID string `mapstructure:"owner_id"`

	// Root directory of the local-mode store.
	DataDir string `mapstructure:"data_dir"`

	GeminiAPIKey string `mapstructure:"gemini_api_key"`
	GeminiModel  string `mapstructure:"gemini_model"`

	SentryDSN  string `mapstructure:"sentry_dsn"`
	GCPLogging bool   `mapstructure:"gcp_logging"`
}

// Load reads configuration from the environment and an optional config file.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("addr", "0.0.0.0:8082")
	v.SetDefault("firebase_project_id", common.ProjectID)
	v.SetDefault("google_credentials_file", "")
	v.SetDefault("owner_id", "")
	v.SetDefault("data_dir", "./data")
	v.SetDefault("gemini_api_key", "")
	v.SetDefault("gemini_model", "gemini-2.5-flash")
	v.SetDefault("sentry_dsn", "")
	v.SetDefault("gcp_logging", false)

	v.SetEnvPrefix("HOMEBILLS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
