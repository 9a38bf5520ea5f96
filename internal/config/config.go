package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Database   DatabaseConfig   `mapstructure:"database"`
	Log        LogConfig        `mapstructure:"log"`
	JWT        JWTConfig        `mapstructure:"jwt"`
	Model      ModelConfig      `mapstructure:"model"`
	Embedding  ModelConfig      `mapstructure:"embedding"`
	Qdrant     QdrantConfig     `mapstructure:"qdrant"`
	Recurrence RecurrenceConfig `mapstructure:"recurrence"`
}

type ServerConfig struct {
	Port string `mapstructure:"port"`
	// Mode is the gin mode: debug, release or test.
	Mode string `mapstructure:"mode"`
}

type DatabaseConfig struct {
	// Driver is mysql or sqlite.
	Driver string `mapstructure:"driver"`
	DSN    string `mapstructure:"dsn"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type JWTConfig struct {
	Secret      string `mapstructure:"secret"`
	ExpireHours int    `mapstructure:"expire_hours"`
}

// ModelConfig configures a model endpoint. An empty APIKey is allowed: the
// assistant answers with a configuration apology instead of failing.
type ModelConfig struct {
	// Provider is openai, deepseek or gemini. Ignored for embeddings.
	Provider string `mapstructure:"provider"`
	APIKey   string `mapstructure:"api_key"`
	BaseURL  string `mapstructure:"base_url"`
	Model    string `mapstructure:"model"`
}

type QdrantConfig struct {
	Enabled        bool   `mapstructure:"enabled"`
	Host           string `mapstructure:"host"`
	Port           int    `mapstructure:"port"`
	CollectionName string `mapstructure:"collection_name"`
	VectorSize     uint64 `mapstructure:"vector_size"`
}

type RecurrenceConfig struct {
	// Schedule is a cron expression; empty disables the background job.
	Schedule string `mapstructure:"schedule"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.mode", "debug")
	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.dsn", "alfred.db")
	v.SetDefault("log.level", "info")
	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.expire_hours", 72)
	v.SetDefault("model.provider", "openai")
	v.SetDefault("model.api_key", "")
	v.SetDefault("model.base_url", "")
	v.SetDefault("model.model", "gpt-4o-mini")
	v.SetDefault("embedding.api_key", "")
	v.SetDefault("embedding.base_url", "")
	v.SetDefault("embedding.model", "text-embedding-3-small")
	v.SetDefault("qdrant.enabled", false)
	v.SetDefault("qdrant.host", "localhost")
	v.SetDefault("qdrant.port", 6334)
	v.SetDefault("qdrant.collection_name", "alfred_memory")
	v.SetDefault("qdrant.vector_size", 1536)
	v.SetDefault("recurrence.schedule", "@hourly")
}

// LoadConfig reads the yaml file at path (config.yaml in the working
// directory when path is empty). A missing file is not an error: defaults
// plus ALFRED_* environment variables are used, e.g. ALFRED_MODEL_API_KEY
// overrides model.api_key.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("ALFRED")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.Database.Driver {
	case "mysql", "sqlite":
	default:
		return fmt.Errorf("unsupported database driver %q", c.Database.Driver)
	}
	switch c.Model.Provider {
	case "openai", "deepseek", "gemini":
	default:
		return fmt.Errorf("unsupported model provider %q", c.Model.Provider)
	}
	if c.JWT.ExpireHours <= 0 {
		return fmt.Errorf("jwt.expire_hours must be positive")
	}
	return nil
}
