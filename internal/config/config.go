package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

var (
	ErrNoDSN    = errors.New("db.dsn is required")
	ErrNoOwners = errors.New("at least one owner mapping is required")
)

type Config struct {
	DB     DBConfig       `mapstructure:"db"`
	Input  InputConfig    `mapstructure:"input"`
	Owners map[string]int `mapstructure:"owners"`
	Log    LogConfig      `mapstructure:"log"`
}

type DBConfig struct {
	DSN string `mapstructure:"dsn"`
}

type InputConfig struct {
	Path  string `mapstructure:"path"`
	Sheet string `mapstructure:"sheet"`
}

type LogConfig struct {
	Level       string `mapstructure:"level"`
	Encoding    string `mapstructure:"encoding"`
	Development bool   `mapstructure:"development"`
}

// Load reads the YAML config at path, with LOADER_-prefixed environment
// variables overriding file values (dots become underscores, so db.dsn is
// LOADER_DB_DSN). The owner name to id mapping lives under owners.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("LOADER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.AutomaticEnv()
	v.SetDefault("input.path", "transactions.xlsx")
	v.SetDefault("input.sheet", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.encoding", "console")
	v.SetDefault("log.development", true)

	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if cfg.DB.DSN == "" {
		return Config{}, ErrNoDSN
	}
	if len(cfg.Owners) == 0 {
		return Config{}, ErrNoOwners
	}
	return cfg, nil
}
