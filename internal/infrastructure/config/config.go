// Package config loads application configuration from file and
// environment variables.
package config

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Logger  LoggerConfig  `mapstructure:"logger"`
	Redis   RedisConfig   `mapstructure:"redis"`
	Session SessionConfig `mapstructure:"session"`
	FamPay  FamPayConfig  `mapstructure:"fampay"`
}

type ServerConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Mode     string `mapstructure:"mode"`
	Timezone string `mapstructure:"timezone"`
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

func (c RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// SessionConfig scopes the payment record and purchase intent storage.
type SessionConfig struct {
	// Backend is "memory" or "redis".
	Backend    string `mapstructure:"backend"`
	TTLMinutes int    `mapstructure:"ttl_minutes"`
}

func (c SessionConfig) TTL() time.Duration {
	return time.Duration(c.TTLMinutes) * time.Minute
}

// FamPayConfig carries processor credentials and simulation tuning.
type FamPayConfig struct {
	APIKey   string `mapstructure:"api_key"`
	BaseURL  string `mapstructure:"base_url"`
	TestMode bool   `mapstructure:"test_mode"`
	// SettlementDelayMS is how long the simulated processor keeps a
	// payment pending before it settles.
	SettlementDelayMS int `mapstructure:"settlement_delay_ms"`
	// VerifyTimeoutS bounds each verification call.
	VerifyTimeoutS int `mapstructure:"verify_timeout_s"`
}

func (c FamPayConfig) SettlementDelay() time.Duration {
	return time.Duration(c.SettlementDelayMS) * time.Millisecond
}

func (c FamPayConfig) VerifyTimeout() time.Duration {
	return time.Duration(c.VerifyTimeoutS) * time.Second
}

var (
	appConfig   *Config
	appConfigMu sync.RWMutex
)

// Load loads configuration from configs/config.yaml and FAMVEST_*
// environment variables. A missing config file is not an error; defaults
// and environment cover the full surface.
func Load(env string) (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./configs")
	viper.AddConfigPath("../configs")

	viper.SetEnvPrefix("FAMVEST")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if env != "" && env != "default" {
		viper.Set("server.mode", env)
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	appConfigMu.Lock()
	appConfig = &config
	appConfigMu.Unlock()

	return &config, nil
}

// Get returns the loaded configuration.
func Get() *Config {
	appConfigMu.RLock()
	defer appConfigMu.RUnlock()
	return appConfig
}

func setDefaults() {
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.mode", "debug")
	viper.SetDefault("server.timezone", "Asia/Kolkata")

	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.format", "console")
	viper.SetDefault("logger.output_path", "stdout")

	viper.SetDefault("redis.host", "localhost")
	viper.SetDefault("redis.port", 6379)
	viper.SetDefault("redis.password", "")
	viper.SetDefault("redis.db", 0)

	viper.SetDefault("session.backend", "memory")
	viper.SetDefault("session.ttl_minutes", 30)

	viper.SetDefault("fampay.api_key", "test_api_key_12345")
	viper.SetDefault("fampay.base_url", "https://api.fampay.in/v1")
	viper.SetDefault("fampay.test_mode", true)
	viper.SetDefault("fampay.settlement_delay_ms", 2000)
	viper.SetDefault("fampay.verify_timeout_s", 10)
}
