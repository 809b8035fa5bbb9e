// Package config loads server settings from an optional YAML file, a .env
// file and GREED_ prefixed environment variables, in increasing priority.
package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/KirkDiggler/greed-island/internal/errors"
)

// Session stores
const (
	StoreMemory = "memory"
	StoreRedis  = "redis"
)

// Game master providers
const (
	ProviderGemini   = "gemini"
	ProviderScripted = "scripted"
)

const envPrefix = "GREED"

// Config is the full server configuration
type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Log        LogConfig        `mapstructure:"log"`
	Session    SessionConfig    `mapstructure:"session"`
	Redis      RedisConfig      `mapstructure:"redis"`
	GameMaster GameMasterConfig `mapstructure:"gamemaster"`
	Game       GameConfig       `mapstructure:"game"`
}

type ServerConfig struct {
	GRPCPort int `mapstructure:"grpc_port"`
	HTTPPort int `mapstructure:"http_port"`
}

type LogConfig struct {
	Level       string `mapstructure:"level"`
	Development bool   `mapstructure:"development"`
}

type SessionConfig struct {
	Store string        `mapstructure:"store"` // memory | redis
	TTL   time.Duration `mapstructure:"ttl"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	UseTLS   bool   `mapstructure:"use_tls"`
}

type GameMasterConfig struct {
	// Provider defaults to gemini when an API key is set
	Provider  string        `mapstructure:"provider"`
	APIKey    string        `mapstructure:"api_key"`
	Model     string        `mapstructure:"model"`
	Timeout   time.Duration `mapstructure:"timeout"`
	RateLimit float64       `mapstructure:"rate_limit"`
	Burst     int           `mapstructure:"burst"`
}

type GameConfig struct {
	// ResolveDelay below zero settles outcomes immediately
	ResolveDelay time.Duration `mapstructure:"resolve_delay"`
	PlayerName   string        `mapstructure:"player_name"`
}

// Load reads the configuration. An empty path skips the YAML file.
func Load(path string) (*Config, error) {
	if err := loadDotEnv(".env"); err != nil {
		return nil, err
	}

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("gamemaster.api_key", envPrefix+"_GAMEMASTER_API_KEY", "GEMINI_API_KEY"); err != nil {
		return nil, errors.Wrap(err, "failed to bind api key")
	}

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to read config file")
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to decode config")
	}

	cfg.Session.Store = strings.ToLower(strings.TrimSpace(cfg.Session.Store))
	cfg.GameMaster.Provider = strings.ToLower(strings.TrimSpace(cfg.GameMaster.Provider))
	if cfg.GameMaster.Provider == "" {
		cfg.GameMaster.Provider = ProviderScripted
		if cfg.GameMaster.APIKey != "" {
			cfg.GameMaster.Provider = ProviderGemini
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.grpc_port", 50051)
	v.SetDefault("server.http_port", 8080)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.development", false)
	v.SetDefault("session.store", StoreMemory)
	v.SetDefault("session.ttl", 24*time.Hour)
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.use_tls", false)
	v.SetDefault("gamemaster.provider", "")
	v.SetDefault("gamemaster.model", "gemini-2.5-flash")
	v.SetDefault("gamemaster.timeout", 30*time.Second)
	v.SetDefault("gamemaster.rate_limit", 2.0)
	v.SetDefault("gamemaster.burst", 4)
	v.SetDefault("game.resolve_delay", 1500*time.Millisecond)
	v.SetDefault("game.player_name", "Gon")
}

// loadDotEnv exports a .env file into the process environment when present.
// Variables already set win.
func loadDotEnv(path string) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.Wrapf(err, "failed to stat %s", path)
	}
	if err := godotenv.Load(path); err != nil {
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to load "+path)
	}
	return nil
}

// Validate checks the merged configuration
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	vb.Range("server.grpc_port", c.Server.GRPCPort, 1, 65535)
	vb.Range("server.http_port", c.Server.HTTPPort, 1, 65535)
	if c.Server.GRPCPort == c.Server.HTTPPort {
		vb.InvalidField("server.http_port", "must differ from grpc_port")
	}

	switch c.Session.Store {
	case StoreMemory:
	case StoreRedis:
		if c.Redis.Addr == "" {
			vb.RequiredField("redis.addr")
		}
	default:
		vb.InvalidField("session.store", "must be memory or redis")
	}
	if c.Session.TTL < 0 {
		vb.InvalidField("session.ttl", "must not be negative")
	}

	switch c.GameMaster.Provider {
	case ProviderScripted:
	case ProviderGemini:
		if c.GameMaster.APIKey == "" {
			vb.RequiredField("gamemaster.api_key")
		}
		if c.GameMaster.RateLimit <= 0 {
			vb.InvalidField("gamemaster.rate_limit", "must be positive")
		}
		if c.GameMaster.Burst < 1 {
			vb.InvalidField("gamemaster.burst", "must be at least 1")
		}
	default:
		vb.InvalidField("gamemaster.provider", "must be gemini or scripted")
	}

	return vb.Build()
}
