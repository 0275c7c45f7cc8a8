// Package config loads application settings from .env, configs/config.yml and
// GNROOF_* environment variables, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"gnroof/internal/logger"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const envPrefix = "GNROOF"

type Config struct {
	Port      string          `mapstructure:"port"`
	Log       logger.Config   `mapstructure:"log"`
	DB        DBConfig        `mapstructure:"db"`
	Auth      AuthConfig      `mapstructure:"auth"`
	HTTP      HTTPConfig      `mapstructure:"http"`
	Simulator SimulatorConfig `mapstructure:"simulator"`
	Weather   WeatherConfig   `mapstructure:"weather"`
	MQTT      MQTTConfig      `mapstructure:"mqtt"`
}

type DBConfig struct {
	Path string `mapstructure:"path"`
}

type AuthConfig struct {
	SigningKey string        `mapstructure:"signing_key"`
	TokenTTL   time.Duration `mapstructure:"token_ttl"`
}

type HTTPConfig struct {
	ReadHeaderTimeout time.Duration `mapstructure:"read_header_timeout"`
	WriteTimeout      time.Duration `mapstructure:"write_timeout"`
	IdleTimeout       time.Duration `mapstructure:"idle_timeout"`
	ShutdownTimeout   time.Duration `mapstructure:"shutdown_timeout"`
}

// SimulatorConfig drives the server-side demo feed.
type SimulatorConfig struct {
	Enabled bool          `mapstructure:"enabled"`
	Tick    time.Duration `mapstructure:"tick"`
}

type WeatherConfig struct {
	Enabled bool          `mapstructure:"enabled"`
	BaseURL string        `mapstructure:"base_url"`
	APIKey  string        `mapstructure:"api_key"`
	City    string        `mapstructure:"city"`
	Timeout time.Duration `mapstructure:"timeout"`
	Tick    time.Duration `mapstructure:"tick"`
}

type MQTTConfig struct {
	Enabled        bool          `mapstructure:"enabled"`
	Broker         string        `mapstructure:"broker"`
	ClientID       string        `mapstructure:"client_id"`
	Username       string        `mapstructure:"username"`
	Password       string        `mapstructure:"password"`
	TopicPrefix    string        `mapstructure:"topic_prefix"`
	ConnectTimeout time.Duration `mapstructure:"connect_timeout"`
	HandlerTimeout time.Duration `mapstructure:"handler_timeout"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "8080")
	v.SetDefault("log.level", logger.InfoLevel)
	v.SetDefault("log.format", logger.FormatConsole)
	v.SetDefault("db.path", "gnroof.db")
	v.SetDefault("auth.signing_key", "dev-change-me")
	v.SetDefault("auth.token_ttl", time.Hour)
	v.SetDefault("http.read_header_timeout", 10*time.Second)
	v.SetDefault("http.write_timeout", 10*time.Second)
	v.SetDefault("http.idle_timeout", 60*time.Second)
	v.SetDefault("http.shutdown_timeout", 10*time.Second)
	v.SetDefault("simulator.enabled", false)
	v.SetDefault("simulator.tick", 5*time.Second)
	v.SetDefault("weather.enabled", false)
	v.SetDefault("weather.base_url", "https://api.openweathermap.org/data/2.5/weather")
	v.SetDefault("weather.api_key", "")
	v.SetDefault("weather.city", "Sydney,AU")
	v.SetDefault("weather.timeout", 5*time.Second)
	v.SetDefault("weather.tick", time.Minute)
	v.SetDefault("mqtt.enabled", false)
	v.SetDefault("mqtt.broker", "tcp://localhost:1883")
	v.SetDefault("mqtt.client_id", "gnroof")
	v.SetDefault("mqtt.username", "")
	v.SetDefault("mqtt.password", "")
	v.SetDefault("mqtt.topic_prefix", "gnroof")
	v.SetDefault("mqtt.connect_timeout", 10*time.Second)
	v.SetDefault("mqtt.handler_timeout", 5*time.Second)
}

// Load reads config.yml from the given directories (default "configs").
// A missing file is not an error; defaults and env still apply.
func Load(dirs ...string) (*Config, error) {
	if err := loadDotEnv(".env"); err != nil {
		return nil, err
	}

	v := viper.New()
	setDefaults(v)

	if len(dirs) == 0 {
		dirs = []string{"configs"}
	}
	for _, d := range dirs {
		v.AddConfigPath(d)
	}
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
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

// loadDotEnv exports the variables in path. A missing file is fine; a
// malformed one is not.
func loadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

func (c *Config) validate() error {
	if c.Auth.SigningKey == "" {
		return errors.New("auth.signing_key must not be empty")
	}
	if c.Simulator.Enabled && c.Simulator.Tick <= 0 {
		return errors.New("simulator.tick must be positive")
	}
	if c.Weather.Enabled && c.Weather.Tick <= 0 {
		return errors.New("weather.tick must be positive")
	}
	return nil
}
