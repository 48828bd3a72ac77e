package config

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	StorageMemory = "memory"
	StorageRedis  = "redis"
)

type Config struct {
	LogLevel     string   `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	HTTPPort     string   `yaml:"http-port" env:"HTTP_PORT" env-default:"5000"`
	SessionID    string   `yaml:"session-id" env:"SESSION_ID" env-default:"default"`
	Storage      string   `yaml:"storage" env:"STORAGE" env-default:"memory"`
	AllowOrigins []string `yaml:"allow-origins" env:"ALLOW_ORIGINS" env-default:"http://localhost:5173"`
	Redis        Redis    `yaml:"redis"`
	Client       Client   `yaml:"client"`
}

type Redis struct {
	Host string        `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port string        `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
	TTL  time.Duration `yaml:"ttl" env:"REDIS_TTL" env-default:"24h"`
}

type Client struct {
	ServerURL      string        `yaml:"server-url" env:"CLIENT_SERVER_URL" env-default:"http://localhost:5000"`
	RequestTimeout time.Duration `yaml:"request-timeout" env:"CLIENT_REQUEST_TIMEOUT" env-default:"5s"`
	MaxRetries     uint64        `yaml:"max-retries" env:"CLIENT_MAX_RETRIES" env-default:"3"`
	Mode           string        `yaml:"mode" env:"CLIENT_MODE" env-default:"single"`
	Difficulty     string        `yaml:"difficulty" env:"CLIENT_DIFFICULTY" env-default:"easy"`
	Watch          bool          `yaml:"watch" env:"CLIENT_WATCH" env-default:"false"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	return config, nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}

// NewLogger builds the JSON logger shared by the service and the client.
func NewLogger(w io.Writer, level string) *slog.Logger {
	var lvl slog.Level

	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}

	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: lvl}))
}
