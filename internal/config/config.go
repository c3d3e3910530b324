package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

var (
	// ErrReadConfig возвращается, когда файл конфигурации не читается
	ErrReadConfig = errors.New("config: failed to read config file")

	// ErrValidation возвращается при некорректной конфигурации
	ErrValidation = errors.New("config: validation failed")
)

// Config конфигурация сервиса
type Config struct {
	Server  Server  `toml:"server"`
	Store   Store   `toml:"store"`
	Logs    Logs    `toml:"logs"`
	Metrics Metrics `toml:"metrics"`
	Janitor Janitor `toml:"janitor"`
}

// Server настройки HTTP сервера
type Server struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
}

// Store настройки удалённого хранилища записей.
// Ключи берутся из окружения (STORE_ANON_KEY, STORE_SERVICE_ROLE_KEY),
// чтобы не хранить их в файле; значения из TOML — только fallback для
// локальной разработки.
type Store struct {
	BaseURL        string `toml:"base_url"`
	AnonKey        string `toml:"anon_key"`
	ServiceRoleKey string `toml:"service_role_key"`
	Timeout        int    `toml:"timeout"` // секунды
}

// Logs настройки логирования
type Logs struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// Metrics настройки метрик Prometheus
type Metrics struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// Janitor настройки уборки устаревших записей
type Janitor struct {
	// Cron-выражение; пустая строка отключает расписание, уборка
	// тогда выполняется только попутно при чтении списка записей
	Schedule string `toml:"schedule"`
}

// Load читает конфигурацию из TOML файла и окружения
func Load(path string) (*Config, error) {
	// .env опционален: в проде переменные приходят из окружения
	_ = godotenv.Load()

	cfg := &Config{}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrReadConfig, path, err)
	}

	cfg.applyEnv()
	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("STORE_URL"); v != "" {
		c.Store.BaseURL = v
	}
	if v := os.Getenv("STORE_ANON_KEY"); v != "" {
		c.Store.AnonKey = v
	}
	if v := os.Getenv("STORE_SERVICE_ROLE_KEY"); v != "" {
		c.Store.ServiceRoleKey = v
	}
}

func (c *Config) applyDefaults() {
	if c.Server.HTTPPort == 0 {
		c.Server.HTTPPort = 8080
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 15
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 15
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = 60
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10
	}
	if c.Store.Timeout == 0 {
		c.Store.Timeout = 10
	}
	if c.Logs.File == "" {
		c.Logs.File = "logs/app.log"
	}
	if c.Logs.Level == "" {
		c.Logs.Level = "info"
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "appointment-service"
	}
}

func (c *Config) validate() error {
	if c.Store.BaseURL == "" {
		return fmt.Errorf("%w: store.base_url is required", ErrValidation)
	}
	if c.Store.AnonKey == "" && c.Store.ServiceRoleKey == "" {
		return fmt.Errorf("%w: at least one of store.anon_key / store.service_role_key is required", ErrValidation)
	}
	return nil
}
