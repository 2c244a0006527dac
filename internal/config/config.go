// config реализует конфигурацию profiles-service: загрузка из YAML/ENV с предсказуемым приоритетом.
package config

import (
	"fmt"
	"net"
	"net/url"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config: корневая конфигурация сервиса.
// Приоритет источников:
//  1. явный путь, переданный в MustLoad/Load;
//  2. переменная окружения CONFIG_PATH;
//  3. файл ./local.yaml из рабочей директории;
//  4. переменные окружения.
type Config struct {
	Env       string          `yaml:"env" env:"ENV" env-default:"local"`
	HTTP      HTTPConfig      `yaml:"http"`
	DB        DBConfig        `yaml:"db"`
	Upstreams UpstreamsConfig `yaml:"upstreams"`
	Limits    LimitsConfig    `yaml:"limits"`
	Timeouts  TimeoutConfig   `yaml:"timeouts"`
}

// HTTPConfig: публичный REST-сервер (API + /livez, /healthz, /metrics).
type HTTPConfig struct {
	Host string `yaml:"host" env:"HTTP_HOST" env-default:"0.0.0.0"`
	Port string `yaml:"port" env:"HTTP_PORT" env-default:"8080"`
}

// Addr возвращает адрес в формате host:port.
func (h HTTPConfig) Addr() string {
	return net.JoinHostPort(h.Host, h.Port)
}

// DBConfig: настройки подключения к MongoDB.
// Имя базы берётся из пути URI, иначе используется "profiles".
type DBConfig struct {
	URL string `yaml:"url" env:"DATABASE_URL" env-required:"true"`
}

// UpstreamsConfig: смежные сервисы, с которыми общаемся по HTTP.
type UpstreamsConfig struct {
	UsersURL      string        `yaml:"users_url"      env:"USERS_API_URL"      env-required:"true"`
	MultimediaURL string        `yaml:"multimedia_url" env:"MULTIMEDIA_API_URL" env-required:"true"`
	Timeout       time.Duration `yaml:"timeout"        env:"UPSTREAM_TIMEOUT"   env-default:"10s"`
	// RateLimit: запросов в секунду на каждый апстрим; 0 отключает ограничение.
	RateLimit float64 `yaml:"rate_limit" env:"UPSTREAM_RATE_LIMIT" env-default:"0"`
}

// LimitsConfig: лимиты выдачи списков.
type LimitsConfig struct {
	List int64 `yaml:"list" env:"LIST_LIMIT" env-default:"100"`
}

// TimeoutConfig: общий дедлайн обработки HTTP-запроса.
type TimeoutConfig struct {
	Service time.Duration `yaml:"service" env:"SERVICE" env-default:"30s"`
}

// MustLoad: обёртка над Load с panic при ошибке.
func MustLoad(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		panic(err)
	}

	return cfg
}

// Load загружает конфигурацию по приоритету:
// 1) явный путь; 2) CONFIG_PATH; 3) ./local.yaml; 4) ENV.
// После чтения файла ENV-переменные накладываются поверх значений из YAML.
func Load(path string) (*Config, error) {
	var cfg Config

	readFile := func(p string) (*Config, error) {
		if _, err := os.Stat(p); err != nil {
			return nil, fmt.Errorf("config file %q stat failed: %w", p, err)
		}

		if err := cleanenv.ReadConfig(p, &cfg); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}

		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("failed to overlay env: %w", err)
		}

		return &cfg, nil
	}

	var (
		c   *Config
		err error
	)

	switch {
	case path != "":
		c, err = readFile(path)
	case os.Getenv("CONFIG_PATH") != "":
		c, err = readFile(os.Getenv("CONFIG_PATH"))
	default:
		if _, statErr := os.Stat("local.yaml"); statErr == nil {
			c, err = readFile("local.yaml")
			break
		}

		if envErr := cleanenv.ReadEnv(&cfg); envErr != nil {
			return nil, fmt.Errorf("config not found: provide --config, CONFIG_PATH, local.yaml or env vars: %w", envErr)
		}
		c = &cfg
	}

	if err != nil {
		return nil, err
	}

	if err := c.validate(); err != nil {
		return nil, err
	}

	return c, nil
}

// validate: базовая валидация значений.
func (c *Config) validate() error {
	if c.DB.URL == "" {
		return fmt.Errorf("db.url is required")
	}

	if err := validURL("upstreams.users_url", c.Upstreams.UsersURL); err != nil {
		return err
	}

	if err := validURL("upstreams.multimedia_url", c.Upstreams.MultimediaURL); err != nil {
		return err
	}

	if c.Upstreams.Timeout <= 0 {
		return fmt.Errorf("upstreams.timeout must be > 0")
	}

	if c.Upstreams.RateLimit < 0 {
		return fmt.Errorf("upstreams.rate_limit must be >= 0")
	}

	if c.Limits.List <= 0 {
		return fmt.Errorf("limits.list must be > 0")
	}

	return nil
}

func validURL(name, raw string) error {
	if raw == "" {
		return fmt.Errorf("%s is required", name)
	}

	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%s must be an absolute URL", name)
	}

	return nil
}
