package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/go-pg/pg/v10"
)

const (
	DefaultPort          = 3001
	DefaultMigrationsDir = "docs/patches"
	DefaultBodyLimit     = "1M"
)

type Config struct {
	Database  pg.Options
	App       App
	Auth      Auth
	Server    Server
	RateLimit RateLimit
}

type App struct {
	Host          string
	Port          int
	LogQueries    bool
	MigrationsDir string
}

type Auth struct {
	Secret    string
	ExpiresIn Duration
}

type Server struct {
	AllowOrigins []string
	BodyLimit    string
	ReadTimeout  Duration
	WriteTimeout Duration
}

type RateLimit struct {
	Enabled bool
	RPS     float64
	Burst   int
}

// Duration is a time.Duration decoded from strings like "24h".
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", text, err)
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Default returns a config with every optional value filled.
func Default() Config {
	return Config{
		Database: pg.Options{
			Addr:       "localhost:5432",
			User:       "postgres",
			Database:   "blog",
			MaxRetries: 3,
			PoolSize:   10,
		},
		App: App{
			Host:          "0.0.0.0",
			Port:          DefaultPort,
			MigrationsDir: DefaultMigrationsDir,
		},
		Auth: Auth{
			ExpiresIn: Duration{24 * time.Hour},
		},
		Server: Server{
			AllowOrigins: []string{"*"},
			BodyLimit:    DefaultBodyLimit,
			ReadTimeout:  Duration{15 * time.Second},
			WriteTimeout: Duration{15 * time.Second},
		},
		RateLimit: RateLimit{
			Enabled: true,
			RPS:     1,
			Burst:   5,
		},
	}
}

// Load decodes the TOML file at path over the defaults. An empty path skips the file.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("decode config %s: %w", path, err)
	}

	return cfg, nil
}

// ApplyDatabaseURL replaces the connection settings with the ones from url, keeping pool tuning.
func (c *Config) ApplyDatabaseURL(url string) error {
	opt, err := pg.ParseURL(url)
	if err != nil {
		return fmt.Errorf("failed to parse database URL: %w", err)
	}

	opt.MaxRetries = c.Database.MaxRetries
	opt.PoolSize = c.Database.PoolSize
	opt.MaxConnAge = c.Database.MaxConnAge
	c.Database = *opt

	return nil
}

func (c Config) Validate() error {
	var errs []error
	if c.Auth.Secret == "" {
		errs = append(errs, errors.New("auth secret is required"))
	}
	if c.Auth.ExpiresIn.Duration <= 0 {
		errs = append(errs, errors.New("auth token lifetime must be positive"))
	}
	if c.App.Port <= 0 || c.App.Port > 65535 {
		errs = append(errs, fmt.Errorf("invalid port %d", c.App.Port))
	}
	if c.RateLimit.Enabled && c.RateLimit.RPS <= 0 {
		errs = append(errs, errors.New("rate limit rps must be positive"))
	}

	return errors.Join(errs...)
}
