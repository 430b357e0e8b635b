package cliparse

import (
	"flag"
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Database drivers understood by db.Open
const (
	DriverPostgres = "postgres"
	DriverPgx      = "pgx"
)

type Config struct {
	Port             int    `env:"PORT" envDefault:"5000" validate:"min=1,max=65535"`
	DatabaseURL      string `env:"DATABASE_URL" validate:"required"`
	DatabaseDriver   string `env:"DATABASE_DRIVER" envDefault:"postgres" validate:"oneof=postgres pgx"`
	LogLevel         string `env:"LOG_LEVEL" envDefault:"info"`
	StrictReferences bool   `env:"STRICT_REFERENCES" envDefault:"false"`
}

var validate = validator.New()

// ParseFlags builds the configuration from .env, the environment and CLI
// flags, in increasing order of precedence.
func ParseFlags(args []string) (Config, error) {
	// A missing .env is normal outside local development
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse environment: %w", err)
	}

	fs := flag.NewFlagSet("enquetes", flag.ContinueOnError)

	// Env values become the flag defaults so that flags win when given
	fs.IntVar(&cfg.Port, "p", cfg.Port, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", cfg.DatabaseURL, "Database URL")
	fs.StringVar(&cfg.DatabaseDriver, "driver", cfg.DatabaseDriver, "Database driver (postgres or pgx)")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")
	fs.BoolVar(&cfg.StrictReferences, "strict", cfg.StrictReferences, "Validate poll, option and user references when voting")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if err := validate.Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}
