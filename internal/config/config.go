// Package config loads the service configuration from the environment
package config

import (
	"log/slog"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/foolchen/lifeRestart/internal/entities"
	"github.com/foolchen/lifeRestart/internal/errors"
	"github.com/foolchen/lifeRestart/internal/orchestrators/replacement"
	"github.com/foolchen/lifeRestart/internal/repositories/catalog"
)

// Catalog sources
const (
	SourceFile  = "file"
	SourceRedis = "redis"
)

// Config holds every setting the server and offline commands read
type Config struct {
	GRPCPort    int    `env:"GRPC_PORT" envDefault:"50051"`
	RedisAddr   string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	CatalogFile string `env:"CATALOG_FILE" envDefault:"data/talents.json"`
	CatalogKey  string `env:"CATALOG_KEY" envDefault:"talent_catalog"`
	// CatalogSource is "file" or "redis"
	CatalogSource string `env:"CATALOG_SOURCE" envDefault:"file"`
	Variant       string `env:"VARIANT"`
	GradeScope    string `env:"GRADE_SCOPE" envDefault:"held"`
	LogLevel      string `env:"LOG_LEVEL" envDefault:"info"`
}

// Prefix is prepended to every variable name
const Prefix = "TALENT_"

// Load reads an optional .env file and then parses TALENT_* variables.
// Variables already present in the environment win over the file.
func Load(files ...string) (*Config, error) {
	if err := godotenv.Load(files...); err != nil {
		if !os.IsNotExist(err) {
			return nil, errors.Wrap(err, "failed to read env file")
		}
		slog.Debug("No .env file found")
	}

	return Parse()
}

// Parse builds a Config from the current environment only
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: Prefix}); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse environment")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks ranges and enumerations
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.GRPCPort <= 0 || c.GRPCPort > 65535 {
		vb.Fieldf("GRPCPort", "must be between 1 and 65535, got %d", c.GRPCPort)
	}
	switch c.CatalogSource {
	case SourceFile:
		if c.CatalogFile == "" {
			vb.Field("CatalogFile", "is required when the catalog source is file")
		}
	case SourceRedis:
		if c.RedisAddr == "" {
			vb.Field("RedisAddr", "is required when the catalog source is redis")
		}
	default:
		vb.Fieldf("CatalogSource", "must be %q or %q, got %q", SourceFile, SourceRedis, c.CatalogSource)
	}
	if _, err := entities.ParseVariant(c.Variant); err != nil {
		vb.Field("Variant", err.Error())
	}
	if _, err := replacement.ParseGradeScope(c.GradeScope); err != nil {
		vb.Field("GradeScope", err.Error())
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		vb.Field("LogLevel", err.Error())
	}

	return vb.Build()
}

// RedisKey returns the configured hash key, falling back to the repository default
func (c *Config) RedisKey() string {
	if c.CatalogKey == "" {
		return catalog.DefaultKey
	}
	return c.CatalogKey
}

// ParseLevel maps a level name onto slog levels
func ParseLevel(name string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(name))); err != nil {
		return 0, errors.InvalidArgumentf("unknown log level %q", name)
	}
	return level, nil
}
