package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/pagepost/pagepost/internal/ident"
	"github.com/pagepost/pagepost/internal/mailer"
)

// ErrParsingConfig is returned when environment variables cannot be parsed
// into the config struct.
var ErrParsingConfig = errors.New("failed to parse environment variables into config")

// Config holds the full service configuration. Loaded once at startup and
// immutable for the process lifetime.
type Config struct {
	Port   int    `env:"PORT" envDefault:"3000"`
	Domain string `env:"DOMAIN"`

	// PageIDLength is kept as a string so an unparseable value degrades to
	// the default with a warning instead of failing startup.
	PageIDLength string `env:"PAGE_ID_LENGTH" envDefault:"32"`

	DataDir      string `env:"DATA_DIR" envDefault:"./data"`
	TemplateDir  string `env:"TEMPLATE_DIR" envDefault:"templates"`
	TemplateFile string `env:"TEMPLATE_FILE" envDefault:"page.html"`

	PreviewEnabled bool `env:"PREVIEW_ENABLED" envDefault:"true"`

	// StrictInit makes data-directory setup fatal instead of best-effort.
	StrictInit bool `env:"STRICT_INIT"`

	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"5s"`

	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`

	Mail mailer.Config
}

var defaultEnvLoaded sync.Once

// Load parses the environment into a Config. The default .env file is loaded
// once per process; its absence is not an error.
func Load() (Config, error) {
	defaultEnvLoaded.Do(func() {
		_ = godotenv.Load()
	})

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Join(ErrParsingConfig, err)
	}
	return cfg, nil
}

// Addr returns the listen address for the HTTP server.
func (c Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// BaseURL returns the public base URL pages are reachable under.
// An unset domain falls back to localhost on the configured port.
func (c Config) BaseURL() string {
	domain := c.Domain
	if domain == "" {
		domain = fmt.Sprintf("localhost:%d", c.Port)
	}
	return "http://" + domain
}

// IDLength resolves the configured identifier length. Unparseable or
// out-of-range values fall back to the default with a logged warning.
func (c Config) IDLength(log *slog.Logger) int {
	n, err := strconv.Atoi(c.PageIDLength)
	if err != nil {
		log.Warn("invalid PAGE_ID_LENGTH, using default",
			"value", c.PageIDLength, "default", ident.DefaultLength)
		return ident.DefaultLength
	}
	if clamped := ident.Clamp(n); clamped != n {
		log.Warn("PAGE_ID_LENGTH out of range, using default",
			"value", n, "min", ident.MinLength, "max", ident.MaxLength, "default", clamped)
		return clamped
	}
	return n
}
