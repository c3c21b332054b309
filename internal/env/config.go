package env

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
	"go.uber.org/multierr"
	"go.uber.org/zap/zapcore"
)

type Config struct {
	// Host and Port the HTTP playground listens on
	Host string `env:"SEYMOUR_HOST,default=0.0.0.0"`
	Port int    `env:"SEYMOUR_PORT,default=7362"`

	// Reuseport controls setting SO_REUSEPORT on the HTTP listener
	Reuseport bool `env:"SEYMOUR_REUSEPORT,default=true"`

	DebugHTTP bool `env:"SEYMOUR_DEBUG_HTTP"`

	LogLevel    string `env:"SEYMOUR_LOG_LEVEL,default=info"`
	LogEncoding string `env:"SEYMOUR_LOG_ENCODING,default=json"`
}

// LoadConfig reads the config from the environment, after loading
// .env.local if there is one.
func LoadConfig(ctx context.Context) (*Config, error) {
	config := Config{}

	if err := godotenv.Load(".env.local"); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("Failed to load .env.local: %w", err)
	}

	if err := envconfig.Process(ctx, &config); err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate returns every problem with the config at once.
func (c *Config) Validate() (err error) {
	if c.Port < 1 || c.Port > 65535 {
		err = multierr.Append(err, fmt.Errorf("SEYMOUR_PORT %d is out of range", c.Port))
	}

	var level zapcore.Level
	if lerr := level.UnmarshalText([]byte(c.LogLevel)); lerr != nil {
		err = multierr.Append(err, fmt.Errorf("SEYMOUR_LOG_LEVEL: %w", lerr))
	}

	if c.LogEncoding != "json" && c.LogEncoding != "console" {
		err = multierr.Append(err, fmt.Errorf("SEYMOUR_LOG_ENCODING %q must be json or console", c.LogEncoding))
	}

	return err
}
