package billclient

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config is passed to New explicitly; the client reads no globals.
type Config struct {
	BaseURL  string        `env:"BILLING_BASE_URL,required"`
	Token    string        `env:"BILLING_TOKEN"`
	Language string        `env:"BILLING_LANGUAGE" envDefault:"vi"`
	Timeout  time.Duration `env:"BILLING_TIMEOUT" envDefault:"15s"`
}

// LoadConfig reads the client configuration from the environment.
func LoadConfig() (Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, fmt.Errorf("load billing client config: %w", err)
	}
	return cfg, nil
}
