package runtime

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Defaults match the open-access service tier.
const (
	DefaultChannel  = "ibm_quantum"
	DefaultInstance = "ibm-q/open/main"
	DefaultEndpoint = "localhost:50051"
)

// Config carries the credentials and connection settings for the runtime
// service.
type Config struct {
	Channel  string
	Token    string
	Instance string
	Endpoint string
}

// LoadConfig reads configuration from the environment, optionally seeded
// from a .env file. A missing .env file is not an error; a missing token is.
func LoadConfig(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	cfg := &Config{
		Channel:  envOr("QS_RUNTIME_CHANNEL", DefaultChannel),
		Token:    os.Getenv("QS_RUNTIME_TOKEN"),
		Instance: envOr("QS_RUNTIME_INSTANCE", DefaultInstance),
		Endpoint: envOr("QS_RUNTIME_ENDPOINT", DefaultEndpoint),
	}
	if cfg.Token == "" {
		return nil, fmt.Errorf("QS_RUNTIME_TOKEN is not set")
	}
	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
