// Package config resolves console settings from the environment.
// A .env file in the working directory is honored when present.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

const (
	// DefaultBackendURL matches the backend's development origin.
	DefaultBackendURL = "http://localhost:3002"

	envBackendURL = "HIOT_BACKEND_URL"
	envDataDir    = "HIOT_DATA_DIR"
)

type Config struct {
	// BackendURL is the REST origin all fetchers talk to.
	BackendURL string
	// DataDir holds the session database (default ~/.hiot).
	DataDir string
}

// Load reads .env (best effort) and resolves settings from the environment.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		BackendURL: strings.TrimRight(envOr(envBackendURL, DefaultBackendURL), "/"),
		DataDir:    os.Getenv(envDataDir),
	}
	if cfg.DataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Config{}, err
		}
		cfg.DataDir = filepath.Join(home, ".hiot")
	}
	return cfg, nil
}

func envOr(k, d string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return d
}
