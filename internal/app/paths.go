package app

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/kelseyhightower/envconfig"
)

const (
	appDirName = "tracker"
	dbFileName = "tracker.db"
)

// Env carries environment overrides. TRACKER_DB points the CLI at an
// alternate database; the --db flag still wins over it.
type Env struct {
	DB string `envconfig:"DB"`
}

func LoadEnv() (Env, error) {
	var e Env
	if err := envconfig.Process("tracker", &e); err != nil {
		return Env{}, fmt.Errorf("read environment config: %w", err)
	}
	return e, nil
}

func DefaultDBPath() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(base, appDirName, dbFileName), nil
}

func EnsureDBDir(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create db directory: %w", err)
	}
	return nil
}
