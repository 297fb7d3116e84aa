package tracker

import (
	"fmt"
	"strings"
	"time"

	"github.com/TonyOlaCodes/tracker/internal/app"
	"github.com/TonyOlaCodes/tracker/internal/service"
	"github.com/TonyOlaCodes/tracker/internal/store"
)

// withStore opens the store and runs the lazy reset pass before handing
// control to the command. Resets only ever happen here, once per process.
func withStore(run func(*store.Store) error) error {
	path, err := resolveDBPath()
	if err != nil {
		return err
	}
	if err := app.EnsureDBDir(path); err != nil {
		return err
	}
	st, err := store.Open(path)
	if err != nil {
		return err
	}
	defer st.Close()
	logger.Debug().Str("path", path).Msg("opened store")

	n, err := service.RunResets(st, time.Now())
	if err != nil {
		return err
	}
	if n > 0 {
		logger.Debug().Int("goals_reset", n).Msg("closed elapsed periods")
	}
	return run(st)
}

func resolveDBPath() (string, error) {
	if dbPath != "" {
		return dbPath, nil
	}
	env, err := app.LoadEnv()
	if err != nil {
		return "", err
	}
	if env.DB != "" {
		return env.DB, nil
	}
	return app.DefaultDBPath()
}

func parseDateArg(name, value string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", strings.TrimSpace(value), time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid %s %q (expected YYYY-MM-DD)", name, value)
	}
	return t, nil
}
