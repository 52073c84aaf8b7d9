package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/bytedance/sonic"
)

// Config holds the tracker's external settings: where day logs live and
// which activity names are accepted.
type Config struct {
	// Activities is the allow-list of valid activity names. An empty list
	// accepts any name.
	Activities []string

	// DataDir is the directory holding one JSON day log per date.
	DataDir string
}

type fileConfig struct {
	Activities []string `json:"activities"`
}

// Load reads configuration from POMO_CONFIG (default ~/.pomo/config.json)
// and POMO_DATA (default ~/.pomo/data). A missing config file is not an
// error; it leaves the allow-list empty.
func Load() (Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("finding home directory: %w", err)
	}

	cfg := Config{
		DataDir: filepath.Join(home, ".pomo", "data"),
	}
	if v := os.Getenv("POMO_DATA"); v != "" {
		cfg.DataDir = v
	}

	path := filepath.Join(home, ".pomo", "config.json")
	if v := os.Getenv("POMO_CONFIG"); v != "" {
		path = v
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("reading config %s: %w", path, err)
	}

	var fc fileConfig
	if err := sonic.Unmarshal(data, &fc); err != nil {
		return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
	}
	cfg.Activities = fc.Activities
	return cfg, nil
}

// Allows reports whether the activity name passes the allow-list.
func (c Config) Allows(activity string) bool {
	if len(c.Activities) == 0 {
		return true
	}
	return slices.Contains(c.Activities, activity)
}
