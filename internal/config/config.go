package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds the top-level hop configuration.
type Config struct {
	Search SearchConfig `toml:"search"`
	Picker PickerConfig `toml:"picker"`
}

// SearchConfig controls ranking output.
type SearchConfig struct {
	// Limit caps how many ranked paths a search returns. Values <= 0
	// fall back to the default of 10.
	Limit int `toml:"limit"`
	// ShowScores prints the raw rank next to each path in list output.
	ShowScores bool `toml:"show_scores"`
}

// PickerConfig controls the interactive selector.
type PickerConfig struct {
	// Enabled controls whether ambiguous jumps open the picker on a TTY.
	// Defaults to true when not set in config (opt-out model).
	Enabled *bool `toml:"enabled,omitempty"`
	// Height is the maximum number of visible rows (0 = auto).
	Height int `toml:"height"`
}

// IsEnabled returns whether the picker is enabled.
// Treats nil (missing from config) as true — opt-out, not opt-in.
func (p PickerConfig) IsEnabled() bool {
	if p.Enabled == nil {
		return true
	}
	return *p.Enabled
}

// Paths returns standard XDG-compliant paths.
type Paths struct {
	ConfigDir  string
	DataDir    string
	ConfigFile string
	DBFile     string
}

// GetPaths returns the resolved paths, respecting XDG env vars.
func GetPaths() Paths {
	home, _ := os.UserHomeDir()

	configDir := envOr("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	dataDir := envOr("XDG_DATA_HOME", filepath.Join(home, ".local", "share"))

	hopConfig := filepath.Join(configDir, "hop")
	hopData := filepath.Join(dataDir, "hop")

	return Paths{
		ConfigDir:  hopConfig,
		DataDir:    hopData,
		ConfigFile: filepath.Join(hopConfig, "config.toml"),
		DBFile:     filepath.Join(hopData, "hop.db"),
	}
}

// EnsureDirs creates all required directories.
func (p Paths) EnsureDirs() error {
	for _, d := range []string{p.ConfigDir, p.DataDir} {
		if err := os.MkdirAll(d, 0o755); err != nil {
			return err
		}
	}
	return nil
}

// Load reads config from disk, returning defaults if not found.
func Load() (*Config, error) {
	paths := GetPaths()
	cfg := &Config{}

	data, err := os.ReadFile(paths.ConfigFile)
	if err != nil {
		if os.IsNotExist(err) {
			return defaultConfig(), nil
		}
		return nil, err
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if cfg.Search.Limit <= 0 {
		cfg.Search.Limit = defaultLimit
	}
	return cfg, nil
}

// Save writes config to disk.
func Save(cfg *Config) error {
	paths := GetPaths()
	if err := paths.EnsureDirs(); err != nil {
		return err
	}

	f, err := os.Create(paths.ConfigFile)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(cfg)
}

// BoolPtr returns a pointer to a bool value.
func BoolPtr(v bool) *bool {
	return &v
}

const defaultLimit = 10

func defaultConfig() *Config {
	return &Config{
		Search: SearchConfig{Limit: defaultLimit},
		Picker: PickerConfig{Enabled: BoolPtr(true)},
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
