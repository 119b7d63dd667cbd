package config

import (
	"os"
	"path/filepath"

	"github.com/dshills/linestorm/internal/config/loader"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "LINESTORM_"

// DefaultPath returns the config file used when none is given:
// $XDG_CONFIG_HOME/linestorm/config.toml, or the platform equivalent.
// It returns "" when no config directory can be determined.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "linestorm", "config.toml")
}

// Options customizes Load.
type Options struct {
	FS     loader.FileSystem
	Lookup loader.LookupFunc
}

// Load reads the configuration at path from the OS file system and
// environment. An empty path or a missing file yields the defaults plus
// environment overrides.
func Load(path string) (*Config, error) {
	return LoadWith(path, Options{})
}

// LoadWith is Load with injectable sources.
func LoadWith(path string, opts Options) (*Config, error) {
	if opts.FS == nil {
		opts.FS = loader.DefaultFS()
	}
	if opts.Lookup == nil {
		opts.Lookup = os.LookupEnv
	}

	cfg := Default()
	if path != "" {
		if _, err := loader.DecodeFile(opts.FS, path, cfg); err != nil {
			return nil, err
		}
	}
	if err := applyEnv(cfg, loader.NewEnvLoaderWithLookup(EnvPrefix, opts.Lookup)); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config, env *loader.EnvLoader) error {
	if v, ok := env.String("LOG_LEVEL"); ok {
		cfg.Logging.Level = v
	}
	if v, ok := env.String("LOG_FILE"); ok {
		cfg.Logging.File = v
	}
	if v, ok := env.String("STARTUP_SCRIPT"); ok {
		cfg.Editor.StartupScript = v
	}

	bools := []struct {
		suffix string
		dst    *bool
	}{
		{"LINE_NUMBERS", &cfg.Editor.LineNumbers},
		{"HIGHLIGHT", &cfg.Editor.Highlight},
	}
	for _, b := range bools {
		v, ok, err := env.Bool(b.suffix)
		if err != nil {
			return err
		}
		if ok {
			*b.dst = v
		}
	}
	return nil
}
