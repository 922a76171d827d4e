package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// fileConfig mirrors the TOML layout. Pointer fields distinguish "absent"
// from zero values so only keys present in the file override defaults.
type fileConfig struct {
	SourceRoot *string `toml:"source_root"`
	DestDir    *string `toml:"dest_dir"`
	FigureDir  *string `toml:"figure_dir"`
	Extension  *string `toml:"extension"`
	Overwrite  *bool   `toml:"overwrite"`
	DryRun     *bool   `toml:"dry_run"`
	Verbose    *bool   `toml:"verbose"`
	Color      *string `toml:"color"`
	LogFile    *string `toml:"log_file"`
}

// DefaultConfigPath returns $XDG_CONFIG_HOME/figmover/config.toml, falling
// back to ~/.config when XDG_CONFIG_HOME is unset.
func DefaultConfigPath() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "figmover", "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".config", "figmover", "config.toml"), nil
}

// LoadFile overlays the TOML file at path onto cfg. An empty path means the
// default location, which is optional: a missing default file is not an
// error, a missing explicit file is. Returns whether a file was read.
func LoadFile(cfg *Config, path string) (bool, error) {
	explicit := path != ""
	if !explicit {
		p, err := DefaultConfigPath()
		if err != nil {
			return false, nil
		}
		path = p
	}

	path, err := expandHome(path)
	if err != nil {
		return false, err
	}

	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !explicit {
			return false, nil
		}
		return false, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	var fc fileConfig
	decoder := toml.NewDecoder(file).DisallowUnknownFields()
	if err := decoder.Decode(&fc); err != nil {
		return false, fmt.Errorf("parse config %s: %w", path, err)
	}

	fc.apply(cfg)
	cfg.ConfigPath = path
	return true, nil
}

func (fc *fileConfig) apply(cfg *Config) {
	if fc.SourceRoot != nil {
		cfg.SourceRoot = NormalizeDirArg(*fc.SourceRoot)
	}
	if fc.DestDir != nil {
		cfg.DestDir = NormalizeDirArg(*fc.DestDir)
	}
	if fc.FigureDir != nil {
		cfg.FigureDir = *fc.FigureDir
	}
	if fc.Extension != nil {
		cfg.Extension = *fc.Extension
	}
	if fc.Overwrite != nil {
		cfg.CheckExisting = !*fc.Overwrite
	}
	if fc.DryRun != nil {
		cfg.DryRun = *fc.DryRun
	}
	if fc.Verbose != nil {
		cfg.Verbose = *fc.Verbose
	}
	if fc.Color != nil {
		cfg.ColorMode = ColorMode(strings.ToLower(*fc.Color))
	}
	if fc.LogFile != nil {
		cfg.LogFile = *fc.LogFile
	}
}

// expandHome resolves a leading "~" to the user's home directory.
func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("expand %s: %w", path, err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}
