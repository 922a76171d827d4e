// Package config holds runtime configuration: defaults, the optional TOML
// config file, CLI flag binding, and validation. Precedence is defaults, then
// config file, then flags, then positional arguments.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// Config holds all runtime settings. It is populated by [DefaultConfig],
// overlaid by [LoadFile] and the cobra flags registered with [BindFlags],
// then passed by pointer to the packages that need it.
type Config struct {
	// Paths (config file or positional args).
	SourceRoot string // Default: "machine-learning-book-main".
	DestDir    string // Required; must already exist.

	// Discovery.
	FigureDir string // Default: "figures". Parent directory name a candidate must sit in.
	Extension string // Default: ".png". Leading dot, lowercase.

	// Behavior flags.
	CheckExisting bool // Default: true. Cleared by --force.
	DryRun        bool

	// Display and logging.
	Verbose   bool
	ColorMode ColorMode // Default: "auto".
	LogFile   string    // Optional log file path.
	CheckOnly bool      // Run --check diagnostics and exit.

	// ConfigPath is the TOML file that was loaded, empty when none.
	ConfigPath string
}

// DefaultConfig returns a Config with the defaults the tool was written
// around: the machine-learning book checkout as the source root and PNG
// figures under "figures" directories.
func DefaultConfig() Config {
	return Config{
		SourceRoot:    "machine-learning-book-main",
		FigureDir:     "figures",
		Extension:     ".png",
		CheckExisting: true,
		DryRun:        false,
		Verbose:       false,
		ColorMode:     ColorAuto,
		CheckOnly:     false,
	}
}

// NormalizeDirArg strips trailing slashes from a directory path.
// The filesystem root "/" is returned unchanged so we don't produce an empty string.
func NormalizeDirArg(path string) string {
	if path == "/" {
		return "/"
	}
	return strings.TrimRight(path, "/")
}

// NormalizeExtension lowercases ext and ensures a single leading dot.
func NormalizeExtension(ext string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext == "" {
		return ""
	}
	return "." + strings.TrimLeft(ext, ".")
}

// Validate checks enum fields and discovery settings, normalizing the
// extension in place. Outside CheckOnly mode it also requires both the
// source root and destination directory.
func (c *Config) Validate() error {
	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return fmt.Errorf("invalid color mode %q (use 'auto', 'always' or 'never')", c.ColorMode)
	}

	c.Extension = NormalizeExtension(c.Extension)
	if c.Extension == "" || c.Extension == "." {
		return errors.New("extension must not be empty")
	}
	if strings.ContainsAny(c.Extension, `/\`) {
		return fmt.Errorf("invalid extension %q", c.Extension)
	}

	c.FigureDir = strings.TrimSpace(c.FigureDir)
	if c.FigureDir == "" {
		return errors.New("figure directory name must not be empty")
	}
	if strings.ContainsAny(c.FigureDir, `/\`) {
		return fmt.Errorf("figure directory %q must be a single path element", c.FigureDir)
	}

	if c.CheckOnly {
		return nil
	}
	if c.SourceRoot == "" || c.DestDir == "" {
		return errors.New("need both source_root and dest_dir")
	}
	return nil
}

// ValidatePaths rejects a destination that would be rediscovered as a
// source: a directory named FigureDir inside (or equal to) the source root.
// Both arguments must be absolute, symlink-resolved paths.
func (c *Config) ValidatePaths(sourceAbs, destAbs string) error {
	sep := string(filepath.Separator)
	inside := destAbs == sourceAbs || strings.HasPrefix(destAbs+sep, sourceAbs+sep)
	if inside && filepath.Base(destAbs) == c.FigureDir {
		return fmt.Errorf("destination %s would be discovered as a %q directory of the source root", destAbs, c.FigureDir)
	}
	return nil
}
