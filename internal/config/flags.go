package config

// This file binds CLI flags onto a cobra command and applies them to Config.
// Flags only override the config file when the user actually passed them,
// so values from DefaultConfig() and the TOML file hold otherwise.

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Flags holds raw flag values until [Flags.Apply] copies the ones the user
// set into a Config.
type Flags struct {
	configPath string
	figureDir  string
	extension  string
	force      bool
	dryRun     bool
	verbose    bool
	logFile    string
	forceColor bool
	noColor    bool
	checkOnly  bool
}

// BindFlags registers figmover's flags on cmd and returns the holder they
// are parsed into.
func BindFlags(cmd *cobra.Command) *Flags {
	f := &Flags{}
	fs := cmd.Flags()

	fs.StringVarP(&f.configPath, "config", "c", "", "TOML config file (default: $XDG_CONFIG_HOME/figmover/config.toml)")
	fs.StringVar(&f.figureDir, "figure-dir", "", "Directory name that holds figures (default: figures)")
	fs.StringVar(&f.extension, "ext", "", "Figure file extension (default: .png)")

	fs.BoolVarP(&f.force, "force", "f", false, "Overwrite existing destination files")
	fs.BoolVarP(&f.dryRun, "dry-run", "d", false, "Preview only; do not copy")

	fs.BoolVar(&f.forceColor, "color", false, "Force colored logs")
	fs.BoolVar(&f.noColor, "no-color", false, "Disable colored logs")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "Verbose output")
	fs.StringVarP(&f.logFile, "log", "l", "", "Append logs to file")
	fs.BoolVar(&f.checkOnly, "check", false, "Run preflight diagnostics and exit")

	cmd.MarkFlagsMutuallyExclusive("color", "no-color")
	return f
}

// ConfigPath returns the --config value (empty for the default location).
func (f *Flags) ConfigPath() string { return f.configPath }

// Apply copies explicitly set flags and the positional arguments into cfg.
// args are [source_root] [dest_dir]; each one given overrides the config file.
func (f *Flags) Apply(cmd *cobra.Command, cfg *Config, args []string) error {
	changed := cmd.Flags().Changed

	if changed("figure-dir") {
		cfg.FigureDir = f.figureDir
	}
	if changed("ext") {
		cfg.Extension = f.extension
	}
	if f.force {
		cfg.CheckExisting = false
	}
	if changed("dry-run") {
		cfg.DryRun = f.dryRun
	}
	if changed("verbose") {
		cfg.Verbose = f.verbose
	}
	if changed("log") {
		cfg.LogFile = f.logFile
	}
	if f.noColor {
		cfg.ColorMode = ColorNever
	} else if f.forceColor {
		cfg.ColorMode = ColorAlways
	}
	cfg.CheckOnly = f.checkOnly

	return applyPositionalArgs(cfg, args)
}

// applyPositionalArgs sets SourceRoot and DestDir from up to two positional args.
func applyPositionalArgs(cfg *Config, args []string) error {
	switch len(args) {
	case 0:
	case 1:
		cfg.SourceRoot = NormalizeDirArg(args[0])
	case 2:
		cfg.SourceRoot = NormalizeDirArg(args[0])
		cfg.DestDir = NormalizeDirArg(args[1])
	default:
		return fmt.Errorf("expected at most source_root and dest_dir, got %d arguments", len(args))
	}
	return nil
}
