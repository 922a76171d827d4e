// Command figmover is the CLI entrypoint for the figure collector.
//
// It loads the config file, applies flags and positional arguments, and
// either runs diagnostics (--check) or copies every figure found under the
// source root into the destination directory under its zero-padded name.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Jstafford98/figmover/internal/check"
	"github.com/Jstafford98/figmover/internal/config"
	"github.com/Jstafford98/figmover/internal/destlock"
	"github.com/Jstafford98/figmover/internal/display"
	"github.com/Jstafford98/figmover/internal/logging"
	"github.com/Jstafford98/figmover/internal/pipeline"
)

// version and commit are injected at build time via -ldflags.
var (
	version = "1.0.0"
	commit  = "unknown"
)

// errReported means the failure was already logged; main only sets the
// exit status.
var errReported = errors.New("figmover: run failed")

func main() {
	cmd := newRootCommand()
	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, errReported) && !errors.Is(err, context.Canceled) {
			fmt.Fprintf(os.Stderr, "figmover: %v\n", err)
		}
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var flags *config.Flags

	rootCmd := &cobra.Command{
		Use:           "figmover [flags] [source_root] [dest_dir]",
		Short:         "Collect chapter figures into one directory with zero-padded names",
		Version:       fmt.Sprintf("%s (%s)", version, commit),
		Args:          cobra.MaximumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, flags, args)
			if err != nil {
				return err
			}
			return run(cmd.Context(), &cfg, cmd.OutOrStdout())
		},
	}
	flags = config.BindFlags(rootCmd)
	return rootCmd
}

// loadConfig layers defaults, the TOML file, flags and positional
// arguments, in that order, then validates the result.
func loadConfig(cmd *cobra.Command, flags *config.Flags, args []string) (config.Config, error) {
	cfg := config.DefaultConfig()
	if _, err := config.LoadFile(&cfg, flags.ConfigPath()); err != nil {
		return cfg, err
	}
	if err := flags.Apply(cmd, &cfg, args); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func run(parent context.Context, cfg *config.Config, stdout io.Writer) error {
	// Phase 1: the logger is up; everything below goes through it.
	log, err := logging.NewLogger(cfg)
	if err != nil {
		return err
	}
	defer log.Close()

	display.PrintBanner(stdout)

	if cfg.CheckOnly {
		if !check.RunCheck(cfg, log) {
			return errReported
		}
		return nil
	}

	// Phase 2: both directories must already exist. The destination is
	// never created.
	if err := check.CheckPaths(cfg); err != nil {
		log.Error("%v", err)
		return errReported
	}
	sourceAbs, err := absPath(cfg.SourceRoot)
	if err != nil {
		log.Error("Cannot resolve source root: %s", cfg.SourceRoot)
		return errReported
	}
	destAbs, err := absPath(cfg.DestDir)
	if err != nil {
		log.Error("Cannot resolve destination: %s", cfg.DestDir)
		return errReported
	}
	if err := cfg.ValidatePaths(sourceAbs, destAbs); err != nil {
		log.Error("%v", err)
		log.Error("Choose a destination that is not a %q directory under %s", cfg.FigureDir, cfg.SourceRoot)
		return errReported
	}

	// Dry runs take no lock and leave no lock file.
	if !cfg.DryRun {
		lock, err := destlock.Acquire(cfg.DestDir)
		if err != nil {
			log.Error("%v", err)
			return errReported
		}
		defer lock.Release()
	}

	log.Info("=== figmover v%s (%s) run %s ===", version, commit, log.RunID())
	log.Info("From: %s", cfg.SourceRoot)
	log.Info("To:   %s", cfg.DestDir)
	if cfg.ConfigPath != "" {
		log.Debug(cfg.Verbose, "Config: %s", cfg.ConfigPath)
	}

	// Phase 3: stop between files on SIGINT/SIGTERM.
	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case <-sigCh:
			log.Warn("Received interrupt, finishing current file...")
			cancel()
		case <-ctx.Done():
		}
	}()

	// Phase 4: discover, parse, copy.
	stats, err := pipeline.Run(ctx, cfg, log, stdout)
	if err != nil || stats.Failed > 0 || ctx.Err() != nil {
		return errReported
	}
	return nil
}

// absPath returns the absolute, symlink-resolved path so source and
// destination hierarchies compare reliably.
func absPath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return filepath.EvalSymlinks(abs)
}
