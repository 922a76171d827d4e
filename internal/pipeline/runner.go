// Package pipeline orchestrates candidate discovery, the per-file
// parse → build → guarded copy sequence, and batch summary reporting.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/Jstafford98/figmover/internal/config"
	"github.com/Jstafford98/figmover/internal/copyguard"
	"github.com/Jstafford98/figmover/internal/display"
	"github.com/Jstafford98/figmover/internal/logging"
	"github.com/Jstafford98/figmover/internal/naming"
)

// ErrPrecondition marks a candidate that was not an existing regular file,
// or a destination that stopped being a directory mid-run. It fails that
// candidate only.
var ErrPrecondition = errors.New("precondition failed")

// ErrDiscovery means the source root could not be walked. It is fatal for
// the whole run.
var ErrDiscovery = errors.New("source discovery failed")

// Run is the top-level batch entry point. It discovers candidates under
// cfg.SourceRoot, processes each one sequentially, and returns aggregate
// stats. A failing candidate is reported on stdout and never stops the
// batch; only cancellation of ctx does. The returned error is non-nil only
// when the source root could not be walked, in which case no file was
// touched.
func Run(ctx context.Context, cfg *config.Config, log *logging.Logger, stdout io.Writer) (RunStats, error) {
	var stats RunStats

	files, err := Discover(cfg.SourceRoot, cfg.FigureDir, cfg.Extension)
	if err != nil {
		log.Error("File discovery failed: %v", err)
		return stats, fmt.Errorf("%w: %v", ErrDiscovery, err)
	}

	stats.Total = len(files)
	claims := naming.NewClaimTracker()

	logBatchHeader(cfg, log, &stats)

	for i, path := range files {
		stats.Current = i + 1

		if ctx.Err() != nil {
			log.Warn("Interrupted")
			break
		}

		if err := safeProcessFile(cfg, log, path, &stats, claims); err != nil {
			stats.recordFailure(path, err)
			fmt.Fprintf(stdout, "Unexpected error while parsing %s: %v. Skipping for now.\n", path, err)
			log.Error("Failed: %s", filepath.Base(path))
		}
	}

	logSummary(cfg, log, &stats, stdout)
	return stats, nil
}

// safeProcessFile turns a panic inside one candidate into that candidate's
// error so the batch keeps going.
func safeProcessFile(
	cfg *config.Config,
	log *logging.Logger,
	path string,
	stats *RunStats,
	claims *naming.ClaimTracker,
) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return processFile(cfg, log, path, stats, claims)
}

// processFile handles one candidate: precondition → parse → name → copy.
// A nil return covers copied, already-present and not-applicable outcomes.
func processFile(
	cfg *config.Config,
	log *logging.Logger,
	path string,
	stats *RunStats,
	claims *naming.ClaimTracker,
) error {
	log.Debug(cfg.Verbose, "[%d/%d] %s", stats.Current, stats.Total, path)

	// --- Preconditions ---
	fi, err := os.Stat(path)
	if err != nil || !fi.Mode().IsRegular() {
		return fmt.Errorf("%w: %s is not an existing regular file", ErrPrecondition, path)
	}
	if di, err := os.Stat(cfg.DestDir); err != nil || !di.IsDir() {
		return fmt.Errorf("%w: %s is not an existing directory", ErrPrecondition, cfg.DestDir)
	}

	// --- Parse filename ---
	key, err := naming.ParseFilename(filepath.Base(path))
	if errors.Is(err, naming.ErrNotApplicable) {
		log.Warn("Skipping %s", path)
		stats.NotApplicable++
		return nil
	}
	if err != nil {
		return err
	}

	// --- Resolve destination ---
	dest := naming.OutputPath(cfg.DestDir, key, cfg.Extension)
	log.Debug(cfg.Verbose, "  key %v -> %s", key, filepath.Base(dest))
	if owner, ok := claims.Claim(path, dest); !ok {
		log.Warn("%s maps to %s, already claimed by %s", path, filepath.Base(dest), owner)
		// Match a real run, where the first claimant is already in place.
		if cfg.DryRun && cfg.CheckExisting {
			log.Warn("%s exists. Skipping.", dest)
			stats.Existing++
			return nil
		}
	}

	// --- Guarded copy ---
	res, err := copyguard.Copy(path, dest, cfg.CheckExisting,
		copyguard.WithLogger(log),
		copyguard.WithDryRun(cfg.DryRun),
	)
	if err != nil {
		return err
	}

	switch res.Outcome {
	case copyguard.SkippedExists:
		stats.Existing++
	case copyguard.Copied, copyguard.DryRun:
		stats.Copied++
		stats.BytesCopied += res.Bytes
	}
	return nil
}

// --- Logging helpers ---

func logBatchHeader(cfg *config.Config, log *logging.Logger, stats *RunStats) {
	log.Info("Found %d candidate files (%s/*%s)", stats.Total, cfg.FigureDir, cfg.Extension)
	if cfg.CheckExisting {
		log.Info("Existing destination files: keep (skip)")
	} else {
		log.Warn("Existing destination files: overwrite (--force)")
	}
	if cfg.DryRun {
		log.Warn("DRY RUN: no files will be written")
	}
}

func logSummary(cfg *config.Config, log *logging.Logger, stats *RunStats, stdout io.Writer) {
	log.Info("==============================")
	verb := "copied"
	if cfg.DryRun {
		verb = "would copy"
	}
	log.Info("Done: %d %s, %d already present, %d not applicable, %d failed",
		stats.Copied, verb, stats.Existing, stats.NotApplicable, stats.Failed)
	if !cfg.DryRun && stats.BytesCopied > 0 {
		log.Success("  Copied %s into %s", display.FormatBytes(stats.BytesCopied), cfg.DestDir)
	}

	if len(stats.Failures) == 0 {
		return
	}
	log.Warn("%d file(s) failed:", len(stats.Failures))
	rows := make([][]string, 0, len(stats.Failures))
	for _, f := range stats.Failures {
		rows = append(rows, []string{f.Path, f.Err.Error()})
	}
	fmt.Fprintln(stdout, display.RenderTable([]string{"File", "Error"}, rows, nil))
}
