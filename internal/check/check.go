// Package check provides the fatal startup checks (CheckPaths) and the
// --check diagnostics report (RunCheck).
package check

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Jstafford98/figmover/internal/config"
	"github.com/Jstafford98/figmover/internal/destlock"
	"github.com/Jstafford98/figmover/internal/naming"
	"github.com/Jstafford98/figmover/internal/pipeline"
)

// Sentinel errors returned by CheckPaths when a required directory is missing.
var (
	ErrSourceRootMissing = errors.New("source root is not an existing directory")
	ErrDestDirMissing    = errors.New("destination is not an existing directory")
)

// Logger is the minimal logging interface needed by RunCheck.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
	Debug(bool, string, ...interface{})
}

// CheckPaths is the startup precondition: the source root and destination
// must both be existing directories. The destination is never created.
func CheckPaths(cfg *config.Config) error {
	if !isDir(cfg.SourceRoot) {
		return fmt.Errorf("%w: %s", ErrSourceRootMissing, cfg.SourceRoot)
	}
	if !isDir(cfg.DestDir) {
		return fmt.Errorf("%w: %s", ErrDestDirMissing, cfg.DestDir)
	}
	return nil
}

// RunCheck prints the state of everything a run depends on: config file,
// source root, destination (existence, writability, lock) and a dry parse
// of every candidate. It returns false if a run would fail at startup.
func RunCheck(cfg *config.Config, log Logger) bool {
	log.Info("=== System Check ===")
	ok := true

	if cfg.ConfigPath != "" {
		log.Success("Config: %s", cfg.ConfigPath)
	} else {
		log.Info("Config: none (defaults and flags)")
	}

	if checkSource(cfg, log) {
		checkCandidates(cfg, log)
	} else {
		ok = false
	}
	if !checkDest(cfg, log) {
		ok = false
	}
	return ok
}

func checkSource(cfg *config.Config, log Logger) bool {
	if cfg.SourceRoot == "" {
		log.Error("Source root: not set")
		return false
	}
	if !isDir(cfg.SourceRoot) {
		log.Error("Source root: %s (missing)", cfg.SourceRoot)
		return false
	}
	log.Success("Source root: %s", cfg.SourceRoot)
	return true
}

// checkCandidates parses every discovered name without copying, so bad
// names show up before a real run.
func checkCandidates(cfg *config.Config, log Logger) {
	files, err := pipeline.Discover(cfg.SourceRoot, cfg.FigureDir, cfg.Extension)
	if err != nil {
		log.Error("Discovery failed: %v", err)
		return
	}
	var good, skip, bad int
	for _, f := range files {
		_, err := naming.ParseFilename(filepath.Base(f))
		switch {
		case err == nil:
			good++
		case errors.Is(err, naming.ErrNotApplicable):
			skip++
			log.Debug(cfg.Verbose, "  not a figure name: %s", f)
		default:
			bad++
			log.Warn("  %s: %v", f, err)
		}
	}
	log.Info("Candidates: %d (%s/*%s)", len(files), cfg.FigureDir, cfg.Extension)
	log.Info("  parseable: %d, not applicable: %d, malformed: %d", good, skip, bad)
}

func checkDest(cfg *config.Config, log Logger) bool {
	if cfg.DestDir == "" {
		log.Error("Destination: not set")
		return false
	}
	if !isDir(cfg.DestDir) {
		log.Error("Destination: %s (missing; it is never created)", cfg.DestDir)
		return false
	}
	log.Success("Destination: %s", cfg.DestDir)

	probe, err := os.CreateTemp(cfg.DestDir, ".figmover-check-*")
	if err != nil {
		log.Error("Destination not writable: %v", err)
		return false
	}
	probe.Close()
	os.Remove(probe.Name())
	log.Success("Destination writable")

	held, err := destlock.Held(cfg.DestDir)
	switch {
	case err != nil:
		log.Warn("Destination lock: %v", err)
	case held:
		log.Warn("Destination lock: held by another figmover run")
	default:
		log.Success("Destination lock: free")
	}
	return true
}

func isDir(path string) bool {
	if path == "" {
		return false
	}
	fi, err := os.Stat(path)
	return err == nil && fi.IsDir()
}
