// Package copyguard copies one file to a destination path unless a regular
// file is already there. Only content is copied; timestamps and other
// metadata are not carried over.
package copyguard

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Outcome says what a [Copy] call did.
type Outcome int

const (
	Copied        Outcome = iota // Destination written.
	SkippedExists                // Destination already a regular file; untouched.
	DryRun                       // Would have copied; nothing written.
)

func (o Outcome) String() string {
	switch o {
	case Copied:
		return "copied"
	case SkippedExists:
		return "exists"
	case DryRun:
		return "dry-run"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Result reports the outcome and, for Copied, the number of bytes written.
type Result struct {
	Outcome Outcome
	Bytes   int64
}

// Logger is the minimal logging interface Copy needs.
type Logger interface {
	Info(string, ...interface{})
	Warn(string, ...interface{})
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{}) {}
func (nopLogger) Warn(string, ...interface{}) {}

type options struct {
	log    Logger
	dryRun bool
}

// Option configures a Copy call.
type Option func(*options)

// WithLogger sends the per-call notice to log.
func WithLogger(log Logger) Option {
	return func(o *options) {
		if log != nil {
			o.log = log
		}
	}
}

// WithDryRun reports what would happen without touching the filesystem.
func WithDryRun(dryRun bool) Option {
	return func(o *options) { o.dryRun = dryRun }
}

// Copy copies src to dst. When checkExists is true and dst is already a
// regular file, Copy logs a warning and returns SkippedExists without
// reading or comparing anything. Otherwise the full content of src replaces
// dst. Exactly one notice is logged per call.
//
// I/O failures (missing or unreadable src, missing destination directory)
// are returned to the caller.
func Copy(src, dst string, checkExists bool, opts ...Option) (Result, error) {
	o := options{log: nopLogger{}}
	for _, opt := range opts {
		opt(&o)
	}

	exists := isRegularFile(dst)
	if checkExists && exists {
		o.log.Warn("%s exists. Skipping.", dst)
		return Result{Outcome: SkippedExists}, nil
	}

	if o.dryRun {
		o.log.Info("[DRY] Would copy %s -> %s", src, dst)
		return Result{Outcome: DryRun}, nil
	}

	if exists {
		o.log.Info("%s exists, overwriting.", dst)
	} else {
		o.log.Info("%s does not exist, copying file.", dst)
	}

	n, err := copyContent(src, dst)
	if err != nil {
		return Result{}, err
	}
	return Result{Outcome: Copied, Bytes: n}, nil
}

// copyContent streams src into a temp file beside dst and renames it into
// place. dst never holds partial content.
func copyContent(src, dst string) (int64, error) {
	in, err := os.Open(src)
	if err != nil {
		return 0, fmt.Errorf("open source: %w", err)
	}
	defer in.Close()

	tmp, err := os.CreateTemp(filepath.Dir(dst), "."+filepath.Base(dst)+".*.tmp")
	if err != nil {
		return 0, fmt.Errorf("create destination: %w", err)
	}
	tmpPath := tmp.Name()

	n, err := io.Copy(tmp, in)
	if err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return 0, fmt.Errorf("copy %s: %w", src, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return 0, fmt.Errorf("write destination: %w", err)
	}
	if err := os.Chmod(tmpPath, 0o644); err != nil {
		os.Remove(tmpPath)
		return 0, fmt.Errorf("chmod destination: %w", err)
	}
	if err := os.Rename(tmpPath, dst); err != nil {
		os.Remove(tmpPath)
		return 0, fmt.Errorf("place destination: %w", err)
	}
	return n, nil
}

func isRegularFile(path string) bool {
	fi, err := os.Stat(path)
	if err != nil {
		return false
	}
	return fi.Mode().IsRegular()
}
