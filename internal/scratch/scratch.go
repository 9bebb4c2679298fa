// Package scratch implements the scoped-resource pattern for a workload's
// temporary working directory (component C4): acquisition returns a
// handle whose Release unconditionally deletes the tree, on every exit
// path. It is adapted from the teacher's docker-container scoped-resource
// helper (internal/container.Start/Stop, Config{Name, ComposeFile,
// WaitForReady}) generalized from "start/stop a database container" to
// "acquire/release a temp directory," with the same acquire-then-deferred-
// release shape a workload's Run method is expected to follow.
package scratch

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/ravenscale/workbench/internal/platform"
)

// Config configures Acquire.
type Config struct {
	// Root is the platform temp root to create the scratch directory
	// under. Empty means os.TempDir().
	Root string
	// Name identifies the owning workload; it becomes part of the
	// directory name for easier postmortem debugging.
	Name string
	// Logger receives a Warn line when Release leaves residual files
	// after its last attempt. A nil Logger defaults to slog.Default().
	Logger *slog.Logger
	// RequiredBytes, when set, makes Acquire fail fast with a preflight
	// free-space check rather than discovering the shortfall partway
	// through a multi-gigabyte CreateFile.
	RequiredBytes int64
}

// Area is an acquired, exclusively-owned scratch directory.
type Area struct {
	root   string
	logger *slog.Logger
}

// maxCleanupAttempts bounds how many times Release retries RemoveAll to
// tolerate a transient antivirus hold on a just-closed file.
const maxCleanupAttempts = 5

// Acquire creates a uniquely-named, empty directory under cfg.Root (or the
// platform temp root) and returns a handle to it. The name is generated
// with a ULID so scratch directories from the same session sort
// chronologically on disk, which is convenient when several workloads
// share one temp root as an optimisation (spec §5, "Shared resources").
func Acquire(cfg Config) (*Area, error) {
	root := cfg.Root
	if root == "" {
		root = os.TempDir()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	name := cfg.Name
	if name == "" {
		name = "workload"
	}
	dir := filepath.Join(root, fmt.Sprintf("workbench-%s-%s", name, ulid.Make().String()))

	if cfg.RequiredBytes > 0 {
		if err := platform.PreflightCheck(root, cfg.RequiredBytes); err != nil {
			return nil, fmt.Errorf("scratch: preflight: %w", err)
		}
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("scratch: acquire %q: %w", dir, err)
	}
	return &Area{root: dir, logger: logger}, nil
}

// Path returns the absolute path of the scratch directory.
func (a *Area) Path() string {
	return a.root
}

// Release unconditionally deletes the scratch tree. It retries a bounded
// number of times on failure (a file still open, an AV scan in
// progress) with a short backoff between attempts; any files left after
// the last attempt are logged at Warn but do not make Release return an
// error, per the spec's cleanup contract: cleanup never fails the
// workload outcome.
func (a *Area) Release() error {
	var lastErr error
	for attempt := 1; attempt <= maxCleanupAttempts; attempt++ {
		lastErr = os.RemoveAll(a.root)
		if lastErr == nil {
			return nil
		}
		if attempt < maxCleanupAttempts {
			time.Sleep(time.Duration(attempt) * 20 * time.Millisecond)
		}
	}
	a.logger.Warn("scratch area cleanup left residual files",
		"path", a.root, "attempts", maxCleanupAttempts, "error", lastErr)
	return nil
}
