package platform

import (
	"fmt"
	"os/exec"
	"runtime"
	"syscall"
)

// insufficientSpaceError is returned by PreflightCheck when the target
// filesystem does not have enough free space for a scratch area's
// declared byte budget.
type insufficientSpaceError struct {
	path      string
	required  int64
	available int64
}

func (e *insufficientSpaceError) Error() string {
	return fmt.Sprintf("platform: %s needs %d bytes free, only %d available", e.path, e.required, e.available)
}

// PreflightCheck reports whether the filesystem holding dir has at least
// requiredBytes free, grounded on the same syscall.Statfs probing the
// teacher's container startup path uses to wait for a ready disk mount.
// It is best-effort: platforms where Statfs is unavailable (Windows)
// always pass, leaving overrun detection to the workload itself.
func PreflightCheck(dir string, requiredBytes int64) error {
	if runtime.GOOS == "windows" {
		return nil
	}
	var stat syscall.Statfs_t
	if err := syscall.Statfs(dir, &stat); err != nil {
		return fmt.Errorf("platform: statfs %q: %w", dir, err)
	}
	available := int64(stat.Bavail) * int64(stat.Bsize)
	if available < requiredBytes {
		return &insufficientSpaceError{path: dir, required: requiredBytes, available: available}
	}
	return nil
}

// SpawnDoNothing runs the platform-appropriate trivial child process to
// completion, for the responsiveness process-spawn workload. It is the
// platform package's narrow subprocess helper, grounded on the teacher's
// exec.Command(...).CombinedOutput() use in internal/container, narrowed
// from "start a docker compose stack" to "start and wait for a trivial
// child."
func SpawnDoNothing() error {
	name, args := doNothingCommand()
	return exec.Command(name, args...).Run()
}

func doNothingCommand() (string, []string) {
	if runtime.GOOS == "windows" {
		return "cmd", []string{"/c", "exit"}
	}
	return "/bin/true", nil
}
