// Package shell runs the generated run script as a supervised child process.
package shell

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"syscall"
	"time"

	"github.com/zancas/containment/internal/core/domain"
	"go.trai.ch/zerr"
)

// waitDelay bounds how long a cancelled child may take to exit after SIGTERM.
const waitDelay = 10 * time.Second

// Runner implements ports.ContainerRunner.
type Runner struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewRunner creates a Runner attached to the process's standard streams.
func NewRunner() *Runner {
	return &Runner{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// Run marks script executable and runs it in the foreground. The child's
// non-zero exit status is returned as *domain.ContainerExitError.
func (r *Runner) Run(ctx context.Context, script string) error {
	if err := os.Chmod(script, domain.ExecPerm); err != nil {
		return zerr.With(domain.Fail(domain.ErrRunScriptFailed, err), "path", script)
	}

	cmd := exec.CommandContext(ctx, script) //nolint:gosec // script is generated in the project scope
	cmd.Stdin = r.Stdin
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr
	cmd.Cancel = func() error {
		return cmd.Process.Signal(syscall.SIGTERM)
	}
	cmd.WaitDelay = waitDelay

	err := cmd.Run()
	if err == nil {
		return nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return &domain.ContainerExitError{Code: exitCode(exitErr)}
	}
	return zerr.With(domain.Fail(domain.ErrRunScriptFailed, err), "path", script)
}

// exitCode follows the shell convention of 128+signal for signalled children.
func exitCode(err *exec.ExitError) int {
	if status, ok := err.Sys().(syscall.WaitStatus); ok && status.Signaled() {
		return 128 + int(status.Signal())
	}
	return err.ExitCode()
}
