// Package execx wraps external command execution behind a small interface so
// the orchestrator and deploy runner can be exercised without spawning
// processes in tests.
package execx

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

type (
	// Cmd describes one external command invocation.
	Cmd struct {
		Name string
		Args []string
		Dir  string
		Env  map[string]string
	}

	// Result captures the combined stdout/stderr of a finished command.
	Result struct {
		Output   string
		ExitCode int
	}

	// Runner executes external commands synchronously. The calling step
	// blocks until the process exits and its output is captured.
	Runner interface {
		Run(ctx context.Context, cmd Cmd) (Result, error)
	}
)

// ExitError is returned when the command ran but exited non-zero. It carries
// the captured output so callers can surface it.
type ExitError struct {
	Cmd      string
	ExitCode int
	Output   string
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("command %q exited with code %d", e.Cmd, e.ExitCode)
}

// OSRunner is the production Runner backed by os/exec.
type OSRunner struct{}

func NewOSRunner() *OSRunner {
	return &OSRunner{}
}

func (r *OSRunner) Run(ctx context.Context, c Cmd) (Result, error) {
	cmd := exec.CommandContext(ctx, c.Name, c.Args...)
	cmd.Dir = c.Dir

	cmd.Env = os.Environ()
	for k, v := range c.Env {
		cmd.Env = append(cmd.Env, k+"="+v)
	}

	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out

	err := cmd.Run()
	result := Result{Output: out.String()}

	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			result.ExitCode = exitErr.ExitCode()
			return result, &ExitError{
				Cmd:      c.Name + " " + strings.Join(c.Args, " "),
				ExitCode: result.ExitCode,
				Output:   result.Output,
			}
		}
		return result, fmt.Errorf("failed to run %s: %w", c.Name, err)
	}

	return result, nil
}
