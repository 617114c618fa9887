// Package git initializes a fresh repository inside generated projects.
package git

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rootstock-community/create-rsk-dapp/internal/execx"
)

const initialCommitMessage = "Initial commit from create-rsk-dapp"

// Init creates a repository in dir, stages everything and records one
// initial commit.
func Init(ctx context.Context, runner execx.Runner, dir string) error {
	steps := [][]string{
		{"init"},
		{"add", "-A"},
		{"commit", "-m", initialCommitMessage},
	}

	for _, args := range steps {
		slog.Debug("running git", "args", args, "dir", dir)
		if _, err := runner.Run(ctx, execx.Cmd{Name: "git", Args: args, Dir: dir}); err != nil {
			return fmt.Errorf("git %s failed: %w", args[0], err)
		}
	}

	return nil
}
