// Package project sequences project creation into one transactional
// operation: either the full tree exists afterwards or nothing does.
package project

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/rootstock-community/create-rsk-dapp/internal/execx"
	"github.com/rootstock-community/create-rsk-dapp/internal/git"
	"github.com/rootstock-community/create-rsk-dapp/internal/logger"
	"github.com/rootstock-community/create-rsk-dapp/internal/scaffold"
	"github.com/rootstock-community/create-rsk-dapp/internal/ui"
)

// ErrDirectoryExists is returned when the target path is already taken. No
// other work is attempted in that case.
var ErrDirectoryExists = fmt.Errorf("target directory already exists")

// state tracks creation progress. Any failure before stateEnvWritten is
// fatal and rolls the target directory back; the optional steps after it
// only ever warn.
type state string

const (
	stateIdle             state = "idle"
	stateDirectoryCreated state = "directory_created"
	stateTemplateCopied   state = "template_copied"
	stateManifestUpdated  state = "manifest_updated"
	stateEnvWritten       state = "env_written"
	stateGitReady         state = "git_ready"
	stateDepsReady        state = "deps_ready"
	stateDone             state = "done"
	stateFailed           state = "failed"
	stateRolledBack       state = "rolled_back"
)

type (
	// Spec is the validated input for one project creation. Constructed once
	// at the CLI boundary, consumed here, then discarded.
	Spec struct {
		Name           string
		Template       scaffold.Template
		TargetPath     string // absolute
		PackageManager string
		SkipInstall    bool
		SkipGit        bool
	}

	// StepWarning marks a non-fatal step failure: the project is usable,
	// the step just has to be redone by hand.
	StepWarning struct {
		Step string
		Err  error
	}

	materializer interface {
		Materialize(tpl scaffold.Template, targetDir string) error
	}

	// Orchestrator runs the creation sequence.
	Orchestrator struct {
		mat     materializer
		runner  execx.Runner
		printer *ui.Printer
		logger  *slog.Logger
		state   state
	}
)

func (w *StepWarning) Error() string {
	return fmt.Sprintf("%s failed: %v", w.Step, w.Err)
}

func (w *StepWarning) Unwrap() error {
	return w.Err
}

func NewOrchestrator(mat materializer, runner execx.Runner, printer *ui.Printer) *Orchestrator {
	return &Orchestrator{
		mat:     mat,
		runner:  runner,
		printer: printer,
		logger:  logger.Named("orchestrator"),
		state:   stateIdle,
	}
}

// Create builds the project tree described by spec. A failure in any of the
// required steps removes the target directory entirely before returning;
// git and dependency installation are best-effort and surface as warnings.
func (o *Orchestrator) Create(ctx context.Context, spec Spec) error {
	if _, err := os.Stat(spec.TargetPath); err == nil {
		return fmt.Errorf("%w: %s", ErrDirectoryExists, spec.TargetPath)
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to check target path: %w", err)
	}

	o.printer.Phase("Creating project directory")
	if err := os.MkdirAll(spec.TargetPath, 0755); err != nil {
		o.state = stateFailed
		return fmt.Errorf("failed to create %s: %w", spec.TargetPath, err)
	}
	o.state = stateDirectoryCreated

	if err := o.materialize(spec); err != nil {
		return o.rollback(spec.TargetPath, err)
	}
	o.state = stateTemplateCopied

	o.printer.Phase("Updating project manifest")
	if err := scaffold.MergeManifest(spec.TargetPath, spec.Name, nil); err != nil {
		return o.rollback(spec.TargetPath, err)
	}
	o.state = stateManifestUpdated

	o.printer.Phase("Writing environment files")
	if err := scaffold.WriteEnvFiles(spec.TargetPath, spec.Template); err != nil {
		return o.rollback(spec.TargetPath, err)
	}
	if err := scaffold.WriteGitignore(spec.TargetPath); err != nil {
		return o.rollback(spec.TargetPath, err)
	}
	o.state = stateEnvWritten

	if !spec.SkipGit {
		o.printer.Phase("Initializing git repository")
		if err := git.Init(ctx, o.runner, spec.TargetPath); err != nil {
			o.warn(&StepWarning{Step: "git initialization", Err: err})
		} else {
			o.state = stateGitReady
		}
	}

	if !spec.SkipInstall {
		o.printer.Phase(fmt.Sprintf("Installing dependencies with %s", spec.PackageManager))
		if err := o.install(ctx, spec); err != nil {
			o.warn(&StepWarning{Step: "dependency installation", Err: err})
			o.printer.Hint("run the install manually inside %s", spec.TargetPath)
		} else {
			o.state = stateDepsReady
		}
	}

	o.state = stateDone
	return nil
}

func (o *Orchestrator) materialize(spec Spec) error {
	o.printer.Phase(fmt.Sprintf("Materializing %s template", spec.Template))
	if err := o.mat.Materialize(spec.Template, spec.TargetPath); err != nil {
		return fmt.Errorf("failed to materialize template: %w", err)
	}
	return nil
}

// install invokes the package manager inside the project. Each manager has
// its own invocation; yarn installs with no subcommand.
func (o *Orchestrator) install(ctx context.Context, spec Spec) error {
	var args []string
	switch spec.PackageManager {
	case "yarn":
		args = nil
	default:
		args = []string{"install"}
	}

	if _, err := o.runner.Run(ctx, execx.Cmd{
		Name: spec.PackageManager,
		Args: args,
		Dir:  spec.TargetPath,
	}); err != nil {
		return err
	}

	return nil
}

func (o *Orchestrator) warn(w *StepWarning) {
	o.logger.With("step", w.Step).With("err", w.Err.Error()).Warn("non-fatal step failed")
	o.printer.Warn("%s", w.Error())
}

// rollback restores the filesystem to its pre-call state and propagates the
// step error.
func (o *Orchestrator) rollback(targetPath string, cause error) error {
	o.state = stateFailed
	o.logger.With("target", targetPath).With("err", cause.Error()).
		Error("project creation failed, rolling back")

	if err := os.RemoveAll(targetPath); err != nil {
		return fmt.Errorf("rollback of %s failed (%v) after: %w", targetPath, err, cause)
	}

	o.state = stateRolledBack
	return cause
}
