package project

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rootstock-community/create-rsk-dapp/internal/execx"
	"github.com/rootstock-community/create-rsk-dapp/internal/scaffold"
	"github.com/rootstock-community/create-rsk-dapp/internal/ui"
)

type stubRunner struct {
	calls []execx.Cmd
	fail  map[string]error // keyed by command name
}

func (s *stubRunner) Run(_ context.Context, cmd execx.Cmd) (execx.Result, error) {
	s.calls = append(s.calls, cmd)
	if err, ok := s.fail[cmd.Name]; ok && err != nil {
		return execx.Result{ExitCode: 1, Output: "stub failure"}, err
	}
	return execx.Result{}, nil
}

type failingMaterializer struct {
	err error
}

func (f *failingMaterializer) Materialize(_ scaffold.Template, targetDir string) error {
	// Leave partial output behind so rollback has something to clean up.
	_ = os.WriteFile(filepath.Join(targetDir, "partial.txt"), []byte("partial"), 0644)
	return f.err
}

func testSpec(t *testing.T, target string) Spec {
	t.Helper()
	return Spec{
		Name:           "my-dapp",
		Template:       scaffold.TemplateHardhat,
		TargetPath:     target,
		PackageManager: "npm",
	}
}

func newTestOrchestrator(mat materializer, runner execx.Runner) *Orchestrator {
	return NewOrchestrator(mat, runner, ui.NewPrinterTo(&bytes.Buffer{}))
}

func TestCreateFailsWhenDirectoryExists(t *testing.T) {
	parent := t.TempDir()
	target := filepath.Join(parent, "my-dapp")
	require.NoError(t, os.MkdirAll(filepath.Join(target, "keep"), 0755))

	runner := &stubRunner{}
	o := newTestOrchestrator(scaffold.NewMaterializer(""), runner)

	err := o.Create(context.Background(), testSpec(t, target))
	require.ErrorIs(t, err, ErrDirectoryExists)

	// Nothing was touched and nothing was spawned.
	assert.DirExists(t, filepath.Join(target, "keep"))
	assert.Empty(t, runner.calls)
}

func TestCreateRollsBackOnMaterializerFailure(t *testing.T) {
	parent := t.TempDir()
	target := filepath.Join(parent, "my-dapp")

	boom := errors.New("disk full")
	o := newTestOrchestrator(&failingMaterializer{err: boom}, &stubRunner{})

	err := o.Create(context.Background(), testSpec(t, target))
	require.ErrorIs(t, err, boom)

	// The filesystem is back in its pre-call state.
	assert.NoDirExists(t, target)
	assert.Equal(t, stateRolledBack, o.state)
}

func TestCreateFullSequence(t *testing.T) {
	parent := t.TempDir()
	target := filepath.Join(parent, "my-dapp")

	runner := &stubRunner{}
	o := newTestOrchestrator(scaffold.NewMaterializer(""), runner)

	require.NoError(t, o.Create(context.Background(), testSpec(t, target)))
	assert.Equal(t, stateDone, o.state)

	assert.FileExists(t, filepath.Join(target, "package.json"))
	assert.FileExists(t, filepath.Join(target, ".env"))
	assert.FileExists(t, filepath.Join(target, ".env.example"))
	assert.FileExists(t, filepath.Join(target, ".gitignore"))

	// Manifest identity was overlaid.
	raw, err := os.ReadFile(filepath.Join(target, "package.json"))
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"name": "my-dapp"`)
	assert.Contains(t, string(raw), `"version": "0.1.0"`)

	// git init/add/commit, then npm install.
	require.Len(t, runner.calls, 4)
	assert.Equal(t, "git", runner.calls[0].Name)
	assert.Equal(t, []string{"init"}, runner.calls[0].Args)
	assert.Equal(t, []string{"add", "-A"}, runner.calls[1].Args)
	assert.Equal(t, "commit", runner.calls[2].Args[0])
	assert.Equal(t, "npm", runner.calls[3].Name)
	assert.Equal(t, []string{"install"}, runner.calls[3].Args)
	assert.Equal(t, target, runner.calls[3].Dir)
}

func TestCreateGitFailureIsNonFatal(t *testing.T) {
	parent := t.TempDir()
	target := filepath.Join(parent, "my-dapp")

	runner := &stubRunner{fail: map[string]error{"git": errors.New("git not installed")}}
	var out bytes.Buffer
	o := NewOrchestrator(scaffold.NewMaterializer(""), runner, ui.NewPrinterTo(&out))

	require.NoError(t, o.Create(context.Background(), testSpec(t, target)))

	// Project survives; the failure is surfaced as a warning.
	assert.FileExists(t, filepath.Join(target, "package.json"))
	assert.Contains(t, out.String(), "warning")
	assert.Contains(t, out.String(), "git initialization")
}

func TestCreateInstallFailureIsNonFatal(t *testing.T) {
	parent := t.TempDir()
	target := filepath.Join(parent, "my-dapp")

	runner := &stubRunner{fail: map[string]error{"npm": errors.New("network down")}}
	var out bytes.Buffer
	o := NewOrchestrator(scaffold.NewMaterializer(""), runner, ui.NewPrinterTo(&out))

	spec := testSpec(t, target)
	spec.SkipGit = true
	require.NoError(t, o.Create(context.Background(), spec))

	assert.FileExists(t, filepath.Join(target, "package.json"))
	assert.Contains(t, out.String(), "dependency installation")
}

func TestCreateSkipFlags(t *testing.T) {
	parent := t.TempDir()
	target := filepath.Join(parent, "my-dapp")

	runner := &stubRunner{}
	o := newTestOrchestrator(scaffold.NewMaterializer(""), runner)

	spec := testSpec(t, target)
	spec.SkipGit = true
	spec.SkipInstall = true
	require.NoError(t, o.Create(context.Background(), spec))
	assert.Empty(t, runner.calls)
}

func TestYarnInstallInvocation(t *testing.T) {
	parent := t.TempDir()
	target := filepath.Join(parent, "my-dapp")

	runner := &stubRunner{}
	o := newTestOrchestrator(scaffold.NewMaterializer(""), runner)

	spec := testSpec(t, target)
	spec.SkipGit = true
	spec.PackageManager = "yarn"
	require.NoError(t, o.Create(context.Background(), spec))

	require.Len(t, runner.calls, 1)
	assert.Equal(t, "yarn", runner.calls[0].Name)
	assert.Empty(t, runner.calls[0].Args)
}
