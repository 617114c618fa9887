// Package deploy detects the contract toolchain of an existing project,
// invokes its deployment entry point and records the deployed address.
package deploy

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"

	"github.com/ethereum/go-ethereum/common"

	"github.com/rootstock-community/create-rsk-dapp/internal/execx"
	"github.com/rootstock-community/create-rsk-dapp/internal/logger"
	"github.com/rootstock-community/create-rsk-dapp/internal/network"
	"github.com/rootstock-community/create-rsk-dapp/internal/scaffold"
	"github.com/rootstock-community/create-rsk-dapp/internal/ui"
)

var (
	// ErrNotAProject is returned when the working directory carries no root
	// manifest.
	ErrNotAProject = errors.New("no package.json found, this does not look like a generated project")
	// ErrNoToolchainDetected is returned unless exactly one supported
	// toolchain marker is present.
	ErrNoToolchainDetected = errors.New("could not detect a single contract toolchain")
)

// addressPattern is a best-effort scan over arbitrary toolchain output. It
// tolerates both "deployed to:" (Hardhat) and "deployed at:" (Foundry)
// phrasing; a miss is not an error, deployment may still have succeeded.
var addressPattern = regexp.MustCompile(`(?i)deployed\s+(?:to|at):?\s*(0x[0-9a-fA-F]{40})`)

type (
	// Options is the validated input for one deploy invocation.
	Options struct {
		Network  string
		Contract string
	}

	// Result carries the extracted contract address, empty when none was
	// recognized in the toolchain output.
	Result struct {
		Address   string
		RawOutput string
	}

	// Runner executes the deployment flow inside workDir.
	Runner struct {
		workDir  string
		exec     execx.Runner
		prompter ui.Prompter
		printer  *ui.Printer
		logger   *slog.Logger
	}
)

func NewRunner(workDir string, exec execx.Runner, prompter ui.Prompter, printer *ui.Printer) *Runner {
	return &Runner{
		workDir:  workDir,
		exec:     exec,
		prompter: prompter,
		printer:  printer,
		logger:   logger.Named("deploy_runner"),
	}
}

// Deploy compiles and deploys the project's contract to the given network,
// then persists the parsed contract address into the secrets file.
func (r *Runner) Deploy(ctx context.Context, opts Options) (Result, error) {
	netCfg, err := network.Lookup(opts.Network)
	if err != nil {
		return Result{}, err
	}

	if _, err := os.Stat(filepath.Join(r.workDir, "package.json")); err != nil {
		return Result{}, ErrNotAProject
	}

	envPath := filepath.Join(r.workDir, scaffold.EnvFileName)
	if err := r.ensureSigningKey(envPath); err != nil {
		return Result{}, err
	}

	tc, err := detectToolchain(r.workDir)
	if err != nil {
		return Result{}, err
	}

	cmd, err := r.buildCommand(tc, netCfg, opts.Contract, envPath)
	if err != nil {
		return Result{}, err
	}

	r.printer.Phase(fmt.Sprintf("Deploying with %s to %s", tc, netCfg.DisplayName))
	r.logger.With("toolchain", string(tc)).With("network", opts.Network).Info("running deployment command")

	res, err := r.exec.Run(ctx, cmd)
	if err != nil {
		var exitErr *execx.ExitError
		if errors.As(err, &exitErr) {
			return Result{RawOutput: exitErr.Output}, fmt.Errorf("deployment command failed: %w\n%s", err, exitErr.Output)
		}
		return Result{}, fmt.Errorf("deployment command failed: %w", err)
	}

	result := Result{RawOutput: res.Output}
	if address, ok := ExtractAddress(res.Output); ok {
		result.Address = address
		if err := UpsertEnvValue(envPath, scaffold.ContractAddressVar, address); err != nil {
			return result, fmt.Errorf("failed to record contract address: %w", err)
		}
		r.printer.Success("Contract deployed at %s", address)
		r.printer.Info("Explorer: %s", netCfg.AddressURL(address))
	} else {
		r.logger.Info("no contract address recognized in toolchain output")
		r.printer.Info("Deployment finished; no contract address was recognized in the output.")
	}

	return result, nil
}

// ExtractAddress scans toolchain output for a deployed-contract address.
// The match is case-insensitive but the address casing is preserved.
func ExtractAddress(output string) (string, bool) {
	match := addressPattern.FindStringSubmatch(output)
	if match == nil {
		return "", false
	}
	if !common.IsHexAddress(match[1]) {
		return "", false
	}
	return match[1], true
}
