package deploy

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rootstock-community/create-rsk-dapp/internal/execx"
	"github.com/rootstock-community/create-rsk-dapp/internal/network"
	"github.com/rootstock-community/create-rsk-dapp/internal/scaffold"
)

// toolchain identifies the contract stack found in a project tree.
type toolchain string

const (
	toolchainHardhat toolchain = "hardhat"
	toolchainFoundry toolchain = "foundry"
)

var hardhatMarkers = []string{"hardhat.config.js", "hardhat.config.cjs", "hardhat.config.ts"}
var foundryMarkers = []string{"foundry.toml", filepath.Join("contracts", "foundry.toml")}

// detectToolchain resolves which stack a project uses. Exactly one family
// of markers must be present.
func detectToolchain(workDir string) (toolchain, error) {
	hardhat := anyExists(workDir, hardhatMarkers)
	foundry := anyExists(workDir, foundryMarkers)

	switch {
	case hardhat && foundry:
		return "", fmt.Errorf("%w: both hardhat and foundry markers present", ErrNoToolchainDetected)
	case hardhat:
		return toolchainHardhat, nil
	case foundry:
		return toolchainFoundry, nil
	default:
		return "", fmt.Errorf("%w: no hardhat config or foundry.toml found", ErrNoToolchainDetected)
	}
}

func anyExists(workDir string, relPaths []string) bool {
	for _, rel := range relPaths {
		if _, err := os.Stat(filepath.Join(workDir, rel)); err == nil {
			return true
		}
	}
	return false
}

// buildCommand assembles the compile+deploy invocation for the detected
// toolchain, parameterized by the network's RPC endpoint. The signing key
// is handed to the subprocess through the environment, never argv.
func (r *Runner) buildCommand(tc toolchain, netCfg network.Config, contract, envPath string) (execx.Cmd, error) {
	key, err := ReadEnvValue(envPath, scaffold.PrivateKeyVar)
	if err != nil {
		return execx.Cmd{}, fmt.Errorf("failed to read signing key: %w", err)
	}
	env := map[string]string{scaffold.PrivateKeyVar: "0x" + stripHexPrefix(key)}

	switch tc {
	case toolchainHardhat:
		script := "scripts/deploy.js"
		if contract != "" {
			if candidate := fmt.Sprintf("scripts/deploy-%s.js", contract); anyExists(r.workDir, []string{candidate}) {
				script = candidate
			}
		}
		hardhatNetwork := "rskTestnet"
		if netCfg.Identifier == network.Mainnet {
			hardhatNetwork = "rskMainnet"
		}
		return execx.Cmd{
			Name: "npx",
			Args: []string{"hardhat", "run", script, "--network", hardhatNetwork},
			Dir:  r.workDir,
			Env:  env,
		}, nil

	case toolchainFoundry:
		contractsDir := filepath.Join(r.workDir, "contracts")
		if !anyExists(r.workDir, []string{filepath.Join("contracts", "foundry.toml")}) {
			contractsDir = r.workDir
		}
		script := "script/Deploy.s.sol"
		if contract != "" {
			if candidate := filepath.Join("script", contract+".s.sol"); anyExists(contractsDir, []string{candidate}) {
				script = candidate
			}
		}
		return execx.Cmd{
			Name: "forge",
			Args: []string{"script", script, "--rpc-url", netCfg.RPCURL, "--broadcast"},
			Dir:  contractsDir,
			Env:  env,
		}, nil

	default:
		return execx.Cmd{}, fmt.Errorf("%w: %q", ErrNoToolchainDetected, tc)
	}
}
