package scaffold

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/rootstock-community/create-rsk-dapp/internal/network"
)

const (
	// EnvFileName is the secrets file generated projects read their signing
	// key and endpoints from. Never committed; .gitignore excludes it.
	EnvFileName = ".env"
	// EnvExampleFileName is the redacted sibling that is safe to commit.
	EnvExampleFileName = ".env.example"

	// PrivateKeyVar and ContractAddressVar are the env keys the deploy
	// command reads and maintains.
	PrivateKeyVar      = "PRIVATE_KEY"
	ContractAddressVar = "CONTRACT_ADDRESS"
)

var envValuePattern = regexp.MustCompile(`=.*$`)

// WriteEnvFiles emits the project's secrets file and its redacted template.
// Called only during fresh project creation, so both overwrite
// unconditionally.
func WriteEnvFiles(projectDir string, tpl Template) error {
	testnet, err := network.Lookup(network.Testnet)
	if err != nil {
		return err
	}
	mainnet, err := network.Lookup(network.Mainnet)
	if err != nil {
		return err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# Secrets for the %s toolchain. Do NOT commit this file.\n", tpl)
	fmt.Fprintf(&b, "# The private key below signs real transactions on the configured networks.\n")
	fmt.Fprintf(&b, "%s=your_private_key_here\n", PrivateKeyVar)
	fmt.Fprintf(&b, "RSK_TESTNET_RPC_URL=%s\n", testnet.RPCURL)
	fmt.Fprintf(&b, "RSK_MAINNET_RPC_URL=%s\n", mainnet.RPCURL)
	fmt.Fprintf(&b, "VITE_RSK_TESTNET_RPC_URL=%s\n", testnet.RPCURL)
	fmt.Fprintf(&b, "VITE_RSK_MAINNET_RPC_URL=%s\n", mainnet.RPCURL)
	fmt.Fprintf(&b, "RSK_TESTNET_EXPLORER_URL=%s\n", testnet.ExplorerURL)
	fmt.Fprintf(&b, "RSK_MAINNET_EXPLORER_URL=%s\n", mainnet.ExplorerURL)
	fmt.Fprintf(&b, "RSK_TESTNET_CHAIN_ID=%d\n", testnet.ChainID)
	fmt.Fprintf(&b, "RSK_MAINNET_CHAIN_ID=%d\n", mainnet.ChainID)
	fmt.Fprintf(&b, "%s=\n", ContractAddressVar)

	content := b.String()

	if err := os.WriteFile(filepath.Join(projectDir, EnvFileName), []byte(content), 0600); err != nil {
		return fmt.Errorf("failed to write %s: %w", EnvFileName, err)
	}

	if err := os.WriteFile(filepath.Join(projectDir, EnvExampleFileName), []byte(Redact(content)), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", EnvExampleFileName, err)
	}

	return nil
}

// Redact erases every value in KEY=value lines, keeping keys, comments and
// line order intact. The result carries no secrets and can be distributed.
func Redact(envContent string) string {
	lines := strings.Split(envContent, "\n")
	for i, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "#") {
			continue
		}
		if strings.Contains(line, "=") {
			lines[i] = envValuePattern.ReplaceAllString(line, "=")
		}
	}
	return strings.Join(lines, "\n")
}
