package deploy

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/ethereum/go-ethereum/crypto"

	"github.com/rootstock-community/create-rsk-dapp/internal/scaffold"
	"github.com/rootstock-community/create-rsk-dapp/internal/ui"
)

var signingKeyPattern = regexp.MustCompile(`^(0x)?[0-9a-fA-F]{64}$`)

func stripHexPrefix(s string) string {
	return strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
}

// ValidateSigningKey checks the strict 64-hex-digit format, with or without
// a 0x prefix, and that the value is a usable secp256k1 scalar.
func ValidateSigningKey(key string) error {
	key = strings.TrimSpace(key)
	if !signingKeyPattern.MatchString(key) {
		return fmt.Errorf("signing key must be 64 hexadecimal characters, optionally 0x-prefixed")
	}
	if _, err := crypto.HexToECDSA(stripHexPrefix(key)); err != nil {
		return fmt.Errorf("signing key is not a valid private key: %w", err)
	}
	return nil
}

// ensureSigningKey collects a key interactively when no secrets file exists
// yet and writes a minimal one. The prefix is stripped before storage.
func (r *Runner) ensureSigningKey(envPath string) error {
	if _, err := os.Stat(envPath); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to check %s: %w", scaffold.EnvFileName, err)
	}

	key, err := r.prompter.Ask(ui.Question{
		Text:     "Enter the deployer private key (64 hex characters)",
		Validate: ValidateSigningKey,
	})
	if err != nil {
		return err
	}

	content := fmt.Sprintf("# Do NOT commit this file.\n%s=%s\n%s=\n",
		scaffold.PrivateKeyVar, stripHexPrefix(strings.TrimSpace(key)), scaffold.ContractAddressVar)

	if err := os.WriteFile(envPath, []byte(content), 0600); err != nil {
		return fmt.Errorf("failed to write %s: %w", scaffold.EnvFileName, err)
	}

	return nil
}

// ReadEnvValue returns the value of key in the env file, empty when absent.
func ReadEnvValue(path, key string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	for _, line := range strings.Split(string(data), "\n") {
		if value, ok := strings.CutPrefix(line, key+"="); ok {
			return strings.TrimSpace(value), nil
		}
	}

	return "", nil
}

// UpsertEnvValue replaces an existing KEY= line in place, or appends one if
// absent, leaving every other line untouched.
func UpsertEnvValue(path, key, value string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	lines := strings.Split(string(data), "\n")
	replaced := false
	for i, line := range lines {
		if strings.HasPrefix(line, key+"=") {
			lines[i] = key + "=" + value
			replaced = true
			break
		}
	}

	if !replaced {
		// Append before a trailing empty line when present, so the file
		// keeps ending in a newline.
		if n := len(lines); n > 0 && lines[n-1] == "" {
			lines = append(lines[:n-1], key+"="+value, "")
		} else {
			lines = append(lines, key+"="+value)
		}
	}

	return os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0600)
}
