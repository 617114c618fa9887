// Package network holds the static Rootstock network parameters used by the
// scaffolder and the deploy command.
package network

import "fmt"

// ErrUnknownNetwork is returned by Lookup for identifiers outside the
// registered set.
var ErrUnknownNetwork = fmt.Errorf("unknown network")

type (
	Currency struct {
		Name     string
		Symbol   string
		Decimals int
	}

	// Config describes one Rootstock network. Instances are immutable; the
	// registry is built once at process start and never mutates.
	Config struct {
		Identifier  string
		DisplayName string
		ChainID     int64
		RPCURL      string
		ExplorerURL string
		Currency    Currency
	}
)

const (
	Testnet = "testnet"
	Mainnet = "mainnet"
)

var registry = map[string]Config{
	Testnet: {
		Identifier:  Testnet,
		DisplayName: "Rootstock Testnet",
		ChainID:     31,
		RPCURL:      "https://public-node.testnet.rsk.co",
		ExplorerURL: "https://explorer.testnet.rootstock.io",
		Currency:    Currency{Name: "Test Rootstock Bitcoin", Symbol: "tRBTC", Decimals: 18},
	},
	Mainnet: {
		Identifier:  Mainnet,
		DisplayName: "Rootstock Mainnet",
		ChainID:     30,
		RPCURL:      "https://public-node.rsk.co",
		ExplorerURL: "https://explorer.rootstock.io",
		Currency:    Currency{Name: "Rootstock Bitcoin", Symbol: "RBTC", Decimals: 18},
	},
}

// Lookup resolves a network identifier to its configuration.
func Lookup(identifier string) (Config, error) {
	cfg, ok := registry[identifier]
	if !ok {
		return Config{}, fmt.Errorf("%w: %q (expected %q or %q)", ErrUnknownNetwork, identifier, Testnet, Mainnet)
	}
	return cfg, nil
}

// All returns the registered networks in prompt order, testnet first.
func All() []Config {
	return []Config{registry[Testnet], registry[Mainnet]}
}

// ChainIDHex renders the chain id the way EIP-3085 wallet requests expect.
func (c Config) ChainIDHex() string {
	return fmt.Sprintf("0x%x", c.ChainID)
}

// AddressURL builds the explorer page for a deployed contract address.
func (c Config) AddressURL(address string) string {
	return c.ExplorerURL + "/address/" + address
}
