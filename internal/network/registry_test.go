package network

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	testnet, err := Lookup(Testnet)
	require.NoError(t, err)
	assert.Equal(t, int64(31), testnet.ChainID)
	assert.Equal(t, "https://public-node.testnet.rsk.co", testnet.RPCURL)
	assert.Equal(t, "https://explorer.testnet.rootstock.io", testnet.ExplorerURL)
	assert.Equal(t, "tRBTC", testnet.Currency.Symbol)

	mainnet, err := Lookup(Mainnet)
	require.NoError(t, err)
	assert.Equal(t, int64(30), mainnet.ChainID)
	assert.Equal(t, "https://public-node.rsk.co", mainnet.RPCURL)
	assert.Equal(t, "RBTC", mainnet.Currency.Symbol)
}

func TestLookupUnknown(t *testing.T) {
	_, err := Lookup("goerli")
	require.ErrorIs(t, err, ErrUnknownNetwork)
}

func TestAllOrder(t *testing.T) {
	all := All()
	require.Len(t, all, 2)
	assert.Equal(t, Testnet, all[0].Identifier)
	assert.Equal(t, Mainnet, all[1].Identifier)
}

func TestAddressURL(t *testing.T) {
	cfg, err := Lookup(Mainnet)
	require.NoError(t, err)
	assert.Equal(t,
		"https://explorer.rootstock.io/address/0x1234567890abcdef1234567890abcdef12345678",
		cfg.AddressURL("0x1234567890abcdef1234567890abcdef12345678"))
}
