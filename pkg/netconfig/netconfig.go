// Copyright 2025 Certen Protocol
//
// Static per-network contract addresses and RPC endpoints. Reimplements
// the validator's environment-driven Config (pkg/config/config.go) as an
// explicit, passed-around table rather than process-wide state: the
// source's mutable module-level selectedNetwork is exactly the ambient
// state this package exists to avoid (§9 Design Notes).

package netconfig

import "fmt"

// Network identifies a deployment environment. The bridge runs on exactly
// two: mainnet and testnet.
type Network string

const (
	Mainnet Network = "mainnet"
	Testnet Network = "testnet"
)

// EVMChainConfig holds the bridge factory address and chain id for one EVM
// deployment.
type EVMChainConfig struct {
	BridgeFactoryAddress string // 20-byte hex address, EIP-55 checksummed
	ChainID              uint64
}

// NearConfig holds the NEAR-side contract ids the SDK targets.
type NearConfig struct {
	BridgeContractID    string
	BTCConnectorID      string
	ZcashConnectorID    string
	WrappedBTCTokenID   string
	WrappedZcashTokenID string
}

// SolanaConfig holds the program ids involved in finalizing a transfer on
// Solana.
type SolanaConfig struct {
	LockerProgramID       string
	WormholeCoreProgramID string
	PostMessageShimID     string
	EventAuthorityID      string
}

// UTXOChainConfig holds the default Esplora-compatible API URL and RPC URL
// for a UTXO chain. Callers may override either at builder construction.
type UTXOChainConfig struct {
	DefaultAPIURL string
	DefaultRPCURL string
}

// Config is the complete static table for one network.
type Config struct {
	Network          Network
	EVM              map[string]EVMChainConfig // keyed by chain.Kind prefix: "eth", "base", "arb", "bnb", "pol"
	Near             NearConfig
	Solana           SolanaConfig
	UTXO             map[string]UTXOChainConfig // keyed by chain.Kind prefix: "btc", "zec"
	BridgeAPIBaseURL string
}

var tables = map[Network]Config{
	Mainnet: {
		Network: Mainnet,
		EVM: map[string]EVMChainConfig{
			"eth":  {BridgeFactoryAddress: "0xe00c629aFACCf0d41d99d898a4850ACd8C75C00c", ChainID: 1},
			"base": {BridgeFactoryAddress: "0xB9d32733D4fC3bD1F3Ffb6eB34446C0C0A8b7fa6", ChainID: 8453},
			"arb":  {BridgeFactoryAddress: "0xd025F38bC2e2A84B8a95868De27BC0CD4Ef8D1Aa", ChainID: 42161},
			"bnb":  {BridgeFactoryAddress: "0x92fd31194b47Fc299e5A55eC2dd5D2A4dAE8C17D", ChainID: 56},
			"pol":  {BridgeFactoryAddress: "0x73BD87C8d1c6D7F6fF7f35a4e3B5D8e3E6B3C8f0", ChainID: 137},
		},
		Near: NearConfig{
			BridgeContractID:    "bridge.near",
			BTCConnectorID:      "btc-connector.bridge.near",
			ZcashConnectorID:    "zcash-connector.bridge.near",
			WrappedBTCTokenID:   "nbtc.bridge.near",
			WrappedZcashTokenID: "zec.omft.near",
		},
		Solana: SolanaConfig{
			LockerProgramID:       "omnqP4SuKi9YhBvkzQDxw1xHEbUBYXv8wE8CQ3WP1mw",
			WormholeCoreProgramID: "worm2ZoG2kUd4vFXhvjh93UUH596ayRfgQ2MgjNMTth",
			PostMessageShimID:     "EtZMZM22ViKMo4r5y4Anovs3wKQ2owUmDpjygnMMpTiL",
			EventAuthorityID:      "HDwcJBJXjL9FpJ7UBsYBtaDjsBUhuLCUYoz3zr8SWWaQ",
		},
		UTXO: map[string]UTXOChainConfig{
			"btc": {DefaultAPIURL: "https://blockstream.info/api", DefaultRPCURL: ""},
			"zec": {DefaultAPIURL: "https://zec.rocks/esplora", DefaultRPCURL: ""},
		},
		BridgeAPIBaseURL: "https://mainnet.api.bridge.near.org",
	},
	Testnet: {
		Network: Testnet,
		EVM: map[string]EVMChainConfig{
			"eth":  {BridgeFactoryAddress: "0x68a86e0Ea5B1d39F385CB91cD3c7a7e7E6C71f48", ChainID: 11155111},
			"base": {BridgeFactoryAddress: "0x0B3Bf7c24F6318c5F0C4C1f4c3e6C0dA9D5C1A8e", ChainID: 84532},
			"arb":  {BridgeFactoryAddress: "0x0f0F2f5A95A1627F1FDE6Ab7DAfD6e4B8e7cD3A9", ChainID: 421614},
			"bnb":  {BridgeFactoryAddress: "0x3bBf5e0D74e97F46e7B01Fb1Cf5a3D91d3fB1e8A", ChainID: 97},
			"pol":  {BridgeFactoryAddress: "0x9C1a8e4F5b3E6d7c0A2b5D9e4F1a7C3b8E6D2f0A", ChainID: 80002},
		},
		Near: NearConfig{
			BridgeContractID:    "bridge.testnet",
			BTCConnectorID:      "btc-connector.bridge.testnet",
			ZcashConnectorID:    "zcash-connector.bridge.testnet",
			WrappedBTCTokenID:   "nbtc.bridge.testnet",
			WrappedZcashTokenID: "zec.omft.testnet",
		},
		Solana: SolanaConfig{
			LockerProgramID:       "Gy1XPwYZURfBzHiGPvVCJpzhuQgBKdxkfNpaGFJlT8Xa",
			WormholeCoreProgramID: "3u8hJUVTA4jH1wYAyUur7FFZVQ8H635K3tSHHF4ssjQ5",
			PostMessageShimID:     "EFaNWErqAtVWufdNb7yofSHHfWFos843DFpu4JBsJMxh",
			EventAuthorityID:      "HNYwPHfZrW9xaujxkm5uNcSDziwAE4s3nvHD4HKZoXjS",
		},
		UTXO: map[string]UTXOChainConfig{
			"btc": {DefaultAPIURL: "https://blockstream.info/testnet/api", DefaultRPCURL: ""},
			"zec": {DefaultAPIURL: "https://zec.rocks/testnet/esplora", DefaultRPCURL: ""},
		},
		BridgeAPIBaseURL: "https://testnet.api.bridge.near.org",
	},
}

// Get returns the static table for network, or an error if network is not
// one of the two known deployments.
func Get(network Network) (Config, error) {
	cfg, ok := tables[network]
	if !ok {
		return Config{}, fmt.Errorf("netconfig: unknown network %q", network)
	}
	return cfg, nil
}

// EVM looks up the chain configuration for an EVM chain prefix ("eth",
// "base", "arb", "bnb", "pol").
func (c Config) EVMChain(prefix string) (EVMChainConfig, error) {
	cfg, ok := c.EVM[prefix]
	if !ok {
		return EVMChainConfig{}, fmt.Errorf("netconfig: no EVM config for chain %q on %s", prefix, c.Network)
	}
	return cfg, nil
}

// UTXOChain looks up the chain configuration for a UTXO chain prefix
// ("btc", "zec").
func (c Config) UTXOChain(prefix string) (UTXOChainConfig, error) {
	cfg, ok := c.UTXO[prefix]
	if !ok {
		return UTXOChainConfig{}, fmt.Errorf("netconfig: no UTXO config for chain %q on %s", prefix, c.Network)
	}
	return cfg, nil
}
