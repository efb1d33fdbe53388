// Copyright 2025 Certen Protocol
//
// Optional YAML override loading for the static network tables. Adapts
// the validator's anchor config loader (pkg/config/anchor_config.go) —
// same ${VAR_NAME} / ${VAR_NAME:-default} environment-variable
// substitution ahead of yaml.Unmarshal — to this package's much smaller
// surface: operators overriding a handful of addresses or endpoints
// without forking netconfig's Go source.

package netconfig

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

// envVarPattern matches ${VAR_NAME} or ${VAR_NAME:-default}.
var envVarPattern = regexp.MustCompile(`\$\{([^}:]+)(:-([^}]*))?\}`)

func substituteEnvVars(content string) string {
	return envVarPattern.ReplaceAllStringFunc(content, func(match string) string {
		groups := envVarPattern.FindStringSubmatch(match)
		name, def := groups[1], groups[3]
		if v, ok := os.LookupEnv(name); ok {
			return v
		}
		return def
	})
}

// Override holds the subset of Config an operator may want to override
// from a file rather than accepting the compiled-in table. Every field
// is optional; zero values (empty string, nil map) leave the base
// Config entry untouched.
type Override struct {
	EVM              map[string]EVMChainConfig `yaml:"evm"`
	Near             *NearConfig               `yaml:"near"`
	Solana           *SolanaConfig             `yaml:"solana"`
	UTXO             map[string]UTXOChainConfig `yaml:"utxo"`
	BridgeAPIBaseURL string                    `yaml:"bridge_api_base_url"`
}

// LoadOverride reads an Override document from path, substituting
// ${VAR_NAME} references against the process environment before
// parsing YAML.
func LoadOverride(path string) (Override, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Override{}, fmt.Errorf("netconfig: reading override file %s: %w", path, err)
	}
	expanded := substituteEnvVars(string(data))

	var override Override
	if err := yaml.Unmarshal([]byte(expanded), &override); err != nil {
		return Override{}, fmt.Errorf("netconfig: parsing override file %s: %w", path, err)
	}
	return override, nil
}

// Apply merges override onto base, returning a new Config. Per-chain
// maps are merged key-by-key so an override naming only "eth" leaves
// the other EVM chains' base entries intact.
func (base Config) Apply(override Override) Config {
	merged := base
	merged.EVM = mergeEVM(base.EVM, override.EVM)
	merged.UTXO = mergeUTXO(base.UTXO, override.UTXO)
	if override.Near != nil {
		merged.Near = *override.Near
	}
	if override.Solana != nil {
		merged.Solana = *override.Solana
	}
	if override.BridgeAPIBaseURL != "" {
		merged.BridgeAPIBaseURL = override.BridgeAPIBaseURL
	}
	return merged
}

func mergeEVM(base, override map[string]EVMChainConfig) map[string]EVMChainConfig {
	if len(override) == 0 {
		return base
	}
	merged := make(map[string]EVMChainConfig, len(base))
	for k, v := range base {
		merged[k] = v
	}
	for k, v := range override {
		merged[k] = v
	}
	return merged
}

func mergeUTXO(base, override map[string]UTXOChainConfig) map[string]UTXOChainConfig {
	if len(override) == 0 {
		return base
	}
	merged := make(map[string]UTXOChainConfig, len(base))
	for k, v := range base {
		merged[k] = v
	}
	for k, v := range override {
		merged[k] = v
	}
	return merged
}
