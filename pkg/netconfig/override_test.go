// Copyright 2025 Certen Protocol

package netconfig

import (
	"os"
	"path/filepath"
	"testing"
)

func writeOverrideFile(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "override.yaml")
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatalf("writing fixture override file: %v", err)
	}
	return path
}

func TestLoadOverrideSubstitutesEnvVars(t *testing.T) {
	t.Setenv("TEST_BRIDGE_API_URL", "https://custom.example.com")
	path := writeOverrideFile(t, "bridge_api_base_url: ${TEST_BRIDGE_API_URL}\n")

	override, err := LoadOverride(path)
	if err != nil {
		t.Fatalf("LoadOverride: %v", err)
	}
	if override.BridgeAPIBaseURL != "https://custom.example.com" {
		t.Errorf("BridgeAPIBaseURL = %q, want the substituted env value", override.BridgeAPIBaseURL)
	}
}

func TestLoadOverrideFallsBackToDefault(t *testing.T) {
	path := writeOverrideFile(t, "bridge_api_base_url: ${UNSET_TEST_VAR:-https://fallback.example.com}\n")

	override, err := LoadOverride(path)
	if err != nil {
		t.Fatalf("LoadOverride: %v", err)
	}
	if override.BridgeAPIBaseURL != "https://fallback.example.com" {
		t.Errorf("BridgeAPIBaseURL = %q, want fallback default", override.BridgeAPIBaseURL)
	}
}

func TestApplyMergesPerChainOverridesOnly(t *testing.T) {
	base, err := Get(Mainnet)
	if err != nil {
		t.Fatal(err)
	}

	override := Override{
		EVM: map[string]EVMChainConfig{
			"eth": {BridgeFactoryAddress: "0xdeadbeef00000000000000000000000000dead", ChainID: 1},
		},
	}
	merged := base.Apply(override)

	eth, err := merged.EVMChain("eth")
	if err != nil {
		t.Fatal(err)
	}
	if eth.BridgeFactoryAddress != "0xdeadbeef00000000000000000000000000dead" {
		t.Errorf("eth.BridgeFactoryAddress = %q, want overridden address", eth.BridgeFactoryAddress)
	}

	base_, err := base.EVMChain("base")
	if err != nil {
		t.Fatal(err)
	}
	merged_, err := merged.EVMChain("base")
	if err != nil {
		t.Fatal(err)
	}
	if merged_.BridgeFactoryAddress != base_.BridgeFactoryAddress {
		t.Errorf("non-overridden chain %q should be untouched by Apply", "base")
	}
}

func TestApplyLeavesBaseUntouchedWithEmptyOverride(t *testing.T) {
	base, err := Get(Testnet)
	if err != nil {
		t.Fatal(err)
	}
	merged := base.Apply(Override{})
	if merged.BridgeAPIBaseURL != base.BridgeAPIBaseURL {
		t.Errorf("empty override changed BridgeAPIBaseURL: %q -> %q", base.BridgeAPIBaseURL, merged.BridgeAPIBaseURL)
	}
}
