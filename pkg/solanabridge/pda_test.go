// Copyright 2025 Certen Protocol

package solanabridge

import (
	"crypto/sha256"
	"testing"

	"github.com/gagliardetto/solana-go"
)

var testProgramID = solana.MustPublicKeyFromBase58("omnqP4SuKi9YhBvkzQDxw1xHEbUBYXv8wE8CQ3WP1mw")

func TestConfigPDADeterministic(t *testing.T) {
	a, bumpA, err := ConfigPDA(testProgramID)
	if err != nil {
		t.Fatalf("ConfigPDA: %v", err)
	}
	b, bumpB, err := ConfigPDA(testProgramID)
	if err != nil {
		t.Fatalf("ConfigPDA: %v", err)
	}
	if a != b || bumpA != bumpB {
		t.Errorf("ConfigPDA not deterministic: (%s,%d) vs (%s,%d)", a, bumpA, b, bumpB)
	}
}

func TestWrappedMintPDAShortTokenZeroPadded(t *testing.T) {
	token := []byte{0x01, 0x02, 0x03}
	pda, _, err := WrappedMintPDA(testProgramID, token)
	if err != nil {
		t.Fatalf("WrappedMintPDA: %v", err)
	}

	var expectSeed [32]byte
	copy(expectSeed[32-len(token):], token)
	want, _, err := solana.FindProgramAddress([][]byte{WrappedMintSeed, expectSeed[:]}, testProgramID)
	if err != nil {
		t.Fatalf("FindProgramAddress: %v", err)
	}
	if pda != want {
		t.Errorf("WrappedMintPDA = %s, want %s", pda, want)
	}
}

func TestWrappedMintPDALongTokenHashed(t *testing.T) {
	token := make([]byte, 40)
	for i := range token {
		token[i] = byte(i)
	}
	pda, _, err := WrappedMintPDA(testProgramID, token)
	if err != nil {
		t.Fatalf("WrappedMintPDA: %v", err)
	}

	hashed := sha256.Sum256(token)
	want, _, err := solana.FindProgramAddress([][]byte{WrappedMintSeed, hashed[:]}, testProgramID)
	if err != nil {
		t.Fatalf("FindProgramAddress: %v", err)
	}
	if pda != want {
		t.Errorf("WrappedMintPDA (hashed) = %s, want %s", pda, want)
	}
}

func TestVaultPDADependsOnMint(t *testing.T) {
	mintA := solana.MustPublicKeyFromBase58("So11111111111111111111111111111111111111112")
	mintB := solana.MustPublicKeyFromBase58("EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v")
	a, _, _ := VaultPDA(testProgramID, mintA)
	b, _, _ := VaultPDA(testProgramID, mintB)
	if a == b {
		t.Error("VaultPDA should differ across mints")
	}
}
