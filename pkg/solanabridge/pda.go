// Copyright 2025 Certen Protocol
//
// Program-Derived Address derivation for the Solana bridge program
// (§4.4). Five seeded addresses, derived with solana-go's
// FindProgramAddress the same way the teacher's pkg/ethereum/client.go
// derives deterministic addresses from constants, generalized to
// Solana's bump-seed scheme.

package solanabridge

import (
	"crypto/sha256"

	"github.com/gagliardetto/solana-go"

	"github.com/certen/omni-bridge-sdk/pkg/bridgeerr"
)

// Seed prefixes, fixed by the bridge program's IDL (§4.4). Must match the
// on-chain program's seed constants exactly.
var (
	ConfigSeed      = []byte("config")
	AuthoritySeed   = []byte("authority")
	WrappedMintSeed = []byte("wrapped_mint")
	VaultSeed       = []byte("vault")
	SolVaultSeed    = []byte("sol_vault")
)

// ConfigPDA derives the program's singleton config account.
func ConfigPDA(programID solana.PublicKey) (solana.PublicKey, uint8, error) {
	return find(programID, ConfigSeed)
}

// AuthorityPDA derives the mint-authority PDA used for bridged (mint/burn)
// tokens.
func AuthorityPDA(programID solana.PublicKey) (solana.PublicKey, uint8, error) {
	return find(programID, AuthoritySeed)
}

// WrappedMintPDA derives the wrapped-mint PDA for an origin token
// identifier. Tokens are identified off-chain by an opaque byte string
// (often the origin chain's address bytes); the Anchor program hashes
// anything over 32 bytes with sha256 and zero-pads anything shorter, a
// rule this derivation must match byte-exact (§4.4).
func WrappedMintPDA(programID solana.PublicKey, token []byte) (solana.PublicKey, uint8, error) {
	var tokenBytes [32]byte
	if len(token) > 32 {
		tokenBytes = sha256.Sum256(token)
	} else {
		copy(tokenBytes[32-len(token):], token)
	}
	return find(programID, WrappedMintSeed, tokenBytes[:])
}

// VaultPDA derives the vault PDA holding a native mint's locked tokens.
func VaultPDA(programID, mint solana.PublicKey) (solana.PublicKey, uint8, error) {
	return find(programID, VaultSeed, mint.Bytes())
}

// SolVaultPDA derives the PDA holding locked native SOL.
func SolVaultPDA(programID solana.PublicKey) (solana.PublicKey, uint8, error) {
	return find(programID, SolVaultSeed)
}

func find(programID solana.PublicKey, seeds ...[]byte) (solana.PublicKey, uint8, error) {
	pda, bump, err := solana.FindProgramAddress(seeds, programID)
	if err != nil {
		return solana.PublicKey{}, 0, bridgeerr.NewEncodingError(bridgeerr.KindMalformedAddress, "deriving PDA: %v", err)
	}
	return pda, bump, nil
}
