// Copyright 2025 Certen Protocol
//
// OmniAddress — chain-tagged address parsing and formatting.
// Parsing is strict: unknown prefixes are rejected outright, and the
// native-address portion is validated with the rules the destination
// chain itself enforces (EVM checksum, NEAR account-id grammar, Solana
// base58-ed25519, Bitcoin/Zcash bech32 or base58check with the correct
// network byte).

package chain

import (
	"crypto/sha256"
	"fmt"
	"regexp"
	"strings"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/ethereum/go-ethereum/common"
	"github.com/mr-tron/base58"
)

// Address is the canonical cross-chain identifier: <chain-prefix>:<native>.
type Address struct {
	Chain  Kind
	Native string
}

// String renders the address back to its wire form.
func (a Address) String() string {
	return fmt.Sprintf("%s:%s", a.Chain.Prefix(), a.Native)
}

// nearAccountID matches NEAR's account-id grammar: lowercase alphanumeric
// segments of 2-64 chars separated by single '.', '_' or '-', no leading,
// trailing, or doubled separators. Implicit (64-hex) accounts also match.
var nearAccountID = regexp.MustCompile(`^(?:[a-z0-9]+(?:[-_][a-z0-9]+)*)(?:\.(?:[a-z0-9]+(?:[-_][a-z0-9]+)*))*$`)

// Parse splits and validates an OmniAddress string of the form
// "<prefix>:<native>". Unknown prefixes are rejected before any
// chain-specific validation runs.
func Parse(raw string) (Address, error) {
	prefix, native, ok := strings.Cut(raw, ":")
	if !ok {
		return Address{}, fmt.Errorf("chain: malformed omni address %q: missing ':'", raw)
	}
	kind, err := ParseKind(prefix)
	if err != nil {
		return Address{}, fmt.Errorf("chain: %w", err)
	}
	if native == "" {
		return Address{}, fmt.Errorf("chain: omni address %q has empty native portion", raw)
	}
	if err := validateNative(kind, native); err != nil {
		return Address{}, fmt.Errorf("chain: %w", err)
	}
	return Address{Chain: kind, Native: native}, nil
}

// Format constructs and validates an OmniAddress from its parts.
func Format(kind Kind, native string) (Address, error) {
	if !kind.IsValid() {
		return Address{}, fmt.Errorf("chain: unknown chain kind %q", kind)
	}
	if err := validateNative(kind, native); err != nil {
		return Address{}, fmt.Errorf("chain: %w", err)
	}
	return Address{Chain: kind, Native: native}, nil
}

func validateNative(kind Kind, native string) error {
	switch kind {
	case Eth, Base, Arb, Bnb, Pol:
		return validateEVMAddress(native)
	case Near:
		return validateNearAccount(native)
	case Sol:
		return validateSolanaAddress(native)
	case Btc:
		return validateUTXOAddress(native, &chaincfg.MainNetParams, []byte{0x00}, "bc")
	case Zcash:
		return validateZcashAddress(native)
	default:
		return fmt.Errorf("unknown chain kind %q", kind)
	}
}

// validateEVMAddress requires a well-formed 20-byte hex address. If the
// input is mixed-case it must satisfy the EIP-55 checksum; all-lowercase
// or all-uppercase inputs skip the checksum check, matching how EVM
// wallets accept un-checksummed addresses.
func validateEVMAddress(native string) error {
	if !common.IsHexAddress(native) {
		return fmt.Errorf("invalid EVM address %q", native)
	}
	hasLower := strings.ToLower(native) != native
	hasUpper := strings.ToUpper(native) != native
	if hasLower && hasUpper {
		checksummed := common.HexToAddress(native).Hex()
		if checksummed != native {
			return fmt.Errorf("invalid EVM checksum for address %q (want %q)", native, checksummed)
		}
	}
	return nil
}

func validateNearAccount(native string) error {
	if len(native) < 2 || len(native) > 64 {
		return fmt.Errorf("invalid NEAR account id length %q", native)
	}
	if !nearAccountID.MatchString(native) {
		return fmt.Errorf("invalid NEAR account id %q", native)
	}
	return nil
}

// validateSolanaAddress requires a base58-encoded ed25519 public key: 32
// bytes after decoding.
func validateSolanaAddress(native string) error {
	decoded, err := base58.Decode(native)
	if err != nil {
		return fmt.Errorf("invalid Solana address %q: %w", native, err)
	}
	if len(decoded) != 32 {
		return fmt.Errorf("invalid Solana address %q: decodes to %d bytes, want 32", native, len(decoded))
	}
	return nil
}

// validateUTXOAddress accepts bech32 (P2WPKH/P2WSH/P2TR) or base58check
// (P2PKH/P2SH) Bitcoin addresses for the given network parameters,
// rejecting addresses encoded for the wrong network.
func validateUTXOAddress(native string, params *chaincfg.Params, _ []byte, _ string) error {
	addr, err := btcutil.DecodeAddress(native, params)
	if err != nil {
		return fmt.Errorf("invalid UTXO address %q: %w", native, err)
	}
	if !addr.IsForNet(params) {
		return fmt.Errorf("address %q is not valid for network %s", native, params.Name)
	}
	return nil
}

// validateZcashAddress validates a transparent Zcash address. Zcash reuses
// Bitcoin's base58check alphabet with its own two-byte version prefix
// (0x1CB8 for mainnet t1-addresses, 0x1CBD for t3 P2SH); shielded addresses
// are out of scope per spec.
func validateZcashAddress(native string) error {
	decoded, err := base58.Decode(native)
	if err != nil || len(decoded) != 26 {
		return fmt.Errorf("invalid Zcash transparent address %q", native)
	}
	payload, checksum := decoded[:22], decoded[22:]
	want := doubleSHA256(payload)[:4]
	for i := range checksum {
		if checksum[i] != want[i] {
			return fmt.Errorf("invalid Zcash transparent address %q: bad checksum", native)
		}
	}
	prefix := [2]byte{decoded[0], decoded[1]}
	switch prefix {
	case [2]byte{0x1C, 0xB8}, [2]byte{0x1C, 0xBD}:
		return nil
	default:
		return fmt.Errorf("invalid Zcash transparent address %q: unrecognized version prefix", native)
	}
}

func doubleSHA256(data []byte) []byte {
	first := sha256.Sum256(data)
	second := sha256.Sum256(first[:])
	return second[:]
}
