// Copyright 2025 Certen Protocol
//
// Chain Kind Registry — Multi-Chain Identifier Set
// Generalizes the platform enum and chain registry pattern used across the
// Certen validator's per-chain execution strategies into the closed set of
// networks the Omni Bridge SDK supports.

package chain

import "fmt"

// Kind identifies one of the networks the bridge spans. The string tag and
// numeric discriminant are load-bearing: the tag is the lowercase prefix
// used in OmniAddress strings, and the discriminant is the value the NEAR
// bridge contract expects when a Kind is Borsh-serialized as an enum
// variant. Both must match the on-chain contract's view of the tag set
// exactly — they are not free to renumber.
type Kind string

const (
	Eth   Kind = "eth"
	Near  Kind = "near"
	Sol   Kind = "sol"
	Btc   Kind = "btc"
	Base  Kind = "base"
	Arb   Kind = "arb"
	Bnb   Kind = "bnb"
	Pol   Kind = "pol"
	Zcash Kind = "zec"
)

// discriminants mirrors the Borsh enum ordering the NEAR bridge contract
// uses for ChainKind. Order is fixed by the contract; do not resort.
var discriminants = map[Kind]uint8{
	Eth:   0,
	Near:  1,
	Sol:   2,
	Btc:   3,
	Base:  4,
	Arb:   5,
	Bnb:   6,
	Pol:   7,
	Zcash: 8,
}

var byDiscriminant = func() map[uint8]Kind {
	m := make(map[uint8]Kind, len(discriminants))
	for k, v := range discriminants {
		m[v] = k
	}
	return m
}()

// evmKinds is the subset of Kind that are EVM-compatible chains.
var evmKinds = map[Kind]bool{
	Eth:  true,
	Base: true,
	Arb:  true,
	Bnb:  true,
	Pol:  true,
}

// utxoKinds is the subset of Kind that are UTXO-model chains.
var utxoKinds = map[Kind]bool{
	Btc:   true,
	Zcash: true,
}

// IsValid reports whether k is one of the supported chain kinds.
func (k Kind) IsValid() bool {
	_, ok := discriminants[k]
	return ok
}

// IsEVM reports whether k is an EVM-compatible chain.
func (k Kind) IsEVM() bool {
	return evmKinds[k]
}

// IsUTXO reports whether k is a UTXO-model chain.
func (k Kind) IsUTXO() bool {
	return utxoKinds[k]
}

// Discriminant returns the numeric tag used in Borsh-serialized enum
// variants that carry a ChainKind.
func (k Kind) Discriminant() (uint8, error) {
	d, ok := discriminants[k]
	if !ok {
		return 0, fmt.Errorf("chain: unknown chain kind %q", k)
	}
	return d, nil
}

// FromDiscriminant resolves a Kind from its Borsh enum discriminant.
func FromDiscriminant(d uint8) (Kind, error) {
	k, ok := byDiscriminant[d]
	if !ok {
		return "", fmt.Errorf("chain: unknown chain discriminant %d", d)
	}
	return k, nil
}

// Prefix returns the lowercase OmniAddress prefix for k. It is identical to
// the string value of k by construction, but named separately so callers
// that parse addresses don't depend on Kind's underlying representation.
func (k Kind) Prefix() string {
	return string(k)
}

// ParseKind resolves a lowercase chain-prefix string to a Kind, rejecting
// anything outside the closed enumeration.
func ParseKind(prefix string) (Kind, error) {
	k := Kind(prefix)
	if !k.IsValid() {
		return "", fmt.Errorf("chain: unknown chain prefix %q", prefix)
	}
	return k, nil
}

// All returns every supported Kind in discriminant order.
func All() []Kind {
	out := make([]Kind, len(byDiscriminant))
	for d := uint8(0); d < uint8(len(byDiscriminant)); d++ {
		out[d] = byDiscriminant[d]
	}
	return out
}
