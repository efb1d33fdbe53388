// Copyright 2025 Certen Protocol

package evmbridge

import (
	"fmt"

	"github.com/certen/omni-bridge-sdk/pkg/chain"
)

// SuggestedGasLimits are fixed per-chain-tag limits callers may set
// verbatim if they skip estimation (§4.2). Arbitrum's L1 calldata pricing
// model means equivalent EVM execution costs notably more gas than on
// mainnet, so it carries a wider margin.
var SuggestedGasLimits = map[chain.Kind]uint64{
	chain.Eth:  250_000,
	chain.Base: 250_000,
	chain.Bnb:  250_000,
	chain.Pol:  250_000,
	chain.Arb:  2_000_000,
}

// GasLimitFor returns the suggested gas limit for kind, or an error if
// kind is not an EVM chain.
func GasLimitFor(kind chain.Kind) (uint64, error) {
	limit, ok := SuggestedGasLimits[kind]
	if !ok {
		return 0, fmt.Errorf("evmbridge: %s has no suggested gas limit (not an EVM chain)", kind)
	}
	return limit, nil
}
