// Copyright 2025 Certen Protocol
//
// Core transfer validation and decimal normalization (§4.1). Grounded on
// the validator's own request-validation shape (reject early, typed
// errors, no partial results) but reworked around the bridge's specific
// six rules instead of HTTP request shape checks.

package validator

import (
	"context"
	"math/big"

	"github.com/certen/omni-bridge-sdk/pkg/bridgeerr"
	"github.com/certen/omni-bridge-sdk/pkg/chain"
	"github.com/certen/omni-bridge-sdk/pkg/decimal"
)

// Options carries the caller-supplied optional knobs from TransferParams.
type Options struct {
	MaxGasFee *big.Int // nil if unset
}

// TransferParams is the caller's transfer intent. Amount, Fee, and
// NativeFee are denominated in the origin token's decimals, not the
// bridged token's.
type TransferParams struct {
	Token     chain.Address
	Amount    *big.Int
	Fee       *big.Int
	NativeFee *big.Int
	Sender    chain.Address
	Recipient chain.Address
	Message   string // empty means unset
	Options   Options
}

// TokenDecimals describes a token's precision on its current chain versus
// its home chain. Asymmetric: origin_decimals need not equal decimals.
type TokenDecimals struct {
	Decimals       uint8
	OriginDecimals uint8
}

// ValidatedTransfer is the chain-neutral, builder-ready result of
// validation. NormalizedAmount and NormalizedFee are expressed in the
// destination chain's decimal system.
type ValidatedTransfer struct {
	Params           TransferParams
	SourceChain      chain.Kind
	DestChain        chain.Kind
	NormalizedAmount *big.Int
	NormalizedFee    *big.Int
	ContractAddress  string
	BridgedToken     string
}

// Registry resolves bridged-token registration and decimal metadata via a
// live view call against the NEAR bridge contract, the canonical
// registry. It is queried fresh on every validation — no caching, since
// registration can happen at any time and staleness silently breaks
// transfers (§4.1).
type Registry interface {
	// BridgedToken returns the destination-chain contract address for
	// token on destChain, along with its TokenDecimals, or an error
	// wrapping bridgeerr.KindTokenNotRegistered if no such registration
	// exists.
	BridgedToken(ctx context.Context, token chain.Address, destChain chain.Kind) (contractAddress string, decimals TokenDecimals, err error)
}

// ValidateTransfer resolves the destination chain from params.Recipient,
// fetches TokenDecimals for the token pair, and normalizes amount and fee
// independently. It rejects, with a typed ValidationError, any transfer
// that cannot land.
func ValidateTransfer(ctx context.Context, params TransferParams, registry Registry) (*ValidatedTransfer, error) {
	sourceChain := params.Sender.Chain
	destChain := params.Recipient.Chain

	if sourceChain == destChain {
		return nil, bridgeerr.NewValidationError(bridgeerr.KindSameChain,
			"source and destination chain are both %s", sourceChain)
	}

	if params.Amount == nil || params.Amount.Sign() <= 0 {
		return nil, bridgeerr.NewValidationError(bridgeerr.KindInvalidAmount,
			"amount must be positive, got %v", params.Amount)
	}

	fee := params.Fee
	if fee == nil {
		fee = big.NewInt(0)
	}
	if fee.Cmp(params.Amount) >= 0 {
		return nil, bridgeerr.NewValidationError(bridgeerr.KindFeeExceedsAmount,
			"fee %s must be less than amount %s", fee, params.Amount)
	}

	if err := validateAddressFormat(params.Sender); err != nil {
		return nil, err
	}
	if err := validateAddressFormat(params.Recipient); err != nil {
		return nil, err
	}

	contractAddress, decimals, err := registry.BridgedToken(ctx, params.Token, destChain)
	if err != nil {
		if _, ok := bridgeerr.KindOf(err); ok {
			return nil, err
		}
		return nil, bridgeerr.NewValidationError(bridgeerr.KindTokenNotRegistered,
			"no bridged token for %s on %s: %v", params.Token, destChain, err)
	}

	normalizedAmount := decimal.Normalize(params.Amount, decimals.OriginDecimals, decimals.Decimals)
	normalizedFee := decimal.Normalize(fee, decimals.OriginDecimals, decimals.Decimals)

	remainder := new(big.Int).Sub(normalizedAmount, normalizedFee)
	if remainder.Sign() <= 0 {
		return nil, bridgeerr.NewValidationError(bridgeerr.KindDustAfterNormalization,
			"normalized amount %s does not exceed normalized fee %s after scaling %d -> %d decimals",
			normalizedAmount, normalizedFee, decimals.OriginDecimals, decimals.Decimals)
	}

	return &ValidatedTransfer{
		Params:           params,
		SourceChain:      sourceChain,
		DestChain:        destChain,
		NormalizedAmount: normalizedAmount,
		NormalizedFee:    normalizedFee,
		ContractAddress:  contractAddress,
		BridgedToken:     contractAddress,
	}, nil
}

func validateAddressFormat(addr chain.Address) error {
	if _, err := chain.Format(addr.Chain, addr.Native); err != nil {
		return bridgeerr.NewValidationError(bridgeerr.KindInvalidAddress, "%v", err)
	}
	return nil
}
