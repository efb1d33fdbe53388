// Copyright 2025 Certen Protocol
//
// Decimal normalization across asymmetric token precisions (§4.1). The
// same u128 amount carries a different number of decimal places depending
// on which chain's contract is reading it; normalize converts between
// them the way the on-chain bridge contract does, so the SDK's arithmetic
// matches the contract's byte-for-byte.

package decimal

import "math/big"

// Normalize converts v from a base-o (origin) decimal representation to a
// base-d (destination) representation:
//
//	normalize(v, o, d) = v * 10^(d-o)   if d >= o
//	normalize(v, o, d) = v / 10^(o-d)   if d <  o   (integer division, truncating)
//
// The returned big.Int is always non-negative when v is non-negative.
func Normalize(v *big.Int, originDecimals, destDecimals uint8) *big.Int {
	if originDecimals == destDecimals {
		return new(big.Int).Set(v)
	}
	result := new(big.Int)
	if destDecimals >= originDecimals {
		scale := pow10(destDecimals - originDecimals)
		return result.Mul(v, scale)
	}
	scale := pow10(originDecimals - destDecimals)
	return result.Quo(v, scale)
}

func pow10(n uint8) *big.Int {
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(n)), nil)
}

// AmountAfterFee computes the destination-chain amount available to the
// recipient once the relayer's fee is deducted.
//
// The critical invariant (§4.1, §8 scenario 6): amount and fee are
// normalized independently and THEN subtracted — never subtracted first
// and normalized second. Normalizing a pre-subtracted value loses
// precision the on-chain contract keeps, because origin-chain amount and
// fee each carry their own rounding error when scaled down; summing the
// errors before scaling compounds them, while scaling each operand first
// and subtracting exact integers does not.
func AmountAfterFee(amount, fee *big.Int, originDecimals, destDecimals uint8) *big.Int {
	normalizedAmount := Normalize(amount, originDecimals, destDecimals)
	normalizedFee := Normalize(fee, originDecimals, destDecimals)
	return new(big.Int).Sub(normalizedAmount, normalizedFee)
}
