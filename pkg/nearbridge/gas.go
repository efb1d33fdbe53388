// Copyright 2025 Certen Protocol

package nearbridge

import "math/big"

// TGas is the number of raw gas units in one TGas, NEAR's conventional
// gas-budgeting unit.
const TGas = 1_000_000_000_000

// yoctoPerNear is the number of yoctoNEAR in one NEAR.
var yoctoPerNear = new(big.Int).Exp(big.NewInt(10), big.NewInt(24), nil)

// nearFraction returns n/d NEAR expressed in yoctoNEAR.
func nearFraction(n, d int64) *big.Int {
	v := new(big.Int).Mul(yoctoPerNear, big.NewInt(n))
	return v.Quo(v, big.NewInt(d))
}

// Gas and deposit constants per method (§4.3). Values are load-bearing —
// they must match what the bridge contract's methods actually accept;
// "dynamic" deposits are resolved by a view call at build time instead of
// being constants here.
var (
	GasLogMetadata     uint64 = 300 * TGas
	GasDeployToken     uint64 = 120 * TGas
	GasBindToken       uint64 = 300 * TGas
	GasInitTransfer    uint64 = 300 * TGas
	GasFinTransfer     uint64 = 300 * TGas
	GasSignTransfer    uint64 = 300 * TGas
	GasStorageDeposit  uint64 = 30 * TGas

	DepositLogMetadata = nearFraction(2, 10) // 0.2 NEAR
	DepositOneYocto    = big.NewInt(1)       // 1 yoctoNEAR
)
