// Copyright 2025 Certen Protocol
//
// UTXO fee models (§4.5). Bitcoin sizes fee by estimated virtual bytes at
// a caller-supplied sat/vB rate; Zcash's ZIP-317 instead prices by
// logical-action count and ignores the caller's rate entirely.

package utxobridge

// FeeModel estimates the fee, in the chain's base unit, for a
// transaction with the given input and output counts.
type FeeModel interface {
	EstimateFee(inputs, outputs int, feeRate int64) int64
}

// BitcoinFeeModel estimates fee = feeRate_sat_per_vB * vsize, where
// vsize approximates a P2WPKH transaction's virtual size (§4.5).
type BitcoinFeeModel struct{}

// EstimateFee implements FeeModel.
func (BitcoinFeeModel) EstimateFee(inputs, outputs int, feeRateSatPerVB int64) int64 {
	vsize := int64(10 + 68*inputs + 31*outputs)
	return feeRateSatPerVB * vsize
}

// ZIP317 constants (§4.5, GLOSSARY).
const (
	zip317MarginalFee    int64 = 5000
	zip317GraceActions   int64 = 2
)

// ZcashFeeModel prices a transaction by ZIP-317 logical actions: fee =
// marginalFee * max(graceActions, logicalActions), where logicalActions
// = max(inputs, outputs). The caller-supplied feeRate is ignored.
type ZcashFeeModel struct{}

// EstimateFee implements FeeModel. feeRate is accepted only to satisfy
// the interface; ZIP-317 does not use it.
func (ZcashFeeModel) EstimateFee(inputs, outputs int, _ int64) int64 {
	logicalActions := int64(inputs)
	if int64(outputs) > logicalActions {
		logicalActions = int64(outputs)
	}
	actions := zip317GraceActions
	if logicalActions > actions {
		actions = logicalActions
	}
	return zip317MarginalFee * actions
}
