// Copyright 2025 Certen Protocol
//
// UTXO withdrawal planner (§4.5). Selects UTXOs largest-first, greedily,
// stopping as soon as the running total covers amount plus the
// two-output fee estimate; collapses to a single output and absorbs the
// leftover into the fee when a change output would be dust.

package utxobridge

import (
	"sort"

	"github.com/certen/omni-bridge-sdk/pkg/bridgeerr"
)

// UTXO is one unspent output available for spending.
type UTXO struct {
	TxID  string
	Vout  uint32
	Value int64
}

// Output is one transaction output: a locking script and a value.
type Output struct {
	ScriptPubKey []byte
	Value        int64
}

// Overrides carries caller-supplied knobs for withdrawal planning.
type Overrides struct {
	// MaxInputs caps the number of UTXOs the plan may spend. Zero means
	// unlimited.
	MaxInputs int
	// DustThreshold overrides the default dust threshold for the chain's
	// fee model. Zero means "use the default".
	DustThreshold int64
}

// Plan is the withdrawal planner's output (§4.5): sum(inputs) ==
// sum(outputs) + fee always, and outputs[0] carries amount to the
// target, with an optional change output appended.
type Plan struct {
	Inputs  []UTXO
	Outputs []Output
	Fee     int64
}

// defaultDustThreshold is used when Overrides.DustThreshold is zero. It
// is expressed in the chain's base unit (satoshis for Bitcoin,
// zatoshis for Zcash).
const defaultDustThreshold int64 = 1000

// BuildWithdrawalPlan selects UTXOs under model's fee pricing and
// assembles a withdrawal plan paying amount to targetScript, with any
// change going to changeScript (§4.5).
//
// A withdrawal of an amount at or below the dust threshold can never
// produce a spendable target output, so it fails fast with
// AMOUNT_BELOW_MIN_WITHDRAW before any UTXO selection runs.
//
// Selection: UTXOs are sorted by value descending (ties keep their
// relative input order) and added greedily until the running total
// covers amount plus the two-output fee estimate at the current input
// count. If overrides.MaxInputs would be exceeded before that happens,
// selection fails with INSUFFICIENT_UTXOS.
//
// Output shaping: once enough value is selected, the leftover beyond
// amount and the two-output fee estimate decides the output count. A
// leftover at or below the dust threshold is folded entirely into the
// fee and the plan emits one output (target only); a larger leftover
// becomes a change output alongside the target.
func BuildWithdrawalPlan(model FeeModel, utxos []UTXO, amount int64, targetScript, changeScript []byte, feeRate int64, overrides Overrides) (Plan, error) {
	dust := overrides.DustThreshold
	if dust == 0 {
		dust = defaultDustThreshold
	}

	if amount <= dust {
		return Plan{}, bridgeerr.NewValidationError(bridgeerr.KindAmountBelowMinWithdraw,
			"withdrawal amount %d does not exceed the dust threshold %d", amount, dust)
	}

	sorted := make([]UTXO, len(utxos))
	copy(sorted, utxos)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Value > sorted[j].Value })

	var selected []UTXO
	var total int64
	var feeEstimate int64
	satisfied := false

	for _, u := range sorted {
		if overrides.MaxInputs > 0 && len(selected) == overrides.MaxInputs {
			break
		}
		selected = append(selected, u)
		total += u.Value
		feeEstimate = model.EstimateFee(len(selected), 2, feeRate)
		if total >= amount+feeEstimate {
			satisfied = true
			break
		}
	}

	if !satisfied {
		return Plan{}, bridgeerr.NewValidationError(bridgeerr.KindInsufficientUTXOs,
			"insufficient UTXOs to cover amount %d plus fee: selected %d input(s) totalling %d", amount, len(selected), total)
	}

	residual := total - amount - feeEstimate

	if residual <= dust {
		return Plan{
			Inputs:  selected,
			Outputs: []Output{{ScriptPubKey: targetScript, Value: amount}},
			Fee:     total - amount,
		}, nil
	}

	return Plan{
		Inputs: selected,
		Outputs: []Output{
			{ScriptPubKey: targetScript, Value: amount},
			{ScriptPubKey: changeScript, Value: residual},
		},
		Fee: feeEstimate,
	}, nil
}

// BuildBitcoinWithdrawalPlan builds a plan under the sat/vB fee model.
func BuildBitcoinWithdrawalPlan(utxos []UTXO, amount int64, targetScript, changeScript []byte, feeRateSatPerVB int64, overrides Overrides) (Plan, error) {
	return BuildWithdrawalPlan(BitcoinFeeModel{}, utxos, amount, targetScript, changeScript, feeRateSatPerVB, overrides)
}

// BuildZcashWithdrawalPlan builds a plan under ZIP-317 logical-action
// pricing. The feeRate parameter is accepted for call-site symmetry with
// BuildBitcoinWithdrawalPlan but is ignored by the fee model.
func BuildZcashWithdrawalPlan(utxos []UTXO, amount int64, targetScript, changeScript []byte, overrides Overrides) (Plan, error) {
	return BuildWithdrawalPlan(ZcashFeeModel{}, utxos, amount, targetScript, changeScript, 0, overrides)
}
