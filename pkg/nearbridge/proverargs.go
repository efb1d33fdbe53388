// Copyright 2025 Certen Protocol
//
// Prover-args Borsh wrapping (§4.3). Finalizing a transfer on NEAR
// requires the inbound proof — Wormhole VAA or EVM receipt proof — Borsh-
// serialized behind a proof_kind discriminator and wrapped again in a
// FinTransferArgs envelope. Grounded on the teacher's Borsh usage pattern
// for the accumulate lite-client proof types (accumulate-lite-client-2/
// liteclient/proof), adapted to near/borsh-go's struct-tag enum
// convention instead of a hand-rolled tag byte.

package nearbridge

import (
	"math/big"

	borsh "github.com/near/borsh-go"

	"github.com/certen/omni-bridge-sdk/pkg/bridgeerr"
	"github.com/certen/omni-bridge-sdk/pkg/evmbridge"
)

// ProofKind discriminates which bridge operation a prover-args blob
// proves, matching the contract's Borsh enum ordering exactly (§4.3).
type ProofKind uint8

const (
	ProofKindInitTransfer ProofKind = iota
	ProofKindFinTransfer
	ProofKindDeployToken
	ProofKindLogMetadata
)

// Uint128 is NEAR's wire representation of a u128: 16 little-endian
// bytes. Borsh has no native bignum type, so every u128 field in a
// Borsh-serialized struct takes this shape instead of *big.Int.
type Uint128 [16]byte

// ToUint128 encodes v as a little-endian Uint128. v must fit in 128 bits.
func ToUint128(v *big.Int) Uint128 {
	var out Uint128
	if v == nil {
		return out
	}
	b := v.Bytes() // big-endian
	for i := 0; i < len(b) && i < 16; i++ {
		out[i] = b[len(b)-1-i]
	}
	return out
}

// FromUint128 decodes a little-endian Uint128 back to a *big.Int.
func FromUint128(u Uint128) *big.Int {
	be := make([]byte, 16)
	for i := 0; i < 16; i++ {
		be[15-i] = u[i]
	}
	return new(big.Int).SetBytes(be)
}

// WormholeProofArgs is the Wormhole-VAA variant of prover args.
type WormholeProofArgs struct {
	ProofKind ProofKind
	Vaa       string
}

// EvmReceiptProof is the Borsh-serializable shape of evmbridge.EvmProof —
// field-for-field identical, re-declared here because Borsh struct tags
// and field order are part of the wire contract and must not drift if
// evmbridge.EvmProof's Go-side shape ever changes for unrelated reasons.
type EvmReceiptProof struct {
	LogIndex     uint64
	LogEntryData []byte
	ReceiptIndex uint64
	ReceiptData  []byte
	HeaderData   []byte
	Proof        [][]byte
}

// FromEvmProof converts an evmbridge.EvmProof to its Borsh-serializable
// shape.
func FromEvmProof(p evmbridge.EvmProof) EvmReceiptProof {
	return EvmReceiptProof{
		LogIndex:     p.LogIndex,
		LogEntryData: p.LogEntryData,
		ReceiptIndex: p.ReceiptIndex,
		ReceiptData:  p.ReceiptData,
		HeaderData:   p.HeaderData,
		Proof:        p.Proof,
	}
}

// EvmProofArgs is the EVM-receipt-proof variant of prover args.
type EvmProofArgs struct {
	ProofKind ProofKind
	Proof     EvmReceiptProof
}

// ProverArgs is the Borsh enum over the two proof sources the connector
// accepts (§4.3). Exactly one of Wormhole or Evm is populated, selected
// by Enum.
type ProverArgs struct {
	Enum     borsh.Enum `borsh_enum:"true"`
	Wormhole WormholeProofArgs
	Evm      EvmProofArgs
}

// NewWormholeProverArgs constructs a ProverArgs selecting the Wormhole
// VAA variant.
func NewWormholeProverArgs(kind ProofKind, vaaHex string) ProverArgs {
	return ProverArgs{Enum: 0, Wormhole: WormholeProofArgs{ProofKind: kind, Vaa: vaaHex}}
}

// NewEvmProverArgs constructs a ProverArgs selecting the EVM receipt-proof
// variant.
func NewEvmProverArgs(kind ProofKind, proof evmbridge.EvmProof) ProverArgs {
	return ProverArgs{Enum: 1, Evm: EvmProofArgs{ProofKind: kind, Proof: FromEvmProof(proof)}}
}

// StorageDepositAction mirrors one entry of fin_transfer's
// storage_deposit_actions argument: the per-account storage registration
// the destination token needs funded before the transfer can land.
type StorageDepositAction struct {
	TokenID   string
	AccountID string
	Amount    Uint128
}

// FinTransferArgs is the envelope wrapping chain_kind, the computed
// storage-deposit actions, and the Borsh-serialized prover args (§4.3).
// ProverArgs is carried as raw bytes rather than a nested Borsh struct,
// matching the contract's own two-stage encoding: the outer envelope does
// not need to know which proof variant it carries.
type FinTransferArgs struct {
	ChainKind             uint8
	StorageDepositActions []StorageDepositAction
	ProverArgs            []byte
}

// SerializeProverArgs Borsh-encodes args for embedding as the opaque
// prover_args bytes of a FinTransferArgs envelope.
func SerializeProverArgs(args ProverArgs) ([]byte, error) {
	b, err := borsh.Serialize(args)
	if err != nil {
		return nil, bridgeerr.NewEncodingError(bridgeerr.KindMalformedEvent, "borsh-encoding prover args: %v", err)
	}
	return b, nil
}

// SerializeFinTransferArgs Borsh-encodes the complete envelope.
func SerializeFinTransferArgs(args FinTransferArgs) ([]byte, error) {
	b, err := borsh.Serialize(args)
	if err != nil {
		return nil, bridgeerr.NewEncodingError(bridgeerr.KindMalformedEvent, "borsh-encoding fin_transfer args: %v", err)
	}
	return b, nil
}

// DeserializeFinTransferArgs decodes a FinTransferArgs envelope — used by
// tests to assert the Borsh round-trip invariant (§8 property 7).
func DeserializeFinTransferArgs(data []byte) (FinTransferArgs, error) {
	var out FinTransferArgs
	if err := borsh.Deserialize(&out, data); err != nil {
		return FinTransferArgs{}, bridgeerr.NewEncodingError(bridgeerr.KindMalformedEvent, "borsh-decoding fin_transfer args: %v", err)
	}
	return out, nil
}

// DeserializeProverArgs decodes a ProverArgs blob.
func DeserializeProverArgs(data []byte) (ProverArgs, error) {
	var out ProverArgs
	if err := borsh.Deserialize(&out, data); err != nil {
		return ProverArgs{}, bridgeerr.NewEncodingError(bridgeerr.KindMalformedEvent, "borsh-decoding prover args: %v", err)
	}
	return out, nil
}
