// Copyright 2025 Certen Protocol
//
// ABI argument definitions and selector derivation for the bridge
// contract, grounded on the ABI-tuple encoding pattern used elsewhere in
// the pack for gateway/vault-style contracts (abi.NewType + abi.Arguments
// + crypto.Keccak256 selector prefixing).

package evmbridge

import (
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/crypto"
)

// Canonical ABI signatures (§4.2). Selectors are derived, not hard-coded,
// so a typo in the signature string surfaces as a selector mismatch
// against golden test vectors rather than a silent wrong call.
const (
	sigInitTransfer = "initTransfer(address,uint128,uint128,uint128,string,string)"
	sigFinTransfer  = "finTransfer(bytes,(uint64,uint8,uint64,address,uint128,address,string))"
	sigDeployToken  = "deployToken(bytes,(string,string,string,uint8))"
	sigLogMetadata  = "logMetadata(address)"
	sigApprove      = "approve(address,uint256)"
)

func selector(signature string) []byte {
	return crypto.Keccak256([]byte(signature))[:4]
}

var (
	typeAddress = mustType("address")
	typeUint8   = mustType("uint8")
	typeUint64  = mustType("uint64")
	typeUint128 = mustType("uint128")
	typeUint256 = mustType("uint256")
	typeString  = mustType("string")
	typeBytes   = mustType("bytes")

	// finTransferArgsType mirrors the second positional argument of
	// finTransfer: (uint64 originNonce, uint8 originChain, uint64
	// originBlockTimestamp, address recipient, uint128 amount, address
	// feeRecipient, string message).
	finTransferArgsType = mustTupleType([]abi.ArgumentMarshaling{
		{Name: "originNonce", Type: "uint64"},
		{Name: "originChain", Type: "uint8"},
		{Name: "originBlockTimestamp", Type: "uint64"},
		{Name: "recipient", Type: "address"},
		{Name: "amount", Type: "uint128"},
		{Name: "feeRecipient", Type: "address"},
		{Name: "message", Type: "string"},
	})

	// deployTokenArgsType mirrors the second positional argument of
	// deployToken: (string name, string symbol, string originChain,
	// uint8 decimals).
	deployTokenArgsType = mustTupleType([]abi.ArgumentMarshaling{
		{Name: "name", Type: "string"},
		{Name: "symbol", Type: "string"},
		{Name: "originChain", Type: "string"},
		{Name: "decimals", Type: "uint8"},
	})
)

func mustType(solidityType string) abi.Type {
	t, err := abi.NewType(solidityType, "", nil)
	if err != nil {
		panic("evmbridge: invalid abi type " + solidityType + ": " + err.Error())
	}
	return t
}

func mustTupleType(components []abi.ArgumentMarshaling) abi.Type {
	t, err := abi.NewType("tuple", "", components)
	if err != nil {
		panic("evmbridge: invalid abi tuple type: " + err.Error())
	}
	return t
}

func packArgs(args abi.Arguments, values ...any) ([]byte, error) {
	return args.Pack(values...)
}
