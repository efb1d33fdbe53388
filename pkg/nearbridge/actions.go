// Copyright 2025 Certen Protocol
//
// NEAR unsigned-transaction types (§3, §4.3). A NearUnsignedTransaction is
// a stateless { signerId, receiverId, actions[] } tuple — nonce and
// recent-block-hash are the consumer's responsibility, matching the
// wallet-polymorphism rework in §9: each action is a sealed Go type
// instead of a runtime-dispatched wallet call.

package nearbridge

import "math/big"

// ActionKind discriminates the variants of Action actually emitted by
// this SDK. NEAR's full action set is larger; only the handful the bridge
// protocol uses are modeled.
type ActionKind uint8

const (
	ActionFunctionCall ActionKind = iota
	ActionTransfer
)

// FunctionCallAction carries a method name, a Borsh- or JSON-encoded args
// blob (the builder decides the encoding per method), a gas allotment in
// gas units (not TGas), and an attached deposit in yoctoNEAR.
type FunctionCallAction struct {
	MethodName string
	Args       []byte
	Gas        uint64
	Deposit    *big.Int
}

// TransferAction carries a plain NEAR transfer.
type TransferAction struct {
	Deposit *big.Int
}

// Action is a tagged union over the action kinds this SDK constructs.
// Exactly one of FunctionCall or Transfer is set, selected by Kind.
type Action struct {
	Kind         ActionKind
	FunctionCall *FunctionCallAction
	Transfer     *TransferAction
}

// NewFunctionCall constructs a FunctionCall action.
func NewFunctionCall(methodName string, args []byte, gas uint64, deposit *big.Int) Action {
	return Action{
		Kind:         ActionFunctionCall,
		FunctionCall: &FunctionCallAction{MethodName: methodName, Args: args, Gas: gas, Deposit: deposit},
	}
}

// NewTransfer constructs a Transfer action.
func NewTransfer(deposit *big.Int) Action {
	return Action{Kind: ActionTransfer, Transfer: &TransferAction{Deposit: deposit}}
}

// UnsignedTransaction is the library-agnostic NEAR transaction shape
// (§3): the consumer fills in nonce, block hash, and signature.
type UnsignedTransaction struct {
	SignerID   string
	ReceiverID string
	Actions    []Action
}
