// Copyright 2025 Certen Protocol
//
// Error taxonomy for the Omni Bridge SDK. Every fallible operation returns
// one of the tagged kinds below rather than an ad-hoc error string, the way
// the validator's database package exposes a closed set of sentinel errors
// for repository operations (pkg/database/errors.go) instead of returning
// bare nil/err pairs.

package bridgeerr

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Kind is a closed, typed error classification. Callers switch on Kind
// rather than matching error strings.
type Kind string

const (
	// Validation kinds (§4.1, §7)
	KindInvalidAmount          Kind = "INVALID_AMOUNT"
	KindInvalidAddress         Kind = "INVALID_ADDRESS"
	KindTokenNotRegistered     Kind = "TOKEN_NOT_REGISTERED"
	KindSameChain              Kind = "SAME_CHAIN"
	KindFeeExceedsAmount       Kind = "FEE_EXCEEDS_AMOUNT"
	KindDustAfterNormalization Kind = "DUST_AFTER_NORMALIZATION"
	KindAmountBelowMinWithdraw Kind = "AMOUNT_BELOW_MIN_WITHDRAW"
	KindInsufficientUTXOs      Kind = "INSUFFICIENT_UTXOS"

	// RPC kinds (§5, §7)
	KindRPCTimeout     Kind = "RPC_TIMEOUT"
	KindRPCError       Kind = "RPC_ERROR"
	KindRPCRateLimited Kind = "RPC_RATE_LIMITED"
	KindCancelled      Kind = "CANCELLED"

	// Proof kinds (§7)
	KindProofNotReady     Kind = "PROOF_NOT_READY"
	KindProofFetchFailed  Kind = "PROOF_FETCH_FAILED"
	KindReceiptNotFound   Kind = "RECEIPT_NOT_FOUND"
	KindLogNotFound       Kind = "LOG_NOT_FOUND"

	// Encoding kinds (§7)
	KindMalformedAddress   Kind = "MALFORMED_ADDRESS"
	KindMalformedEvent     Kind = "MALFORMED_EVENT"
	KindUnknownChainPrefix Kind = "UNKNOWN_CHAIN_PREFIX"

	// Contract passthrough (§7)
	KindContractError Kind = "CONTRACT_ERROR"
)

// ValidationError reports a terminal failure to validate a transfer. The
// SDK never auto-corrects invalid inputs; validation errors always end the
// operation.
type ValidationError struct {
	Kind      Kind
	Message   string
	RequestID string // correlation id for diagnostics (§6), distinct per error instance
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error [%s] (request %s): %s", e.Kind, e.RequestID, e.Message)
}

// NewValidationError constructs a ValidationError with a formatted message
// and a fresh correlation id.
func NewValidationError(kind Kind, format string, args ...any) *ValidationError {
	return &ValidationError{Kind: kind, Message: fmt.Sprintf(format, args...), RequestID: uuid.NewString()}
}

// RpcError reports a failure reaching an external RPC after retries are
// exhausted (§5: three attempts, immediate/1s/2s backoff). Retries carries
// how many attempts were made before surfacing.
type RpcError struct {
	Kind      Kind
	Message   string
	Retries   int
	Cause     error
	RequestID string // correlation id for diagnostics (§6), distinct per error instance
}

func (e *RpcError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("rpc error [%s] after %d retries (request %s): %s: %v", e.Kind, e.Retries, e.RequestID, e.Message, e.Cause)
	}
	return fmt.Sprintf("rpc error [%s] after %d retries (request %s): %s", e.Kind, e.Retries, e.RequestID, e.Message)
}

func (e *RpcError) Unwrap() error { return e.Cause }

// NewRpcError constructs an RpcError wrapping cause, with a fresh
// correlation id.
func NewRpcError(kind Kind, retries int, message string, cause error) *RpcError {
	return &RpcError{Kind: kind, Message: message, Retries: retries, Cause: cause, RequestID: uuid.NewString()}
}

// ProofError reports a failure constructing or retrieving a proof blob.
// PROOF_NOT_READY is recoverable by the caller (retry later); the others
// are terminal for the current attempt.
type ProofError struct {
	Kind    Kind
	Message string
	Cause   error
}

func (e *ProofError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("proof error [%s]: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("proof error [%s]: %s", e.Kind, e.Message)
}

func (e *ProofError) Unwrap() error { return e.Cause }

// Recoverable reports whether the caller can retry the operation later
// without changing any inputs.
func (e *ProofError) Recoverable() bool {
	return e.Kind == KindProofNotReady
}

// NewProofError constructs a ProofError wrapping cause.
func NewProofError(kind Kind, message string, cause error) *ProofError {
	return &ProofError{Kind: kind, Message: message, Cause: cause}
}

// EncodingError reports malformed input to an encoder or decoder — bad
// addresses, unparseable events, or an unrecognized chain prefix.
type EncodingError struct {
	Kind    Kind
	Message string
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("encoding error [%s]: %s", e.Kind, e.Message)
}

// NewEncodingError constructs an EncodingError with a formatted message.
func NewEncodingError(kind Kind, format string, args ...any) *EncodingError {
	return &EncodingError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// ContractError passes an on-chain failure message through to the caller.
// Some contract failures are recognized as idempotent successes (§7) —
// Promoted is set when that recognition happened, and callers should treat
// the operation as having already succeeded rather than as an error.
type ContractError struct {
	Message    string
	Promoted   bool
	PromotedAs string
}

func (e *ContractError) Error() string {
	if e.Promoted {
		return fmt.Sprintf("contract error (promoted to idempotent success as %s): %s", e.PromotedAs, e.Message)
	}
	return fmt.Sprintf("contract error: %s", e.Message)
}

// NewContractError wraps a passthrough on-chain failure message.
func NewContractError(message string) *ContractError {
	return &ContractError{Message: message}
}

// NewIdempotentContractError marks a contract failure as an idempotent
// success — e.g. Solana's AccountNotSystemOwned during redeployment, or a
// NEAR storage deposit that finds the balance already sufficient.
func NewIdempotentContractError(message, promotedAs string) *ContractError {
	return &ContractError{Message: message, Promoted: true, PromotedAs: promotedAs}
}

// KindOf extracts the Kind carried by any of this package's error types, or
// ("", false) if err is not one of them (after unwrapping).
func KindOf(err error) (Kind, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Kind, true
	}
	var re *RpcError
	if errors.As(err, &re) {
		return re.Kind, true
	}
	var pe *ProofError
	if errors.As(err, &pe) {
		return pe.Kind, true
	}
	var ee *EncodingError
	if errors.As(err, &ee) {
		return ee.Kind, true
	}
	return "", false
}

// ErrCancelled is returned when a suspension point observes the caller's
// cancellation signal. It carries KindCancelled rather than a timeout kind
// so callers can distinguish "you asked to stop" from "the network was
// slow" (§5).
var ErrCancelled = &RpcError{Kind: KindCancelled, Message: "operation cancelled by caller"}
