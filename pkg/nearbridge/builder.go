// Copyright 2025 Certen Protocol
//
// NEAR unsigned-transaction builders (§4.3). Each Build* function
// constructs the action list for one bridge operation against the gas
// and deposit constants in gas.go. Storage-deposit preflight is the one
// genuinely stateful operation in the SDK (§5): it issues two view-call
// reads before deciding whether to prepend a storage_deposit action.

package nearbridge

import (
	"context"
	"encoding/json"
	"math/big"

	"github.com/certen/omni-bridge-sdk/pkg/bridgeerr"
)

// InitTransferMessage is the JSON payload carried inside ft_transfer_call's
// msg field (§6). Per §9's JSON-schema rework, this struct is defined once
// and serialized at the builder boundary — callers never see or construct
// the JSON string themselves.
type InitTransferMessage struct {
	Recipient      string `json:"recipient"`
	Fee            string `json:"fee"`
	NativeTokenFee string `json:"native_token_fee"`
	Msg            string `json:"msg,omitempty"`
}

// ViewClient is the minimal read-only RPC surface the builder needs for
// storage-deposit preflight and dynamic deposit amounts. It suspends the
// calling task at each call (§5) and must propagate ctx cancellation.
type ViewClient interface {
	// StorageBalanceOf returns the registered storage balance for
	// accountID on the NEP-141 token contract, or (nil, nil) if the
	// account has no registration at all.
	StorageBalanceOf(ctx context.Context, tokenContractID, accountID string) (available *big.Int, err error)
	// StorageBalanceBoundsMin returns the NEP-141 storage_balance_bounds
	// minimum on tokenContractID — the yoctoNEAR an account must register
	// just to hold a balance on that token (§4.3's requiredAccount term).
	StorageBalanceBoundsMin(ctx context.Context, tokenContractID string) (*big.Int, error)
	// RequiredBalanceForInitTransfer returns the yoctoNEAR the bridge
	// contract requires to record an init transfer against
	// bridgeContractID (§4.3's requiredInit term).
	RequiredBalanceForInitTransfer(ctx context.Context, bridgeContractID string) (*big.Int, error)
	// RequiredBalanceForDeployToken returns the yoctoNEAR the bridge
	// contract requires to deploy a token.
	RequiredBalanceForDeployToken(ctx context.Context, bridgeContractID string) (*big.Int, error)
	// RequiredBalanceForBindToken returns the yoctoNEAR the bridge
	// contract requires to bind a token.
	RequiredBalanceForBindToken(ctx context.Context, bridgeContractID string) (*big.Int, error)
}

// BuildLogMetadata emits the log_metadata action against the bridge
// contract.
func BuildLogMetadata(bridgeContractID, tokenID string) UnsignedTransaction {
	args, _ := json.Marshal(map[string]string{"token_id": tokenID})
	return UnsignedTransaction{
		ReceiverID: bridgeContractID,
		Actions:    []Action{NewFunctionCall("log_metadata", args, GasLogMetadata, DepositLogMetadata)},
	}
}

// BuildDeployToken emits the deploy_token action. requiredDeposit must
// come from a fresh required_balance_for_deploy_token view call (§4.3's
// "dynamic" deposit) — the builder does not guess it.
func BuildDeployToken(bridgeContractID string, proof []byte, requiredDeposit *big.Int) (UnsignedTransaction, error) {
	args, err := json.Marshal(map[string]json.RawMessage{
		"proof": mustHexJSON(proof),
	})
	if err != nil {
		return UnsignedTransaction{}, bridgeerr.NewEncodingError(bridgeerr.KindMalformedEvent, "encoding deploy_token args: %v", err)
	}
	return UnsignedTransaction{
		ReceiverID: bridgeContractID,
		Actions:    []Action{NewFunctionCall("deploy_token", args, GasDeployToken, requiredDeposit)},
	}, nil
}

// BuildBindToken emits the bind_token action with a dynamic deposit from
// required_balance_for_bind_token.
func BuildBindToken(bridgeContractID string, proof []byte, requiredDeposit *big.Int) (UnsignedTransaction, error) {
	args, err := json.Marshal(map[string]json.RawMessage{
		"proof": mustHexJSON(proof),
	})
	if err != nil {
		return UnsignedTransaction{}, bridgeerr.NewEncodingError(bridgeerr.KindMalformedEvent, "encoding bind_token args: %v", err)
	}
	return UnsignedTransaction{
		ReceiverID: bridgeContractID,
		Actions:    []Action{NewFunctionCall("bind_token", args, GasBindToken, requiredDeposit)},
	}, nil
}

// BuildInitTransfer emits ft_transfer_call on the token contract,
// targeting the locker/bridge contract as receiver, with msg carrying the
// typed InitTransferMessage serialized once at this boundary. amount is a
// decimal string in the token's own on-chain precision (§8 scenario 1).
//
// If storageClient is non-nil, the builder performs the storage-deposit
// preflight (§4.3): it reads the caller's current storage balance on the
// token contract and, if registering would leave a gap, prepends a
// storage_deposit action funding exactly that gap.
func BuildInitTransfer(ctx context.Context, storageClient ViewClient, tokenID, lockerContractID, signerID string, amount *big.Int, msg InitTransferMessage, nativeFeeDeposit *big.Int) (UnsignedTransaction, error) {
	argsJSON, err := json.Marshal(map[string]any{
		"receiver_id": lockerContractID,
		"amount":      amount.String(),
		"msg":         mustJSONString(msg),
	})
	if err != nil {
		return UnsignedTransaction{}, bridgeerr.NewEncodingError(bridgeerr.KindMalformedEvent, "encoding ft_transfer_call args: %v", err)
	}

	actions := []Action{NewFunctionCall("ft_transfer_call", argsJSON, GasInitTransfer, DepositOneYocto)}

	if storageClient != nil {
		deposit, err := storageDepositGap(ctx, storageClient, tokenID, lockerContractID, signerID, nativeFeeDeposit)
		if err != nil {
			return UnsignedTransaction{}, err
		}
		if deposit != nil && deposit.Sign() > 0 {
			sdArgs, _ := json.Marshal(map[string]string{"account_id": signerID})
			actions = append([]Action{NewFunctionCall("storage_deposit", sdArgs, GasStorageDeposit, deposit)}, actions...)
		}
	}

	return UnsignedTransaction{SignerID: signerID, ReceiverID: tokenID, Actions: actions}, nil
}

// storageDepositGap computes needed = requiredAccount + requiredInit +
// nativeFee - available (§4.3), returning nil if the caller's existing
// storage balance already covers the transfer (an idempotent no-op per
// §7). requiredAccount is the NEP-141 storage_balance_bounds minimum on
// the token contract; requiredInit is the bridge contract's own
// init-transfer storage requirement. Both are load-bearing view-call
// reads, not guessed constants.
func storageDepositGap(ctx context.Context, client ViewClient, tokenID, bridgeContractID, accountID string, nativeFee *big.Int) (*big.Int, error) {
	available, err := client.StorageBalanceOf(ctx, tokenID, accountID)
	if err != nil {
		return nil, bridgeerr.NewRpcError(bridgeerr.KindRPCError, 0, "querying storage_balance_of", err)
	}
	requiredAccount, err := client.StorageBalanceBoundsMin(ctx, tokenID)
	if err != nil {
		return nil, bridgeerr.NewRpcError(bridgeerr.KindRPCError, 0, "querying storage_balance_bounds", err)
	}
	requiredInit, err := client.RequiredBalanceForInitTransfer(ctx, bridgeContractID)
	if err != nil {
		return nil, bridgeerr.NewRpcError(bridgeerr.KindRPCError, 0, "querying required_balance_for_init_transfer", err)
	}
	if available == nil {
		available = big.NewInt(0)
	}
	if requiredAccount == nil {
		requiredAccount = big.NewInt(0)
	}
	if requiredInit == nil {
		requiredInit = big.NewInt(0)
	}
	if nativeFee == nil {
		nativeFee = big.NewInt(0)
	}
	needed := new(big.Int).Add(requiredAccount, requiredInit)
	needed.Add(needed, nativeFee)
	needed.Sub(needed, available)
	if needed.Sign() <= 0 {
		return nil, nil
	}
	return needed, nil
}

// BuildFinTransfer emits fin_transfer, wrapping proverArgs (produced by
// WrapProverArgs) and any storage-deposit actions the preflight computed.
// deposit is the dynamic amount required by the contract (storage +
// whatever the proof's finalization needs) — supplied by the caller after
// a view call, not guessed here.
func BuildFinTransfer(bridgeContractID string, storageDepositActions []json.RawMessage, proverArgs []byte, deposit *big.Int) (UnsignedTransaction, error) {
	args, err := json.Marshal(map[string]any{
		"storage_deposit_actions": storageDepositActions,
		"prover_args":             mustHexJSON(proverArgs),
	})
	if err != nil {
		return UnsignedTransaction{}, bridgeerr.NewEncodingError(bridgeerr.KindMalformedEvent, "encoding fin_transfer args: %v", err)
	}
	return UnsignedTransaction{
		ReceiverID: bridgeContractID,
		Actions:    []Action{NewFunctionCall("fin_transfer", args, GasFinTransfer, deposit)},
	}, nil
}

// BuildSignTransfer emits sign_transfer, which requests an MPC signature
// over an outbound transfer already recorded on NEAR.
func BuildSignTransfer(bridgeContractID string, originNonce uint64, feeRecipient string) (UnsignedTransaction, error) {
	args, err := json.Marshal(map[string]any{
		"transfer_id":   map[string]uint64{"origin_nonce": originNonce},
		"fee_recipient": feeRecipient,
	})
	if err != nil {
		return UnsignedTransaction{}, bridgeerr.NewEncodingError(bridgeerr.KindMalformedEvent, "encoding sign_transfer args: %v", err)
	}
	return UnsignedTransaction{
		ReceiverID: bridgeContractID,
		Actions:    []Action{NewFunctionCall("sign_transfer", args, GasSignTransfer, DepositOneYocto)},
	}, nil
}

func mustJSONString(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		panic("nearbridge: marshal msg: " + err.Error())
	}
	return string(b)
}

func mustHexJSON(b []byte) json.RawMessage {
	out, err := json.Marshal(hexString(b))
	if err != nil {
		panic("nearbridge: marshal hex bytes: " + err.Error())
	}
	return out
}

func hexString(b []byte) string {
	const hexdigits = "0123456789abcdef"
	out := make([]byte, len(b)*2)
	for i, c := range b {
		out[i*2] = hexdigits[c>>4]
		out[i*2+1] = hexdigits[c&0x0f]
	}
	return string(out)
}
