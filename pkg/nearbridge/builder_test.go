// Copyright 2025 Certen Protocol

package nearbridge

import (
	"context"
	"encoding/json"
	"math/big"
	"strings"
	"testing"
)

type fakeViewClient struct {
	available       *big.Int
	requiredAccount *big.Int
	requiredInit    *big.Int
}

func (f *fakeViewClient) StorageBalanceOf(ctx context.Context, tokenContractID, accountID string) (*big.Int, error) {
	return f.available, nil
}

func (f *fakeViewClient) StorageBalanceBoundsMin(ctx context.Context, tokenContractID string) (*big.Int, error) {
	if f.requiredAccount == nil {
		return big.NewInt(0), nil
	}
	return f.requiredAccount, nil
}

func (f *fakeViewClient) RequiredBalanceForInitTransfer(ctx context.Context, bridgeContractID string) (*big.Int, error) {
	if f.requiredInit == nil {
		return big.NewInt(0), nil
	}
	return f.requiredInit, nil
}

func (f *fakeViewClient) RequiredBalanceForDeployToken(ctx context.Context, bridgeContractID string) (*big.Int, error) {
	v, _ := new(big.Int).SetString("1250000000000000000000", 10)
	return v, nil
}

func (f *fakeViewClient) RequiredBalanceForBindToken(ctx context.Context, bridgeContractID string) (*big.Int, error) {
	v, _ := new(big.Int).SetString("1250000000000000000000", 10)
	return v, nil
}

// TestBuildInitTransferNoGap covers §8 scenario 1: 1 wNEAR, no storage
// deposit action since the caller is already registered.
func TestBuildInitTransferNoGap(t *testing.T) {
	amount, _ := new(big.Int).SetString("1000000000000000000000000", 10)
	client := &fakeViewClient{available: big.NewInt(0)}

	tx, err := BuildInitTransfer(context.Background(), client, "wrap.testnet", "omni-locker.testnet", "alice.testnet", amount,
		InitTransferMessage{Recipient: "eth:0xA7C29dA7599817edA0f829E7B8d0FFE23D81c4d3"}, big.NewInt(0))
	if err != nil {
		t.Fatalf("BuildInitTransfer: %v", err)
	}
	if tx.ReceiverID != "wrap.testnet" {
		t.Errorf("ReceiverID = %q, want wrap.testnet", tx.ReceiverID)
	}
	if len(tx.Actions) != 1 {
		t.Fatalf("expected 1 action (no storage gap), got %d", len(tx.Actions))
	}
	fc := tx.Actions[0].FunctionCall
	if fc.MethodName != "ft_transfer_call" {
		t.Errorf("method = %q, want ft_transfer_call", fc.MethodName)
	}

	var args map[string]any
	if err := json.Unmarshal(fc.Args, &args); err != nil {
		t.Fatalf("decoding args: %v", err)
	}
	if args["receiver_id"] != "omni-locker.testnet" {
		t.Errorf("receiver_id = %v, want omni-locker.testnet", args["receiver_id"])
	}
	if args["amount"] != amount.String() {
		t.Errorf("amount = %v, want %s", args["amount"], amount.String())
	}
	msg, ok := args["msg"].(string)
	if !ok || !strings.Contains(msg, "eth:0xA7C29dA7599817edA0f829E7B8d0FFE23D81c4d3") {
		t.Errorf("msg = %v, want it to embed the recipient omni-address", args["msg"])
	}
}

func TestBuildInitTransferWithStorageGap(t *testing.T) {
	amount := big.NewInt(1_000_000)
	client := &fakeViewClient{available: big.NewInt(0), requiredAccount: big.NewInt(800), requiredInit: big.NewInt(450)}

	tx, err := BuildInitTransfer(context.Background(), client, "wrap.testnet", "omni-locker.testnet", "alice.testnet", amount,
		InitTransferMessage{Recipient: "eth:0xA7C29dA7599817edA0f829E7B8d0FFE23D81c4d3"}, big.NewInt(1250))
	if err != nil {
		t.Fatalf("BuildInitTransfer: %v", err)
	}
	if len(tx.Actions) != 2 {
		t.Fatalf("expected storage_deposit prepended, got %d actions", len(tx.Actions))
	}
	if tx.Actions[0].FunctionCall.MethodName != "storage_deposit" {
		t.Errorf("first action = %q, want storage_deposit", tx.Actions[0].FunctionCall.MethodName)
	}
	// needed = requiredAccount + requiredInit + nativeFee - available = 800 + 450 + 1250 - 0.
	if tx.Actions[0].FunctionCall.Deposit.Cmp(big.NewInt(2500)) != 0 {
		t.Errorf("storage deposit = %s, want 2500", tx.Actions[0].FunctionCall.Deposit)
	}
}

func TestBuildInitTransferNoGapWhenBalanceSufficient(t *testing.T) {
	client := &fakeViewClient{available: big.NewInt(10_000), requiredAccount: big.NewInt(800), requiredInit: big.NewInt(450)}
	tx, err := BuildInitTransfer(context.Background(), client, "wrap.testnet", "omni-locker.testnet", "alice.testnet", big.NewInt(1),
		InitTransferMessage{Recipient: "eth:0x1111111111111111111111111111111111111111"}, big.NewInt(1250))
	if err != nil {
		t.Fatalf("BuildInitTransfer: %v", err)
	}
	if len(tx.Actions) != 1 {
		t.Fatalf("expected no storage_deposit action (balance covers gap), got %d", len(tx.Actions))
	}
}

func TestBuildLogMetadataGasAndDeposit(t *testing.T) {
	tx := BuildLogMetadata("bridge.near", "wrap.testnet")
	fc := tx.Actions[0].FunctionCall
	if fc.Gas != 300*TGas {
		t.Errorf("gas = %d, want 300 TGas", fc.Gas)
	}
	if fc.Deposit.Cmp(DepositLogMetadata) != 0 {
		t.Errorf("deposit = %s, want 0.2 NEAR", fc.Deposit)
	}
}

func TestBuildFinTransferWrapsDynamicDeposit(t *testing.T) {
	proverArgs, err := SerializeProverArgs(NewWormholeProverArgs(ProofKindInitTransfer, "deadbeef"))
	if err != nil {
		t.Fatalf("SerializeProverArgs: %v", err)
	}
	tx, err := BuildFinTransfer("bridge.near", nil, proverArgs, big.NewInt(5000))
	if err != nil {
		t.Fatalf("BuildFinTransfer: %v", err)
	}
	if tx.Actions[0].FunctionCall.Deposit.Cmp(big.NewInt(5000)) != 0 {
		t.Errorf("deposit = %s, want 5000", tx.Actions[0].FunctionCall.Deposit)
	}
}
