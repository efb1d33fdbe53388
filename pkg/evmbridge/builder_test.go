// Copyright 2025 Certen Protocol

package evmbridge

import (
	"bytes"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"

	"github.com/certen/omni-bridge-sdk/pkg/chain"
)

func TestBuildTransferNative(t *testing.T) {
	bridge := common.HexToAddress("0xe00c629aFACCf0d41d99d898a4850ACd8C75C00c")
	amount := big.NewInt(1_000_000_000_000_000_000)
	fee := big.NewInt(0)
	nativeFee := big.NewInt(50_000)

	tx, err := BuildTransfer(bridge, 1, common.Address{}, amount, fee, nativeFee, "near:alice.testnet", "")
	if err != nil {
		t.Fatalf("BuildTransfer: %v", err)
	}
	if tx.Value.Cmp(amount) != 0 {
		t.Errorf("native transfer value = %s, want amount %s", tx.Value, amount)
	}
	if tx.To != bridge {
		t.Errorf("To = %s, want %s", tx.To, bridge)
	}
	gotSelector := tx.Data[:4]
	wantSelector := selector(sigInitTransfer)
	if !bytes.Equal(gotSelector, wantSelector) {
		t.Errorf("selector = %x, want %x", gotSelector, wantSelector)
	}
}

func TestBuildTransferERC20(t *testing.T) {
	bridge := common.HexToAddress("0xe00c629aFACCf0d41d99d898a4850ACd8C75C00c")
	token := common.HexToAddress("0x1111111111111111111111111111111111111111")
	amount := big.NewInt(500)
	fee := big.NewInt(10)
	nativeFee := big.NewInt(75_000)

	tx, err := BuildTransfer(bridge, 1, token, amount, fee, nativeFee, "near:alice.testnet", "")
	if err != nil {
		t.Fatalf("BuildTransfer: %v", err)
	}
	if tx.Value.Cmp(nativeFee) != 0 {
		t.Errorf("ERC20 transfer value = %s, want nativeFee %s", tx.Value, nativeFee)
	}
}

func TestBuildMaxApproval(t *testing.T) {
	token := common.HexToAddress("0x1111111111111111111111111111111111111111")
	spender := common.HexToAddress("0x2222222222222222222222222222222222222222")
	tx, err := BuildMaxApproval(token, 1, spender)
	if err != nil {
		t.Fatalf("BuildMaxApproval: %v", err)
	}
	if tx.To != token {
		t.Errorf("To = %s, want token %s", tx.To, token)
	}
	gotSelector := tx.Data[:4]
	wantSelector := selector(sigApprove)
	if !bytes.Equal(gotSelector, wantSelector) {
		t.Errorf("selector = %x, want %x", gotSelector, wantSelector)
	}
}

func TestBuildLogMetadata(t *testing.T) {
	bridge := common.HexToAddress("0xe00c629aFACCf0d41d99d898a4850ACd8C75C00c")
	token := common.HexToAddress("0x1111111111111111111111111111111111111111")
	tx, err := BuildLogMetadata(bridge, 1, token)
	if err != nil {
		t.Fatalf("BuildLogMetadata: %v", err)
	}
	if tx.Value.Sign() != 0 {
		t.Errorf("logMetadata value = %s, want 0", tx.Value)
	}
}

func TestGasLimitFor(t *testing.T) {
	limit, err := GasLimitFor(chain.Arb)
	if err != nil {
		t.Fatalf("GasLimitFor: %v", err)
	}
	if limit <= 250_000 {
		t.Errorf("arbitrum gas limit %d should notably exceed mainnet limits", limit)
	}
}
