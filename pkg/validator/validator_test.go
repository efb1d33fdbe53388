// Copyright 2025 Certen Protocol

package validator

import (
	"context"
	"math/big"
	"testing"

	"github.com/certen/omni-bridge-sdk/pkg/bridgeerr"
	"github.com/certen/omni-bridge-sdk/pkg/chain"
)

type fakeRegistry struct {
	contractAddress string
	decimals        TokenDecimals
	err             error
}

func (f fakeRegistry) BridgedToken(ctx context.Context, token chain.Address, destChain chain.Kind) (string, TokenDecimals, error) {
	if f.err != nil {
		return "", TokenDecimals{}, f.err
	}
	return f.contractAddress, f.decimals, nil
}

func mustAddr(t *testing.T, raw string) chain.Address {
	t.Helper()
	addr, err := chain.Parse(raw)
	if err != nil {
		t.Fatalf("Parse(%q): %v", raw, err)
	}
	return addr
}

func TestValidateTransferSuccess(t *testing.T) {
	params := TransferParams{
		Token:     mustAddr(t, "near:wrap.testnet"),
		Amount:    new(big.Int).Exp(big.NewInt(10), big.NewInt(24), nil),
		Fee:       big.NewInt(0),
		NativeFee: big.NewInt(0),
		Sender:    mustAddr(t, "near:alice.testnet"),
		Recipient: mustAddr(t, "eth:0xA7C29dA7599817edA0f829E7B8d0FFE23D81c4d3"),
	}
	registry := fakeRegistry{
		contractAddress: "0xBridgeFactory",
		decimals:        TokenDecimals{Decimals: 18, OriginDecimals: 24},
	}
	vt, err := ValidateTransfer(context.Background(), params, registry)
	if err != nil {
		t.Fatalf("ValidateTransfer: %v", err)
	}
	want := new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil)
	if vt.NormalizedAmount.Cmp(want) != 0 {
		t.Errorf("NormalizedAmount = %s, want %s", vt.NormalizedAmount, want)
	}
	if vt.NormalizedFee.Sign() != 0 {
		t.Errorf("NormalizedFee = %s, want 0", vt.NormalizedFee)
	}
}

func TestValidateTransferSameChain(t *testing.T) {
	params := TransferParams{
		Token:     mustAddr(t, "near:wrap.testnet"),
		Amount:    big.NewInt(1),
		Sender:    mustAddr(t, "near:alice.testnet"),
		Recipient: mustAddr(t, "near:bob.testnet"),
	}
	_, err := ValidateTransfer(context.Background(), params, fakeRegistry{})
	assertKind(t, err, bridgeerr.KindSameChain)
}

func TestValidateTransferNonPositiveAmount(t *testing.T) {
	params := TransferParams{
		Token:     mustAddr(t, "near:wrap.testnet"),
		Amount:    big.NewInt(0),
		Sender:    mustAddr(t, "near:alice.testnet"),
		Recipient: mustAddr(t, "eth:0xA7C29dA7599817edA0f829E7B8d0FFE23D81c4d3"),
	}
	_, err := ValidateTransfer(context.Background(), params, fakeRegistry{})
	assertKind(t, err, bridgeerr.KindInvalidAmount)
}

func TestValidateTransferFeeExceedsAmount(t *testing.T) {
	params := TransferParams{
		Token:     mustAddr(t, "near:wrap.testnet"),
		Amount:    big.NewInt(100),
		Fee:       big.NewInt(100),
		Sender:    mustAddr(t, "near:alice.testnet"),
		Recipient: mustAddr(t, "eth:0xA7C29dA7599817edA0f829E7B8d0FFE23D81c4d3"),
	}
	_, err := ValidateTransfer(context.Background(), params, fakeRegistry{})
	assertKind(t, err, bridgeerr.KindFeeExceedsAmount)
}

func TestValidateTransferDustAfterNormalization(t *testing.T) {
	params := TransferParams{
		Token:     mustAddr(t, "near:wrap.testnet"),
		Amount:    big.NewInt(1_999_999),
		Fee:       big.NewInt(1_000_000),
		Sender:    mustAddr(t, "near:alice.testnet"),
		Recipient: mustAddr(t, "eth:0xA7C29dA7599817edA0f829E7B8d0FFE23D81c4d3"),
	}
	registry := fakeRegistry{
		contractAddress: "0xBridgeFactory",
		// Scaling down by 10^6 truncates both amount and fee to the same
		// normalized value (1), leaving zero after subtraction.
		decimals: TokenDecimals{Decimals: 0, OriginDecimals: 6},
	}
	_, err := ValidateTransfer(context.Background(), params, registry)
	assertKind(t, err, bridgeerr.KindDustAfterNormalization)
}

func TestValidateTransferTokenNotRegistered(t *testing.T) {
	params := TransferParams{
		Token:     mustAddr(t, "near:wrap.testnet"),
		Amount:    big.NewInt(100),
		Sender:    mustAddr(t, "near:alice.testnet"),
		Recipient: mustAddr(t, "eth:0xA7C29dA7599817edA0f829E7B8d0FFE23D81c4d3"),
	}
	registry := fakeRegistry{err: bridgeerr.NewValidationError(bridgeerr.KindTokenNotRegistered, "not found")}
	_, err := ValidateTransfer(context.Background(), params, registry)
	assertKind(t, err, bridgeerr.KindTokenNotRegistered)
}

func TestValidateTransferInvalidAddress(t *testing.T) {
	params := TransferParams{
		Token:     mustAddr(t, "near:wrap.testnet"),
		Amount:    big.NewInt(100),
		Sender:    chain.Address{Chain: chain.Near, Native: "Invalid_Upper.testnet"},
		Recipient: mustAddr(t, "eth:0xA7C29dA7599817edA0f829E7B8d0FFE23D81c4d3"),
	}
	_, err := ValidateTransfer(context.Background(), params, fakeRegistry{})
	assertKind(t, err, bridgeerr.KindInvalidAddress)
}

func assertKind(t *testing.T, err error, want bridgeerr.Kind) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error with kind %s, got nil", want)
	}
	got, ok := bridgeerr.KindOf(err)
	if !ok {
		t.Fatalf("expected typed error with kind %s, got %v", want, err)
	}
	if got != want {
		t.Fatalf("kind = %s, want %s", got, want)
	}
}
