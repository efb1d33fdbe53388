// Copyright 2025 Certen Protocol

package evmbridge

import (
	"context"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/certen/omni-bridge-sdk/pkg/bridgeerr"
)

// rpcBackoff is the retry schedule for RPC suspension points (§5):
// immediate, 1s, 2s.
var rpcBackoff = []time.Duration{0, time.Second, 2 * time.Second}

func fetchHeaderWithRetry(ctx context.Context, client ReceiptFetcher, blockHash common.Hash) (*types.Header, error) {
	var lastErr error
	for _, wait := range rpcBackoff {
		if err := sleepOrCancel(ctx, wait); err != nil {
			return nil, err
		}
		header, err := client.HeaderByHash(ctx, blockHash)
		if err == nil {
			return header, nil
		}
		lastErr = err
	}
	return nil, bridgeerr.NewRpcError(bridgeerr.KindRPCError, len(rpcBackoff), "fetching block header "+blockHash.Hex(), lastErr)
}

func fetchReceiptWithRetry(ctx context.Context, client ReceiptFetcher, txHash common.Hash) (*types.Receipt, error) {
	var lastErr error
	for _, wait := range rpcBackoff {
		if err := sleepOrCancel(ctx, wait); err != nil {
			return nil, err
		}
		receipt, err := client.TransactionReceipt(ctx, txHash)
		if err == nil {
			return receipt, nil
		}
		lastErr = err
	}
	return nil, bridgeerr.NewRpcError(bridgeerr.KindRPCError, len(rpcBackoff), "fetching receipt for "+txHash.Hex(), lastErr)
}

func sleepOrCancel(ctx context.Context, wait time.Duration) error {
	if wait <= 0 {
		select {
		case <-ctx.Done():
			return bridgeerr.ErrCancelled
		default:
			return nil
		}
	}
	t := time.NewTimer(wait)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return bridgeerr.ErrCancelled
	case <-t.C:
		return nil
	}
}
