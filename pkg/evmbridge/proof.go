// Copyright 2025 Certen Protocol
//
// EVM→NEAR inbound proof extraction (§4.2). Builds a Merkle-Patricia
// Trie over every receipt in a block, keyed by RLP(receipt index) exactly
// as go-ethereum's own DeriveSha does, then proves inclusion of the
// receipt of interest. Grounded directly on the teacher's
// constructReceiptInclusionProof (pkg/execution/external_chain_observer.go):
// trie.NewEmpty(nil) + rlp.EncodeToBytes(index) keys + trie.Prove into a
// custom ethdb.KeyValueWriter collector.

package evmbridge

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/rlp"
	"github.com/ethereum/go-ethereum/trie"

	"github.com/certen/omni-bridge-sdk/pkg/bridgeerr"
)

// ERC20TransferTopic is the canonical topic0 for the standard ERC-20
// Transfer(address,address,uint256) event.
var ERC20TransferTopic = common.HexToHash("0xddf252ad1be2c89b69c2b068fc378daa952ba7f163c4a11628f55a4df523b3ef")

// InitTransferTopic is the canonical topic0 for the bridge contract's
// InitTransfer event (§6).
var InitTransferTopic = crypto.Keccak256Hash([]byte("InitTransfer(address,address,uint64,uint128,uint128,uint128,string,string)"))

// EvmProof is the opaque inbound proof blob consumed by the NEAR
// connector's fin_transfer (§3).
type EvmProof struct {
	LogIndex     uint64
	LogEntryData []byte   // RLP of the selected log entry
	ReceiptIndex uint64
	ReceiptData  []byte   // typed-envelope receipt bytes
	HeaderData   []byte   // RLP of the block header
	Proof        [][]byte // MPT nodes from root to the receipt leaf
}

// ReceiptFetcher is the minimal RPC surface the extractor needs. An
// *ethclient.Client satisfies it.
type ReceiptFetcher interface {
	HeaderByHash(ctx context.Context, hash common.Hash) (*types.Header, error)
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
}

// proofCollector implements ethdb.KeyValueWriter, capturing every trie
// node trie.Prove writes, in the order it writes them (root to leaf).
type proofCollector struct {
	nodes [][]byte
}

func (p *proofCollector) Put(key, value []byte) error {
	node := make([]byte, len(value))
	copy(node, value)
	p.nodes = append(p.nodes, node)
	return nil
}

func (p *proofCollector) Delete(key []byte) error { return nil }

// BuildReceiptTrie inserts every receipt's typed-envelope encoding into a
// fresh trie keyed by RLP(index), matching the key scheme
// types.DeriveSha uses for a block's receiptsRoot.
func BuildReceiptTrie(receipts types.Receipts) (*trie.Trie, error) {
	t := trie.NewEmpty(nil)
	for i, r := range receipts {
		key, err := rlp.EncodeToBytes(uint(i))
		if err != nil {
			return nil, fmt.Errorf("evmbridge: encode receipt index %d: %w", i, err)
		}
		val, err := r.MarshalBinary()
		if err != nil {
			return nil, fmt.Errorf("evmbridge: marshal receipt %d: %w", i, err)
		}
		if err := t.Update(key, val); err != nil {
			return nil, fmt.Errorf("evmbridge: insert receipt %d into trie: %w", i, err)
		}
	}
	return t, nil
}

// ExtractReceiptProof constructs an EvmProof for the receipt at
// receiptIndex within receipts, against header. The log index within the
// receipt is the first log whose Topics[0] equals topic.
func ExtractReceiptProof(header *types.Header, receipts types.Receipts, receiptIndex uint64, topic common.Hash) (EvmProof, error) {
	if receiptIndex >= uint64(len(receipts)) {
		return EvmProof{}, bridgeerr.NewEncodingError(bridgeerr.KindReceiptNotFound,
			"receipt index %d out of range (block has %d receipts)", receiptIndex, len(receipts))
	}
	receipt := receipts[receiptIndex]

	logIndex := -1
	for i, lg := range receipt.Logs {
		if len(lg.Topics) > 0 && lg.Topics[0] == topic {
			logIndex = i
			break
		}
	}
	if logIndex < 0 {
		return EvmProof{}, bridgeerr.NewEncodingError(bridgeerr.KindLogNotFound,
			"no log in receipt %d matches topic %s", receiptIndex, topic.Hex())
	}

	t, err := BuildReceiptTrie(receipts)
	if err != nil {
		return EvmProof{}, bridgeerr.NewProofError(bridgeerr.KindProofFetchFailed, "building receipt trie", err)
	}

	key, err := rlp.EncodeToBytes(uint(receiptIndex))
	if err != nil {
		return EvmProof{}, bridgeerr.NewEncodingError(bridgeerr.KindMalformedEvent, "encoding receipt index: %v", err)
	}

	collector := &proofCollector{}
	if err := t.Prove(key, collector); err != nil {
		return EvmProof{}, bridgeerr.NewProofError(bridgeerr.KindProofFetchFailed, "proving receipt inclusion", err)
	}

	receiptData, err := receipt.MarshalBinary()
	if err != nil {
		return EvmProof{}, bridgeerr.NewEncodingError(bridgeerr.KindMalformedEvent, "marshaling receipt: %v", err)
	}

	logEntryData, err := rlp.EncodeToBytes(receipt.Logs[logIndex])
	if err != nil {
		return EvmProof{}, bridgeerr.NewEncodingError(bridgeerr.KindMalformedEvent, "encoding log entry: %v", err)
	}

	headerData, err := rlp.EncodeToBytes(header)
	if err != nil {
		return EvmProof{}, bridgeerr.NewEncodingError(bridgeerr.KindMalformedEvent, "encoding block header: %v", err)
	}

	return EvmProof{
		LogIndex:     uint64(logIndex),
		LogEntryData: logEntryData,
		ReceiptIndex: receiptIndex,
		ReceiptData:  receiptData,
		HeaderData:   headerData,
		Proof:        collector.nodes,
	}, nil
}

// FetchAndExtractReceiptProof retries the block header and full receipt
// set over RPC (three attempts, immediate/1s/2s backoff per §5) before
// building the proof. blockHash and receiptIndex identify the receipt of
// interest; txHashes must list every transaction in the block in order,
// since the on-chain receiptsRoot commits to all of them.
func FetchAndExtractReceiptProof(ctx context.Context, client ReceiptFetcher, blockHash common.Hash, txHashes []common.Hash, receiptIndex uint64, topic common.Hash) (EvmProof, error) {
	header, err := fetchHeaderWithRetry(ctx, client, blockHash)
	if err != nil {
		return EvmProof{}, err
	}

	receipts := make(types.Receipts, len(txHashes))
	for i, txHash := range txHashes {
		r, err := fetchReceiptWithRetry(ctx, client, txHash)
		if err != nil {
			return EvmProof{}, err
		}
		receipts[i] = r
	}

	return ExtractReceiptProof(header, receipts, receiptIndex, topic)
}
