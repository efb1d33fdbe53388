// Copyright 2025 Certen Protocol

package evmbridge

import (
	"bytes"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/rlp"
	"github.com/ethereum/go-ethereum/trie"
)

// memProofDB adapts a flat list of trie node RLPs to ethdb.KeyValueReader,
// keyed by each node's Keccak256 hash, for trie.VerifyProof.
type memProofDB struct{ nodes map[string][]byte }

func newMemProofDB(proof [][]byte) *memProofDB {
	db := &memProofDB{nodes: make(map[string][]byte, len(proof))}
	for _, node := range proof {
		db.nodes[string(crypto.Keccak256(node))] = node
	}
	return db
}

func (db *memProofDB) Has(key []byte) (bool, error) {
	_, ok := db.nodes[string(key)]
	return ok, nil
}

func (db *memProofDB) Get(key []byte) ([]byte, error) {
	v, ok := db.nodes[string(key)]
	if !ok {
		return nil, errMismatch{}
	}
	return v, nil
}

func sampleReceipts(t *testing.T) types.Receipts {
	t.Helper()
	topic := ERC20TransferTopic
	mkReceipt := func(status uint64, withLog bool) *types.Receipt {
		r := &types.Receipt{
			Type:              types.LegacyTxType,
			Status:            status,
			CumulativeGasUsed: 21000,
		}
		if withLog {
			r.Logs = []*types.Log{{
				Address: common.HexToAddress("0x1111111111111111111111111111111111111111"),
				Topics:  []common.Hash{topic},
				Data:    []byte{0x01},
			}}
		}
		r.Bloom = types.CreateBloom(types.Receipts{r})
		return r
	}
	return types.Receipts{
		mkReceipt(1, false),
		mkReceipt(1, true),
		mkReceipt(1, false),
	}
}

func TestBuildReceiptTrieMatchesDeriveSha(t *testing.T) {
	receipts := sampleReceipts(t)
	tr, err := BuildReceiptTrie(receipts)
	if err != nil {
		t.Fatalf("BuildReceiptTrie: %v", err)
	}
	got := tr.Hash()
	want := types.DeriveSha(receipts, trie.NewStackTrie(nil))
	if got != want {
		t.Errorf("trie root %s does not match DeriveSha %s", got, want)
	}
}

func TestExtractReceiptProof(t *testing.T) {
	receipts := sampleReceipts(t)
	header := &types.Header{
		Number:     big.NewInt(100),
		ReceiptHash: types.DeriveSha(receipts, trie.NewStackTrie(nil)),
	}

	proof, err := ExtractReceiptProof(header, receipts, 1, ERC20TransferTopic)
	if err != nil {
		t.Fatalf("ExtractReceiptProof: %v", err)
	}
	if proof.LogIndex != 0 {
		t.Errorf("LogIndex = %d, want 0", proof.LogIndex)
	}
	if proof.ReceiptIndex != 1 {
		t.Errorf("ReceiptIndex = %d, want 1", proof.ReceiptIndex)
	}
	if len(proof.Proof) == 0 {
		t.Fatal("expected non-empty proof node list")
	}

	wantReceiptData, _ := receipts[1].MarshalBinary()
	if !bytes.Equal(proof.ReceiptData, wantReceiptData) {
		t.Error("ReceiptData does not match receipt.MarshalBinary()")
	}

	key, _ := rlp.EncodeToBytes(uint(1))
	if err := verifyProofAgainstRoot(header.ReceiptHash, key, proof.Proof, wantReceiptData); err != nil {
		t.Errorf("proof does not verify against header.ReceiptHash: %v", err)
	}
}

func TestExtractReceiptProofLogNotFound(t *testing.T) {
	receipts := sampleReceipts(t)
	header := &types.Header{Number: big.NewInt(100)}
	_, err := ExtractReceiptProof(header, receipts, 0, ERC20TransferTopic)
	if err == nil {
		t.Fatal("expected LOG_NOT_FOUND error for receipt with no matching log")
	}
}

func TestExtractReceiptProofOutOfRange(t *testing.T) {
	receipts := sampleReceipts(t)
	header := &types.Header{Number: big.NewInt(100)}
	_, err := ExtractReceiptProof(header, receipts, 99, ERC20TransferTopic)
	if err == nil {
		t.Fatal("expected RECEIPT_NOT_FOUND error for out-of-range index")
	}
}

// verifyProofAgainstRoot replays the proof nodes through trie.VerifyProof,
// the read-side counterpart of the Prove call ExtractReceiptProof makes.
func verifyProofAgainstRoot(root common.Hash, key []byte, proof [][]byte, wantValue []byte) error {
	db := newMemProofDB(proof)
	got, err := trie.VerifyProof(root, key, db)
	if err != nil {
		return err
	}
	if !bytes.Equal(got, wantValue) {
		return errMismatch{got: got, want: wantValue}
	}
	return nil
}

type errMismatch struct{ got, want []byte }

func (e errMismatch) Error() string { return "proof value mismatch" }
