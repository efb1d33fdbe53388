// Copyright 2025 Certen Protocol

package utxobridge

import "testing"

func hashOf(b byte) Hash256 {
	var h Hash256
	h[0] = b
	return doubleSHA256(h[:])
}

// TestMerkleProofFoldsToRoot covers §8 invariant 6: folding the leaf
// with its siblings per the emitted path yields the block's merkle_root.
func TestMerkleProofFoldsToRoot(t *testing.T) {
	txids := []Hash256{hashOf(1), hashOf(2), hashOf(3), hashOf(4), hashOf(5)}
	tree, err := BuildMerkleTree(txids)
	if err != nil {
		t.Fatalf("BuildMerkleTree: %v", err)
	}
	root := tree.Root()

	for i, leaf := range txids {
		proof, err := tree.ProveInclusion(i)
		if err != nil {
			t.Fatalf("ProveInclusion(%d): %v", i, err)
		}
		if !VerifyInclusion(leaf, proof, root) {
			t.Errorf("leaf %d: proof does not fold to root", i)
		}
	}
}

func TestMerkleTreeSingleLeaf(t *testing.T) {
	txids := []Hash256{hashOf(1)}
	tree, err := BuildMerkleTree(txids)
	if err != nil {
		t.Fatalf("BuildMerkleTree: %v", err)
	}
	if tree.Root() != txids[0] {
		t.Errorf("single-leaf tree root should equal the leaf, got %x want %x", tree.Root(), txids[0])
	}
}

func TestBuildUtxoProofByteOrder(t *testing.T) {
	txids := []Hash256{hashOf(1), hashOf(2), hashOf(3)}
	var blockHash Hash256

	btcProof, err := BuildUtxoProof([]byte("tx"), blockHash, txids, 1, true)
	if err != nil {
		t.Fatalf("BuildUtxoProof (bitcoin): %v", err)
	}
	zecProof, err := BuildUtxoProof([]byte("tx"), blockHash, txids, 1, false)
	if err != nil {
		t.Fatalf("BuildUtxoProof (zcash): %v", err)
	}
	for i := range btcProof.MerkleProof {
		if btcProof.MerkleProof[i] == zecProof.MerkleProof[i] {
			t.Errorf("sibling %d: bitcoin (reversed) and zcash (unreversed) proofs should differ in byte order", i)
		}
		if reverseHash(btcProof.MerkleProof[i]) != zecProof.MerkleProof[i] {
			t.Errorf("sibling %d: reversing the bitcoin sibling should recover the zcash (internal) order", i)
		}
	}
}

func TestBuildMerkleTreeRejectsEmpty(t *testing.T) {
	if _, err := BuildMerkleTree(nil); err == nil {
		t.Error("expected error building a tree from zero transactions")
	}
}
