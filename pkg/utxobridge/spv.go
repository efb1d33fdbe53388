// Copyright 2025 Certen Protocol
//
// UTXO SPV proof construction (§4.5). Builds the standard Bitcoin-style
// Merkle tree — double-sha256, duplicating the last node at each level
// when the level has an odd count — and derives the sibling path proving
// one transaction's inclusion. Both Bitcoin and Zcash build the tree the
// same way; they differ only in the byte order the receiving contract
// expects proof siblings emitted in (§4.5).

package utxobridge

import (
	"crypto/sha256"

	"github.com/certen/omni-bridge-sdk/pkg/bridgeerr"
)

// Hash256 is a double-sha256 digest, the hash primitive the Bitcoin-style
// Merkle tree uses throughout.
type Hash256 [32]byte

func doubleSHA256(data []byte) Hash256 {
	first := sha256.Sum256(data)
	return sha256.Sum256(first[:])
}

func combine(left, right Hash256) Hash256 {
	buf := make([]byte, 64)
	copy(buf[:32], left[:])
	copy(buf[32:], right[:])
	return doubleSHA256(buf)
}

// MerkleTree holds every level of a Bitcoin-style Merkle tree, leaves
// first, so a proof for any leaf index can be read off directly.
type MerkleTree struct {
	levels [][]Hash256 // levels[0] = leaves, levels[len-1] = [root]
}

// BuildMerkleTree constructs the tree over txids in block order. An odd
// level duplicates its last node before pairing, matching both Bitcoin's
// and Zcash's convention (§4.5).
func BuildMerkleTree(txids []Hash256) (*MerkleTree, error) {
	if len(txids) == 0 {
		return nil, bridgeerr.NewEncodingError(bridgeerr.KindMalformedEvent, "cannot build merkle tree from zero transactions")
	}
	level := make([]Hash256, len(txids))
	copy(level, txids)
	levels := [][]Hash256{level}

	for len(level) > 1 {
		if len(level)%2 == 1 {
			level = append(level, level[len(level)-1])
		}
		next := make([]Hash256, len(level)/2)
		for i := range next {
			next[i] = combine(level[2*i], level[2*i+1])
		}
		levels = append(levels, next)
		level = next
	}
	return &MerkleTree{levels: levels}, nil
}

// Root returns the tree's Merkle root.
func (t *MerkleTree) Root() Hash256 {
	top := t.levels[len(t.levels)-1]
	return top[0]
}

// Proof is the sibling path from a leaf to the tree's root, along with
// the leaf's original position.
type Proof struct {
	Siblings []Hash256
	Index    int
}

// ProveInclusion derives the sibling path for the leaf at index.
func (t *MerkleTree) ProveInclusion(index int) (Proof, error) {
	leaves := t.levels[0]
	if index < 0 || index >= len(leaves) {
		return Proof{}, bridgeerr.NewEncodingError(bridgeerr.KindMalformedEvent, "leaf index %d out of range (tree has %d leaves)", index, len(leaves))
	}

	var siblings []Hash256
	idx := index
	for level := 0; level < len(t.levels)-1; level++ {
		nodes := t.levels[level]
		var siblingIdx int
		if idx%2 == 0 {
			siblingIdx = idx + 1
		} else {
			siblingIdx = idx - 1
		}
		if siblingIdx >= len(nodes) {
			siblingIdx = idx // duplicated final node case
		}
		siblings = append(siblings, nodes[siblingIdx])
		idx /= 2
	}
	return Proof{Siblings: siblings, Index: index}, nil
}

// VerifyInclusion folds leaf with proof's sibling path and reports
// whether the result equals root (§8 invariant 6).
func VerifyInclusion(leaf Hash256, proof Proof, root Hash256) bool {
	current := leaf
	idx := proof.Index
	for _, sibling := range proof.Siblings {
		if idx%2 == 0 {
			current = combine(current, sibling)
		} else {
			current = combine(sibling, current)
		}
		idx /= 2
	}
	return current == root
}

// UtxoProof is the opaque SPV proof blob the NEAR connector's prover
// accepts (§3).
type UtxoProof struct {
	TxBytes          []byte
	TxBlockBlockhash Hash256
	TxIndex          uint32
	MerkleProof      []Hash256 // byte order matches the destination chain's convention
}

// BuildUtxoProof constructs an UtxoProof for the transaction at txIndex
// within a block whose ordered transaction-id list is txids, reversing
// sibling byte order for Bitcoin (the chain's conventional display/wire
// order) but leaving Zcash's internal order untouched (§4.5).
func BuildUtxoProof(txBytes []byte, blockHash Hash256, txids []Hash256, txIndex int, reverseSiblings bool) (UtxoProof, error) {
	tree, err := BuildMerkleTree(txids)
	if err != nil {
		return UtxoProof{}, err
	}
	proof, err := tree.ProveInclusion(txIndex)
	if err != nil {
		return UtxoProof{}, err
	}

	siblings := make([]Hash256, len(proof.Siblings))
	for i, s := range proof.Siblings {
		if reverseSiblings {
			siblings[i] = reverseHash(s)
		} else {
			siblings[i] = s
		}
	}

	return UtxoProof{
		TxBytes:          txBytes,
		TxBlockBlockhash: blockHash,
		TxIndex:          uint32(txIndex),
		MerkleProof:      siblings,
	}, nil
}

func reverseHash(h Hash256) Hash256 {
	var out Hash256
	for i := range h {
		out[i] = h[len(h)-1-i]
	}
	return out
}
