// Copyright 2025 Certen Protocol
//
// Anchor instruction encoding (§4.4). Each instruction's first 8 bytes
// are the Anchor global discriminator — sha256("global:<name>")[:8] — a
// convention fixed by the Anchor framework itself, not something a
// library computes for us; the struct-shaped argument payload after it is
// Borsh-encoded with gagliardetto/binary the way solana-go's own Anchor
// client bindings do.

package solanabridge

import (
	"crypto/sha256"

	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"

	"github.com/certen/omni-bridge-sdk/pkg/bridgeerr"
)

// anchorDiscriminator computes the 8-byte global instruction
// discriminator Anchor embeds at the front of every instruction's data.
func anchorDiscriminator(name string) [8]byte {
	sum := sha256.Sum256([]byte("global:" + name))
	var out [8]byte
	copy(out[:], sum[:8])
	return out
}

// Instruction is the library-agnostic Solana instruction shape (§3): the
// caller supplies recent blockhash and fee payer when assembling the
// final transaction.
type Instruction struct {
	ProgramID solana.PublicKey
	Keys      []solana.AccountMeta
	Data      []byte
}

func meta(pubkey solana.PublicKey, isSigner, isWritable bool) solana.AccountMeta {
	return solana.AccountMeta{PublicKey: pubkey, IsSigner: isSigner, IsWritable: isWritable}
}

// encodeArgs Borsh-encodes args and prepends the Anchor discriminator for
// instructionName.
func encodeArgs(instructionName string, args any) ([]byte, error) {
	disc := anchorDiscriminator(instructionName)
	body, err := bin.MarshalBorsh(args)
	if err != nil {
		return nil, bridgeerr.NewEncodingError(bridgeerr.KindMalformedEvent, "borsh-encoding %s args: %v", instructionName, err)
	}
	return append(disc[:], body...), nil
}

// InitTransferArgs mirrors the Anchor program's init_transfer instruction
// arguments for a bridged SPL token.
type InitTransferArgs struct {
	Amount     uint64
	Fee        uint64
	NativeFee  uint64
	Recipient  string
	Message    string
}

// InitTransferSolArgs mirrors init_transfer_sol, the native-SOL variant
// (§6: "init_transfer or init_transfer_sol instruction on locker
// program").
type InitTransferSolArgs struct {
	Amount    uint64
	Fee       uint64
	NativeFee uint64
	Recipient string
	Message   string
}

// BuildInitTransfer emits the init_transfer instruction for a bridged SPL
// token transfer. mintAuthority/vault are whichever of the two PDAs
// apply — see ResolveMintKind.
func BuildInitTransfer(programID solana.PublicKey, feePayer, mint, sourceTokenAccount, authority, vaultOrAuthority, tokenProgram solana.PublicKey, args InitTransferArgs) (Instruction, error) {
	data, err := encodeArgs("init_transfer", args)
	if err != nil {
		return Instruction{}, err
	}
	return Instruction{
		ProgramID: programID,
		Keys: []solana.AccountMeta{
			meta(feePayer, true, true),
			meta(mint, false, true),
			meta(sourceTokenAccount, false, true),
			meta(authority, false, false),
			meta(vaultOrAuthority, false, true),
			meta(tokenProgram, false, false),
			meta(solana.SystemProgramID, false, false),
		},
		Data: data,
	}, nil
}

// BuildInitTransferSol emits the init_transfer_sol instruction for a
// native SOL transfer.
func BuildInitTransferSol(programID solana.PublicKey, feePayer, solVault solana.PublicKey, args InitTransferSolArgs) (Instruction, error) {
	data, err := encodeArgs("init_transfer_sol", args)
	if err != nil {
		return Instruction{}, err
	}
	return Instruction{
		ProgramID: programID,
		Keys: []solana.AccountMeta{
			meta(feePayer, true, true),
			meta(solVault, false, true),
			meta(solana.SystemProgramID, false, false),
		},
		Data: data,
	}, nil
}

// FinTransferArgs mirrors fin_transfer's instruction arguments: the
// opaque proof bytes plus the structured finalization metadata.
type FinTransferArgs struct {
	Proof                []byte
	OriginNonce          uint64
	OriginChain          uint8
	OriginBlockTimestamp uint64
	Amount               uint64
	FeeRecipient         string
	Message              string
}

// WormholeAccounts is the fixed set of Wormhole accounts — bridge config,
// fee collector, sequence, clock sysvar, rent sysvar, Wormhole program,
// post-message shim, and the shim's event authority — every finalization
// instruction includes so the init-transfer emits a signable VAA (§4.4).
type WormholeAccounts struct {
	BridgeConfig       solana.PublicKey
	FeeCollector       solana.PublicKey
	Sequence           solana.PublicKey
	ClockSysvar        solana.PublicKey
	RentSysvar         solana.PublicKey
	WormholeProgram    solana.PublicKey
	PostMessageShim    solana.PublicKey
	ShimEventAuthority solana.PublicKey
}

// metas renders the Wormhole account set as account metas in the fixed
// order the program expects.
func (w WormholeAccounts) metas() []solana.AccountMeta {
	return []solana.AccountMeta{
		meta(w.BridgeConfig, false, true),
		meta(w.FeeCollector, false, true),
		meta(w.Sequence, false, true),
		meta(w.ClockSysvar, false, false),
		meta(w.RentSysvar, false, false),
		meta(w.WormholeProgram, false, false),
		meta(w.PostMessageShim, false, false),
		meta(w.ShimEventAuthority, false, false),
	}
}

// BuildFinTransfer emits fin_transfer, releasing a bridged transfer on
// Solana given its inbound proof, always including the seven Wormhole
// accounts.
func BuildFinTransfer(programID solana.PublicKey, feePayer, mint, destTokenAccount, authority, vaultOrAuthority, tokenProgram solana.PublicKey, wormhole WormholeAccounts, args FinTransferArgs) (Instruction, error) {
	data, err := encodeArgs("fin_transfer", args)
	if err != nil {
		return Instruction{}, err
	}
	keys := []solana.AccountMeta{
		meta(feePayer, true, true),
		meta(mint, false, true),
		meta(destTokenAccount, false, true),
		meta(authority, false, false),
		meta(vaultOrAuthority, false, true),
		meta(tokenProgram, false, false),
	}
	keys = append(keys, wormhole.metas()...)
	return Instruction{ProgramID: programID, Keys: keys, Data: data}, nil
}

// DeployTokenArgs mirrors deploy_token's arguments: a proof of the origin
// chain's logMetadata call plus the token metadata it attests to.
type DeployTokenArgs struct {
	Proof    []byte
	Name     string
	Symbol   string
	Decimals uint8
}

// BuildDeployToken emits deploy_token, creating the wrapped mint and its
// metadata account. Idempotency (§7): if the metadata account already
// exists, the caller is expected to recognize the on-chain
// AccountNotSystemOwned-family failure as an idempotent success rather
// than retry with different arguments — see bridgeerr.NewIdempotentContractError
// and ResolveRedeploymentError.
func BuildDeployToken(programID solana.PublicKey, payer, wrappedMint, metadata, authority solana.PublicKey, tokenProgram solana.PublicKey, args DeployTokenArgs) (Instruction, error) {
	data, err := encodeArgs("deploy_token", args)
	if err != nil {
		return Instruction{}, err
	}
	return Instruction{
		ProgramID: programID,
		Keys: []solana.AccountMeta{
			meta(payer, true, true),
			meta(wrappedMint, false, true),
			meta(metadata, false, true),
			meta(authority, false, false),
			meta(tokenProgram, false, false),
			meta(solana.SystemProgramID, false, false),
		},
		Data: data,
	}, nil
}
