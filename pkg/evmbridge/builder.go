// Copyright 2025 Certen Protocol
//
// EVM unsigned-transaction builders (§4.2). Each Build* function is a
// pure function of its inputs producing an EvmUnsignedTransaction ready
// for an external signer — the SDK never holds a private key or submits
// anything itself (§9: wallet-polymorphism becomes a sealed enum of
// unsigned-transaction variants built by distinct constructors, not
// runtime dispatch).

package evmbridge

import (
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"

	"github.com/certen/omni-bridge-sdk/pkg/bridgeerr"
)

// EvmUnsignedTransaction is directly consumable by any EVM signer; the
// builder never fills in nonce or gas price, both of which depend on
// chain state the SDK does not fetch.
type EvmUnsignedTransaction struct {
	To      common.Address
	Data    []byte
	Value   *big.Int
	ChainID uint64
}

var zeroAddress common.Address

// FinTransferArgs is the tuple argument of finTransfer (§4.2).
type FinTransferArgs struct {
	OriginNonce          uint64
	OriginChain          uint8
	OriginBlockTimestamp uint64
	Recipient            common.Address
	Amount               *big.Int
	FeeRecipient         common.Address
	Message              string
}

// DeployTokenArgs is the tuple argument of deployToken (§4.2).
type DeployTokenArgs struct {
	Name        string
	Symbol      string
	OriginChain string
	Decimals    uint8
}

// BuildTransfer emits the unsigned transaction for initTransfer. When
// token is the zero address (native asset), value carries amount and the
// call data encodes only the method arguments; for ERC-20 tokens, value
// carries nativeFee (the destination-chain gas subsidy) and amount rides
// inside data.
func BuildTransfer(bridgeContract common.Address, chainID uint64, token common.Address, amount, fee, nativeFee *big.Int, recipient, message string) (EvmUnsignedTransaction, error) {
	args := abi.Arguments{{Type: typeAddress}, {Type: typeUint128}, {Type: typeUint128}, {Type: typeUint128}, {Type: typeString}, {Type: typeString}}
	encodedArgs, err := packArgs(args, token, amount, fee, nativeFee, recipient, message)
	if err != nil {
		return EvmUnsignedTransaction{}, bridgeerr.NewEncodingError(bridgeerr.KindMalformedEvent, "encoding initTransfer args: %v", err)
	}

	data := append(selector(sigInitTransfer), encodedArgs...)

	value := nativeFee
	if token == zeroAddress {
		value = amount
	}

	return EvmUnsignedTransaction{To: bridgeContract, Data: data, Value: value, ChainID: chainID}, nil
}

// BuildApproval emits an ERC-20 approve(spender, amount) call.
func BuildApproval(token common.Address, chainID uint64, spender common.Address, amount *big.Int) (EvmUnsignedTransaction, error) {
	args := abi.Arguments{{Type: typeAddress}, {Type: typeUint256}}
	encodedArgs, err := packArgs(args, spender, amount)
	if err != nil {
		return EvmUnsignedTransaction{}, bridgeerr.NewEncodingError(bridgeerr.KindMalformedEvent, "encoding approve args: %v", err)
	}
	data := append(selector(sigApprove), encodedArgs...)
	return EvmUnsignedTransaction{To: token, Data: data, Value: big.NewInt(0), ChainID: chainID}, nil
}

// maxUint256 is the conventional "infinite" ERC-20 allowance.
var maxUint256 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(1))

// BuildMaxApproval emits an ERC-20 approve call with the maximum uint256
// allowance, so the caller never needs to re-approve.
func BuildMaxApproval(token common.Address, chainID uint64, spender common.Address) (EvmUnsignedTransaction, error) {
	return BuildApproval(token, chainID, spender, maxUint256)
}

// BuildFinalization emits the unsigned transaction for finTransfer, which
// submits an inbound proof to release funds on this chain.
func BuildFinalization(bridgeContract common.Address, chainID uint64, proof []byte, fin FinTransferArgs) (EvmUnsignedTransaction, error) {
	args := abi.Arguments{{Type: typeBytes}, {Type: finTransferArgsType}}
	encodedArgs, err := packArgs(args, proof, fin)
	if err != nil {
		return EvmUnsignedTransaction{}, bridgeerr.NewEncodingError(bridgeerr.KindMalformedEvent, "encoding finTransfer args: %v", err)
	}
	data := append(selector(sigFinTransfer), encodedArgs...)
	return EvmUnsignedTransaction{To: bridgeContract, Data: data, Value: big.NewInt(0), ChainID: chainID}, nil
}

// BuildLogMetadata emits the unsigned transaction for logMetadata, which
// records a token's name/symbol/decimals on-chain for later deployment
// elsewhere.
func BuildLogMetadata(bridgeContract common.Address, chainID uint64, token common.Address) (EvmUnsignedTransaction, error) {
	args := abi.Arguments{{Type: typeAddress}}
	encodedArgs, err := packArgs(args, token)
	if err != nil {
		return EvmUnsignedTransaction{}, bridgeerr.NewEncodingError(bridgeerr.KindMalformedEvent, "encoding logMetadata args: %v", err)
	}
	data := append(selector(sigLogMetadata), encodedArgs...)
	return EvmUnsignedTransaction{To: bridgeContract, Data: data, Value: big.NewInt(0), ChainID: chainID}, nil
}

// BuildDeployToken emits the unsigned transaction for deployToken, which
// deploys a wrapped representation of a token whose home chain is
// elsewhere, given a proof of the origin chain's logMetadata call.
func BuildDeployToken(bridgeContract common.Address, chainID uint64, proof []byte, deploy DeployTokenArgs) (EvmUnsignedTransaction, error) {
	args := abi.Arguments{{Type: typeBytes}, {Type: deployTokenArgsType}}
	encodedArgs, err := packArgs(args, proof, deploy)
	if err != nil {
		return EvmUnsignedTransaction{}, bridgeerr.NewEncodingError(bridgeerr.KindMalformedEvent, "encoding deployToken args: %v", err)
	}
	data := append(selector(sigDeployToken), encodedArgs...)
	return EvmUnsignedTransaction{To: bridgeContract, Data: data, Value: big.NewInt(0), ChainID: chainID}, nil
}
