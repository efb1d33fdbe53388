// Copyright 2025 Certen Protocol
//
// Address-to-script encoding (§4.5). Bitcoin addresses decode and
// re-encode through btcutil/txscript directly; Zcash reuses Bitcoin's
// transparent P2PKH/P2SH script templates under its own version bytes,
// which btcutil doesn't know about, so those two cases are built by hand
// from the decoded hash160 payload.

package utxobridge

import (
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/txscript"
	"github.com/mr-tron/base58"

	"github.com/certen/omni-bridge-sdk/pkg/bridgeerr"
)

// zcashVersionP2PKH and zcashVersionP2SH are Zcash's two-byte transparent
// address version prefixes (mainnet t1/t3).
var (
	zcashVersionP2PKH = [2]byte{0x1C, 0xB8}
	zcashVersionP2SH  = [2]byte{0x1C, 0xBD}
)

// BitcoinAddressToScript decodes a Bitcoin address for params and
// re-encodes it as the locking script that funds sent to it must
// satisfy. Wrong-network addresses are rejected by btcutil itself.
func BitcoinAddressToScript(address string, params *chaincfg.Params) ([]byte, error) {
	addr, err := btcutil.DecodeAddress(address, params)
	if err != nil {
		return nil, bridgeerr.NewEncodingError(bridgeerr.KindMalformedAddress, "decoding bitcoin address %q: %v", address, err)
	}
	if !addr.IsForNet(params) {
		return nil, bridgeerr.NewEncodingError(bridgeerr.KindMalformedAddress, "address %q is not valid for network %s", address, params.Name)
	}
	script, err := txscript.PayToAddrScript(addr)
	if err != nil {
		return nil, bridgeerr.NewEncodingError(bridgeerr.KindMalformedAddress, "building script for %q: %v", address, err)
	}
	return script, nil
}

// ZcashAddressToScript decodes a Zcash transparent address and builds the
// equivalent P2PKH or P2SH script. Shielded addresses are unsupported
// (§4.5 non-goal).
func ZcashAddressToScript(address string) ([]byte, error) {
	decoded, err := base58.Decode(address)
	if err != nil || len(decoded) != 26 {
		return nil, bridgeerr.NewEncodingError(bridgeerr.KindMalformedAddress, "invalid zcash transparent address %q", address)
	}
	version := [2]byte{decoded[0], decoded[1]}
	hash := decoded[2:22]

	switch version {
	case zcashVersionP2PKH:
		return txscript.NewScriptBuilder().
			AddOp(txscript.OP_DUP).
			AddOp(txscript.OP_HASH160).
			AddData(hash).
			AddOp(txscript.OP_EQUALVERIFY).
			AddOp(txscript.OP_CHECKSIG).
			Script()
	case zcashVersionP2SH:
		return txscript.NewScriptBuilder().
			AddOp(txscript.OP_HASH160).
			AddData(hash).
			AddOp(txscript.OP_EQUAL).
			Script()
	default:
		return nil, bridgeerr.NewEncodingError(bridgeerr.KindMalformedAddress, "unrecognized zcash address version for %q", address)
	}
}
