// Copyright 2025 Certen Protocol
//
// Wormhole VAA retrieval (§4.4, §5, §9). The guardian network signs a VAA
// asynchronously after the originating transaction confirms, so fetching
// one is a poll rather than a single RPC call. §9 flags the natural
// "loop and throw on timeout" shape as exception-for-control-flow and
// asks for an explicit state machine instead; Fetcher below is that
// state machine, modeled on the retry/backoff shape bridgeapi.Client
// uses for its own polling RPCs.

package wormhole

import (
	"context"
	"encoding/hex"
	"time"

	"github.com/certen/omni-bridge-sdk/pkg/bridgeerr"
)

// State is one of the four states the VAA poll can be in (§9).
type State string

const (
	StatePolling   State = "POLLING"
	StateReady     State = "READY"
	StateTimeout   State = "TIMEOUT"
	StateCancelled State = "CANCELLED"
)

// Vaa is the hex-encoded serialized VAA the NEAR prover args wrap (§3's
// WormholeVaa, §4.3 ProverArgs).
type Vaa struct {
	Bytes    []byte
	Sequence uint64
}

// Hex returns the VAA's hex-encoded wire bytes, the representation §3
// specifies for WormholeVaa.
func (v Vaa) Hex() string {
	return hex.EncodeToString(v.Bytes)
}

// GuardianClient fetches one VAA by emitter chain, emitter address, and
// sequence number from a guardian RPC or Wormholescan-style API. It
// returns (vaa, true, nil) once signed, (zero, false, nil) while the
// guardians have not yet produced a signature, and a non-nil error only
// for a hard RPC failure.
type GuardianClient interface {
	FetchVaa(ctx context.Context, emitterChain uint16, emitterAddress string, sequence uint64) (Vaa, bool, error)
}

// Fetcher drives the {Polling, Ready, Timeout, Cancelled} state machine
// described in §9 over a GuardianClient, replacing a bare loop-and-throw
// with state the caller can inspect between polls.
type Fetcher struct {
	client       GuardianClient
	pollInterval time.Duration
	window       time.Duration
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithPollInterval overrides the default 2s interval between poll
// attempts.
func WithPollInterval(d time.Duration) Option {
	return func(f *Fetcher) { f.pollInterval = d }
}

// WithWindow overrides the default 120s total poll window (§5, §9).
func WithWindow(d time.Duration) Option {
	return func(f *Fetcher) { f.window = d }
}

// NewFetcher builds a Fetcher against client with the §5 default window
// of 120 seconds and a 2s poll interval.
func NewFetcher(client GuardianClient, opts ...Option) *Fetcher {
	f := &Fetcher{
		client:       client,
		pollInterval: 2 * time.Second,
		window:       120 * time.Second,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Result is the terminal outcome of a Fetch call: exactly one of State
// Ready (with Vaa populated), Timeout, or Cancelled.
type Result struct {
	State State
	Vaa   Vaa
}

// Fetch polls client for the VAA identified by (emitterChain,
// emitterAddress, sequence) until it is signed, the 120s window elapses,
// or ctx is cancelled — whichever happens first. It never panics or
// throws on timeout; Timeout and Cancelled are ordinary Result values,
// matching the explicit state machine §9 calls for.
func (f *Fetcher) Fetch(ctx context.Context, emitterChain uint16, emitterAddress string, sequence uint64) (Result, error) {
	deadline := time.After(f.window)
	ticker := time.NewTicker(f.pollInterval)
	defer ticker.Stop()

	for {
		vaa, ready, err := f.client.FetchVaa(ctx, emitterChain, emitterAddress, sequence)
		if err != nil {
			return Result{State: StatePolling}, bridgeerr.NewProofError(bridgeerr.KindProofFetchFailed, "fetching wormhole vaa", err)
		}
		if ready {
			return Result{State: StateReady, Vaa: vaa}, nil
		}

		select {
		case <-ctx.Done():
			return Result{State: StateCancelled}, bridgeerr.ErrCancelled
		case <-deadline:
			return Result{State: StateTimeout}, bridgeerr.NewProofError(bridgeerr.KindProofNotReady, "wormhole vaa not signed within 120s window", nil)
		case <-ticker.C:
		}
	}
}
