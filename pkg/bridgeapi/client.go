// Copyright 2025 Certen Protocol
//
// HTTPS/JSON client for the bridge indexer API. Grounded on the
// facilitator-client request/response shape used elsewhere in the pack
// (context-scoped requests, io.ReadAll + json.Unmarshal, status-code
// branching before decode) but adds the three-attempt retry/backoff and
// CANCELLED-vs-timeout distinction the SDK's concurrency contract
// requires (§5).

package bridgeapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/certen/omni-bridge-sdk/pkg/bridgeerr"
)

// Client talks to the bridge's HTTPS/JSON indexer API (§6).
type Client struct {
	baseURL    string
	httpClient *http.Client
	backoff    []time.Duration
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the default http.Client (30s timeout).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithBackoff overrides the retry backoff schedule. The default matches
// §5: immediate, 1s, 2s.
func WithBackoff(schedule []time.Duration) Option {
	return func(c *Client) { c.backoff = schedule }
}

// New constructs a Client against baseURL (typically from
// netconfig.Config.BridgeAPIBaseURL).
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		backoff:    []time.Duration{0, time.Second, 2 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Transfer mirrors one row of the GET /api/v2/transfers/transfer response.
type Transfer struct {
	ID          string     `json:"id"`
	Initialized *time.Time `json:"initialized"`
	Signed      *time.Time `json:"signed"`
	Finalised   *time.Time `json:"finalised"`
	Claimed     *time.Time `json:"claimed"`
	ReceiptRef  string     `json:"receipt_ref"`
}

// TransferFee mirrors the GET /api/v1/transfer-fee response.
type TransferFee struct {
	NativeTokenFee       string `json:"native_token_fee"`
	TransferredTokenFee  string `json:"transferred_token_fee"`
	USDFee               string `json:"usd_fee"`
}

// DepositAddress mirrors one UTXO deposit-address endpoint response.
// DepositArgs is opaque to the SDK — it is forwarded to the NEAR connector
// verbatim when the deposit is finalized.
type DepositAddress struct {
	Address     string          `json:"address"`
	DepositArgs json.RawMessage `json:"depositArgs"`
}

// GetTransfersByHash queries GET /api/v2/transfers/transfer?transaction_hash=.
func (c *Client) GetTransfersByHash(ctx context.Context, txHash string) ([]Transfer, error) {
	q := url.Values{"transaction_hash": {txHash}}
	var out []Transfer
	err := c.getJSON(ctx, "/api/v2/transfers/transfer", q, &out)
	return out, err
}

// GetTransferFee queries GET /api/v1/transfer-fee.
func (c *Client) GetTransferFee(ctx context.Context, sender, recipient, token string) (TransferFee, error) {
	q := url.Values{"sender": {sender}, "recipient": {recipient}, "token": {token}}
	var out TransferFee
	err := c.getJSON(ctx, "/api/v1/transfer-fee", q, &out)
	return out, err
}

// ListTransfers queries GET /api/v1/transfers?sender&offset&limit.
func (c *Client) ListTransfers(ctx context.Context, sender string, offset, limit int) ([]Transfer, error) {
	q := url.Values{
		"sender": {sender},
		"offset": {strconv.Itoa(offset)},
		"limit":  {strconv.Itoa(limit)},
	}
	var out []Transfer
	err := c.getJSON(ctx, "/api/v1/transfers", q, &out)
	return out, err
}

// GetUTXODepositAddress fetches a fresh deposit address/args pair for a
// UTXO (BTC/ZEC) deposit destined for recipient on the NEAR connector.
func (c *Client) GetUTXODepositAddress(ctx context.Context, chainPrefix, recipient string) (DepositAddress, error) {
	q := url.Values{"recipient": {recipient}}
	var out DepositAddress
	err := c.getJSON(ctx, "/api/v1/utxo/"+chainPrefix+"/deposit-address", q, &out)
	return out, err
}

// getJSON performs a GET with up to len(backoff) attempts, decoding the
// JSON response body into out on success.
func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	full := c.baseURL + path
	if len(query) > 0 {
		full += "?" + query.Encode()
	}

	var lastErr error
	timedOut := false
	for _, wait := range c.backoff {
		if wait > 0 {
			t := time.NewTimer(wait)
			select {
			case <-ctx.Done():
				t.Stop()
				return bridgeerr.ErrCancelled
			case <-t.C:
			}
		}

		body, status, err := c.doGet(ctx, full)
		if errors.Is(err, context.Canceled) {
			return bridgeerr.ErrCancelled
		}
		if err != nil {
			lastErr = err
			var netErr interface{ Timeout() bool }
			timedOut = errors.As(err, &netErr) && netErr.Timeout()
			continue
		}
		if status != http.StatusOK {
			lastErr = fmt.Errorf("bridge api %s returned %d: %s", path, status, string(body))
			timedOut = false
			continue
		}
		if err := json.Unmarshal(body, out); err != nil {
			return bridgeerr.NewEncodingError(bridgeerr.KindMalformedEvent, "decoding response from %s: %v", path, err)
		}
		return nil
	}

	kind := bridgeerr.KindRPCError
	if timedOut {
		kind = bridgeerr.KindRPCTimeout
	}
	return bridgeerr.NewRpcError(kind, len(c.backoff), "bridge api request to "+path+" failed", lastErr)
}

func (c *Client) doGet(ctx context.Context, full string) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, full, nil)
	if err != nil {
		return nil, 0, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, err
	}
	return body, resp.StatusCode, nil
}
