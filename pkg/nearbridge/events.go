// Copyright 2025 Certen Protocol
//
// NEAR event extraction (§4.3, §6). NEAR contracts emit structured events
// as log lines prefixed "EVENT_JSON:"; this scans every receipt outcome's
// logs for the expected tag and decodes its data payload. Failure to find
// the tag is fatal — the caller cannot proceed without the extracted
// payload.

package nearbridge

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/certen/omni-bridge-sdk/pkg/bridgeerr"
)

const eventPrefix = "EVENT_JSON:"

// Event tags of interest (§4.3, §6).
const (
	EventLogMetadata        = "LogMetadataEvent"
	EventInitTransfer       = "InitTransferEvent"
	EventSignTransfer       = "SignTransferEvent"
	EventGenerateBTCPending = "generate_btc_pending_info"
	EventSignedBTCTx        = "signed_btc_transaction"
)

// Event is one decoded EVENT_JSON log line.
type Event struct {
	Standard string            `json:"standard"`
	Version  string            `json:"version"`
	Event    string            `json:"event"`
	Data     []json.RawMessage `json:"data"`
}

// ReceiptOutcome is the minimal shape of a NEAR receipt execution outcome
// the extractor needs: the log lines it produced.
type ReceiptOutcome struct {
	Logs []string
}

// FindEvent scans every outcome's logs, in order, for a line prefixed
// EVENT_JSON: whose decoded Event field equals tag. It returns the first
// match's Data payload.
func FindEvent(outcomes []ReceiptOutcome, tag string) ([]json.RawMessage, error) {
	for _, outcome := range outcomes {
		for _, line := range outcome.Logs {
			payload, ok := strings.CutPrefix(line, eventPrefix)
			if !ok {
				continue
			}
			var ev Event
			if err := json.Unmarshal([]byte(payload), &ev); err != nil {
				continue
			}
			if ev.Event == tag {
				return ev.Data, nil
			}
		}
	}
	return nil, bridgeerr.NewProofError(bridgeerr.KindLogNotFound,
		fmt.Sprintf("no %s event found across %d receipt outcomes", tag, len(outcomes)), nil)
}
