// Copyright 2025 Certen Protocol

package nearbridge

import "testing"

func TestFindEventMatches(t *testing.T) {
	outcomes := []ReceiptOutcome{
		{Logs: []string{"some unrelated log"}},
		{Logs: []string{`EVENT_JSON:{"standard":"omni-bridge","version":"1.0.0","event":"InitTransferEvent","data":[{"transfer_message":{}}]}`}},
	}
	data, err := FindEvent(outcomes, EventInitTransfer)
	if err != nil {
		t.Fatalf("FindEvent: %v", err)
	}
	if len(data) != 1 {
		t.Fatalf("expected 1 data entry, got %d", len(data))
	}
}

func TestFindEventNotFoundIsFatal(t *testing.T) {
	outcomes := []ReceiptOutcome{{Logs: []string{"no events here"}}}
	if _, err := FindEvent(outcomes, EventSignTransfer); err == nil {
		t.Fatal("expected error when tag is absent")
	}
}

func TestFindEventSkipsMalformedLines(t *testing.T) {
	outcomes := []ReceiptOutcome{
		{Logs: []string{"EVENT_JSON:not-json", `EVENT_JSON:{"event":"SignTransferEvent","data":[]}`}},
	}
	if _, err := FindEvent(outcomes, EventSignTransfer); err != nil {
		t.Fatalf("FindEvent: %v", err)
	}
}
