package vss

import (
	"math/big"
	"testing"
)

// recordingAuditHandler captures events for inspection
type recordingAuditHandler struct {
	splits          []*AuditEvent
	verifications   []*AuditEvent
	reconstructions []*AuditEvent
	failures        []*AuditEvent
}

func (h *recordingAuditHandler) OnSplit(event *AuditEvent) {
	h.splits = append(h.splits, event)
}

func (h *recordingAuditHandler) OnShareVerification(event *AuditEvent) {
	h.verifications = append(h.verifications, event)
}

func (h *recordingAuditHandler) OnReconstruction(event *AuditEvent) {
	h.reconstructions = append(h.reconstructions, event)
}

func (h *recordingAuditHandler) OnValidationFailure(event *AuditEvent) {
	h.failures = append(h.failures, event)
}

func TestAuditEventsForShamirLifecycle(t *testing.T) {
	handler := &recordingAuditHandler{}

	sharer, err := NewShamirSecretSharing(2, 3, WithAuditHandler(handler))
	if err != nil {
		t.Fatalf("Failed to create sharer: %v", err)
	}

	shares, err := sharer.SplitSecret(big.NewInt(11))
	if err != nil {
		t.Fatalf("Failed to split secret: %v", err)
	}
	if len(handler.splits) != 1 {
		t.Fatalf("Expected 1 split event, got %d", len(handler.splits))
	}

	split := handler.splits[0]
	if split.EventType != AuditEventSplit || split.Scheme != SchemeShamir {
		t.Errorf("Unexpected split event %s/%s", split.EventType, split.Scheme)
	}
	if split.Threshold != 2 || split.TotalShares != 3 || !split.Success {
		t.Errorf("Split event carries wrong parameters: %+v", split)
	}
	if split.EventID == "" || split.Timestamp.IsZero() {
		t.Error("Split event missing ID or timestamp")
	}

	if _, err := sharer.ReconstructSecret(shares[:2]); err != nil {
		t.Fatalf("Failed to reconstruct: %v", err)
	}
	if len(handler.reconstructions) != 1 || !handler.reconstructions[0].Success {
		t.Fatalf("Expected 1 successful reconstruction event, got %+v", handler.reconstructions)
	}

	if _, err := sharer.ReconstructSecret(shares[:1]); err == nil {
		t.Fatal("Expected reconstruction failure")
	}
	if len(handler.reconstructions) != 2 {
		t.Fatalf("Expected 2 reconstruction events, got %d", len(handler.reconstructions))
	}
	failed := handler.reconstructions[1]
	if failed.Success || failed.Error == "" {
		t.Errorf("Failed reconstruction event not marked as failure: %+v", failed)
	}
}

func TestAuditEventsForValidationFailures(t *testing.T) {
	handler := &recordingAuditHandler{}

	if _, err := NewShamirSecretSharing(5, 3, WithAuditHandler(handler)); err == nil {
		t.Fatal("Expected constructor failure")
	}
	if len(handler.failures) != 1 {
		t.Fatalf("Expected 1 validation failure event, got %d", len(handler.failures))
	}
	if handler.failures[0].Success {
		t.Error("Validation failure event marked successful")
	}

	sharer, err := NewShamirSecretSharing(2, 3, WithAuditHandler(handler), WithPrime(big.NewInt(101)))
	if err != nil {
		t.Fatalf("Failed to create sharer: %v", err)
	}
	if _, err := sharer.SplitSecret(big.NewInt(500)); err == nil {
		t.Fatal("Expected out-of-range secret to fail")
	}
	if len(handler.failures) != 2 {
		t.Fatalf("Expected 2 validation failure events, got %d", len(handler.failures))
	}
}

func TestAuditEventsForFeldmanVerification(t *testing.T) {
	handler := &recordingAuditHandler{}

	vss, err := NewFeldmanVSS(big.NewInt(23), big.NewInt(11), big.NewInt(2), 2, 3,
		WithAuditHandler(handler))
	if err != nil {
		t.Fatalf("Failed to create VSS: %v", err)
	}

	shares, commitments, err := vss.SplitSecret(big.NewInt(4))
	if err != nil {
		t.Fatalf("Failed to split secret: %v", err)
	}
	if len(handler.splits) != 1 || handler.splits[0].Scheme != SchemeFeldman {
		t.Fatalf("Expected 1 Feldman split event, got %+v", handler.splits)
	}
	if handler.splits[0].GroupName != string(GroupModP) {
		t.Errorf("Split event group %q, expected %q", handler.splits[0].GroupName, GroupModP)
	}

	// Honest verification emits nothing
	if _, err := vss.VerifyShare(shares[0], commitments); err != nil {
		t.Fatalf("Verification error: %v", err)
	}
	if len(handler.verifications) != 0 {
		t.Fatalf("Expected no verification events for a valid share, got %d", len(handler.verifications))
	}

	tampered := NewShare(shares[0].Index, new(big.Int).Add(shares[0].Value, big.NewInt(1)))
	if _, err := vss.VerifyShare(tampered, commitments); err != nil {
		t.Fatalf("Verification error: %v", err)
	}
	if len(handler.verifications) != 1 {
		t.Fatalf("Expected 1 verification event for the tampered share, got %d", len(handler.verifications))
	}
	if handler.verifications[0].ShareIndex != shares[0].Index.String() {
		t.Errorf("Verification event index %q, expected %q",
			handler.verifications[0].ShareIndex, shares[0].Index.String())
	}
}

func TestAuditEventBuilder(t *testing.T) {
	event := NewAuditEventBuilder(AuditEventSplit, SchemeFeldman).
		WithGroup("secp256k1").
		WithThreshold(3, 5).
		WithShareIndex("2").
		WithMetadata("shares_generated", 5).
		Build()

	if event.EventType != AuditEventSplit || event.Scheme != SchemeFeldman {
		t.Errorf("Unexpected event type/scheme: %s/%s", event.EventType, event.Scheme)
	}
	if event.GroupName != "secp256k1" || event.Threshold != 3 || event.TotalShares != 5 {
		t.Errorf("Builder dropped fields: %+v", event)
	}
	if event.ShareIndex != "2" {
		t.Errorf("ShareIndex %q, expected 2", event.ShareIndex)
	}
	if !event.Success {
		t.Error("Events default to success")
	}
	if event.Metadata["shares_generated"] != 5 {
		t.Error("Metadata not recorded")
	}

	failed := NewAuditEventBuilder(AuditEventReconstruction, SchemeShamir).
		WithError(ErrInsufficientShares).
		Build()
	if failed.Success || failed.Error == "" {
		t.Error("WithError should mark the event failed")
	}

	// IDs are unique even for events created back to back
	other := NewAuditEventBuilder(AuditEventSplit, SchemeShamir).Build()
	if event.EventID == other.EventID {
		t.Error("Event IDs collided")
	}
}
