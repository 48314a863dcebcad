package vss

import (
	"crypto/rand"
	"fmt"
	"time"
)

// AuditEventType represents the type of audit event
type AuditEventType string

const (
	AuditEventSplit             AuditEventType = "secret_split"
	AuditEventShareVerification AuditEventType = "share_verification"
	AuditEventReconstruction    AuditEventType = "secret_reconstruction"
	AuditEventValidationFailure AuditEventType = "validation_failure"
)

// Scheme identifies which sharing scheme produced an event
type Scheme string

const (
	SchemeShamir  Scheme = "shamir"
	SchemeFeldman Scheme = "feldman"
)

// AuditEvent records one secret sharing operation. Events carry parameters
// and outcomes, never secret material or share values.
type AuditEvent struct {
	// Event metadata
	EventID   string         `json:"event_id"`
	Timestamp time.Time      `json:"timestamp"`
	EventType AuditEventType `json:"event_type"`
	Scheme    Scheme         `json:"scheme"`

	// Context information
	GroupName string `json:"group_name,omitempty"`

	// Parameters
	Threshold   int    `json:"threshold,omitempty"`
	TotalShares int    `json:"total_shares,omitempty"`
	ShareIndex  string `json:"share_index,omitempty"`

	// Success/failure information
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`

	// Additional context
	Metadata map[string]interface{} `json:"metadata,omitempty"`
}

// AuditEventHandler defines the interface for handling audit events.
// Applications implement this interface to record events according to their
// needs.
type AuditEventHandler interface {
	// OnSplit is called after a secret has been split into shares
	OnSplit(event *AuditEvent)

	// OnShareVerification is called when a share fails commitment verification
	OnShareVerification(event *AuditEvent)

	// OnReconstruction is called after a reconstruction attempt
	OnReconstruction(event *AuditEvent)

	// OnValidationFailure is called when parameter validation fails
	OnValidationFailure(event *AuditEvent)
}

// NullAuditHandler is a no-op implementation of AuditEventHandler.
// Used when no audit handling is needed.
type NullAuditHandler struct{}

func (n *NullAuditHandler) OnSplit(event *AuditEvent)             {}
func (n *NullAuditHandler) OnShareVerification(event *AuditEvent) {}
func (n *NullAuditHandler) OnReconstruction(event *AuditEvent)    {}
func (n *NullAuditHandler) OnValidationFailure(event *AuditEvent) {}

// AuditEventBuilder helps construct audit events with proper defaults
type AuditEventBuilder struct {
	event *AuditEvent
}

// NewAuditEventBuilder creates a new audit event builder
func NewAuditEventBuilder(eventType AuditEventType, scheme Scheme) *AuditEventBuilder {
	return &AuditEventBuilder{
		event: &AuditEvent{
			EventID:   generateEventID(),
			Timestamp: time.Now(),
			EventType: eventType,
			Scheme:    scheme,
			Success:   true, // Default to success, can be overridden
			Metadata:  make(map[string]interface{}),
		},
	}
}

// WithGroup sets the commitment group name for the event
func (b *AuditEventBuilder) WithGroup(groupName string) *AuditEventBuilder {
	b.event.GroupName = groupName
	return b
}

// WithThreshold sets threshold parameters
func (b *AuditEventBuilder) WithThreshold(threshold, totalShares int) *AuditEventBuilder {
	b.event.Threshold = threshold
	b.event.TotalShares = totalShares
	return b
}

// WithShareIndex sets the share index the event concerns
func (b *AuditEventBuilder) WithShareIndex(index string) *AuditEventBuilder {
	b.event.ShareIndex = index
	return b
}

// WithError marks the event as failed and sets error information
func (b *AuditEventBuilder) WithError(err error) *AuditEventBuilder {
	b.event.Success = false
	if err != nil {
		b.event.Error = err.Error()
	}
	return b
}

// WithMetadata adds metadata to the event
func (b *AuditEventBuilder) WithMetadata(key string, value interface{}) *AuditEventBuilder {
	b.event.Metadata[key] = value
	return b
}

// Build returns the constructed audit event
func (b *AuditEventBuilder) Build() *AuditEvent {
	return b.event
}

// generateEventID generates a unique event ID from the timestamp plus random
// bytes so events created in the same microsecond stay distinct
func generateEventID() string {
	timestamp := time.Now().Format("20060102150405.000000")

	randomBytes := make([]byte, 4)
	if _, err := rand.Read(randomBytes); err != nil {
		return fmt.Sprintf("%s.%d", timestamp, time.Now().UnixNano()%10000)
	}

	return fmt.Sprintf("%s.%x", timestamp, randomBytes)
}
