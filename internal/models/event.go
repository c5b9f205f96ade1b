package models

import (
	"time"

	"github.com/google/uuid"
)

// MaxEventNameLength bounds the event name accepted at ingestion.
const MaxEventNameLength = 100

// Event is a single tracked occurrence. Properties and metadata are open-ended
// key/value maps persisted as JSONB; aggregation queries read well-known keys
// (amount, product, page, device) without constraining the rest.
type Event struct {
	ID             uuid.UUID      `json:"id"`
	Name           string         `json:"name"`
	OrganizationID uuid.UUID      `json:"organization"`
	UserID         *string        `json:"userId,omitempty"`
	SessionID      *string        `json:"sessionId,omitempty"`
	Properties     map[string]any `json:"properties"`
	Metadata       map[string]any `json:"metadata"`
	Timestamp      time.Time      `json:"timestamp"`
	CreatedAt      time.Time      `json:"created_at"`
}
