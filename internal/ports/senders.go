package ports

import (
	"context"

	"captura/internal/domain"
)

// SaveRequest is one capture write emitted by the client. Transports
// decide the wire encoding.
type SaveRequest struct {
	SessionID string
	Fields    domain.LeadFields
	Status    domain.LeadStatus
}

// LeadSender is the request/response transport used for partial saves and
// the authoritative completed save. The caller blocks until the write is
// acknowledged or fails.
type LeadSender interface {
	Send(ctx context.Context, req SaveRequest) (*domain.Lead, error)
}

// BestEffortSender is the fire-and-forget transport used for abandoned
// saves during page teardown. Dispatch is guaranteed before teardown
// completes; delivery is not, and no result is awaited.
type BestEffortSender interface {
	SendBeacon(req SaveRequest)
}
