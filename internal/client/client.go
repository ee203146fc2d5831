// Package client implements the progressive capture client: the state
// container that follows a visitor through the lead form, deciding when and
// by what transport form state is pushed to the capture store.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"captura/internal/domain"
	"captura/internal/logging"
	"captura/internal/ports"
)

// ErrAlreadySubmitted is returned when Submit is called on a session that
// has already completed.
var ErrAlreadySubmitted = errors.New("form already submitted")

// State represents the lifecycle state of the capture client
type State string

const (
	// StateIdle means no field has been touched yet
	StateIdle State = "idle"
	// StateEditing means at least one field has been touched
	StateEditing State = "editing"
	// StateSubmitted means explicit completion succeeded (terminal)
	StateSubmitted State = "submitted"
)

// Field names a tracked form field
type Field string

const (
	FieldFullName     Field = "full_name"
	FieldContactPhone Field = "contact_phone"
	FieldEmail        Field = "email"
)

// Client tracks one visitor's interaction with the capture form. The
// session identifier is generated once at construction and attached to
// every write for the visit; the submitted flag suppresses all writes once
// completion succeeds.
type Client struct {
	mu        sync.Mutex
	sessionID string
	form      domain.LeadFields
	state     State
	lastSent  string
	sender    ports.LeadSender
	beacon    ports.BestEffortSender
	cancels   []func()
}

// New creates a capture client with a fresh session identifier. The sender
// carries partial and completed saves; the beacon carries abandoned saves
// during page teardown.
func New(sender ports.LeadSender, beacon ports.BestEffortSender) *Client {
	return &Client{
		sessionID: domain.NewSessionID(),
		state:     StateIdle,
		sender:    sender,
		beacon:    beacon,
	}
}

// SessionID returns the identifier attached to every write of this visit
func (c *Client) SessionID() string {
	return c.sessionID
}

// State returns the current lifecycle state
func (c *Client) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Snapshot returns a copy of the current form values
func (c *Client) Snapshot() domain.LeadFields {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.form
}

// SetField records a field change in the in-memory snapshot. The first
// change moves the client from idle to editing; no write is emitted.
func (c *Client) SetField(field Field, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == StateSubmitted {
		return
	}

	switch field {
	case FieldFullName:
		c.form.FullName = value
	case FieldContactPhone:
		c.form.ContactPhone = value
	case FieldEmail:
		c.form.Email = value
	default:
		return
	}

	if c.state == StateIdle {
		c.state = StateEditing
	}
}

// HandleBlur emits a best-effort partial save with the full current
// snapshot, de-duplicated against the last snapshot successfully sent.
// Persistence failures are swallowed; nothing is ever surfaced to the user
// on this path.
func (c *Client) HandleBlur(ctx context.Context) {
	c.mu.Lock()
	if c.state != StateEditing || c.form.Empty() {
		c.mu.Unlock()
		return
	}

	serialized := serialize(c.form)
	if serialized == c.lastSent {
		c.mu.Unlock()
		return
	}

	req := ports.SaveRequest{
		SessionID: c.sessionID,
		Fields:    c.form,
		Status:    domain.StatusPartial,
	}
	c.mu.Unlock()

	if _, err := c.sender.Send(ctx, req); err != nil {
		logging.Logger.Debug("partial save failed", "session_id", c.sessionID, "error", err)
		return
	}

	c.mu.Lock()
	c.lastSent = serialized
	c.mu.Unlock()
}

// HandlePageHide emits an abandoned save through the fire-and-forget
// transport. There is no de-duplication check; the write is suppressed only
// when the session already completed or the form is still empty.
func (c *Client) HandlePageHide() {
	c.mu.Lock()
	if c.state == StateSubmitted || c.form.Empty() {
		c.mu.Unlock()
		return
	}

	req := ports.SaveRequest{
		SessionID: c.sessionID,
		Fields:    c.form,
		Status:    domain.StatusAbandoned,
	}
	c.mu.Unlock()

	c.beacon.SendBeacon(req)
}

// Submit validates required fields and emits the authoritative completed
// save. The submitted flag is set before the network call resolves so a
// page-hide racing the in-flight submit cannot emit a duplicate abandoned
// write; on failure the client reverts to editing so the user can retry
// with the form state preserved.
func (c *Client) Submit(ctx context.Context) (*domain.Lead, error) {
	c.mu.Lock()
	if c.state == StateSubmitted {
		c.mu.Unlock()
		return nil, ErrAlreadySubmitted
	}

	if err := domain.ValidateSubmission(c.form); err != nil {
		c.mu.Unlock()
		return nil, err
	}

	req := ports.SaveRequest{
		SessionID: c.sessionID,
		Fields:    c.form,
		Status:    domain.StatusCompleted,
	}
	c.state = StateSubmitted
	c.mu.Unlock()

	lead, err := c.sender.Send(ctx, req)
	if err != nil {
		c.mu.Lock()
		c.state = StateEditing
		c.mu.Unlock()
		return nil, err
	}

	return lead, nil
}

func serialize(f domain.LeadFields) string {
	data, _ := json.Marshal(f)
	return string(data)
}
