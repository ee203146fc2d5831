package services

import (
	"context"

	"captura/internal/domain"
	"captura/internal/logging"
	"captura/internal/ports"
)

// CaptureService owns the server side of the capture write path: request
// validation, session identifier assignment, and the upsert into the store.
type CaptureService struct {
	store  ports.LeadStore
	source string
}

// NewCaptureService creates a new CaptureService. The source tag is stamped
// on every new lead and never overwritten afterwards.
func NewCaptureService(store ports.LeadStore, source string) *CaptureService {
	return &CaptureService{
		store:  store,
		source: source,
	}
}

// WriteRequest is one incoming capture write
type WriteRequest struct {
	SessionID string
	Fields    domain.LeadFields
	Status    domain.LeadStatus
}

// Record validates and persists one capture write, returning the merged
// record. Completed writes require first and last name plus email;
// partial and abandoned writes require at least one non-empty field. A
// missing session identifier is generated server-side.
func (s *CaptureService) Record(ctx context.Context, req WriteRequest) (*domain.Lead, error) {
	if !req.Status.Valid() {
		return nil, &domain.ValidationError{Message: "Invalid capture status."}
	}

	if req.Status == domain.StatusCompleted {
		if err := domain.ValidateSubmission(req.Fields); err != nil {
			return nil, err
		}
	} else {
		if err := domain.ValidateProgress(req.Fields); err != nil {
			return nil, err
		}
	}

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = domain.NewSessionID()
		logging.Logger.Debug("Generated server-side session id", "session_id", sessionID)
	}

	lead, err := s.store.Upsert(ctx, ports.LeadUpsert{
		SessionID: sessionID,
		Fields:    req.Fields,
		Status:    req.Status,
		Source:    s.source,
	})
	if err != nil {
		logging.Logger.Error("Capture write failed",
			"session_id", sessionID,
			"status", req.Status,
			"error", err)
		return nil, err
	}

	logging.Logger.Info("Capture write persisted",
		"session_id", lead.SessionID,
		"status", lead.Status)

	return lead, nil
}

// GetLead returns one captured lead by session identifier
func (s *CaptureService) GetLead(ctx context.Context, sessionID string) (*domain.Lead, error) {
	return s.store.Get(ctx, sessionID)
}

// ListLeads returns captured leads, optionally filtered by status
func (s *CaptureService) ListLeads(ctx context.Context, status domain.LeadStatus) ([]domain.Lead, error) {
	if status != "" && !status.Valid() {
		return nil, &domain.ValidationError{Message: "Invalid capture status."}
	}
	return s.store.List(ctx, status)
}
