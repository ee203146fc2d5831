package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"captura/internal/domain"
	"captura/internal/logging"
	"captura/internal/ports"
)

// wirePayload is the JSON body accepted by the capture write endpoint
type wirePayload struct {
	FullName     string `json:"full_name,omitempty"`
	ContactPhone string `json:"contact_phone,omitempty"`
	Email        string `json:"email,omitempty"`
	SessionID    string `json:"session_id,omitempty"`
	Status       string `json:"status"`
}

func toWirePayload(req ports.SaveRequest) wirePayload {
	return wirePayload{
		FullName:     req.Fields.FullName,
		ContactPhone: req.Fields.ContactPhone,
		Email:        req.Fields.Email,
		SessionID:    req.SessionID,
		Status:       string(req.Status),
	}
}

// HTTPSender delivers capture writes over a normal request/response call.
// The caller blocks until the endpoint acknowledges the write.
type HTTPSender struct {
	baseURL string
	client  *http.Client
}

// Verify interface compliance at compile time
var _ ports.LeadSender = (*HTTPSender)(nil)

// NewHTTPSender creates a sender targeting the capture API at baseURL
func NewHTTPSender(baseURL string) *HTTPSender {
	return &HTTPSender{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// Send implements ports.LeadSender.Send
func (s *HTTPSender) Send(ctx context.Context, req ports.SaveRequest) (*domain.Lead, error) {
	body, err := json.Marshal(toWirePayload(req))
	if err != nil {
		return nil, &domain.PersistenceError{Op: "capture write encode", Err: err}
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/api/captura", bytes.NewReader(body))
	if err != nil {
		return nil, &domain.PersistenceError{Op: "capture write", Err: err}
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(httpReq)
	if err != nil {
		return nil, &domain.PersistenceError{Op: "capture write", Err: err}
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		var lead domain.Lead
		if err := json.NewDecoder(resp.Body).Decode(&lead); err != nil {
			return nil, &domain.PersistenceError{Op: "capture write decode", Err: err}
		}
		return &lead, nil
	case http.StatusBadRequest:
		var payload struct {
			Error string `json:"error"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil || payload.Error == "" {
			payload.Error = "invalid capture request"
		}
		return nil, &domain.ValidationError{Message: payload.Error}
	default:
		return nil, &domain.PersistenceError{
			Op:  "capture write",
			Err: fmt.Errorf("unexpected status %d", resp.StatusCode),
		}
	}
}

// BeaconSender delivers abandoned saves with fire-and-forget semantics:
// the request is dispatched immediately on a background goroutine and no
// result is awaited. Flush blocks until every dispatched request has been
// attempted, for orderly teardown.
type BeaconSender struct {
	baseURL string
	client  *http.Client
	wg      sync.WaitGroup
}

// Verify interface compliance at compile time
var _ ports.BestEffortSender = (*BeaconSender)(nil)

// NewBeaconSender creates a best-effort sender targeting baseURL
func NewBeaconSender(baseURL string) *BeaconSender {
	return &BeaconSender{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 5 * time.Second},
	}
}

// SendBeacon implements ports.BestEffortSender.SendBeacon
func (s *BeaconSender) SendBeacon(req ports.SaveRequest) {
	// Encode synchronously so dispatch is guaranteed even if the caller
	// tears down right after this returns
	body, err := json.Marshal(toWirePayload(req))
	if err != nil {
		return
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		httpReq, err := http.NewRequest(http.MethodPost, s.baseURL+"/api/captura", bytes.NewReader(body))
		if err != nil {
			return
		}
		// Beacon deliveries carry no JSON content type, matching
		// sendBeacon's plain-text framing
		httpReq.Header.Set("Content-Type", "text/plain;charset=UTF-8")

		resp, err := s.client.Do(httpReq)
		if err != nil {
			logging.Logger.Debug("beacon delivery failed", "session_id", req.SessionID, "error", err)
			return
		}
		resp.Body.Close()
	}()
}

// Flush waits for all dispatched beacons to finish their attempts
func (s *BeaconSender) Flush() {
	s.wg.Wait()
}
