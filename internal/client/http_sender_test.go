package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"captura/internal/domain"
	"captura/internal/ports"
)

// recordingEndpoint captures every delivery made to the capture endpoint
type recordingEndpoint struct {
	mu          sync.Mutex
	paths       []string
	methods     []string
	contentType []string
	bodies      [][]byte

	status   int
	response any
}

func (e *recordingEndpoint) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)

	e.mu.Lock()
	e.paths = append(e.paths, r.URL.Path)
	e.methods = append(e.methods, r.Method)
	e.contentType = append(e.contentType, r.Header.Get("Content-Type"))
	e.bodies = append(e.bodies, body)
	e.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(e.status)
	json.NewEncoder(w).Encode(e.response)
}

func (e *recordingEndpoint) deliveries() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.bodies)
}

func TestHTTPSender_DeliversWriteAndDecodesLead(t *testing.T) {
	endpoint := &recordingEndpoint{
		status: http.StatusOK,
		response: domain.Lead{
			SessionID: "rp_abc_111111",
			LeadFields: domain.LeadFields{
				FullName: "Maria Silva",
				Email:    "m@x.com",
			},
			Status: domain.StatusCompleted,
		},
	}
	ts := httptest.NewServer(endpoint)
	defer ts.Close()

	sender := NewHTTPSender(ts.URL)
	lead, err := sender.Send(context.Background(), ports.SaveRequest{
		SessionID: "rp_abc_111111",
		Fields:    domain.LeadFields{FullName: "Maria Silva", Email: "m@x.com"},
		Status:    domain.StatusCompleted,
	})

	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, lead.Status)

	require.Equal(t, 1, endpoint.deliveries())
	assert.Equal(t, "/api/captura", endpoint.paths[0])
	assert.Equal(t, http.MethodPost, endpoint.methods[0])
	assert.Equal(t, "application/json", endpoint.contentType[0])

	var payload map[string]any
	require.NoError(t, json.Unmarshal(endpoint.bodies[0], &payload))
	assert.Equal(t, "completed", payload["status"])
	assert.Equal(t, "rp_abc_111111", payload["session_id"])
}

func TestHTTPSender_MapsBadRequestToValidationError(t *testing.T) {
	endpoint := &recordingEndpoint{
		status:   http.StatusBadRequest,
		response: map[string]string{"error": "Name and email are required."},
	}
	ts := httptest.NewServer(endpoint)
	defer ts.Close()

	sender := NewHTTPSender(ts.URL)
	_, err := sender.Send(context.Background(), ports.SaveRequest{
		SessionID: "rp_abc_111111",
		Fields:    domain.LeadFields{FullName: "Maria"},
		Status:    domain.StatusCompleted,
	})

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Name and email are required.", verr.Message)
}

func TestHTTPSender_MapsServerFailureToPersistenceError(t *testing.T) {
	endpoint := &recordingEndpoint{
		status:   http.StatusInternalServerError,
		response: map[string]string{"error": "internal server error"},
	}
	ts := httptest.NewServer(endpoint)
	defer ts.Close()

	sender := NewHTTPSender(ts.URL)
	_, err := sender.Send(context.Background(), ports.SaveRequest{
		SessionID: "rp_abc_111111",
		Fields:    domain.LeadFields{FullName: "Maria Silva", Email: "m@x.com"},
		Status:    domain.StatusCompleted,
	})

	var perr *domain.PersistenceError
	require.ErrorAs(t, err, &perr)
}

func TestBeaconSender_DeliversPlainTextFramedJSON(t *testing.T) {
	endpoint := &recordingEndpoint{status: http.StatusOK, response: domain.Lead{}}
	ts := httptest.NewServer(endpoint)
	defer ts.Close()

	beacon := NewBeaconSender(ts.URL)
	beacon.SendBeacon(ports.SaveRequest{
		SessionID: "rp_abc_222222",
		Fields:    domain.LeadFields{FullName: "Joao"},
		Status:    domain.StatusAbandoned,
	})
	beacon.Flush()

	require.Equal(t, 1, endpoint.deliveries())
	assert.Equal(t, "/api/captura", endpoint.paths[0])
	assert.Equal(t, http.MethodPost, endpoint.methods[0])
	assert.Equal(t, "text/plain;charset=UTF-8", endpoint.contentType[0])

	// The plain-text framing still carries a JSON body the endpoint can parse
	var payload map[string]any
	require.NoError(t, json.Unmarshal(endpoint.bodies[0], &payload))
	assert.Equal(t, "abandoned", payload["status"])
	assert.Equal(t, "rp_abc_222222", payload["session_id"])
}

func TestBeaconSender_FlushReturnsAfterDeliveryAttempt(t *testing.T) {
	release := make(chan struct{})
	var delivered bool
	var mu sync.Mutex

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
		mu.Lock()
		delivered = true
		mu.Unlock()
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	beacon := NewBeaconSender(ts.URL)
	beacon.SendBeacon(ports.SaveRequest{
		SessionID: "rp_abc_333333",
		Fields:    domain.LeadFields{FullName: "Joao"},
		Status:    domain.StatusAbandoned,
	})

	done := make(chan struct{})
	go func() {
		beacon.Flush()
		close(done)
	}()

	select {
	case <-done:
		t.Fatal("Flush returned while the delivery was still in flight")
	case <-time.After(50 * time.Millisecond):
	}

	close(release)
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Flush did not return after the delivery finished")
	}

	mu.Lock()
	defer mu.Unlock()
	assert.True(t, delivered)
}
