package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"captura/internal/domain"
	"captura/internal/logging"
	"captura/internal/services"
)

// Handler provides HTTP access to the capture funnel and its collaborator
// surfaces (blog content, comments, tenant config).
type Handler struct {
	Capture *services.CaptureService
	Blog    *services.BlogService
	Tenant  *services.TenantService
}

// NewHandler constructs the API handler
func NewHandler(capture *services.CaptureService, blog *services.BlogService, tenant *services.TenantService) *Handler {
	return &Handler{
		Capture: capture,
		Blog:    blog,
		Tenant:  tenant,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimSuffix(r.URL.Path, "/")

	switch {
	case path == "/healthz":
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
		return
	case path == "/api/captura":
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}
		h.handleCapture(w, r)
		return
	case path == "/api/categories":
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}
		h.handleCategories(w, r)
		return
	case path == "/api/tenant":
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}
		h.handleTenant(w, r)
		return
	case path == "/api/posts":
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}
		h.handleListPosts(w, r)
		return
	case strings.HasPrefix(path, "/api/posts/"):
		h.handlePost(w, r, strings.TrimPrefix(path, "/api/posts/"))
		return
	default:
		http.NotFound(w, r)
	}
}

// handleCapture serves the write endpoint. The body is parsed as JSON
// regardless of content type so beacon-style deliveries (sent as
// text/plain during page teardown) reach the same path as normal calls.
func (h *Handler) handleCapture(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		FullName     string `json:"full_name"`
		ContactPhone string `json:"contact_phone"`
		Email        string `json:"email"`
		SessionID    string `json:"session_id"`
		Status       string `json:"status"`
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, 1<<16))
	if err != nil {
		writeError(w, http.StatusBadRequest, "unable to read request body")
		return
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	lead, err := h.Capture.Record(r.Context(), services.WriteRequest{
		SessionID: payload.SessionID,
		Fields: domain.LeadFields{
			FullName:     strings.TrimSpace(payload.FullName),
			ContactPhone: strings.TrimSpace(payload.ContactPhone),
			Email:        strings.TrimSpace(payload.Email),
		},
		Status: domain.LeadStatus(payload.Status),
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, lead)
}

func (h *Handler) handleListPosts(w http.ResponseWriter, r *http.Request) {
	limit := 9
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			writeError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = parsed
	}

	posts, err := h.Blog.RecentPosts(r.Context(), limit)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"posts": posts})
}

func (h *Handler) handlePost(w http.ResponseWriter, r *http.Request, remainder string) {
	segments := strings.Split(remainder, "/")

	switch {
	case len(segments) == 1:
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}
		h.handlePostBySlug(w, r, segments[0])
	case len(segments) == 2 && segments[1] == "related":
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}
		h.handleRelatedPosts(w, r, segments[0])
	case len(segments) == 2 && segments[1] == "comments":
		switch r.Method {
		case http.MethodGet:
			h.handleListComments(w, r, segments[0])
		case http.MethodPost:
			h.handleAddComment(w, r, segments[0])
		default:
			writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		}
	default:
		http.NotFound(w, r)
	}
}

func (h *Handler) handlePostBySlug(w http.ResponseWriter, r *http.Request, slug string) {
	post, err := h.Blog.PostBySlug(r.Context(), slug)
	if err != nil {
		if errors.Is(err, domain.ErrPostNotFound) {
			writeError(w, http.StatusNotFound, "post not found")
			return
		}
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"post": post})
}

func (h *Handler) handleRelatedPosts(w http.ResponseWriter, r *http.Request, slug string) {
	post, err := h.Blog.PostBySlug(r.Context(), slug)
	if err != nil {
		if errors.Is(err, domain.ErrPostNotFound) {
			writeError(w, http.StatusNotFound, "post not found")
			return
		}
		writeServiceError(w, err)
		return
	}

	related, err := h.Blog.RelatedPosts(r.Context(), post.ID, post.Category.ID, 3)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"posts": related})
}

func (h *Handler) handleListComments(w http.ResponseWriter, r *http.Request, slug string) {
	comments, err := h.Blog.CommentsForPost(r.Context(), slug)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"comments": comments})
}

func (h *Handler) handleAddComment(w http.ResponseWriter, r *http.Request, slug string) {
	var payload struct {
		AuthorName string `json:"author_name"`
		Content    string `json:"content"`
	}
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<16)).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	comment, err := h.Blog.AddComment(r.Context(), domain.Comment{
		PostSlug:   slug,
		AuthorName: strings.TrimSpace(payload.AuthorName),
		Content:    strings.TrimSpace(payload.Content),
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"comment": comment})
}

func (h *Handler) handleCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.Blog.Categories(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"categories": categories})
}

func (h *Handler) handleTenant(w http.ResponseWriter, r *http.Request) {
	config, err := h.Tenant.Config(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, config)
}

// writeServiceError maps the error taxonomy onto HTTP statuses:
// validation failures are the caller's fault (400), persistence and
// configuration failures are ours (500, details logged only).
func writeServiceError(w http.ResponseWriter, err error) {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		writeError(w, http.StatusBadRequest, verr.Message)
		return
	}

	logging.Logger.Error("Request failed", "error", err)
	writeError(w, http.StatusInternalServerError, "internal server error")
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logging.Logger.Error("Failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
