package domain

import "time"

// LeadStatus represents the lifecycle state of a capture session
type LeadStatus string

const (
	// StatusPartial marks an in-progress, not-yet-submitted capture
	StatusPartial LeadStatus = "partial"
	// StatusAbandoned marks a capture whose page was closed before submission
	StatusAbandoned LeadStatus = "abandoned"
	// StatusCompleted marks an explicitly submitted, validated capture (terminal)
	StatusCompleted LeadStatus = "completed"
)

// Valid reports whether s is one of the known lifecycle states
func (s LeadStatus) Valid() bool {
	switch s {
	case StatusPartial, StatusAbandoned, StatusCompleted:
		return true
	}
	return false
}

// LeadFields holds the visitor-supplied form values tracked by the funnel.
// Every field is independently optional until submission.
type LeadFields struct {
	FullName     string `json:"full_name"`
	ContactPhone string `json:"contact_phone"`
	Email        string `json:"email"`
}

// Empty reports whether no tracked field carries a value
func (f LeadFields) Empty() bool {
	return f.FullName == "" && f.ContactPhone == "" && f.Email == ""
}

// Merge returns f with each empty field backfilled from prev.
// Non-empty values in f always win; a value that was set once is
// never replaced by an empty one.
func (f LeadFields) Merge(prev LeadFields) LeadFields {
	if f.FullName == "" {
		f.FullName = prev.FullName
	}
	if f.ContactPhone == "" {
		f.ContactPhone = prev.ContactPhone
	}
	if f.Email == "" {
		f.Email = prev.Email
	}
	return f
}

// Lead represents one capture session record (domain entity).
// There is exactly one Lead per session identifier.
type Lead struct {
	SessionID string     `json:"session_id"`
	LeadFields
	Status    LeadStatus `json:"status"`
	Source    string     `json:"source"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}
