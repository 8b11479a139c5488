package calls

// Call represents a single customer interaction with transcript and status
// metadata.
//
// Field names are part of the public wire contract (camelCase); do not
// rename them without versioning the API.
//
// Invariant: ID is assigned once at creation and never changes, even when an
// update payload carries a different id.
type Call struct {
	ID          string `json:"id"`
	PhoneNumber string `json:"phoneNumber"`

	// DurationSeconds is the call duration in seconds, never negative.
	DurationSeconds int `json:"duration"`

	Status     Status `json:"status"`
	Transcript string `json:"transcript"`
	AISummary  string `json:"aiSummary"`

	// Timestamp is the RFC3339 creation time, set once.
	Timestamp string `json:"timestamp"`
	// UpdatedAt is stamped on every update.
	UpdatedAt string `json:"updatedAt,omitempty"`
}

// Status is free-form beyond the two well-known values.
type Status string

const (
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
)

// CreateInput carries the caller-supplied fields for a new call.
// PhoneNumber is required; everything else defaults.
type CreateInput struct {
	PhoneNumber     string
	DurationSeconds int
	Transcript      string
}

// UpdateInput shallow-merges over an existing record. Nil fields are left
// untouched. There is deliberately no ID field.
type UpdateInput struct {
	PhoneNumber     *string
	DurationSeconds *int
	Status          *Status
	Transcript      *string
	AISummary       *string
}

// Pagination describes one page of a filtered listing.
type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// ListQuery selects a pagination window over an optional status filter.
// Non-positive Page/Limit fall back to defaults.
type ListQuery struct {
	Page   int
	Limit  int
	Status Status
}

const (
	DefaultPage  = 1
	DefaultLimit = 10
)

func (q ListQuery) normalized() ListQuery {
	if q.Page <= 0 {
		q.Page = DefaultPage
	}
	if q.Limit <= 0 {
		q.Limit = DefaultLimit
	}
	return q
}
