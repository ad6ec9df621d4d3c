package issue

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("issue not found")

// ListFilter is the store-level half of a listing request: which issues
// match, and which page of them to return. All set fields AND together.
type ListFilter struct {
	// Search matches the title as a case-insensitive substring.
	Search   string
	Status   string
	Priority string
	// Offset/Limit are row offsets, already derived from page numbers.
	Offset int
	Limit  int
}

// Fields carries a partial update. Nil pointers mean "leave untouched".
type Fields struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
	Priority    *string `json:"priority"`
	Severity    *string `json:"severity"`
}

// Repository is the persistent issue collection. Both implementations order
// reads newest-first (createdAt descending, insertion order on ties).
type Repository interface {
	Create(ctx context.Context, is *Issue) error
	GetByID(ctx context.Context, id uint64) (*Issue, error)
	// Update merges the set fields over the stored record and returns the
	// result. ErrNotFound when the id is unknown.
	Update(ctx context.Context, id uint64, f Fields) (*Issue, error)
	// Delete succeeds whether or not the record existed.
	Delete(ctx context.Context, id uint64) error

	// List returns one page of matches plus the total match count.
	List(ctx context.Context, f ListFilter) ([]Issue, int64, error)
	// CountByStatus groups ALL issues by status, ignoring any filter.
	CountByStatus(ctx context.Context) (map[string]int64, error)
	// All returns every issue newest-first, for CSV export.
	All(ctx context.Context) ([]Issue, error)
}
