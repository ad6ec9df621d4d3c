package issue

import (
	"context"
	"strings"

	"github.com/PSrandula/issue-tracker-app/internal/apperror"
)

// DefaultPageSize is the server-side page length when the caller sends none.
const DefaultPageSize = 6

// FilterAll is the sentinel the UI sends for "no status/priority filter".
const FilterAll = "All"

type Service struct {
	Repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{Repo: repo}
}

// ListQuery is a listing request as it arrives from the client: 1-indexed
// page, optional free-text search, optional status/priority filters.
type ListQuery struct {
	Search   string
	Status   string
	Priority string
	Page     int
	PageSize int
}

// ListResult is the one consistent response envelope for the list endpoint.
// StatusCounts covers ALL issues, ignoring the active filter, with every
// status present even at zero, so the dashboard cards stay stable.
type ListResult struct {
	Issues       []Issue          `json:"issues"`
	TotalPages   int              `json:"totalPages"`
	StatusCounts map[string]int64 `json:"statusCounts"`
}

// List runs the filter/paginate/aggregate pipeline. The page fetch, the
// match count and the status aggregation are three separate reads; a write
// racing between them can skew the counts against the page. Accepted, not
// retried.
func (s *Service) List(ctx context.Context, q ListQuery) (*ListResult, error) {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PageSize < 1 {
		q.PageSize = DefaultPageSize
	}

	f := ListFilter{
		Search: strings.TrimSpace(q.Search),
		Offset: (q.Page - 1) * q.PageSize,
		Limit:  q.PageSize,
	}
	if q.Status != "" && q.Status != FilterAll {
		f.Status = q.Status
	}
	if q.Priority != "" && q.Priority != FilterAll {
		f.Priority = q.Priority
	}

	rows, total, err := s.Repo.List(ctx, f)
	if err != nil {
		return nil, apperror.NewStore("Failed to fetch issues", err)
	}

	counts, err := s.Repo.CountByStatus(ctx)
	if err != nil {
		return nil, apperror.NewStore("Failed to fetch issues", err)
	}

	statusCounts := make(map[string]int64, len(Statuses))
	for _, st := range Statuses {
		statusCounts[st] = counts[st]
	}

	totalPages := int((total + int64(q.PageSize) - 1) / int64(q.PageSize))
	if totalPages < 1 {
		totalPages = 1
	}

	if rows == nil {
		rows = []Issue{}
	}
	return &ListResult{
		Issues:       rows,
		TotalPages:   totalPages,
		StatusCounts: statusCounts,
	}, nil
}

// Create validates and persists a new issue. Unset enum fields take their
// model defaults (Open, Low).
func (s *Service) Create(ctx context.Context, f Fields) (*Issue, error) {
	if f.Title == nil || strings.TrimSpace(*f.Title) == "" {
		return nil, apperror.NewValidation("Title is required")
	}

	is := &Issue{
		Title:    *f.Title,
		Status:   StatusOpen,
		Priority: PriorityLow,
	}
	if f.Description != nil {
		is.Description = *f.Description
	}
	if f.Severity != nil {
		is.Severity = *f.Severity
	}
	if f.Status != nil {
		is.Status = *f.Status
	}
	if f.Priority != nil {
		is.Priority = *f.Priority
	}

	if !ValidStatus(is.Status) {
		return nil, apperror.NewValidation("Invalid status")
	}
	if !ValidPriority(is.Priority) {
		return nil, apperror.NewValidation("Invalid priority")
	}

	if err := s.Repo.Create(ctx, is); err != nil {
		return nil, apperror.NewStore("Failed to create issue", err)
	}
	return is, nil
}

func (s *Service) Get(ctx context.Context, id uint64) (*Issue, error) {
	is, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if err == ErrNotFound {
			return nil, apperror.NewNotFound("Not found")
		}
		return nil, apperror.NewStore("Failed to fetch issue", err)
	}
	return is, nil
}

// Update merges the provided fields over the stored record. Enum fields are
// re-validated: a partial update carrying a bad status or priority is
// rejected, never stored.
func (s *Service) Update(ctx context.Context, id uint64, f Fields) (*Issue, error) {
	if f.Status != nil && !ValidStatus(*f.Status) {
		return nil, apperror.NewValidation("Invalid status")
	}
	if f.Priority != nil && !ValidPriority(*f.Priority) {
		return nil, apperror.NewValidation("Invalid priority")
	}
	if f.Title != nil && strings.TrimSpace(*f.Title) == "" {
		return nil, apperror.NewValidation("Title is required")
	}

	is, err := s.Repo.Update(ctx, id, f)
	if err != nil {
		if err == ErrNotFound {
			return nil, apperror.NewNotFound("Not found")
		}
		return nil, apperror.NewStore("Failed to update issue", err)
	}
	return is, nil
}

// Delete is idempotent; deleting an unknown id still succeeds.
func (s *Service) Delete(ctx context.Context, id uint64) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		return apperror.NewStore("Failed to delete issue", err)
	}
	return nil
}

// ExportCSV renders every issue, newest first, as CSV text.
func (s *Service) ExportCSV(ctx context.Context) (string, error) {
	rows, err := s.Repo.All(ctx)
	if err != nil {
		return "", apperror.NewStore("Failed to export issues", err)
	}
	return renderCSV(rows)
}
