// Package client is the consumer side of the issue API: a data-access
// interface with a network-backed and an in-process implementation, plus the
// list-view state machine (search debounce, filters, pagination).
package client

import (
	"context"

	"github.com/PSrandula/issue-tracker-app/internal/issue"
)

// Store is the injectable data-access surface the UI code talks to. Client
// implements it over HTTP; Local implements it over an in-process fixture.
// Which one runs is wired at startup, never switched at runtime.
type Store interface {
	List(ctx context.Context, q issue.ListQuery) (*issue.ListResult, error)
	Get(ctx context.Context, id uint64) (*issue.Issue, error)
	Create(ctx context.Context, f issue.Fields) (*issue.Issue, error)
	Update(ctx context.Context, id uint64, f issue.Fields) (*issue.Issue, error)
	Delete(ctx context.Context, id uint64) error
	ExportCSV(ctx context.Context) (string, error)
}
