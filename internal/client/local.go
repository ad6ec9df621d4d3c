package client

import (
	"context"

	"github.com/PSrandula/issue-tracker-app/internal/issue"
)

// Local serves the Store interface from an in-process fixture, so the UI
// layer can run without a backend.
type Local struct {
	svc *issue.Service
}

// NewLocal builds a fixture-backed store preloaded with the demo data set.
func NewLocal() (*Local, error) {
	repo := issue.NewMemoryRepository()
	if err := issue.SeedDemo(context.Background(), repo); err != nil {
		return nil, err
	}
	return &Local{svc: issue.NewService(repo)}, nil
}

func (l *Local) List(ctx context.Context, q issue.ListQuery) (*issue.ListResult, error) {
	return l.svc.List(ctx, q)
}

func (l *Local) Get(ctx context.Context, id uint64) (*issue.Issue, error) {
	return l.svc.Get(ctx, id)
}

func (l *Local) Create(ctx context.Context, f issue.Fields) (*issue.Issue, error) {
	return l.svc.Create(ctx, f)
}

func (l *Local) Update(ctx context.Context, id uint64, f issue.Fields) (*issue.Issue, error) {
	return l.svc.Update(ctx, id, f)
}

func (l *Local) Delete(ctx context.Context, id uint64) error {
	return l.svc.Delete(ctx, id)
}

func (l *Local) ExportCSV(ctx context.Context) (string, error) {
	return l.svc.ExportCSV(ctx)
}
