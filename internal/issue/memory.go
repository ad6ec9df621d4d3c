package issue

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"
)

// MemoryRepository implements Repository in-process. It backs the demo mode
// and the tests, with the same filter and ordering semantics as Postgres.
type MemoryRepository struct {
	mu     sync.Mutex
	nextID uint64
	issues []*Issue
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{nextID: 1}
}

func (r *MemoryRepository) Create(_ context.Context, is *Issue) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	is.ID = r.nextID
	r.nextID++
	if is.CreatedAt.IsZero() {
		is.CreatedAt = time.Now()
	}

	cp := *is
	r.issues = append(r.issues, &cp)
	return nil
}

func (r *MemoryRepository) GetByID(_ context.Context, id uint64) (*Issue, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, is := range r.issues {
		if is.ID == id {
			cp := *is
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (r *MemoryRepository) Update(_ context.Context, id uint64, f Fields) (*Issue, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, is := range r.issues {
		if is.ID == id {
			applyFields(is, f)
			cp := *is
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (r *MemoryRepository) Delete(_ context.Context, id uint64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, is := range r.issues {
		if is.ID == id {
			r.issues = append(r.issues[:i], r.issues[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *MemoryRepository) List(_ context.Context, f ListFilter) ([]Issue, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	matched := r.sorted()
	filtered := matched[:0]
	for _, is := range matched {
		if matches(is, f) {
			filtered = append(filtered, is)
		}
	}

	total := int64(len(filtered))

	start := f.Offset
	if start > len(filtered) {
		start = len(filtered)
	}
	end := len(filtered)
	if f.Limit > 0 && start+f.Limit < end {
		end = start + f.Limit
	}

	page := make([]Issue, end-start)
	copy(page, filtered[start:end])
	return page, total, nil
}

func (r *MemoryRepository) CountByStatus(_ context.Context) (map[string]int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := map[string]int64{}
	for _, is := range r.issues {
		out[is.Status]++
	}
	return out, nil
}

func (r *MemoryRepository) All(_ context.Context) ([]Issue, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sorted(), nil
}

// sorted returns copies ordered createdAt desc, id desc. Callers hold mu.
func (r *MemoryRepository) sorted() []Issue {
	out := make([]Issue, len(r.issues))
	for i, is := range r.issues {
		out[i] = *is
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

func matches(is Issue, f ListFilter) bool {
	if f.Search != "" && !strings.Contains(strings.ToLower(is.Title), strings.ToLower(f.Search)) {
		return false
	}
	if f.Status != "" && is.Status != f.Status {
		return false
	}
	if f.Priority != "" && is.Priority != f.Priority {
		return false
	}
	return true
}
