package client

import (
	"context"
	"sync"
	"time"

	"github.com/PSrandula/issue-tracker-app/internal/issue"
)

const (
	// DefaultDebounce coalesces keystrokes so the list is not queried once
	// per character.
	DefaultDebounce = 300 * time.Millisecond

	// DefaultPageSize is the client-side page length, sent explicitly on
	// every query so the server default never leaks in.
	DefaultPageSize = 9
)

// Snapshot is the rendered state of the list view at one point in time.
type Snapshot struct {
	Issues       []issue.Issue
	TotalPages   int
	StatusCounts map[string]int64

	Search   string
	Status   string
	Priority string
	Page     int

	Err error
}

// ListView owns the list screen's state: search text with debounce,
// independent status/priority filters, and the current page. Any filter
// change resets to page 1. Every fetch carries a generation number; a
// response whose generation is no longer current is dropped, so a slow stale
// response can never overwrite newer data.
type ListView struct {
	store    Store
	PageSize int
	Debounce time.Duration

	// OnChange, when set, runs after every applied fetch result.
	OnChange func(Snapshot)

	// newTimer is swappable in tests.
	newTimer func(d time.Duration, fn func()) func() bool

	mu            sync.Mutex
	search        string
	pendingSearch string
	status        string
	priority      string
	page          int
	gen           uint64
	stopTimer     func() bool

	issues     []issue.Issue
	totalPages int
	counts     map[string]int64
	lastErr    error
}

func NewListView(store Store) *ListView {
	return &ListView{
		store:    store,
		PageSize: DefaultPageSize,
		Debounce: DefaultDebounce,
		status:   issue.FilterAll,
		priority: issue.FilterAll,
		page:     1,
		newTimer: func(d time.Duration, fn func()) func() bool {
			return time.AfterFunc(d, fn).Stop
		},
	}
}

// SetSearch records the typed text and (re)arms the debounce timer. The
// query fires only after the input has been quiet for the debounce window.
func (v *ListView) SetSearch(s string) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.pendingSearch = s
	if v.stopTimer != nil {
		v.stopTimer()
	}
	v.stopTimer = v.newTimer(v.Debounce, v.commitSearch)
}

func (v *ListView) commitSearch() {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.pendingSearch == v.search {
		return
	}
	v.search = v.pendingSearch
	v.page = 1
	v.refreshLocked()
}

func (v *ListView) SetStatus(s string) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.status == s {
		return
	}
	v.status = s
	v.page = 1
	v.refreshLocked()
}

// ToggleStatus is the clickable status card: selecting the active filter
// clears it back to All.
func (v *ListView) ToggleStatus(s string) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.status == s {
		v.status = issue.FilterAll
	} else {
		v.status = s
	}
	v.page = 1
	v.refreshLocked()
}

func (v *ListView) SetPriority(p string) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.priority == p {
		return
	}
	v.priority = p
	v.page = 1
	v.refreshLocked()
}

func (v *ListView) SetPage(n int) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if n < 1 {
		n = 1
	}
	if n == v.page {
		return
	}
	v.page = n
	v.refreshLocked()
}

// Refresh re-runs the current query, e.g. after a mutation.
func (v *ListView) Refresh() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.refreshLocked()
}

// refreshLocked starts an asynchronous fetch for the current state. Callers
// hold mu.
func (v *ListView) refreshLocked() {
	v.gen++
	gen := v.gen
	q := issue.ListQuery{
		Search:   v.search,
		Status:   v.status,
		Priority: v.priority,
		Page:     v.page,
		PageSize: v.PageSize,
	}
	go v.fetch(gen, q)
}

func (v *ListView) fetch(gen uint64, q issue.ListQuery) {
	res, err := v.store.List(context.Background(), q)

	v.mu.Lock()
	if gen != v.gen {
		// A newer query superseded this one while it was in flight.
		v.mu.Unlock()
		return
	}
	if err != nil {
		v.lastErr = err
	} else {
		v.lastErr = nil
		v.issues = res.Issues
		v.totalPages = res.TotalPages
		v.counts = res.StatusCounts
	}
	cb := v.OnChange
	snap := v.snapshotLocked()
	v.mu.Unlock()

	if cb != nil {
		cb(snap)
	}
}

// Snapshot returns a copy of the current view state.
func (v *ListView) Snapshot() Snapshot {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.snapshotLocked()
}

func (v *ListView) snapshotLocked() Snapshot {
	issues := make([]issue.Issue, len(v.issues))
	copy(issues, v.issues)

	counts := make(map[string]int64, len(v.counts))
	for k, c := range v.counts {
		counts[k] = c
	}

	return Snapshot{
		Issues:       issues,
		TotalPages:   v.totalPages,
		StatusCounts: counts,
		Search:       v.search,
		Status:       v.status,
		Priority:     v.priority,
		Page:         v.page,
		Err:          v.lastErr,
	}
}
