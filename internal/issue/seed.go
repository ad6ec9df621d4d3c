package issue

import (
	"context"
	"time"
)

// SeedDemo loads the demo fixture into a repository so the memory-backed
// mode starts with realistic data.
func SeedDemo(ctx context.Context, repo Repository) error {
	day := func(s string) time.Time {
		t, _ := time.Parse(time.RFC3339, s)
		return t
	}

	seed := []Issue{
		{
			Title:       "Login page crashes on empty submit",
			Description: "Submitting the login form with both fields empty throws an unhandled rejection and shows a white screen.",
			Status:      StatusOpen, Priority: PriorityHigh, Severity: "Critical",
			CreatedAt: day("2026-01-15T08:30:00Z"),
		},
		{
			Title:       "Dashboard stats don't refresh after status change",
			Description: "After marking an issue Resolved the status count cards still show the old numbers until a manual reload.",
			Status:      StatusInProgress, Priority: PriorityMedium, Severity: "Major",
			CreatedAt: day("2026-01-18T10:15:00Z"),
		},
		{
			Title:       "CSV export includes internal id field",
			Description: "The exported CSV contains the raw database id column, which is not useful for end users.",
			Status:      StatusOpen, Priority: PriorityLow, Severity: "Minor",
			CreatedAt: day("2026-01-20T14:00:00Z"),
		},
		{
			Title:       "Password reset email not sent",
			Description: "Users who click 'Forgot Password' never receive the reset email. SMTP configuration looks wrong in production.",
			Status:      StatusOpen, Priority: PriorityHigh, Severity: "Critical",
			CreatedAt: day("2026-01-22T09:45:00Z"),
		},
		{
			Title:       "Pagination shows negative page numbers",
			Description: "Rapidly clicking Previous can push the page state below 1, causing an API error.",
			Status:      StatusResolved, Priority: PriorityMedium, Severity: "Minor",
			CreatedAt: day("2026-01-25T11:30:00Z"),
		},
		{
			Title:       "Mobile layout overflows on Issue Details",
			Description: "On screens narrower than 375px the action buttons overflow outside the card.",
			Status:      StatusInProgress, Priority: PriorityMedium, Severity: "Major",
			CreatedAt: day("2026-01-28T16:20:00Z"),
		},
		{
			Title:       "Add dark mode toggle",
			Description: "Add a theme toggle in the navbar that persists the preference.",
			Status:      StatusOpen, Priority: PriorityLow,
			CreatedAt: day("2026-02-01T08:00:00Z"),
		},
		{
			Title:       "Session expires without warning",
			Description: "Tokens expire after a day and the app silently starts failing requests instead of redirecting to login.",
			Status:      StatusClosed, Priority: PriorityMedium, Severity: "Major",
			CreatedAt: day("2026-02-03T13:10:00Z"),
		},
	}

	for i := range seed {
		if err := repo.Create(ctx, &seed[i]); err != nil {
			return err
		}
	}
	return nil
}
