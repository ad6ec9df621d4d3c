package issue

import "time"

// Status and Priority are closed sets; anything else is rejected at the
// write boundary.
const (
	StatusOpen       = "Open"
	StatusInProgress = "In Progress"
	StatusResolved   = "Resolved"
	StatusClosed     = "Closed"

	PriorityLow    = "Low"
	PriorityMedium = "Medium"
	PriorityHigh   = "High"
)

// Statuses lists every status in display order.
var Statuses = []string{StatusOpen, StatusInProgress, StatusResolved, StatusClosed}

var Priorities = []string{PriorityLow, PriorityMedium, PriorityHigh}

func ValidStatus(s string) bool {
	for _, v := range Statuses {
		if v == s {
			return true
		}
	}
	return false
}

func ValidPriority(p string) bool {
	for _, v := range Priorities {
		if v == p {
			return true
		}
	}
	return false
}

type Issue struct {
	ID          uint64    `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `gorm:"type:text;not null;default:''" json:"description"`
	Status      string    `gorm:"not null;default:'Open'" json:"status"`
	Priority    string    `gorm:"not null;default:'Low'" json:"priority"`
	Severity    string    `gorm:"not null;default:''" json:"severity"`
	CreatedAt   time.Time `gorm:"index;not null;default:now()" json:"createdAt"`
}
