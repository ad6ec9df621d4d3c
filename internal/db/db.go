package db

import (
	"fmt"

	"github.com/PSrandula/issue-tracker-app/internal/auth"
	"github.com/PSrandula/issue-tracker-app/internal/issue"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Connect(dsn string) (*gorm.DB, error) {
	gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	return gdb, nil
}

func AutoMigrateAndIndexes(gdb *gorm.DB) error {
	if err := gdb.AutoMigrate(
		&auth.User{},
		&issue.Issue{},
	); err != nil {
		return err
	}

	// Listing order and the common filters.
	stmts := []string{
		`create index if not exists idx_issues_created_at on issues(created_at desc, id desc);`,
		`create index if not exists idx_issues_status on issues(status);`,
		`create index if not exists idx_issues_priority on issues(priority);`,
	}
	for _, s := range stmts {
		if err := gdb.Exec(s).Error; err != nil {
			return fmt.Errorf("index exec failed: %w (sql=%s)", err, s)
		}
	}

	return nil
}
