// Package sqlite provides a SQLite-backed submissions store.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/noorwave/noorwave.dev/internal/platform/storage/sqlitemigrate"
	"github.com/noorwave/noorwave.dev/internal/services/site/storage"
	"github.com/noorwave/noorwave.dev/internal/services/site/storage/sqlite/migrations"
	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"
)

// Store persists visitor submissions in SQLite.
type Store struct {
	sqlDB *sql.DB
}

var _ storage.SubmissionStore = (*Store)(nil)

// Open opens a SQLite submissions store and applies embedded migrations.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := sqlitemigrate.Apply(sqlDB, migrations.FS); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// CreateContactSubmission inserts one contact form submission.
func (s *Store) CreateContactSubmission(ctx context.Context, submission storage.ContactSubmission) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	id := strings.TrimSpace(submission.ID)
	name := strings.TrimSpace(submission.Name)
	email := strings.TrimSpace(submission.Email)
	message := strings.TrimSpace(submission.Message)
	if id == "" {
		return fmt.Errorf("submission id is required")
	}
	if name == "" {
		return fmt.Errorf("name is required")
	}
	if email == "" {
		return fmt.Errorf("email is required")
	}
	if message == "" {
		return fmt.Errorf("message is required")
	}
	createdAt := submission.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	_, err := s.sqlDB.ExecContext(ctx, `
INSERT INTO contact_submissions (id, locale, name, email, message, created_at)
VALUES (?, ?, ?, ?, ?, ?)`,
		id,
		strings.TrimSpace(submission.Locale),
		name,
		email,
		message,
		toMillis(createdAt),
	)
	if err != nil {
		return fmt.Errorf("insert contact submission: %w", err)
	}
	return nil
}

// CreateNewsletterSignup inserts one newsletter signup. A repeated email
// returns storage.ErrDuplicateSignup.
func (s *Store) CreateNewsletterSignup(ctx context.Context, signup storage.NewsletterSignup) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	id := strings.TrimSpace(signup.ID)
	email := strings.TrimSpace(signup.Email)
	if id == "" {
		return fmt.Errorf("signup id is required")
	}
	if email == "" {
		return fmt.Errorf("email is required")
	}
	createdAt := signup.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	_, err := s.sqlDB.ExecContext(ctx, `
INSERT INTO newsletter_signups (id, locale, email, created_at)
VALUES (?, ?, ?, ?)`,
		id,
		strings.TrimSpace(signup.Locale),
		email,
		toMillis(createdAt),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return storage.ErrDuplicateSignup
		}
		return fmt.Errorf("insert newsletter signup: %w", err)
	}
	return nil
}

// CountNewsletterSignups returns the number of stored signups.
func (s *Store) CountNewsletterSignups(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if s == nil || s.sqlDB == nil {
		return 0, fmt.Errorf("storage is not configured")
	}
	var count int
	row := s.sqlDB.QueryRowContext(ctx, "SELECT COUNT(*) FROM newsletter_signups")
	if err := row.Scan(&count); err != nil {
		return 0, fmt.Errorf("count newsletter signups: %w", err)
	}
	return count, nil
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func isUniqueViolation(err error) bool {
	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.Code() == sqlite3lib.SQLITE_CONSTRAINT_UNIQUE
	}
	return false
}
