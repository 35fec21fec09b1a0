package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/noorwave/noorwave.dev/internal/services/site/storage"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "site.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestOpenRequiresPath(t *testing.T) {
	t.Parallel()

	if _, err := Open("  "); err == nil {
		t.Fatal("expected error for blank path")
	}
}

func TestCreateContactSubmission(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)
	err := store.CreateContactSubmission(context.Background(), storage.ContactSubmission{
		ID:      uuid.NewString(),
		Locale:  "ar",
		Name:    "Huda",
		Email:   "huda@example.com",
		Message: "We need a bilingual storefront.",
	})
	if err != nil {
		t.Fatalf("CreateContactSubmission() error = %v", err)
	}
}

func TestCreateContactSubmissionValidatesFields(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)
	err := store.CreateContactSubmission(context.Background(), storage.ContactSubmission{
		ID:    uuid.NewString(),
		Email: "no-name@example.com",
	})
	if err == nil {
		t.Fatal("expected error for missing name")
	}
}

func TestNewsletterSignupDuplicateEmail(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)
	signup := storage.NewsletterSignup{
		ID:     uuid.NewString(),
		Locale: "en",
		Email:  "reader@example.com",
	}
	if err := store.CreateNewsletterSignup(context.Background(), signup); err != nil {
		t.Fatalf("first signup error = %v", err)
	}

	signup.ID = uuid.NewString()
	err := store.CreateNewsletterSignup(context.Background(), signup)
	if !errors.Is(err, storage.ErrDuplicateSignup) {
		t.Fatalf("second signup error = %v, want ErrDuplicateSignup", err)
	}

	count, err := store.CountNewsletterSignups(context.Background())
	if err != nil {
		t.Fatalf("CountNewsletterSignups() error = %v", err)
	}
	if count != 1 {
		t.Fatalf("count = %d, want 1", count)
	}
}

func TestCountNewsletterSignups(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)
	for _, email := range []string{"a@example.com", "b@example.com", "c@example.com"} {
		err := store.CreateNewsletterSignup(context.Background(), storage.NewsletterSignup{
			ID:     uuid.NewString(),
			Locale: "en",
			Email:  email,
		})
		if err != nil {
			t.Fatalf("CreateNewsletterSignup(%s) error = %v", email, err)
		}
	}
	count, err := store.CountNewsletterSignups(context.Background())
	if err != nil {
		t.Fatalf("CountNewsletterSignups() error = %v", err)
	}
	if count != 3 {
		t.Fatalf("count = %d, want 3", count)
	}
}
