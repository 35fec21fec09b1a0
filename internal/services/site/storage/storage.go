// Package storage defines the persistence contracts for visitor
// submissions.
package storage

import (
	"context"
	"errors"
	"time"
)

// ErrDuplicateSignup reports that the email is already subscribed.
var ErrDuplicateSignup = errors.New("email is already subscribed")

// ContactSubmission is one message sent through the contact form.
type ContactSubmission struct {
	ID        string
	Locale    string
	Name      string
	Email     string
	Message   string
	CreatedAt time.Time
}

// NewsletterSignup is one newsletter subscription request.
type NewsletterSignup struct {
	ID        string
	Locale    string
	Email     string
	CreatedAt time.Time
}

// SubmissionStore persists visitor submissions.
type SubmissionStore interface {
	CreateContactSubmission(ctx context.Context, submission ContactSubmission) error
	CreateNewsletterSignup(ctx context.Context, signup NewsletterSignup) error
	CountNewsletterSignups(ctx context.Context) (int, error)
}
