package contact

import (
	"context"
	stderrors "errors"
	"log"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	apperrors "github.com/noorwave/noorwave.dev/internal/services/site/platform/errors"
	"github.com/noorwave/noorwave.dev/internal/services/site/storage"
)

// Service validates and persists visitor submissions. A nil store degrades
// to logging the submission, so the forms keep working without a database.
type Service struct {
	store  storage.SubmissionStore
	logger *log.Logger
}

// NewService constructs the submissions service.
func NewService(store storage.SubmissionStore, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.Default()
	}
	return &Service{store: store, logger: logger}
}

// SubmitContact validates and stores one contact form submission.
func (s *Service) SubmitContact(ctx context.Context, locale, name, email, message string) error {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	message = strings.TrimSpace(message)

	if name == "" {
		return apperrors.EK(apperrors.KindInvalidInput, "contact_name_required", "name is required")
	}
	if !validEmail(email) {
		return apperrors.EK(apperrors.KindInvalidInput, "contact_email_invalid", "email is invalid")
	}
	if message == "" {
		return apperrors.EK(apperrors.KindInvalidInput, "contact_message_required", "message is required")
	}

	submission := storage.ContactSubmission{
		ID:        uuid.NewString(),
		Locale:    locale,
		Name:      name,
		Email:     email,
		Message:   message,
		CreatedAt: time.Now(),
	}
	if s.store == nil {
		s.logger.Printf("contact submission store=none id=%s locale=%s email=%s", submission.ID, locale, email)
		return nil
	}
	if err := s.store.CreateContactSubmission(ctx, submission); err != nil {
		s.logger.Printf("contact submission failed id=%s: %v", submission.ID, err)
		return apperrors.EK(apperrors.KindUnavailable, "contact_store_failed", "store submission")
	}
	return nil
}

// SubscribeNewsletter validates and stores one newsletter signup. It returns
// the number of other subscribed readers for the confirmation copy.
func (s *Service) SubscribeNewsletter(ctx context.Context, locale, email string) (int, error) {
	email = strings.TrimSpace(email)
	if !validEmail(email) {
		return 0, apperrors.EK(apperrors.KindInvalidInput, "newsletter_email_invalid", "email is invalid")
	}

	signup := storage.NewsletterSignup{
		ID:        uuid.NewString(),
		Locale:    locale,
		Email:     email,
		CreatedAt: time.Now(),
	}
	if s.store == nil {
		s.logger.Printf("newsletter signup store=none id=%s locale=%s email=%s", signup.ID, locale, email)
		return 0, nil
	}
	if err := s.store.CreateNewsletterSignup(ctx, signup); err != nil {
		if stderrors.Is(err, storage.ErrDuplicateSignup) {
			return 0, apperrors.EK(apperrors.KindInvalidInput, "newsletter_already_subscribed", "already subscribed")
		}
		s.logger.Printf("newsletter signup failed id=%s: %v", signup.ID, err)
		return 0, apperrors.EK(apperrors.KindUnavailable, "newsletter_store_failed", "store signup")
	}

	others := 0
	if total, err := s.store.CountNewsletterSignups(ctx); err == nil && total > 0 {
		others = total - 1
	}
	return others, nil
}

func validEmail(email string) bool {
	if email == "" {
		return false
	}
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}
