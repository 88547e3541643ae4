package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/pradeep/vidyapith/internal/app/models/dto"
	"github.com/pradeep/vidyapith/internal/pkg/apperrors"
	"github.com/pradeep/vidyapith/internal/pkg/mail"
)

// ContactService forwards contact-page messages to the admin mailbox
type ContactService struct {
	mailer     mail.Mailer
	adminEmail string
	logger     zerolog.Logger
}

// NewContactService creates a new ContactService
func NewContactService(mailer mail.Mailer, adminEmail string, logger zerolog.Logger) *ContactService {
	return &ContactService{
		mailer:     mailer,
		adminEmail: adminEmail,
		logger:     logger,
	}
}

// Send delivers one contact message to the admin address. Replies go to
// the sender's submitted address, not the service mailbox.
func (s *ContactService) Send(ctx context.Context, req *dto.ContactRequest) error {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Subject = strings.TrimSpace(req.Subject)
	req.Message = strings.TrimSpace(req.Message)

	for _, entry := range []struct{ field, value string }{
		{"name", req.Name},
		{"email", req.Email},
		{"subject", req.Subject},
		{"message", req.Message},
	} {
		if entry.value == "" {
			return apperrors.NewFieldError(entry.field, "")
		}
	}

	msg := &mail.Message{
		Subject: fmt.Sprintf("New Contact Message: %s", req.Subject),
		To:      []string{s.adminEmail},
		ReplyTo: req.Email,
		Body:    fmt.Sprintf("From: %s <%s>\n\n%s\n", req.Name, req.Email, req.Message),
	}

	if err := s.mailer.Send(ctx, msg); err != nil {
		s.logger.Error().Err(err).Str("from", req.Email).Msg("Failed to dispatch contact message")
		return fmt.Errorf("%w: contact message: %v", apperrors.ErrDispatchFailed, err)
	}

	s.logger.Info().Str("from", req.Email).Str("subject", req.Subject).Msg("Contact message forwarded")
	return nil
}
