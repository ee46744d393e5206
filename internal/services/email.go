package services

import (
	"context"
	"fmt"
	"log/slog"

	"stepup/internal/domain"
)

type emailService struct {
	mailer   domain.Mailer
	renderer domain.EmailTemplateRenderer
	logger   *slog.Logger
}

// NewEmailService returns an EmailService that uses the given Mailer and template renderer.
func NewEmailService(mailer domain.Mailer, renderer domain.EmailTemplateRenderer, logger *slog.Logger) domain.EmailService {
	return &emailService{mailer: mailer, renderer: renderer, logger: logger}
}

// SendReservationNotice tells a host that someone reserved their dance, using the "reservation" template.
func (s *emailService) SendReservationNotice(ctx context.Context, data *domain.ReservationEmailData) error {
	if data == nil {
		return fmt.Errorf("reservation email data is nil")
	}
	subject, htmlBody, textBody, err := s.renderer.Render("reservation", data)
	if err != nil {
		return fmt.Errorf("failed to render reservation template: %w", err)
	}
	if err := s.mailer.Send(ctx, data.Email, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("failed to send reservation email: %w", err)
	}
	s.logger.InfoContext(ctx, "reservation notice sent", "to", data.Email)
	return nil
}
