package domain

import (
	"context"
	"time"
)

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(ctx context.Context, to, subject, html, text string) error
}

// EmailTemplateRenderer renders email content from a named template with the given data.
type EmailTemplateRenderer interface {
	Render(templateName string, data any) (subject, htmlBody, textBody string, err error)
}

// ReservationEmailData holds data for the new-reservation notice sent to a host.
type ReservationEmailData struct {
	Email        string
	HostNickname string
	GuestName    string
	DanceTitle   string
	StartAt      time.Time
}

// EmailService defines the contract for sending domain-level emails.
type EmailService interface {
	SendReservationNotice(ctx context.Context, data *ReservationEmailData) error
}
