package repository

import "context"

// EmailSender delivers notification emails. Delivery is at-least-once:
// a send failure never rolls back the already-created notification.
type EmailSender interface {
	// SendNotificationEmail sends one email and returns the provider
	// message id.
	SendNotificationEmail(ctx context.Context, to, subject, htmlBody, textBody string) (string, error)
}
