package gmail

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"flightwatch-service/internal/domain/repository"
	"flightwatch-service/pkg/logger"

	"golang.org/x/oauth2"
	"google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"
)

// GmailMailer sends notification emails through the Gmail API
type GmailMailer struct {
	gmailService *gmail.Service
	from         string
	logger       logger.Logger
}

// NewGmailMailer creates a new Gmail mailer
func NewGmailMailer(ctx context.Context, tokenSource oauth2.TokenSource, from string, logger logger.Logger) (repository.EmailSender, error) {
	service, err := gmail.NewService(ctx, option.WithTokenSource(tokenSource))
	if err != nil {
		return nil, err
	}

	return &GmailMailer{
		gmailService: service,
		from:         from,
		logger:       logger,
	}, nil
}

// SendNotificationEmail sends one email and returns the Gmail message id
func (m *GmailMailer) SendNotificationEmail(ctx context.Context, to, subject, htmlBody, textBody string) (string, error) {
	raw := buildMessage(m.from, to, subject, htmlBody, textBody)

	msg := &gmail.Message{
		Raw: base64.URLEncoding.EncodeToString([]byte(raw)),
	}

	sent, err := m.gmailService.Users.Messages.Send("me", msg).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("failed to send email: %w", err)
	}

	m.logger.Info("Notification email sent via Gmail",
		"messageId", sent.Id,
		"to", to,
		"subject", subject)

	return sent.Id, nil
}

// buildMessage assembles a multipart/alternative RFC 822 message
func buildMessage(from, to, subject, htmlBody, textBody string) string {
	const boundary = "flightwatch-boundary"

	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", from)
	fmt.Fprintf(&b, "To: %s\r\n", to)
	fmt.Fprintf(&b, "Subject: %s\r\n", subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	fmt.Fprintf(&b, "Content-Type: multipart/alternative; boundary=%q\r\n", boundary)
	b.WriteString("\r\n")

	fmt.Fprintf(&b, "--%s\r\n", boundary)
	b.WriteString("Content-Type: text/plain; charset=\"UTF-8\"\r\n\r\n")
	b.WriteString(textBody)
	b.WriteString("\r\n")

	fmt.Fprintf(&b, "--%s\r\n", boundary)
	b.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n\r\n")
	b.WriteString(htmlBody)
	b.WriteString("\r\n")

	fmt.Fprintf(&b, "--%s--", boundary)

	return b.String()
}
