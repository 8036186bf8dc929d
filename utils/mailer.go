package utils

import (
	"context"
	"fmt"
	"html"
	"log/slog"

	"github.com/mailgun/mailgun-go/v3"
)

// MailgunNotifier sends transactional HTML email through Mailgun.
type MailgunNotifier struct {
	mg   mailgun.Mailgun
	from string
}

func NewMailgunNotifier(domain, apiKey, from string) *MailgunNotifier {
	return &MailgunNotifier{mg: mailgun.NewMailgun(domain, apiKey), from: from}
}

func (n *MailgunNotifier) Send(ctx context.Context, to, subject, body string) error {
	msg := n.mg.NewMessage(n.from, subject, "", to)
	msg.SetHtml(body)

	_, id, err := n.mg.Send(ctx, msg)
	if err != nil {
		return fmt.Errorf("mailgun send: %w", err)
	}
	slog.Debug("email sent", "to", to, "id", id)
	return nil
}

// NopNotifier is used when mail is not configured.
type NopNotifier struct{}

func (NopNotifier) Send(ctx context.Context, to, subject, body string) error {
	slog.Debug("email skipped, mail not configured", "to", to, "subject", subject)
	return nil
}

func AdoptionRequestedEmail(petName, requester string) (subject, body string) {
	subject = fmt.Sprintf("New adoption request for %s", petName)
	body = fmt.Sprintf("<p>%s would like to adopt <b>%s</b>.</p><p>Open your dashboard to review the request.</p>",
		html.EscapeString(requester), html.EscapeString(petName))
	return subject, body
}

func AdoptionStatusEmail(petName, status string) (subject, body string) {
	subject = fmt.Sprintf("Your adoption request for %s was %s", petName, status)
	body = fmt.Sprintf("<p>Your request to adopt <b>%s</b> is now <b>%s</b>.</p>",
		html.EscapeString(petName), html.EscapeString(status))
	return subject, body
}
