// Package mail sends best-effort transactional email through Resend.
package mail

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v2"
)

// Mailer sends the sign-up welcome mail. With an empty API key it becomes a
// no-op, so local setups run without mail credentials.
type Mailer struct {
	client *resend.Client
	from   string
}

func NewMailer(apiKey, from string) *Mailer {
	if apiKey == "" {
		return &Mailer{}
	}
	return &Mailer{client: resend.NewClient(apiKey), from: from}
}

func (m *Mailer) SendWelcome(ctx context.Context, email, username string) error {
	if m.client == nil {
		return nil
	}

	_, err := m.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    m.from,
		To:      []string{email},
		Subject: "Welcome to Mission Console",
		Html: fmt.Sprintf(
			"<p>Hi %s,</p><p>Your Mission Console account is ready. Sign in to browse missions, satellites and research findings.</p>",
			username,
		),
	})
	return err
}
