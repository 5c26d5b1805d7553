// Package mailer delivers reminder mail through the SendGrid v3 API. Sending
// is strictly best effort: a failure is logged and reported as false, never
// as an error, so a broken mail provider cannot stall reconciliation.
package mailer

import (
	"context"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

const sendURL = "https://api.sendgrid.com/v3/mail/send"

// Notifier is the send capability the reconciler consumes.
type Notifier interface {
	Send(ctx context.Context, to, subject, body string) bool
}

type Mailer struct {
	client   *resty.Client
	apiKey   string
	from     string
	redirect string
}

// New builds a SendGrid mailer. When redirect is non-empty every message goes
// to that address instead of the real recipient (staging safety valve).
func New(apiKey, from, redirect string) *Mailer {
	client := resty.New().
		SetTimeout(10 * time.Second).
		SetHeader("Content-Type", "application/json")
	return &Mailer{
		client:   client,
		apiKey:   apiKey,
		from:     from,
		redirect: redirect,
	}
}

type address struct {
	Email string `json:"email"`
}

type personalization struct {
	To []address `json:"to"`
}

type content struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

type payload struct {
	Personalizations []personalization `json:"personalizations"`
	From             address           `json:"from"`
	Subject          string            `json:"subject"`
	Content          []content         `json:"content"`
}

func (m *Mailer) Send(ctx context.Context, to, subject, body string) bool {
	if m.apiKey == "" {
		zap.L().Warn("mail send skipped: no API key configured", zap.String("subject", subject))
		return false
	}
	if m.redirect != "" {
		to = m.redirect
	}

	req := payload{
		Personalizations: []personalization{{To: []address{{Email: to}}}},
		From:             address{Email: m.from},
		Subject:          subject,
		Content:          []content{{Type: "text/plain", Value: body}},
	}

	resp, err := m.client.R().
		SetContext(ctx).
		SetAuthToken(m.apiKey).
		SetBody(req).
		Post(sendURL)
	if err != nil {
		zap.L().Error("mail send failed", zap.Error(err), zap.String("to", to))
		return false
	}
	if resp.StatusCode() != http.StatusAccepted && resp.StatusCode() != http.StatusOK {
		zap.L().Error("mail send rejected",
			zap.Int("status", resp.StatusCode()), zap.String("to", to))
		return false
	}

	zap.L().Info("mail sent", zap.String("to", to), zap.String("subject", subject))
	return true
}
