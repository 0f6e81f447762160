// Package mailer renders and delivers the booking emails. Delivery failures
// are logged and reduced to a false return; they never propagate to the
// caller's primary operation.
package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"html/template"
	"net/http"
	"time"

	gomail "gopkg.in/gomail.v2"

	"dogstudio/internal/catalog"
	"dogstudio/internal/domain"
	"dogstudio/internal/logger"
)

// Sender delivers one rendered email.
type Sender interface {
	Send(ctx context.Context, to, subject, html string) error
}

// HTTPSender posts {to, subject, html} as JSON to a transactional-email
// endpoint, authenticated with a bearer token.
type HTTPSender struct {
	Endpoint string
	Token    string
	Client   *http.Client
}

func NewHTTPSender(endpoint, token string) *HTTPSender {
	return &HTTPSender{
		Endpoint: endpoint,
		Token:    token,
		Client:   &http.Client{Timeout: 15 * time.Second},
	}
}

func (s *HTTPSender) Send(ctx context.Context, to, subject, html string) error {
	payload, err := json.Marshal(map[string]string{
		"to":      to,
		"subject": subject,
		"html":    html,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.Endpoint, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.Token)

	resp, err := s.Client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var body struct {
			Error any `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&body)
		return fmt.Errorf("email endpoint returned %d: %v", resp.StatusCode, body.Error)
	}
	return nil
}

// SMTPSender delivers through an SMTP relay via gomail.
type SMTPSender struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTPSender(host string, port int, username, password, from string) *SMTPSender {
	return &SMTPSender{
		dialer: gomail.NewDialer(host, port, username, password),
		from:   from,
	}
}

func (s *SMTPSender) Send(_ context.Context, to, subject, html string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", html)
	return s.dialer.DialAndSend(m)
}

// Service renders the five booking templates and hands them to a Sender.
type Service struct {
	sender Sender
}

func NewService(sender Sender) *Service {
	return &Service{sender: sender}
}

// SendBookingConfirmation emails the customer that their appointment was
// received.
func (s *Service) SendBookingConfirmation(ctx context.Context, b *domain.Booking) bool {
	subject := fmt.Sprintf("Booking Confirmed - %s", catalog.Shop.Name)
	return s.deliver(ctx, customerConfirmationTmpl, b, b.Email, subject)
}

// SendOwnerNotification alerts the shop owner about a new booking.
func (s *Service) SendOwnerNotification(ctx context.Context, b *domain.Booking) bool {
	subject := fmt.Sprintf("New Booking - %s", b.CustomerName)
	return s.deliver(ctx, ownerAlertTmpl, b, catalog.Shop.Email, subject)
}

// SendStatusUpdateEmail emails the customer after an admin status change.
// Statuses without a template (pending) are a no-op returning false.
func (s *Service) SendStatusUpdateEmail(ctx context.Context, b *domain.Booking, newStatus domain.BookingStatus) bool {
	tmpl, subject := statusTemplate(newStatus)
	if tmpl == nil {
		return false
	}
	return s.deliver(ctx, tmpl, b, b.Email, subject)
}

func (s *Service) deliver(ctx context.Context, t *template.Template, b *domain.Booking, to, subject string) bool {
	html, err := render(t, b)
	if err != nil {
		logger.ErrorLogger.Errorf("Failed to render %s email for booking %s: %v", t.Name(), b.ID, err)
		return false
	}

	if s.sender == nil {
		logger.InfoLogger.Infof("No email sender configured, dropping %q to %s", subject, to)
		return false
	}

	if err := s.sender.Send(ctx, to, subject, html); err != nil {
		logger.ErrorLogger.Errorf("Failed to send %q to %s: %v", subject, to, err)
		return false
	}

	logger.InfoLogger.Infof("Sent %q to %s (booking %s)", subject, to, b.ID)
	return true
}
