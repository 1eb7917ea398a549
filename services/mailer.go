package services

import (
	"fmt"
	"html"

	"gopkg.in/gomail.v2"
)

// FeedbackNotice is what the contact form sends us.
type FeedbackNotice struct {
	Name    string
	Email   string
	Message string
}

// Mailer delivers feedback notifications.
type Mailer interface {
	SendFeedback(n FeedbackNotice) error
}

type mailSender interface {
	DialAndSend(m ...*gomail.Message) error
}

// SMTPMailer sends feedback mails through an authenticated SMTP relay.
type SMTPMailer struct {
	from   string
	to     string
	dialer mailSender
}

func NewSMTPMailer(host string, port int, user, password, recipient string) *SMTPMailer {
	return &SMTPMailer{
		from:   user,
		to:     recipient,
		dialer: gomail.NewDialer(host, port, user, password),
	}
}

func (m *SMTPMailer) SendFeedback(n FeedbackNotice) error {
	msg := BuildFeedbackMessage(m.from, m.to, n)
	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("send feedback mail: %w", err)
	}
	return nil
}

// BuildFeedbackMessage renders the notification. User input is HTML-escaped.
func BuildFeedbackMessage(from, to string, n FeedbackNotice) *gomail.Message {
	msg := gomail.NewMessage()
	msg.SetHeader("From", from)
	msg.SetHeader("To", to)
	if n.Email != "" {
		msg.SetHeader("Reply-To", n.Email)
	}
	msg.SetHeader("Subject", "New Feedback Submission")
	msg.SetBody("text/html", fmt.Sprintf(
		"<h3>New Feedback Received</h3><p><strong>Name:</strong> %s</p><p><strong>Email:</strong> %s</p><p><strong>Message:</strong></p><p>%s</p>",
		html.EscapeString(n.Name), html.EscapeString(n.Email), html.EscapeString(n.Message),
	))
	return msg
}
