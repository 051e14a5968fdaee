// Package mailer delivers outbound HTML email.
package mailer

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"
)

var ErrInvalidAddress = errors.New("invalid email address")

// Message is a single HTML email.
type Message struct {
	From     string
	FromName string
	To       string
	Subject  string
	HTMLBody string
}

// Sender is the mail transport consumed by the notification dispatcher.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

func (m Message) validate() error {
	if _, err := mail.ParseAddress(m.To); err != nil {
		return fmt.Errorf("%w %q: %v", ErrInvalidAddress, m.To, err)
	}
	if _, err := mail.ParseAddress(m.From); err != nil {
		return fmt.Errorf("%w %q: %v", ErrInvalidAddress, m.From, err)
	}
	return nil
}

// build renders the RFC 5322 message. Header values are stripped of CR/LF.
func (m Message) build(now time.Time) []byte {
	from := (&mail.Address{Name: m.FromName, Address: m.From}).String()
	to := (&mail.Address{Address: m.To}).String()

	var b strings.Builder
	b.WriteString("From: " + from + "\r\n")
	b.WriteString("To: " + to + "\r\n")
	b.WriteString("Subject: " + headerSafe(m.Subject) + "\r\n")
	b.WriteString("Date: " + now.Format(time.RFC1123Z) + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(m.HTMLBody)
	return []byte(b.String())
}

func headerSafe(v string) string {
	return strings.NewReplacer("\r", " ", "\n", " ").Replace(v)
}
