// Package smtp delivers rendered messages through an upstream mail provider.
// Credentials come from the environment; they are never baked into the binary.
package smtp

import (
	"fmt"
	"net/smtp"

	"orderiq/email-svc/internal/domain"
)

// Sender delivers one rendered message. Implementations make a single attempt;
// retries are the caller's problem (and nobody here retries).
type Sender interface {
	Send(msg domain.Message) error
}

type SMTPSender struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
}

func (s *SMTPSender) Send(msg domain.Message) error {
	addr := s.Host + ":" + s.Port
	auth := smtp.PlainAuth("", s.Username, s.Password, s.Host)

	body := fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/html; charset=UTF-8\r\n\r\n%s",
		s.From, msg.To, msg.Subject, msg.HTML)

	return smtp.SendMail(addr, auth, s.From, []string{msg.To}, []byte(body))
}

var _ Sender = (*SMTPSender)(nil)
