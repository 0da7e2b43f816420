// Package mail sends verification codes over SMTP.
package mail

import (
	"fmt"
	"net/smtp"
	"os"

	"github.com/jordan-wright/email"
)

// Sender delivers verification emails. The SMTP implementation is swapped out
// for a recording fake in tests.
type Sender interface {
	SendVerificationCode(to, code string) error
}

type SMTPSender struct {
	host string
	port string
	user string
	pass string
}

// NewSMTPSender reads MAIL_HOST, MAIL_PORT, MAIL_USER and MAIL_PASS from the
// environment. MAIL_HOST defaults to smtp.gmail.com:587, matching the
// original deployment.
func NewSMTPSender() *SMTPSender {
	host := os.Getenv("MAIL_HOST")
	if host == "" {
		host = "smtp.gmail.com"
	}
	port := os.Getenv("MAIL_PORT")
	if port == "" {
		port = "587"
	}
	return &SMTPSender{
		host: host,
		port: port,
		user: os.Getenv("MAIL_USER"),
		pass: os.Getenv("MAIL_PASS"),
	}
}

func (s *SMTPSender) SendVerificationCode(to, code string) error {
	e := email.NewEmail()
	e.From = s.user
	e.To = []string{to}
	e.Subject = "Your Organic Eats verification code"
	e.Text = []byte(fmt.Sprintf("Your verification code is: %s\n\nIt expires in 5 minutes.", code))
	addr := s.host + ":" + s.port
	return e.Send(addr, smtp.PlainAuth("", s.user, s.pass, s.host))
}
