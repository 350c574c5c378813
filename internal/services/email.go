package services

import (
	"fmt"
	"strings"

	"gopkg.in/gomail.v2"
)

type Mailer interface {
	SendConfirmation(to, username, token, baseURL string) error
}

type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTPMailer(host string, port int, user, password, from string) *SMTPMailer {
	return &SMTPMailer{
		dialer: gomail.NewDialer(host, port, user, password),
		from:   from,
	}
}

// SendConfirmation отправляет письмо со ссылкой подтверждения почты
func (m *SMTPMailer) SendConfirmation(to, username, token, baseURL string) error {
	link := fmt.Sprintf("%s/api/auth/confirmed_email/%s", strings.TrimRight(baseURL, "/"), token)

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", "Confirm your email")
	msg.SetBody("text/html", fmt.Sprintf(
		"<p>Hi %s,</p><p>Please confirm your email by following <a href=%q>this link</a>.</p>",
		username, link,
	))

	return m.dialer.DialAndSend(msg)
}
