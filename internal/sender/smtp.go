package sender

import (
	"context"
	"fmt"
	"mime"
	"net"
	"net/smtp"
	"strconv"
	"strings"
	"time"
)

// SMTPOptions: параметры SMTP сервера.
type SMTPOptions struct {
	Host     string
	Port     int
	Username string // пустой Username отключает аутентификацию
	Password string
	From     string
}

// sendMailFunc совпадает с сигнатурой smtp.SendMail.
type sendMailFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// SMTPMailer отправляет письма через SMTP.
type SMTPMailer struct {
	opts     SMTPOptions
	sendMail sendMailFunc
	now      func() time.Time
}

// NewSMTPMailer создаёт SMTPMailer.
func NewSMTPMailer(opts SMTPOptions) *SMTPMailer {
	return &SMTPMailer{
		opts:     opts,
		sendMail: smtp.SendMail,
		now:      time.Now,
	}
}

// Send отправляет текстовое письмо.
//
// net/smtp не поддерживает context, поэтому отмена проверяется только
// перед началом отправки.
func (m *SMTPMailer) Send(ctx context.Context, to, subject, body string) error {
	if m.opts.Host == "" || m.opts.From == "" {
		return fmt.Errorf("%w: smtp host or sender address is empty", ErrNotConfigured)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	addr := net.JoinHostPort(m.opts.Host, strconv.Itoa(m.opts.Port))

	var auth smtp.Auth
	if m.opts.Username != "" {
		auth = smtp.PlainAuth("", m.opts.Username, m.opts.Password, m.opts.Host)
	}

	msg := m.buildMessage(to, subject, body)
	if err := m.sendMail(addr, auth, m.opts.From, []string{to}, msg); err != nil {
		return fmt.Errorf("smtp: send to %s: %w", to, err)
	}
	return nil
}

// buildMessage собирает письмо в формате RFC 5322.
func (m *SMTPMailer) buildMessage(to, subject, body string) []byte {
	var b strings.Builder

	b.WriteString("From: " + m.opts.From + "\r\n")
	b.WriteString("To: " + to + "\r\n")
	b.WriteString("Subject: " + mime.QEncoding.Encode("utf-8", subject) + "\r\n")
	b.WriteString("Date: " + m.now().Format(time.RFC1123Z) + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=utf-8\r\n")
	b.WriteString("\r\n")
	b.WriteString(strings.ReplaceAll(body, "\n", "\r\n"))

	return []byte(b.String())
}
