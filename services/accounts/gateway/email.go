package gateway

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"net/smtp"
	"strconv"
	"strings"

	"github.com/chetanshingare9301/Exam-Management-System/internal/pkg/models"
	"github.com/chetanshingare9301/Exam-Management-System/internal/utils"
)

// sendMail is swapped in tests
var sendMail = smtp.SendMail

// SMTPSender delivers email codes through an SMTP relay
type SMTPSender struct {
	host     string
	port     int
	username string
	password string
	from     string
}

// NewSMTPSender creates an SMTP sender
func NewSMTPSender(cfg models.NotificationConfig) *SMTPSender {
	from := cfg.EmailFrom
	if from == "" {
		from = cfg.SMTPUsername
	}
	return &SMTPSender{
		host:     cfg.SMTPHost,
		port:     cfg.SMTPPort,
		username: cfg.SMTPUsername,
		password: cfg.SMTPPassword,
		from:     from,
	}
}

// Send mails the code to recipient
func (s *SMTPSender) Send(ctx context.Context, recipient, code string) error {
	if s.host == "" || s.username == "" || s.password == "" {
		return ErrNotConfigured
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	addr := net.JoinHostPort(s.host, strconv.Itoa(s.port))
	auth := smtp.PlainAuth("", s.username, s.password, s.host)
	msg := buildMessage(s.from, recipient, code)

	if s.port == 465 {
		return sendMailTLS(addr, s.host, auth, s.from, recipient, msg)
	}
	if err := sendMail(addr, auth, s.from, []string{recipient}, msg); err != nil {
		return fmt.Errorf("smtp send failed: %w", err)
	}
	return nil
}

func buildMessage(from, to, code string) []byte {
	var sb strings.Builder
	sb.WriteString("From: " + from + "\r\n")
	sb.WriteString("To: " + to + "\r\n")
	sb.WriteString("Subject: Your email verification code\r\n")
	sb.WriteString("MIME-Version: 1.0\r\n")
	sb.WriteString("Content-Type: text/plain; charset=\"utf-8\"\r\n")
	sb.WriteString("\r\n")
	sb.WriteString(fmt.Sprintf("Your email verification code is %s. It expires in %d minutes.\r\n",
		code, int(utils.OTPValidity.Minutes())))
	return []byte(sb.String())
}

// sendMailTLS talks implicit TLS, which smtp.SendMail does not
func sendMailTLS(addr, host string, auth smtp.Auth, from, to string, msg []byte) error {
	conn, err := tls.Dial("tcp", addr, &tls.Config{ServerName: host})
	if err != nil {
		return fmt.Errorf("smtp tls dial failed: %w", err)
	}
	defer conn.Close()

	c, err := smtp.NewClient(conn, host)
	if err != nil {
		return err
	}
	defer c.Close()

	if err := c.Auth(auth); err != nil {
		return err
	}
	if err := c.Mail(from); err != nil {
		return err
	}
	if err := c.Rcpt(to); err != nil {
		return err
	}
	wc, err := c.Data()
	if err != nil {
		return err
	}
	if _, err := wc.Write(msg); err != nil {
		return err
	}
	if err := wc.Close(); err != nil {
		return err
	}
	return c.Quit()
}
