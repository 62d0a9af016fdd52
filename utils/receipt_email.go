package utils

import (
	"crypto/tls"
	"fmt"
	"log"
	"net"
	"net/smtp"
	"strings"
	"time"

	"hotel-reservation/models"
)

// smtpTimeout bounds the whole SMTP exchange, dial included.
var smtpTimeout = 15 * time.Second

// SMTPSettings is the outgoing mail server used for receipt e-mails.
type SMTPSettings struct {
	Host     string
	Port     string
	Username string
	Password string
	FromName string
}

// Enabled reports whether enough settings are present to send mail.
func (s SMTPSettings) Enabled() bool {
	return s.Host != "" && s.Port != "" && s.Username != "" && s.Password != ""
}

// BuildReceiptMessage renders the RFC 822 message carrying the receipt.
func BuildReceiptMessage(settings SMTPSettings, r models.Receipt) string {
	safe := func(s string) string {
		return strings.ReplaceAll(strings.TrimSpace(s), "\r\n", " ")
	}

	from := fmt.Sprintf("%s <%s>", safe(settings.FromName), settings.Username)
	subject := fmt.Sprintf("%s - Official Receipt No. %d", safe(r.HotelName), r.Number)
	body := fmt.Sprintf(
		"Hi %s,\r\n\r\nThank you for choosing %s. Your official receipt is below.\r\n%s",
		safe(r.Guest.Name), safe(r.HotelName), strings.ReplaceAll(FormatReceipt(r), "\n", "\r\n"),
	)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("From: %s\r\n", from))
	sb.WriteString(fmt.Sprintf("To: %s\r\n", safe(r.Guest.Email)))
	sb.WriteString(fmt.Sprintf("Subject: %s\r\n", subject))
	sb.WriteString("MIME-Version: 1.0\r\n")
	sb.WriteString("Content-Type: text/plain; charset=utf-8\r\n\r\n")
	sb.WriteString(body + "\r\n")
	return sb.String()
}

// SendReceiptEmail mails the receipt to the guest. Without SMTP settings it
// only logs the would-be delivery.
func SendReceiptEmail(settings SMTPSettings, r models.Receipt) error {
	if r.Guest.Email == "" {
		return nil
	}
	if !settings.Enabled() {
		log.Printf("[MOCK EMAIL] receipt to:%s no:%d total:%s", r.Guest.Email, r.Number, r.GrandTotal())
		return nil
	}

	msg := BuildReceiptMessage(settings, r)
	if err := sendMail(settings, r.Guest.Email, []byte(msg)); err != nil {
		log.Printf("Failed to send receipt email to %s: %v", r.Guest.Email, err)
		return err
	}

	log.Printf("Receipt email sent to %s", r.Guest.Email)
	return nil
}

// sendMail does what smtp.SendMail does but over a connection with a
// deadline, so a stalled server cannot hang the session.
func sendMail(settings SMTPSettings, to string, msg []byte) error {
	addr := net.JoinHostPort(settings.Host, settings.Port)
	conn, err := net.DialTimeout("tcp", addr, smtpTimeout)
	if err != nil {
		return fmt.Errorf("dial smtp %s: %w", addr, err)
	}
	if err := conn.SetDeadline(time.Now().Add(smtpTimeout)); err != nil {
		conn.Close()
		return err
	}

	c, err := smtp.NewClient(conn, settings.Host)
	if err != nil {
		conn.Close()
		return fmt.Errorf("smtp handshake: %w", err)
	}
	defer c.Close()

	if ok, _ := c.Extension("STARTTLS"); ok {
		if err := c.StartTLS(&tls.Config{ServerName: settings.Host}); err != nil {
			return err
		}
	}
	if ok, _ := c.Extension("AUTH"); ok {
		auth := smtp.PlainAuth("", settings.Username, settings.Password, settings.Host)
		if err := c.Auth(auth); err != nil {
			return err
		}
	}
	if err := c.Mail(settings.Username); err != nil {
		return err
	}
	if err := c.Rcpt(to); err != nil {
		return err
	}
	w, err := c.Data()
	if err != nil {
		return err
	}
	if _, err := w.Write(msg); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}
	return c.Quit()
}
