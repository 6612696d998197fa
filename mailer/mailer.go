package mailer

import (
	"fmt"

	gomail "gopkg.in/gomail.v2"

	"github.com/nnorato/portfoliobackend/config"
	"github.com/nnorato/portfoliobackend/models"
)

// Mailer sends the two contact-flow emails. Both are best-effort: callers log
// failures and carry on.
type Mailer interface {
	SendContactNotification(msg *models.ContactMessage) error
	SendContactConfirmation(msg *models.ContactMessage) error
}

// SMTPMailer implements Mailer over a gomail SMTP dialer.
type SMTPMailer struct {
	dialer    *gomail.Dialer
	sender    string
	recipient string
}

// NewSMTPMailer builds a mailer from the mail section of the configuration.
func NewSMTPMailer(cfg config.Config) *SMTPMailer {
	d := gomail.NewDialer(cfg.MailServer, cfg.MailPort, cfg.MailUsername, cfg.MailPassword)
	// STARTTLS is negotiated automatically on submission ports; implicit TLS
	// only applies on 465
	d.SSL = cfg.MailUseTLS && cfg.MailPort == 465

	return &SMTPMailer{
		dialer:    d,
		sender:    cfg.MailDefaultSender,
		recipient: cfg.ContactRecipient,
	}
}

// SendContactNotification mails the site owner about a new contact message,
// with Reply-To pointing at the submitter.
func (m *SMTPMailer) SendContactNotification(msg *models.ContactMessage) error {
	body := fmt.Sprintf(`Nuevo mensaje de contacto desde tu portfolio:

Nombre: %s
Email: %s
Asunto: %s

Mensaje:
%s

---
Responde directamente a: %s
`, msg.Name, msg.Email, msg.Subject, msg.Message, msg.Email)

	mail := gomail.NewMessage()
	mail.SetHeader("From", m.sender)
	mail.SetHeader("To", m.recipient)
	mail.SetHeader("Reply-To", msg.Email)
	mail.SetHeader("Subject", "[Portfolio] "+msg.Subject)
	mail.SetBody("text/plain", body)

	if err := m.dialer.DialAndSend(mail); err != nil {
		return fmt.Errorf("failed to send contact notification: %w", err)
	}
	return nil
}

// SendContactConfirmation mails the submitter a receipt. The address is taken
// as given; there is no deliverability or ownership check.
func (m *SMTPMailer) SendContactConfirmation(msg *models.ContactMessage) error {
	body := fmt.Sprintf(`Hola %s,

Gracias por contactarme. He recibido tu mensaje y me pondré en contacto contigo pronto.

Asunto: %s

Saludos,
Nicolás Norato
`, msg.Name, msg.Subject)

	mail := gomail.NewMessage()
	mail.SetHeader("From", m.sender)
	mail.SetHeader("To", msg.Email)
	mail.SetHeader("Subject", "Hemos recibido tu mensaje")
	mail.SetBody("text/plain", body)

	if err := m.dialer.DialAndSend(mail); err != nil {
		return fmt.Errorf("failed to send contact confirmation: %w", err)
	}
	return nil
}
