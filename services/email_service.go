// File: /services/email_service.go
package services

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"motostock-api/config"
)

// EmailService sends account-lifecycle notifications over SMTP. It is
// a no-op when no SMTP host is configured, so the application runs
// fine without a mail server.
type EmailService struct {
	config *config.Config
	dialer *gomail.Dialer
}

func NewEmailService(cfg *config.Config) *EmailService {
	service := &EmailService{config: cfg}
	if cfg.SMTPHost != "" {
		service.dialer = gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword)
	}
	return service
}

// Enabled reports whether an SMTP server is configured.
func (es *EmailService) Enabled() bool {
	return es.dialer != nil
}

// SendWelcomeEmail notifies a freshly created account of its username.
func (es *EmailService) SendWelcomeEmail(email, name, username string) error {
	if !es.Enabled() {
		return nil
	}

	body := fmt.Sprintf(
		"Hello %s,\n\n"+
			"An inventory account has been created for you.\n\n"+
			"Username: %s\n\n"+
			"Ask your administrator for the initial password and change it after your first login.\n\n"+
			"%s",
		name, username, es.config.FromName)

	return es.send(email, "Your inventory account", body)
}

// SendPasswordChangedEmail tells the account holder their password was
// overwritten, whether by themselves or an administrator.
func (es *EmailService) SendPasswordChangedEmail(email, name string) error {
	if !es.Enabled() {
		return nil
	}

	body := fmt.Sprintf(
		"Hello %s,\n\n"+
			"The password for your inventory account was just changed. "+
			"If this wasn't you, contact your administrator immediately.\n\n"+
			"%s",
		name, es.config.FromName)

	return es.send(email, "Your password was changed", body)
}

func (es *EmailService) send(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", fmt.Sprintf("%s <%s>", es.config.FromName, es.config.FromEmail))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	if err := es.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("send email to %s: %w", to, err)
	}
	return nil
}
