package notify

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"insurance-docai/internal/models"
)

// Notifier reports files that need human intervention
type Notifier interface {
	SendErrorNotification(filePath, fileName string) error
}

// Mailer sends error notifications to the operator mailbox over SMTP
type Mailer struct {
	cfg models.NotifyConfig
}

func NewMailer(cfg models.NotifyConfig) *Mailer {
	return &Mailer{cfg: cfg}
}

// SendErrorNotification emails the operator that the file could not be
// processed, attaching the offending file so it can be handled manually.
func (m *Mailer) SendErrorNotification(filePath, fileName string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.Login)
	msg.SetHeader("To", m.cfg.Operator)
	msg.SetHeader("Subject", "Document Processing Error")
	msg.SetBody("text/plain", fmt.Sprintf("The following file could not be processed: %s", fileName))
	msg.Attach(filePath, gomail.Rename(fileName))

	dialer := gomail.NewDialer(m.cfg.SMTPHost, m.cfg.SMTPPort, m.cfg.Login, m.cfg.Password)
	if err := dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("error sending notification email: %w", err)
	}
	return nil
}
