package notifier

import (
	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

const (
	smtpHost = "smtp.gmail.com"
	smtpPort = 465
)

type mailSender interface {
	DialAndSend(...*gomail.Message) error
}

// EmailNotifier sends plain-text alerts over SMTP with implicit TLS.
type EmailNotifier struct {
	user   string
	sender mailSender
}

func NewEmailNotifier(user, password string) *EmailNotifier {
	notifier := &EmailNotifier{user: user}

	if user != "" && password != "" {
		dialer := gomail.NewDialer(smtpHost, smtpPort, user, password)
		dialer.SSL = true
		notifier.sender = dialer
	}

	return notifier
}

// Notify delivers one message to address. Missing credentials or address skip
// delivery; delivery errors are logged and dropped.
func (n *EmailNotifier) Notify(address, subject, body string) {
	if n.sender == nil || address == "" {
		zap.L().Info("email is not configured, skip sending")
		return
	}

	message := gomail.NewMessage()
	message.SetHeader("From", n.user)
	message.SetHeader("To", address)
	message.SetHeader("Subject", subject)
	message.SetBody("text/plain", body)

	if err := n.sender.DialAndSend(message); err != nil {
		zap.L().Error("error send email", zap.String("to", address), zap.Error(err))
		return
	}

	zap.L().Info("email sent", zap.String("to", address))
}
