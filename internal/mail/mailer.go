package mail

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"
)

// Mailer sends verification emails over SMTP.
type Mailer struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// SendVerificationCode emails a verification code to the given address.
// The context is checked before dialing; gomail itself has no context
// support, so an in-flight send cannot be cancelled.
func (m *Mailer) SendVerificationCode(ctx context.Context, to, username, code string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	from := m.From
	if from == "" {
		from = m.Username
	}

	msg := gomail.NewMessage()
	msg.SetHeader("To", to)
	msg.SetHeader("From", from)
	msg.SetHeader("Subject", "Your verification code")
	msg.SetBody("text/plain", fmt.Sprintf(
		"Hi %s,\n\nYour verification code is %s. It expires in 10 minutes.\n\nIf you didn't sign up, you can ignore this email.\n",
		username, code,
	))

	dialer := gomail.NewDialer(m.Host, m.Port, m.Username, m.Password)
	if err := dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("mail: send verification code: %w", err)
	}
	return nil
}
