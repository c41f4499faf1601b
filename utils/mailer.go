package utils

import (
	"fmt"
	"net/smtp"
	"os"

	"github.com/sirupsen/logrus"
)

// Mailer sends transactional mail through the Mailtrap SMTP relay.
type Mailer struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
}

func NewMailerFromEnv() *Mailer {
	host := os.Getenv("MAILTRAP_HOST")
	if host == "" {
		host = "smtp.mailtrap.io"
	}
	port := os.Getenv("MAILTRAP_PORT")
	if port == "" {
		port = "2525"
	}
	return &Mailer{
		Host:     host,
		Port:     port,
		Username: os.Getenv("MAILTRAP_USERNAME"),
		Password: os.Getenv("MAILTRAP_PASSWORD"),
		From:     "FutureProof@gmail.com",
	}
}

func (m *Mailer) send(to, subject, htmlBody string) error {
	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/html; charset=\"UTF-8\"\r\n\r\n%s",
		m.From, to, subject, htmlBody)
	auth := smtp.PlainAuth("", m.Username, m.Password, m.Host)
	return smtp.SendMail(m.Host+":"+m.Port, auth, m.From, []string{to}, []byte(msg))
}

// SendOTPEmail delivers a verification/reactivation code.
func (m *Mailer) SendOTPEmail(to, otp string) error {
	body := fmt.Sprintf(`<html><body>
	<h2>FutureProof</h2>
	<h1>Your OTP Code</h1>
	<p>Please use the following OTP code to complete your verification:</p>
	<div style="font-size:24px;font-weight:bold;color:#007BFF;">%s</div>
	<p>This code is valid for a limited time. Do not share it with anyone.</p>
	<p>If you did not request this code, please ignore this email.</p>
	</body></html>`, otp)
	return m.send(to, "Your OTP Code", body)
}

// SendDisabledNotice tells a user their account was disabled and how to
// reactivate it.
func (m *Mailer) SendDisabledNotice(to string) error {
	body := `<html><body>
	<h2>FutureProof</h2>
	<h1>Account Disabled</h1>
	<p>Your account has been disabled. Log in within 24 hours to receive a
	reactivation code, or the account will be permanently deleted.</p>
	</body></html>`
	return m.send(to, "Your FutureProof account was disabled", body)
}

// SendAsync dispatches mail on a goroutine; delivery is best-effort and
// never blocks the HTTP response.
func (m *Mailer) SendAsync(send func() error, to, kind string) {
	go func() {
		if err := send(); err != nil {
			logrus.WithFields(logrus.Fields{"to": to, "kind": kind}).Warnf("mail dispatch failed: %v", err)
		}
	}()
}
