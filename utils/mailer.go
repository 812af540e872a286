package utils

import (
	"io"

	"calllog-backend/models"

	"gopkg.in/gomail.v2"
)

// SendReportEmail sends a plain-text mail with an optional xlsx attachment
// through the stored SMTP configuration. The dialer negotiates STARTTLS on
// the usual submission ports.
func SendReportEmail(cfg *models.EmailConfig, to, subject, body, filename string, attachment []byte) error {
	m := gomail.NewMessage()
	m.SetHeader("From", cfg.SMTPUser)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)
	if len(attachment) > 0 {
		m.Attach(filename,
			gomail.SetCopyFunc(func(w io.Writer) error {
				_, err := w.Write(attachment)
				return err
			}),
			gomail.SetHeader(map[string][]string{
				"Content-Type": {ExportContentType},
			}),
		)
	}

	d := gomail.NewDialer(cfg.SMTPServer, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword)
	return d.DialAndSend(m)
}

// TestSMTPConnection dials and authenticates against the SMTP server without
// sending anything. Used by the email settings page.
func TestSMTPConnection(cfg *models.EmailConfig) error {
	d := gomail.NewDialer(cfg.SMTPServer, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword)
	closer, err := d.Dial()
	if err != nil {
		return err
	}
	return closer.Close()
}
