package utils

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"mime/multipart"
	"net/smtp"
	"net/textproto"
	"strings"

	"campus-pulse/core/config"
)

// Attachment is a file attached to an outgoing email.
type Attachment struct {
	Filename    string
	ContentType string
	Body        []byte
}

// SendHTMLEmail sends an HTML email with optional attachments through the
// configured SMTP relay. One attempt; callers own retry policy.
func SendHTMLEmail(to []string, subject string, htmlBody string, attachments ...Attachment) error {
	cfg, ok := config.GetSafe()
	if !ok {
		return fmt.Errorf("config not initialized")
	}

	mail := cfg.Mail
	if mail.Host == "" || mail.Username == "" || mail.Password == "" {
		return fmt.Errorf("smtp not configured")
	}

	from := fmt.Sprintf("%s <%s>", mail.FromName, mail.FromAddress)

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	headers := map[string]string{
		"From":         from,
		"To":           strings.Join(to, ", "),
		"Subject":      subject,
		"MIME-Version": "1.0",
		"Content-Type": fmt.Sprintf("multipart/mixed; boundary=%q", writer.Boundary()),
	}
	for k, v := range headers {
		fmt.Fprintf(&buf, "%s: %s\r\n", k, v)
	}
	buf.WriteString("\r\n")

	htmlHeader := textproto.MIMEHeader{}
	htmlHeader.Set("Content-Type", "text/html; charset=UTF-8")
	htmlPart, err := writer.CreatePart(htmlHeader)
	if err != nil {
		return err
	}
	if _, err = htmlPart.Write([]byte(htmlBody)); err != nil {
		return err
	}

	for _, att := range attachments {
		attHeader := textproto.MIMEHeader{}
		attHeader.Set("Content-Type", att.ContentType)
		attHeader.Set("Content-Transfer-Encoding", "base64")
		attHeader.Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", att.Filename))

		part, err := writer.CreatePart(attHeader)
		if err != nil {
			return err
		}

		encoded := base64.StdEncoding.EncodeToString(att.Body)
		if _, err = part.Write([]byte(encoded)); err != nil {
			return err
		}
	}

	if err = writer.Close(); err != nil {
		return err
	}

	addr := fmt.Sprintf("%s:%d", mail.Host, mail.Port)
	auth := smtp.PlainAuth("", mail.Username, mail.Password, mail.Host)
	return smtp.SendMail(addr, auth, mail.FromAddress, to, buf.Bytes())
}
