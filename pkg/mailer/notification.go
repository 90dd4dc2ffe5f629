package mailer

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"html/template"
)

//go:embed templates/contact.html
var contactBodyTemplate string

var contactTmpl = template.Must(template.New("contact").Parse(contactBodyTemplate))

// notificationData is what the body template renders. Fields arrive
// sanitized; html/template applies entity escaping at render time, which is
// a separate concern from sanitization (a bare "&" in otherwise safe text
// must still become "&amp;" inside the HTML body).
type notificationData struct {
	From    string
	Subject string
	Message string
}

// ContactNotification builds the operator notification email for one
// submission. All three values must already be sanitized; this function
// only assembles the message. Reply-To is set to the sender address so the
// operator can reply directly.
func ContactNotification(cfg Config, from, subject, message string) (*Email, error) {
	var body bytes.Buffer
	err := contactTmpl.Execute(&body, notificationData{
		From:    from,
		Subject: subject,
		Message: message,
	})
	if err != nil {
		return nil, errors.Join(ErrRenderFailed, err)
	}

	return &Email{
		From:    Recipient(cfg.SenderName, cfg.SenderEmail),
		To:      []string{cfg.Recipient},
		Subject: cfg.SubjectPrefix + subject,
		HTML:    body.String(),
		Text:    fmt.Sprintf("From: %s\nSubject: %s\n\n%s", from, subject, message),
		ReplyTo: from,
	}, nil
}
