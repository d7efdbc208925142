package mailer

import (
	"fmt"
	"strings"
)

// EmailJob is the JSON payload put on the RabbitMQ queue for sending email.
// Either Template+Data or a ready Subject/Text/HTML body must be set.
type EmailJob struct {
	To       string         `json:"to"`
	Subject  string         `json:"subject,omitempty"`
	Text     string         `json:"text,omitempty"`
	HTML     string         `json:"html,omitempty"`
	Template string         `json:"template,omitempty"` // e.g. "welcome"
	Data     map[string]any `json:"data,omitempty"`
}

// Normalize lowercases the template name and makes sure the recipient
// address is available to templates.
func (j *EmailJob) Normalize() {
	j.Template = strings.ToLower(strings.TrimSpace(j.Template))
	if j.Data == nil {
		j.Data = map[string]any{}
	}
	if v, ok := j.Data["Email"]; !ok || fmt.Sprintf("%v", v) == "" {
		j.Data["Email"] = j.To
	}
}

// Validate reports whether the job carries enough to be sent.
func (j *EmailJob) Validate() error {
	if strings.TrimSpace(j.To) == "" {
		return fmt.Errorf("email job has no recipient")
	}
	if j.Template == "" && j.Subject == "" {
		return fmt.Errorf("email job for %s has neither template nor subject", j.To)
	}
	return nil
}
