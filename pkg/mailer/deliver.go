package mailer

import (
	"context"
	"fmt"

	mailtpl "github.com/accadex/accadex/pkg/mailer/templates"
)

// Deliver renders the job's template (when set) and hands the result to s.
// Render failures are permanent; send failures may be retried.
func Deliver(ctx context.Context, s Sender, job EmailJob) error {
	job.Normalize()
	if err := job.Validate(); err != nil {
		return &PermanentError{Err: err}
	}

	subject, text, html := job.Subject, job.Text, job.HTML
	if job.Template != "" {
		var err error
		subject, text, html, err = mailtpl.Render(job.Template, job.Data)
		if err != nil {
			return &PermanentError{Err: fmt.Errorf("render %s: %w", job.Template, err)}
		}
	}
	return s.Send(ctx, job.To, subject, text, html)
}

// PermanentError marks a job that will never succeed and must not be requeued.
type PermanentError struct {
	Err error
}

func (e *PermanentError) Error() string { return e.Err.Error() }
func (e *PermanentError) Unwrap() error { return e.Err }
