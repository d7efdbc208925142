package mailer

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSender struct {
	to, subject, text, html string
	err                     error
	calls                   int
}

func (r *recordingSender) Send(_ context.Context, to, subject, text, html string) error {
	r.calls++
	r.to, r.subject, r.text, r.html = to, subject, text, html
	return r.err
}

func TestDeliver_template(t *testing.T) {
	s := &recordingSender{}
	err := Deliver(context.Background(), s, EmailJob{
		To:       "asha@example.com",
		Template: " Welcome ",
		Data:     map[string]any{"Name": "Asha", "AppName": "Accadex"},
	})
	require.NoError(t, err)
	assert.Equal(t, "asha@example.com", s.to)
	assert.Equal(t, "Welcome to Accadex, Asha", s.subject)
	assert.Contains(t, s.text, "Signed up with: asha@example.com")
}

func TestDeliver_rawBody(t *testing.T) {
	s := &recordingSender{}
	require.NoError(t, Deliver(context.Background(), s, EmailJob{To: "a@b.c", Subject: "Hi", Text: "body"}))
	assert.Equal(t, "Hi", s.subject)
	assert.Equal(t, "body", s.text)
}

func TestDeliver_permanentFailures(t *testing.T) {
	s := &recordingSender{}

	var perr *PermanentError
	err := Deliver(context.Background(), s, EmailJob{Subject: "no recipient"})
	assert.ErrorAs(t, err, &perr)

	err = Deliver(context.Background(), s, EmailJob{To: "a@b.c", Template: "nope"})
	assert.ErrorAs(t, err, &perr)
	assert.Zero(t, s.calls)
}

func TestDeliver_sendFailureIsRetryable(t *testing.T) {
	s := &recordingSender{err: errors.New("mailgun down")}
	err := Deliver(context.Background(), s, EmailJob{To: "a@b.c", Subject: "Hi"})
	require.Error(t, err)

	var perr *PermanentError
	assert.False(t, errors.As(err, &perr))
}
