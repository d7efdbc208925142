package mailer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// Outcome tells a queue consumer how to settle a message.
type Outcome int

const (
	Ack     Outcome = iota // delivered
	Drop                   // malformed or unrenderable, never retry
	Requeue                // transient send failure
)

// Process decodes one queued EmailJob and delivers it.
func Process(ctx context.Context, s Sender, body []byte) (Outcome, error) {
	var job EmailJob
	if err := json.Unmarshal(body, &job); err != nil {
		return Drop, fmt.Errorf("decode job: %w", err)
	}
	err := Deliver(ctx, s, job)
	if err == nil {
		return Ack, nil
	}
	var perm *PermanentError
	if errors.As(err, &perm) {
		return Drop, err
	}
	return Requeue, err
}
