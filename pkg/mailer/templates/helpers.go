package templates

import (
	"strings"
	"time"
)

// Option pattern
type Option func(*EmailData)

func WithTime(t time.Time) Option {
	return func(d *EmailData) {
		utc := t.UTC()
		d.TimeAt = utc
		d.Time = utc.Format("02 January 2006, 15:04")
	}
}

func WithAcademy(academy string) Option {
	return func(d *EmailData) {
		if s := strings.TrimSpace(academy); s != "" {
			d.Academy = s
		}
	}
}

// NewWelcomeData builds the data map for the welcome template.
func NewWelcomeData(appName, name, email, role string, opts ...Option) map[string]any {
	d := EmailData{
		Name:    name,
		Email:   email,
		Role:    role,
		AppName: appName,
	}
	for _, opt := range opts {
		opt(&d)
	}
	return ToMap(d)
}
