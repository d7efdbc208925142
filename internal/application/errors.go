package application

import "errors"

var (
	ErrDuplicateEmail     = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrPasswordTooLong    = errors.New("password must be at most 72 bytes")
	ErrUserNotFound       = errors.New("user not found")
	ErrScheduleNotFound   = errors.New("schedule not found")
	ErrInvalidReference   = errors.New("invalid player reference")
	ErrEmptyChat          = errors.New("message or videoUrl is required")
	ErrChatUnavailable    = errors.New("chat upstream failed")
	ErrUploadsDisabled    = errors.New("video storage is not configured")
	ErrNotVideo           = errors.New("file is not a video")
)
