package service

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// MaxListSize caps every list operation.
const MaxListSize = 1000

var (
	ErrReaderNil     = errors.New("reader is nil")
	ErrImageNotFound = errors.New("image not found")
)

// Option customises a service at construction time.
type Option func(*options)

type options struct {
	now   func() time.Time
	newID func() string
	log   zerolog.Logger
}

func defaultOptions() options {
	return options{
		now:   func() time.Time { return time.Now().UTC() },
		newID: func() string { return uuid.New().String() },
		log:   zerolog.Nop(),
	}
}

func applyOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithClock replaces the time source used for server-assigned timestamps.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// WithIDGenerator replaces the uuid generator used for new identifiers.
func WithIDGenerator(newID func() string) Option {
	return func(o *options) { o.newID = newID }
}

// WithLogger sets the logger for informational events.
func WithLogger(log zerolog.Logger) Option {
	return func(o *options) { o.log = log }
}
