package errorkit

import (
	"fmt"
	"time"
)

// metadata holds the optional fields of a Backing.
// Presence flags keep the zero value distinct from an absent field while the
// struct stays comparable.
type metadata struct {
	timestamp    int64
	hasTimestamp bool
	reason       string
	hasReason    bool
}

// Option configures the optional fields of an error during construction.
type Option func(*metadata)

// WithTimestamp sets the creation timestamp of the error.
// The unit is chosen by the caller; WithTime uses Unix milliseconds.
func WithTimestamp(ts int64) Option {
	return func(m *metadata) {
		m.timestamp = ts
		m.hasTimestamp = true
	}
}

// WithTime sets the creation timestamp to t in Unix milliseconds.
func WithTime(t time.Time) Option {
	return WithTimestamp(t.UnixMilli())
}

// WithReason sets the human-readable reason. An empty string is still a present reason.
func WithReason(reason string) Option {
	return func(m *metadata) {
		m.reason = reason
		m.hasReason = true
	}
}

// WithReasonf sets the reason using a format string.
func WithReasonf(format string, args ...interface{}) Option {
	return WithReason(fmt.Sprintf(format, args...))
}

func buildMetadata(opts []Option) metadata {
	var m metadata
	for _, opt := range opts {
		if opt != nil {
			opt(&m)
		}
	}
	return m
}
