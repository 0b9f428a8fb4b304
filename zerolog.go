package errorkit

import "github.com/rs/zerolog"

// MarshalZerologObject implements zerolog.LogObjectMarshaler so a wrapper can be
// attached to a log event as a structured object:
//
//	log.Error().Object("error", err).Msg("request failed")
//
// Absent optional fields are omitted.
func (w Wrapper[E, S]) MarshalZerologObject(e *zerolog.Event) {
	w.Document().MarshalZerologObject(e)
}

// MarshalZerologObject implements zerolog.LogObjectMarshaler for Document.
func (d Document) MarshalZerologObject(e *zerolog.Event) {
	e.Str("name", d.Name).
		Str("type", d.Type).
		Str("source", d.Source)
	if d.Timestamp != nil {
		e.Int64("timestamp", *d.Timestamp)
	}
	if d.Reason != nil {
		e.Str("reason", *d.Reason)
	}
}
