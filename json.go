package errorkit

import (
	"encoding/json"
	"fmt"
	"unicode/utf8"
)

// Document is the flat, serializable view of an errorkit error.
// It is independent of the category and source types, which makes it the shape
// to log, store or send when the receiver does not know the concrete category.
//
// Absent optional fields are nil and omitted from JSON and YAML.
type Document struct {
	// Name is the category name.
	Name string `json:"name" yaml:"name"`

	// Type is the subtype label within the category.
	Type string `json:"type" yaml:"type"`

	// Source is the canonical description of the source.
	Source string `json:"source" yaml:"source"`

	// Timestamp is the creation timestamp, if one was supplied.
	Timestamp *int64 `json:"timestamp,omitempty" yaml:"timestamp,omitempty"`

	// Reason is the human-readable reason, if one was supplied.
	Reason *string `json:"reason,omitempty" yaml:"reason,omitempty"`
}

// String returns the canonical description of the document, identical to the
// description of the wrapper it was taken from.
func (d Document) String() string {
	var meta metadata
	if d.Timestamp != nil {
		meta.timestamp, meta.hasTimestamp = *d.Timestamp, true
	}
	if d.Reason != nil {
		meta.reason, meta.hasReason = *d.Reason, true
	}
	return describe(d.Name, d.Type, d.Source, meta)
}

// Unknown names used by ToDocument for errors that are not errorkit errors.
const (
	UnknownName   = "Unknown"
	UnknownType   = "unknown"
	UnknownSource = "unknown"
)

// ToDocument converts any error to a Document.
// Returns nil if err is nil.
//
// The first errorkit error in the chain provides the fields. Any other error is
// reported with UnknownName, UnknownType, UnknownSource and its message as reason.
//
// Example:
//
//	func writeError(w http.ResponseWriter, err error) {
//	    doc := errorkit.ToDocument(err)
//	    w.Header().Set("Content-Type", "application/json")
//	    json.NewEncoder(w).Encode(doc)
//	}
func ToDocument(err error) *Document {
	if err == nil {
		return nil
	}

	var kitErr Error
	if As(err, &kitErr) {
		doc := kitErr.Document()
		return &doc
	}

	reason := err.Error()
	return &Document{
		Name:   UnknownName,
		Type:   UnknownType,
		Source: UnknownSource,
		Reason: &reason,
	}
}

// Document returns the flat serializable view of the wrapper.
func (w Wrapper[E, S]) Document() Document {
	doc := Document{
		Name:   w.Name(),
		Type:   w.Type(),
		Source: w.SourceName(),
	}
	if ts, ok := w.Timestamp(); ok {
		doc.Timestamp = &ts
	}
	if reason, ok := w.Reason(); ok {
		doc.Reason = &reason
	}
	return doc
}

// wireBacking is the encoded form of a Backing.
// Pointers distinguish a missing key from an empty value while decoding.
type wireBacking[S Source] struct {
	Type      *string `json:"type" yaml:"type"`
	Source    *S      `json:"source" yaml:"source"`
	Timestamp *int64  `json:"timestamp,omitempty" yaml:"timestamp,omitempty"`
	Reason    *string `json:"reason,omitempty" yaml:"reason,omitempty"`
}

// wireWrapper is the encoded form of a Wrapper: the backing keys plus the name.
type wireWrapper[S Source] struct {
	Name      *string `json:"name" yaml:"name"`
	Type      *string `json:"type" yaml:"type"`
	Source    *S      `json:"source" yaml:"source"`
	Timestamp *int64  `json:"timestamp,omitempty" yaml:"timestamp,omitempty"`
	Reason    *string `json:"reason,omitempty" yaml:"reason,omitempty"`
}

func toWireBacking[S Source](b Backing[S]) wireBacking[S] {
	typ, source := b.typ, b.source
	wire := wireBacking[S]{Type: &typ, Source: &source}
	if b.meta.hasTimestamp {
		ts := b.meta.timestamp
		wire.Timestamp = &ts
	}
	if b.meta.hasReason {
		reason := b.meta.reason
		wire.Reason = &reason
	}
	return wire
}

func (wire wireBacking[S]) backing() (Backing[S], error) {
	if wire.Type == nil {
		return Backing[S]{}, newKitError(SourceDecoding, TypeMissingField, `missing required key "type"`)
	}
	if wire.Source == nil {
		return Backing[S]{}, newKitError(SourceDecoding, TypeMissingField, `missing required key "source"`)
	}

	var opts []Option
	if wire.Timestamp != nil {
		opts = append(opts, WithTimestamp(*wire.Timestamp))
	}
	if wire.Reason != nil {
		opts = append(opts, WithReason(*wire.Reason))
	}
	return NewBacking(*wire.Type, *wire.Source, opts...), nil
}

func toWireWrapper[E Category, S Source](w Wrapper[E, S]) wireWrapper[S] {
	b := toWireBacking(w.backing)
	name := w.Name()
	return wireWrapper[S]{
		Name:      &name,
		Type:      b.Type,
		Source:    b.Source,
		Timestamp: b.Timestamp,
		Reason:    b.Reason,
	}
}

func fromWireWrapper[E Category, S Source](wire wireWrapper[S]) (Wrapper[E, S], error) {
	want := nameOf[E]()
	if wire.Name == nil {
		return Wrapper[E, S]{}, newKitError(SourceDecoding, TypeMissingField, `missing required key "name"`)
	}
	if *wire.Name != want {
		return Wrapper[E, S]{}, newKitError(SourceDecoding, TypeNameMismatch,
			fmt.Sprintf("document belongs to category %q, want %q", *wire.Name, want))
	}

	b, err := wireBacking[S]{
		Type:      wire.Type,
		Source:    wire.Source,
		Timestamp: wire.Timestamp,
		Reason:    wire.Reason,
	}.backing()
	if err != nil {
		return Wrapper[E, S]{}, err
	}
	return FromBacking[E](b), nil
}

// invalidUTF8 returns the key of the first text field that is not valid UTF-8.
// encoding/json would replace the offending bytes, so such values cannot round-trip.
func invalidUTF8[S Source](b Backing[S]) (string, bool) {
	switch {
	case !utf8.ValidString(b.typ):
		return "type", true
	case !utf8.ValidString(b.source.String()):
		return "source", true
	case b.meta.hasReason && !utf8.ValidString(b.meta.reason):
		return "reason", true
	}
	return "", false
}

// decodeFailure keeps errorkit errors raised by nested decoders (such as an
// unknown source case) and reports anything else as an invalid document.
func decodeFailure(what string, err error) error {
	if kitErr, ok := AsWrapper[KitError, KitSource](err); ok {
		return kitErr
	}
	return newKitError(SourceDecoding, TypeInvalidDocument,
		fmt.Sprintf("failed to unmarshal %s: %v", what, err))
}

// MarshalJSON implements json.Marshaler for Backing.
// Output: {"type":"...","source":"...","timestamp":123,"reason":"..."} with absent
// optional keys omitted. Text fields must be valid UTF-8.
func (b Backing[S]) MarshalJSON() ([]byte, error) {
	if key, bad := invalidUTF8(b); bad {
		return nil, newKitError(SourceEncoding, TypeMarshalFailed,
			fmt.Sprintf("failed to marshal backing: %s is not valid UTF-8", key))
	}
	data, err := json.Marshal(toWireBacking(b))
	if err != nil {
		return nil, newKitError(SourceEncoding, TypeMarshalFailed,
			fmt.Sprintf("failed to marshal backing: %v", err))
	}
	return data, nil
}

// UnmarshalJSON implements json.Unmarshaler for Backing.
// The keys "type" and "source" are required.
func (b *Backing[S]) UnmarshalJSON(data []byte) error {
	var wire wireBacking[S]
	if err := json.Unmarshal(data, &wire); err != nil {
		return decodeFailure("backing", err)
	}

	decoded, err := wire.backing()
	if err != nil {
		return err
	}
	*b = decoded
	return nil
}

// MarshalJSON implements json.Marshaler for Wrapper.
// This allows wrappers to be marshaled directly with json.Marshal:
//
//	err := errorkit.New[NetworkError]("timeout", SourceTransport)
//	data, _ := json.Marshal(err)
//	// {"name":"NetworkError","type":"timeout","source":"transport"}
//
// Text fields must be valid UTF-8; otherwise a KitErr of type marshalFailed is returned.
func (w Wrapper[E, S]) MarshalJSON() ([]byte, error) {
	if key, bad := invalidUTF8(w.backing); bad {
		return nil, newKitError(SourceEncoding, TypeMarshalFailed,
			fmt.Sprintf("failed to marshal %s: %s is not valid UTF-8", w.Name(), key))
	}
	data, err := json.Marshal(toWireWrapper(w))
	if err != nil {
		return nil, newKitError(SourceEncoding, TypeMarshalFailed,
			fmt.Sprintf("failed to marshal %s: %v", w.Name(), err))
	}
	return data, nil
}

// UnmarshalJSON implements json.Unmarshaler for Wrapper.
// The keys "name", "type" and "source" are required and "name" must equal the
// name of E; a document of another category is rejected.
func (w *Wrapper[E, S]) UnmarshalJSON(data []byte) error {
	var wire wireWrapper[S]
	if err := json.Unmarshal(data, &wire); err != nil {
		return decodeFailure(nameOf[E](), err)
	}

	decoded, err := fromWireWrapper[E](wire)
	if err != nil {
		return err
	}
	*w = decoded
	return nil
}
