package errorkit

// Backing is the immutable record holding the data of one error instance.
//
// A Backing is a plain value: it is compared with ==, copied freely and never
// changed after construction. To "modify" an error, build a new Backing.
type Backing[S Source] struct {
	typ    string
	source S
	meta   metadata
}

// NewBacking creates a Backing holding exactly the given fields.
// No transformation or validation is applied to typ or to the options.
//
// Example:
//
//	b := errorkit.NewBacking("timeout", SourceTransport,
//	    errorkit.WithReason("no response after 30s"))
func NewBacking[S Source](typ string, source S, opts ...Option) Backing[S] {
	return Backing[S]{
		typ:    typ,
		source: source,
		meta:   buildMetadata(opts),
	}
}

// Type returns the subtype label chosen by the error-raising code.
func (b Backing[S]) Type() string {
	return b.typ
}

// Source returns the origin tag.
func (b Backing[S]) Source() S {
	return b.source
}

// Timestamp returns the creation timestamp and whether one was supplied.
func (b Backing[S]) Timestamp() (int64, bool) {
	return b.meta.timestamp, b.meta.hasTimestamp
}

// Reason returns the human-readable reason and whether one was supplied.
func (b Backing[S]) Reason() (string, bool) {
	return b.meta.reason, b.meta.hasReason
}

// Equal reports whether both backings hold the same fields.
func (b Backing[S]) Equal(other Backing[S]) bool {
	return b == other
}

