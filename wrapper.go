package errorkit

import "time"

// Wrapper is the public error value. It binds the category E to the Backing of
// one error instance whose origin is drawn from the Source taxonomy S.
//
// E is a marker type parameter: it selects the category name and is never stored.
// Wrappers are comparable values, so == and errors.Is match two wrappers of the
// same category when every backing field is equal.
type Wrapper[E Category, S Source] struct {
	backing Backing[S]
}

// compile-time guarantee that Wrapper implements Error.
var _ Error = Wrapper[KitError, KitSource]{}

// New creates a wrapper from raw fields. It always succeeds.
// The category is given explicitly and the source type is inferred:
//
//	err := errorkit.New[NetworkError]("timeout", SourceTransport,
//	    errorkit.WithReason("no response after 30s"),
//	    errorkit.WithTime(time.Now()))
func New[E Category, S Source](typ string, source S, opts ...Option) Wrapper[E, S] {
	return Wrapper[E, S]{backing: NewBacking(typ, source, opts...)}
}

// FromBacking creates a wrapper around an existing Backing. It always succeeds.
func FromBacking[E Category, S Source](backing Backing[S]) Wrapper[E, S] {
	return Wrapper[E, S]{backing: backing}
}

// Make creates a wrapper from raw fields and reports construction failures.
//
// No construction rule can fail today, so the returned error is always nil.
// The error return is reserved for validation rules added in the future
// (for example rejecting an empty type) so that callers already handle it.
func Make[E Category, S Source](typ string, source S, opts ...Option) (Wrapper[E, S], error) {
	return New[E](typ, source, opts...), nil
}

// Name returns the category name. It is identical for every wrapper of E.
func (w Wrapper[E, S]) Name() string {
	return nameOf[E]()
}

// Type returns the subtype label of the error.
func (w Wrapper[E, S]) Type() string {
	return w.backing.Type()
}

// Source returns the origin tag of the error.
func (w Wrapper[E, S]) Source() S {
	return w.backing.Source()
}

// SourceName returns the canonical description of the source.
func (w Wrapper[E, S]) SourceName() string {
	return w.backing.Source().String()
}

// Timestamp returns the creation timestamp and whether one was supplied.
func (w Wrapper[E, S]) Timestamp() (int64, bool) {
	return w.backing.Timestamp()
}

// Time interprets the timestamp as Unix milliseconds, matching WithTime.
func (w Wrapper[E, S]) Time() (time.Time, bool) {
	ts, ok := w.backing.Timestamp()
	if !ok {
		return time.Time{}, false
	}
	return time.UnixMilli(ts), true
}

// Reason returns the human-readable reason and whether one was supplied.
func (w Wrapper[E, S]) Reason() (string, bool) {
	return w.backing.Reason()
}

// Backing returns the record this wrapper owns.
func (w Wrapper[E, S]) Backing() Backing[S] {
	return w.backing
}

// Equal reports whether both wrappers hold the same fields.
func (w Wrapper[E, S]) Equal(other Wrapper[E, S]) bool {
	return w.backing == other.backing
}

// Error returns the canonical description, so a wrapper can be returned as an error.
func (w Wrapper[E, S]) Error() string {
	return w.String()
}
