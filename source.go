package errorkit

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Case is the discriminant of a Source taxonomy.
// Cases are string-identified so they compare, hash and serialize without help.
type Case interface {
	~string
}

// Source describes where an error is assumed to be fixed, for example
// Authentication, Configuration or Validation.
//
// Every Source type owns its own finite set of cases. String must return the raw
// identifier of the case, which is also the canonical description of the source.
// Implementations must serialize as a plain string (either by having a string
// underlying type or by implementing encoding.TextMarshaler and
// encoding.TextUnmarshaler) so that wrappers round-trip through JSON and YAML.
type Source interface {
	comparable
	fmt.Stringer
}

// CaseSet is implemented by Case types that know their complete list of cases.
// Origin decoding rejects any identifier outside the list; Case types without
// the method accept every string.
//
//	func (authCase) Cases() []authCase {
//	    return []authCase{authToken, authSession}
//	}
type CaseSet[C Case] interface {
	Cases() []C
}

// parseCase converts raw into a case of C, checking it against CaseSet if C
// implements it.
func parseCase[C Case](raw string) (C, error) {
	c := C(raw)
	set, ok := any(c).(CaseSet[C])
	if !ok {
		return c, nil
	}
	for _, known := range set.Cases() {
		if known == c {
			return c, nil
		}
	}
	return c, newKitError(SourceDecoding, TypeUnknownCase,
		fmt.Sprintf("unknown source case %q", raw))
}

// Origin is the stock Source implementation. It wraps a single case of a
// consumer-defined Case type.
//
// Example:
//
//	type authCase string
//
//	const (
//	    authToken   authCase = "token"
//	    authSession authCase = "session"
//	)
//
//	type AuthSource = errorkit.Origin[authCase]
//
//	var (
//	    SourceToken   = errorkit.NewOrigin(authToken)
//	    SourceSession = errorkit.NewOrigin(authSession)
//	)
type Origin[C Case] struct {
	base C
}

// NewOrigin returns the source for the given case.
func NewOrigin[C Case](base C) Origin[C] {
	return Origin[C]{base: base}
}

// Base returns the case this source wraps.
func (o Origin[C]) Base() C {
	return o.base
}

// String returns the raw identifier of the case.
func (o Origin[C]) String() string {
	return string(o.base)
}

// MarshalText implements encoding.TextMarshaler.
func (o Origin[C]) MarshalText() ([]byte, error) {
	return []byte(o.base), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
// If C implements CaseSet, unknown cases are rejected and o is left unchanged.
func (o *Origin[C]) UnmarshalText(text []byte) error {
	base, err := parseCase[C](string(text))
	if err != nil {
		return err
	}
	o.base = base
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (o Origin[C]) MarshalYAML() (interface{}, error) {
	return string(o.base), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (o *Origin[C]) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return newKitError(SourceDecoding, TypeInvalidDocument,
			fmt.Sprintf("source must be a scalar, got YAML node kind %d at line %d", node.Kind, node.Line))
	}
	base, err := parseCase[C](node.Value)
	if err != nil {
		return err
	}
	o.base = base
	return nil
}
