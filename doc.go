// Package errorkit provides structured, serializable error values.
//
// An errorkit error carries a fixed category name, a domain-specific source tag and
// optional diagnostic metadata (a timestamp and a human-readable reason). Errors are
// plain immutable values: they compare with ==, serialize to JSON and YAML, render a
// canonical description and implement the error interface.
//
// # Building Blocks
//
//   - Source: a closed set of named origins for an error within one domain
//     (Authentication, Configuration, Validation...). Origin is the stock implementation.
//   - Category: a named family of errors sharing one Source taxonomy
//     ("NetworkError", "ValidationError").
//   - Backing: the immutable record of one error instance (type, source, timestamp, reason).
//   - Wrapper: the public error value, generic over a Category and its Source.
//
// # Quick Start
//
// Define a source taxonomy:
//
//	type networkCase string
//
//	const (
//	    networkTransport networkCase = "transport"
//	    networkDNS       networkCase = "dns"
//	)
//
//	type NetworkSource = errorkit.Origin[networkCase]
//
//	var (
//	    SourceTransport = errorkit.NewOrigin(networkTransport)
//	    SourceDNS       = errorkit.NewOrigin(networkDNS)
//	)
//
// Define a category and pin its source with an alias:
//
//	type NetworkError struct{}
//
//	func (NetworkError) Name() string { return "NetworkError" }
//
//	type NetworkErr = errorkit.Wrapper[NetworkError, NetworkSource]
//
//	func (NetworkError) Timeout(reason string) NetworkErr {
//	    return errorkit.New[NetworkError]("timeout", SourceTransport, errorkit.WithReason(reason))
//	}
//
// Create and inspect errors:
//
//	err := NetworkError{}.Timeout("no response after 30s")
//	err.Name()       // "NetworkError"
//	err.Type()       // "timeout"
//	err.SourceName() // "transport"
//	err.Reason()     // "no response after 30s", true
//	err.Timestamp()  // 0, false
//
// # Canonical Description
//
// String and Error render the error with a fixed key order. Optional keys are only
// present when set:
//
//	{"name": "NetworkError", "type": "timeout", "source": "transport", "reason": "no response after 30s"}
//
// Values are escaped as JSON strings, so the description is valid JSON even when a
// reason contains quotes. The timestamp is rendered as a quoted decimal.
//
// # Serialization
//
// Wrapper and Backing implement json.Marshaler, json.Unmarshaler, yaml.Marshaler and
// yaml.Unmarshaler. Absent optional fields are omitted, and decoding a document
// yields a value equal to the one that was encoded:
//
//	data, _ := json.Marshal(err)
//	// {"name":"NetworkError","type":"timeout","source":"transport","reason":"no response after 30s"}
//
//	var decoded NetworkErr
//	_ = json.Unmarshal(data, &decoded)
//	decoded == err // true
//
// Decoding rejects documents whose name belongs to another category, and a null
// optional field decodes as absent. JSON requires valid UTF-8 text; MarshalJSON
// fails with a KitErr instead of rewriting invalid bytes. YAML carries any bytes.
//
// A Case type that implements CaseSet restricts decoding to its listed cases:
//
//	func (authCase) Cases() []authCase { return []authCase{authToken, authSession} }
//
// ToDocument converts any error into the category-independent Document view.
//
// # Standard Library Compatibility
//
// A Wrapper is an error, so it can be returned, wrapped with %w and matched:
//
//	wrapped := fmt.Errorf("fetch user: %w", err)
//	errors.Is(wrapped, err) // true
//
//	if netErr, ok := errorkit.AsWrapper[NetworkError, NetworkSource](wrapped); ok {
//	    ...
//	}
//
// # Logging
//
// Wrapper and Document implement zerolog.LogObjectMarshaler:
//
//	log.Error().Object("error", err).Msg("request failed")
//
// # Library Failures
//
// Failures inside errorkit (malformed documents, schema violations) are reported as
// KitErr values of the "ErrorKit" category, so the same helpers apply to them.
//
// # Concurrency
//
// All types hold only immutable value fields. They are safe to share between
// goroutines without synchronization.
package errorkit
