package errorkit

import (
	stderrors "errors"
)

// Is reports whether any error in err's chain matches target.
// This is a convenience wrapper around the standard library errors.Is.
//
// Wrappers are comparable, so a wrapper matches a target wrapper of the same
// category whose fields are all equal:
//
//	if errorkit.Is(err, NetworkError{}.Timeout("no response after 30s")) {
//	    // Handle timeout
//	}
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
// This is a convenience wrapper around the standard library errors.As.
//
// Example:
//
//	var kitErr errorkit.Error
//	if errorkit.As(err, &kitErr) {
//	    name := kitErr.Name()
//	}
func As(err error, target interface{}) bool {
	return stderrors.As(err, target)
}

// AsWrapper returns the first wrapper of category E with source type S in err's chain.
//
// Example:
//
//	if netErr, ok := errorkit.AsWrapper[NetworkError, NetworkSource](err); ok {
//	    log.Warn().Str("source", netErr.SourceName()).Msg("network failure")
//	}
func AsWrapper[E Category, S Source](err error) (Wrapper[E, S], bool) {
	var w Wrapper[E, S]
	if err == nil {
		return w, false
	}
	ok := stderrors.As(err, &w)
	return w, ok
}

// IsCategory reports whether err's chain contains an errorkit error of category E,
// whatever its source type.
func IsCategory[E Category](err error) bool {
	if err == nil {
		return false
	}
	want := nameOf[E]()

	var found bool
	walk(err, func(kitErr Error) bool {
		found = kitErr.Name() == want
		return found
	})
	return found
}

// NameOf extracts the category name from an error.
// Returns UnknownName if the error is nil or not an errorkit error.
//
// The name is taken from the outermost errorkit error in the chain.
func NameOf(err error) string {
	if kitErr, ok := first(err); ok {
		return kitErr.Name()
	}
	return UnknownName
}

// TypeOf extracts the subtype label from an error.
// Returns an empty string if the error is nil or not an errorkit error.
func TypeOf(err error) string {
	if kitErr, ok := first(err); ok {
		return kitErr.Type()
	}
	return ""
}

// SourceOf extracts the source description from an error.
// Returns an empty string if the error is nil or not an errorkit error.
func SourceOf(err error) string {
	if kitErr, ok := first(err); ok {
		return kitErr.SourceName()
	}
	return ""
}

func first(err error) (Error, bool) {
	if err == nil {
		return nil, false
	}
	var kitErr Error
	if stderrors.As(err, &kitErr) {
		return kitErr, true
	}
	return nil, false
}

// walk visits every errorkit error in err's chain, depth first, until visit
// returns true.
func walk(err error, visit func(Error) bool) bool {
	if err == nil {
		return false
	}
	if kitErr, ok := err.(Error); ok && visit(kitErr) {
		return true
	}

	switch x := err.(type) {
	case interface{ Unwrap() error }:
		return walk(x.Unwrap(), visit)
	case interface{ Unwrap() []error }:
		for _, e := range x.Unwrap() {
			if walk(e, visit) {
				return true
			}
		}
	}
	return false
}
