package errorkit

// Category identifies a named family of errors.
//
// Implementations are stateless, usually empty structs. Name is always called on
// the zero value and must return the same constant for every call. The Source
// taxonomy a category uses is bound by the second type parameter of Wrapper; pin
// it with a type alias next to the category:
//
//	type NetworkError struct{}
//
//	func (NetworkError) Name() string { return "NetworkError" }
//
//	type NetworkErr = errorkit.Wrapper[NetworkError, NetworkSource]
//
// Categories conventionally expose factory methods for their common errors:
//
//	func (NetworkError) Timeout(reason string) NetworkErr {
//	    return errorkit.New[NetworkError]("timeout", SourceTransport, errorkit.WithReason(reason))
//	}
type Category interface {
	Name() string
}

// nameOf returns the category name of E.
func nameOf[E Category]() string {
	var category E
	return category.Name()
}
