package errorkit

// Error is the category-independent view of an errorkit error.
//
// Every Wrapper implements Error, which lets code inspect errors without knowing
// their category or source type. Use AsWrapper when the concrete category is known.
type Error interface {
	error

	// Name returns the category name.
	Name() string

	// Type returns the subtype label within the category.
	Type() string

	// SourceName returns the canonical description of the source.
	SourceName() string

	// Timestamp returns the creation timestamp and whether one was supplied.
	Timestamp() (int64, bool)

	// Reason returns the human-readable reason and whether one was supplied.
	Reason() (string, bool)

	// Document returns the flat serializable view of the error.
	Document() Document
}
