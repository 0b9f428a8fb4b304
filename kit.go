package errorkit

// KitCase enumerates where inside errorkit a failure occurred.
type KitCase string

const (
	// caseDecoding marks failures while reading a serialized error.
	caseDecoding KitCase = "decoding"

	// caseEncoding marks failures while writing a serialized error.
	caseEncoding KitCase = "encoding"

	// caseValidation marks documents rejected by a schema.
	caseValidation KitCase = "validation"
)

// Cases implements CaseSet.
func (KitCase) Cases() []KitCase {
	return []KitCase{caseDecoding, caseEncoding, caseValidation}
}

// KitSource is the Source taxonomy of KitError.
type KitSource = Origin[KitCase]

// Sources of KitError.
var (
	SourceDecoding   = NewOrigin(caseDecoding)
	SourceEncoding   = NewOrigin(caseEncoding)
	SourceValidation = NewOrigin(caseValidation)
)

// Type labels used by KitError.
const (
	// TypeInvalidDocument indicates the input is not a well-formed error document.
	TypeInvalidDocument = "invalidDocument"

	// TypeMissingField indicates a required key is absent.
	TypeMissingField = "missingField"

	// TypeUnknownCase indicates a source identifier outside the case set.
	TypeUnknownCase = "unknownCase"

	// TypeNameMismatch indicates the document belongs to a different category.
	TypeNameMismatch = "nameMismatch"

	// TypeMarshalFailed indicates a value could not be serialized.
	TypeMarshalFailed = "marshalFailed"

	// TypeSchemaViolation indicates a document does not satisfy its schema.
	TypeSchemaViolation = "schemaViolation"

	// TypeInvalidSchema indicates a schema could not be compiled.
	TypeInvalidSchema = "invalidSchema"

	// TypeCancelled indicates the context was cancelled before work started.
	TypeCancelled = "cancelled"
)

// KitError is the category errorkit uses to report its own failures.
type KitError struct{}

// Name implements Category.
func (KitError) Name() string { return "ErrorKit" }

// KitErr is the wrapper type returned by errorkit operations that fail.
type KitErr = Wrapper[KitError, KitSource]

func newKitError(source KitSource, typ, reason string) KitErr {
	return New[KitError](typ, source, WithReason(reason))
}
