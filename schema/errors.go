package schema

import (
	"fmt"
	"strings"

	cueerrors "cuelang.org/go/cue/errors"
	"github.com/jmgilman/go/errorkit"
)

// issue is a single schema violation.
type issue struct {
	// Path is the field path where the violation occurred (e.g., ["source"]).
	Path []string

	// Message is the human-readable violation message.
	Message string
}

// String returns "path: message", or just the message at the document root.
func (i issue) String() string {
	if len(i.Path) == 0 {
		return i.Message
	}
	return strings.Join(i.Path, ".") + ": " + i.Message
}

// validationError reports a rejected document.
func validationError(typ, reason string) errorkit.KitErr {
	return errorkit.New[errorkit.KitError](typ, errorkit.SourceValidation, errorkit.WithReason(reason))
}

// decodingError reports input that is not a document at all.
func decodingError(format string, args ...interface{}) errorkit.KitErr {
	return errorkit.New[errorkit.KitError](errorkit.TypeInvalidDocument, errorkit.SourceDecoding,
		errorkit.WithReasonf(format, args...))
}

// cancelledError reports a context that was done before validation started.
func cancelledError(err error) errorkit.KitErr {
	return validationError(errorkit.TypeCancelled, fmt.Sprintf("context cancelled: %v", err))
}

// fieldNotAllowed is the message CUE uses for keys outside a closed definition.
const fieldNotAllowed = "field not allowed"

// violationError lists every issue in the reason.
func violationError(typ, message string, issues []issue) errorkit.KitErr {
	parts := make([]string, 0, len(issues))
	for _, issue := range issues {
		parts = append(parts, issue.String())
	}
	return validationError(typ, message+": "+strings.Join(parts, "; "))
}

// issuesOf returns the issues of a CUE error, or the error text as a single
// issue when it carries none.
func issuesOf(err error) []issue {
	issues := extractIssues(err)
	if len(issues) == 0 && err != nil {
		issues = append(issues, issue{Message: err.Error()})
	}
	return issues
}

// mergeIssues appends found to closed, skipping closedness errors already
// reported for the same key.
func mergeIssues(closed, found []issue) []issue {
	reported := make(map[string]bool, len(closed))
	for _, i := range closed {
		reported[i.Path[len(i.Path)-1]] = true
	}

	merged := closed
	for _, i := range found {
		if len(i.Path) > 0 && strings.Contains(i.Message, fieldNotAllowed) && reported[i.Path[len(i.Path)-1]] {
			continue
		}
		merged = append(merged, i)
	}
	return merged
}

// extractIssues extracts structured issues from a CUE error.
func extractIssues(err error) []issue {
	if err == nil {
		return nil
	}

	var issues []issue
	for _, e := range cueerrors.Errors(err) {
		format, args := e.Msg()
		issues = append(issues, issue{
			Path:    e.Path(),
			Message: fmt.Sprintf(format, args...),
		})
	}
	return issues
}
