package interactome

import (
	"errors"
	"fmt"
)

// Sentinel errors for common engine error conditions.
// These errors can be used with errors.Is() for error checking.
var (
	// ErrInvalidConfig indicates the provided engine configuration is
	// invalid or incomplete.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrBatchAborted indicates an ingestion batch hit a merge conflict and
	// was rolled back; the store is unchanged for that batch.
	ErrBatchAborted = errors.New("ingestion batch aborted")

	// ErrCollapseFailed indicates duplicate-node collapse hit a merge
	// conflict and stopped.
	ErrCollapseFailed = errors.New("duplicate collapse failed")
)

// Error kinds categorize errors by their type.
const (
	// KindNotFound represents errors where an entity was not found.
	KindNotFound = "not_found"

	// KindValidation represents errors related to input validation.
	KindValidation = "validation"

	// KindMerge represents attribute or direction merge conflicts.
	KindMerge = "merge"

	// KindConfiguration represents errors related to configuration.
	KindConfiguration = "configuration"

	// KindInternal represents internal engine errors.
	KindInternal = "internal"
)

// EngineError is a structured error type that wraps underlying errors with
// the operation that failed and the category of error.
//
// EngineError implements the error interface and supports unwrapping, so it
// is compatible with errors.Is() and errors.As().
type EngineError struct {
	// Op is the operation that failed (e.g., "Engine.IngestBatch").
	Op string

	// Kind categorizes the error (e.g., KindMerge, KindValidation).
	Kind string

	// Err is the underlying error that caused this error.
	Err error

	// Context provides additional context about the error (optional).
	Context map[string]any
}

// Error implements the error interface.
func (e *EngineError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("interactome: %s: %s", e.Op, e.Kind)
	}
	if len(e.Context) > 0 {
		return fmt.Sprintf("interactome: %s (%s): %v [context: %+v]", e.Op, e.Kind, e.Err, e.Context)
	}
	return fmt.Sprintf("interactome: %s (%s): %v", e.Op, e.Kind, e.Err)
}

// Unwrap returns the underlying error, allowing errors.Is() and errors.As()
// to work correctly with wrapped errors.
func (e *EngineError) Unwrap() error {
	return e.Err
}

// Is implements error matching for EngineError, comparing by Kind and Op
// when the target is an EngineError, and delegating to the underlying error
// otherwise.
func (e *EngineError) Is(target error) bool {
	if target == nil {
		return false
	}
	if t, ok := target.(*EngineError); ok {
		if t.Kind != "" && e.Kind == t.Kind {
			if t.Op == "" || e.Op == t.Op {
				return true
			}
		}
	}
	return errors.Is(e.Err, target)
}

// WithContext returns a copy of the error with the provided context added.
func (e *EngineError) WithContext(ctx map[string]any) *EngineError {
	out := &EngineError{Op: e.Op, Kind: e.Kind, Err: e.Err}
	out.Context = make(map[string]any, len(e.Context)+len(ctx))
	for k, v := range e.Context {
		out.Context[k] = v
	}
	for k, v := range ctx {
		out.Context[k] = v
	}
	return out
}
