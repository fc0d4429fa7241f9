package service

import "errors"

// ValidationError is a client-caused failure: a missing, malformed, or
// out-of-catalog field. Handlers surface it as a 400 with the message
// verbatim; everything else is a server-side failure.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func missingField(field string) *ValidationError {
	return &ValidationError{Field: field, Message: "Missing required field: " + field}
}

func invalidField(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// Dependency errors: the startup routine refuses to serve without the
// catalog and model artifacts, but the request path re-checks anyway.
var (
	ErrCatalogUnavailable = errors.New("training data not available")
	ErrModelUnavailable   = errors.New("model not available")
)
