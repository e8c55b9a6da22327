package domain

import "fmt"

// errors.go defines domain-specific error types.
type domainErr struct {
	message string
}

// Error returns the error message.
func (e domainErr) Error() string {
	return e.message
}

// NotFoundErr represents an error when a requested entity is not found.
type NotFoundErr struct {
	domainErr
}

// NewNotFoundErr creates a new NotFoundErr with the given message.
func NewNotFoundErr(message string) *NotFoundErr {
	return &NotFoundErr{
		domainErr: domainErr{message: message},
	}
}

// ValidationErr represents an error when validation fails.
type ValidationErr struct {
	domainErr
}

// NewValidationErr creates a new ValidationErr with the given message.
func NewValidationErr(message string) *ValidationErr {
	return &ValidationErr{
		domainErr: domainErr{message: message},
	}
}

// MissingCredentialErr is returned before any upstream call when the caller
// did not supply a bearer credential.
type MissingCredentialErr struct {
	domainErr
}

// NewMissingCredentialErr creates a new MissingCredentialErr.
func NewMissingCredentialErr() *MissingCredentialErr {
	return &MissingCredentialErr{
		domainErr: domainErr{message: "API key is required"},
	}
}

// UpstreamHTTPErr carries a non-2xx response from the inference gateway with
// its status code and body preserved.
type UpstreamHTTPErr struct {
	StatusCode int
	Body       string
}

// NewUpstreamHTTPErr creates a new UpstreamHTTPErr.
func NewUpstreamHTTPErr(statusCode int, body string) *UpstreamHTTPErr {
	return &UpstreamHTTPErr{StatusCode: statusCode, Body: body}
}

// Error returns the error message.
func (e *UpstreamHTTPErr) Error() string {
	return fmt.Sprintf("upstream returned status %d: %s", e.StatusCode, e.Body)
}

// Retriable reports whether the status code denotes a server-side failure.
func (e *UpstreamHTTPErr) Retriable() bool {
	return e.StatusCode >= 500
}

// ProtocolViolationErr represents an otherwise-successful upstream response
// that is missing a field or carries an unexpected one.
type ProtocolViolationErr struct {
	domainErr
}

// NewProtocolViolationErr creates a new ProtocolViolationErr with the given message.
func NewProtocolViolationErr(message string) *ProtocolViolationErr {
	return &ProtocolViolationErr{
		domainErr: domainErr{message: message},
	}
}

// TransportErr wraps a network-level failure talking to the gateway.
type TransportErr struct {
	Err error
}

// NewTransportErr creates a new TransportErr.
func NewTransportErr(err error) *TransportErr {
	return &TransportErr{Err: err}
}

// Error returns the error message.
func (e *TransportErr) Error() string {
	return fmt.Sprintf("transport error: %v", e.Err)
}

// Unwrap returns the underlying network error.
func (e *TransportErr) Unwrap() error {
	return e.Err
}

// SubmissionErr is returned by the image submission once retries are
// exhausted or the response breaks the protocol. Cause is the last observed error.
type SubmissionErr struct {
	Attempts int
	Cause    error
}

// NewSubmissionErr creates a new SubmissionErr.
func NewSubmissionErr(attempts int, cause error) *SubmissionErr {
	return &SubmissionErr{Attempts: attempts, Cause: cause}
}

// Error returns the error message.
func (e *SubmissionErr) Error() string {
	return fmt.Sprintf("image submission failed after %d attempt(s): %v", e.Attempts, e.Cause)
}

// Unwrap returns the last observed cause.
func (e *SubmissionErr) Unwrap() error {
	return e.Cause
}
