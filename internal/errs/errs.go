// Package errs defines the error taxonomy shared by services, repositories
// and the HTTP layer. Handlers map these types to status codes in the
// response package.
package errs

import "fmt"

// NotFoundError indicates a requested entity does not exist.
type NotFoundError struct {
	Resource string
	ID       string
}

func NewNotFoundError(resource, id string) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with id %q not found", e.Resource, e.ID)
}

// Label returns the public error label, e.g. "Pet not found".
func (e *NotFoundError) Label() string {
	return e.Resource + " not found"
}

// ValidationError carries the ordered list of per-field violation messages
// collected while validating client input.
type ValidationError struct {
	Message string
	Details []string
}

func NewValidationError(message string, details ...string) *ValidationError {
	return &ValidationError{Message: message, Details: details}
}

func (e *ValidationError) Error() string {
	if len(e.Details) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Details)
}

// ConflictError indicates a persistence constraint violation such as a
// duplicate unique value.
type ConflictError struct {
	Message string
}

func NewConflictError(message string) *ConflictError {
	return &ConflictError{Message: message}
}

func (e *ConflictError) Error() string { return e.Message }

// BadGatewayError indicates an upstream API returned a non-2xx response.
// The upstream status and body are surfaced to the client.
type BadGatewayError struct {
	UpstreamStatus int
	UpstreamBody   string
}

func NewBadGatewayError(status int, body string) *BadGatewayError {
	return &BadGatewayError{UpstreamStatus: status, UpstreamBody: body}
}

func (e *BadGatewayError) Error() string {
	return fmt.Sprintf("upstream API returned status %d", e.UpstreamStatus)
}

// GatewayTimeoutError indicates an upstream API exceeded the request budget.
type GatewayTimeoutError struct {
	Message string
}

func NewGatewayTimeoutError(message string) *GatewayTimeoutError {
	return &GatewayTimeoutError{Message: message}
}

func (e *GatewayTimeoutError) Error() string { return e.Message }

// ConfigurationError indicates a required credential or setting is absent.
type ConfigurationError struct {
	Message string
}

func NewConfigurationError(message string) *ConfigurationError {
	return &ConfigurationError{Message: message}
}

func (e *ConfigurationError) Error() string { return e.Message }
