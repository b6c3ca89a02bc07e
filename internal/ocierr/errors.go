// Package ocierr defines the error taxonomy for the OCI MCP server.
//
// Tool bodies signal every technical failure by returning one of these
// errors (or a raw SDK error); they never build error payloads themselves.
// The server middleware is the single point that converts errors into the
// uniform {"error": ...} payload.
package ocierr

import (
	"errors"
	"fmt"

	"github.com/oracle/oci-go-sdk/v65/common"
)

// ConfigurationError reports a missing or unparsable OCI credentials file.
type ConfigurationError struct {
	Path string
	Err  error
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("oci config %s: %v", e.Path, e.Err)
}

func (e *ConfigurationError) Unwrap() error { return e.Err }

// NotFoundError reports a reference to a profile or resource that does
// not exist.
type NotFoundError struct {
	Kind string
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.Name)
}

// NoActiveProfileError reports a profile-dependent operation invoked
// before any profile was selected.
type NoActiveProfileError struct{}

func (e *NoActiveProfileError) Error() string {
	return "No OCI profile selected. Use set_oci_profile to choose one of the profiles from list_oci_profiles."
}

// ValidationError reports a missing or malformed tool parameter.
type ValidationError struct {
	Param  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid parameter %q: %s", e.Param, e.Reason)
}

// MissingParam is shorthand for the common required-parameter case.
func MissingParam(param string) *ValidationError {
	return &ValidationError{Param: param, Reason: "required"}
}

// RequiresProfile reports whether err should carry the requires_profile
// flag in the error payload.
func RequiresProfile(err error) bool {
	var nap *NoActiveProfileError
	return errors.As(err, &nap)
}

// Summary renders err for an error payload. OCI service errors are
// collapsed to their code and message instead of the SDK's multi-line
// dump with request IDs and doc links.
func Summary(err error) string {
	if se, ok := common.IsServiceError(err); ok {
		return fmt.Sprintf("%s: %s (status %d)", se.GetCode(), se.GetMessage(), se.GetHTTPStatusCode())
	}
	return err.Error()
}
