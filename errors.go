package airscan

import (
	"errors"
	"fmt"
	"log/slog"
)

// Sentinel errors for common driver error conditions.
// These errors can be used with errors.Is() for error checking.
var (
	// ErrUnknownProtocol indicates a transport protocol name that the
	// driver does not recognize (the driver speaks eSCL and WSD only).
	ErrUnknownProtocol = errors.New("unknown protocol")

	// ErrUnknownSource indicates a paper source name outside the SANE
	// source vocabulary (Flatbed, ADF, ADF Duplex).
	ErrUnknownSource = errors.New("unknown paper source")

	// ErrUnknownColorMode indicates a scan mode name outside the SANE
	// scan-mode vocabulary.
	ErrUnknownColorMode = errors.New("unknown color mode")

	// ErrUnknownFormat indicates an image format MIME type the driver
	// cannot produce.
	ErrUnknownFormat = errors.New("unknown image format")

	// ErrInvalidConfig indicates the provided configuration is invalid
	// or incomplete.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrDeviceNotFound indicates the requested device is not present in
	// the configuration.
	ErrDeviceNotFound = errors.New("device not found")
)

// Error kinds categorize errors by their type.
const (
	// KindNotFound represents errors where a resource was not found.
	KindNotFound = "not_found"

	// KindValidation represents errors related to input validation.
	KindValidation = "validation"

	// KindConfiguration represents errors related to configuration.
	KindConfiguration = "configuration"

	// KindInternal represents internal driver errors.
	KindInternal = "internal"
)

// DriverError is a structured error type that wraps underlying errors with
// additional context about the operation that failed and the category of
// error.
//
// DriverError implements the error interface and supports error unwrapping,
// making it compatible with errors.Is() and errors.As().
//
// Example usage:
//
//	err := &DriverError{
//		Op:   "conf.Load",
//		Kind: KindConfiguration,
//		Err:  ErrUnknownProtocol,
//	}
type DriverError struct {
	// Op is the operation that failed (e.g., "conf.Load", "devid.Normalize").
	Op string

	// Kind categorizes the error (e.g., KindNotFound, KindValidation).
	Kind string

	// Err is the underlying error that caused this error.
	Err error

	// Context provides additional context about the error (optional).
	// This can include device names, offending configuration values, or
	// other debugging information.
	Context map[string]any
}

// Error implements the error interface, returning a formatted error message
// that includes the operation, kind, and underlying error.
func (e *DriverError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("airscan: %s: %s", e.Op, e.Kind)
	}

	if len(e.Context) > 0 {
		return fmt.Sprintf("airscan: %s (%s): %v [context: %+v]", e.Op, e.Kind, e.Err, e.Context)
	}

	return fmt.Sprintf("airscan: %s (%s): %v", e.Op, e.Kind, e.Err)
}

// Unwrap returns the underlying error, allowing errors.Is() and errors.As()
// to work correctly with wrapped errors.
func (e *DriverError) Unwrap() error {
	return e.Err
}

// Is implements error matching for DriverError, allowing comparison based
// on the underlying error or the DriverError itself.
func (e *DriverError) Is(target error) bool {
	if target == nil {
		return false
	}

	// Check if target is a DriverError with matching Kind
	if t, ok := target.(*DriverError); ok {
		// Match if both Op and Kind are the same, or if Kind matches and Op is empty in target
		if t.Kind != "" && e.Kind == t.Kind {
			if t.Op == "" || e.Op == t.Op {
				return true
			}
		}
	}

	// Delegate to underlying error
	return errors.Is(e.Err, target)
}

// WithContext returns a new DriverError with the provided context added.
// This is useful for adding debugging information to errors.
//
// Example:
//
//	err := &DriverError{
//		Op:   "conf.Load",
//		Kind: KindConfiguration,
//		Err:  ErrUnknownProtocol,
//	}
//	err = err.WithContext(map[string]any{
//		"device":   "Kyocera ECOSYS M2040dn",
//		"protocol": "ftp",
//	})
func (e *DriverError) WithContext(ctx map[string]any) *DriverError {
	newErr := *e
	// A fresh map keeps the receiver's context untouched; the shallow
	// struct copy alone would alias it.
	newErr.Context = make(map[string]any, len(e.Context)+len(ctx))
	for k, v := range e.Context {
		newErr.Context[k] = v
	}
	for k, v := range ctx {
		newErr.Context[k] = v
	}
	return &newErr
}

// LogValue implements slog.LogValuer, so a DriverError logged through
// log/slog expands into structured attributes instead of a flat string.
func (e *DriverError) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, 3+len(e.Context))
	attrs = append(attrs,
		slog.String("op", e.Op),
		slog.String("kind", e.Kind))
	if e.Err != nil {
		attrs = append(attrs, slog.String("error", e.Err.Error()))
	}
	for k, v := range e.Context {
		attrs = append(attrs, slog.Any(k, v))
	}
	return slog.GroupValue(attrs...)
}

// NewNotFoundError creates a new DriverError with KindNotFound.
func NewNotFoundError(op string, err error) *DriverError {
	return &DriverError{
		Op:   op,
		Kind: KindNotFound,
		Err:  err,
	}
}

// NewValidationError creates a new DriverError with KindValidation.
func NewValidationError(op string, err error) *DriverError {
	return &DriverError{
		Op:   op,
		Kind: KindValidation,
		Err:  err,
	}
}

// NewConfigurationError creates a new DriverError with KindConfiguration.
func NewConfigurationError(op string, err error) *DriverError {
	return &DriverError{
		Op:   op,
		Kind: KindConfiguration,
		Err:  err,
	}
}

// NewInternalError creates a new DriverError with KindInternal.
func NewInternalError(op string, err error) *DriverError {
	return &DriverError{
		Op:   op,
		Kind: KindInternal,
		Err:  err,
	}
}
