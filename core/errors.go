package core

import "fmt"

// ConfigError reports invalid input to a destination constructor or a
// registry setting. It is always surfaced synchronously at the point of
// construction or mutation, never deferred to the write path.
type ConfigError struct {
	Reason string
	Err    error // underlying cause, may be nil
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	if e.Err != nil {
		return "logger: " + e.Reason + ": " + e.Err.Error()
	}
	return "logger: " + e.Reason
}

// Unwrap returns the underlying cause.
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// Configf creates a ConfigError with a formatted reason.
func Configf(format string, args ...interface{}) *ConfigError {
	return &ConfigError{Reason: fmt.Sprintf(format, args...)}
}

// ConfigWrap creates a ConfigError around an underlying cause.
func ConfigWrap(err error, reason string) *ConfigError {
	return &ConfigError{Reason: reason, Err: err}
}
