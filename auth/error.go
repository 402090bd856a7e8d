package auth

import (
	"errors"
	"fmt"

	"github.com/storacha/go-md5auth/core/failure"
)

var (
	// ErrMissingArguments means the configuration string was empty, lacked the
	// "md5:" prefix or had nothing after it.
	ErrMissingArguments = errors.New("missing arguments")
	// ErrInvalidHash means an inline hash= value was not a 32 character hex
	// digest.
	ErrInvalidHash = errors.New("missing or incorrect hash")
	// ErrUnreadableFile means a file= source could not be opened or read.
	ErrUnreadableFile = errors.New("unreadable hash file")
	// ErrInvalidFile means a file= source did not start with a 32 character
	// hex digest.
	ErrInvalidFile = errors.New("invalid hash file")
	// ErrMissingHash means no item of the configuration produced a reference.
	ErrMissingHash = errors.New("missing hash")
	// ErrInvalidOption means an Option passed to Configure was rejected.
	ErrInvalidOption = errors.New("invalid option")
)

// ConfigError is returned by Configure. It unwraps to one of the Err*
// sentinels of this package and, when there is one, to the underlying cause.
type ConfigError struct {
	failure.Trace
	kind  error
	path  string
	cause error
}

func newConfigError(kind error, path string, cause error) *ConfigError {
	return &ConfigError{failure.Here("ConfigError"), kind, path, cause}
}

func (ce *ConfigError) Error() string {
	switch ce.kind {
	case ErrUnreadableFile:
		return fmt.Sprintf("couldn't read [%s] for [%s]", ce.path, Name)
	case ErrInvalidFile:
		return fmt.Sprintf("given file [%s] doesn't contain a valid hash for [%s]", ce.path, Name)
	case ErrInvalidOption:
		return fmt.Sprintf("invalid option for [%s]: %s", Name, ce.cause)
	default:
		return fmt.Sprintf("%s for [%s]", ce.kind, Name)
	}
}

// Path is the file= path the error refers to, if any.
func (ce *ConfigError) Path() string {
	return ce.path
}

func (ce *ConfigError) Unwrap() []error {
	if ce.cause == nil {
		return []error{ce.kind}
	}
	return []error{ce.kind, ce.cause}
}
