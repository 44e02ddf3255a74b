package errors

import (
	stderrors "errors"
	"fmt"
)

type Kind string

const (
	Transport     Kind = "transport"
	NotFound      Kind = "not_found"
	Permission    Kind = "permission"
	InvalidConfig Kind = "invalid_config"
	Internal      Kind = "internal"
)

// DeviceError tags a failed device or pipeline operation with a kind,
// so callers branch on the tag instead of inspecting message text.
type DeviceError struct {
	Kind Kind
	Op   string
	Path string
	Err  error
}

func (e *DeviceError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *DeviceError) Unwrap() error {
	return e.Err
}

func Wrap(kind Kind, op, path string, err error) error {
	if err == nil {
		return nil
	}
	return &DeviceError{
		Kind: kind,
		Op:   op,
		Path: path,
		Err:  err,
	}
}

// KindOf returns the tagged kind of err, or Internal when err carries
// no DeviceError in its chain.
func KindOf(err error) Kind {
	var devErr *DeviceError
	if stderrors.As(err, &devErr) {
		return devErr.Kind
	}
	return Internal
}

func UserMessage(err error) string {
	var devErr *DeviceError
	if !stderrors.As(err, &devErr) {
		return err.Error()
	}
	switch devErr.Kind {
	case Transport:
		return fmt.Sprintf("Device connection failed: %s (%v)", devErr.Path, devErr.Err)
	case NotFound:
		return fmt.Sprintf("Path not found on device: %s", devErr.Path)
	case Permission:
		return fmt.Sprintf("Device refused the operation: %s", devErr.Path)
	case InvalidConfig:
		return fmt.Sprintf("Invalid configuration: %v", devErr.Err)
	default:
		return fmt.Sprintf("Unexpected error: %v", devErr.Err)
	}
}
