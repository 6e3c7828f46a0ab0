package pkgdomain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidConfig   = errors.New("invalid deployment config")
	ErrHandlerNotFound = errors.New("supervisor handler not found in release archive")
	ErrCorruptArchive  = errors.New("corrupt release archive")
)

// SizeExceededError reports an artifact that does not fit the ceiling of the
// selected deployment transport.
type SizeExceededError struct {
	Actual int64
	Limit  int64
}

func (e *SizeExceededError) Error() string {
	return fmt.Sprintf("deployment package size %d exceeds maximum of %d bytes", e.Actual, e.Limit)
}
