package errors

import "fmt"

var (
	ErrWorkerPanic      = fmt.Errorf("worker panic")
	ErrInvalidGroupSize = fmt.Errorf("group size must be at least 1")
	ErrInvalidPayload   = fmt.Errorf("invalid event payload")
	ErrUnsupportedFile  = fmt.Errorf("unsupported file content")
)
