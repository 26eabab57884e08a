package progress

import "fmt"

// corruptValueError is returned when a persisted value cannot be decoded.
type corruptValueError struct {
	Key string
	Err error
}

func (e *corruptValueError) Error() string {
	return fmt.Sprintf("corrupt value under %q: %v", e.Key, e.Err)
}

func (e *corruptValueError) Unwrap() error { return e.Err }
