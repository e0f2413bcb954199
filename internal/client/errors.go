package client

import (
	"errors"
	"fmt"
)

var (
	ErrBaseURL          = errors.New("base url must be absolute")
	ErrNotFound         = errors.New("post not found")
	ErrUnexpectedStatus = errors.New("unexpected status")
	ErrDecode           = errors.New("decode response")
)

// Error reports a failed upstream call. Err is either a transport error or
// wraps one of ErrNotFound, ErrUnexpectedStatus and ErrDecode.
type Error struct {
	Op     string
	ID     int // zero for calls not addressed to a single post
	Status int // zero when no response was received
	Err    error
}

func (e *Error) Error() string {
	if e.ID != 0 {
		return fmt.Sprintf("%s %d: %v", e.Op, e.ID, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }
