package reading

import (
	"fmt"

	"github.com/FocuswithJustin/bibleread/core/errors"
)

// Kinds of failure a Client call can report. Match them with errors.Is.
var (
	ErrOverloaded      = errors.New("request queue is full")
	ErrFailedToGetSave = errors.New("failed to get saved position")
	ErrFailedToSave    = errors.New("failed to save position")
	ErrNoDataToSave    = errors.New("no position to save")
	ErrClosed          = errors.New("client is closed")
)

// Error is returned by every Client call that fails. Kind is one of the
// sentinels above; Err is the underlying cause, if any.
type Error struct {
	Op   string
	Kind error
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("reading %s: %v: %v", e.Op, e.Kind, e.Err)
	}
	return fmt.Sprintf("reading %s: %v", e.Op, e.Kind)
}

func (e *Error) Unwrap() []error {
	if e.Err != nil {
		return []error{e.Kind, e.Err}
	}
	return []error{e.Kind}
}
