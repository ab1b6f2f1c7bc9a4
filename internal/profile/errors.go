package profile

import "fmt"

// MalformedProfileError is returned when a document is not a valid profile.
// Nothing of such a document is ever applied.
type MalformedProfileError struct {
	Reason string
	Err    error
}

func (e *MalformedProfileError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed profile: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("malformed profile: %s", e.Reason)
}

func (e *MalformedProfileError) Unwrap() error {
	return e.Err
}

// IOError is returned when a profile file cannot be read or written
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("unable to %s profile '%s': %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}
