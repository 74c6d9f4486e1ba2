package services

import "errors"

// ErrNotFound is returned when a referenced entity is absent.
var ErrNotFound = errors.New("not found")

// ValidationError marks input the caller can fix; handlers map it to a 400
// response carrying the message verbatim.
type ValidationError string

func (e ValidationError) Error() string { return string(e) }

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var v ValidationError
	return errors.As(err, &v)
}
