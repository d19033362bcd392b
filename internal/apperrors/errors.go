// Package apperrors defines the error taxonomy shared by services and
// controllers. Controllers map these to HTTP status codes; services wrap
// them with context via fmt.Errorf and %w.
package apperrors

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation marks caller errors: answers referencing questions
	// outside the quiz, malformed coordinate payloads, bad input fields.
	ErrValidation = errors.New("validation error")

	// ErrDataIntegrity marks content errors in stored or authored data:
	// a question block without exactly one correct mark, an answer key
	// that cannot be decoded for its question type.
	ErrDataIntegrity = errors.New("data integrity error")

	// ErrNotFound marks lookups of ids that do not exist.
	ErrNotFound = errors.New("not found")
)

func Validationf(format string, args ...interface{}) error {
	return fmt.Errorf(format+": %w", append(args, ErrValidation)...)
}

func DataIntegrityf(format string, args ...interface{}) error {
	return fmt.Errorf(format+": %w", append(args, ErrDataIntegrity)...)
}

func NotFoundf(format string, args ...interface{}) error {
	return fmt.Errorf(format+": %w", append(args, ErrNotFound)...)
}

func IsValidation(err error) bool    { return errors.Is(err, ErrValidation) }
func IsDataIntegrity(err error) bool { return errors.Is(err, ErrDataIntegrity) }
func IsNotFound(err error) bool      { return errors.Is(err, ErrNotFound) }
