package store

import (
	"errors"

	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"
)

var (
	// ErrNotFound indicates no word exists for the requested ID.
	ErrNotFound = errors.New("word not found")

	// ErrUnavailable indicates the persistence layer failed. Cached content
	// is never served in its place.
	ErrUnavailable = errors.New("word store unavailable")
)

// ValidationError reports a rejected write: a missing required field or a
// duplicate word.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// translateReadError maps repository read errors into the store taxonomy.
func translateReadError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return errors.Join(ErrUnavailable, err)
}

// translateWriteError additionally recognizes unique-constraint violations
// on the word column.
func translateWriteError(err error) error {
	if isDuplicateWord(err) {
		return &ValidationError{Message: "word already exists"}
	}
	return translateReadError(err)
}

func isDuplicateWord(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var sqliteErr sqlite3.Error
	return errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique
}
