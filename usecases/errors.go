package usecases

import (
	"errors"

	"gorm.io/gorm"
)

// Failure taxonomy surfaced to handlers. ErrNotFound maps to 404,
// ErrReferentialViolation to 400. Neither is retried.
var (
	ErrNotFound             = errors.New("record not found")
	ErrReferentialViolation = errors.New("referenced record does not exist")
)

// asNotFound converts the ORM's missing-row error into the usecase taxonomy.
func asNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
