package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

var (
	ErrNotFound         = errors.New("not found")
	ErrInvalidOperation = errors.New("invalid operation")
	ErrConflict         = errors.New("conflict")
	ErrForbidden        = errors.New("forbidden")
	ErrUnavailable      = errors.New("storage unavailable")
)

// storeError переводит ошибку хранилища в доменную таксономию:
// отсутствие записи — ErrNotFound, всё остальное — ErrUnavailable
func storeError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: %v", ErrNotFound, err)
	}
	return fmt.Errorf("%w: %v", ErrUnavailable, err)
}
