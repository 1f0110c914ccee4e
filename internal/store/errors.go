package store

import (
	"errors"
	"fmt"

	sqlite "github.com/mattn/go-sqlite3"
)

var (
	ErrRecordNotFound      = errors.New("record not found")
	ErrDuplicate           = errors.New("record already exists")
	ErrConstraintViolation = errors.New("database constraint violation")
)

// mapError translates sqlite constraint failures into the package
// sentinels. Other errors are returned unchanged.
func mapError(err error) error {
	var sqliteErr sqlite.Error
	if !errors.As(err, &sqliteErr) || sqliteErr.Code != sqlite.ErrConstraint {
		return err
	}
	switch sqliteErr.ExtendedCode {
	case sqlite.ErrConstraintUnique, sqlite.ErrConstraintPrimaryKey:
		return fmt.Errorf("%w: %v", ErrDuplicate, err)
	default:
		return fmt.Errorf("%w: %v", ErrConstraintViolation, err)
	}
}
