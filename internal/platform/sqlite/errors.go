package sqlite

import (
	"errors"
	"fmt"

	"github.com/mattn/go-sqlite3"
	"github.com/phrazzld/tasks-api/internal/store"
	"gorm.io/gorm"
)

// MapError maps a GORM or SQLite error to the matching store error.
func MapError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return store.ErrTaskNotFound
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) && sqliteErr.Code == sqlite3.ErrConstraint {
		if sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
			sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey {
			return fmt.Errorf("%w: %w", store.ErrDuplicate, err)
		}
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	return err
}
