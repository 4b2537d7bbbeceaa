package repositories

import (
	"errors"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

var (
	// ErrNotFound means no row matched the given identifier or lookup.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate means storage rejected the row for violating a
	// unique constraint, e.g. a taken username.
	ErrDuplicate = errors.New("duplicate record")
	// ErrInvalidCredentials covers both an unknown username and a
	// wrong password; callers cannot tell the two apart.
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// MySQL error 1062: duplicate entry for a unique key.
const mysqlDuplicateEntry = 1062

// translate maps driver and ORM errors onto the repository error
// kinds. Anything unrecognized is passed through for the caller to
// wrap as a storage error.
func translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicate
	}
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntry {
		return ErrDuplicate
	}
	return err
}
