package postgres

import (
	"strings"

	"locator/internal/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// constraintViolation names the rule a write broke when the row itself can
// never be stored: a table constraint, or a value the column type rejects
// (SQLSTATE class 22, e.g. 22001 string too long). Retrying such a write
// cannot succeed, unlike a lost connection.
func constraintViolation(err error) (string, bool) {
	if err == nil {
		return "", false
	}

	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return "unique", true
	case errors.Is(err, gorm.ErrCheckConstraintViolated):
		return "check", true
	}

	if pgErr, ok := errors.AsType[*pgconn.PgError](err); ok {
		switch {
		case pgErr.Code == "23505":
			return "unique", true
		case pgErr.Code == "23514":
			return "check", true
		case pgErr.Code == "23502":
			return "not null", true
		case strings.HasPrefix(pgErr.Code, "22"):
			return "data", true
		}

		return "", false
	}

	// Drivers other than pgx only expose the message.
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "23502") || strings.Contains(msg, "violates not-null constraint"):
		return "not null", true
	case strings.Contains(msg, "(sqlstate 22"):
		return "data", true
	}

	return "", false
}
