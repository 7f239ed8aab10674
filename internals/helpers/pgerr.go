package helper

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

/* ===============================
   PG error mapping
=================================*/

// IsUniqueViolation: cek pelanggaran unique Postgres (SQLSTATE 23505)
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}

// IsForeignKeyViolation: SQLSTATE 23503
func IsForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23503"
	}
	return false
}
