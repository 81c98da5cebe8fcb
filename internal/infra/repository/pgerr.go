package repository

import (
	"errors"

	"stayspot/internal/infra"
	"stayspot/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgErrCodeExclusionViolation  = "23P01"
	pgErrCodeUniqueViolation     = "23505"
	pgErrCodeForeignKeyViolation = "23503"
)

// wrapWriteErr classifies a write failure by SQLSTATE so callers can react
// to constraint violations without seeing pgx types.
func wrapWriteErr(msg string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgErrCodeExclusionViolation:
			return infra.WrapRepoErr(msg, err, infra.KindConflict)
		case pgErrCodeUniqueViolation:
			return infra.WrapRepoErr(msg, err, infra.KindDuplicateKey)
		case pgErrCodeForeignKeyViolation:
			return infra.WrapRepoErr(msg, err, infra.KindForeignKeyViolated)
		}
	}
	if pgconv.IsNoRows(err) {
		return infra.WrapRepoErr(msg, err, infra.KindNotFound)
	}
	return infra.WrapRepoErr(msg, err)
}
