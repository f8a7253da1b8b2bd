package pgsql

import (
	"errors"

	"github.com/SscSPs/ledgerbook/internal/apperrors"
	"github.com/SscSPs/ledgerbook/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Postgres SQLSTATE codes translated at the repository boundary.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
)

// constraintIssues maps named check constraints to the field they protect.
var constraintIssues = map[string]apperrors.Issue{
	"invoices_due_after_issue": {Path: "dueAt", Message: domain.MsgDueAfterIssue},
}

// translatePgError is the single place where storage errors become apperrors.
// Errors that are already classified pass through unchanged.
func translatePgError(err error) error {
	if err == nil {
		return nil
	}

	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return err
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.NewNotFoundError("")
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return apperrors.NewConflictError("", map[string]any{"constraint": pgErr.ConstraintName})
		case pgForeignKeyViolation:
			return apperrors.NewBadRequestError(apperrors.MsgInvalidRelation, map[string]any{"constraint": pgErr.ConstraintName})
		case pgCheckViolation:
			if issue, ok := constraintIssues[pgErr.ConstraintName]; ok {
				return apperrors.NewValidationError(issue)
			}
			return apperrors.NewValidationError(apperrors.Issue{Path: "", Message: "Violates constraint " + pgErr.ConstraintName})
		}
	}

	return apperrors.NewInternalError(err)
}
