package employee

import (
	"errors"
	"net/http"
	"strings"

	employeeerrors "github.com/mohamedibrahim3/employees-manger/internal/employee/errors"
	"github.com/mohamedibrahim3/employees-manger/internal/shared/apperror"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// mapRepositoryError converts storage-layer failures into the application
// taxonomy. Raw storage errors never cross the service boundary: anything
// unrecognized is wrapped as a generic internal failure and the original is
// kept for server-side logging via Unwrap.
func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return employeeerrors.ErrEmployeeNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && pgErr.ConstraintName == "uq_employee_national_id" {
			return employeeerrors.ErrNationalIDAlreadyExists
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_employee_national_id") {
		return employeeerrors.ErrNationalIDAlreadyExists
	}

	return apperror.Wrap(err,
		apperror.CodeInternalError,
		"An unexpected error occurred",
		http.StatusInternalServerError,
	)
}

// mapChildError is mapRepositoryError with the record-not-found case resolved
// to the child row's own sentinel instead of the employee one.
func mapChildError(err error, notFound *apperror.AppError) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}
	return mapRepositoryError(err)
}
