package employeeerrors

import (
	"net/http"

	"github.com/mohamedibrahim3/employees-manger/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrPenaltyNotFound = apperror.New(
		apperror.CodeNotFound,
		"Penalty not found",
		http.StatusNotFound,
	)
	ErrBonusNotFound = apperror.New(
		apperror.CodeNotFound,
		"Bonus not found",
		http.StatusNotFound,
	)
	ErrEfficiencyReportNotFound = apperror.New(
		apperror.CodeNotFound,
		"Efficiency report not found",
		http.StatusNotFound,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid employee ID",
		http.StatusBadRequest,
	)
	ErrNationalIDAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"An employee with the same national ID already exists",
		http.StatusConflict,
	)
)
