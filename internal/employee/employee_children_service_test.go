package employee_test

import (
	"context"
	"testing"
	"time"

	"github.com/mohamedibrahim3/employees-manger/internal/employee"
	employeeerrors "github.com/mohamedibrahim3/employees-manger/internal/employee/errors"
	"github.com/mohamedibrahim3/employees-manger/internal/shared/apperror"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

func TestEmployeeService_CreatePenalty(t *testing.T) {
	ctx := context.Background()
	employeeID := uuid.New()

	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.repo.EXPECT().Exists(gomock.Any(), employeeID.String()).Return(true, nil)
		deps.repo.EXPECT().CreatePenalty(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, row *employee.Penalty) error {
				assert.Equal(t, employeeID, row.EmployeeID)
				assert.Equal(t, "WARNING", row.Type)
				return nil
			})

		resp, err := deps.service.CreatePenalty(ctx, employeeID.String(), employee.PenaltyRequest{
			Date:        "2023-05-10",
			Type:        "WARNING",
			Description: "Late arrival",
		})

		assert.NoError(t, err)
		assert.Equal(t, employeeID.String(), resp.EmployeeID)
		assert.NotEmpty(t, resp.ID)
	})

	t.Run("employee not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.repo.EXPECT().Exists(gomock.Any(), employeeID.String()).Return(false, nil)

		_, err := deps.service.CreatePenalty(ctx, employeeID.String(), employee.PenaltyRequest{
			Date:        "2023-05-10",
			Type:        "WARNING",
			Description: "Late arrival",
		})

		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	})

	t.Run("unknown type rejected before storage", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.CreatePenalty(ctx, employeeID.String(), employee.PenaltyRequest{
			Date:        "2023-05-10",
			Type:        "SOMETHING_ELSE",
			Description: "x",
		})

		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperror.CodeInvalidInput, appErr.Code)
	})
}

func TestEmployeeService_UpdateBonus(t *testing.T) {
	ctx := context.Background()
	employeeID := uuid.New()
	bonusID := uuid.New()

	t.Run("success - employee scope preserved from existing row", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		existing := &employee.Bonus{
			ID:         bonusID,
			EmployeeID: employeeID,
			Date:       time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
			Reason:     "Old reason",
			Amount:     "100",
		}
		deps.repo.EXPECT().FindBonusByID(gomock.Any(), bonusID.String()).Return(existing, nil)
		deps.repo.EXPECT().SaveBonus(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, row *employee.Bonus) error {
				assert.Equal(t, bonusID, row.ID)
				assert.Equal(t, employeeID, row.EmployeeID)
				assert.Equal(t, "Annual bonus", row.Reason)
				assert.Equal(t, "500", row.Amount)
				return nil
			})

		resp, err := deps.service.UpdateBonus(ctx, bonusID.String(), employeeID.String(), employee.BonusRequest{
			Date:   "2024-01-15",
			Reason: "Annual bonus",
			Amount: "500",
		})

		assert.NoError(t, err)
		assert.Equal(t, "500", resp.Amount)
	})

	t.Run("not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.repo.EXPECT().FindBonusByID(gomock.Any(), bonusID.String()).
			Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.UpdateBonus(ctx, bonusID.String(), employeeID.String(), employee.BonusRequest{
			Date:   "2024-01-15",
			Reason: "Annual bonus",
		})

		assert.ErrorIs(t, err, employeeerrors.ErrBonusNotFound)
	})
}

func TestEmployeeService_EfficiencyReports(t *testing.T) {
	ctx := context.Background()
	employeeID := uuid.New()
	reportID := uuid.New()

	t.Run("create rejects unknown grade", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.CreateEfficiencyReport(ctx, employeeID.String(), employee.EfficiencyReportRequest{
			Year:  2024,
			Grade: "OUTSTANDING",
		})

		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperror.CodeInvalidInput, appErr.Code)
	})

	t.Run("update success", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.repo.EXPECT().FindEfficiencyReportByID(gomock.Any(), reportID.String()).
			Return(&employee.EfficiencyReport{ID: reportID, EmployeeID: employeeID, Year: 2022, Grade: "AVERAGE"}, nil)
		deps.repo.EXPECT().SaveEfficiencyReport(gomock.Any(), gomock.Any()).Return(nil)

		resp, err := deps.service.UpdateEfficiencyReport(ctx, reportID.String(), employeeID.String(), employee.EfficiencyReportRequest{
			Year:  2023,
			Grade: "EXCELLENT",
		})

		assert.NoError(t, err)
		assert.Equal(t, 2023, resp.Year)
		assert.Equal(t, "EXCELLENT", resp.Grade)
	})

	t.Run("delete not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.repo.EXPECT().DeleteEfficiencyReport(gomock.Any(), reportID.String()).Return(int64(0), nil)

		err := deps.service.DeleteEfficiencyReport(ctx, reportID.String(), employeeID.String())

		assert.ErrorIs(t, err, employeeerrors.ErrEfficiencyReportNotFound)
	})
}
