package employee_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/mohamedibrahim3/employees-manger/internal/employee"
	employeeerrors "github.com/mohamedibrahim3/employees-manger/internal/employee/errors"
	employeeMock "github.com/mohamedibrahim3/employees-manger/internal/employee/mock"
	"github.com/mohamedibrahim3/employees-manger/internal/shared/apperror"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type serviceDeps struct {
	db        *sql.DB
	sqlMock   sqlmock.Sqlmock
	service   employee.Service
	repo      *employeeMock.MockRepository
	redisMock redismock.ClientMock
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{})
	assert.NoError(t, err)

	rdb, redisMock := redismock.NewClientMock()
	repo := employeeMock.NewMockRepository(ctrl)

	svc := employee.NewService(gormDB, repo, rdb)

	return &serviceDeps{
		db:        db,
		sqlMock:   sqlMock,
		service:   svc,
		repo:      repo,
		redisMock: redisMock,
	}
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

func validEmployeeRequest() employee.EmployeeRequest {
	return employee.EmployeeRequest{
		Name:              "Ahmed Mohamed Ali",
		NickName:          "Ahmed",
		Profession:        "Engineer",
		BirthDate:         "15/06/1985",
		NationalID:        "28506151234567",
		MaritalStatus:     "married",
		ResidenceLocation: "Cairo",
		HiringDate:        "01/09/2010",
		HiringType:        "full-time",
		Administration:    "الإدارة الهندسية",
		ActualWork:        "Maintenance planning",
		PhoneNumber:       "01001234567",
	}
}

func TestEmployeeService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success - parent and children in one transaction", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		req := validEmployeeRequest()
		req.Penalties = []employee.PenaltyRequest{
			{Date: "2023-05-10", Type: "WARNING", Description: "Late arrival"},
		}
		req.Relationships = []employee.RelationshipRequest{
			{RelationshipType: "spouse", Name: "Mona Hassan"},
		}

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		deps.repo.EXPECT().ReplaceRelationships(gomock.Any(), gomock.Any(), gomock.Len(1)).Return(nil)
		deps.repo.EXPECT().ReplacePenalties(gomock.Any(), gomock.Any(), gomock.Len(1)).Return(nil)
		deps.redisMock.ExpectDel(employee.AdministrationsCacheKey).SetVal(1)

		resp, err := deps.service.Create(ctx, req)

		assert.NoError(t, err)
		assert.Equal(t, "Ahmed Mohamed Ali", resp.Name)
		assert.Equal(t, "married", resp.MaritalStatus)
		assert.NotEmpty(t, resp.ID)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
		assert.NoError(t, deps.redisMock.ExpectationsWereMet())
	})

	t.Run("validation - all violations reported together", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		req := validEmployeeRequest()
		req.BirthDate = "1985-06-15" // wrong layout, must be DD/MM/YYYY
		req.MaritalStatus = "unknown"
		req.Penalties = []employee.PenaltyRequest{
			{Date: "2023-05-10", Type: "BAD_TYPE", Description: "x"},
		}

		_, err := deps.service.Create(ctx, req)

		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperror.CodeInvalidInput, appErr.Code)

		fields, ok := appErr.Details.([]apperror.FieldError)
		assert.True(t, ok)
		assert.Len(t, fields, 3)

		paths := make([]string, 0, len(fields))
		for _, f := range fields {
			paths = append(paths, f.Field)
		}
		assert.Contains(t, paths, "birthDate")
		assert.Contains(t, paths, "maritalStatus")
		assert.Contains(t, paths, "penalties[0].type")
	})

	t.Run("rollback - child insert failure undoes parent", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		req := validEmployeeRequest()
		req.Bonuses = []employee.BonusRequest{
			{Date: "2024-01-15", Reason: "Annual bonus", Amount: "500"},
		}

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		deps.repo.EXPECT().ReplaceBonuses(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("insert failed"))

		_, err := deps.service.Create(ctx, req)

		assert.Error(t, err)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestEmployeeService_Update(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("success - omitted child arrays leave collections untouched", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		existing := &employee.Employee{
			ID:        id,
			CreatedAt: time.Date(2020, 3, 1, 0, 0, 0, 0, time.UTC),
		}

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(gomock.Any(), id.String()).Return(existing, nil)
		deps.repo.EXPECT().Save(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, emp *employee.Employee) error {
				// Original creation stamp survives the full scalar replace.
				assert.Equal(t, existing.CreatedAt, emp.CreatedAt)
				return nil
			})
		// No Replace* expectations: empty child arrays never mean delete-all.
		deps.redisMock.ExpectDel(employee.AdministrationsCacheKey).SetVal(1)

		resp, err := deps.service.Update(ctx, id.String(), validEmployeeRequest())

		assert.NoError(t, err)
		assert.Equal(t, id.String(), resp.ID)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("security notes survive the scalar replace", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		existing := &employee.Employee{
			ID:    id,
			Notes: "flagged by security",
		}

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(gomock.Any(), id.String()).Return(existing, nil)
		deps.repo.EXPECT().Save(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, emp *employee.Employee) error {
				// The aggregate path cannot touch the notes column.
				assert.Equal(t, "flagged by security", emp.Notes)
				return nil
			})
		deps.redisMock.ExpectDel(employee.AdministrationsCacheKey).SetVal(1)

		_, err := deps.service.Update(ctx, id.String(), validEmployeeRequest())

		assert.NoError(t, err)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("success - supplied child array replaces collection", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		req := validEmployeeRequest()
		req.EfficiencyReports = []employee.EfficiencyReportRequest{
			{Year: 2023, Grade: "EXCELLENT"},
			{Year: 2024, Grade: "COMPETENT"},
		}

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(gomock.Any(), id.String()).Return(&employee.Employee{ID: id}, nil)
		deps.repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
		deps.repo.EXPECT().ReplaceEfficiencyReports(gomock.Any(), id, gomock.Len(2)).Return(nil)
		deps.redisMock.ExpectDel(employee.AdministrationsCacheKey).SetVal(1)

		_, err := deps.service.Update(ctx, id.String(), req)

		assert.NoError(t, err)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(gomock.Any(), id.String()).Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.Update(ctx, id.String(), validEmployeeRequest())

		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	})

	t.Run("invalid id", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.Update(ctx, "not-a-uuid", validEmployeeRequest())

		assert.ErrorIs(t, err, employeeerrors.ErrInvalidEmployeeID)
	})
}

func TestEmployeeService_Delete(t *testing.T) {
	ctx := context.Background()
	id := uuid.New().String()

	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.repo.EXPECT().Delete(gomock.Any(), id).Return(int64(1), nil)
		deps.redisMock.ExpectDel(employee.AdministrationsCacheKey).SetVal(1)

		err := deps.service.Delete(ctx, id)

		assert.NoError(t, err)
		assert.NoError(t, deps.redisMock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.repo.EXPECT().Delete(gomock.Any(), id).Return(int64(0), nil)

		err := deps.service.Delete(ctx, id)

		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	})
}

func TestEmployeeService_Search(t *testing.T) {
	ctx := context.Background()

	t.Run("exact administration hit skips fallback", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.repo.EXPECT().
			Search(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, q employee.SearchQuery) ([]employee.Employee, error) {
				assert.Equal(t, "الإدارة الهندسية", q.Administration)
				assert.False(t, q.AdministrationFuzzy)
				return []employee.Employee{{ID: uuid.New()}}, nil
			})

		resp, err := deps.service.Search(ctx, employee.SearchRequest{Administration: "  الإدارة   الهندسية "})

		assert.NoError(t, err)
		assert.Len(t, resp, 1)
	})

	t.Run("exact miss retries as substring match", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		first := deps.repo.EXPECT().
			Search(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, q employee.SearchQuery) ([]employee.Employee, error) {
				assert.False(t, q.AdministrationFuzzy)
				return nil, nil
			})
		deps.repo.EXPECT().
			Search(gomock.Any(), gomock.Any()).
			After(first).
			DoAndReturn(func(_ context.Context, q employee.SearchQuery) ([]employee.Employee, error) {
				assert.True(t, q.AdministrationFuzzy)
				return []employee.Employee{{ID: uuid.New()}, {ID: uuid.New()}}, nil
			})

		resp, err := deps.service.Search(ctx, employee.SearchRequest{Administration: "المالية"})

		assert.NoError(t, err)
		assert.Len(t, resp, 2)
	})

	t.Run("name-only miss does not retry", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.repo.EXPECT().Search(gomock.Any(), gomock.Any()).Return(nil, nil)

		resp, err := deps.service.Search(ctx, employee.SearchRequest{Name: "Ahmed"})

		assert.NoError(t, err)
		assert.Empty(t, resp)
	})

	t.Run("unmapped label short-circuits to empty result", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		// No Search expectation: the resolver never reaches storage.
		resp, err := deps.service.Search(ctx, employee.SearchRequest{EducationalDegree: "شهادة غير معروفة"})

		assert.NoError(t, err)
		assert.Empty(t, resp)
	})
}

func TestEmployeeService_UpdateNotes(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.repo.EXPECT().UpdateNotes(gomock.Any(), id.String(), "flagged for review").Return(int64(1), nil)

		notes, err := deps.service.UpdateNotes(ctx, id.String(), "flagged for review")

		assert.NoError(t, err)
		assert.Equal(t, "flagged for review", notes)
	})

	t.Run("not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.repo.EXPECT().UpdateNotes(gomock.Any(), id.String(), "x").Return(int64(0), nil)

		_, err := deps.service.UpdateNotes(ctx, id.String(), "x")

		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	})
}

func TestEmployeeService_GetNotes(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.repo.EXPECT().FindByID(gomock.Any(), id.String()).
			Return(&employee.Employee{ID: id, Notes: "confidential"}, nil)

		notes, err := deps.service.GetNotes(ctx, id.String())

		assert.NoError(t, err)
		assert.Equal(t, "confidential", notes)
	})

	t.Run("not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.repo.EXPECT().FindByID(gomock.Any(), id.String()).Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.GetNotes(ctx, id.String())

		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	})
}

func TestEmployeeService_Administrations(t *testing.T) {
	ctx := context.Background()

	t.Run("cache hit skips storage", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		cached, _ := json.Marshal([]string{"الإدارة الهندسية", "الإدارة المالية"})
		deps.redisMock.ExpectGet(employee.AdministrationsCacheKey).SetVal(string(cached))

		values, err := deps.service.Administrations(ctx)

		assert.NoError(t, err)
		assert.Equal(t, []string{"الإدارة الهندسية", "الإدارة المالية"}, values)
		assert.NoError(t, deps.redisMock.ExpectationsWereMet())
	})

	t.Run("cache miss loads and stores", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.redisMock.ExpectGet(employee.AdministrationsCacheKey).RedisNil()
		deps.repo.EXPECT().DistinctAdministrations(gomock.Any()).
			Return([]string{"الإدارة الهندسية"}, nil)
		data, _ := json.Marshal([]string{"الإدارة الهندسية"})
		deps.redisMock.ExpectSet(employee.AdministrationsCacheKey, data, time.Hour).SetVal("OK")

		values, err := deps.service.Administrations(ctx)

		assert.NoError(t, err)
		assert.Equal(t, []string{"الإدارة الهندسية"}, values)
	})
}
