package employee

import (
	"context"
	"encoding/json"
	"time"

	"github.com/mohamedibrahim3/employees-manger/internal/shared/apperror"
	"github.com/mohamedibrahim3/employees-manger/internal/shared/contextutil"

	employeeerrors "github.com/mohamedibrahim3/employees-manger/internal/employee/errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

// AdministrationsCacheKey holds the distinct administration values feeding the
// search form. Employee read paths themselves are never cached: edits must be
// immediately visible to every reader.
const AdministrationsCacheKey = "employees:administrations"

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req EmployeeRequest) (EmployeeResponse, error)
	GetAll(ctx context.Context) ([]EmployeeResponse, error)
	GetByID(ctx context.Context, id string) (EmployeeResponse, error)
	Update(ctx context.Context, id string, req EmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, id string) error
	Search(ctx context.Context, req SearchRequest) ([]EmployeeResponse, error)
	GetNotes(ctx context.Context, id string) (string, error)
	UpdateNotes(ctx context.Context, id, notes string) (string, error)
	Administrations(ctx context.Context) ([]string, error)

	CreatePenalty(ctx context.Context, employeeID string, req PenaltyRequest) (PenaltyResponse, error)
	UpdatePenalty(ctx context.Context, id, employeeID string, req PenaltyRequest) (PenaltyResponse, error)
	DeletePenalty(ctx context.Context, id, employeeID string) error

	CreateBonus(ctx context.Context, employeeID string, req BonusRequest) (BonusResponse, error)
	UpdateBonus(ctx context.Context, id, employeeID string, req BonusRequest) (BonusResponse, error)
	DeleteBonus(ctx context.Context, id, employeeID string) error

	CreateEfficiencyReport(ctx context.Context, employeeID string, req EfficiencyReportRequest) (EfficiencyReportResponse, error)
	UpdateEfficiencyReport(ctx context.Context, id, employeeID string, req EfficiencyReportRequest) (EfficiencyReportResponse, error)
	DeleteEfficiencyReport(ctx context.Context, id, employeeID string) error
}

type service struct {
	db     *gorm.DB
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(db *gorm.DB, repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		db:     db,
		repo:   repo,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		logger: l,
	}
}

func (s *service) Create(ctx context.Context, req EmployeeRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("national_id", req.NationalID),
		zap.String("administration", req.Administration),
	)

	emp, fields := req.toEntity(uuid.New())
	relationships, penalties, bonuses, reports, childFields := req.childEntities(emp.ID)
	fields = append(fields, childFields...)
	if len(fields) > 0 {
		s.logger.Warn("create employee validation failed",
			zap.String("request_id", rid),
			zap.Int("violations", len(fields)),
		)
		return EmployeeResponse{}, apperror.Validation(fields)
	}

	// Parent row and every supplied child row commit or roll back together.
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)
		if err := qtx.Create(ctx, emp); err != nil {
			return err
		}
		if len(relationships) > 0 {
			if err := qtx.ReplaceRelationships(ctx, emp.ID, relationships); err != nil {
				return err
			}
		}
		if len(penalties) > 0 {
			if err := qtx.ReplacePenalties(ctx, emp.ID, penalties); err != nil {
				return err
			}
		}
		if len(bonuses) > 0 {
			if err := qtx.ReplaceBonuses(ctx, emp.ID, bonuses); err != nil {
				return err
			}
		}
		if len(reports) > 0 {
			if err := qtx.ReplaceEfficiencyReports(ctx, emp.ID, reports); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		s.logger.Error("create employee persist failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	s.invalidateAdministrations(ctx)

	s.logger.Info("create employee success",
		zap.String("request_id", rid),
		zap.String("employee_id", emp.ID.String()),
	)

	// Children are not re-fetched here; callers needing the full aggregate
	// immediately should re-fetch by id.
	return mapToResponse(*emp), nil
}

func (s *service) GetAll(ctx context.Context) ([]EmployeeResponse, error) {
	s.logger.Debug("get all employees requested", zap.String("request_id", contextutil.GetRequestID(ctx)))

	emps, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("get all employees failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	return mapToListResponse(emps), nil
}

func (s *service) GetByID(ctx context.Context, id string) (EmployeeResponse, error) {
	s.logger.Debug("get employee by id requested", zap.String("employee_id", id))

	if _, err := uuid.Parse(id); err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}

	emp, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.Debug("get employee by id miss", zap.String("employee_id", id), zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*emp), nil
}

func (s *service) Update(ctx context.Context, id string, req EmployeeRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("update employee requested",
		zap.String("request_id", rid),
		zap.String("employee_id", id),
	)

	empID, err := uuid.Parse(id)
	if err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}

	emp, fields := req.toEntity(empID)
	relationships, penalties, bonuses, reports, childFields := req.childEntities(empID)
	fields = append(fields, childFields...)
	if len(fields) > 0 {
		s.logger.Warn("update employee validation failed",
			zap.String("request_id", rid),
			zap.Int("violations", len(fields)),
		)
		return EmployeeResponse{}, apperror.Validation(fields)
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		existing, err := qtx.FindByID(ctx, id)
		if err != nil {
			return err
		}
		emp.CreatedAt = existing.CreatedAt
		// Security notes are writable only through the restricted notes
		// surface; the aggregate update must carry the stored value through
		// the scalar replace unchanged.
		emp.Notes = existing.Notes

		// Full scalar replace: omitted optionals are written as NULL.
		if err := qtx.Save(ctx, emp); err != nil {
			return err
		}

		// A non-empty child array replaces that collection wholesale. An
		// omitted or empty array leaves existing rows untouched; empty
		// never means "delete all".
		if len(relationships) > 0 {
			if err := qtx.ReplaceRelationships(ctx, empID, relationships); err != nil {
				return err
			}
		}
		if len(penalties) > 0 {
			if err := qtx.ReplacePenalties(ctx, empID, penalties); err != nil {
				return err
			}
		}
		if len(bonuses) > 0 {
			if err := qtx.ReplaceBonuses(ctx, empID, bonuses); err != nil {
				return err
			}
		}
		if len(reports) > 0 {
			if err := qtx.ReplaceEfficiencyReports(ctx, empID, reports); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		s.logger.Error("update employee persist failed",
			zap.String("request_id", rid),
			zap.String("employee_id", id),
			zap.Error(err),
		)
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	s.invalidateAdministrations(ctx)

	s.logger.Info("update employee success", zap.String("employee_id", id))

	return mapToResponse(*emp), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	s.logger.Debug("delete employee requested", zap.String("employee_id", id))

	if _, err := uuid.Parse(id); err != nil {
		return employeeerrors.ErrInvalidEmployeeID
	}

	// Child rows go with the parent via ON DELETE CASCADE.
	rows, err := s.repo.Delete(ctx, id)
	if err != nil {
		s.logger.Error("delete employee failed", zap.String("employee_id", id), zap.Error(err))
		return mapRepositoryError(err)
	}
	if rows == 0 {
		return employeeerrors.ErrEmployeeNotFound
	}

	s.invalidateAdministrations(ctx)

	s.logger.Info("delete employee success", zap.String("employee_id", id))
	return nil
}

func (s *service) Search(ctx context.Context, req SearchRequest) ([]EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("search employees requested",
		zap.String("request_id", rid),
		zap.String("name", req.Name),
		zap.String("administration", req.Administration),
	)

	q, ok := buildSearchQuery(req)
	if !ok {
		// Unmapped display label: deliberate no-match, not an error.
		s.logger.Debug("search label unmapped, returning empty set", zap.String("request_id", rid))
		return []EmployeeResponse{}, nil
	}

	emps, err := s.repo.Search(ctx, q)
	if err != nil {
		s.logger.Error("search employees failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	// Administration values in the data are inconsistently normalized
	// (trailing spaces, punctuation variants), so an exact miss retries as a
	// substring match. Binary inclusion only, no ranking.
	if len(emps) == 0 && q.Administration != "" && !q.AdministrationFuzzy {
		q.AdministrationFuzzy = true
		emps, err = s.repo.Search(ctx, q)
		if err != nil {
			s.logger.Error("search employees fallback failed", zap.Error(err))
			return nil, mapRepositoryError(err)
		}
	}

	return mapToListResponse(emps), nil
}

// GetNotes reads the security notes column. Aggregate reads never include it;
// this is the only read path, and the handler audit-logs every call.
func (s *service) GetNotes(ctx context.Context, id string) (string, error) {
	s.logger.Debug("get employee notes requested", zap.String("employee_id", id))

	if _, err := uuid.Parse(id); err != nil {
		return "", employeeerrors.ErrInvalidEmployeeID
	}

	emp, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return "", mapRepositoryError(err)
	}

	return emp.Notes, nil
}

// UpdateNotes is the narrow single-field path for the restricted security
// notes surface. It bypasses aggregate validation so notes editors never have
// to resubmit the whole employee form.
func (s *service) UpdateNotes(ctx context.Context, id, notes string) (string, error) {
	s.logger.Debug("update employee notes requested",
		zap.String("request_id", contextutil.GetRequestID(ctx)),
		zap.String("employee_id", id),
	)

	if _, err := uuid.Parse(id); err != nil {
		return "", employeeerrors.ErrInvalidEmployeeID
	}

	rows, err := s.repo.UpdateNotes(ctx, id, notes)
	if err != nil {
		s.logger.Error("update employee notes failed", zap.String("employee_id", id), zap.Error(err))
		return "", mapRepositoryError(err)
	}
	if rows == 0 {
		return "", employeeerrors.ErrEmployeeNotFound
	}

	s.logger.Info("update employee notes success", zap.String("employee_id", id))
	return notes, nil
}

// Administrations returns the distinct administration values for the search
// form. This master list is the only cached read in the system and is
// invalidated on every employee mutation.
func (s *service) Administrations(ctx context.Context) ([]string, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, AdministrationsCacheKey).Result(); err == nil {
			var values []string
			if json.Unmarshal([]byte(cached), &values) == nil {
				return values, nil
			}
		}
	}

	v, err, _ := s.sf.Do(AdministrationsCacheKey, func() (interface{}, error) {
		values, err := s.repo.DistinctAdministrations(ctx)
		if err != nil {
			return nil, mapRepositoryError(err)
		}

		if s.rdb != nil {
			if data, err := json.Marshal(values); err == nil {
				s.rdb.Set(ctx, AdministrationsCacheKey, data, 1*time.Hour)
			}
		}

		return values, nil
	})
	if err != nil {
		return nil, err
	}

	return v.([]string), nil
}

func (s *service) invalidateAdministrations(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, AdministrationsCacheKey).Err(); err != nil {
		s.logger.Error("failed to invalidate administrations cache",
			zap.Error(err),
			zap.String("key", AdministrationsCacheKey),
		)
	}
}
