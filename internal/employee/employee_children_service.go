package employee

import (
	"context"

	employeeerrors "github.com/mohamedibrahim3/employees-manger/internal/employee/errors"
	"github.com/mohamedibrahim3/employees-manger/internal/shared/apperror"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Independent child-row CRUD. These are ordinary scoped operations, distinct
// from the bulk replace that runs inside an aggregate update: the row id alone
// determines the update/delete target, employeeId is carried for scoping and
// log correlation.

func (s *service) CreatePenalty(ctx context.Context, employeeID string, req PenaltyRequest) (PenaltyResponse, error) {
	s.logger.Debug("create penalty requested", zap.String("employee_id", employeeID))

	eid, err := uuid.Parse(employeeID)
	if err != nil {
		return PenaltyResponse{}, employeeerrors.ErrInvalidEmployeeID
	}

	row, fields := req.toEntity(eid)
	if len(fields) > 0 {
		return PenaltyResponse{}, apperror.Validation(fields)
	}

	exists, err := s.repo.Exists(ctx, employeeID)
	if err != nil {
		return PenaltyResponse{}, mapRepositoryError(err)
	}
	if !exists {
		return PenaltyResponse{}, employeeerrors.ErrEmployeeNotFound
	}

	if err := s.repo.CreatePenalty(ctx, row); err != nil {
		s.logger.Error("create penalty persist failed", zap.String("employee_id", employeeID), zap.Error(err))
		return PenaltyResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("create penalty success",
		zap.String("employee_id", employeeID),
		zap.String("penalty_id", row.ID.String()),
	)
	return mapPenaltyToResponse(*row), nil
}

func (s *service) UpdatePenalty(ctx context.Context, id, employeeID string, req PenaltyRequest) (PenaltyResponse, error) {
	s.logger.Debug("update penalty requested",
		zap.String("penalty_id", id),
		zap.String("employee_id", employeeID),
	)

	existing, err := s.repo.FindPenaltyByID(ctx, id)
	if err != nil {
		return PenaltyResponse{}, mapChildError(err, employeeerrors.ErrPenaltyNotFound)
	}

	row, fields := req.toEntity(existing.EmployeeID)
	if len(fields) > 0 {
		return PenaltyResponse{}, apperror.Validation(fields)
	}

	existing.Date = row.Date
	existing.Type = row.Type
	existing.Description = row.Description
	existing.Attachments = row.Attachments

	if err := s.repo.SavePenalty(ctx, existing); err != nil {
		s.logger.Error("update penalty persist failed", zap.String("penalty_id", id), zap.Error(err))
		return PenaltyResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("update penalty success", zap.String("penalty_id", id))
	return mapPenaltyToResponse(*existing), nil
}

func (s *service) DeletePenalty(ctx context.Context, id, employeeID string) error {
	s.logger.Debug("delete penalty requested",
		zap.String("penalty_id", id),
		zap.String("employee_id", employeeID),
	)

	rows, err := s.repo.DeletePenalty(ctx, id)
	if err != nil {
		s.logger.Error("delete penalty failed", zap.String("penalty_id", id), zap.Error(err))
		return mapRepositoryError(err)
	}
	if rows == 0 {
		return employeeerrors.ErrPenaltyNotFound
	}

	s.logger.Info("delete penalty success", zap.String("penalty_id", id))
	return nil
}

func (s *service) CreateBonus(ctx context.Context, employeeID string, req BonusRequest) (BonusResponse, error) {
	s.logger.Debug("create bonus requested", zap.String("employee_id", employeeID))

	eid, err := uuid.Parse(employeeID)
	if err != nil {
		return BonusResponse{}, employeeerrors.ErrInvalidEmployeeID
	}

	row, fields := req.toEntity(eid)
	if len(fields) > 0 {
		return BonusResponse{}, apperror.Validation(fields)
	}

	exists, err := s.repo.Exists(ctx, employeeID)
	if err != nil {
		return BonusResponse{}, mapRepositoryError(err)
	}
	if !exists {
		return BonusResponse{}, employeeerrors.ErrEmployeeNotFound
	}

	if err := s.repo.CreateBonus(ctx, row); err != nil {
		s.logger.Error("create bonus persist failed", zap.String("employee_id", employeeID), zap.Error(err))
		return BonusResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("create bonus success",
		zap.String("employee_id", employeeID),
		zap.String("bonus_id", row.ID.String()),
	)
	return mapBonusToResponse(*row), nil
}

func (s *service) UpdateBonus(ctx context.Context, id, employeeID string, req BonusRequest) (BonusResponse, error) {
	s.logger.Debug("update bonus requested",
		zap.String("bonus_id", id),
		zap.String("employee_id", employeeID),
	)

	existing, err := s.repo.FindBonusByID(ctx, id)
	if err != nil {
		return BonusResponse{}, mapChildError(err, employeeerrors.ErrBonusNotFound)
	}

	row, fields := req.toEntity(existing.EmployeeID)
	if len(fields) > 0 {
		return BonusResponse{}, apperror.Validation(fields)
	}

	existing.Date = row.Date
	existing.Reason = row.Reason
	existing.Amount = row.Amount
	existing.Attachments = row.Attachments

	if err := s.repo.SaveBonus(ctx, existing); err != nil {
		s.logger.Error("update bonus persist failed", zap.String("bonus_id", id), zap.Error(err))
		return BonusResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("update bonus success", zap.String("bonus_id", id))
	return mapBonusToResponse(*existing), nil
}

func (s *service) DeleteBonus(ctx context.Context, id, employeeID string) error {
	s.logger.Debug("delete bonus requested",
		zap.String("bonus_id", id),
		zap.String("employee_id", employeeID),
	)

	rows, err := s.repo.DeleteBonus(ctx, id)
	if err != nil {
		s.logger.Error("delete bonus failed", zap.String("bonus_id", id), zap.Error(err))
		return mapRepositoryError(err)
	}
	if rows == 0 {
		return employeeerrors.ErrBonusNotFound
	}

	s.logger.Info("delete bonus success", zap.String("bonus_id", id))
	return nil
}

func (s *service) CreateEfficiencyReport(ctx context.Context, employeeID string, req EfficiencyReportRequest) (EfficiencyReportResponse, error) {
	s.logger.Debug("create efficiency report requested", zap.String("employee_id", employeeID))

	eid, err := uuid.Parse(employeeID)
	if err != nil {
		return EfficiencyReportResponse{}, employeeerrors.ErrInvalidEmployeeID
	}

	row, fields := req.toEntity(eid)
	if len(fields) > 0 {
		return EfficiencyReportResponse{}, apperror.Validation(fields)
	}

	exists, err := s.repo.Exists(ctx, employeeID)
	if err != nil {
		return EfficiencyReportResponse{}, mapRepositoryError(err)
	}
	if !exists {
		return EfficiencyReportResponse{}, employeeerrors.ErrEmployeeNotFound
	}

	if err := s.repo.CreateEfficiencyReport(ctx, row); err != nil {
		s.logger.Error("create efficiency report persist failed", zap.String("employee_id", employeeID), zap.Error(err))
		return EfficiencyReportResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("create efficiency report success",
		zap.String("employee_id", employeeID),
		zap.String("report_id", row.ID.String()),
	)
	return mapReportToResponse(*row), nil
}

func (s *service) UpdateEfficiencyReport(ctx context.Context, id, employeeID string, req EfficiencyReportRequest) (EfficiencyReportResponse, error) {
	s.logger.Debug("update efficiency report requested",
		zap.String("report_id", id),
		zap.String("employee_id", employeeID),
	)

	existing, err := s.repo.FindEfficiencyReportByID(ctx, id)
	if err != nil {
		return EfficiencyReportResponse{}, mapChildError(err, employeeerrors.ErrEfficiencyReportNotFound)
	}

	row, fields := req.toEntity(existing.EmployeeID)
	if len(fields) > 0 {
		return EfficiencyReportResponse{}, apperror.Validation(fields)
	}

	existing.Year = row.Year
	existing.Grade = row.Grade
	existing.Description = row.Description
	existing.Attachments = row.Attachments

	if err := s.repo.SaveEfficiencyReport(ctx, existing); err != nil {
		s.logger.Error("update efficiency report persist failed", zap.String("report_id", id), zap.Error(err))
		return EfficiencyReportResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("update efficiency report success", zap.String("report_id", id))
	return mapReportToResponse(*existing), nil
}

func (s *service) DeleteEfficiencyReport(ctx context.Context, id, employeeID string) error {
	s.logger.Debug("delete efficiency report requested",
		zap.String("report_id", id),
		zap.String("employee_id", employeeID),
	)

	rows, err := s.repo.DeleteEfficiencyReport(ctx, id)
	if err != nil {
		s.logger.Error("delete efficiency report failed", zap.String("report_id", id), zap.Error(err))
		return mapRepositoryError(err)
	}
	if rows == 0 {
		return employeeerrors.ErrEfficiencyReportNotFound
	}

	s.logger.Info("delete efficiency report success", zap.String("report_id", id))
	return nil
}
