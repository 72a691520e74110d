package employee

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SearchQuery is the storage-facing filter shape: internal enum codes only,
// text already normalized. AdministrationFuzzy selects the substring fallback
// phase for the administration filter.
type SearchQuery struct {
	Name                string
	Administration      string
	AdministrationFuzzy bool
	EducationalDegree   string
	FunctionalDegree    string
	HasPenalties        *bool
	HasBonuses          *bool
	EfficiencyGrade     string
}

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository

	Create(ctx context.Context, emp *Employee) error
	FindAll(ctx context.Context) ([]Employee, error)
	FindByID(ctx context.Context, id string) (*Employee, error)
	Exists(ctx context.Context, id string) (bool, error)
	Save(ctx context.Context, emp *Employee) error
	UpdateNotes(ctx context.Context, id, notes string) (int64, error)
	Delete(ctx context.Context, id string) (int64, error)
	Search(ctx context.Context, q SearchQuery) ([]Employee, error)
	DistinctAdministrations(ctx context.Context) ([]string, error)

	ReplaceRelationships(ctx context.Context, employeeID uuid.UUID, rows []Relationship) error
	ReplacePenalties(ctx context.Context, employeeID uuid.UUID, rows []Penalty) error
	ReplaceBonuses(ctx context.Context, employeeID uuid.UUID, rows []Bonus) error
	ReplaceEfficiencyReports(ctx context.Context, employeeID uuid.UUID, rows []EfficiencyReport) error

	CreatePenalty(ctx context.Context, row *Penalty) error
	FindPenaltyByID(ctx context.Context, id string) (*Penalty, error)
	SavePenalty(ctx context.Context, row *Penalty) error
	DeletePenalty(ctx context.Context, id string) (int64, error)

	CreateBonus(ctx context.Context, row *Bonus) error
	FindBonusByID(ctx context.Context, id string) (*Bonus, error)
	SaveBonus(ctx context.Context, row *Bonus) error
	DeleteBonus(ctx context.Context, id string) (int64, error)

	CreateEfficiencyReport(ctx context.Context, row *EfficiencyReport) error
	FindEfficiencyReportByID(ctx context.Context, id string) (*EfficiencyReport, error)
	SaveEfficiencyReport(ctx context.Context, row *EfficiencyReport) error
	DeleteEfficiencyReport(ctx context.Context, id string) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	return &repository{db: tx}
}

func (r *repository) Create(ctx context.Context, emp *Employee) error {
	// Children are inserted by the Replace* methods inside the same
	// transaction.
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(emp).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Employee, error) {
	var emps []Employee
	err := r.db.WithContext(ctx).
		Preload(clause.Associations).
		Order("created_at DESC").
		Find(&emps).Error
	return emps, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Employee, error) {
	var emp Employee
	err := r.db.WithContext(ctx).
		Preload(clause.Associations).
		First(&emp, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &emp, nil
}

func (r *repository) Exists(ctx context.Context, id string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Employee{}).
		Where("id = ?", id).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) Save(ctx context.Context, emp *Employee) error {
	// Save writes every scalar column, so omitted optionals land as NULL
	// (full replace, not patch).
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(emp).Error
}

func (r *repository) UpdateNotes(ctx context.Context, id, notes string) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&Employee{}).
		Where("id = ?", id).
		Update("notes", notes)
	return res.RowsAffected, res.Error
}

func (r *repository) Delete(ctx context.Context, id string) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&Employee{}, "id = ?", id)
	return res.RowsAffected, res.Error
}

func (r *repository) Search(ctx context.Context, q SearchQuery) ([]Employee, error) {
	db := r.db.WithContext(ctx).Model(&Employee{})

	if q.Name != "" {
		db = db.Where("name ILIKE ?", "%"+q.Name+"%")
	}
	if q.Administration != "" {
		if q.AdministrationFuzzy {
			db = db.Where("administration ILIKE ?", "%"+q.Administration+"%")
		} else {
			db = db.Where("administration = ?", q.Administration)
		}
	}
	if q.EducationalDegree != "" {
		db = db.Where("educational_degree = ?", q.EducationalDegree)
	}
	if q.FunctionalDegree != "" {
		db = db.Where("functional_degree = ?", q.FunctionalDegree)
	}
	if q.HasPenalties != nil {
		sub := "EXISTS (SELECT 1 FROM penalties p WHERE p.employee_id = employees.id)"
		if !*q.HasPenalties {
			sub = "NOT " + sub
		}
		db = db.Where(sub)
	}
	if q.HasBonuses != nil {
		sub := "EXISTS (SELECT 1 FROM bonuses b WHERE b.employee_id = employees.id)"
		if !*q.HasBonuses {
			sub = "NOT " + sub
		}
		db = db.Where(sub)
	}
	if q.EfficiencyGrade != "" {
		db = db.Where(
			"EXISTS (SELECT 1 FROM efficiency_reports er WHERE er.employee_id = employees.id AND er.grade = ?)",
			q.EfficiencyGrade,
		)
	}

	var emps []Employee
	err := db.Preload(clause.Associations).
		Order("created_at DESC").
		Find(&emps).Error
	return emps, err
}

func (r *repository) DistinctAdministrations(ctx context.Context) ([]string, error) {
	var values []string
	err := r.db.WithContext(ctx).
		Model(&Employee{}).
		Distinct("administration").
		Order("administration").
		Pluck("administration", &values).Error
	return values, err
}

func (r *repository) ReplaceRelationships(ctx context.Context, employeeID uuid.UUID, rows []Relationship) error {
	if err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Delete(&Relationship{}).Error; err != nil {
		return err
	}
	if len(rows) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&rows).Error
}

func (r *repository) ReplacePenalties(ctx context.Context, employeeID uuid.UUID, rows []Penalty) error {
	if err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Delete(&Penalty{}).Error; err != nil {
		return err
	}
	if len(rows) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&rows).Error
}

func (r *repository) ReplaceBonuses(ctx context.Context, employeeID uuid.UUID, rows []Bonus) error {
	if err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Delete(&Bonus{}).Error; err != nil {
		return err
	}
	if len(rows) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&rows).Error
}

func (r *repository) ReplaceEfficiencyReports(ctx context.Context, employeeID uuid.UUID, rows []EfficiencyReport) error {
	if err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Delete(&EfficiencyReport{}).Error; err != nil {
		return err
	}
	if len(rows) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&rows).Error
}

func (r *repository) CreatePenalty(ctx context.Context, row *Penalty) error {
	return r.db.WithContext(ctx).Create(row).Error
}

func (r *repository) FindPenaltyByID(ctx context.Context, id string) (*Penalty, error) {
	var row Penalty
	err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *repository) SavePenalty(ctx context.Context, row *Penalty) error {
	return r.db.WithContext(ctx).Save(row).Error
}

func (r *repository) DeletePenalty(ctx context.Context, id string) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&Penalty{}, "id = ?", id)
	return res.RowsAffected, res.Error
}

func (r *repository) CreateBonus(ctx context.Context, row *Bonus) error {
	return r.db.WithContext(ctx).Create(row).Error
}

func (r *repository) FindBonusByID(ctx context.Context, id string) (*Bonus, error) {
	var row Bonus
	err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *repository) SaveBonus(ctx context.Context, row *Bonus) error {
	return r.db.WithContext(ctx).Save(row).Error
}

func (r *repository) DeleteBonus(ctx context.Context, id string) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&Bonus{}, "id = ?", id)
	return res.RowsAffected, res.Error
}

func (r *repository) CreateEfficiencyReport(ctx context.Context, row *EfficiencyReport) error {
	return r.db.WithContext(ctx).Create(row).Error
}

func (r *repository) FindEfficiencyReportByID(ctx context.Context, id string) (*EfficiencyReport, error) {
	var row EfficiencyReport
	err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *repository) SaveEfficiencyReport(ctx context.Context, row *EfficiencyReport) error {
	return r.db.WithContext(ctx).Save(row).Error
}

func (r *repository) DeleteEfficiencyReport(ctx context.Context, id string) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&EfficiencyReport{}, "id = ?", id)
	return res.RowsAffected, res.Error
}
