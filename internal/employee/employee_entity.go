package employee

import (
	"time"

	"github.com/google/uuid"
)

// Employee is the aggregate root. The four child collections are owned by the
// employee row and removed with it (ON DELETE CASCADE).
type Employee struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name              string    `gorm:"type:varchar(255);not null"`
	NickName          string    `gorm:"type:varchar(255);not null"`
	Profession        string    `gorm:"type:varchar(255);not null"`
	BirthDate         time.Time `gorm:"not null"`
	NationalID        string    `gorm:"type:varchar(32);not null;uniqueIndex:uq_employee_national_id"`
	MaritalStatus     string    `gorm:"type:varchar(16);not null"`
	ResidenceLocation string    `gorm:"not null"`
	HiringDate        time.Time `gorm:"not null"`
	HiringType        string    `gorm:"type:varchar(16);not null"`
	Email             *string   `gorm:"type:varchar(255)"`
	Administration    string    `gorm:"type:varchar(255);not null;index"`
	ActualWork        string    `gorm:"not null"`
	PhoneNumber       string    `gorm:"type:varchar(32);not null"`
	Notes             string
	JobPosition       *string `gorm:"type:varchar(32)"`
	EducationalDegree *string `gorm:"type:varchar(32);index"`
	FunctionalDegree  *string `gorm:"type:varchar(32)"`
	PersonalImageURL  *string
	IDFrontImageURL   *string
	IDBackImageURL    *string
	CreatedAt         time.Time
	UpdatedAt         time.Time

	Relationships     []Relationship     `gorm:"constraint:OnDelete:CASCADE"`
	Penalties         []Penalty          `gorm:"constraint:OnDelete:CASCADE"`
	Bonuses           []Bonus            `gorm:"constraint:OnDelete:CASCADE"`
	EfficiencyReports []EfficiencyReport `gorm:"constraint:OnDelete:CASCADE"`
}

// Relationship is one family member of an employee. Rows have no independent
// lifecycle through the aggregate path: a non-empty set on update replaces
// the previous set wholesale.
type Relationship struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeID        uuid.UUID `gorm:"type:uuid;not null;index"`
	RelationshipType  string    `gorm:"type:varchar(16);not null"`
	Name              string    `gorm:"type:varchar(255);not null"`
	NationalID        *string   `gorm:"type:varchar(32)"`
	BirthDate         *time.Time
	BirthPlace        *string
	Profession        *string
	SpouseName        *string
	ResidenceLocation *string
	Notes             *string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

type Penalty struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Date        time.Time `gorm:"not null"`
	Type        string    `gorm:"type:varchar(16);not null"`
	Description string    `gorm:"not null"`
	Attachments *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type Bonus struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeID uuid.UUID `gorm:"type:uuid;not null;index"`
	Date       time.Time `gorm:"not null"`
	Reason     string    `gorm:"not null"`
	// Amount is an opaque display string, not a currency value.
	Amount      string
	Attachments *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type EfficiencyReport struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Year        int       `gorm:"not null"`
	Grade       string    `gorm:"type:varchar(16);not null"`
	Description string
	Attachments *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
