package employee

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestParseInputDate(t *testing.T) {
	got, err := parseInputDate(" 15/06/1985 ")
	assert.NoError(t, err)
	assert.Equal(t, time.Date(1985, 6, 15, 0, 0, 0, 0, time.UTC), got)

	_, err = parseInputDate("1985-06-15")
	assert.Error(t, err)

	_, err = parseInputDate("31/02/2020")
	assert.Error(t, err)
}

func TestParseChildDate(t *testing.T) {
	got, err := parseChildDate("2023-05-10")
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2023, 5, 10, 0, 0, 0, 0, time.UTC), got)

	got, err = parseChildDate("2023-05-10T08:30:00Z")
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2023, 5, 10, 8, 30, 0, 0, time.UTC), got)

	_, err = parseChildDate("10/05/2023")
	assert.Error(t, err)
}

func TestEmployeeRequestToEntity(t *testing.T) {
	id := uuid.New()

	t.Run("optional scalars map empty string to nil", func(t *testing.T) {
		req := EmployeeRequest{
			Name:              "Ahmed",
			BirthDate:         "15/06/1985",
			HiringDate:        "01/09/2010",
			MaritalStatus:     "single",
			HiringType:        "temporary",
			Email:             "",
			JobPosition:       "",
			EducationalDegree: "BACHELORS",
		}

		emp, fields := req.toEntity(id)

		assert.Empty(t, fields)
		assert.Nil(t, emp.Email)
		assert.Nil(t, emp.JobPosition)
		if assert.NotNil(t, emp.EducationalDegree) {
			assert.Equal(t, "BACHELORS", *emp.EducationalDegree)
		}
	})

	t.Run("violations accumulate", func(t *testing.T) {
		req := EmployeeRequest{
			BirthDate:     "not-a-date",
			HiringDate:    "also bad",
			MaritalStatus: "complicated",
			HiringType:    "gig",
			JobPosition:   "CEO",
		}

		_, fields := req.toEntity(id)

		assert.Len(t, fields, 5)
	})
}

func TestChildEntities(t *testing.T) {
	employeeID := uuid.New()

	t.Run("rows carry parent id and fresh ids", func(t *testing.T) {
		req := EmployeeRequest{
			Relationships: []RelationshipRequest{
				{RelationshipType: "spouse", Name: "Mona", BirthDate: "01/01/1990"},
			},
			Bonuses: []BonusRequest{
				{Date: "2024-01-15", Reason: "Annual", Amount: "500"},
			},
		}

		relationships, penalties, bonuses, reports, fields := req.childEntities(employeeID)

		assert.Empty(t, fields)
		assert.Empty(t, penalties)
		assert.Empty(t, reports)
		assert.Len(t, relationships, 1)
		assert.Len(t, bonuses, 1)
		assert.Equal(t, employeeID, relationships[0].EmployeeID)
		assert.Equal(t, employeeID, bonuses[0].EmployeeID)
		assert.NotEqual(t, uuid.Nil, relationships[0].ID)
		assert.NotNil(t, relationships[0].BirthDate)
	})

	t.Run("errors are indexed by row", func(t *testing.T) {
		req := EmployeeRequest{
			Relationships: []RelationshipRequest{
				{RelationshipType: "spouse", Name: "ok"},
				{RelationshipType: "cousin", Name: "bad", BirthDate: "1990-01-01"},
			},
			Penalties: []PenaltyRequest{
				{Date: "bad-date", Type: "WARNING", Description: "x"},
			},
		}

		_, _, _, _, fields := req.childEntities(employeeID)

		paths := make([]string, 0, len(fields))
		for _, f := range fields {
			paths = append(paths, f.Field)
		}
		assert.Contains(t, paths, "relationships[1].relationshipType")
		assert.Contains(t, paths, "relationships[1].birthDate")
		assert.Contains(t, paths, "penalties[0].date")
		assert.Len(t, fields, 3)
	})
}

func TestMapToResponse(t *testing.T) {
	email := "a@example.com"
	emp := Employee{
		ID:            uuid.New(),
		Name:          "Ahmed",
		BirthDate:     time.Date(1985, 6, 15, 0, 0, 0, 0, time.UTC),
		HiringDate:    time.Date(2010, 9, 1, 0, 0, 0, 0, time.UTC),
		MaritalStatus: "married",
		Email:         &email,
	}

	resp := mapToResponse(emp)

	assert.Equal(t, emp.ID.String(), resp.ID)
	assert.Equal(t, "1985-06-15T00:00:00Z", resp.BirthDate)
	assert.Equal(t, "a@example.com", resp.Email)
	// Child collections serialize as [] rather than null.
	assert.NotNil(t, resp.Relationships)
	assert.NotNil(t, resp.Penalties)
	assert.NotNil(t, resp.Bonuses)
	assert.NotNil(t, resp.EfficiencyReports)
}
