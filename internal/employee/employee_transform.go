package employee

import (
	"fmt"
	"strings"
	"time"

	"github.com/mohamedibrahim3/employees-manger/internal/shared/apperror"

	"github.com/google/uuid"
)

// Input dates are day-first display strings; storage is always an absolute
// timestamp so values survive a round-trip without timezone drift.
const inputDateLayout = "02/01/2006"

// Standalone child payloads carry ISO dates (the modals convert before
// submitting), so those accept date-only or full RFC3339.
const childDateLayout = "2006-01-02"

func parseInputDate(v string) (time.Time, error) {
	t, err := time.Parse(inputDateLayout, strings.TrimSpace(v))
	if err != nil {
		return time.Time{}, fmt.Errorf("expected DD/MM/YYYY")
	}
	return t.UTC(), nil
}

func parseChildDate(v string) (time.Time, error) {
	v = strings.TrimSpace(v)
	if t, err := time.Parse(childDateLayout, v); err == nil {
		return t.UTC(), nil
	}
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return t.UTC(), nil
	}
	return time.Time{}, fmt.Errorf("expected YYYY-MM-DD")
}

// optString maps the empty string to NULL. Empty string is never persisted
// for an optional scalar.
func optString(v string) *string {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	return &v
}

func strValue(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

// toEntity validates and transforms the input-facing shape into the
// storage-facing one. All violations from the pass are collected and returned
// together rather than short-circuiting on the first one.
func (req EmployeeRequest) toEntity(id uuid.UUID) (*Employee, []apperror.FieldError) {
	var fields []apperror.FieldError
	addErr := func(field, msg string) {
		fields = append(fields, apperror.FieldError{Field: field, Message: msg})
	}

	birthDate, err := parseInputDate(req.BirthDate)
	if err != nil {
		addErr("birthDate", "invalid date: "+err.Error())
	}
	hiringDate, err := parseInputDate(req.HiringDate)
	if err != nil {
		addErr("hiringDate", "invalid date: "+err.Error())
	}
	if !contains(MaritalStatuses, req.MaritalStatus) {
		addErr("maritalStatus", "unknown marital status")
	}
	if !contains(HiringTypes, req.HiringType) {
		addErr("hiringType", "unknown hiring type")
	}
	if req.JobPosition != "" && !contains(JobPositions, req.JobPosition) {
		addErr("jobPosition", "unknown job position")
	}
	if req.EducationalDegree != "" && !contains(EducationalDegrees, req.EducationalDegree) {
		addErr("educationalDegree", "unknown educational degree")
	}
	if req.FunctionalDegree != "" && !contains(FunctionalDegrees, req.FunctionalDegree) {
		addErr("functionalDegree", "unknown functional degree")
	}

	emp := &Employee{
		ID:                id,
		Name:              req.Name,
		NickName:          req.NickName,
		Profession:        req.Profession,
		BirthDate:         birthDate,
		NationalID:        req.NationalID,
		MaritalStatus:     req.MaritalStatus,
		ResidenceLocation: req.ResidenceLocation,
		HiringDate:        hiringDate,
		HiringType:        req.HiringType,
		Email:             optString(req.Email),
		Administration:    req.Administration,
		ActualWork:        req.ActualWork,
		PhoneNumber:       req.PhoneNumber,
		JobPosition:       optString(req.JobPosition),
		EducationalDegree: optString(req.EducationalDegree),
		FunctionalDegree:  optString(req.FunctionalDegree),
		PersonalImageURL:  optString(req.PersonalImageURL),
		IDFrontImageURL:   optString(req.IDFrontImageURL),
		IDBackImageURL:    optString(req.IDBackImageURL),
	}

	return emp, fields
}

func (req EmployeeRequest) childEntities(employeeID uuid.UUID) (
	relationships []Relationship,
	penalties []Penalty,
	bonuses []Bonus,
	reports []EfficiencyReport,
	fields []apperror.FieldError,
) {
	addErr := func(field, msg string) {
		fields = append(fields, apperror.FieldError{Field: field, Message: msg})
	}

	for i, r := range req.Relationships {
		if !contains(RelationshipTypes, r.RelationshipType) {
			addErr(fmt.Sprintf("relationships[%d].relationshipType", i), "unknown relationship type")
		}
		var birthDate *time.Time
		if strings.TrimSpace(r.BirthDate) != "" {
			t, err := parseInputDate(r.BirthDate)
			if err != nil {
				addErr(fmt.Sprintf("relationships[%d].birthDate", i), "invalid date: "+err.Error())
			} else {
				birthDate = &t
			}
		}
		relationships = append(relationships, Relationship{
			ID:                uuid.New(),
			EmployeeID:        employeeID,
			RelationshipType:  r.RelationshipType,
			Name:              r.Name,
			NationalID:        optString(r.NationalID),
			BirthDate:         birthDate,
			BirthPlace:        optString(r.BirthPlace),
			Profession:        optString(r.Profession),
			SpouseName:        optString(r.SpouseName),
			ResidenceLocation: optString(r.ResidenceLocation),
			Notes:             optString(r.Notes),
		})
	}

	for i, p := range req.Penalties {
		row, rowErrs := p.toEntity(employeeID)
		for _, fe := range rowErrs {
			addErr(fmt.Sprintf("penalties[%d].%s", i, fe.Field), fe.Message)
		}
		penalties = append(penalties, *row)
	}

	for i, b := range req.Bonuses {
		row, rowErrs := b.toEntity(employeeID)
		for _, fe := range rowErrs {
			addErr(fmt.Sprintf("bonuses[%d].%s", i, fe.Field), fe.Message)
		}
		bonuses = append(bonuses, *row)
	}

	for i, r := range req.EfficiencyReports {
		row, rowErrs := r.toEntity(employeeID)
		for _, fe := range rowErrs {
			addErr(fmt.Sprintf("efficiencyReports[%d].%s", i, fe.Field), fe.Message)
		}
		reports = append(reports, *row)
	}

	return relationships, penalties, bonuses, reports, fields
}

func (req PenaltyRequest) toEntity(employeeID uuid.UUID) (*Penalty, []apperror.FieldError) {
	var fields []apperror.FieldError

	date, err := parseChildDate(req.Date)
	if err != nil {
		fields = append(fields, apperror.FieldError{Field: "date", Message: "invalid date: " + err.Error()})
	}
	if !contains(PenaltyTypes, req.Type) {
		fields = append(fields, apperror.FieldError{Field: "type", Message: "unknown penalty type"})
	}

	return &Penalty{
		ID:          uuid.New(),
		EmployeeID:  employeeID,
		Date:        date,
		Type:        req.Type,
		Description: req.Description,
		Attachments: optString(req.Attachments),
	}, fields
}

func (req BonusRequest) toEntity(employeeID uuid.UUID) (*Bonus, []apperror.FieldError) {
	var fields []apperror.FieldError

	date, err := parseChildDate(req.Date)
	if err != nil {
		fields = append(fields, apperror.FieldError{Field: "date", Message: "invalid date: " + err.Error()})
	}

	return &Bonus{
		ID:          uuid.New(),
		EmployeeID:  employeeID,
		Date:        date,
		Reason:      req.Reason,
		Amount:      req.Amount,
		Attachments: optString(req.Attachments),
	}, fields
}

func (req EfficiencyReportRequest) toEntity(employeeID uuid.UUID) (*EfficiencyReport, []apperror.FieldError) {
	var fields []apperror.FieldError

	if !contains(EfficiencyGrades, req.Grade) {
		fields = append(fields, apperror.FieldError{Field: "grade", Message: "unknown efficiency grade"})
	}

	return &EfficiencyReport{
		ID:          uuid.New(),
		EmployeeID:  employeeID,
		Year:        req.Year,
		Grade:       req.Grade,
		Description: req.Description,
		Attachments: optString(req.Attachments),
	}, fields
}

func mapToResponse(emp Employee) EmployeeResponse {
	resp := EmployeeResponse{
		ID:                emp.ID.String(),
		Name:              emp.Name,
		NickName:          emp.NickName,
		Profession:        emp.Profession,
		BirthDate:         emp.BirthDate.UTC().Format(time.RFC3339),
		NationalID:        emp.NationalID,
		MaritalStatus:     emp.MaritalStatus,
		ResidenceLocation: emp.ResidenceLocation,
		HiringDate:        emp.HiringDate.UTC().Format(time.RFC3339),
		HiringType:        emp.HiringType,
		Email:             strValue(emp.Email),
		Administration:    emp.Administration,
		ActualWork:        emp.ActualWork,
		PhoneNumber:       emp.PhoneNumber,
		JobPosition:       strValue(emp.JobPosition),
		EducationalDegree: strValue(emp.EducationalDegree),
		FunctionalDegree:  strValue(emp.FunctionalDegree),
		PersonalImageURL:  strValue(emp.PersonalImageURL),
		IDFrontImageURL:   strValue(emp.IDFrontImageURL),
		IDBackImageURL:    strValue(emp.IDBackImageURL),
		CreatedAt:         emp.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:         emp.UpdatedAt.UTC().Format(time.RFC3339),
		Relationships:     make([]RelationshipResponse, 0, len(emp.Relationships)),
		Penalties:         make([]PenaltyResponse, 0, len(emp.Penalties)),
		Bonuses:           make([]BonusResponse, 0, len(emp.Bonuses)),
		EfficiencyReports: make([]EfficiencyReportResponse, 0, len(emp.EfficiencyReports)),
	}

	for _, r := range emp.Relationships {
		rr := RelationshipResponse{
			ID:                r.ID.String(),
			RelationshipType:  r.RelationshipType,
			Name:              r.Name,
			NationalID:        strValue(r.NationalID),
			BirthPlace:        strValue(r.BirthPlace),
			Profession:        strValue(r.Profession),
			SpouseName:        strValue(r.SpouseName),
			ResidenceLocation: strValue(r.ResidenceLocation),
			Notes:             strValue(r.Notes),
		}
		if r.BirthDate != nil {
			rr.BirthDate = r.BirthDate.UTC().Format(time.RFC3339)
		}
		resp.Relationships = append(resp.Relationships, rr)
	}
	for _, p := range emp.Penalties {
		resp.Penalties = append(resp.Penalties, mapPenaltyToResponse(p))
	}
	for _, b := range emp.Bonuses {
		resp.Bonuses = append(resp.Bonuses, mapBonusToResponse(b))
	}
	for _, r := range emp.EfficiencyReports {
		resp.EfficiencyReports = append(resp.EfficiencyReports, mapReportToResponse(r))
	}

	return resp
}

func mapToListResponse(emps []Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, len(emps))
	for i, e := range emps {
		res[i] = mapToResponse(e)
	}
	return res
}

func mapPenaltyToResponse(p Penalty) PenaltyResponse {
	return PenaltyResponse{
		ID:          p.ID.String(),
		EmployeeID:  p.EmployeeID.String(),
		Date:        p.Date.UTC().Format(time.RFC3339),
		Type:        p.Type,
		Description: p.Description,
		Attachments: strValue(p.Attachments),
	}
}

func mapBonusToResponse(b Bonus) BonusResponse {
	return BonusResponse{
		ID:          b.ID.String(),
		EmployeeID:  b.EmployeeID.String(),
		Date:        b.Date.UTC().Format(time.RFC3339),
		Reason:      b.Reason,
		Amount:      b.Amount,
		Attachments: strValue(b.Attachments),
	}
}

func mapReportToResponse(r EfficiencyReport) EfficiencyReportResponse {
	return EfficiencyReportResponse{
		ID:          r.ID.String(),
		EmployeeID:  r.EmployeeID.String(),
		Year:        r.Year,
		Grade:       r.Grade,
		Description: r.Description,
		Attachments: strValue(r.Attachments),
	}
}
