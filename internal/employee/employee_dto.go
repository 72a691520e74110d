package employee

// EmployeeRequest is the input-facing aggregate shape. Date fields are
// display-formatted DD/MM/YYYY strings; enum fields carry internal codes.
// The same shape serves create and update (update is a full scalar replace).
// Security notes are absent on purpose: that column is only reachable through
// the restricted notes surface.
type EmployeeRequest struct {
	Name              string `json:"name" binding:"required,min=2"`
	NickName          string `json:"nickName" binding:"required"`
	Profession        string `json:"profession" binding:"required"`
	BirthDate         string `json:"birthDate" binding:"required"`
	NationalID        string `json:"nationalId" binding:"required"`
	MaritalStatus     string `json:"maritalStatus" binding:"required"`
	ResidenceLocation string `json:"residenceLocation" binding:"required"`
	HiringDate        string `json:"hiringDate" binding:"required"`
	HiringType        string `json:"hiringType" binding:"required"`
	Email             string `json:"email" binding:"omitempty,email"`
	Administration    string `json:"administration" binding:"required"`
	ActualWork        string `json:"actualWork" binding:"required"`
	PhoneNumber       string `json:"phoneNumber" binding:"required"`
	JobPosition       string `json:"jobPosition"`
	EducationalDegree string `json:"educationalDegree"`
	FunctionalDegree  string `json:"functionalDegree"`
	PersonalImageURL  string `json:"personalImageUrl"`
	IDFrontImageURL   string `json:"idFrontImageUrl"`
	IDBackImageURL    string `json:"idBackImageUrl"`

	Relationships     []RelationshipRequest     `json:"relationships"`
	Penalties         []PenaltyRequest          `json:"penalties"`
	Bonuses           []BonusRequest            `json:"bonuses"`
	EfficiencyReports []EfficiencyReportRequest `json:"efficiencyReports"`
}

type RelationshipRequest struct {
	RelationshipType  string `json:"relationshipType" binding:"required"`
	Name              string `json:"name" binding:"required"`
	NationalID        string `json:"nationalId"`
	BirthDate         string `json:"birthDate"`
	BirthPlace        string `json:"birthPlace"`
	Profession        string `json:"profession"`
	SpouseName        string `json:"spouseName"`
	ResidenceLocation string `json:"residenceLocation"`
	Notes             string `json:"notes"`
}

type PenaltyRequest struct {
	Date        string `json:"date" binding:"required"`
	Type        string `json:"type" binding:"required"`
	Description string `json:"description" binding:"required"`
	Attachments string `json:"attachments"`
}

type BonusRequest struct {
	Date        string `json:"date" binding:"required"`
	Reason      string `json:"reason" binding:"required"`
	Amount      string `json:"amount"`
	Attachments string `json:"attachments"`
}

type EfficiencyReportRequest struct {
	Year        int    `json:"year" binding:"required,min=1900,max=2999"`
	Grade       string `json:"grade" binding:"required"`
	Description string `json:"description"`
	Attachments string `json:"attachments"`
}

type UpdateNotesRequest struct {
	Notes string `json:"notes"`
}

// SearchRequest carries the optional, independently-specified filter criteria.
// Degree and grade filters arrive as Arabic display labels; text filters are
// normalized before matching.
type SearchRequest struct {
	Name              string `form:"name" json:"name"`
	Administration    string `form:"administration" json:"administration"`
	EducationalDegree string `form:"educationalDegree" json:"educationalDegree"`
	FunctionalDegree  string `form:"functionalDegree" json:"functionalDegree"`
	HasPenalties      string `form:"hasPenalties" json:"hasPenalties"`
	HasBonuses        string `form:"hasBonuses" json:"hasBonuses"`
	EfficiencyGrade   string `form:"hasEfficiencyReports" json:"hasEfficiencyReports"`
}

type EmployeeResponse struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	NickName          string `json:"nickName"`
	Profession        string `json:"profession"`
	BirthDate         string `json:"birthDate"`
	NationalID        string `json:"nationalId"`
	MaritalStatus     string `json:"maritalStatus"`
	ResidenceLocation string `json:"residenceLocation"`
	HiringDate        string `json:"hiringDate"`
	HiringType        string `json:"hiringType"`
	Email             string `json:"email,omitempty"`
	Administration    string `json:"administration"`
	ActualWork        string `json:"actualWork"`
	PhoneNumber       string `json:"phoneNumber"`
	JobPosition       string `json:"jobPosition,omitempty"`
	EducationalDegree string `json:"educationalDegree,omitempty"`
	FunctionalDegree  string `json:"functionalDegree,omitempty"`
	PersonalImageURL  string `json:"personalImageUrl,omitempty"`
	IDFrontImageURL   string `json:"idFrontImageUrl,omitempty"`
	IDBackImageURL    string `json:"idBackImageUrl,omitempty"`
	CreatedAt         string `json:"createdAt"`
	UpdatedAt         string `json:"updatedAt"`

	Relationships     []RelationshipResponse     `json:"relationships"`
	Penalties         []PenaltyResponse          `json:"penalties"`
	Bonuses           []BonusResponse            `json:"bonuses"`
	EfficiencyReports []EfficiencyReportResponse `json:"efficiencyReports"`
}

type RelationshipResponse struct {
	ID                string `json:"id"`
	RelationshipType  string `json:"relationshipType"`
	Name              string `json:"name"`
	NationalID        string `json:"nationalId,omitempty"`
	BirthDate         string `json:"birthDate,omitempty"`
	BirthPlace        string `json:"birthPlace,omitempty"`
	Profession        string `json:"profession,omitempty"`
	SpouseName        string `json:"spouseName,omitempty"`
	ResidenceLocation string `json:"residenceLocation,omitempty"`
	Notes             string `json:"notes,omitempty"`
}

type PenaltyResponse struct {
	ID          string `json:"id"`
	EmployeeID  string `json:"employeeId"`
	Date        string `json:"date"`
	Type        string `json:"type"`
	Description string `json:"description"`
	Attachments string `json:"attachments,omitempty"`
}

type BonusResponse struct {
	ID          string `json:"id"`
	EmployeeID  string `json:"employeeId"`
	Date        string `json:"date"`
	Reason      string `json:"reason"`
	Amount      string `json:"amount"`
	Attachments string `json:"attachments,omitempty"`
}

type EfficiencyReportResponse struct {
	ID          string `json:"id"`
	EmployeeID  string `json:"employeeId"`
	Year        int    `json:"year"`
	Grade       string `json:"grade"`
	Description string `json:"description,omitempty"`
	Attachments string `json:"attachments,omitempty"`
}
