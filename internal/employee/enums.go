package employee

import "fmt"

// Internal enum codes. The UI speaks Arabic labels; storage and the API speak
// these codes. Label tables below must stay total in both directions;
// VerifyLabelMappings is called at startup and panics on a hole.

var MaritalStatuses = []string{"single", "married", "divorced", "widowed"}

var HiringTypes = []string{"full-time", "temporary", "secondment", "mandate"}

var RelationshipTypes = []string{"father", "mother", "spouse", "son", "daughter", "brother", "sister"}

var JobPositions = []string{
	"ENGINEER", "ACCOUNTANT", "ADMINISTRATIVE", "EXECUTIVE_SUPERVISOR", "WRITER", "WORKER",
}

var EducationalDegrees = []string{
	"DOCTORATE", "MASTERS", "BACHELORS", "GENERAL_SECONDARY", "AZHARI_SECONDARY",
	"ABOVE_AVERAGE", "AVERAGE", "PREPARATORY", "PRIMARY", "LITERACY", "NONE",
}

var FunctionalDegrees = []string{
	"FIRST_DEPUTY_MINISTER", "DEPUTY_MINISTER", "GENERAL_MANAGER",
	"DEPARTMENT_MANAGER", "DEPARTMENT_HEAD",
	"FIRST_A", "FIRST_B",
	"SECOND_A", "SECOND_B",
	"THIRD_A", "THIRD_B", "THIRD_C",
	"FOURTH_A", "FOURTH_B", "FOURTH_C",
	"FIFTH_A", "FIFTH_B", "FIFTH_C",
	"SIXTH_A", "SIXTH_B", "SIXTH_C",
}

var PenaltyTypes = []string{"WARNING", "DEDUCTION", "SUSPENSION", "NOTE", "TERMINATION"}

var EfficiencyGrades = []string{"EXCELLENT", "COMPETENT", "AVERAGE", "BELOW"}

var EducationalDegreeLabels = map[string]string{
	"دكتوراة":        "DOCTORATE",
	"ماجستير":        "MASTERS",
	"بكالوريوس":      "BACHELORS",
	"ثانوية عامة":    "GENERAL_SECONDARY",
	"ثانوية أزهرية":  "AZHARI_SECONDARY",
	"مؤهل فوق متوسط": "ABOVE_AVERAGE",
	"مؤهل متوسط":     "AVERAGE",
	"اعدادية":        "PREPARATORY",
	"ابتدائية":       "PRIMARY",
	"محو أمية":       "LITERACY",
	"بدون":           "NONE",
}

var FunctionalDegreeLabels = map[string]string{
	"وكيل أول وزارة": "FIRST_DEPUTY_MINISTER",
	"وكيل وزارة":     "DEPUTY_MINISTER",
	"مدير عام":       "GENERAL_MANAGER",
	"مدير إدارة":     "DEPARTMENT_MANAGER",
	"رئيس قسم":       "DEPARTMENT_HEAD",
	"أولى أ":         "FIRST_A",
	"أولى ب":         "FIRST_B",
	"ثانية أ":        "SECOND_A",
	"ثانية ب":        "SECOND_B",
	"ثالثة أ":        "THIRD_A",
	"ثالثة ب":        "THIRD_B",
	"ثالثة ج":        "THIRD_C",
	"رابعة أ":        "FOURTH_A",
	"رابعة ب":        "FOURTH_B",
	"رابعة ج":        "FOURTH_C",
	"خامسة أ":        "FIFTH_A",
	"خامسة ب":        "FIFTH_B",
	"خامسة ج":        "FIFTH_C",
	"سادسة أ":        "SIXTH_A",
	"سادسة ب":        "SIXTH_B",
	"سادسة ج":        "SIXTH_C",
}

var EfficiencyGradeLabels = map[string]string{
	"ممتاز": "EXCELLENT",
	"كفء":   "COMPETENT",
	"متوسط": "AVERAGE",
	"دون":   "BELOW",
}

var PenaltyTypeLabels = map[string]string{
	"إنذار":   "WARNING",
	"خصم":     "DEDUCTION",
	"إيقاف":   "SUSPENSION",
	"لفت نظر": "NOTE",
	"فصل":     "TERMINATION",
}

var MaritalStatusLabels = map[string]string{
	"أعزب":  "single",
	"متزوج": "married",
	"مطلق":  "divorced",
	"أرمل":  "widowed",
}

var HiringTypeLabels = map[string]string{
	"دائم": "full-time",
	"مؤقت": "temporary",
	"معار": "secondment",
	"ندب":  "mandate",
}

var JobPositionLabels = map[string]string{
	"مهندس":     "ENGINEER",
	"محاسب":     "ACCOUNTANT",
	"إداري":     "ADMINISTRATIVE",
	"مشرف تنفيذ": "EXECUTIVE_SUPERVISOR",
	"كاتب":      "WRITER",
	"عامل":      "WORKER",
}

var RelationshipTypeLabels = map[string]string{
	"أب":      "father",
	"أم":      "mother",
	"زوج/زوجة": "spouse",
	"ابن":     "son",
	"ابنة":    "daughter",
	"أخ":      "brother",
	"أخت":     "sister",
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

// mapLabel resolves an Arabic display label to its internal code. The second
// return is false for an unmapped label; search treats that as "no match",
// never as an error.
func mapLabel(labels map[string]string, label string) (string, bool) {
	code, ok := labels[label]
	return code, ok
}

// VerifyLabelMappings checks that every code has a label and every label maps
// to a known code. Called once at startup.
func VerifyLabelMappings() error {
	checks := []struct {
		name   string
		codes  []string
		labels map[string]string
	}{
		{"marital status", MaritalStatuses, MaritalStatusLabels},
		{"hiring type", HiringTypes, HiringTypeLabels},
		{"relationship type", RelationshipTypes, RelationshipTypeLabels},
		{"job position", JobPositions, JobPositionLabels},
		{"educational degree", EducationalDegrees, EducationalDegreeLabels},
		{"functional degree", FunctionalDegrees, FunctionalDegreeLabels},
		{"penalty type", PenaltyTypes, PenaltyTypeLabels},
		{"efficiency grade", EfficiencyGrades, EfficiencyGradeLabels},
	}

	for _, c := range checks {
		if len(c.labels) != len(c.codes) {
			return fmt.Errorf("%s: %d labels for %d codes", c.name, len(c.labels), len(c.codes))
		}
		seen := make(map[string]bool, len(c.codes))
		for label, code := range c.labels {
			if !contains(c.codes, code) {
				return fmt.Errorf("%s: label %q maps to unknown code %q", c.name, label, code)
			}
			if seen[code] {
				return fmt.Errorf("%s: code %q has more than one label", c.name, code)
			}
			seen[code] = true
		}
	}
	return nil
}

// MustVerifyLabelMappings panics on an incomplete label table. A hole here is
// a programming error, not a runtime condition.
func MustVerifyLabelMappings() {
	if err := VerifyLabelMappings(); err != nil {
		panic(err)
	}
}
