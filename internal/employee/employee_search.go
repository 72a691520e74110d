package employee

import "strings"

// normalizeFilter trims a text filter and collapses internal whitespace runs
// to a single space, so copy-pasted input does not cause spurious non-matches.
func normalizeFilter(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// parseYesNo reads a tri-state boolean filter: nil means the filter is absent.
func parseYesNo(v string) *bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "yes", "true", "1":
		b := true
		return &b
	case "no", "false", "0":
		b := false
		return &b
	}
	return nil
}

// buildSearchQuery translates the request criteria into the storage-facing
// query. The second return is false when a supplied Arabic label has no
// internal code: the resolver short-circuits to zero results instead of
// erroring, because unmapped labels are a data-entry condition, not a fault.
func buildSearchQuery(req SearchRequest) (SearchQuery, bool) {
	q := SearchQuery{
		Name:           normalizeFilter(req.Name),
		Administration: normalizeFilter(req.Administration),
		HasPenalties:   parseYesNo(req.HasPenalties),
		HasBonuses:     parseYesNo(req.HasBonuses),
	}

	if label := normalizeFilter(req.EducationalDegree); label != "" {
		code, ok := mapLabel(EducationalDegreeLabels, label)
		if !ok {
			return SearchQuery{}, false
		}
		q.EducationalDegree = code
	}

	if label := normalizeFilter(req.FunctionalDegree); label != "" {
		code, ok := mapLabel(FunctionalDegreeLabels, label)
		if !ok {
			return SearchQuery{}, false
		}
		q.FunctionalDegree = code
	}

	if label := normalizeFilter(req.EfficiencyGrade); label != "" {
		code, ok := mapLabel(EfficiencyGradeLabels, label)
		if !ok {
			return SearchQuery{}, false
		}
		q.EfficiencyGrade = code
	}

	return q, true
}
