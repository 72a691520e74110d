package employee

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeFilter(t *testing.T) {
	assert.Equal(t, "", normalizeFilter("   "))
	assert.Equal(t, "الإدارة الهندسية", normalizeFilter("  الإدارة   الهندسية "))
	assert.Equal(t, "a b c", normalizeFilter("a\t b\n  c"))
}

func TestParseYesNo(t *testing.T) {
	for _, v := range []string{"yes", "TRUE", "1", " Yes "} {
		b := parseYesNo(v)
		if assert.NotNil(t, b, v) {
			assert.True(t, *b, v)
		}
	}
	for _, v := range []string{"no", "False", "0"} {
		b := parseYesNo(v)
		if assert.NotNil(t, b, v) {
			assert.False(t, *b, v)
		}
	}
	assert.Nil(t, parseYesNo(""))
	assert.Nil(t, parseYesNo("maybe"))
}

func TestBuildSearchQuery(t *testing.T) {
	t.Run("labels map to internal codes", func(t *testing.T) {
		q, ok := buildSearchQuery(SearchRequest{
			Name:              " Ahmed  Ali ",
			EducationalDegree: "بكالوريوس",
			FunctionalDegree:  "مدير عام",
			EfficiencyGrade:   "ممتاز",
			HasPenalties:      "yes",
		})

		assert.True(t, ok)
		assert.Equal(t, "Ahmed Ali", q.Name)
		assert.Equal(t, "BACHELORS", q.EducationalDegree)
		assert.Equal(t, "GENERAL_MANAGER", q.FunctionalDegree)
		assert.Equal(t, "EXCELLENT", q.EfficiencyGrade)
		if assert.NotNil(t, q.HasPenalties) {
			assert.True(t, *q.HasPenalties)
		}
		assert.Nil(t, q.HasBonuses)
	})

	t.Run("labels are normalized before lookup", func(t *testing.T) {
		q, ok := buildSearchQuery(SearchRequest{EducationalDegree: "  ثانوية   عامة "})

		assert.True(t, ok)
		assert.Equal(t, "GENERAL_SECONDARY", q.EducationalDegree)
	})

	t.Run("unmapped label means deliberate no-match", func(t *testing.T) {
		_, ok := buildSearchQuery(SearchRequest{FunctionalDegree: "درجة غير موجودة"})
		assert.False(t, ok)
	})

	t.Run("empty criteria build an unfiltered query", func(t *testing.T) {
		q, ok := buildSearchQuery(SearchRequest{})

		assert.True(t, ok)
		assert.Equal(t, SearchQuery{}, q)
	})
}
