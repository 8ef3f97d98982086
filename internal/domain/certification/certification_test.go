package certification_test

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clairefro/flc-wix/internal/domain/certification"
	"github.com/clairefro/flc-wix/internal/domain/entity"
)

func hrs(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

func TestMapCategory(t *testing.T) {
	assert.Equal(t, "Core curriculum", certification.MapCategory("Core curriculum (Levels 1 -10)"))
	assert.Equal(t, "Elective", certification.MapCategory("Elective"))
	assert.Equal(t, "Unknown", certification.MapCategory("Electives"))
	assert.Equal(t, "Unknown", certification.MapCategory(""))
}

func TestFromEntry(t *testing.T) {
	when := time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)
	r := certification.FromEntry(&entity.ProgressEntry{
		DateCompleted: when, Hours: hrs(6), School: "FLC", Instructor: "Kumiko",
		CourseName: "Level 1", Course: "L1", Category: "Core curriculum (Levels 1 -10)",
	})
	assert.Equal(t, "Core curriculum", r.Category)
	assert.Equal(t, when, r.DateCompleted)
	assert.True(t, r.Hours.Equal(hrs(6)))
}

func TestSortRecords_CategoriaLuegoCurso(t *testing.T) {
	recs := []certification.Record{
		{Category: "Practice", Course: "B"},
		{Category: "Core curriculum", Course: "L2"},
		{Category: "Core curriculum", Course: "L1"},
		{Category: "Anatomy and Physiology", Course: "A1"},
	}
	certification.SortRecords(recs)
	got := make([]string, 0, len(recs))
	for _, r := range recs {
		got = append(got, r.Category+"/"+r.Course)
	}
	assert.Equal(t, []string{
		"Anatomy and Physiology/A1", "Core curriculum/L1", "Core curriculum/L2", "Practice/B",
	}, got)
}

func TestUniqueStudents(t *testing.T) {
	entries := []*entity.ProgressEntry{
		{Email: "b@x.com", FirstName: "bea", LastName: "Sato"},
		{Email: "a@x.com", FirstName: "Aiko", LastName: "Ito"},
		{Email: "b@x.com", FirstName: "Other", LastName: "Name"},
		{Email: "c@x.com", FirstName: "Ben", LastName: ""},
	}
	got := certification.UniqueStudents(entries)
	require.Len(t, got, 3)
	assert.Equal(t, "a@x.com", got[0].Email)
	assert.Equal(t, "b@x.com", got[1].Email)
	assert.Equal(t, "bea", got[1].FirstName, "gana la primera aparición")
	assert.Equal(t, "c@x.com", got[2].Email)
}

func TestEmailsMissingCourse(t *testing.T) {
	all := []*entity.ProgressEntry{{Email: "a"}, {Email: "b"}, {Email: "a"}, {Email: "c"}}
	taken := []*entity.ProgressEntry{{Email: "b"}}
	assert.Equal(t, []string{"a", "c"}, certification.EmailsMissingCourse(all, taken))
}

func TestSummarize_Parcial(t *testing.T) {
	s := certification.Summarize([]certification.Record{
		{Category: "Core curriculum", Hours: hrs(150)},
		{Category: "Core curriculum", Hours: hrs(70.5)},
		{Category: "Elective", Hours: hrs(10)},
		{Category: "Unknown", Hours: hrs(4)},
	})
	require.Len(t, s.Categories, 5)
	assert.Equal(t, "Core curriculum", s.Categories[0].Label)
	assert.True(t, s.Categories[0].Hours.Equal(hrs(220.5)))
	assert.EqualValues(t, 110, s.Categories[0].Percent)
	assert.Equal(t, "Electives", s.Categories[2].Label)
	assert.EqualValues(t, 20, s.Categories[2].Percent)

	assert.True(t, s.TotalHours.Equal(hrs(234.5)))
	assert.True(t, s.RequiredTotal.Equal(hrs(500)))
	// Core topa en 200
	assert.True(t, s.TowardRequirements.Equal(hrs(210)))
	assert.EqualValues(t, 42, s.Percent)
	assert.True(t, s.Remaining.Equal(hrs(290)))
	assert.False(t, s.Done())
}

func TestSummarize_Completo(t *testing.T) {
	s := certification.Summarize([]certification.Record{
		{Category: "Core curriculum", Hours: hrs(200)},
		{Category: "Anatomy and Physiology", Hours: hrs(120)},
		{Category: "Elective", Hours: hrs(50)},
		{Category: "Practice", Hours: hrs(100)},
		{Category: "Other", Hours: hrs(50)},
	})
	assert.True(t, s.Done())
	assert.Equal(t, certification.CompletionMessage, s.Closing())
	assert.EqualValues(t, 100, s.Percent)
}

func TestSummary_Text(t *testing.T) {
	s := certification.Summarize([]certification.Record{
		{Category: "Core curriculum", Hours: hrs(20)},
		{Category: "Practice", Hours: hrs(5)},
	})
	text := s.Text()
	lines := strings.Split(text, "\n")

	assert.Equal(t, "Core curriculum --------------- 20 / 200 hrs (10%)", lines[0])
	assert.Equal(t, "Anatomy and Physiology -------- 0 / 100 hrs (0%)", lines[1])
	assert.Equal(t, "Electives --------------------- 0 / 50 hrs (0%)", lines[2])
	assert.Equal(t, "Practice ---------------------- 5 / 100 hrs (5%)", lines[3])
	assert.Equal(t, "Other ------------------------- 0 / 50 hrs (0%)", lines[4])
	assert.Equal(t, strings.Repeat("=", 53), lines[5])
	assert.Equal(t, "Total hrs --------------------- 25", lines[6])
	assert.Equal(t, "Total toward requirements ----- 25 / 500 hrs (5%)", lines[7])
	assert.Equal(t, "", lines[8])
	assert.Equal(t, "Hours remaining for requirements: 475", lines[9])
}
