package directory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/clairefro/flc-wix/internal/domain/directory"
)

func TestTotalPages(t *testing.T) {
	cases := []struct {
		total, size, want int
	}{
		{0, 40, 1},
		{1, 40, 1},
		{40, 40, 1},
		{41, 40, 2},
		{85, 40, 3},
		{120, 40, 3},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, directory.TotalPages(c.total, c.size), "total=%d", c.total)
	}
}

func TestClampPage_SiempreEnRango(t *testing.T) {
	for _, total := range []int{0, 1, 39, 40, 41, 85, 400} {
		pages := directory.TotalPages(total, 40)
		for _, n := range []int{-100, -1, 0, 1, 2, 3, 10, 1 << 20} {
			got := directory.ClampPage(n, pages)
			assert.GreaterOrEqual(t, got, 1)
			assert.LessOrEqual(t, got, pages)
		}
	}
	assert.Equal(t, 3, directory.ClampPage(99, 3))
	assert.Equal(t, 1, directory.ClampPage(0, 3))
	assert.Equal(t, 2, directory.ClampPage(2, 3))
}

func TestReduceTagSelection(t *testing.T) {
	assert.Equal(t, "", directory.ReduceTagSelection("Kanto", nil))
	assert.Equal(t, "Kanto", directory.ReduceTagSelection("", []string{"Kanto"}))
	// el widget permitió un segundo clic: gana el tag nuevo
	assert.Equal(t, "Kansai", directory.ReduceTagSelection("Kanto", []string{"Kanto", "Kansai"}))
	assert.Equal(t, "Kansai", directory.ReduceTagSelection("Kanto", []string{"Kansai", "Kanto"}))
	// sin tag distinto al anterior: deselección
	assert.Equal(t, "", directory.ReduceTagSelection("Kanto", []string{"Kanto", "Kanto"}))
}

func TestReduceTagSelection_MismoTagDosVecesDeselecciona(t *testing.T) {
	sel := directory.ReduceTagSelection("", []string{"Kanto"})
	assert.Equal(t, "Kanto", sel)
	// segundo clic sobre el mismo tag: el widget lo desmarca y llega vacío
	sel = directory.ReduceTagSelection(sel, []string{})
	assert.Equal(t, "", sel)
}

func TestReduceTagSelection_NuncaMasDeUno(t *testing.T) {
	history := [][]string{{"A"}, {"A", "B"}, {"B", "C"}, {"C", "C"}, {"D", "E", "F"}, {}}
	prev := ""
	for _, in := range history {
		prev = directory.ReduceTagSelection(prev, in)
		if prev != "" {
			assert.Contains(t, in, prev)
		}
	}
	assert.Equal(t, "", prev)
}

func TestLocationClause(t *testing.T) {
	assert.Equal(t, "", directory.LocationClause("", nil))
	assert.Equal(t, " in Japan", directory.LocationClause("Japan", nil))
	assert.Equal(t, " in Kanto, Japan", directory.LocationClause("Japan", []string{"Kanto"}))
	assert.Equal(t, " in Kanto, ", directory.LocationClause("", []string{"Kanto"}))
}

func TestStatusText(t *testing.T) {
	none := directory.Predicate{}

	assert.Equal(t, "1 practitioner found", directory.StatusText(none, 1, 1, 40, 1))
	assert.Equal(t, "12 practitioners found", directory.StatusText(none, 12, 1, 40, 12))
	assert.Equal(t, "Showing 41-80 of 85 practitioners found", directory.StatusText(none, 85, 2, 40, 40))
	assert.Equal(t, "Showing 81-85 of 85 practitioners found", directory.StatusText(none, 85, 3, 40, 5))
	assert.Equal(t, directory.NoResultsText, directory.StatusText(none, 0, 1, 40, 0))

	japan := directory.Predicate{Country: "Japan", Regions: []string{"Kanto"}}
	assert.Equal(t, "3 practitioners found in Kanto, Japan", directory.StatusText(japan, 3, 1, 40, 3))

	search := directory.Predicate{Name: "yama"}
	assert.Equal(t, "2 practitioners found matching search", directory.StatusText(search, 2, 1, 40, 2))
	assert.Equal(t, "Showing 1-40 of 41 practitioners found matching search", directory.StatusText(search, 41, 1, 40, 40))
}

func TestDistinctRegions(t *testing.T) {
	got := directory.DistinctRegions([]string{"Kanto", "Kansai", "", "Kanto", "Hokkaido"})
	assert.Equal(t, []string{"Hokkaido", "Kansai", "Kanto"}, got)
	assert.Empty(t, directory.DistinctRegions(nil))
}

func TestPredicate_CloneIndependiente(t *testing.T) {
	p := directory.Predicate{Country: "Japan", Regions: []string{"Kanto"}}
	c := p.Clone()
	c.Regions[0] = "Kansai"
	assert.Equal(t, "Kanto", p.Regions[0])
	assert.False(t, p.IsZero())
	assert.True(t, directory.Predicate{}.IsZero())
}
