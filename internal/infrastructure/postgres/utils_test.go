package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"

	domaindir "github.com/clairefro/flc-wix/internal/domain/directory"
)

func TestPredicateWhere_SinFiltros(t *testing.T) {
	where, args := predicateWhere(domaindir.Predicate{})
	assert.Equal(t, "", where)
	assert.Empty(t, args)
}

func TestPredicateWhere_TodosLosFiltros(t *testing.T) {
	where, args := predicateWhere(domaindir.Predicate{
		Country: "Japan",
		Regions: []string{"Kanto"},
		Name:    "50%_off",
	})
	assert.Equal(t, "WHERE country = $1 AND region && $2::text[] AND name ILIKE $3", where)
	assert.Equal(t, []any{"Japan", []string{"Kanto"}, `%50\%\_off%`}, args)
}

func TestPredicateWhere_SoloNombre(t *testing.T) {
	where, args := predicateWhere(domaindir.Predicate{Name: "yama"})
	assert.Equal(t, "WHERE name ILIKE $1", where)
	assert.Equal(t, []any{"%yama%"}, args)
}
