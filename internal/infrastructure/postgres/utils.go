package postgres

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	domaindir "github.com/clairefro/flc-wix/internal/domain/directory"
)

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}

// likeEscaper escapa los comodines de LIKE para que el texto buscado sea literal.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// predicateWhere compila el predicado del directorio a una cláusula WHERE con placeholders.
//
//	country  -> country = $n
//	regions  -> region && $n      (contiene alguna)
//	name     -> name ILIKE %...%  (substring, sin distinguir mayúsculas)
func predicateWhere(p domaindir.Predicate) (string, []any) {
	var clauses []string
	var args []any

	if p.Country != "" {
		args = append(args, p.Country)
		clauses = append(clauses, fmt.Sprintf("country = $%d", len(args)))
	}
	if len(p.Regions) > 0 {
		args = append(args, p.Regions)
		clauses = append(clauses, fmt.Sprintf("region && $%d::text[]", len(args)))
	}
	if p.Name != "" {
		args = append(args, "%"+likeEscaper.Replace(p.Name)+"%")
		clauses = append(clauses, fmt.Sprintf("name ILIKE $%d", len(args)))
	}

	if len(clauses) == 0 {
		return "", args
	}
	return "WHERE " + strings.Join(clauses, " AND "), args
}
