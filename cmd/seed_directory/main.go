// seed_directory importa practicantes desde un CSV exportado del sitio a la tabla practitioners.
//
// Uso: go run ./cmd/seed_directory [-latin1] [-schema] ruta/practitioners.csv
//
// Columnas esperadas (con cabecera): id, name, country, region, city, email, website, phone, photo_url.
// region admite varios valores separados por ";". Filas sin id reciben un UUID nuevo.
// La importación corre en una sola transacción: si una fila falla no se escribe ninguna.
package main

import (
	"context"
	"encoding/csv"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/clairefro/flc-wix/internal/domain/entity"
	"github.com/clairefro/flc-wix/internal/domain/repository"
	"github.com/clairefro/flc-wix/internal/infrastructure/postgres"
	"github.com/clairefro/flc-wix/pkg/config"
	"github.com/clairefro/flc-wix/pkg/logger"
)

// columns columnas aceptadas en la cabecera del CSV, en cualquier orden.
var columns = []string{"id", "name", "country", "region", "city", "email", "website", "phone", "photo_url"}

func main() {
	latin1 := flag.Bool("latin1", false, "el CSV está en ISO-8859-1 (exportaciones de Excel)")
	schema := flag.Bool("schema", false, "crear tablas si no existen")
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "uso: seed_directory [-latin1] [-schema] archivo.csv")
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	f, err := os.Open(flag.Arg(0))
	if err != nil {
		log.Fatal().Err(err).Msg("abrir CSV")
	}
	defer f.Close()

	var r io.Reader = f
	if *latin1 {
		r = transform.NewReader(f, charmap.ISO8859_1.NewDecoder())
	}
	list, err := parsePractitioners(r, time.Now())
	if err != nil {
		log.Fatal().Err(err).Msg("leer CSV")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if *schema {
		if err := postgres.EnsureSchema(ctx, pool); err != nil {
			log.Fatal().Err(err).Msg("crear esquema")
		}
	}

	err = postgres.NewTxRunner(pool).RunDirectory(ctx, func(repo repository.PractitionerRepository) error {
		for _, p := range list {
			if err := repo.Upsert(ctx, p); err != nil {
				return fmt.Errorf("practicante %s: %w", p.ID, err)
			}
		}
		return nil
	})
	if err != nil {
		log.Fatal().Err(err).Msg("importar practicantes")
	}
	log.Info().Int("practitioners", len(list)).Msg("directorio importado")
}

// parsePractitioners lee el CSV con cabecera. Las columnas pueden venir en cualquier orden;
// name y country son obligatorias.
func parsePractitioners(r io.Reader, now time.Time) ([]*entity.Practitioner, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("cabecera: %w", err)
	}
	idx := make(map[string]int, len(header))
	for i, h := range header {
		col := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
		if col == "" {
			continue
		}
		if !slices.Contains(columns, col) {
			return nil, fmt.Errorf("columna desconocida %q", h)
		}
		idx[col] = i
	}
	for _, required := range []string{"name", "country"} {
		if _, ok := idx[required]; !ok {
			return nil, fmt.Errorf("falta la columna %q", required)
		}
	}

	var out []*entity.Practitioner
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return nil, fmt.Errorf("línea %d: %w", line, err)
		}
		get := func(col string) string {
			i, ok := idx[col]
			if !ok || i >= len(rec) {
				return ""
			}
			return strings.TrimSpace(rec[i])
		}
		p := &entity.Practitioner{
			ID:        get("id"),
			Name:      get("name"),
			Country:   get("country"),
			Region:    splitRegions(get("region")),
			City:      get("city"),
			Email:     get("email"),
			Website:   get("website"),
			Phone:     get("phone"),
			PhotoURL:  get("photo_url"),
			CreatedAt: now,
		}
		if p.Name == "" {
			return nil, fmt.Errorf("línea %d: name vacío", line)
		}
		if p.ID == "" {
			p.ID = uuid.NewString()
		}
		out = append(out, p)
	}
}

func splitRegions(s string) []string {
	regions := []string{}
	for _, r := range strings.Split(s, ";") {
		if r = strings.TrimSpace(r); r != "" {
			regions = append(regions, r)
		}
	}
	return regions
}
