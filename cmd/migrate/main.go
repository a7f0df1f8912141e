// migrate aplica las migraciones del adaptador configurado (STORAGE_DRIVER) y
// siembra el catálogo de secciones.
//
// Uso: go run ./cmd/migrate [sql]
// Con "sql" no toca la base: imprime en stdout el INSERT idempotente del catálogo
// para aplicarlo a mano en PostgreSQL.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jhoicas/Asignaciones-api/internal/application/usecase"
	"github.com/jhoicas/Asignaciones-api/internal/domain/entity"
	"github.com/jhoicas/Asignaciones-api/internal/infrastructure/storage"
	"github.com/jhoicas/Asignaciones-api/pkg/config"
	"github.com/jhoicas/Asignaciones-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	catalog, err := entity.ParseSectionCatalog(cfg.Sections)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Catálogo de secciones: %v\n", err)
		os.Exit(1)
	}

	if len(os.Args) > 1 && os.Args[1] == "sql" {
		writeSeedSQL(os.Stdout, catalog)
		return
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, Service: "migrate"})
	ctx := context.Background()
	backend, err := storage.Open(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir almacenamiento")
	}
	defer backend.Close()

	if err := usecase.NewSectionUseCase(backend.Sections, catalog).SeedCatalog(ctx); err != nil {
		log.Fatal().Err(err).Msg("sembrar catálogo de secciones")
	}
	log.Info().
		Str("storage", backend.Driver).
		Int("sections", len(catalog)).
		Msg("migraciones aplicadas y catálogo sembrado")
}

func writeSeedSQL(out io.Writer, catalog entity.SectionCatalog) {
	fmt.Fprintln(out, "-- Catálogo de secciones")
	fmt.Fprintln(out, "INSERT INTO sections (name, required_hours) VALUES")
	for i, s := range catalog {
		sep := ","
		if i == len(catalog)-1 {
			sep = ""
		}
		fmt.Fprintf(out, "  ('%s', %d)%s\n", escapeSQL(s.Name), s.RequiredHours, sep)
	}
	fmt.Fprintln(out, "ON CONFLICT (name) DO UPDATE SET required_hours = EXCLUDED.required_hours;")
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}
