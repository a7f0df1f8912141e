package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/Asignaciones-api/internal/application/cascade"
	"github.com/jhoicas/Asignaciones-api/internal/application/dto"
	"github.com/jhoicas/Asignaciones-api/internal/application/report"
	"github.com/jhoicas/Asignaciones-api/internal/application/usecase"
	"github.com/jhoicas/Asignaciones-api/internal/domain"
	"github.com/jhoicas/Asignaciones-api/internal/domain/entity"
	"github.com/jhoicas/Asignaciones-api/internal/infrastructure/external"
	infrapdf "github.com/jhoicas/Asignaciones-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Asignaciones-api/internal/infrastructure/storage"
	httpRouter "github.com/jhoicas/Asignaciones-api/internal/interfaces/http"
	"github.com/jhoicas/Asignaciones-api/pkg/config"
	"github.com/jhoicas/Asignaciones-api/pkg/logger"
)

const swaggerFile = "./docs/swagger.json"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("storage", cfg.Storage.Driver).
		Msg("iniciando aplicación")

	catalog, err := entity.ParseSectionCatalog(cfg.Sections)
	if err != nil {
		log.Fatal().Err(err).Msg("catálogo de secciones inválido")
	}

	ctx := context.Background()
	backend, err := storage.Open(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir almacenamiento")
	}
	defer backend.Close()

	coordinator := cascade.NewCoordinator(backend.TxRunner)
	sectionUC := usecase.NewSectionUseCase(backend.Sections, catalog)
	if err := sectionUC.SeedCatalog(ctx); err != nil {
		log.Fatal().Err(err).Msg("sembrar catálogo de secciones")
	}
	storeUC := usecase.NewStoreUseCase(backend.Stores, coordinator)
	workerUC := usecase.NewWorkerUseCase(backend.TxRunner, backend.Stores, backend.Workers, coordinator)
	assignmentUC := usecase.NewAssignmentUseCase(backend.TxRunner, backend.Workers, backend.Sections, backend.Assignments)

	// Directorio externo de tiendas: solo aporta la dirección a los informes
	directory := external.NewStoreDirectoryClient(cfg.External.StoresBaseURL, cfg.External.Timeout, log.Component("directorio"))
	coverageUC := report.NewCoverageUseCase(
		backend.Stores, backend.Assignments, catalog, directory, infrapdf.NewMarotoPDFGenerator(),
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		UnescapePath: true,
		// Los repos en memoria guardan los strings del cuerpo tal cual
		Immutable:    true,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			var fe *fiber.Error
			if errors.As(err, &fe) {
				return c.Status(fe.Code).JSON(dto.ErrorResponse{Code: "HTTP", Message: fe.Message})
			}
			return c.Status(fiber.StatusInternalServerError).
				JSON(dto.ErrorResponse{Code: domain.KindInternal.String(), Message: "error interno"})
		},
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log.Component("http")))

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat(swaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: swaggerFile,
			Path:     "docs",
			Title:    "Asignaciones API",
		}))
	} else {
		log.Warn().Str("file", swaggerFile).Msg("swagger.json no encontrado, /docs deshabilitado")
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name, "storage": backend.Driver})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		StoreUC:      storeUC,
		SectionUC:    sectionUC,
		WorkerUC:     workerUC,
		AssignmentUC: assignmentUC,
		CoverageUC:   coverageUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
