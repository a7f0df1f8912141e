package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Asignaciones-api/internal/application/report"
	"github.com/jhoicas/Asignaciones-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	StoreUC      *usecase.StoreUseCase
	SectionUC    *usecase.SectionUseCase
	WorkerUC     *usecase.WorkerUseCase
	AssignmentUC *usecase.AssignmentUseCase
	CoverageUC   *report.CoverageUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Tiendas (las rutas fijas van antes que /:codigo)
	stores := api.Group("/tiendas")
	storeHandler := NewStoreHandler(deps.StoreUC)
	stores.Post("/", storeHandler.Create)
	stores.Get("/", storeHandler.List)
	stores.Get("/total", storeHandler.Count)
	stores.Get("/:codigo", storeHandler.GetByCode)
	stores.Get("/:codigo/existe", storeHandler.Exists)
	stores.Put("/:codigo", storeHandler.Update)
	stores.Delete("/:codigo", storeHandler.Delete)

	// Secciones (catálogo de solo lectura)
	sectionHandler := NewSectionHandler(deps.SectionUC)
	api.Get("/secciones", sectionHandler.List)

	// Trabajadores
	workers := api.Group("/trabajadores")
	workerHandler := NewWorkerHandler(deps.WorkerUC)
	workers.Post("/", workerHandler.Create)
	workers.Get("/", workerHandler.List)
	workers.Get("/tienda/:codigo/total", workerHandler.CountByStore)
	workers.Get("/tienda/:codigo/horas", workerHandler.AvailableHoursByStore)
	workers.Get("/:dni", workerHandler.GetByDocument)
	workers.Put("/:dni", workerHandler.Update)
	workers.Delete("/:dni", workerHandler.Delete)

	// Asignaciones
	assignments := api.Group("/asignaciones")
	assignmentHandler := NewAssignmentHandler(deps.AssignmentUC)
	assignments.Post("/", assignmentHandler.Create)
	assignments.Get("/", assignmentHandler.ListWithMinHours)
	assignments.Get("/trabajador/:dni", assignmentHandler.ListByWorker)
	assignments.Get("/trabajador/:dni/total", assignmentHandler.CountByWorker)
	assignments.Get("/trabajador/:dni/seccion/:nombre", assignmentHandler.Get)
	assignments.Get("/trabajador/:dni/seccion/:nombre/existe", assignmentHandler.Exists)
	assignments.Put("/trabajador/:dni/seccion/:nombre", assignmentHandler.UpdateHours)
	assignments.Delete("/trabajador/:dni/seccion/:nombre", assignmentHandler.Delete)
	assignments.Get("/seccion/:nombre", assignmentHandler.ListBySection)
	assignments.Get("/seccion/:nombre/total", assignmentHandler.CountBySection)
	assignments.Get("/seccion/:nombre/horas", assignmentHandler.HoursBySection)
	assignments.Get("/tienda/:codigo", assignmentHandler.ListByStore)
	assignments.Get("/tienda/:codigo/horas", assignmentHandler.HoursByStore)

	// Reportes
	reports := api.Group("/reportes/tienda/:codigo")
	reportHandler := NewReportHandler(deps.CoverageUC)
	reports.Get("/estado", reportHandler.StoreStatus)
	reports.Get("/cobertura", reportHandler.StoreCoverage)
	reports.Get("/cobertura/pdf", reportHandler.StoreCoveragePDF)
}
