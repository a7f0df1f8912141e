// Package report agrega asignaciones por tienda y sección para los informes de
// estado y cobertura.
package report

import (
	"context"
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/Asignaciones-api/internal/application/dto"
	"github.com/jhoicas/Asignaciones-api/internal/application/ports"
	"github.com/jhoicas/Asignaciones-api/internal/domain"
	"github.com/jhoicas/Asignaciones-api/internal/domain/entity"
	"github.com/jhoicas/Asignaciones-api/internal/domain/repository"
)

// PDFRenderer genera el PDF del informe de cobertura.
type PDFRenderer interface {
	RenderCoverage(ctx context.Context, report *dto.StoreCoverageResponse) ([]byte, error)
}

// CoverageUseCase informes de solo lectura sobre las asignaciones de una tienda.
type CoverageUseCase struct {
	storeRepo      repository.StoreRepository
	assignmentRepo repository.AssignmentRepository
	catalog        entity.SectionCatalog
	addresses      ports.AddressLookup
	renderer       PDFRenderer
}

// NewCoverageUseCase construye el caso de uso. addresses y renderer pueden ser nil:
// sin lookup el informe sale sin dirección y sin renderer no hay PDF.
func NewCoverageUseCase(
	storeRepo repository.StoreRepository,
	assignmentRepo repository.AssignmentRepository,
	catalog entity.SectionCatalog,
	addresses ports.AddressLookup,
	renderer PDFRenderer,
) *CoverageUseCase {
	return &CoverageUseCase{
		storeRepo:      storeRepo,
		assignmentRepo: assignmentRepo,
		catalog:        catalog,
		addresses:      addresses,
		renderer:       renderer,
	}
}

// StoreStatus lista, por sección con al menos una asignación, los trabajadores
// asignados y sus horas. Las secciones se ordenan por nombre.
func (uc *CoverageUseCase) StoreStatus(ctx context.Context, storeCode string) (*dto.StoreStatusResponse, error) {
	snap, err := uc.load(ctx, storeCode)
	if err != nil {
		return nil, err
	}

	groups := make(map[string][]dto.AssignedWorker)
	for _, a := range snap.assignments {
		groups[a.SectionName] = append(groups[a.SectionName], dto.AssignedWorker{
			Document: a.WorkerDocument,
			Name:     a.WorkerName,
			Hours:    a.Hours,
		})
	}
	names := make([]string, 0, len(groups))
	for name := range groups {
		names = append(names, name)
	}
	sort.Strings(names)

	sections := make([]dto.SectionStatusEntry, 0, len(names))
	for _, name := range names {
		sections = append(sections, dto.SectionStatusEntry{Name: name, Workers: groups[name]})
	}
	return &dto.StoreStatusResponse{
		StoreCode: snap.store.Code,
		StoreName: snap.store.Name,
		Address:   snap.address,
		Sections:  sections,
	}, nil
}

// StoreCoverage recorre el catálogo y devuelve solo las secciones a las que les
// faltan horas (missing = max(0, requeridas - asignadas) > 0).
func (uc *CoverageUseCase) StoreCoverage(ctx context.Context, storeCode string) (*dto.StoreCoverageResponse, error) {
	snap, err := uc.load(ctx, storeCode)
	if err != nil {
		return nil, err
	}

	assigned := make(map[string]int)
	for _, a := range snap.assignments {
		assigned[a.SectionName] += a.Hours
	}

	out := &dto.StoreCoverageResponse{
		StoreCode:          snap.store.Code,
		StoreName:          snap.store.Name,
		Address:            snap.address,
		IncompleteSections: []dto.SectionCoverageEntry{},
	}
	for _, sec := range uc.catalog {
		missing := sec.RequiredHours - assigned[sec.Name]
		if missing <= 0 {
			continue
		}
		out.IncompleteSections = append(out.IncompleteSections, dto.SectionCoverageEntry{
			Name:     sec.Name,
			Required: sec.RequiredHours,
			Assigned: assigned[sec.Name],
			Missing:  missing,
		})
		out.TotalMissingHours += missing
	}
	out.TotalIncomplete = len(out.IncompleteSections)
	return out, nil
}

// StoreCoveragePDF informe de cobertura en PDF y nombre de fichero sugerido.
func (uc *CoverageUseCase) StoreCoveragePDF(ctx context.Context, storeCode string) ([]byte, string, error) {
	if uc.renderer == nil {
		return nil, "", fmt.Errorf("report: generador PDF no configurado")
	}
	cov, err := uc.StoreCoverage(ctx, storeCode)
	if err != nil {
		return nil, "", err
	}
	pdf, err := uc.renderer.RenderCoverage(ctx, cov)
	if err != nil {
		return nil, "", fmt.Errorf("report: generar PDF de cobertura: %w", err)
	}
	return pdf, fmt.Sprintf("cobertura_%s.pdf", cov.StoreCode), nil
}

type snapshot struct {
	store       *entity.Store
	assignments []*entity.Assignment
	address     string
}

// load resuelve la tienda y trae en paralelo sus asignaciones y su dirección.
// Un fallo del lookup de direcciones deja address vacío; nunca falla el informe.
func (uc *CoverageUseCase) load(ctx context.Context, storeCode string) (*snapshot, error) {
	store, err := uc.storeRepo.GetByCode(ctx, storeCode)
	if err != nil {
		return nil, fmt.Errorf("report: obtener tienda: %w", err)
	}
	if store == nil {
		return nil, domain.NotFound("no existe una tienda con el código: %s", storeCode)
	}

	snap := &snapshot{store: store}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		list, err := uc.assignmentRepo.ListByStore(gctx, store.Code)
		if err != nil {
			return fmt.Errorf("report: asignaciones de la tienda %s: %w", store.Code, err)
		}
		snap.assignments = list
		return nil
	})
	if uc.addresses != nil {
		g.Go(func() error {
			addr, found, err := uc.addresses.FindAddressByStoreName(gctx, store.Name)
			if err == nil && found {
				snap.address = addr
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return snap, nil
}
