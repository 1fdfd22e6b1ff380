package inventory

import (
	"context"
	"io"

	"github.com/jhoicas/Planta-api/internal/domain/entity"
	"github.com/jhoicas/Planta-api/internal/domain/repository"
)

// ArchiveUseCase lectura y exportación del registro de auditoría.
type ArchiveUseCase struct {
	archiveRepo repository.InventoryArchiveRepository
	exporter    ArchiveExporter
}

// NewArchiveUseCase construye el caso de uso.
func NewArchiveUseCase(archiveRepo repository.InventoryArchiveRepository, exporter ArchiveExporter) *ArchiveUseCase {
	return &ArchiveUseCase{archiveRepo: archiveRepo, exporter: exporter}
}

// List devuelve el registro completo, más reciente primero.
func (uc *ArchiveUseCase) List(ctx context.Context) ([]*entity.InventoryArchive, error) {
	return uc.archiveRepo.List(ctx)
}

// Export escribe el registro completo con el exportador configurado.
func (uc *ArchiveUseCase) Export(ctx context.Context, w io.Writer) error {
	records, err := uc.archiveRepo.List(ctx)
	if err != nil {
		return err
	}
	return uc.exporter.Export(w, records)
}

// ContentType y FileName del archivo exportado, para las cabeceras HTTP.
func (uc *ArchiveUseCase) ContentType() string { return uc.exporter.ContentType() }
func (uc *ArchiveUseCase) FileName() string    { return uc.exporter.FileName() }
