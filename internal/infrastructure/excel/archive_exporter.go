// Package excel exporta el registro de auditoría de inventario a .xlsx.
package excel

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/Planta-api/internal/application/inventory"
	"github.com/jhoicas/Planta-api/internal/domain/entity"
)

var _ inventory.ArchiveExporter = (*ArchiveExporter)(nil)

const sheetName = "Auditoria"

var headers = []string{"ID", "Item ID", "SKU", "Campo", "Valor anterior", "Valor nuevo", "Editado por", "Fecha"}

// ArchiveExporter implementa inventory.ArchiveExporter con excelize.
type ArchiveExporter struct{}

// NewArchiveExporter construye el exportador.
func NewArchiveExporter() *ArchiveExporter { return &ArchiveExporter{} }

func (e *ArchiveExporter) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

func (e *ArchiveExporter) FileName() string { return "inventory_archive.xlsx" }

// Export escribe una hoja con una fila por registro, en el orden recibido.
func (e *ArchiveExporter) Export(w io.Writer, records []*entity.InventoryArchive) error {
	f := excelize.NewFile()
	defer f.Close()

	idx, err := f.NewSheet(sheetName)
	if err != nil {
		return fmt.Errorf("excel: crear hoja: %w", err)
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("excel: eliminar hoja por defecto: %w", err)
	}

	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheetName, cell, h); err != nil {
			return err
		}
	}
	if style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}}); err == nil {
		_ = f.SetRowStyle(sheetName, 1, 1, style)
	}

	for i, r := range records {
		values := []any{r.ID, r.ItemID, r.SKU, r.Field, r.OldValue, r.NewValue, r.EditedBy, r.Timestamp.UTC().Format("2006-01-02 15:04:05")}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(sheetName, cell, &values); err != nil {
			return fmt.Errorf("excel: fila %d: %w", i+2, err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("excel: escribir archivo: %w", err)
	}
	return nil
}
