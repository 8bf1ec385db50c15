package report

import (
	"context"

	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// Formatos de exportación soportados.
const (
	FormatXLSX = "xlsx"
	FormatPDF  = "pdf"
)

// StockExporter genera el binario descargable con el stock resuelto de una bodega.
// Los adaptadores (excelize, maroto) implementan este puerto; el caso de uso no
// conoce el formato.
type StockExporter interface {
	Export(warehouseName string, rows []repository.WarehouseStockItem) ([]byte, error)
	// ContentType devuelve el MIME type del binario generado.
	ContentType() string
	// FileExt devuelve la extensión de archivo sugerida (sin punto).
	FileExt() string
}

// StockReportUseCase resuelve el stock de una bodega y lo entrega al exportador.
type StockReportUseCase struct {
	warehouseRepo repository.WarehouseRepository
	stockRepo     repository.StockRepository
	exporters     map[string]StockExporter
}

// NewStockReportUseCase construye el caso de uso con los exportadores disponibles.
func NewStockReportUseCase(
	warehouseRepo repository.WarehouseRepository,
	stockRepo repository.StockRepository,
	exporters map[string]StockExporter,
) *StockReportUseCase {
	return &StockReportUseCase{
		warehouseRepo: warehouseRepo,
		stockRepo:     stockRepo,
		exporters:     exporters,
	}
}

// ExportResult binario generado más sus metadatos de descarga.
type ExportResult struct {
	Content     []byte
	ContentType string
	FileName    string
}

// Export genera el reporte de stock de la bodega en el formato pedido (xlsx|pdf).
func (uc *StockReportUseCase) Export(ctx context.Context, warehouseID, format string) (*ExportResult, error) {
	exporter, ok := uc.exporters[format]
	if !ok {
		return nil, domain.ErrInvalidInput
	}
	warehouse, err := uc.warehouseRepo.GetByID(warehouseID)
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, domain.ErrNotFound
	}
	rows, err := uc.stockRepo.GetWarehouseStock(ctx, warehouseID)
	if err != nil {
		return nil, err
	}
	content, err := exporter.Export(warehouse.Name, rows)
	if err != nil {
		return nil, err
	}
	return &ExportResult{
		Content:     content,
		ContentType: exporter.ContentType(),
		FileName:    "stock-" + warehouse.Name + "." + exporter.FileExt(),
	}, nil
}
