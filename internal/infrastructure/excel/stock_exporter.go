package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/Almacen-api/internal/application/report"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

var _ report.StockExporter = (*StockExporter)(nil)

// StockExporter genera el reporte de stock de una bodega en XLSX usando excelize.
type StockExporter struct{}

// NewStockExporter construye el exportador.
func NewStockExporter() *StockExporter { return &StockExporter{} }

// Export arma la hoja con una fila por producto y devuelve los bytes del .xlsx.
func (e *StockExporter) Export(warehouseName string, rows []repository.WarehouseStockItem) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	const sheet = "Sheet1"
	f.SetCellValue(sheet, "A1", "Bodega")
	f.SetCellValue(sheet, "B1", warehouseName)

	// Encabezados
	f.SetCellValue(sheet, "A2", "SKU")
	f.SetCellValue(sheet, "B2", "Producto")
	f.SetCellValue(sheet, "C2", "Cantidad")

	for i, r := range rows {
		rowNo := i + 3
		f.SetCellValue(sheet, "A"+fmt.Sprint(rowNo), r.SKU)
		f.SetCellValue(sheet, "B"+fmt.Sprint(rowNo), r.ProductName)
		qty, _ := r.Quantity.Float64()
		f.SetCellValue(sheet, "C"+fmt.Sprint(rowNo), qty)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write xlsx: %w", err)
	}
	return buf.Bytes(), nil
}

// ContentType MIME type del XLSX.
func (e *StockExporter) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

// FileExt extensión sugerida.
func (e *StockExporter) FileExt() string { return "xlsx" }
