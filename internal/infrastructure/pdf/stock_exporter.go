// Package pdf genera el reporte de stock de una bodega como PDF con Maroto v2:
// encabezado con el nombre de la bodega, una tabla SKU | Producto | Cantidad
// y una fila por producto.
package pdf

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/Almacen-api/internal/application/report"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ report.StockExporter = (*StockExporter)(nil)

// StockExporter genera el reporte de stock de una bodega en PDF usando Maroto v2.
type StockExporter struct{}

// NewStockExporter construye el exportador.
func NewStockExporter() *StockExporter { return &StockExporter{} }

// Export genera el PDF y devuelve sus bytes.
func (e *StockExporter) Export(warehouseName string, rows []repository.WarehouseStockItem) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de stock", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(warehouseName))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	for _, r := range rows {
		m.AddRows(detailRow(r))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("generate stock pdf: %w", err)
	}
	return doc.GetBytes(), nil
}

// ContentType MIME type del PDF.
func (e *StockExporter) ContentType() string { return "application/pdf" }

// FileExt extensión sugerida.
func (e *StockExporter) FileExt() string { return "pdf" }

func headerRow(warehouseName string) core.Row {
	return row.New(12).Add(
		col.New(8).Add(
			text.New("Stock por bodega", props.Text{
				Size: 14, Style: fontstyle.Bold, Color: colorPrimary,
			}),
			text.New(warehouseName, props.Text{Top: 6, Size: 10, Color: colorGray}),
		),
	)
}

func tableHeaderRow() core.Row {
	header := props.Text{Size: 9, Style: fontstyle.Bold, Color: colorPrimary}
	return row.New(7).Add(
		col.New(3).Add(text.New("SKU", header)),
		col.New(6).Add(text.New("Producto", header)),
		col.New(3).Add(text.New("Cantidad", props.Text{
			Size: 9, Style: fontstyle.Bold, Color: colorPrimary, Align: align.Right,
		})),
	)
}

func detailRow(r repository.WarehouseStockItem) core.Row {
	cell := props.Text{Size: 9}
	return row.New(6).Add(
		col.New(3).Add(text.New(r.SKU, cell)),
		col.New(6).Add(text.New(r.ProductName, cell)),
		col.New(3).Add(text.New(r.Quantity.String(), props.Text{Size: 9, Align: align.Right})),
	)
}
