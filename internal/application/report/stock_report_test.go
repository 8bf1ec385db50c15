package report_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Almacen-api/internal/application/report"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/infrastructure/excel"
	"github.com/jhoicas/Almacen-api/internal/infrastructure/memory"
	"github.com/jhoicas/Almacen-api/internal/infrastructure/pdf"
)

func buildReportFixture(t *testing.T) (*memory.Store, *report.StockReportUseCase, string) {
	t.Helper()
	store := memory.NewStore()
	catID := store.SeedCategory("Granos")
	prodID := store.SeedProduct("SKU-ARROZ-01", "Arroz 1kg", catID)
	whID := store.SeedWarehouse("Bodega Norte")
	store.SeedStock(prodID, whID, decimal.NewFromInt(12))

	uc := report.NewStockReportUseCase(
		memory.NewWarehouseRepository(store),
		memory.NewStockRepository(store),
		map[string]report.StockExporter{
			report.FormatXLSX: excel.NewStockExporter(),
			report.FormatPDF:  pdf.NewStockExporter(),
		},
	)
	return store, uc, whID
}

func TestExport_XLSXGeneraUnArchivoValido(t *testing.T) {
	_, uc, whID := buildReportFixture(t)

	out, err := uc.Export(context.Background(), whID, report.FormatXLSX)
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.NotEmpty(t, out.Content)
	// Un .xlsx es un ZIP: firma PK.
	assert.True(t, bytes.HasPrefix(out.Content, []byte("PK")), "el xlsx debe ser un contenedor ZIP")
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", out.ContentType)
	assert.Equal(t, "stock-Bodega Norte.xlsx", out.FileName)
}

func TestExport_PDFGeneraUnArchivoValido(t *testing.T) {
	_, uc, whID := buildReportFixture(t)

	out, err := uc.Export(context.Background(), whID, report.FormatPDF)
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.True(t, bytes.HasPrefix(out.Content, []byte("%PDF")), "el binario debe ser un PDF")
	assert.Equal(t, "application/pdf", out.ContentType)
}

func TestExport_FormatoDesconocidoEsInvalido(t *testing.T) {
	_, uc, whID := buildReportFixture(t)

	_, err := uc.Export(context.Background(), whID, "csv")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestExport_BodegaInexistente(t *testing.T) {
	_, uc, _ := buildReportFixture(t)

	_, err := uc.Export(context.Background(), "no-existe", report.FormatXLSX)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
