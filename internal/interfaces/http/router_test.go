package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Almacen-api/internal/application/inventory"
	"github.com/jhoicas/Almacen-api/internal/application/report"
	"github.com/jhoicas/Almacen-api/internal/application/trade"
	"github.com/jhoicas/Almacen-api/internal/application/usecase"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/infrastructure/excel"
	"github.com/jhoicas/Almacen-api/internal/infrastructure/memory"
	"github.com/jhoicas/Almacen-api/internal/infrastructure/pdf"
	apphttp "github.com/jhoicas/Almacen-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

type apiFixture struct {
	app    *fiber.App
	store  *memory.Store
	prodID string
	whA    string
	whB    string
	buyer  string
	seller string
}

// buildAPI levanta la API completa sobre el store en memoria, con un producto
// que arranca con 10 unidades en la bodega A.
func buildAPI(t *testing.T) *apiFixture {
	t.Helper()
	store := memory.NewStore()
	catID := store.SeedCategory("Granos")
	prodID := store.SeedProduct("SKU-ARROZ-01", "Arroz 1kg", catID)
	whA := store.SeedWarehouse("Bodega Norte")
	whB := store.SeedWarehouse("Bodega Sur")
	buyer := store.SeedParty("Tienda La Esquina", entity.PartyTypeBuyer)
	seller := store.SeedParty("Distribuidora Andina", entity.PartyTypeSeller)
	store.SeedStock(prodID, whA, decimal.NewFromInt(10))

	categoryRepo := memory.NewCategoryRepository(store)
	productRepo := memory.NewProductRepository(store)
	warehouseRepo := memory.NewWarehouseRepository(store)
	partyRepo := memory.NewPartyRepository(store)
	stockRepo := memory.NewStockRepository(store)
	movRepo := memory.NewStockMovementRepository(store)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		CategoryUC:  usecase.NewCategoryUseCase(categoryRepo),
		ProductUC:   usecase.NewProductUseCase(productRepo, categoryRepo),
		WarehouseUC: usecase.NewWarehouseUseCase(warehouseRepo, stockRepo),
		PartyUC:     usecase.NewPartyUseCase(partyRepo),
		TradeUC: trade.NewTradeUseCase(memory.NewTradeTxRunner(store),
			productRepo, categoryRepo, warehouseRepo, partyRepo, memory.NewTradeRepository(store)),
		TransferUC: inventory.NewTransferUseCase(memory.NewTxRunner(store),
			productRepo, warehouseRepo, memory.NewTransferRepository(store)),
		StockUC:  inventory.NewStockQueryUseCase(stockRepo, movRepo, productRepo, warehouseRepo),
		ReportUC: report.NewStockReportUseCase(warehouseRepo, stockRepo, map[string]report.StockExporter{
			report.FormatXLSX: excel.NewStockExporter(),
			report.FormatPDF:  pdf.NewStockExporter(),
		}),
	})
	return &apiFixture{app: app, store: store, prodID: prodID, whA: whA, whB: whB, buyer: buyer, seller: seller}
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

func (f *apiFixture) do(t *testing.T, method, path string, body any) (*http.Response, envelope) {
	t.Helper()
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := f.app.Test(req, -1)
	require.NoError(t, err)

	var env envelope
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 && resp.Header.Get("Content-Type") != "" &&
		bytes.HasPrefix(bytes.TrimSpace(raw), []byte("{")) {
		require.NoError(t, json.Unmarshal(raw, &env))
	}
	return resp, env
}

// ──────────────────────────────────────────────────────────────────────────────
// Sobre JSON y taxonomía de errores
// ──────────────────────────────────────────────────────────────────────────────

func TestAPI_CrearCategoria(t *testing.T) {
	f := buildAPI(t)

	resp, env := f.do(t, http.MethodPost, "/api/categories/", fiber.Map{"name": "Lácteos"})

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.True(t, env.Success)
	assert.NotEmpty(t, env.Data)
}

func TestAPI_ProductoInexistenteDevuelve404(t *testing.T) {
	f := buildAPI(t)

	resp, env := f.do(t, http.MethodGet, "/api/products/no-existe", nil)

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.False(t, env.Success)
	assert.Equal(t, "NOT_FOUND", env.Error)
}

func TestAPI_VentaSinStockDevuelve409(t *testing.T) {
	f := buildAPI(t)

	resp, env := f.do(t, http.MethodPost, "/api/trades/", fiber.Map{
		"type":      entity.TradeTypeSale,
		"party_id":  f.buyer,
		"transport": "camión",
		"items": []fiber.Map{
			{"product_id": f.prodID, "warehouse_id": f.whA, "quantity": "99"},
		},
	})

	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "INSUFFICIENT_STOCK", env.Error)
	assert.True(t, decimal.NewFromInt(10).Equal(f.store.StockQuantity(f.prodID, f.whA)),
		"el stock queda intacto tras el rechazo")
}

func TestAPI_CompraLuegoVentaFlujoCompleto(t *testing.T) {
	f := buildAPI(t)

	resp, _ := f.do(t, http.MethodPost, "/api/trades/", fiber.Map{
		"type":      entity.TradeTypePurchase,
		"party_id":  f.seller,
		"transport": "camión",
		"items": []fiber.Map{
			{"product_id": f.prodID, "warehouse_id": f.whA, "quantity": "5"},
		},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, _ = f.do(t, http.MethodPost, "/api/trades/", fiber.Map{
		"type":      entity.TradeTypeSale,
		"party_id":  f.buyer,
		"transport": "moto",
		"items": []fiber.Map{
			{"product_id": f.prodID, "warehouse_id": f.whA, "quantity": "12"},
		},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	assert.True(t, decimal.NewFromInt(3).Equal(f.store.StockQuantity(f.prodID, f.whA)))
}

func TestAPI_TrasladoYVistaDeStock(t *testing.T) {
	f := buildAPI(t)

	resp, _ := f.do(t, http.MethodPost, "/api/transfers/", fiber.Map{
		"product_id":        f.prodID,
		"from_warehouse_id": f.whA,
		"to_warehouse_id":   f.whB,
		"quantity":          "4",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, env := f.do(t, http.MethodGet, "/api/products/"+f.prodID+"/stock", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var items []struct {
		WarehouseName string          `json:"warehouse_name"`
		Quantity      decimal.Decimal `json:"quantity"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &items))
	require.Len(t, items, 2)
}

func TestAPI_CuerpoInvalidoDevuelve400(t *testing.T) {
	f := buildAPI(t)

	req := httptest.NewRequest(http.MethodPost, "/api/trades/", bytes.NewReader([]byte("{no-json")))
	req.Header.Set("Content-Type", "application/json")
	resp, err := f.app.Test(req, -1)
	require.NoError(t, err)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAPI_EliminarBodegaConStockDevuelve409(t *testing.T) {
	f := buildAPI(t)

	resp, env := f.do(t, http.MethodDelete, "/api/warehouses/"+f.whA, nil)

	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "CONFLICT", env.Error)
}

func TestAPI_EliminarCompraDevuelve400(t *testing.T) {
	f := buildAPI(t)

	resp, env := f.do(t, http.MethodPost, "/api/trades/", fiber.Map{
		"type":      entity.TradeTypePurchase,
		"party_id":  f.seller,
		"transport": "camión",
		"items": []fiber.Map{
			{"product_id": f.prodID, "warehouse_id": f.whA, "quantity": "5"},
		},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var compra struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &compra))

	resp, env = f.do(t, http.MethodDelete, "/api/trades/"+compra.ID, nil)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "solo las ventas admiten borrado")
	assert.Equal(t, "VALIDATION", env.Error)
}

func TestAPI_ObtenerTrasladoPorID(t *testing.T) {
	f := buildAPI(t)

	resp, env := f.do(t, http.MethodPost, "/api/transfers/", fiber.Map{
		"product_id":        f.prodID,
		"from_warehouse_id": f.whA,
		"to_warehouse_id":   f.whB,
		"quantity":          "2",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var traslado struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &traslado))

	resp, env = f.do(t, http.MethodGet, "/api/transfers/"+traslado.ID, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, env.Success)

	resp, env = f.do(t, http.MethodGet, "/api/transfers/no-existe", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", env.Error)
}

func TestAPI_ExportarStockDeBodega(t *testing.T) {
	f := buildAPI(t)

	req := httptest.NewRequest(http.MethodGet, "/api/warehouses/"+f.whA+"/stock/export?format=xlsx", nil)
	resp, err := f.app.Test(req, -1)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "attachment")
}

func TestAPI_MovimientosExigeUnSoloFiltro(t *testing.T) {
	f := buildAPI(t)

	resp, env := f.do(t, http.MethodGet, "/api/movements", nil)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", env.Error)
}
