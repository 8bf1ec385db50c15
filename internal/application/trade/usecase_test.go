package trade_test

import (
	"context"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/application/trade"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/infrastructure/memory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

type tradeFixture struct {
	store  *memory.Store
	uc     *trade.TradeUseCase
	catID  string
	prodID string
	prod2  string
	whID   string
	seller string
	buyer  string
}

// buildTradeFixture arma el caso de uso completo sobre un store en memoria con
// dos productos, una bodega, un proveedor y un cliente. El producto principal
// arranca con 10 unidades en la bodega.
func buildTradeFixture(t *testing.T) *tradeFixture {
	t.Helper()
	store := memory.NewStore()
	catID := store.SeedCategory("Granos")
	prodID := store.SeedProduct("SKU-ARROZ-01", "Arroz 1kg", catID)
	prod2 := store.SeedProduct("SKU-FRIJOL-01", "Frijol 500g", catID)
	whID := store.SeedWarehouse("Bodega Norte")
	seller := store.SeedParty("Distribuidora Andina", entity.PartyTypeSeller)
	buyer := store.SeedParty("Tienda La Esquina", entity.PartyTypeBuyer)
	store.SeedStock(prodID, whID, decimal.NewFromInt(10))

	uc := trade.NewTradeUseCase(
		memory.NewTradeTxRunner(store),
		memory.NewProductRepository(store),
		memory.NewCategoryRepository(store),
		memory.NewWarehouseRepository(store),
		memory.NewPartyRepository(store),
		memory.NewTradeRepository(store),
	)
	return &tradeFixture{
		store: store, uc: uc,
		catID: catID, prodID: prodID, prod2: prod2, whID: whID,
		seller: seller, buyer: buyer,
	}
}

func qty(n int64) decimal.Decimal { return decimal.NewFromInt(n) }

func (f *tradeFixture) item(prodID string, n int64) dto.TradeItemRequest {
	return dto.TradeItemRequest{ProductID: prodID, WarehouseID: f.whID, Quantity: qty(n)}
}

func (f *tradeFixture) create(t *testing.T, tradeType, partyID string, items ...dto.TradeItemRequest) *dto.TradeResponse {
	t.Helper()
	out, err := f.uc.Create(context.Background(), dto.CreateTradeRequest{
		Type:      tradeType,
		PartyID:   partyID,
		Transport: "camión",
		Items:     items,
	})
	require.NoError(t, err)
	require.NotNil(t, out)
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Crear
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_CompraAumentaStock(t *testing.T) {
	f := buildTradeFixture(t)

	f.create(t, entity.TradeTypePurchase, f.seller, f.item(f.prodID, 5))

	assert.True(t, qty(15).Equal(f.store.StockQuantity(f.prodID, f.whID)))
	assert.Equal(t, 1, f.store.MovementCount())
	assert.True(t, f.store.SoldTotal(f.prodID).IsZero(), "la compra no toca el acumulado vendido")
}

func TestCreate_VentaDescuentaStockYAcumulaVendido(t *testing.T) {
	f := buildTradeFixture(t)

	f.create(t, entity.TradeTypeSale, f.buyer, f.item(f.prodID, 4))

	assert.True(t, qty(6).Equal(f.store.StockQuantity(f.prodID, f.whID)))
	assert.True(t, qty(4).Equal(f.store.SoldTotal(f.prodID)))
}

func TestCreate_VentaQueAgotaElStockEliminaLaFila(t *testing.T) {
	f := buildTradeFixture(t)

	f.create(t, entity.TradeTypeSale, f.buyer, f.item(f.prodID, 10))

	assert.False(t, f.store.StockRowExists(f.prodID, f.whID), "cero exacto elimina la fila")
}

func TestCreate_VentaSinStockSuficienteNoPersisteNada(t *testing.T) {
	f := buildTradeFixture(t)

	_, err := f.uc.Create(context.Background(), dto.CreateTradeRequest{
		Type:      entity.TradeTypeSale,
		PartyID:   f.buyer,
		Transport: "camión",
		Items:     []dto.TradeItemRequest{f.item(f.prodID, 11)},
	})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	assert.True(t, qty(10).Equal(f.store.StockQuantity(f.prodID, f.whID)), "el stock no cambia")
	assert.Equal(t, 0, f.store.MovementCount(), "el ledger queda intacto")
	assert.True(t, f.store.SoldTotal(f.prodID).IsZero())

	list, err := f.uc.List("", "", 20, 0)
	require.NoError(t, err)
	assert.Empty(t, list.Items, "la transacción no se persiste")
}

func TestCreate_FallaEnSegundaLineaReversaLaPrimera(t *testing.T) {
	f := buildTradeFixture(t)
	// prod2 no tiene stock: la segunda línea falla después de aplicar la primera.
	_, err := f.uc.Create(context.Background(), dto.CreateTradeRequest{
		Type:      entity.TradeTypeSale,
		PartyID:   f.buyer,
		Transport: "camión",
		Items: []dto.TradeItemRequest{
			f.item(f.prodID, 3),
			f.item(f.prod2, 1),
		},
	})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	assert.True(t, qty(10).Equal(f.store.StockQuantity(f.prodID, f.whID)),
		"la primera línea ya aplicada se reversa con la transacción")
	assert.Equal(t, 0, f.store.MovementCount())
}

func TestCreate_DevolucionDeVentaReingresa(t *testing.T) {
	f := buildTradeFixture(t)

	f.create(t, entity.TradeTypeSaleReturn, f.buyer, f.item(f.prodID, 2))

	assert.True(t, qty(12).Equal(f.store.StockQuantity(f.prodID, f.whID)))
	assert.True(t, f.store.SoldTotal(f.prodID).IsZero(), "la devolución no ajusta el vendido")
}

func TestCreate_DevolucionDeCompraDescuenta(t *testing.T) {
	f := buildTradeFixture(t)

	f.create(t, entity.TradeTypePurchaseReturn, f.seller, f.item(f.prodID, 3))

	assert.True(t, qty(7).Equal(f.store.StockQuantity(f.prodID, f.whID)))
}

func TestCreate_ContraparteDeTipoEquivocadoEsInvalida(t *testing.T) {
	f := buildTradeFixture(t)

	// Una compra contra un cliente no tiene sentido.
	_, err := f.uc.Create(context.Background(), dto.CreateTradeRequest{
		Type:      entity.TradeTypePurchase,
		PartyID:   f.buyer,
		Transport: "camión",
		Items:     []dto.TradeItemRequest{f.item(f.prodID, 1)},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// Y una venta contra un proveedor tampoco.
	_, err = f.uc.Create(context.Background(), dto.CreateTradeRequest{
		Type:      entity.TradeTypeSale,
		PartyID:   f.seller,
		Transport: "camión",
		Items:     []dto.TradeItemRequest{f.item(f.prodID, 1)},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreate_ReferenciaInexistenteAbortaSinMutar(t *testing.T) {
	f := buildTradeFixture(t)

	cases := []dto.CreateTradeRequest{
		{Type: entity.TradeTypePurchase, PartyID: "no-existe", Transport: "camión",
			Items: []dto.TradeItemRequest{f.item(f.prodID, 1)}},
		{Type: entity.TradeTypePurchase, PartyID: f.seller, Transport: "camión",
			Items: []dto.TradeItemRequest{{ProductID: "no-existe", WarehouseID: f.whID, Quantity: qty(1)}}},
		{Type: entity.TradeTypePurchase, PartyID: f.seller, Transport: "camión",
			Items: []dto.TradeItemRequest{{ProductID: f.prodID, WarehouseID: "no-existe", Quantity: qty(1)}}},
	}
	for _, in := range cases {
		_, err := f.uc.Create(context.Background(), in)
		require.ErrorIs(t, err, domain.ErrNotFound)
	}
	assert.Equal(t, 0, f.store.MovementCount(), "ninguna validación fallida toca el ledger")
	assert.True(t, qty(10).Equal(f.store.StockQuantity(f.prodID, f.whID)))
}

func TestCreate_CamposObligatorios(t *testing.T) {
	f := buildTradeFixture(t)

	cases := []dto.CreateTradeRequest{
		{Type: "REGALO", PartyID: f.seller, Transport: "camión",
			Items: []dto.TradeItemRequest{f.item(f.prodID, 1)}},
		{Type: entity.TradeTypePurchase, PartyID: "", Transport: "camión",
			Items: []dto.TradeItemRequest{f.item(f.prodID, 1)}},
		{Type: entity.TradeTypePurchase, PartyID: f.seller, Transport: "",
			Items: []dto.TradeItemRequest{f.item(f.prodID, 1)}},
		{Type: entity.TradeTypePurchase, PartyID: f.seller, Transport: "camión", Items: nil},
		{Type: entity.TradeTypePurchase, PartyID: f.seller, Transport: "camión",
			Items: []dto.TradeItemRequest{f.item(f.prodID, 0)}},
	}
	for _, in := range cases {
		_, err := f.uc.Create(context.Background(), in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
}

func TestCreate_ComprasConcurrentesEnParNuevoSeSuman(t *testing.T) {
	f := buildTradeFixture(t)

	// prod2 no tiene fila de stock: el par (producto, bodega) nace con estas
	// compras. Ningún delta concurrente debe perderse por una lectura en cero
	// sin bloqueo.
	cantidades := []int64{5, 3}
	errs := make([]error, len(cantidades))
	var wg sync.WaitGroup
	for i, n := range cantidades {
		wg.Add(1)
		go func(i int, n int64) {
			defer wg.Done()
			_, errs[i] = f.uc.Create(context.Background(), dto.CreateTradeRequest{
				Type:      entity.TradeTypePurchase,
				PartyID:   f.seller,
				Transport: "camión",
				Items:     []dto.TradeItemRequest{f.item(f.prod2, n)},
			})
		}(i, n)
	}
	wg.Wait()

	for _, err := range errs {
		require.NoError(t, err)
	}
	assert.True(t, qty(8).Equal(f.store.StockQuantity(f.prod2, f.whID)),
		"las compras concurrentes se serializan y se suman: 5 + 3 = 8")
	assert.Equal(t, 2, f.store.MovementCount())
}

func TestCreate_TotalQuantitySumaLasLineas(t *testing.T) {
	f := buildTradeFixture(t)

	out := f.create(t, entity.TradeTypePurchase, f.seller,
		f.item(f.prodID, 5), f.item(f.prod2, 3))

	assert.True(t, qty(8).Equal(out.TotalQuantity), "total_quantity agrega todas las líneas")
}

func TestCreate_LineaHeredaCategoriaDelProducto(t *testing.T) {
	f := buildTradeFixture(t)

	out := f.create(t, entity.TradeTypePurchase, f.seller, f.item(f.prodID, 1))

	require.Len(t, out.Items, 1)
	assert.Equal(t, f.catID, out.Items[0].CategoryID, "sin categoría explícita hereda la del producto")
}

// ──────────────────────────────────────────────────────────────────────────────
// Actualizar
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdate_LineasIdenticasDejanElStockIgual(t *testing.T) {
	f := buildTradeFixture(t)
	created := f.create(t, entity.TradeTypeSale, f.buyer, f.item(f.prodID, 4))

	_, err := f.uc.Update(context.Background(), created.ID, dto.UpdateTradeRequest{
		PartyID:   f.buyer,
		Transport: "camión",
		Items:     []dto.TradeItemRequest{f.item(f.prodID, 4)},
	})
	require.NoError(t, err)

	assert.True(t, qty(6).Equal(f.store.StockQuantity(f.prodID, f.whID)),
		"reversa y reaplica dejan el mismo saldo")
	assert.True(t, qty(4).Equal(f.store.SoldTotal(f.prodID)))
}

func TestUpdate_CambioDeCantidadAjustaElStock(t *testing.T) {
	f := buildTradeFixture(t)
	created := f.create(t, entity.TradeTypeSale, f.buyer, f.item(f.prodID, 4))

	_, err := f.uc.Update(context.Background(), created.ID, dto.UpdateTradeRequest{
		PartyID:   f.buyer,
		Transport: "camión",
		Items:     []dto.TradeItemRequest{f.item(f.prodID, 2)},
	})
	require.NoError(t, err)

	assert.True(t, qty(8).Equal(f.store.StockQuantity(f.prodID, f.whID)),
		"10 - 4 + 4 - 2 = 8")
	assert.True(t, qty(2).Equal(f.store.SoldTotal(f.prodID)), "el vendido sigue a las líneas vigentes")
}

func TestUpdate_NuevaCantidadSinStockAbortaYNadaCambia(t *testing.T) {
	f := buildTradeFixture(t)
	created := f.create(t, entity.TradeTypeSale, f.buyer, f.item(f.prodID, 4))

	// La reversa devolvería 10, pero la nueva línea pide 20.
	_, err := f.uc.Update(context.Background(), created.ID, dto.UpdateTradeRequest{
		PartyID:   f.buyer,
		Transport: "camión",
		Items:     []dto.TradeItemRequest{f.item(f.prodID, 20)},
	})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	assert.True(t, qty(6).Equal(f.store.StockQuantity(f.prodID, f.whID)),
		"la transacción original sigue aplicada")
	got, err := f.uc.GetByID(created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, qty(4).Equal(got.Items[0].Quantity), "las líneas no se sobrescriben")
}

func TestUpdate_TransaccionInexistente(t *testing.T) {
	f := buildTradeFixture(t)

	_, err := f.uc.Update(context.Background(), "no-existe", dto.UpdateTradeRequest{
		PartyID:   f.buyer,
		Transport: "camión",
		Items:     []dto.TradeItemRequest{f.item(f.prodID, 1)},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Eliminar
// ──────────────────────────────────────────────────────────────────────────────

func TestDelete_VentaDevuelveElStockYDescuentaElVendido(t *testing.T) {
	f := buildTradeFixture(t)
	created := f.create(t, entity.TradeTypeSale, f.buyer, f.item(f.prodID, 4))

	err := f.uc.Delete(context.Background(), created.ID)
	require.NoError(t, err)

	assert.True(t, qty(10).Equal(f.store.StockQuantity(f.prodID, f.whID)))
	assert.True(t, f.store.SoldTotal(f.prodID).IsZero(), "el acumulado vendido se reversa con piso en cero")

	got, err := f.uc.GetByID(created.ID)
	require.NoError(t, err)
	assert.Nil(t, got, "la venta eliminada desaparece")
}

func TestDelete_SoloLasVentasAdmitenBorrado(t *testing.T) {
	f := buildTradeFixture(t)
	compra := f.create(t, entity.TradeTypePurchase, f.seller, f.item(f.prodID, 5))

	err := f.uc.Delete(context.Background(), compra.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	got, err := f.uc.GetByID(compra.ID)
	require.NoError(t, err)
	assert.NotNil(t, got, "la compra sigue existiendo")
}

func TestDelete_TransaccionInexistente(t *testing.T) {
	f := buildTradeFixture(t)
	err := f.uc.Delete(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Listar
// ──────────────────────────────────────────────────────────────────────────────

func TestList_FiltraPorTipoYFactura(t *testing.T) {
	f := buildTradeFixture(t)
	f.create(t, entity.TradeTypePurchase, f.seller, f.item(f.prodID, 5))
	out, err := f.uc.Create(context.Background(), dto.CreateTradeRequest{
		Type:      entity.TradeTypeSale,
		PartyID:   f.buyer,
		InvoiceNo: "FAC-001",
		Transport: "camión",
		Items:     []dto.TradeItemRequest{f.item(f.prodID, 2)},
	})
	require.NoError(t, err)

	ventas, err := f.uc.List(entity.TradeTypeSale, "", 20, 0)
	require.NoError(t, err)
	require.Len(t, ventas.Items, 1)
	assert.Equal(t, out.ID, ventas.Items[0].ID)

	porFactura, err := f.uc.List("", "FAC-001", 20, 0)
	require.NoError(t, err)
	require.Len(t, porFactura.Items, 1)

	todo, err := f.uc.List("", "", 20, 0)
	require.NoError(t, err)
	assert.Len(t, todo.Items, 2)
}
