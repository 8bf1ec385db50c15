package inventory_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Almacen-api/internal/application/inventory"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/infrastructure/memory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

type transferFixture struct {
	store  *memory.Store
	uc     *inventory.TransferUseCase
	prodID string
	whA    string
	whB    string
}

// buildTransferFixture arma un caso de uso con store en memoria, un producto y
// dos bodegas; la bodega A arranca con 10 unidades.
func buildTransferFixture(t *testing.T) *transferFixture {
	t.Helper()
	store := memory.NewStore()
	catID := store.SeedCategory("Granos")
	prodID := store.SeedProduct("SKU-ARROZ-01", "Arroz 1kg", catID)
	whA := store.SeedWarehouse("Bodega Norte")
	whB := store.SeedWarehouse("Bodega Sur")
	store.SeedStock(prodID, whA, decimal.NewFromInt(10))

	uc := inventory.NewTransferUseCase(
		memory.NewTxRunner(store),
		memory.NewProductRepository(store),
		memory.NewWarehouseRepository(store),
		memory.NewTransferRepository(store),
	)
	return &transferFixture{store: store, uc: uc, prodID: prodID, whA: whA, whB: whB}
}

func qty(n int64) decimal.Decimal { return decimal.NewFromInt(n) }

// ──────────────────────────────────────────────────────────────────────────────
// Traslados
// ──────────────────────────────────────────────────────────────────────────────

func TestTransfer_MueveStockEntreBodegas(t *testing.T) {
	f := buildTransferFixture(t)

	out, err := f.uc.Transfer(context.Background(), inventory.TransferInput{
		ProductID:       f.prodID,
		FromWarehouseID: f.whA,
		ToWarehouseID:   f.whB,
		Quantity:        qty(4),
	})
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.True(t, qty(6).Equal(f.store.StockQuantity(f.prodID, f.whA)), "origen debe quedar en 6")
	assert.True(t, qty(4).Equal(f.store.StockQuantity(f.prodID, f.whB)), "destino debe quedar en 4")
	assert.Equal(t, 2, f.store.MovementCount(), "un movimiento de salida y uno de entrada")
}

func TestTransfer_ConservaElTotal(t *testing.T) {
	f := buildTransferFixture(t)

	_, err := f.uc.Transfer(context.Background(), inventory.TransferInput{
		ProductID:       f.prodID,
		FromWarehouseID: f.whA,
		ToWarehouseID:   f.whB,
		Quantity:        qty(7),
	})
	require.NoError(t, err)

	total := f.store.StockQuantity(f.prodID, f.whA).Add(f.store.StockQuantity(f.prodID, f.whB))
	assert.True(t, qty(10).Equal(total), "el traslado no crea ni destruye stock")
}

func TestTransfer_TrasladoCompletoEliminaLaFilaOrigen(t *testing.T) {
	f := buildTransferFixture(t)

	_, err := f.uc.Transfer(context.Background(), inventory.TransferInput{
		ProductID:       f.prodID,
		FromWarehouseID: f.whA,
		ToWarehouseID:   f.whB,
		Quantity:        qty(10),
	})
	require.NoError(t, err)

	assert.False(t, f.store.StockRowExists(f.prodID, f.whA), "la fila en cero exacto se elimina")
	assert.True(t, qty(10).Equal(f.store.StockQuantity(f.prodID, f.whB)))
}

func TestTransfer_StockInsuficienteNoMutaNada(t *testing.T) {
	f := buildTransferFixture(t)

	_, err := f.uc.Transfer(context.Background(), inventory.TransferInput{
		ProductID:       f.prodID,
		FromWarehouseID: f.whA,
		ToWarehouseID:   f.whB,
		Quantity:        qty(15),
	})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	assert.True(t, qty(10).Equal(f.store.StockQuantity(f.prodID, f.whA)), "el origen no cambia")
	assert.False(t, f.store.StockRowExists(f.prodID, f.whB), "el destino no se crea")
	assert.Equal(t, 0, f.store.MovementCount(), "no queda rastro en el ledger")

	list, err := f.uc.ListTransfers(20, 0)
	require.NoError(t, err)
	assert.Empty(t, list.Items, "el traslado fallido no se registra")
}

func TestTransfer_MismaBodegaEsInvalido(t *testing.T) {
	f := buildTransferFixture(t)

	_, err := f.uc.Transfer(context.Background(), inventory.TransferInput{
		ProductID:       f.prodID,
		FromWarehouseID: f.whA,
		ToWarehouseID:   f.whA,
		Quantity:        qty(1),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestTransfer_CantidadNoPositivaEsInvalida(t *testing.T) {
	f := buildTransferFixture(t)

	for _, q := range []decimal.Decimal{decimal.Zero, qty(-3)} {
		_, err := f.uc.Transfer(context.Background(), inventory.TransferInput{
			ProductID:       f.prodID,
			FromWarehouseID: f.whA,
			ToWarehouseID:   f.whB,
			Quantity:        q,
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
}

func TestTransfer_ProductoInexistenteAbortaAntesDeMutar(t *testing.T) {
	f := buildTransferFixture(t)

	_, err := f.uc.Transfer(context.Background(), inventory.TransferInput{
		ProductID:       "no-existe",
		FromWarehouseID: f.whA,
		ToWarehouseID:   f.whB,
		Quantity:        qty(1),
	})
	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, 0, f.store.MovementCount())
}

func TestTransfer_BodegaInexistenteAborta(t *testing.T) {
	f := buildTransferFixture(t)

	_, err := f.uc.Transfer(context.Background(), inventory.TransferInput{
		ProductID:       f.prodID,
		FromWarehouseID: f.whA,
		ToWarehouseID:   "no-existe",
		Quantity:        qty(1),
	})
	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.True(t, qty(10).Equal(f.store.StockQuantity(f.prodID, f.whA)))
}

func TestGetTransfer_DevuelveElTraslado(t *testing.T) {
	f := buildTransferFixture(t)

	created, err := f.uc.Transfer(context.Background(), inventory.TransferInput{
		ProductID:       f.prodID,
		FromWarehouseID: f.whA,
		ToWarehouseID:   f.whB,
		Quantity:        qty(4),
		Remark:          "reabastecimiento sur",
	})
	require.NoError(t, err)

	got, err := f.uc.GetTransfer(created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "reabastecimiento sur", got.Remark)
	assert.True(t, qty(4).Equal(got.Quantity))
}

func TestGetTransfer_InexistenteDevuelveNil(t *testing.T) {
	f := buildTransferFixture(t)

	got, err := f.uc.GetTransfer("no-existe")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestTransfer_ListaEnOrdenReciente(t *testing.T) {
	f := buildTransferFixture(t)

	for i := 0; i < 3; i++ {
		_, err := f.uc.Transfer(context.Background(), inventory.TransferInput{
			ProductID:       f.prodID,
			FromWarehouseID: f.whA,
			ToWarehouseID:   f.whB,
			Quantity:        qty(1),
		})
		require.NoError(t, err)
	}

	list, err := f.uc.ListTransfers(2, 0)
	require.NoError(t, err)
	assert.Len(t, list.Items, 2, "respeta el límite de página")
}
