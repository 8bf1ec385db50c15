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

func buildStockQueryFixture(t *testing.T) (*memory.Store, *inventory.StockQueryUseCase) {
	t.Helper()
	store := memory.NewStore()
	uc := inventory.NewStockQueryUseCase(
		memory.NewStockRepository(store),
		memory.NewStockMovementRepository(store),
		memory.NewProductRepository(store),
		memory.NewWarehouseRepository(store),
	)
	return store, uc
}

func TestProductStock_VistaPorBodega(t *testing.T) {
	store, uc := buildStockQueryFixture(t)
	catID := store.SeedCategory("Granos")
	prodID := store.SeedProduct("SKU-FRIJOL-01", "Frijol 500g", catID)
	whA := store.SeedWarehouse("Bodega Norte")
	whB := store.SeedWarehouse("Bodega Sur")
	store.SeedStock(prodID, whA, decimal.NewFromInt(3))
	store.SeedStock(prodID, whB, decimal.NewFromInt(8))

	items, err := uc.ProductStock(context.Background(), prodID)
	require.NoError(t, err)
	require.Len(t, items, 2)
	// Ordenada por nombre de bodega.
	assert.Equal(t, "Bodega Norte", items[0].WarehouseName)
	assert.True(t, decimal.NewFromInt(3).Equal(items[0].Quantity))
	assert.Equal(t, "Bodega Sur", items[1].WarehouseName)
}

func TestProductStock_ProductoInexistente(t *testing.T) {
	_, uc := buildStockQueryFixture(t)
	_, err := uc.ProductStock(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestWarehouseStock_VistaPorProducto(t *testing.T) {
	store, uc := buildStockQueryFixture(t)
	catID := store.SeedCategory("Granos")
	arroz := store.SeedProduct("SKU-ARROZ-01", "Arroz 1kg", catID)
	frijol := store.SeedProduct("SKU-FRIJOL-01", "Frijol 500g", catID)
	wh := store.SeedWarehouse("Bodega Centro")
	store.SeedStock(arroz, wh, decimal.NewFromInt(5))
	store.SeedStock(frijol, wh, decimal.NewFromInt(2))

	items, err := uc.WarehouseStock(context.Background(), wh)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "SKU-ARROZ-01", items[0].SKU, "ordenada por nombre de producto")
}

func TestWarehouseStock_BodegaVaciaDevuelveListaVacia(t *testing.T) {
	store, uc := buildStockQueryFixture(t)
	wh := store.SeedWarehouse("Bodega Vacía")

	items, err := uc.WarehouseStock(context.Background(), wh)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestMovements_ExigeExactamenteUnFiltro(t *testing.T) {
	_, uc := buildStockQueryFixture(t)

	// Ninguno: inválido.
	_, err := uc.Movements("", "", nil, nil, 20, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// Ambos: inválido.
	_, err = uc.Movements("p1", "w1", nil, nil, 20, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
