package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
)

// ProductStockItem fila de la vista "stock de un producto por bodega".
type ProductStockItem struct {
	WarehouseID   string
	WarehouseName string
	Quantity      decimal.Decimal
}

// WarehouseStockItem fila de la vista "stock de una bodega por producto".
type WarehouseStockItem struct {
	ProductID   string
	SKU         string
	ProductName string
	Quantity    decimal.Decimal
}

// StockRepository define el puerto para consultar/actualizar stock por producto+bodega.
// Las mutaciones se usan solo dentro de transacciones para garantizar consistencia.
type StockRepository interface {
	Get(productID, warehouseID string) (*entity.Stock, error)
	// GetForUpdate devuelve la fila bloqueada hasta el fin de la transacción.
	// Si no existe, se materializa en cero dentro de la transacción y queda
	// bloqueada igual, de modo que los escritores concurrentes sobre el mismo
	// par (producto, bodega) siempre se serializan.
	GetForUpdate(productID, warehouseID string) (*entity.Stock, error)
	Upsert(stock *entity.Stock) error
	// Delete elimina la fila; se invoca cuando la cantidad llega exactamente a cero.
	Delete(productID, warehouseID string) error

	// GetProductStock devuelve el stock de un producto en todas las bodegas, con
	// nombre de bodega resuelto. GetWarehouseStock es la vista espejo.
	GetProductStock(ctx context.Context, productID string) ([]ProductStockItem, error)
	GetWarehouseStock(ctx context.Context, warehouseID string) ([]WarehouseStockItem, error)
}
