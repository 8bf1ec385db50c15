package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductStockItemDTO stock de un producto en una bodega (vista por producto).
type ProductStockItemDTO struct {
	WarehouseID   string          `json:"warehouse_id"`
	WarehouseName string          `json:"warehouse_name"`
	Quantity      decimal.Decimal `json:"quantity"`
}

// WarehouseStockItemDTO stock de un producto dentro de una bodega (vista por bodega).
type WarehouseStockItemDTO struct {
	ProductID   string          `json:"product_id"`
	SKU         string          `json:"sku"`
	ProductName string          `json:"product_name"`
	Quantity    decimal.Decimal `json:"quantity"`
}

// StockMovementResponse movimiento del ledger de inventario.
type StockMovementResponse struct {
	ID          string          `json:"id"`
	ReferenceID string          `json:"reference_id"`
	ProductID   string          `json:"product_id"`
	WarehouseID string          `json:"warehouse_id"`
	Type        string          `json:"type"`
	Quantity    decimal.Decimal `json:"quantity"`
	Date        time.Time       `json:"date"`
}
