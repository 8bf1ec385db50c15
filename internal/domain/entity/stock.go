package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Stock representa el stock actual de un producto en una bodega.
// Es la única fuente de verdad: las vistas por producto y por bodega se derivan
// de esta tabla. La fila se elimina cuando la cantidad llega exactamente a cero
// y nunca se permite cantidad negativa.
type Stock struct {
	ProductID   string
	WarehouseID string
	Quantity    decimal.Decimal
	UpdatedAt   time.Time
}
