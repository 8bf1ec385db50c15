package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transfer representa un traslado de stock entre dos bodegas para un producto.
// Es un registro de auditoría append-only: nunca se actualiza ni se elimina.
type Transfer struct {
	ID              string
	ProductID       string
	FromWarehouseID string
	ToWarehouseID   string
	Quantity        decimal.Decimal
	Remark          string
	CreatedAt       time.Time
}
