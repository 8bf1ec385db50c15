package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de inventario.
const (
	MovementTypeIN       = "IN"       // entrada
	MovementTypeOUT      = "OUT"      // salida
	MovementTypeTRANSFER = "TRANSFER" // traslado entre bodegas
)

// StockMovement representa un movimiento aplicado al ledger de stock.
// ReferenceID enlaza con la transacción o traslado que lo originó.
type StockMovement struct {
	ID          string
	ReferenceID string
	ProductID   string
	WarehouseID string
	Type        string
	Quantity    decimal.Decimal // positivo entrada, negativo salida
	Date        time.Time
	CreatedAt   time.Time
}
