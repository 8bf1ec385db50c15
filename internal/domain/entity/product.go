package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto o SKU del catálogo (multi-bodega).
// El stock se maneja por bodega en la tabla stock; SoldTotal es el acumulado
// de unidades vendidas (nunca negativo, se ajusta al revertir ventas).
type Product struct {
	ID         string
	SKU        string
	Name       string
	CategoryID string
	Price      decimal.Decimal
	SoldTotal  decimal.Decimal
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
