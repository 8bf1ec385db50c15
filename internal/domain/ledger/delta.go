package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
)

// DeltaFor devuelve el delta con signo que una línea de transacción aplica al stock
// (servicio de dominio). Compra y devolución de venta entran stock (+); venta y
// devolución de compra lo sacan (−). La cantidad debe ser positiva.
func DeltaFor(tradeType string, quantity decimal.Decimal) (decimal.Decimal, error) {
	if !quantity.IsPositive() {
		return decimal.Zero, domain.ErrInvalidInput
	}
	switch tradeType {
	case entity.TradeTypePurchase, entity.TradeTypeSaleReturn:
		return quantity, nil
	case entity.TradeTypeSale, entity.TradeTypePurchaseReturn:
		return quantity.Neg(), nil
	}
	return decimal.Zero, domain.ErrInvalidInput
}

// MovementTypeFor devuelve el tipo de movimiento de auditoría según el signo del delta.
func MovementTypeFor(delta decimal.Decimal) string {
	if delta.IsNegative() {
		return entity.MovementTypeOUT
	}
	return entity.MovementTypeIN
}
