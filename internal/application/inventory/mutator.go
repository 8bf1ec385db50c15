package inventory

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// ApplyDelta aplica un delta con signo al stock de (producto, bodega) y registra el
// movimiento en el ledger de auditoría. Debe invocarse SIEMPRE dentro de una
// transacción (los repos recibidos van atados a la tx del caller).
//
// Bloquea la fila con SELECT FOR UPDATE; una fila inexistente cuenta como cero.
// Si el resultado sería negativo retorna ErrInsufficientStock sin persistir nada:
// el sistema anterior creaba entradas negativas implícitas y eso se rechaza aquí.
// Si el resultado es exactamente cero la fila se elimina.
func ApplyDelta(
	stockRepo repository.StockRepository,
	movRepo repository.StockMovementRepository,
	referenceID, movType, productID, warehouseID string,
	delta decimal.Decimal,
	now time.Time,
) error {
	if delta.IsZero() {
		return domain.ErrInvalidInput
	}
	stock, err := stockRepo.GetForUpdate(productID, warehouseID)
	if err != nil {
		return err
	}
	newQty := stock.Quantity.Add(delta)
	switch {
	case newQty.IsNegative():
		return domain.ErrInsufficientStock
	case newQty.IsZero():
		if err := stockRepo.Delete(productID, warehouseID); err != nil {
			return err
		}
	default:
		stock.Quantity = newQty
		stock.UpdatedAt = now
		if err := stockRepo.Upsert(stock); err != nil {
			return err
		}
	}
	mov := &entity.StockMovement{
		ReferenceID: referenceID,
		ProductID:   productID,
		WarehouseID: warehouseID,
		Type:        movType,
		Quantity:    delta,
		Date:        now,
		CreatedAt:   now,
	}
	return movRepo.Create(mov)
}
