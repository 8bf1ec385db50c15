package repository

import "github.com/jhoicas/Almacen-api/internal/domain/entity"

// TradeRepository define el puerto de persistencia para transacciones comerciales.
type TradeRepository interface {
	Create(trade *entity.TradeTransaction) error
	// GetByID devuelve la transacción con sus líneas en el orden original.
	GetByID(id string) (*entity.TradeTransaction, error)
	// Update reemplaza cabecera y líneas completas.
	Update(trade *entity.TradeTransaction) error
	Delete(id string) error
	// List filtra por tipo y/o número de factura si no son vacíos.
	List(tradeType, invoiceNo string, limit, offset int) ([]*entity.TradeTransaction, error)
}
