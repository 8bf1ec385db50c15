package trade

import (
	"context"

	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD con los repositorios
// que una mutación de transacción comercial necesita: stock y movimientos para el
// ledger, producto para el acumulado vendido y trade para el documento mismo.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		stockRepo repository.StockRepository,
		movRepo repository.StockMovementRepository,
		productRepo repository.ProductRepository,
		tradeRepo repository.TradeRepository,
	) error) error
}
