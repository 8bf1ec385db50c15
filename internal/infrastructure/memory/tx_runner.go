package memory

import (
	"context"

	"github.com/jhoicas/Almacen-api/internal/application/inventory"
	"github.com/jhoicas/Almacen-api/internal/application/trade"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// TxRunner emula la atomicidad de una transacción de BD con copia y
// restauración del estado: si fn falla, el store vuelve exactamente al estado
// previo. txMu serializa las transacciones igual que los locks de fila en
// postgres.
type TxRunner struct {
	s *Store
}

// NewTxRunner construye el runner de inventario.
func NewTxRunner(s *Store) *TxRunner {
	return &TxRunner{s: s}
}

var _ inventory.TxRunner = (*TxRunner)(nil)

func (r *TxRunner) Run(ctx context.Context, fn func(
	stockRepo repository.StockRepository,
	movRepo repository.StockMovementRepository,
	transferRepo repository.TransferRepository,
) error) error {
	r.s.txMu.Lock()
	defer r.s.txMu.Unlock()

	r.s.mu.Lock()
	snap := r.s.snapshot()
	r.s.mu.Unlock()

	err := fn(NewStockRepository(r.s), NewStockMovementRepository(r.s), NewTransferRepository(r.s))
	if err != nil {
		r.s.mu.Lock()
		r.s.restore(snap)
		r.s.mu.Unlock()
	}
	return err
}

// TradeTxRunner es el análogo para transacciones comerciales.
type TradeTxRunner struct {
	s *Store
}

// NewTradeTxRunner construye el runner de trades.
func NewTradeTxRunner(s *Store) *TradeTxRunner {
	return &TradeTxRunner{s: s}
}

var _ trade.TxRunner = (*TradeTxRunner)(nil)

func (r *TradeTxRunner) Run(ctx context.Context, fn func(
	stockRepo repository.StockRepository,
	movRepo repository.StockMovementRepository,
	productRepo repository.ProductRepository,
	tradeRepo repository.TradeRepository,
) error) error {
	r.s.txMu.Lock()
	defer r.s.txMu.Unlock()

	r.s.mu.Lock()
	snap := r.s.snapshot()
	r.s.mu.Unlock()

	err := fn(NewStockRepository(r.s), NewStockMovementRepository(r.s),
		NewProductRepository(r.s), NewTradeRepository(r.s))
	if err != nil {
		r.s.mu.Lock()
		r.s.restore(snap)
		r.s.mu.Unlock()
	}
	return err
}
