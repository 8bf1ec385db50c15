package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implementación de StockRepository sobre PostgreSQL (usable con pool o tx).
// La tabla stock es la única fuente de verdad de cantidades; las vistas por
// producto y por bodega son consultas con JOIN sobre la misma tabla.
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el adaptador de stock. Pasar pool o tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

// Get obtiene el stock actual de un producto en una bodega.
func (r *StockRepo) Get(productID, warehouseID string) (*entity.Stock, error) {
	query := `
		SELECT product_id, warehouse_id, quantity, updated_at
		FROM stock WHERE product_id = $1 AND warehouse_id = $2`
	var s entity.Stock
	err := r.q.QueryRow(context.Background(), query, productID, warehouseID).Scan(
		&s.ProductID, &s.WarehouseID, &s.Quantity, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &entity.Stock{ProductID: productID, WarehouseID: warehouseID, Quantity: decimal.Zero}, nil
		}
		return nil, fmt.Errorf("get stock: %w", err)
	}
	return &s, nil
}

// GetForUpdate obtiene el stock bloqueando la fila hasta el fin de la
// transacción. Una fila inexistente se inserta en cero y queda igualmente
// bloqueada: dos escritores concurrentes sobre un par (producto, bodega) nuevo
// se serializan en el índice único en vez de leer ambos un cero sin lock y
// pisarse el upsert. El DO UPDATE es un no-op que solo toma el lock de fila.
// Si la transacción termina en rollback, la fila en cero desaparece con ella.
func (r *StockRepo) GetForUpdate(productID, warehouseID string) (*entity.Stock, error) {
	query := `
		INSERT INTO stock (product_id, warehouse_id, quantity, updated_at)
		VALUES ($1, $2, 0, now())
		ON CONFLICT (product_id, warehouse_id)
		DO UPDATE SET quantity = stock.quantity
		RETURNING product_id, warehouse_id, quantity, updated_at`
	var s entity.Stock
	err := r.q.QueryRow(context.Background(), query, productID, warehouseID).Scan(
		&s.ProductID, &s.WarehouseID, &s.Quantity, &s.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("get stock for update: %w", err)
	}
	return &s, nil
}

// Upsert inserta o actualiza la cantidad en stock (por producto y bodega).
func (r *StockRepo) Upsert(stock *entity.Stock) error {
	query := `
		INSERT INTO stock (product_id, warehouse_id, quantity, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (product_id, warehouse_id)
		DO UPDATE SET quantity = EXCLUDED.quantity, updated_at = now()`
	_, err := r.q.Exec(context.Background(), query, stock.ProductID, stock.WarehouseID, stock.Quantity)
	if err != nil {
		return fmt.Errorf("upsert stock: %w", err)
	}
	return nil
}

// Delete elimina la fila de stock; se usa cuando la cantidad llega a cero.
func (r *StockRepo) Delete(productID, warehouseID string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM stock WHERE product_id = $1 AND warehouse_id = $2`, productID, warehouseID)
	if err != nil {
		return fmt.Errorf("delete stock: %w", err)
	}
	return nil
}

// GetProductStock devuelve el stock de un producto por bodega, con nombre resuelto.
func (r *StockRepo) GetProductStock(ctx context.Context, productID string) ([]repository.ProductStockItem, error) {
	query := `
		SELECT s.warehouse_id, w.name, s.quantity
		FROM stock s
		JOIN warehouses w ON w.id = s.warehouse_id
		WHERE s.product_id = $1
		ORDER BY w.name`
	rows, err := r.q.Query(ctx, query, productID)
	if err != nil {
		return nil, fmt.Errorf("product stock: %w", err)
	}
	defer rows.Close()
	var list []repository.ProductStockItem
	for rows.Next() {
		var it repository.ProductStockItem
		if err := rows.Scan(&it.WarehouseID, &it.WarehouseName, &it.Quantity); err != nil {
			return nil, fmt.Errorf("scan product stock: %w", err)
		}
		list = append(list, it)
	}
	return list, rows.Err()
}

// GetWarehouseStock devuelve el stock de una bodega por producto, con nombre y SKU resueltos.
func (r *StockRepo) GetWarehouseStock(ctx context.Context, warehouseID string) ([]repository.WarehouseStockItem, error) {
	query := `
		SELECT s.product_id, p.sku, p.name, s.quantity
		FROM stock s
		JOIN products p ON p.id = s.product_id
		WHERE s.warehouse_id = $1
		ORDER BY p.name`
	rows, err := r.q.Query(ctx, query, warehouseID)
	if err != nil {
		return nil, fmt.Errorf("warehouse stock: %w", err)
	}
	defer rows.Close()
	var list []repository.WarehouseStockItem
	for rows.Next() {
		var it repository.WarehouseStockItem
		if err := rows.Scan(&it.ProductID, &it.SKU, &it.ProductName, &it.Quantity); err != nil {
			return nil, fmt.Errorf("scan warehouse stock: %w", err)
		}
		list = append(list, it)
	}
	return list, rows.Err()
}
