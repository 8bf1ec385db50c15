package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

var _ repository.TradeRepository = (*TradeRepo)(nil)

// TradeRepo implementación del puerto TradeRepository sobre PostgreSQL (usable con pool o tx).
// Cabecera en trades, líneas en trade_items con posición para conservar el orden.
type TradeRepo struct {
	q Querier
}

// NewTradeRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTradeRepository(q Querier) *TradeRepo {
	return &TradeRepo{q: q}
}

// Create persiste la cabecera y todas las líneas.
func (r *TradeRepo) Create(trade *entity.TradeTransaction) error {
	if trade.ID == "" {
		trade.ID = uuid.New().String()
	}
	query := `
		INSERT INTO trades (id, type, party_id, invoice_no, transport, remark, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		trade.ID, trade.Type, trade.PartyID, nullIfEmpty(trade.InvoiceNo),
		trade.Transport, nullIfEmpty(trade.Remark), trade.CreatedAt, trade.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert trade: %w", err)
	}
	return r.insertItems(trade)
}

func (r *TradeRepo) insertItems(trade *entity.TradeTransaction) error {
	query := `
		INSERT INTO trade_items (id, trade_id, position, product_id, category_id, warehouse_id, quantity)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	for i, it := range trade.Items {
		_, err := r.q.Exec(context.Background(), query,
			uuid.New().String(), trade.ID, i, it.ProductID, it.CategoryID, it.WarehouseID, it.Quantity,
		)
		if err != nil {
			return fmt.Errorf("insert trade item: %w", err)
		}
	}
	return nil
}

// GetByID obtiene la transacción con sus líneas en el orden original.
func (r *TradeRepo) GetByID(id string) (*entity.TradeTransaction, error) {
	query := `
		SELECT id, type, party_id, invoice_no, transport, remark, created_at, updated_at
		FROM trades WHERE id = $1`
	var t entity.TradeTransaction
	var invoiceNo, remark *string
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&t.ID, &t.Type, &t.PartyID, &invoiceNo, &t.Transport, &remark, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get trade: %w", err)
	}
	if invoiceNo != nil {
		t.InvoiceNo = *invoiceNo
	}
	if remark != nil {
		t.Remark = *remark
	}
	items, err := r.loadItems(t.ID)
	if err != nil {
		return nil, err
	}
	t.Items = items
	return &t, nil
}

func (r *TradeRepo) loadItems(tradeID string) ([]entity.TradeItem, error) {
	query := `
		SELECT product_id, category_id, warehouse_id, quantity
		FROM trade_items WHERE trade_id = $1 ORDER BY position`
	rows, err := r.q.Query(context.Background(), query, tradeID)
	if err != nil {
		return nil, fmt.Errorf("load trade items: %w", err)
	}
	defer rows.Close()
	var items []entity.TradeItem
	for rows.Next() {
		var it entity.TradeItem
		if err := rows.Scan(&it.ProductID, &it.CategoryID, &it.WarehouseID, &it.Quantity); err != nil {
			return nil, fmt.Errorf("scan trade item: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

// Update sobrescribe la cabecera y reemplaza las líneas completas.
func (r *TradeRepo) Update(trade *entity.TradeTransaction) error {
	query := `
		UPDATE trades SET party_id = $2, invoice_no = $3, transport = $4, remark = $5, updated_at = $6
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		trade.ID, trade.PartyID, nullIfEmpty(trade.InvoiceNo), trade.Transport,
		nullIfEmpty(trade.Remark), trade.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update trade: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("update trade: no existe %s", trade.ID)
	}
	if _, err := r.q.Exec(context.Background(), `DELETE FROM trade_items WHERE trade_id = $1`, trade.ID); err != nil {
		return fmt.Errorf("delete trade items: %w", err)
	}
	return r.insertItems(trade)
}

// Delete elimina la transacción y sus líneas.
func (r *TradeRepo) Delete(id string) error {
	if _, err := r.q.Exec(context.Background(), `DELETE FROM trade_items WHERE trade_id = $1`, id); err != nil {
		return fmt.Errorf("delete trade items: %w", err)
	}
	if _, err := r.q.Exec(context.Background(), `DELETE FROM trades WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete trade: %w", err)
	}
	return nil
}

// List lista transacciones filtrando por tipo y/o número de factura.
func (r *TradeRepo) List(tradeType, invoiceNo string, limit, offset int) ([]*entity.TradeTransaction, error) {
	query := `
		SELECT id, type, party_id, invoice_no, transport, remark, created_at, updated_at
		FROM trades`
	args := []any{}
	pos := 1
	where := ""
	if tradeType != "" {
		where = fmt.Sprintf(" WHERE type = $%d", pos)
		args = append(args, tradeType)
		pos++
	}
	if invoiceNo != "" {
		if where == "" {
			where = fmt.Sprintf(" WHERE invoice_no = $%d", pos)
		} else {
			where += fmt.Sprintf(" AND invoice_no = $%d", pos)
		}
		args = append(args, invoiceNo)
		pos++
	}
	query += where + fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list trades: %w", err)
	}
	defer rows.Close()
	var list []*entity.TradeTransaction
	for rows.Next() {
		var t entity.TradeTransaction
		var invNo, remark *string
		if err := rows.Scan(&t.ID, &t.Type, &t.PartyID, &invNo, &t.Transport, &remark, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan trade: %w", err)
		}
		if invNo != nil {
			t.InvoiceNo = *invNo
		}
		if remark != nil {
			t.Remark = *remark
		}
		list = append(list, &t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, t := range list {
		items, err := r.loadItems(t.ID)
		if err != nil {
			return nil, err
		}
		t.Items = items
	}
	return list, nil
}
