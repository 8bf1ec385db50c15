package memory

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

var (
	_ repository.CategoryRepository      = (*CategoryRepo)(nil)
	_ repository.ProductRepository       = (*ProductRepo)(nil)
	_ repository.WarehouseRepository     = (*WarehouseRepo)(nil)
	_ repository.PartyRepository         = (*PartyRepo)(nil)
	_ repository.StockRepository         = (*StockRepo)(nil)
	_ repository.StockMovementRepository = (*StockMovementRepo)(nil)
	_ repository.TradeRepository         = (*TradeRepo)(nil)
	_ repository.TransferRepository      = (*TransferRepo)(nil)
)

// ─── Category ────────────────────────────────────────────────────────────────

// CategoryRepo implementa repository.CategoryRepository en memoria.
type CategoryRepo struct{ s *Store }

// NewCategoryRepository construye el repositorio.
func NewCategoryRepository(s *Store) *CategoryRepo { return &CategoryRepo{s: s} }

func (r *CategoryRepo) Create(category *entity.Category) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, c := range r.s.categories {
		if c.Name == category.Name {
			return domain.ErrDuplicate
		}
	}
	r.s.categories[category.ID] = *category
	return nil
}

func (r *CategoryRepo) GetByID(id string) (*entity.Category, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if c, ok := r.s.categories[id]; ok {
		return &c, nil
	}
	return nil, nil
}

func (r *CategoryRepo) List(limit, offset int) ([]*entity.Category, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	all := make([]entity.Category, 0, len(r.s.categories))
	for _, c := range r.s.categories {
		all = append(all, c)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })
	out := make([]*entity.Category, 0, len(all))
	for _, c := range paginate(all, limit, offset) {
		c := c
		out = append(out, &c)
	}
	return out, nil
}

func (r *CategoryRepo) Update(category *entity.Category) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	_, ok := r.s.categories[category.ID]
	if ok {
		r.s.categories[category.ID] = *category
	}
	return notFoundIfMissing(ok)
}

func (r *CategoryRepo) Delete(id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	_, ok := r.s.categories[id]
	delete(r.s.categories, id)
	return notFoundIfMissing(ok)
}

// ─── Product ─────────────────────────────────────────────────────────────────

// ProductRepo implementa repository.ProductRepository en memoria.
type ProductRepo struct{ s *Store }

// NewProductRepository construye el repositorio.
func NewProductRepository(s *Store) *ProductRepo { return &ProductRepo{s: s} }

func (r *ProductRepo) Create(product *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, p := range r.s.products {
		if p.SKU == product.SKU {
			return domain.ErrDuplicate
		}
	}
	r.s.products[product.ID] = *product
	return nil
}

func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if p, ok := r.s.products[id]; ok {
		return &p, nil
	}
	return nil, nil
}

func (r *ProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, p := range r.s.products {
		if p.SKU == sku {
			p := p
			return &p, nil
		}
	}
	return nil, nil
}

func (r *ProductRepo) Update(product *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	_, ok := r.s.products[product.ID]
	if ok {
		r.s.products[product.ID] = *product
	}
	return notFoundIfMissing(ok)
}

// AdjustSoldTotal suma delta al acumulado vendido con piso en cero, igual que
// el GREATEST(sold_total + delta, 0) del repositorio postgres.
func (r *ProductRepo) AdjustSoldTotal(productID string, delta decimal.Decimal) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.products[productID]
	if !ok {
		return domain.ErrNotFound
	}
	total := p.SoldTotal.Add(delta)
	if total.IsNegative() {
		total = decimal.Zero
	}
	p.SoldTotal = total
	p.UpdatedAt = time.Now()
	r.s.products[productID] = p
	return nil
}

func (r *ProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	all := make([]entity.Product, 0, len(r.s.products))
	for _, p := range r.s.products {
		all = append(all, p)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })
	out := make([]*entity.Product, 0, len(all))
	for _, p := range paginate(all, limit, offset) {
		p := p
		out = append(out, &p)
	}
	return out, nil
}

func (r *ProductRepo) Delete(id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	_, ok := r.s.products[id]
	delete(r.s.products, id)
	return notFoundIfMissing(ok)
}

// ─── Warehouse ───────────────────────────────────────────────────────────────

// WarehouseRepo implementa repository.WarehouseRepository en memoria.
type WarehouseRepo struct{ s *Store }

// NewWarehouseRepository construye el repositorio.
func NewWarehouseRepository(s *Store) *WarehouseRepo { return &WarehouseRepo{s: s} }

func (r *WarehouseRepo) Create(warehouse *entity.Warehouse) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.warehouses[warehouse.ID] = *warehouse
	return nil
}

func (r *WarehouseRepo) GetByID(id string) (*entity.Warehouse, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if w, ok := r.s.warehouses[id]; ok {
		return &w, nil
	}
	return nil, nil
}

func (r *WarehouseRepo) Update(warehouse *entity.Warehouse) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	_, ok := r.s.warehouses[warehouse.ID]
	if ok {
		r.s.warehouses[warehouse.ID] = *warehouse
	}
	return notFoundIfMissing(ok)
}

func (r *WarehouseRepo) List(limit, offset int) ([]*entity.Warehouse, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	all := make([]entity.Warehouse, 0, len(r.s.warehouses))
	for _, w := range r.s.warehouses {
		all = append(all, w)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })
	out := make([]*entity.Warehouse, 0, len(all))
	for _, w := range paginate(all, limit, offset) {
		w := w
		out = append(out, &w)
	}
	return out, nil
}

func (r *WarehouseRepo) Delete(id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	_, ok := r.s.warehouses[id]
	delete(r.s.warehouses, id)
	return notFoundIfMissing(ok)
}

// ─── Party ───────────────────────────────────────────────────────────────────

// PartyRepo implementa repository.PartyRepository en memoria.
type PartyRepo struct{ s *Store }

// NewPartyRepository construye el repositorio.
func NewPartyRepository(s *Store) *PartyRepo { return &PartyRepo{s: s} }

func (r *PartyRepo) Create(party *entity.Party) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.parties[party.ID] = *party
	return nil
}

func (r *PartyRepo) GetByID(id string) (*entity.Party, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if p, ok := r.s.parties[id]; ok {
		return &p, nil
	}
	return nil, nil
}

func (r *PartyRepo) Update(party *entity.Party) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	_, ok := r.s.parties[party.ID]
	if ok {
		r.s.parties[party.ID] = *party
	}
	return notFoundIfMissing(ok)
}

func (r *PartyRepo) List(partyType string, limit, offset int) ([]*entity.Party, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	all := make([]entity.Party, 0, len(r.s.parties))
	for _, p := range r.s.parties {
		if partyType != "" && p.Type != partyType {
			continue
		}
		all = append(all, p)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })
	out := make([]*entity.Party, 0, len(all))
	for _, p := range paginate(all, limit, offset) {
		p := p
		out = append(out, &p)
	}
	return out, nil
}

func (r *PartyRepo) Delete(id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	_, ok := r.s.parties[id]
	delete(r.s.parties, id)
	return notFoundIfMissing(ok)
}

// ─── Stock ───────────────────────────────────────────────────────────────────

// StockRepo implementa repository.StockRepository en memoria.
type StockRepo struct{ s *Store }

// NewStockRepository construye el repositorio.
func NewStockRepository(s *Store) *StockRepo { return &StockRepo{s: s} }

func (r *StockRepo) Get(productID, warehouseID string) (*entity.Stock, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.get(productID, warehouseID), nil
}

// GetForUpdate en memoria no bloquea nada: el lock del Store serializa.
func (r *StockRepo) GetForUpdate(productID, warehouseID string) (*entity.Stock, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.get(productID, warehouseID), nil
}

func (r *StockRepo) get(productID, warehouseID string) *entity.Stock {
	if row, ok := r.s.stock[stockKey(productID, warehouseID)]; ok {
		return &row
	}
	// La fila inexistente cuenta como cero.
	return &entity.Stock{ProductID: productID, WarehouseID: warehouseID, Quantity: decimal.Zero}
}

func (r *StockRepo) Upsert(stock *entity.Stock) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.stock[stockKey(stock.ProductID, stock.WarehouseID)] = *stock
	return nil
}

func (r *StockRepo) Delete(productID, warehouseID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.stock, stockKey(productID, warehouseID))
	return nil
}

func (r *StockRepo) GetProductStock(ctx context.Context, productID string) ([]repository.ProductStockItem, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var items []repository.ProductStockItem
	for _, row := range r.s.stock {
		if row.ProductID != productID {
			continue
		}
		name := ""
		if w, ok := r.s.warehouses[row.WarehouseID]; ok {
			name = w.Name
		}
		items = append(items, repository.ProductStockItem{
			WarehouseID:   row.WarehouseID,
			WarehouseName: name,
			Quantity:      row.Quantity,
		})
	}
	sort.Slice(items, func(i, j int) bool { return items[i].WarehouseName < items[j].WarehouseName })
	return items, nil
}

func (r *StockRepo) GetWarehouseStock(ctx context.Context, warehouseID string) ([]repository.WarehouseStockItem, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var items []repository.WarehouseStockItem
	for _, row := range r.s.stock {
		if row.WarehouseID != warehouseID {
			continue
		}
		var sku, name string
		if p, ok := r.s.products[row.ProductID]; ok {
			sku, name = p.SKU, p.Name
		}
		items = append(items, repository.WarehouseStockItem{
			ProductID:   row.ProductID,
			SKU:         sku,
			ProductName: name,
			Quantity:    row.Quantity,
		})
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ProductName < items[j].ProductName })
	return items, nil
}

// ─── Stock movements ─────────────────────────────────────────────────────────

// StockMovementRepo implementa repository.StockMovementRepository en memoria.
type StockMovementRepo struct{ s *Store }

// NewStockMovementRepository construye el repositorio.
func NewStockMovementRepository(s *Store) *StockMovementRepo { return &StockMovementRepo{s: s} }

func (r *StockMovementRepo) Create(movement *entity.StockMovement) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if movement.ID == "" {
		movement.ID = uuid.New().String()
	}
	r.s.movements = append(r.s.movements, *movement)
	return nil
}

func (r *StockMovementRepo) ListByProduct(productID string, from, to *time.Time, limit, offset int) ([]*entity.StockMovement, error) {
	return r.list(func(m entity.StockMovement) bool { return m.ProductID == productID }, from, to, limit, offset)
}

func (r *StockMovementRepo) ListByWarehouse(warehouseID string, from, to *time.Time, limit, offset int) ([]*entity.StockMovement, error) {
	return r.list(func(m entity.StockMovement) bool { return m.WarehouseID == warehouseID }, from, to, limit, offset)
}

func (r *StockMovementRepo) list(match func(entity.StockMovement) bool, from, to *time.Time, limit, offset int) ([]*entity.StockMovement, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var all []entity.StockMovement
	for _, m := range r.s.sortedMovements() {
		if !match(m) {
			continue
		}
		if from != nil && m.Date.Before(*from) {
			continue
		}
		if to != nil && m.Date.After(*to) {
			continue
		}
		all = append(all, m)
	}
	out := make([]*entity.StockMovement, 0, len(all))
	for _, m := range paginate(all, limit, offset) {
		m := m
		out = append(out, &m)
	}
	return out, nil
}

// ─── Trades ──────────────────────────────────────────────────────────────────

// TradeRepo implementa repository.TradeRepository en memoria.
type TradeRepo struct{ s *Store }

// NewTradeRepository construye el repositorio.
func NewTradeRepository(s *Store) *TradeRepo { return &TradeRepo{s: s} }

func (r *TradeRepo) Create(trade *entity.TradeTransaction) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *trade
	cp.Items = append([]entity.TradeItem(nil), trade.Items...)
	r.s.trades[trade.ID] = cp
	return nil
}

func (r *TradeRepo) GetByID(id string) (*entity.TradeTransaction, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	t, ok := r.s.trades[id]
	if !ok {
		return nil, nil
	}
	cp := t
	cp.Items = append([]entity.TradeItem(nil), t.Items...)
	return &cp, nil
}

func (r *TradeRepo) Update(trade *entity.TradeTransaction) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.trades[trade.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *trade
	cp.Items = append([]entity.TradeItem(nil), trade.Items...)
	r.s.trades[trade.ID] = cp
	return nil
}

func (r *TradeRepo) Delete(id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	_, ok := r.s.trades[id]
	delete(r.s.trades, id)
	return notFoundIfMissing(ok)
}

func (r *TradeRepo) List(tradeType, invoiceNo string, limit, offset int) ([]*entity.TradeTransaction, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var all []entity.TradeTransaction
	for _, t := range r.s.trades {
		if tradeType != "" && t.Type != tradeType {
			continue
		}
		if invoiceNo != "" && t.InvoiceNo != invoiceNo {
			continue
		}
		all = append(all, t)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })
	out := make([]*entity.TradeTransaction, 0, len(all))
	for _, t := range paginate(all, limit, offset) {
		t := t
		t.Items = append([]entity.TradeItem(nil), t.Items...)
		out = append(out, &t)
	}
	return out, nil
}

// ─── Transfers ───────────────────────────────────────────────────────────────

// TransferRepo implementa repository.TransferRepository en memoria.
type TransferRepo struct{ s *Store }

// NewTransferRepository construye el repositorio.
func NewTransferRepository(s *Store) *TransferRepo { return &TransferRepo{s: s} }

func (r *TransferRepo) Create(transfer *entity.Transfer) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if transfer.ID == "" {
		transfer.ID = uuid.New().String()
	}
	r.s.transfers = append(r.s.transfers, *transfer)
	return nil
}

func (r *TransferRepo) GetByID(id string) (*entity.Transfer, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, t := range r.s.transfers {
		if t.ID == id {
			t := t
			return &t, nil
		}
	}
	return nil, nil
}

func (r *TransferRepo) List(limit, offset int) ([]*entity.Transfer, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	all := append([]entity.Transfer(nil), r.s.transfers...)
	sort.SliceStable(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })
	out := make([]*entity.Transfer, 0, len(all))
	for _, t := range paginate(all, limit, offset) {
		t := t
		out = append(out, &t)
	}
	return out, nil
}
