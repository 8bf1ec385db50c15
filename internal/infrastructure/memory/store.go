// Package memory implementa los puertos de repositorio sobre mapas en memoria.
// Sirve para los tests de los casos de uso y como backend de demo sin
// PostgreSQL: misma semántica que los repositorios postgres (no encontrado
// devuelve nil sin error, SKU duplicado devuelve ErrDuplicate, el stock
// inexistente cuenta como cero).
package memory

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
)

// Store guarda todo el estado compartido por los repositorios en memoria.
type Store struct {
	txMu       sync.Mutex // serializa "transacciones" completas
	mu         sync.RWMutex
	categories map[string]entity.Category
	products   map[string]entity.Product
	warehouses map[string]entity.Warehouse
	parties    map[string]entity.Party
	stock      map[string]entity.Stock // clave productID + "|" + warehouseID
	movements  []entity.StockMovement
	trades     map[string]entity.TradeTransaction
	transfers  []entity.Transfer
}

// NewStore crea un store vacío.
func NewStore() *Store {
	return &Store{
		categories: map[string]entity.Category{},
		products:   map[string]entity.Product{},
		warehouses: map[string]entity.Warehouse{},
		parties:    map[string]entity.Party{},
		stock:      map[string]entity.Stock{},
		trades:     map[string]entity.TradeTransaction{},
	}
}

func stockKey(productID, warehouseID string) string {
	return productID + "|" + warehouseID
}

// snapshot copia el estado mutable para poder restaurarlo si una "transacción"
// en memoria falla a mitad de camino.
func (s *Store) snapshot() *Store {
	snap := NewStore()
	for k, v := range s.categories {
		snap.categories[k] = v
	}
	for k, v := range s.products {
		snap.products[k] = v
	}
	for k, v := range s.warehouses {
		snap.warehouses[k] = v
	}
	for k, v := range s.parties {
		snap.parties[k] = v
	}
	for k, v := range s.stock {
		snap.stock[k] = v
	}
	for k, v := range s.trades {
		snap.trades[k] = v
	}
	snap.movements = append([]entity.StockMovement(nil), s.movements...)
	snap.transfers = append([]entity.Transfer(nil), s.transfers...)
	return snap
}

// restore vuelve al estado de un snapshot previo.
func (s *Store) restore(snap *Store) {
	s.categories = snap.categories
	s.products = snap.products
	s.warehouses = snap.warehouses
	s.parties = snap.parties
	s.stock = snap.stock
	s.movements = snap.movements
	s.trades = snap.trades
	s.transfers = snap.transfers
}

// StockQuantity devuelve la cantidad actual de (producto, bodega); cero si la
// fila no existe. Pensado para aserciones en tests.
func (s *Store) StockQuantity(productID, warehouseID string) decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if row, ok := s.stock[stockKey(productID, warehouseID)]; ok {
		return row.Quantity
	}
	return decimal.Zero
}

// StockRowExists indica si existe la fila de stock (producto, bodega).
func (s *Store) StockRowExists(productID, warehouseID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.stock[stockKey(productID, warehouseID)]
	return ok
}

// MovementCount devuelve cuántos movimientos hay en el ledger.
func (s *Store) MovementCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.movements)
}

// SeedCategory inserta una categoría con valores por defecto. Devuelve su ID.
func (s *Store) SeedCategory(name string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := uuid.New().String()
	now := time.Now()
	s.categories[id] = entity.Category{ID: id, Name: name, CreatedAt: now, UpdatedAt: now}
	return id
}

// SeedProduct inserta un producto. Devuelve su ID.
func (s *Store) SeedProduct(sku, name, categoryID string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := uuid.New().String()
	now := time.Now()
	s.products[id] = entity.Product{
		ID: id, SKU: sku, Name: name, CategoryID: categoryID,
		Price: decimal.NewFromInt(100), SoldTotal: decimal.Zero,
		CreatedAt: now, UpdatedAt: now,
	}
	return id
}

// SeedWarehouse inserta una bodega. Devuelve su ID.
func (s *Store) SeedWarehouse(name string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := uuid.New().String()
	now := time.Now()
	s.warehouses[id] = entity.Warehouse{ID: id, Name: name, CreatedAt: now, UpdatedAt: now}
	return id
}

// SeedParty inserta una contraparte del tipo dado. Devuelve su ID.
func (s *Store) SeedParty(name, partyType string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := uuid.New().String()
	now := time.Now()
	s.parties[id] = entity.Party{ID: id, Name: name, Type: partyType, CreatedAt: now, UpdatedAt: now}
	return id
}

// SeedStock fija la cantidad de (producto, bodega) directamente.
func (s *Store) SeedStock(productID, warehouseID string, qty decimal.Decimal) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stock[stockKey(productID, warehouseID)] = entity.Stock{
		ProductID: productID, WarehouseID: warehouseID,
		Quantity: qty, UpdatedAt: time.Now(),
	}
}

// SoldTotal devuelve el acumulado vendido del producto; cero si no existe.
func (s *Store) SoldTotal(productID string) decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if p, ok := s.products[productID]; ok {
		return p.SoldTotal
	}
	return decimal.Zero
}

// sortedMovements devuelve una copia de los movimientos ordenada por fecha
// descendente, igual que el repositorio postgres.
func (s *Store) sortedMovements() []entity.StockMovement {
	out := append([]entity.StockMovement(nil), s.movements...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out
}

// paginate aplica limit/offset al estilo SQL.
func paginate[T any](items []T, limit, offset int) []T {
	if offset >= len(items) {
		return nil
	}
	items = items[offset:]
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}

// notFoundIfMissing traduce "no existe" a ErrNotFound para operaciones que en
// SQL revisan RowsAffected.
func notFoundIfMissing(ok bool) error {
	if !ok {
		return domain.ErrNotFound
	}
	return nil
}
