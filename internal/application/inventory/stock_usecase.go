package inventory

import (
	"context"
	"time"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// StockQueryUseCase consultas de solo lectura sobre el ledger: vista por producto,
// vista por bodega e historial de movimientos. Ambas vistas se derivan de la misma
// tabla stock, por lo que siempre coinciden entre sí.
type StockQueryUseCase struct {
	stockRepo     repository.StockRepository
	movRepo       repository.StockMovementRepository
	productRepo   repository.ProductRepository
	warehouseRepo repository.WarehouseRepository
}

// NewStockQueryUseCase construye el caso de uso.
func NewStockQueryUseCase(
	stockRepo repository.StockRepository,
	movRepo repository.StockMovementRepository,
	productRepo repository.ProductRepository,
	warehouseRepo repository.WarehouseRepository,
) *StockQueryUseCase {
	return &StockQueryUseCase{
		stockRepo:     stockRepo,
		movRepo:       movRepo,
		productRepo:   productRepo,
		warehouseRepo: warehouseRepo,
	}
}

// ProductStock devuelve el stock de un producto en todas las bodegas.
func (uc *StockQueryUseCase) ProductStock(ctx context.Context, productID string) ([]dto.ProductStockItemDTO, error) {
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	rows, err := uc.stockRepo.GetProductStock(ctx, productID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductStockItemDTO, 0, len(rows))
	for _, r := range rows {
		items = append(items, dto.ProductStockItemDTO{
			WarehouseID:   r.WarehouseID,
			WarehouseName: r.WarehouseName,
			Quantity:      r.Quantity,
		})
	}
	return items, nil
}

// WarehouseStock devuelve el stock de una bodega para todos los productos.
func (uc *StockQueryUseCase) WarehouseStock(ctx context.Context, warehouseID string) ([]dto.WarehouseStockItemDTO, error) {
	warehouse, err := uc.warehouseRepo.GetByID(warehouseID)
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, domain.ErrNotFound
	}
	rows, err := uc.stockRepo.GetWarehouseStock(ctx, warehouseID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.WarehouseStockItemDTO, 0, len(rows))
	for _, r := range rows {
		items = append(items, dto.WarehouseStockItemDTO{
			ProductID:   r.ProductID,
			SKU:         r.SKU,
			ProductName: r.ProductName,
			Quantity:    r.Quantity,
		})
	}
	return items, nil
}

// Movements lista el ledger de movimientos por producto o por bodega, con rango de
// fechas opcional. Exactamente uno de productID/warehouseID debe venir informado.
func (uc *StockQueryUseCase) Movements(productID, warehouseID string, from, to *time.Time, limit, offset int) ([]dto.StockMovementResponse, error) {
	var (
		list []*entity.StockMovement
		err  error
	)
	switch {
	case productID != "" && warehouseID == "":
		list, err = uc.movRepo.ListByProduct(productID, from, to, limit, offset)
	case warehouseID != "" && productID == "":
		list, err = uc.movRepo.ListByWarehouse(warehouseID, from, to, limit, offset)
	default:
		return nil, domain.ErrInvalidInput
	}
	if err != nil {
		return nil, err
	}
	items := make([]dto.StockMovementResponse, 0, len(list))
	for _, m := range list {
		items = append(items, dto.StockMovementResponse{
			ID:          m.ID,
			ReferenceID: m.ReferenceID,
			ProductID:   m.ProductID,
			WarehouseID: m.WarehouseID,
			Type:        m.Type,
			Quantity:    m.Quantity,
			Date:        m.Date,
		})
	}
	return items, nil
}
