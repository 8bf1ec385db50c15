package trade

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/application/inventory"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/ledger"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// TradeUseCase registra compras, ventas y devoluciones de forma transaccional.
// Disciplina en dos fases: primero se validan TODAS las referencias (contraparte,
// productos, categorías, bodegas) y solo después se muta dentro de una transacción;
// una referencia inexistente aborta la operación completa sin tocar el ledger.
//
// Actualizar reemplaza las líneas completas: se reversa cada línea anterior con el
// signo opuesto y se aplican las nuevas, aunque no hayan cambiado. Eliminar solo
// está permitido para ventas.
type TradeUseCase struct {
	txRunner      TxRunner
	productRepo   repository.ProductRepository
	categoryRepo  repository.CategoryRepository
	warehouseRepo repository.WarehouseRepository
	partyRepo     repository.PartyRepository
	tradeRepo     repository.TradeRepository // lecturas fuera de tx
}

// NewTradeUseCase construye el caso de uso.
func NewTradeUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	warehouseRepo repository.WarehouseRepository,
	partyRepo repository.PartyRepository,
	tradeRepo repository.TradeRepository,
) *TradeUseCase {
	return &TradeUseCase{
		txRunner:      txRunner,
		productRepo:   productRepo,
		categoryRepo:  categoryRepo,
		warehouseRepo: warehouseRepo,
		partyRepo:     partyRepo,
		tradeRepo:     tradeRepo,
	}
}

// expectedPartyType devuelve el tipo de contraparte que corresponde al tipo de
// transacción: compras y sus devoluciones van contra proveedores, ventas y las
// suyas contra clientes.
func expectedPartyType(tradeType string) string {
	switch tradeType {
	case entity.TradeTypePurchase, entity.TradeTypePurchaseReturn:
		return entity.PartyTypeSeller
	default:
		return entity.PartyTypeBuyer
	}
}

// validate ejecuta la fase 1: campos obligatorios y existencia de toda referencia.
// InvoiceNo NO es obligatorio. No muta nada.
func (uc *TradeUseCase) validate(tradeType, partyID, transport string, items []dto.TradeItemRequest) ([]entity.TradeItem, error) {
	switch tradeType {
	case entity.TradeTypePurchase, entity.TradeTypeSale,
		entity.TradeTypePurchaseReturn, entity.TradeTypeSaleReturn:
	default:
		return nil, domain.ErrInvalidInput
	}
	if partyID == "" || transport == "" || len(items) == 0 {
		return nil, domain.ErrInvalidInput
	}

	party, err := uc.partyRepo.GetByID(partyID)
	if err != nil {
		return nil, err
	}
	if party == nil {
		return nil, domain.ErrNotFound
	}
	if party.Type != expectedPartyType(tradeType) {
		return nil, domain.ErrInvalidInput
	}

	resolved := make([]entity.TradeItem, 0, len(items))
	for _, it := range items {
		if it.ProductID == "" || it.WarehouseID == "" || !it.Quantity.IsPositive() {
			return nil, domain.ErrInvalidInput
		}
		product, err := uc.productRepo.GetByID(it.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, domain.ErrNotFound
		}
		warehouse, err := uc.warehouseRepo.GetByID(it.WarehouseID)
		if err != nil {
			return nil, err
		}
		if warehouse == nil {
			return nil, domain.ErrNotFound
		}
		categoryID := it.CategoryID
		if categoryID == "" {
			categoryID = product.CategoryID
		} else {
			category, err := uc.categoryRepo.GetByID(categoryID)
			if err != nil {
				return nil, err
			}
			if category == nil {
				return nil, domain.ErrNotFound
			}
		}
		resolved = append(resolved, entity.TradeItem{
			ProductID:   it.ProductID,
			CategoryID:  categoryID,
			WarehouseID: it.WarehouseID,
			Quantity:    it.Quantity,
		})
	}
	return resolved, nil
}

// applyItems aplica el delta de cada línea al ledger. reverse invierte el signo
// (reversa completa de una transacción ya aplicada).
func applyItems(
	stockRepo repository.StockRepository,
	movRepo repository.StockMovementRepository,
	trade *entity.TradeTransaction,
	reverse bool,
	now time.Time,
) error {
	for _, it := range trade.Items {
		delta, err := ledger.DeltaFor(trade.Type, it.Quantity)
		if err != nil {
			return err
		}
		if reverse {
			delta = delta.Neg()
		}
		if err := inventory.ApplyDelta(stockRepo, movRepo, trade.ID,
			ledger.MovementTypeFor(delta), it.ProductID, it.WarehouseID, delta, now); err != nil {
			return err
		}
	}
	return nil
}

// adjustSoldTotal ajusta el acumulado vendido por producto para ventas.
// El repositorio aplica el piso en cero.
func adjustSoldTotal(productRepo repository.ProductRepository, trade *entity.TradeTransaction, reverse bool) error {
	if trade.Type != entity.TradeTypeSale {
		return nil
	}
	for _, it := range trade.Items {
		delta := it.Quantity
		if reverse {
			delta = delta.Neg()
		}
		if err := productRepo.AdjustSoldTotal(it.ProductID, delta); err != nil {
			return err
		}
	}
	return nil
}

// Create valida y persiste una transacción aplicando sus deltas al ledger.
func (uc *TradeUseCase) Create(ctx context.Context, in dto.CreateTradeRequest) (*dto.TradeResponse, error) {
	items, err := uc.validate(in.Type, in.PartyID, in.Transport, in.Items)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	trade := &entity.TradeTransaction{
		ID:        uuid.New().String(),
		Type:      in.Type,
		PartyID:   in.PartyID,
		InvoiceNo: in.InvoiceNo,
		Transport: in.Transport,
		Remark:    in.Remark,
		Items:     items,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err = uc.txRunner.Run(ctx, func(
		stockRepo repository.StockRepository,
		movRepo repository.StockMovementRepository,
		productRepo repository.ProductRepository,
		tradeRepo repository.TradeRepository,
	) error {
		if err := tradeRepo.Create(trade); err != nil {
			return err
		}
		if err := applyItems(stockRepo, movRepo, trade, false, now); err != nil {
			return err
		}
		return adjustSoldTotal(productRepo, trade, false)
	})
	if err != nil {
		return nil, err
	}
	return toTradeResponse(trade), nil
}

// Update reemplaza una transacción: dentro de una sola transacción reversa cada
// línea anterior, sobrescribe cabecera y líneas, y aplica las nuevas. Una
// actualización con líneas idénticas deja el ledger exactamente igual.
func (uc *TradeUseCase) Update(ctx context.Context, id string, in dto.UpdateTradeRequest) (*dto.TradeResponse, error) {
	existing, err := uc.tradeRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.ErrNotFound
	}

	items, err := uc.validate(existing.Type, in.PartyID, in.Transport, in.Items)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	updated := &entity.TradeTransaction{
		ID:        existing.ID,
		Type:      existing.Type,
		PartyID:   in.PartyID,
		InvoiceNo: in.InvoiceNo,
		Transport: in.Transport,
		Remark:    in.Remark,
		Items:     items,
		CreatedAt: existing.CreatedAt,
		UpdatedAt: now,
	}

	err = uc.txRunner.Run(ctx, func(
		stockRepo repository.StockRepository,
		movRepo repository.StockMovementRepository,
		productRepo repository.ProductRepository,
		tradeRepo repository.TradeRepository,
	) error {
		// Releer dentro de la tx: las líneas a reversar son las persistidas,
		// no las que se leyeron antes de entrar.
		old, err := tradeRepo.GetByID(id)
		if err != nil {
			return err
		}
		if old == nil {
			return domain.ErrNotFound
		}
		if err := applyItems(stockRepo, movRepo, old, true, now); err != nil {
			return err
		}
		if err := adjustSoldTotal(productRepo, old, true); err != nil {
			return err
		}
		if err := tradeRepo.Update(updated); err != nil {
			return err
		}
		if err := applyItems(stockRepo, movRepo, updated, false, now); err != nil {
			return err
		}
		return adjustSoldTotal(productRepo, updated, false)
	})
	if err != nil {
		return nil, err
	}
	return toTradeResponse(updated), nil
}

// Delete reversa y elimina una venta. Solo las ventas exponen eliminación.
func (uc *TradeUseCase) Delete(ctx context.Context, id string) error {
	existing, err := uc.tradeRepo.GetByID(id)
	if err != nil {
		return err
	}
	if existing == nil {
		return domain.ErrNotFound
	}
	if existing.Type != entity.TradeTypeSale {
		return domain.ErrInvalidInput
	}

	now := time.Now()
	return uc.txRunner.Run(ctx, func(
		stockRepo repository.StockRepository,
		movRepo repository.StockMovementRepository,
		productRepo repository.ProductRepository,
		tradeRepo repository.TradeRepository,
	) error {
		old, err := tradeRepo.GetByID(id)
		if err != nil {
			return err
		}
		if old == nil {
			return domain.ErrNotFound
		}
		if err := applyItems(stockRepo, movRepo, old, true, now); err != nil {
			return err
		}
		if err := adjustSoldTotal(productRepo, old, true); err != nil {
			return err
		}
		return tradeRepo.Delete(id)
	})
}

// GetByID obtiene una transacción con sus líneas.
func (uc *TradeUseCase) GetByID(id string) (*dto.TradeResponse, error) {
	trade, err := uc.tradeRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if trade == nil {
		return nil, nil
	}
	return toTradeResponse(trade), nil
}

// List lista transacciones filtrando por tipo y/o número de factura.
func (uc *TradeUseCase) List(tradeType, invoiceNo string, limit, offset int) (*dto.TradeListResponse, error) {
	list, err := uc.tradeRepo.List(tradeType, invoiceNo, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.TradeResponse, 0, len(list))
	for _, t := range list {
		items = append(items, *toTradeResponse(t))
	}
	return &dto.TradeListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func toTradeResponse(t *entity.TradeTransaction) *dto.TradeResponse {
	items := make([]dto.TradeItemResponse, 0, len(t.Items))
	for _, it := range t.Items {
		items = append(items, dto.TradeItemResponse{
			ProductID:   it.ProductID,
			CategoryID:  it.CategoryID,
			WarehouseID: it.WarehouseID,
			Quantity:    it.Quantity,
		})
	}
	return &dto.TradeResponse{
		ID:            t.ID,
		Type:          t.Type,
		PartyID:       t.PartyID,
		InvoiceNo:     t.InvoiceNo,
		Transport:     t.Transport,
		Remark:        t.Remark,
		Items:         items,
		TotalQuantity: t.TotalQuantity(),
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     t.UpdatedAt,
	}
}
