package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// TransferUseCase traslada stock de un producto entre dos bodegas de forma
// transaccional: resta en origen, suma en destino, registra dos movimientos de
// auditoría y un registro de traslado append-only, todo en una sola transacción.
type TransferUseCase struct {
	txRunner      TxRunner
	productRepo   repository.ProductRepository
	warehouseRepo repository.WarehouseRepository
	transferRepo  repository.TransferRepository // lecturas fuera de tx
}

// NewTransferUseCase construye el caso de uso.
func NewTransferUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	warehouseRepo repository.WarehouseRepository,
	transferRepo repository.TransferRepository,
) *TransferUseCase {
	return &TransferUseCase{
		txRunner:      txRunner,
		productRepo:   productRepo,
		warehouseRepo: warehouseRepo,
		transferRepo:  transferRepo,
	}
}

// TransferInput entrada para registrar un traslado.
type TransferInput struct {
	ProductID       string
	FromWarehouseID string
	ToWarehouseID   string
	Quantity        decimal.Decimal
	Remark          string
}

// Transfer valida entradas y existencia de producto y bodegas ANTES de mutar
// (fase 1), y dentro de la transacción bloquea la fila origen, verifica stock
// suficiente y aplica los dos deltas (fase 2). La fila origen se elimina si
// queda exactamente en cero; la de destino se crea si no existía.
func (uc *TransferUseCase) Transfer(ctx context.Context, in TransferInput) (*dto.TransferResponse, error) {
	if in.ProductID == "" || in.FromWarehouseID == "" || in.ToWarehouseID == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.FromWarehouseID == in.ToWarehouseID || !in.Quantity.IsPositive() {
		return nil, domain.ErrInvalidInput
	}

	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	fromWh, err := uc.warehouseRepo.GetByID(in.FromWarehouseID)
	if err != nil {
		return nil, err
	}
	toWh, err := uc.warehouseRepo.GetByID(in.ToWarehouseID)
	if err != nil {
		return nil, err
	}
	if fromWh == nil || toWh == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	transfer := &entity.Transfer{
		ID:              uuid.New().String(),
		ProductID:       in.ProductID,
		FromWarehouseID: in.FromWarehouseID,
		ToWarehouseID:   in.ToWarehouseID,
		Quantity:        in.Quantity,
		Remark:          in.Remark,
		CreatedAt:       now,
	}

	err = uc.txRunner.Run(ctx, func(
		stockRepo repository.StockRepository,
		movRepo repository.StockMovementRepository,
		transferRepo repository.TransferRepository,
	) error {
		// Salida en origen: ApplyDelta bloquea la fila y falla con
		// ErrInsufficientStock si no alcanza, abortando toda la transacción.
		if err := ApplyDelta(stockRepo, movRepo, transfer.ID, entity.MovementTypeTRANSFER,
			in.ProductID, in.FromWarehouseID, in.Quantity.Neg(), now); err != nil {
			return err
		}
		// Entrada en destino.
		if err := ApplyDelta(stockRepo, movRepo, transfer.ID, entity.MovementTypeTRANSFER,
			in.ProductID, in.ToWarehouseID, in.Quantity, now); err != nil {
			return err
		}
		return transferRepo.Create(transfer)
	})
	if err != nil {
		return nil, err
	}
	return toTransferResponse(transfer), nil
}

func toTransferResponse(t *entity.Transfer) *dto.TransferResponse {
	return &dto.TransferResponse{
		ID:              t.ID,
		ProductID:       t.ProductID,
		FromWarehouseID: t.FromWarehouseID,
		ToWarehouseID:   t.ToWarehouseID,
		Quantity:        t.Quantity,
		Remark:          t.Remark,
		CreatedAt:       t.CreatedAt,
	}
}

// GetTransfer obtiene un traslado del historial por ID. Devuelve nil sin error
// si no existe.
func (uc *TransferUseCase) GetTransfer(id string) (*dto.TransferResponse, error) {
	transfer, err := uc.transferRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if transfer == nil {
		return nil, nil
	}
	return toTransferResponse(transfer), nil
}

// ListTransfers lista el historial de traslados.
func (uc *TransferUseCase) ListTransfers(limit, offset int) (*dto.TransferListResponse, error) {
	list, err := uc.transferRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.TransferResponse, 0, len(list))
	for _, t := range list {
		items = append(items, *toTransferResponse(t))
	}
	return &dto.TransferListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}
