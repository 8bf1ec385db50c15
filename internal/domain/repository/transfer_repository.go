package repository

import "github.com/jhoicas/Almacen-api/internal/domain/entity"

// TransferRepository define el puerto de persistencia para traslados (append-only).
type TransferRepository interface {
	Create(transfer *entity.Transfer) error
	GetByID(id string) (*entity.Transfer, error)
	List(limit, offset int) ([]*entity.Transfer, error)
}
