package repository

import "github.com/jhoicas/Almacen-api/internal/domain/entity"

// PartyRepository define el puerto de persistencia para contrapartes (proveedores y clientes).
type PartyRepository interface {
	Create(party *entity.Party) error
	GetByID(id string) (*entity.Party, error)
	Update(party *entity.Party) error
	// List filtra por tipo si partyType no es vacío.
	List(partyType string, limit, offset int) ([]*entity.Party, error)
	Delete(id string) error
}
