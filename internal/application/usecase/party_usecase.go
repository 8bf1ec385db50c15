package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// PartyUseCase casos de uso CRUD para contrapartes (proveedores y clientes).
type PartyUseCase struct {
	repo repository.PartyRepository
}

// NewPartyUseCase construye el caso de uso.
func NewPartyUseCase(repo repository.PartyRepository) *PartyUseCase {
	return &PartyUseCase{repo: repo}
}

// Create crea una nueva contraparte. Type debe ser seller o buyer.
func (uc *PartyUseCase) Create(in dto.CreatePartyRequest) (*dto.PartyResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Type != entity.PartyTypeSeller && in.Type != entity.PartyTypeBuyer {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	party := &entity.Party{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Type:      in.Type,
		Phone:     in.Phone,
		Address:   in.Address,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(party); err != nil {
		return nil, err
	}
	return toPartyResponse(party), nil
}

// GetByID obtiene una contraparte por ID.
func (uc *PartyUseCase) GetByID(id string) (*dto.PartyResponse, error) {
	party, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if party == nil {
		return nil, nil
	}
	return toPartyResponse(party), nil
}

// Update actualiza una contraparte. El tipo no se puede cambiar.
func (uc *PartyUseCase) Update(id string, in dto.UpdatePartyRequest) (*dto.PartyResponse, error) {
	party, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if party == nil {
		return nil, nil
	}
	if in.Name != nil {
		party.Name = *in.Name
	}
	if in.Phone != nil {
		party.Phone = *in.Phone
	}
	if in.Address != nil {
		party.Address = *in.Address
	}
	party.UpdatedAt = time.Now()
	if err := uc.repo.Update(party); err != nil {
		return nil, err
	}
	return toPartyResponse(party), nil
}

// List lista contrapartes, filtrando por tipo si viene informado.
func (uc *PartyUseCase) List(partyType string, limit, offset int) (*dto.PartyListResponse, error) {
	if partyType != "" && partyType != entity.PartyTypeSeller && partyType != entity.PartyTypeBuyer {
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.repo.List(partyType, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.PartyResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toPartyResponse(p))
	}
	return &dto.PartyListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina una contraparte por ID.
func (uc *PartyUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toPartyResponse(p *entity.Party) *dto.PartyResponse {
	if p == nil {
		return nil
	}
	return &dto.PartyResponse{
		ID:        p.ID,
		Name:      p.Name,
		Type:      p.Type,
		Phone:     p.Phone,
		Address:   p.Address,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
