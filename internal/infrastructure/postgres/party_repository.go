package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

var _ repository.PartyRepository = (*PartyRepo)(nil)

// PartyRepo implementación del puerto PartyRepository sobre PostgreSQL.
type PartyRepo struct {
	q Querier
}

// NewPartyRepository construye el adaptador de persistencia para contrapartes.
func NewPartyRepository(q Querier) *PartyRepo {
	return &PartyRepo{q: q}
}

// Create persiste una nueva contraparte.
func (r *PartyRepo) Create(party *entity.Party) error {
	query := `
		INSERT INTO parties (id, name, type, phone, address, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		party.ID, party.Name, party.Type, nullIfEmpty(party.Phone), nullIfEmpty(party.Address),
		party.CreatedAt, party.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert party: %w", err)
	}
	return nil
}

// GetByID obtiene una contraparte por ID.
func (r *PartyRepo) GetByID(id string) (*entity.Party, error) {
	query := `
		SELECT id, name, type, phone, address, created_at, updated_at
		FROM parties WHERE id = $1`
	var p entity.Party
	var phone, address *string
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.Name, &p.Type, &phone, &address, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get party: %w", err)
	}
	if phone != nil {
		p.Phone = *phone
	}
	if address != nil {
		p.Address = *address
	}
	return &p, nil
}

// Update actualiza una contraparte existente. El tipo no cambia.
func (r *PartyRepo) Update(party *entity.Party) error {
	query := `
		UPDATE parties SET name = $2, phone = $3, address = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		party.ID, party.Name, nullIfEmpty(party.Phone), nullIfEmpty(party.Address), party.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update party: %w", err)
	}
	return nil
}

// List lista contrapartes, filtrando por tipo si viene informado.
func (r *PartyRepo) List(partyType string, limit, offset int) ([]*entity.Party, error) {
	query := `
		SELECT id, name, type, phone, address, created_at, updated_at
		FROM parties`
	args := []any{}
	pos := 1
	if partyType != "" {
		query += fmt.Sprintf(" WHERE type = $%d", pos)
		args = append(args, partyType)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY name LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list parties: %w", err)
	}
	defer rows.Close()
	var list []*entity.Party
	for rows.Next() {
		var p entity.Party
		var phone, address *string
		if err := rows.Scan(&p.ID, &p.Name, &p.Type, &phone, &address, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan party: %w", err)
		}
		if phone != nil {
			p.Phone = *phone
		}
		if address != nil {
			p.Address = *address
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Delete elimina una contraparte por ID.
func (r *PartyRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM parties WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete party: %w", err)
	}
	return nil
}
