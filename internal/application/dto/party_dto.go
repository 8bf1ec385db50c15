package dto

import "time"

// CreatePartyRequest entrada para crear una contraparte (proveedor o cliente).
type CreatePartyRequest struct {
	Name    string `json:"name"`
	Type    string `json:"type"` // seller | buyer
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// UpdatePartyRequest entrada para actualizar una contraparte.
type UpdatePartyRequest struct {
	Name    *string `json:"name"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
}

// PartyResponse salida de una contraparte.
type PartyResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PartyListResponse lista paginada de contrapartes.
type PartyListResponse struct {
	Items []PartyResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}
