package entity

import "time"

// Tipos de contraparte comercial.
const (
	PartyTypeSeller = "seller" // proveedor: origen de compras
	PartyTypeBuyer  = "buyer"  // cliente: destino de ventas
)

// Party representa una contraparte comercial (proveedor o cliente).
type Party struct {
	ID        string
	Name      string
	Type      string // seller | buyer
	Phone     string
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
