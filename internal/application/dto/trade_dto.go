package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// TradeItemRequest línea de una transacción comercial.
type TradeItemRequest struct {
	ProductID   string          `json:"product_id"`
	CategoryID  string          `json:"category_id"`
	WarehouseID string          `json:"warehouse_id"`
	Quantity    decimal.Decimal `json:"quantity"`
}

// CreateTradeRequest body para crear una compra, venta o devolución.
// InvoiceNo es opcional; Transport (modo de transporte) es obligatorio.
type CreateTradeRequest struct {
	Type      string             `json:"type"` // PURCHASE | SALE | PURCHASE_RETURN | SALE_RETURN
	PartyID   string             `json:"party_id"`
	InvoiceNo string             `json:"invoice_no"`
	Transport string             `json:"transport"`
	Remark    string             `json:"remark"`
	Items     []TradeItemRequest `json:"items"`
}

// UpdateTradeRequest body para reemplazar una transacción existente
// (las líneas anteriores se reversan en el ledger y se aplican las nuevas).
type UpdateTradeRequest struct {
	PartyID   string             `json:"party_id"`
	InvoiceNo string             `json:"invoice_no"`
	Transport string             `json:"transport"`
	Remark    string             `json:"remark"`
	Items     []TradeItemRequest `json:"items"`
}

// TradeItemResponse línea en respuestas.
type TradeItemResponse struct {
	ProductID   string          `json:"product_id"`
	CategoryID  string          `json:"category_id"`
	WarehouseID string          `json:"warehouse_id"`
	Quantity    decimal.Decimal `json:"quantity"`
}

// TradeResponse salida de una transacción comercial.
type TradeResponse struct {
	ID            string              `json:"id"`
	Type          string              `json:"type"`
	PartyID       string              `json:"party_id"`
	InvoiceNo     string              `json:"invoice_no"`
	Transport     string              `json:"transport"`
	Remark        string              `json:"remark"`
	Items         []TradeItemResponse `json:"items"`
	TotalQuantity decimal.Decimal     `json:"total_quantity"`
	CreatedAt     time.Time           `json:"created_at"`
	UpdatedAt     time.Time           `json:"updated_at"`
}

// TradeListResponse lista paginada de transacciones.
type TradeListResponse struct {
	Items []TradeResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}
