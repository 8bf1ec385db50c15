package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de transacción comercial.
const (
	TradeTypePurchase       = "PURCHASE"        // compra: entrada de stock
	TradeTypeSale           = "SALE"            // venta: salida de stock
	TradeTypePurchaseReturn = "PURCHASE_RETURN" // devolución de compra: salida
	TradeTypeSaleReturn     = "SALE_RETURN"     // devolución de venta: entrada
)

// TradeItem es una línea de una transacción comercial.
type TradeItem struct {
	ProductID   string
	CategoryID  string
	WarehouseID string
	Quantity    decimal.Decimal // siempre positiva; el signo lo da el tipo de transacción
}

// TradeTransaction representa una compra, venta o devolución con sus líneas.
// InvoiceNo es texto libre, no único, y no es obligatorio al crear.
// Al actualizar se reemplazan las líneas completas (reversa + reaplica en el ledger).
type TradeTransaction struct {
	ID        string
	Type      string // PURCHASE | SALE | PURCHASE_RETURN | SALE_RETURN
	PartyID   string
	InvoiceNo string
	Transport string // modo de transporte
	Remark    string
	Items     []TradeItem
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TotalQuantity suma las cantidades de todas las líneas.
func (t *TradeTransaction) TotalQuantity() decimal.Decimal {
	total := decimal.Zero
	for _, it := range t.Items {
		total = total.Add(it.Quantity)
	}
	return total
}
