package ledger_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/ledger"
)

func TestDeltaFor_SignosPorTipo(t *testing.T) {
	qty := decimal.NewFromInt(5)

	cases := []struct {
		tradeType string
		want      decimal.Decimal
	}{
		{entity.TradeTypePurchase, qty},
		{entity.TradeTypeSaleReturn, qty},
		{entity.TradeTypeSale, qty.Neg()},
		{entity.TradeTypePurchaseReturn, qty.Neg()},
	}
	for _, c := range cases {
		got, err := ledger.DeltaFor(c.tradeType, qty)
		require.NoError(t, err, c.tradeType)
		assert.True(t, c.want.Equal(got), "%s: esperado %s, obtenido %s", c.tradeType, c.want, got)
	}
}

func TestDeltaFor_ReversaSimetrica(t *testing.T) {
	// Aplicar el delta y luego su negación debe dejar el saldo igual.
	qty := decimal.NewFromInt(7)
	for _, tt := range []string{
		entity.TradeTypePurchase, entity.TradeTypeSale,
		entity.TradeTypePurchaseReturn, entity.TradeTypeSaleReturn,
	} {
		delta, err := ledger.DeltaFor(tt, qty)
		require.NoError(t, err)
		assert.True(t, delta.Add(delta.Neg()).IsZero(), tt)
	}
}

func TestDeltaFor_Invalidos(t *testing.T) {
	_, err := ledger.DeltaFor(entity.TradeTypeSale, decimal.Zero)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = ledger.DeltaFor(entity.TradeTypeSale, decimal.NewFromInt(-3))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = ledger.DeltaFor("LOAN", decimal.NewFromInt(1))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestMovementTypeFor(t *testing.T) {
	assert.Equal(t, entity.MovementTypeIN, ledger.MovementTypeFor(decimal.NewFromInt(3)))
	assert.Equal(t, entity.MovementTypeOUT, ledger.MovementTypeFor(decimal.NewFromInt(-3)))
}
