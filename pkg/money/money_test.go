package money_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/backoffice-core/pkg/money"
)

func TestFormat(t *testing.T) {
	casos := []struct {
		nombre   string
		monto    decimal.Decimal
		moneda   string
		esperado string
	}{
		{"miles con separador", decimal.NewFromInt(45680), "USD", "$45,680.00"},
		{"dos decimales siempre", decimal.NewFromFloat(89.9), "USD", "$89.90"},
		{"redondeo a dos decimales", decimal.NewFromFloat(10.555), "USD", "$10.56"},
		{"cero", decimal.Zero, "USD", "$0.00"},
		{"euro", decimal.NewFromFloat(1234.5), "EUR", "€1,234.50"},
		{"moneda desconocida usa el código", decimal.NewFromInt(100), "GBP", "GBP 100.00"},
	}
	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			assert.Equal(t, c.esperado, money.Format(c.monto, c.moneda))
		})
	}
}
