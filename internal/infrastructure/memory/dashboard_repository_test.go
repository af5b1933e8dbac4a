package memory_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/backoffice-core/internal/domain/entity"
)

// Las métricas se derivan del estado vivo de las colecciones sembradas.
func TestDashboardRepo_Stats_DerivadasDeLaSiembra(t *testing.T) {
	b := backendSinLatencia()

	stats, err := b.Dashboard.Stats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, stats.TotalOrders)
	assert.True(t, stats.MonthlyIncome.Equal(decimal.NewFromFloat(789.96)),
		"el ingreso es la suma de los totales no cancelados: 699.97 + 89.99")
	assert.Equal(t, 3, stats.ActiveProducts, "los tres productos sembrados tienen stock")
	assert.Equal(t, 2, stats.PendingDeliveries, "scheduled e in_transit cuentan como pendientes")
}

// Cancelar una orden la excluye del ingreso en el siguiente fetch.
func TestDashboardRepo_Stats_ReflejaCancelaciones(t *testing.T) {
	b := backendSinLatencia()
	ctx := context.Background()
	require.NoError(t, b.Orders.UpdateStatus(ctx, "1", entity.OrderStatusCancelled))

	stats, err := b.Dashboard.Stats(ctx)
	require.NoError(t, err)

	assert.True(t, stats.MonthlyIncome.Equal(decimal.NewFromFloat(89.99)))
	assert.Equal(t, 2, stats.TotalOrders, "la orden cancelada sigue contando en el total")
}

// La serie de ingresos es la sembrada, en orden.
func TestDashboardRepo_Revenue(t *testing.T) {
	b := backendSinLatencia()

	points, err := b.Dashboard.Revenue(context.Background())
	require.NoError(t, err)

	require.Len(t, points, 6)
	assert.Equal(t, "Jan", points[0].Month)
	assert.True(t, points[5].Revenue.Equal(decimal.NewFromInt(28000)))
}

// La distribución incluye todos los estados del enum, aun con conteo cero.
func TestDashboardRepo_Distribution_IncluyeCeros(t *testing.T) {
	b := backendSinLatencia()

	dist, err := b.Dashboard.Distribution(context.Background())
	require.NoError(t, err)

	require.Len(t, dist, 5)
	porEstado := map[string]int{}
	for _, d := range dist {
		porEstado[d.Status] = d.Count
	}
	assert.Equal(t, 1, porEstado[entity.OrderStatusPending])
	assert.Equal(t, 1, porEstado[entity.OrderStatusProcessing])
	assert.Equal(t, 0, porEstado[entity.OrderStatusShipped])
	assert.Equal(t, 0, porEstado[entity.OrderStatusCancelled])
}
