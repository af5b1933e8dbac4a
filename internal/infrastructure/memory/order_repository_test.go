package memory_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/backoffice-core/internal/domain/entity"
	"github.com/jhoicas/backoffice-core/internal/infrastructure/memory"
	"github.com/jhoicas/backoffice-core/pkg/config"
)

func backendSinLatencia() *memory.Backend {
	return memory.NewBackend(config.SimConfig{LatencyEnabled: false})
}

// ──────────────────────────────────────────────────────────────────────────────
// Siembra
// ──────────────────────────────────────────────────────────────────────────────

func TestOrderRepo_Siembra(t *testing.T) {
	b := backendSinLatencia()

	orders, err := b.Orders.FetchAll(context.Background())
	require.NoError(t, err)

	require.Len(t, orders, 2)
	assert.Equal(t, "ORD-001", orders[0].OrderNumber)
	assert.Equal(t, entity.OrderStatusProcessing, orders[0].Status)
	assert.True(t, orders[0].TotalAmount.Equal(decimal.NewFromFloat(699.97)))
}

// ──────────────────────────────────────────────────────────────────────────────
// Create — total recalculado y número secuencial
// ──────────────────────────────────────────────────────────────────────────────

// El total siempre se recalcula desde las líneas, ignorando el total del
// borrador.
func TestOrderRepo_Create_RecalculaTotal(t *testing.T) {
	b := backendSinLatencia()

	draft := entity.Order{
		CustomerName: "Carlos Ruiz",
		Items: []entity.OrderItem{
			{ProductID: "1", ProductName: "A", Quantity: 2, Price: decimal.NewFromFloat(10.00)},
			{ProductID: "2", ProductName: "B", Quantity: 3, Price: decimal.NewFromFloat(5.00)},
		},
		TotalAmount: decimal.NewFromFloat(999.99), // debe ignorarse
	}
	created, err := b.Orders.Create(context.Background(), draft)
	require.NoError(t, err)

	assert.True(t, created.TotalAmount.Equal(decimal.NewFromFloat(35.00)),
		"el total debe ser la suma de cantidad por precio: 2*10 + 3*5 = 35, no el del borrador")
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "ORD-003", created.OrderNumber)
	assert.Equal(t, entity.OrderStatusPending, created.Status, "sin estado explícito el borrador entra pendiente")
}

// Dos creates seguidos reciben números distintos.
func TestOrderRepo_Create_NumerosUnicos(t *testing.T) {
	b := backendSinLatencia()
	draft := entity.Order{
		CustomerName: "Carlos Ruiz",
		Items:        []entity.OrderItem{{ProductID: "1", Quantity: 1, Price: decimal.NewFromFloat(1.00)}},
	}

	primera, err := b.Orders.Create(context.Background(), draft)
	require.NoError(t, err)
	segunda, err := b.Orders.Create(context.Background(), draft)
	require.NoError(t, err)

	assert.NotEqual(t, primera.OrderNumber, segunda.OrderNumber)
	assert.NotEqual(t, primera.ID, segunda.ID)
}

// ──────────────────────────────────────────────────────────────────────────────
// Update — total recalculado, campos generados preservados
// ──────────────────────────────────────────────────────────────────────────────

func TestOrderRepo_Update_RecalculaTotalYPreservaNumero(t *testing.T) {
	b := backendSinLatencia()
	orders, err := b.Orders.FetchAll(context.Background())
	require.NoError(t, err)

	orden := orders[1]
	orden.Items = []entity.OrderItem{
		{ProductID: "3", ProductName: "Coffee Maker", Quantity: 2, Price: decimal.NewFromFloat(89.99)},
	}
	orden.OrderNumber = "ORD-INVENTADO" // debe ignorarse

	updated, err := b.Orders.Update(context.Background(), orden)
	require.NoError(t, err)

	assert.True(t, updated.TotalAmount.Equal(decimal.NewFromFloat(179.98)))
	assert.Equal(t, "ORD-002", updated.OrderNumber, "el número asignado no se reemplaza")
	assert.Equal(t, orders[1].CreatedAt, updated.CreatedAt, "el sello de creación se preserva")
}

// ──────────────────────────────────────────────────────────────────────────────
// UpdateStatus y Delete
// ──────────────────────────────────────────────────────────────────────────────

func TestOrderRepo_UpdateStatusYDelete(t *testing.T) {
	b := backendSinLatencia()
	ctx := context.Background()

	require.NoError(t, b.Orders.UpdateStatus(ctx, "1", entity.OrderStatusShipped))
	orders, err := b.Orders.FetchAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusShipped, orders[0].Status)

	require.NoError(t, b.Orders.Delete(ctx, "1"))
	orders, err = b.Orders.FetchAll(ctx)
	require.NoError(t, err)
	assert.Len(t, orders, 1)
}

// ──────────────────────────────────────────────────────────────────────────────
// Cancelación de contexto — la latencia respeta ctx
// ──────────────────────────────────────────────────────────────────────────────

func TestOrderRepo_ContextoCancelado(t *testing.T) {
	b := memory.NewBackend(config.SimConfig{LatencyEnabled: true, LatencyScale: 1})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := b.Orders.FetchAll(ctx)

	assert.ErrorIs(t, err, context.Canceled)
}
