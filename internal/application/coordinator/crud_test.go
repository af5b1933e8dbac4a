package coordinator_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/backoffice-core/internal/application/coordinator"
	"github.com/jhoicas/backoffice-core/internal/dispatch"
	"github.com/jhoicas/backoffice-core/internal/domain/entity"
	"github.com/jhoicas/backoffice-core/internal/infrastructure/memory"
	"github.com/jhoicas/backoffice-core/internal/store"
	"github.com/jhoicas/backoffice-core/pkg/config"
	"github.com/jhoicas/backoffice-core/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// entorno agrupa bus, stores y backend con latencia desactivada.
type entorno struct {
	bus        *dispatch.Bus
	backend    *memory.Backend
	products   *store.Store[entity.Product]
	orders     *store.Store[entity.Order]
	deliveries *store.Store[entity.Delivery]
}

func nuevoEntorno(t *testing.T) *entorno {
	t.Helper()
	backend := memory.NewBackend(config.SimConfig{LatencyEnabled: false})
	log := logger.Nop()
	bus := dispatch.New(log)

	e := &entorno{
		bus:        bus,
		backend:    backend,
		products:   store.New[entity.Product](nil),
		orders:     store.New(store.OrderStatusFunc),
		deliveries: store.New(store.DeliveryStatusFunc),
	}
	coordinator.NewCRUD(bus, coordinator.TopicProducts, e.products, backend.Products, nil, log)
	coordinator.NewCRUD(bus, coordinator.TopicOrders, e.orders, backend.Orders, backend.Orders, log)
	coordinator.NewCRUD(bus, coordinator.TopicDeliveries, e.deliveries, backend.Deliveries, backend.Deliveries, log)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		bus.Run(ctx)
	}()
	t.Cleanup(func() {
		cancel()
		<-done
	})
	return e
}

// despachar envía la intención y espera su transición terminal.
func (e *entorno) despachar(t *testing.T, intent dispatch.Intent) error {
	t.Helper()
	ticket, err := e.bus.Dispatch(context.Background(), intent)
	require.NoError(t, err)
	return ticket.Wait(context.Background())
}

// ──────────────────────────────────────────────────────────────────────────────
// Fetch
// ──────────────────────────────────────────────────────────────────────────────

// El fetch inicial trae los productos sembrados y apaga loading.
func TestCRUD_Fetch_TraeLaSiembra(t *testing.T) {
	e := nuevoEntorno(t)

	require.NoError(t, e.despachar(t, coordinator.FetchIntent{Entity: coordinator.TopicProducts}))

	snap := e.products.Snapshot()
	assert.Len(t, snap.Items, 3, "el backend siembra tres productos")
	assert.False(t, snap.Loading)
	assert.Empty(t, snap.Error)
}

// ──────────────────────────────────────────────────────────────────────────────
// Create / Update / Delete
// ──────────────────────────────────────────────────────────────────────────────

// Crear agrega al store el registro con id generado por el backend.
func TestCRUD_Create_AgregaConIdGenerado(t *testing.T) {
	e := nuevoEntorno(t)
	require.NoError(t, e.despachar(t, coordinator.FetchIntent{Entity: coordinator.TopicProducts}))

	draft := entity.Product{
		Name:  "Teclado mecánico",
		Price: decimal.NewFromFloat(129.99),
		Stock: 10,
		SKU:   "KB-004",
	}
	require.NoError(t, e.despachar(t, coordinator.CreateIntent[entity.Product]{
		Entity: coordinator.TopicProducts,
		Draft:  draft,
	}))

	snap := e.products.Snapshot()
	require.Len(t, snap.Items, 4)
	creado := snap.Items[3]
	assert.NotEmpty(t, creado.ID, "el backend debe asignar la identidad")
	assert.Equal(t, "Teclado mecánico", creado.Name)
	assert.False(t, creado.CreatedAt.IsZero())
}

// Actualizar reemplaza el registro en su posición.
func TestCRUD_Update_ReemplazaEnPosicion(t *testing.T) {
	e := nuevoEntorno(t)
	require.NoError(t, e.despachar(t, coordinator.FetchIntent{Entity: coordinator.TopicProducts}))

	primero := e.products.Snapshot().Items[0]
	primero.Stock = 99
	require.NoError(t, e.despachar(t, coordinator.UpdateIntent[entity.Product]{
		Entity: coordinator.TopicProducts,
		Item:   primero,
	}))

	snap := e.products.Snapshot()
	assert.Equal(t, 99, snap.Items[0].Stock)
	assert.Equal(t, primero.ID, snap.Items[0].ID)
}

// Eliminar remueve por identidad; el store queda sin error.
func TestCRUD_Delete_RemuevePorIdentidad(t *testing.T) {
	e := nuevoEntorno(t)
	require.NoError(t, e.despachar(t, coordinator.FetchIntent{Entity: coordinator.TopicProducts}))
	id := e.products.Snapshot().Items[0].ID

	require.NoError(t, e.despachar(t, coordinator.DeleteIntent{Entity: coordinator.TopicProducts, ID: id}))

	snap := e.products.Snapshot()
	assert.Len(t, snap.Items, 2)
	assert.Empty(t, snap.Error)
}

// ──────────────────────────────────────────────────────────────────────────────
// Cambio de estado
// ──────────────────────────────────────────────────────────────────────────────

// El cambio de estado de una orden se refleja en el store.
func TestCRUD_Status_Orden(t *testing.T) {
	e := nuevoEntorno(t)
	require.NoError(t, e.despachar(t, coordinator.FetchIntent{Entity: coordinator.TopicOrders}))
	id := e.orders.Snapshot().Items[0].ID

	require.NoError(t, e.despachar(t, coordinator.StatusIntent{
		Entity: coordinator.TopicOrders,
		ID:     id,
		Status: entity.OrderStatusShipped,
	}))

	assert.Equal(t, entity.OrderStatusShipped, e.orders.Snapshot().Items[0].Status)
}

// Productos no soportan cambio de estado: la intención falla y el error
// queda plano en el store.
func TestCRUD_Status_EntidadSinSoporte_Falla(t *testing.T) {
	e := nuevoEntorno(t)

	err := e.despachar(t, coordinator.StatusIntent{
		Entity: coordinator.TopicProducts,
		ID:     "p1",
		Status: "x",
	})

	require.Error(t, err)
	assert.NotEmpty(t, e.products.Snapshot().Error)
}

// ──────────────────────────────────────────────────────────────────────────────
// Selección y limpieza de error
// ──────────────────────────────────────────────────────────────────────────────

func TestCRUD_SelectYClearError(t *testing.T) {
	e := nuevoEntorno(t)
	require.NoError(t, e.despachar(t, coordinator.FetchIntent{Entity: coordinator.TopicProducts}))
	primero := e.products.Snapshot().Items[0]

	require.NoError(t, e.despachar(t, coordinator.SelectIntent[entity.Product]{
		Entity: coordinator.TopicProducts,
		Item:   &primero,
	}))
	require.NotNil(t, e.products.Snapshot().Selected)

	require.NoError(t, e.despachar(t, coordinator.SelectIntent[entity.Product]{Entity: coordinator.TopicProducts}))
	assert.Nil(t, e.products.Snapshot().Selected)

	e.products.SetError("fallo previo")
	require.NoError(t, e.despachar(t, coordinator.ClearErrorIntent{Entity: coordinator.TopicProducts}))
	assert.Empty(t, e.products.Snapshot().Error)
}

// ──────────────────────────────────────────────────────────────────────────────
// Concurrencia — intenciones en vuelo simultáneo
// ──────────────────────────────────────────────────────────────────────────────

// Un fetch y un create en vuelo a la vez: ambos resuelven y el resultado
// final contiene el registro creado, sin pánico ni pérdida.
func TestCRUD_FetchYCreateConcurrentes(t *testing.T) {
	e := nuevoEntorno(t)

	tFetch, err := e.bus.Dispatch(context.Background(), coordinator.FetchIntent{Entity: coordinator.TopicProducts})
	require.NoError(t, err)
	tCreate, err := e.bus.Dispatch(context.Background(), coordinator.CreateIntent[entity.Product]{
		Entity: coordinator.TopicProducts,
		Draft:  entity.Product{Name: "Mouse", SKU: "MS-005", Price: decimal.NewFromFloat(49.99)},
	})
	require.NoError(t, err)

	require.NoError(t, tFetch.Wait(context.Background()))
	require.NoError(t, tCreate.Wait(context.Background()))

	// El backend ya contiene el registro; un fetch posterior lo confirma.
	require.NoError(t, e.despachar(t, coordinator.FetchIntent{Entity: coordinator.TopicProducts}))
	assert.Equal(t, 4, e.products.Len())
}
