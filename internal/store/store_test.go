package store_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/backoffice-core/internal/domain/entity"
	"github.com/jhoicas/backoffice-core/internal/store"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

func producto(id, name string) entity.Product {
	return entity.Product{
		ID:    id,
		Name:  name,
		Price: decimal.NewFromFloat(10.00),
		Stock: 5,
	}
}

func storeConProductos(items ...entity.Product) *store.Store[entity.Product] {
	s := store.New[entity.Product](nil)
	s.ApplyFetch(items)
	return s
}

// ──────────────────────────────────────────────────────────────────────────────
// Ciclo de petición
// ──────────────────────────────────────────────────────────────────────────────

// BeginRequest enciende loading y limpia el error anterior.
func TestBeginRequest_EnciendeLoadingYLimpiaError(t *testing.T) {
	s := store.New[entity.Product](nil)
	s.SetError("algo falló")

	s.BeginRequest()

	snap := s.Snapshot()
	assert.True(t, snap.Loading, "loading debe encenderse al iniciar la petición")
	assert.Empty(t, snap.Error, "el error anterior debe limpiarse al reintentar")
}

// SetError apaga loading y deja el mensaje plano.
func TestSetError_ApagaLoadingYGuardaMensaje(t *testing.T) {
	s := store.New[entity.Product](nil)
	s.BeginRequest()

	s.SetError("Invalid credentials")

	snap := s.Snapshot()
	assert.False(t, snap.Loading)
	assert.Equal(t, "Invalid credentials", snap.Error)
}

// ClearError limpia el error sin tocar la colección.
func TestClearError_NoTocaLaColeccion(t *testing.T) {
	s := storeConProductos(producto("p1", "Audífonos"))
	s.SetError("fallo transitorio")

	s.ClearError()

	snap := s.Snapshot()
	assert.Empty(t, snap.Error)
	assert.Len(t, snap.Items, 1, "la colección debe quedar intacta")
}

// ──────────────────────────────────────────────────────────────────────────────
// Mutaciones de la colección
// ──────────────────────────────────────────────────────────────────────────────

// ApplyFetch reemplaza la colección completa.
func TestApplyFetch_ReemplazaColeccion(t *testing.T) {
	s := storeConProductos(producto("p1", "Audífonos"))

	s.ApplyFetch([]entity.Product{producto("p2", "Reloj"), producto("p3", "Cámara")})

	snap := s.Snapshot()
	require.Len(t, snap.Items, 2)
	assert.Equal(t, "p2", snap.Items[0].ID)
	assert.False(t, snap.Loading)
}

// ApplyCreate agrega exactamente un elemento.
func TestApplyCreate_AgregaUnElemento(t *testing.T) {
	s := storeConProductos(producto("p1", "Audífonos"))

	s.ApplyCreate(producto("p2", "Reloj"))

	assert.Equal(t, 2, s.Len(), "crear debe incrementar la colección en uno")
}

// ApplyUpdate reemplaza in situ conservando la posición.
func TestApplyUpdate_ReemplazaInSitu(t *testing.T) {
	s := storeConProductos(producto("p1", "Audífonos"), producto("p2", "Reloj"))

	actualizado := producto("p1", "Audífonos Pro")
	s.ApplyUpdate(actualizado)

	snap := s.Snapshot()
	require.Len(t, snap.Items, 2)
	assert.Equal(t, "Audífonos Pro", snap.Items[0].Name, "debe reemplazar en la misma posición")
	assert.Equal(t, "p2", snap.Items[1].ID)
}

// ApplyUpdate con identidad ausente es un no-op silencioso.
func TestApplyUpdate_IdentidadAusente_NoOp(t *testing.T) {
	s := storeConProductos(producto("p1", "Audífonos"))

	s.ApplyUpdate(producto("pX", "Fantasma"))

	snap := s.Snapshot()
	require.Len(t, snap.Items, 1)
	assert.Equal(t, "Audífonos", snap.Items[0].Name)
	assert.Empty(t, snap.Error, "la actualización ausente no debe producir error")
}

// ApplyDelete elimina por identidad; ausente es no-op.
func TestApplyDelete_EliminaYAusenteEsNoOp(t *testing.T) {
	s := storeConProductos(producto("p1", "Audífonos"), producto("p2", "Reloj"))

	s.ApplyDelete("p1")
	assert.Equal(t, 1, s.Len())

	s.ApplyDelete("pX")
	assert.Equal(t, 1, s.Len(), "eliminar una identidad ausente no debe cambiar nada")
}

// ──────────────────────────────────────────────────────────────────────────────
// Selección de edición
// ──────────────────────────────────────────────────────────────────────────────

func TestSelect_FijaYLimpiaLaSeleccion(t *testing.T) {
	s := storeConProductos(producto("p1", "Audífonos"))
	p := producto("p1", "Audífonos")

	s.Select(&p)
	require.NotNil(t, s.Snapshot().Selected)
	assert.Equal(t, "p1", s.Snapshot().Selected.ID)

	s.Select(nil)
	assert.Nil(t, s.Snapshot().Selected, "select nil debe limpiar la selección")
}

// ──────────────────────────────────────────────────────────────────────────────
// Cambio de estado (orders / deliveries)
// ──────────────────────────────────────────────────────────────────────────────

func TestApplyStatus_Orden_CambiaEstado(t *testing.T) {
	s := store.New(store.OrderStatusFunc)
	s.ApplyFetch([]entity.Order{{ID: "o1", Status: entity.OrderStatusPending}})

	s.ApplyStatus("o1", entity.OrderStatusShipped)

	snap := s.Snapshot()
	assert.Equal(t, entity.OrderStatusShipped, snap.Items[0].Status)
	assert.False(t, snap.Items[0].UpdatedAt.IsZero(), "el sello de actualización debe refrescarse")
}

// Pasar a delivered sella la hora real; repetirlo la sobrescribe.
func TestApplyStatus_Entrega_DeliveredSellaHoraIdempotente(t *testing.T) {
	s := store.New(store.DeliveryStatusFunc)
	s.ApplyFetch([]entity.Delivery{{ID: "d1", Status: entity.DeliveryStatusInTransit}})

	s.ApplyStatus("d1", entity.DeliveryStatusDelivered)
	primera := s.Snapshot().Items[0].ActualDeliveryTime
	require.NotNil(t, primera, "delivered debe sellar la hora real de entrega")

	time.Sleep(5 * time.Millisecond)
	s.ApplyStatus("d1", entity.DeliveryStatusDelivered)
	segunda := s.Snapshot().Items[0].ActualDeliveryTime
	require.NotNil(t, segunda)
	assert.True(t, segunda.After(*primera) || segunda.Equal(*primera),
		"repetir delivered debe sobrescribir el sello, nunca fallar")
}

// ApplyStatus con identidad ausente es no-op.
func TestApplyStatus_IdentidadAusente_NoOp(t *testing.T) {
	s := store.New(store.OrderStatusFunc)
	s.ApplyFetch([]entity.Order{{ID: "o1", Status: entity.OrderStatusPending}})

	s.ApplyStatus("oX", entity.OrderStatusShipped)

	snap := s.Snapshot()
	assert.Equal(t, entity.OrderStatusPending, snap.Items[0].Status)
	assert.Empty(t, snap.Error)
}

// ──────────────────────────────────────────────────────────────────────────────
// Snapshot — aislamiento
// ──────────────────────────────────────────────────────────────────────────────

// El snapshot es una copia: mutarlo no afecta el store.
func TestSnapshot_EsCopiaAislada(t *testing.T) {
	s := storeConProductos(producto("p1", "Audífonos"))

	snap := s.Snapshot()
	snap.Items[0].Name = "mutado"

	assert.Equal(t, "Audífonos", s.Snapshot().Items[0].Name)
}
