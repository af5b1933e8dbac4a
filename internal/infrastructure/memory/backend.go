// Package memory implementa el backend remoto simulado: repositorios en
// memoria sembrados al arranque, con latencia artificial por operación.
// Es estado de proceso con ciclo de vida implícito (se crea al inicio, se
// muta durante la vida del proceso, se pierde al reiniciar); los puertos de
// repository permiten sustituirlo por persistencia real sin tocar los
// coordinadores.
package memory

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/jhoicas/backoffice-core/pkg/config"
)

// Backend agrupa los repositorios simulados sobre un mismo juego de datos.
type Backend struct {
	Products   *ProductRepo
	Orders     *OrderRepo
	Deliveries *DeliveryRepo
	Users      *UserRepo
	Settings   *SettingsRepo
	Dashboard  *DashboardRepo
}

// NewBackend construye y siembra el backend simulado.
func NewBackend(sim config.SimConfig) *Backend {
	lat := Latency{sim: sim}
	products := newProductRepo(lat)
	orders := newOrderRepo(lat)
	deliveries := newDeliveryRepo(lat)
	users := newUserRepo(lat)
	settings := newSettingsRepo(lat)
	dashboard := newDashboardRepo(lat, products, orders, deliveries)
	return &Backend{
		Products:   products,
		Orders:     orders,
		Deliveries: deliveries,
		Users:      users,
		Settings:   settings,
		Dashboard:  dashboard,
	}
}

// newID genera la identidad de una entidad nueva.
func newID() string {
	return uuid.New().String()
}

// sequence numerador monotónico para números de despliegue (ORD-xxx, DEL-xxx).
// A diferencia del esquema basado en reloj del servicio original, garantiza
// unicidad aun con dos creates en el mismo instante.
type sequence struct {
	mu     sync.Mutex
	prefix string
	next   int
}

func newSequence(prefix string, next int) *sequence {
	return &sequence{prefix: prefix, next: next}
}

// Next devuelve el siguiente número con formato PREFIX-nnn.
func (s *sequence) Next() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := s.next
	s.next++
	return fmt.Sprintf("%s-%03d", s.prefix, n)
}
