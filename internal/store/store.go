// Package store contiene el estado autoritativo en memoria de cada tipo de
// entidad, junto con sus banderas de ciclo de petición (loading / error).
// Toda escritura llega serializada desde el loop del bus de despacho; las
// lecturas (Snapshot) pueden venir de cualquier goroutine.
package store

import "sync"

// Identifiable entidad con identidad propia dentro de una colección.
type Identifiable interface {
	EntityID() string
}

// StatusFunc muta el estado de una entidad y devuelve la copia actualizada.
// Cada tipo de entidad define su regla (sellos de fecha incluidos).
type StatusFunc[T Identifiable] func(item T, status string) T

// Snapshot vista de solo lectura del estado de una colección.
type Snapshot[T Identifiable] struct {
	Items    []T
	Loading  bool
	Error    string // "" = sin error
	Selected *T
}

// Store colección ordenada de una entidad más banderas de ciclo de petición.
// Un único Store parametrizado reemplaza los cinco pares duplicados por
// entidad: products, orders y deliveries comparten este comportamiento.
type Store[T Identifiable] struct {
	mu       sync.RWMutex
	items    []T
	loading  bool
	err      string
	selected *T
	statusFn StatusFunc[T]
}

// New construye un Store vacío. statusFn puede ser nil si la entidad no
// tiene operación de cambio de estado.
func New[T Identifiable](statusFn StatusFunc[T]) *Store[T] {
	return &Store[T]{statusFn: statusFn}
}

// BeginRequest marca la petición en curso: loading = true y limpia el error.
func (s *Store[T]) BeginRequest() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = true
	s.err = ""
}

// ApplyFetch reemplaza la colección completa con la secuencia recibida.
func (s *Store[T]) ApplyFetch(items []T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = items
	s.loading = false
	s.err = ""
}

// ApplyCreate agrega un elemento al final (orden de llegada, sin ordenar).
func (s *Store[T]) ApplyCreate(item T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, item)
	s.loading = false
	s.err = ""
}

// ApplyUpdate reemplaza in situ el elemento con la misma identidad,
// conservando su posición. Si no existe, no hace nada (silencioso).
func (s *Store[T]) ApplyUpdate(item T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].EntityID() == item.EntityID() {
			s.items[i] = item
			break
		}
	}
	s.loading = false
	s.err = ""
}

// ApplyDelete elimina todos los elementos con la identidad dada.
// Identidad ausente: no-op.
func (s *Store[T]) ApplyDelete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.items[:0]
	for _, it := range s.items {
		if it.EntityID() != id {
			kept = append(kept, it)
		}
	}
	s.items = kept
	s.loading = false
	s.err = ""
}

// ApplyStatus aplica statusFn al elemento con la identidad dada.
// Identidad ausente o statusFn nil: no-op (solo limpia loading/error).
func (s *Store[T]) ApplyStatus(id, status string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.statusFn != nil {
		for i := range s.items {
			if s.items[i].EntityID() == id {
				s.items[i] = s.statusFn(s.items[i], status)
				break
			}
		}
	}
	s.loading = false
	s.err = ""
}

// SetError registra el mensaje de fallo y apaga loading.
// La colección queda intacta: nunca se aplica optimistamente, así que no
// hay nada que revertir.
func (s *Store[T]) SetError(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	s.err = message
}

// ClearError limpia el error sin tocar la colección.
func (s *Store[T]) ClearError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = ""
}

// Select fija la referencia "en edición" que la capa de presentación usa
// para prellenar formularios. No copia ni bloquea el elemento.
func (s *Store[T]) Select(item *T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = item
}

// Snapshot devuelve una vista copiada del estado actual.
func (s *Store[T]) Snapshot() Snapshot[T] {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]T, len(s.items))
	copy(items, s.items)
	return Snapshot[T]{
		Items:    items,
		Loading:  s.loading,
		Error:    s.err,
		Selected: s.selected,
	}
}

// Len devuelve el tamaño actual de la colección.
func (s *Store[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}
