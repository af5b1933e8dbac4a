// Package dispatch implementa el bus de intenciones: un canal ordenado que
// lleva intenciones tipadas de la capa de presentación hacia los
// coordinadores, y transiciones de estado de vuelta hacia los stores.
// Todas las mutaciones de estado se aplican en un solo goroutine (Run),
// de modo que los stores tienen un único escritor.
package dispatch

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/jhoicas/backoffice-core/pkg/logger"
)

// ErrNoHandler se devuelve al despachar una intención sin handler registrado.
var ErrNoHandler = errors.New("dispatch: no handler for topic")

// ErrClosed se devuelve al despachar sobre un bus ya detenido.
var ErrClosed = errors.New("dispatch: bus closed")

// Intent una petición tipada de cambio o refresco de estado. Topic decide
// qué coordinador la atiende.
type Intent interface {
	Topic() string
}

// Handler atiende todas las intenciones de un topic. Cada intención corre
// como tarea independiente: dos intenciones del mismo tipo en vuelo son dos
// tareas (sin de-duplicación, sin límite de profundidad).
type Handler func(ctx context.Context, env *Envelope)

// Envelope envuelve una intención en vuelo con su id de correlación.
type Envelope struct {
	ID     string
	Intent Intent

	bus    *Bus
	done   chan struct{}
	err    error
	result any
}

// Result devuelve el valor adjuntado a la transición terminal (o nil).
// Solo es válido después de que Ticket.Wait retorne.
func (e *Envelope) Result() any { return e.result }

// transition una mutación de estado producida por un coordinador, aplicada
// en orden de llegada por el loop del bus.
type transition struct {
	env      *Envelope
	apply    func()
	terminal bool
	err      error
}

// Ticket permite esperar la transición terminal de una intención despachada.
type Ticket struct {
	env *Envelope
}

// Done se cierra cuando la transición terminal fue aplicada al store.
func (t *Ticket) Done() <-chan struct{} { return t.env.done }

// Wait bloquea hasta la transición terminal o hasta que ctx se cancele.
// Devuelve el error de la operación remota si la intención falló.
func (t *Ticket) Wait(ctx context.Context) error {
	select {
	case <-t.env.done:
		return t.env.err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Result devuelve el valor adjuntado a la transición terminal.
func (t *Ticket) Result() any { return t.env.result }

// Bus el bus de despacho: registra un handler por topic y serializa la
// aplicación de transiciones en un único loop.
type Bus struct {
	log *logger.Logger

	mu       sync.RWMutex
	handlers map[string]Handler
	closed   bool

	transitions chan transition
	tasks       sync.WaitGroup
}

// New construye el bus. El buffer del canal de transiciones solo amortigua
// ráfagas; no hay límite de intenciones en vuelo.
func New(log *logger.Logger) *Bus {
	return &Bus{
		log:         log,
		handlers:    make(map[string]Handler),
		transitions: make(chan transition, 256),
	}
}

// Register asocia el handler de un topic. Un topic tiene exactamente un
// handler; registrar dos veces reemplaza el anterior.
func (b *Bus) Register(topic string, h Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[topic] = h
}

// Dispatch entrega la intención a su handler como tarea independiente y
// devuelve un Ticket para esperar su transición terminal.
func (b *Bus) Dispatch(ctx context.Context, intent Intent) (*Ticket, error) {
	b.mu.RLock()
	h, ok := b.handlers[intent.Topic()]
	if b.closed {
		b.mu.RUnlock()
		return nil, ErrClosed
	}
	if !ok {
		b.mu.RUnlock()
		return nil, ErrNoHandler
	}
	// El Add ocurre bajo el mismo RLock que verificó closed: el apagado toma
	// el Lock de escritura antes de esperar el contador, así que toda tarea
	// que pasó la verificación ya está registrada cuando Wait observa.
	b.tasks.Add(1)
	b.mu.RUnlock()

	env := &Envelope{
		ID:     uuid.New().String(),
		Intent: intent,
		bus:    b,
		done:   make(chan struct{}),
	}
	b.log.Debug().
		Str("intent_id", env.ID).
		Str("topic", intent.Topic()).
		Msg("intención despachada")

	go func() {
		defer b.tasks.Done()
		h(ctx, env)
	}()
	return &Ticket{env: env}, nil
}

// Apply encola una transición intermedia (no terminal) para la intención.
func (e *Envelope) Apply(fn func()) {
	e.bus.transitions <- transition{env: e, apply: fn}
}

// Resolve encola la transición terminal de éxito, con un resultado opcional.
func (e *Envelope) Resolve(result any, fn func()) {
	e.result = result
	e.bus.transitions <- transition{env: e, apply: fn, terminal: true}
}

// Fail encola la transición terminal de fallo. fn normalmente es el
// SetError del store correspondiente.
func (e *Envelope) Fail(err error, fn func()) {
	e.bus.transitions <- transition{env: e, apply: fn, terminal: true, err: err}
}

// Run consume transiciones en orden de llegada y las aplica. Es el único
// goroutine que muta los stores. Retorna cuando ctx se cancela y las tareas
// en vuelo terminaron de encolar sus transiciones.
func (b *Bus) Run(ctx context.Context) {
	drained := make(chan struct{})
	go func() {
		<-ctx.Done()
		b.mu.Lock()
		b.closed = true
		b.mu.Unlock()
		// Las tareas en vuelo aún pueden encolar su transición terminal.
		b.tasks.Wait()
		close(drained)
	}()

	for {
		select {
		case t := <-b.transitions:
			b.applyTransition(t)
		case <-drained:
			// Vaciar lo que quedó encolado antes de salir.
			for {
				select {
				case t := <-b.transitions:
					b.applyTransition(t)
				default:
					return
				}
			}
		}
	}
}

func (b *Bus) applyTransition(t transition) {
	if t.apply != nil {
		t.apply()
	}
	if t.terminal {
		t.env.err = t.err
		if t.err != nil {
			b.log.Debug().
				Str("intent_id", t.env.ID).
				Str("topic", t.env.Intent.Topic()).
				Err(t.err).
				Msg("intención fallida")
		} else {
			b.log.Debug().
				Str("intent_id", t.env.ID).
				Str("topic", t.env.Intent.Topic()).
				Msg("intención resuelta")
		}
		close(t.env.done)
	}
}
