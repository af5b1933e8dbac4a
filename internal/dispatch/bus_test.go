package dispatch_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/backoffice-core/internal/dispatch"
	"github.com/jhoicas/backoffice-core/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

type intentoDePrueba struct{ topic string }

func (i intentoDePrueba) Topic() string { return i.topic }

// busEnMarcha construye un bus con su loop corriendo; el cleanup lo detiene.
func busEnMarcha(t *testing.T) *dispatch.Bus {
	t.Helper()
	bus := dispatch.New(logger.Nop())
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
	return bus
}

// ──────────────────────────────────────────────────────────────────────────────
// Despacho
// ──────────────────────────────────────────────────────────────────────────────

// Un topic sin handler registrado rechaza el despacho.
func TestDispatch_TopicSinHandler_Rechaza(t *testing.T) {
	bus := busEnMarcha(t)

	_, err := bus.Dispatch(context.Background(), intentoDePrueba{topic: "desconocido"})

	assert.ErrorIs(t, err, dispatch.ErrNoHandler)
}

// La transición terminal de éxito aplica la mutación y entrega el resultado.
func TestDispatch_Exito_AplicaYEntregaResultado(t *testing.T) {
	bus := busEnMarcha(t)
	var aplicado bool
	bus.Register("prueba", func(ctx context.Context, env *dispatch.Envelope) {
		env.Resolve("listo", func() { aplicado = true })
	})

	ticket, err := bus.Dispatch(context.Background(), intentoDePrueba{topic: "prueba"})
	require.NoError(t, err)
	require.NoError(t, ticket.Wait(context.Background()))

	assert.True(t, aplicado, "la mutación debe aplicarse antes de cerrar el ticket")
	assert.Equal(t, "listo", ticket.Result())
}

// El fallo llega por el ticket después de aplicar el SetError.
func TestDispatch_Fallo_PropagaElError(t *testing.T) {
	bus := busEnMarcha(t)
	falla := assert.AnError
	var errorAplicado bool
	bus.Register("prueba", func(ctx context.Context, env *dispatch.Envelope) {
		env.Fail(falla, func() { errorAplicado = true })
	})

	ticket, err := bus.Dispatch(context.Background(), intentoDePrueba{topic: "prueba"})
	require.NoError(t, err)

	assert.ErrorIs(t, ticket.Wait(context.Background()), falla)
	assert.True(t, errorAplicado)
}

// La transición de inicio siempre se aplica antes que la terminal.
func TestDispatch_InicioAntesQueTerminal(t *testing.T) {
	bus := busEnMarcha(t)
	var orden []string
	var mu sync.Mutex
	registrar := func(paso string) func() {
		return func() {
			mu.Lock()
			defer mu.Unlock()
			orden = append(orden, paso)
		}
	}
	bus.Register("prueba", func(ctx context.Context, env *dispatch.Envelope) {
		env.Apply(registrar("inicio"))
		env.Resolve(nil, registrar("terminal"))
	})

	ticket, err := bus.Dispatch(context.Background(), intentoDePrueba{topic: "prueba"})
	require.NoError(t, err)
	require.NoError(t, ticket.Wait(context.Background()))

	mu.Lock()
	defer mu.Unlock()
	require.Equal(t, []string{"inicio", "terminal"}, orden)
}

// ──────────────────────────────────────────────────────────────────────────────
// Concurrencia — cada intención es una tarea independiente
// ──────────────────────────────────────────────────────────────────────────────

// Dos intenciones iguales en vuelo resuelven ambas; ninguna se de-duplica.
func TestDispatch_IntencionesDuplicadas_AmbasResuelven(t *testing.T) {
	bus := busEnMarcha(t)
	var resueltas int
	var mu sync.Mutex
	bus.Register("prueba", func(ctx context.Context, env *dispatch.Envelope) {
		time.Sleep(10 * time.Millisecond)
		env.Resolve(nil, func() {
			mu.Lock()
			defer mu.Unlock()
			resueltas++
		})
	})

	t1, err := bus.Dispatch(context.Background(), intentoDePrueba{topic: "prueba"})
	require.NoError(t, err)
	t2, err := bus.Dispatch(context.Background(), intentoDePrueba{topic: "prueba"})
	require.NoError(t, err)

	require.NoError(t, t1.Wait(context.Background()))
	require.NoError(t, t2.Wait(context.Background()))

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 2, resueltas, "cada intención corre como tarea independiente")
}

// Muchas intenciones concurrentes: todas las transiciones se aplican y el
// conteo final es exacto (un solo goroutine aplica las mutaciones).
func TestDispatch_RafagaConcurrente_ConteoExacto(t *testing.T) {
	bus := busEnMarcha(t)
	contador := 0
	bus.Register("prueba", func(ctx context.Context, env *dispatch.Envelope) {
		env.Resolve(nil, func() { contador++ })
	})

	const n = 100
	tickets := make([]*dispatch.Ticket, 0, n)
	for i := 0; i < n; i++ {
		ticket, err := bus.Dispatch(context.Background(), intentoDePrueba{topic: "prueba"})
		require.NoError(t, err)
		tickets = append(tickets, ticket)
	}
	for _, ticket := range tickets {
		require.NoError(t, ticket.Wait(context.Background()))
	}

	assert.Equal(t, n, contador)
}

// ──────────────────────────────────────────────────────────────────────────────
// Apagado
// ──────────────────────────────────────────────────────────────────────────────

// Tras cancelar el contexto del loop, el bus rechaza despachos nuevos pero
// las intenciones en vuelo terminan de aplicarse.
func TestRun_Apagado_DrenaEnVuelo(t *testing.T) {
	bus := dispatch.New(logger.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		bus.Run(ctx)
	}()

	arranco := make(chan struct{})
	var aplicada bool
	bus.Register("prueba", func(ctx context.Context, env *dispatch.Envelope) {
		close(arranco)
		time.Sleep(20 * time.Millisecond)
		env.Resolve(nil, func() { aplicada = true })
	})

	ticket, err := bus.Dispatch(context.Background(), intentoDePrueba{topic: "prueba"})
	require.NoError(t, err)
	<-arranco
	cancel()
	<-done

	require.NoError(t, ticket.Wait(context.Background()))
	assert.True(t, aplicada, "la intención en vuelo debe drenar antes de salir")

	_, err = bus.Dispatch(context.Background(), intentoDePrueba{topic: "prueba"})
	assert.ErrorIs(t, err, dispatch.ErrClosed)
}

// Un despacho que compite con la cancelación o bien es rechazado con
// ErrClosed o bien resuelve; ningún ticket aceptado queda sin transición
// terminal.
func TestRun_DispatchConcurrenteConApagado_NingunTicketColgado(t *testing.T) {
	for i := 0; i < 200; i++ {
		bus := dispatch.New(logger.Nop())
		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan struct{})
		go func() {
			defer close(done)
			bus.Run(ctx)
		}()
		bus.Register("prueba", func(ctx context.Context, env *dispatch.Envelope) {
			env.Resolve(nil, nil)
		})

		entregado := make(chan *dispatch.Ticket, 1)
		go func() {
			ticket, err := bus.Dispatch(context.Background(), intentoDePrueba{topic: "prueba"})
			if err != nil {
				entregado <- nil
				return
			}
			entregado <- ticket
		}()

		cancel()
		<-done

		if ticket := <-entregado; ticket != nil {
			espera, cancelarEspera := context.WithTimeout(context.Background(), time.Second)
			err := ticket.Wait(espera)
			cancelarEspera()
			require.NoError(t, err, "todo ticket aceptado debe resolver antes de que Run retorne")
		}
	}
}
