// Package coordinator contiene los coordinadores de efectos: por cada topic
// escuchan intenciones, invocan la operación remota simulada y traducen su
// resultado en una transición de éxito o fallo sobre el store.
//
// Máquina de estados por intención: Idle -> Pending -> (Success | Failure) -> Idle.
// No hay retry, timeout ni de-duplicación: una operación iniciada siempre
// resuelve, y dos intenciones iguales en vuelo son dos tareas independientes.
package coordinator

import (
	"context"
	"fmt"

	"github.com/jhoicas/backoffice-core/internal/dispatch"
	"github.com/jhoicas/backoffice-core/internal/store"
	"github.com/jhoicas/backoffice-core/pkg/logger"
)

// RemoteCRUD operaciones remotas uniformes de una colección.
// Las implementaciones viven en infrastructure/memory (backend simulado).
type RemoteCRUD[T store.Identifiable] interface {
	FetchAll(ctx context.Context) ([]T, error)
	Create(ctx context.Context, draft T) (T, error)
	Update(ctx context.Context, item T) (T, error)
	Delete(ctx context.Context, id string) error
}

// RemoteStatus operación remota de cambio de estado, para entidades que la
// soportan (orders, deliveries).
type RemoteStatus interface {
	UpdateStatus(ctx context.Context, id, status string) error
}

// CRUD coordinador genérico de colecciones. Un solo coordinador
// parametrizado reemplaza los pares duplicados por entidad.
type CRUD[T store.Identifiable] struct {
	entity string
	store  *store.Store[T]
	remote RemoteCRUD[T]
	status RemoteStatus // nil si la entidad no tiene cambio de estado
	log    *logger.Logger
}

// NewCRUD construye el coordinador y lo registra bajo su topic.
func NewCRUD[T store.Identifiable](
	bus *dispatch.Bus,
	entity string,
	st *store.Store[T],
	remote RemoteCRUD[T],
	status RemoteStatus,
	log *logger.Logger,
) *CRUD[T] {
	c := &CRUD[T]{entity: entity, store: st, remote: remote, status: status, log: log}
	bus.Register(entity, c.Handle)
	return c
}

// Handle atiende una intención. Corre como tarea independiente por intención;
// las transiciones que encola se aplican en orden en el loop del bus.
func (c *CRUD[T]) Handle(ctx context.Context, env *dispatch.Envelope) {
	switch in := env.Intent.(type) {
	case FetchIntent:
		env.Apply(c.store.BeginRequest)
		items, err := c.remote.FetchAll(ctx)
		if err != nil {
			c.fail(env, err)
			return
		}
		env.Resolve(items, func() { c.store.ApplyFetch(items) })

	case CreateIntent[T]:
		env.Apply(c.store.BeginRequest)
		created, err := c.remote.Create(ctx, in.Draft)
		if err != nil {
			c.fail(env, err)
			return
		}
		env.Resolve(created, func() { c.store.ApplyCreate(created) })

	case UpdateIntent[T]:
		env.Apply(c.store.BeginRequest)
		updated, err := c.remote.Update(ctx, in.Item)
		if err != nil {
			c.fail(env, err)
			return
		}
		env.Resolve(updated, func() { c.store.ApplyUpdate(updated) })

	case DeleteIntent:
		env.Apply(c.store.BeginRequest)
		if err := c.remote.Delete(ctx, in.ID); err != nil {
			c.fail(env, err)
			return
		}
		env.Resolve(in.ID, func() { c.store.ApplyDelete(in.ID) })

	case StatusIntent:
		if c.status == nil {
			c.fail(env, fmt.Errorf("%s: cambio de estado no soportado", c.entity))
			return
		}
		env.Apply(c.store.BeginRequest)
		if err := c.status.UpdateStatus(ctx, in.ID, in.Status); err != nil {
			c.fail(env, err)
			return
		}
		env.Resolve(nil, func() { c.store.ApplyStatus(in.ID, in.Status) })

	case SelectIntent[T]:
		env.Resolve(nil, func() { c.store.Select(in.Item) })

	case ClearErrorIntent:
		env.Resolve(nil, func() { c.store.ClearError() })

	default:
		c.fail(env, fmt.Errorf("%s: intención desconocida %T", c.entity, env.Intent))
	}
}

// fail colapsa cualquier fallo en un mensaje plano sobre el store.
func (c *CRUD[T]) fail(env *dispatch.Envelope, err error) {
	c.log.Warn().Str("entity", c.entity).Err(err).Msg("operación remota fallida")
	env.Fail(err, func() { c.store.SetError(err.Error()) })
}
