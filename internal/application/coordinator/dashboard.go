package coordinator

import (
	"context"
	"fmt"

	"github.com/jhoicas/backoffice-core/internal/dispatch"
	"github.com/jhoicas/backoffice-core/internal/domain/repository"
	"github.com/jhoicas/backoffice-core/internal/store"
	"github.com/jhoicas/backoffice-core/pkg/logger"
)

// Dashboard coordinador de las métricas del tablero: tres operaciones de
// solo lectura contra el backend simulado.
type Dashboard struct {
	state  *store.DashboardState
	remote repository.DashboardRepository
	log    *logger.Logger
}

// NewDashboard construye el coordinador y lo registra bajo "dashboard".
func NewDashboard(bus *dispatch.Bus, state *store.DashboardState, remote repository.DashboardRepository, log *logger.Logger) *Dashboard {
	d := &Dashboard{state: state, remote: remote, log: log}
	bus.Register(TopicDashboard, d.Handle)
	return d
}

// Handle atiende una intención del tablero.
func (d *Dashboard) Handle(ctx context.Context, env *dispatch.Envelope) {
	switch env.Intent.(type) {
	case FetchStatsIntent:
		env.Apply(d.state.BeginRequest)
		stats, err := d.remote.Stats(ctx)
		if err != nil {
			d.fail(env, err)
			return
		}
		env.Resolve(stats, func() { d.state.ApplyStats(stats) })

	case FetchRevenueIntent:
		env.Apply(d.state.BeginRequest)
		points, err := d.remote.Revenue(ctx)
		if err != nil {
			d.fail(env, err)
			return
		}
		env.Resolve(points, func() { d.state.ApplyRevenue(points) })

	case FetchDistributionIntent:
		env.Apply(d.state.BeginRequest)
		dist, err := d.remote.Distribution(ctx)
		if err != nil {
			d.fail(env, err)
			return
		}
		env.Resolve(dist, func() { d.state.ApplyDistribution(dist) })

	case ClearErrorIntent:
		env.Resolve(nil, d.state.ClearError)

	default:
		d.fail(env, fmt.Errorf("dashboard: intención desconocida %T", env.Intent))
	}
}

func (d *Dashboard) fail(env *dispatch.Envelope, err error) {
	d.log.Warn().Err(err).Msg("operación del tablero fallida")
	env.Fail(err, func() { d.state.SetError(err.Error()) })
}
