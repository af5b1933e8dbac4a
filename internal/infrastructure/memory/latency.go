package memory

import (
	"context"
	"time"

	"github.com/jhoicas/backoffice-core/pkg/config"
)

// Latencias nominales por tipo de operación del backend simulado.
// Reproducen el rango 500ms-1000ms del servicio que este backend reemplaza.
const (
	latencyFetch    = 500 * time.Millisecond
	latencyMutate   = 500 * time.Millisecond
	latencySettings = 800 * time.Millisecond
	latencyProfile  = 600 * time.Millisecond
	latencyPassword = 800 * time.Millisecond
)

// Latency aplica la latencia artificial de cada operación remota simulada.
// Respeta la cancelación del contexto: una operación cancelada no resuelve.
type Latency struct {
	sim config.SimConfig
}

// Wait duerme la latencia nominal escalada por configuración. Con la
// simulación deshabilitada solo verifica el contexto.
func (l Latency) Wait(ctx context.Context, nominal time.Duration) error {
	d := l.sim.Scaled(nominal)
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
