package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/backoffice-core/internal/application/coordinator"
	"github.com/jhoicas/backoffice-core/internal/dispatch"
	"github.com/jhoicas/backoffice-core/internal/domain/entity"
	"github.com/jhoicas/backoffice-core/internal/infrastructure/memory"
	httpRouter "github.com/jhoicas/backoffice-core/internal/interfaces/http"
	"github.com/jhoicas/backoffice-core/internal/store"
	"github.com/jhoicas/backoffice-core/pkg/config"
	"github.com/jhoicas/backoffice-core/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	// Backend simulado: repositorios en memoria sembrados, con latencia
	// artificial por operación.
	backend := memory.NewBackend(cfg.Sim)

	// Stores: un slice por colección más los estados de sesión,
	// configuración y tablero.
	authState := store.NewAuthState()
	products := store.New[entity.Product](nil)
	orders := store.New(store.OrderStatusFunc)
	deliveries := store.New(store.DeliveryStatusFunc)
	settingsState := store.NewSettingsState()
	dashboardState := store.NewDashboardState()

	// Bus de intenciones: las transiciones de todos los coordinadores se
	// aplican en orden en un solo goroutine.
	bus := dispatch.New(log)
	busCtx, stopBus := context.WithCancel(context.Background())
	defer stopBus()

	coordinator.NewCRUD(bus, coordinator.TopicProducts, products, backend.Products, nil, log)
	coordinator.NewCRUD(bus, coordinator.TopicOrders, orders, backend.Orders, backend.Orders, log)
	coordinator.NewCRUD(bus, coordinator.TopicDeliveries, deliveries, backend.Deliveries, backend.Deliveries, log)
	coordinator.NewAuth(bus, authState, backend.Users, log)
	coordinator.NewSettings(bus, settingsState, backend.Settings, backend.Users, log)
	coordinator.NewDashboard(bus, dashboardState, backend.Dashboard, log)

	busDone := make(chan struct{})
	go func() {
		defer close(busDone)
		bus.Run(busCtx)
	}()

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Backoffice API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Bus:        bus,
		Auth:       authState,
		Products:   products,
		Orders:     orders,
		Deliveries: deliveries,
		Settings:   settingsState,
		Dashboard:  dashboardState,
		JWT:        cfg.JWT,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	// Detener el bus y esperar a que drene las transiciones pendientes.
	stopBus()
	select {
	case <-busDone:
	case <-shutdownCtx.Done():
		log.Error().Msg("el bus no drenó a tiempo")
	}

	log.Info().Msg("aplicación detenida")
}
