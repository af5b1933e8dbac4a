package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/backoffice-core/internal/application/coordinator"
	"github.com/jhoicas/backoffice-core/internal/dispatch"
	"github.com/jhoicas/backoffice-core/internal/domain/entity"
	"github.com/jhoicas/backoffice-core/internal/infrastructure/memory"
	apphttp "github.com/jhoicas/backoffice-core/internal/interfaces/http"
	"github.com/jhoicas/backoffice-core/internal/store"
	"github.com/jhoicas/backoffice-core/pkg/config"
	"github.com/jhoicas/backoffice-core/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test — aplicación completa con backend sin latencia
// ──────────────────────────────────────────────────────────────────────────────

func buildFullApp(t *testing.T) *fiber.App {
	t.Helper()
	backend := memory.NewBackend(config.SimConfig{LatencyEnabled: false})
	log := logger.Nop()
	bus := dispatch.New(log)

	authState := store.NewAuthState()
	products := store.New[entity.Product](nil)
	orders := store.New(store.OrderStatusFunc)
	deliveries := store.New(store.DeliveryStatusFunc)
	settingsState := store.NewSettingsState()
	dashboardState := store.NewDashboardState()

	coordinator.NewCRUD(bus, coordinator.TopicProducts, products, backend.Products, nil, log)
	coordinator.NewCRUD(bus, coordinator.TopicOrders, orders, backend.Orders, backend.Orders, log)
	coordinator.NewCRUD(bus, coordinator.TopicDeliveries, deliveries, backend.Deliveries, backend.Deliveries, log)
	coordinator.NewAuth(bus, authState, backend.Users, log)
	coordinator.NewSettings(bus, settingsState, backend.Settings, backend.Users, log)
	coordinator.NewDashboard(bus, dashboardState, backend.Dashboard, log)

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

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		Bus:        bus,
		Auth:       authState,
		Products:   products,
		Orders:     orders,
		Deliveries: deliveries,
		Settings:   settingsState,
		Dashboard:  dashboardState,
		JWT:        config.JWTConfig{Secret: testJWTSecret, Expiration: testExpMin, Issuer: testIssuer},
	})
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body any) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

// loginSembrado autentica con las credenciales sembradas y devuelve el token.
func loginSembrado(t *testing.T, app *fiber.App) string {
	t.Helper()
	resp := doJSON(t, app, http.MethodPost, "/api/auth/login", "", fiber.Map{
		"email":    memory.SeedUserEmail,
		"password": memory.SeedUserPassword,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var body struct {
		Token string `json:"token"`
	}
	decode(t, resp, &body)
	require.NotEmpty(t, body.Token)
	return body.Token
}

// ──────────────────────────────────────────────────────────────────────────────
// Auth
// ──────────────────────────────────────────────────────────────────────────────

// Credenciales erradas: 401 con el mensaje plano del contrato.
func TestRouter_Login_CredencialesInvalidas(t *testing.T) {
	app := buildFullApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/auth/login", "", fiber.Map{
		"email":    memory.SeedUserEmail,
		"password": "equivocada",
	})

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	var body struct {
		Message string `json:"message"`
	}
	decode(t, resp, &body)
	assert.Equal(t, "Invalid credentials", body.Message)
}

// Signup con email ocupado: 409.
func TestRouter_Signup_EmailOcupado(t *testing.T) {
	app := buildFullApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/auth/signup", "", fiber.Map{
		"name":     "Otro",
		"email":    memory.SeedUserEmail,
		"password": "cualquier-clave",
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

// Ruta protegida sin token: 401.
func TestRouter_Protegida_SinToken(t *testing.T) {
	app := buildFullApp(t)

	resp := doJSON(t, app, http.MethodGet, "/api/products", "", nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Productos — ciclo completo sobre el bus
// ──────────────────────────────────────────────────────────────────────────────

func TestRouter_Products_ListYCreate(t *testing.T) {
	app := buildFullApp(t)
	token := loginSembrado(t, app)

	resp := doJSON(t, app, http.MethodGet, "/api/products", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var snap struct {
		Items   []map[string]any `json:"items"`
		Loading bool             `json:"loading"`
	}
	decode(t, resp, &snap)
	assert.Len(t, snap.Items, 3)
	assert.False(t, snap.Loading)

	resp = doJSON(t, app, http.MethodPost, "/api/products", token, fiber.Map{
		"name":  "Teclado mecánico",
		"sku":   "KB-004",
		"price": "129.99",
		"stock": 10,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}
	decode(t, resp, &created)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Teclado mecánico", created.Name)
}

// ──────────────────────────────────────────────────────────────────────────────
// Órdenes — cambio de estado y validación
// ──────────────────────────────────────────────────────────────────────────────

func TestRouter_Orders_Status(t *testing.T) {
	app := buildFullApp(t)
	token := loginSembrado(t, app)

	// Cargar la colección para que el cambio de estado tenga sobre qué aplicar.
	resp := doJSON(t, app, http.MethodGet, "/api/orders", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	// Un estado fuera del enum se rechaza sin tocar el bus.
	resp = doJSON(t, app, http.MethodPatch, "/api/orders/1/status", token, fiber.Map{"status": "volando"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodPatch, "/api/orders/1/status", token, fiber.Map{"status": "shipped"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var snap struct {
		Items []struct {
			ID     string `json:"id"`
			Status string `json:"status"`
		} `json:"items"`
	}
	decode(t, resp, &snap)
	require.NotEmpty(t, snap.Items)
	assert.Equal(t, "shipped", snap.Items[0].Status)
}

// ──────────────────────────────────────────────────────────────────────────────
// Configuración — cambio de contraseña
// ──────────────────────────────────────────────────────────────────────────────

func TestRouter_Settings_ChangePassword_Corta(t *testing.T) {
	app := buildFullApp(t)
	token := loginSembrado(t, app)

	resp := doJSON(t, app, http.MethodPost, "/api/settings/password", token, fiber.Map{
		"currentPassword": memory.SeedUserPassword,
		"newPassword":     "corta",
	})

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	var body struct {
		Message string `json:"message"`
	}
	decode(t, resp, &body)
	assert.Equal(t, "New password must be at least 8 characters long", body.Message)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tablero
// ──────────────────────────────────────────────────────────────────────────────

func TestRouter_Dashboard_Get(t *testing.T) {
	app := buildFullApp(t)
	token := loginSembrado(t, app)

	resp := doJSON(t, app, http.MethodGet, "/api/dashboard", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var snap struct {
		Stats *struct {
			TotalOrders            int    `json:"totalOrders"`
			MonthlyIncomeFormatted string `json:"monthlyIncomeFormatted"`
		} `json:"stats"`
		Revenue      []any `json:"revenue"`
		Distribution []any `json:"distribution"`
	}
	decode(t, resp, &snap)
	require.NotNil(t, snap.Stats)
	assert.Equal(t, 2, snap.Stats.TotalOrders)
	assert.Equal(t, "$789.96", snap.Stats.MonthlyIncomeFormatted)
	assert.Len(t, snap.Revenue, 6)
	assert.Len(t, snap.Distribution, 5)
}
