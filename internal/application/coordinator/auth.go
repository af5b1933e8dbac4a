package coordinator

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/backoffice-core/internal/dispatch"
	"github.com/jhoicas/backoffice-core/internal/domain"
	"github.com/jhoicas/backoffice-core/internal/domain/entity"
	"github.com/jhoicas/backoffice-core/internal/domain/repository"
	"github.com/jhoicas/backoffice-core/internal/store"
	"github.com/jhoicas/backoffice-core/pkg/logger"
)

// Auth coordinador de sesión: login, signup y logout contra el backend
// simulado de usuarios. Hashea con bcrypt igual que el registro real.
type Auth struct {
	state *store.AuthState
	users repository.UserRepository
	log   *logger.Logger
}

// NewAuth construye el coordinador de sesión y lo registra bajo "auth".
func NewAuth(bus *dispatch.Bus, state *store.AuthState, users repository.UserRepository, log *logger.Logger) *Auth {
	a := &Auth{state: state, users: users, log: log}
	bus.Register(TopicAuth, a.Handle)
	return a
}

// Handle atiende una intención de sesión.
func (a *Auth) Handle(ctx context.Context, env *dispatch.Envelope) {
	switch in := env.Intent.(type) {
	case LoginIntent:
		env.Apply(a.state.BeginRequest)
		user, err := a.login(ctx, in.Email, in.Password)
		if err != nil {
			a.fail(env, err)
			return
		}
		env.Resolve(user, func() { a.state.ApplySession(user) })

	case SignupIntent:
		env.Apply(a.state.BeginRequest)
		user, err := a.signup(ctx, in.Name, in.Email, in.Password)
		if err != nil {
			a.fail(env, err)
			return
		}
		env.Resolve(user, func() { a.state.ApplySession(user) })

	case LogoutIntent:
		env.Resolve(nil, a.state.Logout)

	case ClearErrorIntent:
		env.Resolve(nil, a.state.ClearError)

	default:
		a.fail(env, fmt.Errorf("auth: intención desconocida %T", env.Intent))
	}
}

// login verifica email/password contra el backend. Cualquier credencial que
// no coincida colapsa al mismo mensaje, sin distinguir usuario inexistente
// de contraseña errada.
func (a *Auth) login(ctx context.Context, email, password string) (*entity.User, error) {
	user, err := a.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	return user, nil
}

// signup crea el usuario si el email está libre. El usuario queda disponible
// para logins posteriores con las mismas credenciales.
func (a *Auth) signup(ctx context.Context, name, email, password string) (*entity.User, error) {
	existing, err := a.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := a.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (a *Auth) fail(env *dispatch.Envelope, err error) {
	a.log.Warn().Err(err).Msg("operación de sesión fallida")
	env.Fail(err, func() { a.state.SetError(err.Error()) })
}
