package coordinator

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/backoffice-core/internal/dispatch"
	"github.com/jhoicas/backoffice-core/internal/domain"
	"github.com/jhoicas/backoffice-core/internal/domain/repository"
	"github.com/jhoicas/backoffice-core/internal/store"
	"github.com/jhoicas/backoffice-core/pkg/logger"
)

// Settings coordinador del agregado de configuración. Perfil, facturación y
// cambio de contraseña pasan por el backend simulado; las preferencias de
// notificación / seguridad / aplicación son transiciones inmediatas.
type Settings struct {
	state  *store.SettingsState
	remote repository.SettingsRepository
	users  repository.UserRepository
	log    *logger.Logger
}

// NewSettings construye el coordinador y lo registra bajo "settings".
func NewSettings(
	bus *dispatch.Bus,
	state *store.SettingsState,
	remote repository.SettingsRepository,
	users repository.UserRepository,
	log *logger.Logger,
) *Settings {
	s := &Settings{state: state, remote: remote, users: users, log: log}
	bus.Register(TopicSettings, s.Handle)
	return s
}

// Handle atiende una intención de configuración.
func (s *Settings) Handle(ctx context.Context, env *dispatch.Envelope) {
	switch in := env.Intent.(type) {
	case FetchSettingsIntent:
		env.Apply(s.state.BeginRequest)
		profile, billing, err := s.remote.Fetch(ctx)
		if err != nil {
			s.fail(env, err)
			return
		}
		env.Resolve(nil, func() { s.state.ApplyFetch(profile, billing) })

	case UpdateProfileIntent:
		env.Apply(s.state.BeginRequest)
		updated, err := s.remote.UpdateProfile(ctx, in.Profile)
		if err != nil {
			s.fail(env, err)
			return
		}
		env.Resolve(updated, func() { s.state.ApplyProfile(updated) })

	case ChangePasswordIntent:
		env.Apply(s.state.BeginRequest)
		if err := s.changePassword(ctx, in); err != nil {
			s.fail(env, err)
			return
		}
		changedAt := time.Now()
		env.Resolve(nil, func() { s.state.ApplyPasswordChanged(changedAt) })

	case UpdateNotificationsIntent:
		env.Resolve(nil, func() { s.state.ApplyNotifications(in.Settings) })

	case UpdateSecurityIntent:
		env.Resolve(nil, func() { s.state.ApplySecurity(in.Settings) })

	case UpdateBillingIntent:
		env.Resolve(nil, func() { s.state.ApplyBilling(in.Billing) })

	case UpdateApplicationIntent:
		env.Resolve(nil, func() { s.state.ApplyApplication(in.Settings) })

	case ClearErrorIntent:
		env.Resolve(nil, s.state.ClearError)

	default:
		s.fail(env, fmt.Errorf("settings: intención desconocida %T", env.Intent))
	}
}

// changePassword valida la contraseña actual contra el backend y persiste el
// hash nuevo. La validación de longitud reproduce la del servidor simulado.
func (s *Settings) changePassword(ctx context.Context, in ChangePasswordIntent) error {
	user, err := s.users.FindByEmail(ctx, in.Email)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrWrongPassword
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.CurrentPassword)); err != nil {
		return domain.ErrWrongPassword
	}
	if len(in.NewPassword) < 8 {
		return domain.ErrPasswordTooShort
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.users.UpdatePassword(ctx, in.Email, string(hash))
}

func (s *Settings) fail(env *dispatch.Envelope, err error) {
	s.log.Warn().Err(err).Msg("operación de configuración fallida")
	env.Fail(err, func() { s.state.SetError(err.Error()) })
}
