// Package auth implementa el inicio de sesión de la demo. NO es un sistema de
// autenticación: cualquier par email/password no vacío es aceptado, nunca se
// verifica una credencial contra un secreto almacenado. El JWT que se emite es
// solo el portador de sesión entre requests HTTP.
package auth

import (
	"context"
	"strings"
	"time"

	"github.com/skarki/stayhub-api/internal/application/dto"
	"github.com/skarki/stayhub-api/internal/domain"
	"github.com/skarki/stayhub-api/internal/domain/entity"
	"github.com/skarki/stayhub-api/internal/domain/repository"
	"github.com/skarki/stayhub-api/pkg/jwt"
	"github.com/skarki/stayhub-api/pkg/logger"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// Config opciones del caso de uso.
type Config struct {
	JWT JWTConfig
	// Delay retardo simulado de "llamada a API" en login/signup (0 = sin retardo).
	Delay time.Duration
	// AdminEmails emails (en minúscula) que reciben rol admin.
	AdminEmails []string
}

// AuthUseCase casos de uso de sesión: login, signup, logout, usuario actual.
type AuthUseCase struct {
	userRepo    repository.UserRepository
	sessionRepo repository.SessionRepository
	cfg         Config
	admins      map[string]struct{}
	log         *logger.Logger
}

// NewAuthUseCase construye el caso de uso.
func NewAuthUseCase(userRepo repository.UserRepository, sessionRepo repository.SessionRepository, cfg Config, log *logger.Logger) *AuthUseCase {
	admins := make(map[string]struct{}, len(cfg.AdminEmails))
	for _, e := range cfg.AdminEmails {
		admins[strings.ToLower(e)] = struct{}{}
	}
	return &AuthUseCase{userRepo: userRepo, sessionRepo: sessionRepo, cfg: cfg, admins: admins, log: log}
}

// wait aplica el retardo simulado. Cancelable vía contexto: un request abortado
// no deja un timer huérfano que complete el login después.
func (uc *AuthUseCase) wait(ctx context.Context) error {
	if uc.cfg.Delay <= 0 {
		return nil
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(uc.cfg.Delay):
		return nil
	}
}

func (uc *AuthUseCase) roleFor(email string) string {
	if _, ok := uc.admins[strings.ToLower(email)]; ok {
		return entity.RoleAdmin
	}
	return entity.RoleUser
}

// Login acepta cualquier par no vacío. Busca el usuario por email; si no
// existe, lo crea a partir de la parte local del email ("a@b.com" -> "a") y lo
// persiste. Deja al usuario como sesión actual y emite el token.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.AuthResponse, error) {
	if in.Email == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.wait(ctx); err != nil {
		return nil, err
	}

	user, err := uc.userRepo.FindByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		name := in.Email
		if at := strings.Index(in.Email, "@"); at > 0 {
			name = in.Email[:at]
		}
		user, err = uc.userRepo.Add(&entity.User{
			Name:  name,
			Email: in.Email,
			Role:  uc.roleFor(in.Email),
			Profile: entity.Profile{
				FirstName: name,
				Email:     in.Email,
			},
		})
		if err != nil {
			return nil, err
		}
		uc.log.Info().Str("email", in.Email).Msg("usuario creado en login")
	}
	if user.Role == "" {
		user.Role = uc.roleFor(user.Email)
	}

	return uc.startSession(user)
}

// Signup siempre crea un usuario nuevo con el nombre y email provistos.
// No chequea duplicados de email: es el comportamiento heredado de la fuente
// (la unicidad quedaría en la frontera de un almacén real).
func (uc *AuthUseCase) Signup(ctx context.Context, in dto.SignupRequest) (*dto.AuthResponse, error) {
	if in.Name == "" || in.Email == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.wait(ctx); err != nil {
		return nil, err
	}

	first, last := splitName(in.Name)
	user, err := uc.userRepo.Add(&entity.User{
		Name:  in.Name,
		Email: in.Email,
		Role:  uc.roleFor(in.Email),
		Profile: entity.Profile{
			FirstName: first,
			LastName:  last,
			Email:     in.Email,
		},
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("email", in.Email).Msg("usuario registrado")

	return uc.startSession(user)
}

// Logout limpia el puntero de sesión. Síncrono, sin retardo simulado.
func (uc *AuthUseCase) Logout() error {
	return uc.sessionRepo.SetCurrentUser(nil)
}

// CurrentUser devuelve el usuario de la sesión actual (nil si no hay sesión).
func (uc *AuthUseCase) CurrentUser() (*dto.UserResponse, error) {
	user, err := uc.sessionRepo.GetCurrentUser()
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	return toUserResponse(user), nil
}

func (uc *AuthUseCase) startSession(user *entity.User) (*dto.AuthResponse, error) {
	if err := uc.sessionRepo.SetCurrentUser(user); err != nil {
		return nil, err
	}
	token, err := jwt.Generate(uc.cfg.JWT.Secret, user.ID, user.Email, user.Role, uc.cfg.JWT.Issuer, uc.cfg.JWT.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{Token: token, User: *toUserResponse(user)}, nil
}

func splitName(name string) (first, last string) {
	parts := strings.Fields(name)
	if len(parts) == 0 {
		return "", ""
	}
	return parts[0], strings.Join(parts[1:], " ")
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Role:  u.Role,
		Profile: dto.ProfileDTO{
			FirstName: u.Profile.FirstName,
			LastName:  u.Profile.LastName,
			Email:     u.Profile.Email,
			Phone:     u.Profile.Phone,
			Address:   u.Profile.Address,
		},
		CreatedAt: u.CreatedAt,
	}
}
