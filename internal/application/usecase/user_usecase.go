package usecase

import (
	"github.com/skarki/stayhub-api/internal/application/dto"
	"github.com/skarki/stayhub-api/internal/domain/entity"
	"github.com/skarki/stayhub-api/internal/domain/repository"
)

// UserUseCase edición de perfil desde el dashboard de usuario.
type UserUseCase struct {
	userRepo    repository.UserRepository
	sessionRepo repository.SessionRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(userRepo repository.UserRepository, sessionRepo repository.SessionRepository) *UserUseCase {
	return &UserUseCase{userRepo: userRepo, sessionRepo: sessionRepo}
}

// GetByID obtiene un usuario por id.
func (uc *UserUseCase) GetByID(id string) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// List lista todos los usuarios (vista admin).
func (uc *UserUseCase) List() ([]dto.UserResponse, error) {
	list, err := uc.userRepo.GetAll()
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		out = append(out, *toUserResponse(u))
	}
	return out, nil
}

// UpdateProfile funde los campos no vacíos del request en el perfil y persiste.
// Si el usuario editado es el de la sesión actual, re-sincroniza la copia de
// sesión: el puntero guarda una copia, no un enlace vivo.
func (uc *UserUseCase) UpdateProfile(id string, in dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	profile := user.Profile
	if in.FirstName != "" {
		profile.FirstName = in.FirstName
	}
	if in.LastName != "" {
		profile.LastName = in.LastName
	}
	if in.Email != "" {
		profile.Email = in.Email
	}
	if in.Phone != "" {
		profile.Phone = in.Phone
	}
	if in.Address != "" {
		profile.Address = in.Address
	}

	merged, err := uc.userRepo.Update(id, repository.UserPatch{Profile: &profile})
	if err != nil {
		return nil, err
	}

	if current, _ := uc.sessionRepo.GetCurrentUser(); current != nil && current.ID == id {
		if err := uc.sessionRepo.SetCurrentUser(merged); err != nil {
			return nil, err
		}
	}

	return toUserResponse(merged), nil
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
