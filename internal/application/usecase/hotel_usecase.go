package usecase

import (
	"github.com/skarki/stayhub-api/internal/application/dto"
	"github.com/skarki/stayhub-api/internal/domain"
	"github.com/skarki/stayhub-api/internal/domain/entity"
	"github.com/skarki/stayhub-api/internal/domain/repository"
)

// HotelUseCase CRUD de hoteles (solo vista admin).
type HotelUseCase struct {
	repo repository.HotelRepository
}

// NewHotelUseCase construye el caso de uso.
func NewHotelUseCase(repo repository.HotelRepository) *HotelUseCase {
	return &HotelUseCase{repo: repo}
}

// Create da de alta un hotel. Status por defecto: active.
func (uc *HotelUseCase) Create(in dto.CreateHotelRequest) (*dto.HotelResponse, error) {
	status := in.Status
	if status == "" {
		status = entity.HotelActive
	}
	if !entity.ValidHotelStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	hotel, err := uc.repo.Add(&entity.Hotel{
		Name:        in.Name,
		Location:    in.Location,
		Rooms:       in.Rooms,
		Rating:      in.Rating,
		Status:      status,
		Description: in.Description,
	})
	if err != nil {
		return nil, err
	}
	return toHotelResponse(hotel), nil
}

// GetByID obtiene un hotel por id.
func (uc *HotelUseCase) GetByID(id string) (*dto.HotelResponse, error) {
	hotel, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return toHotelResponse(hotel), nil
}

// List lista todos los hoteles.
func (uc *HotelUseCase) List() ([]dto.HotelResponse, error) {
	list, err := uc.repo.GetAll()
	if err != nil {
		return nil, err
	}
	out := make([]dto.HotelResponse, 0, len(list))
	for _, h := range list {
		out = append(out, *toHotelResponse(h))
	}
	return out, nil
}

// Update edición parcial de un hotel.
func (uc *HotelUseCase) Update(id string, in dto.UpdateHotelRequest) (*dto.HotelResponse, error) {
	if in.Status != nil && !entity.ValidHotelStatus(*in.Status) {
		return nil, domain.ErrInvalidInput
	}
	hotel, err := uc.repo.Update(id, repository.HotelPatch{
		Name:        in.Name,
		Location:    in.Location,
		Rooms:       in.Rooms,
		Rating:      in.Rating,
		Status:      in.Status,
		Description: in.Description,
	})
	if err != nil {
		return nil, err
	}
	return toHotelResponse(hotel), nil
}

// Delete elimina un hotel. Idempotente: un id inexistente también responde éxito.
func (uc *HotelUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toHotelResponse(h *entity.Hotel) *dto.HotelResponse {
	if h == nil {
		return nil
	}
	return &dto.HotelResponse{
		ID:          h.ID,
		Name:        h.Name,
		Location:    h.Location,
		Rooms:       h.Rooms,
		Rating:      h.Rating,
		Status:      h.Status,
		Description: h.Description,
		CreatedAt:   h.CreatedAt,
	}
}
