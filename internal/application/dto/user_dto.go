package dto

// UpdateProfileRequest edición del perfil desde el dashboard de usuario.
// Campos vacíos se conservan como están.
type UpdateProfileRequest struct {
	FirstName string `json:"firstName" validate:"omitempty,max=100"`
	LastName  string `json:"lastName" validate:"omitempty,max=100"`
	Email     string `json:"email" validate:"omitempty,email"`
	Phone     string `json:"phone" validate:"omitempty,max=30"`
	Address   string `json:"address" validate:"omitempty,max=300"`
}
