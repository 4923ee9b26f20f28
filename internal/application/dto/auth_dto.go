package dto

import "time"

// LoginRequest entrada para login. Cualquier par no vacío es aceptado:
// la demo no verifica credenciales contra ningún secreto.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// SignupRequest entrada para registro. Siempre crea un usuario nuevo
// (la fuente no chequea duplicados de email).
type SignupRequest struct {
	Name     string `json:"name" validate:"required,max=200"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// ProfileDTO perfil anidado del usuario.
type ProfileDTO struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
}

// UserResponse salida de un usuario.
type UserResponse struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Role      string     `json:"role"`
	Profile   ProfileDTO `json:"profile"`
	CreatedAt time.Time  `json:"created_at"`
}

// AuthResponse salida de login/signup: token de sesión + usuario.
type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
