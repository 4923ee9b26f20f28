package entity

import "time"

// Roles válidos para User.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Profile datos de perfil anidados del usuario (editables desde el dashboard).
type Profile struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
}

// User representa un usuario de la demo. El email actúa como clave de facto
// en el login (no hay restricción de unicidad en el almacén; ver signup).
// No guarda ningún secreto: las credenciales jamás se verifican.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role,omitempty"` // user, admin
	Profile   Profile   `json:"profile"`
	CreatedAt time.Time `json:"createdAt"`
}
