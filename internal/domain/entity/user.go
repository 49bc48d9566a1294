package entity

import "time"

// Roles del sistema (enumeración fija).
const (
	RoleAdmin       = "admin"
	RoleCoordinador = "coordinador"
	RoleAuxiliar    = "auxiliar"
)

// ValidRole reporta si role pertenece a la enumeración fija.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleCoordinador || role == RoleAuxiliar
}

// User representa un usuario del sistema. Las entidades del catálogo solo lo
// referencian por ID (createdBy/updatedBy); la identidad en caliente viene del token.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         string // ver constantes Role*
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// UserRef es la proyección de un usuario referenciado, resuelta por populate.
type UserRef struct {
	Name  string
	Email string
	Role  string
}
