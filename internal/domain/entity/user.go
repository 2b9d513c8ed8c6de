package entity

import "time"

// Role rol de un usuario. Es el único insumo de autorización del motor:
// no existe un modelo de permisos más fino.
type Role string

// Roles válidos.
const (
	RoleEmployee Role = "employee"
	RoleManager  Role = "manager"
)

// Valid indica si el rol es uno de los conocidos.
func (r Role) Valid() bool {
	return r == RoleEmployee || r == RoleManager
}

// CanOverride indica si el rol puede autorizar overrides: exceder el techo
// FIFO del lote más antiguo o modificar una sugerencia del planificador.
func (r Role) CanOverride() bool {
	return r == RoleManager
}

// User representa un usuario del sistema, asignado a una tienda.
type User struct {
	ID           int
	Username     string
	Email        string
	PasswordHash string // bcrypt; nunca en claro después de persistir
	Role         Role
	StoreID      int
	IsActive     bool
	CreatedAt    time.Time
}

// Actor identidad que ejecuta una acción. Viaja explícito en cada request
// (nunca como estado compartido del proceso).
type Actor struct {
	UserID int
	Role   Role
}
