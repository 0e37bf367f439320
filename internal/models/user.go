package models

// UserRole defines the three marketplace roles.
type UserRole string

const (
	RoleSolicitante       UserRole = "SOLICITANTE"
	RoleProveedorServicio UserRole = "PROVEEDOR_SERVICIO"
	RoleProveedorInsumos  UserRole = "PROVEEDOR_INSUMOS"
)

// User is an authentication principal. Passwords are plaintext mock
// constants by design; they are never serialized in API responses.
type User struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Email        string   `json:"email"`
	Role         UserRole `json:"role"`
	Organization string   `json:"organization"`
	AvatarColor  string   `json:"avatarColor"`
	Password     string   `json:"-"`
}
