package entity

// Roles válidos para Credential.
const (
	RoleAdmin   = "admin"
	RoleUsuario = "usuario"
)

// Credential es un registro del almacén de credenciales (lista estática).
// Password puede estar en texto plano o ser un hash bcrypt.
type Credential struct {
	Username string
	Password string
	Role     string // admin, usuario
	Unit     string // unidad / filial
}

// IsAdmin indica si la credencial tiene rol admin.
func (c *Credential) IsAdmin() bool { return c.Role == RoleAdmin }

// NormalizeRole devuelve admin solo si role es exactamente admin; cualquier otro valor es usuario.
func NormalizeRole(role string) string {
	if role == RoleAdmin {
		return RoleAdmin
	}
	return RoleUsuario
}
