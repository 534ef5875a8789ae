// Package access aplica la visibilidad por usuario: admin ve todo,
// el resto solo los registros cuyo dueño es su propio username.
package access

import "github.com/jhoicas/stockpro/internal/domain/entity"

// Owned es cualquier registro con dueño (Product, StockMovement).
type Owned interface {
	OwnerID() string
}

// Scope alcance de lectura/escritura del usuario que actúa.
type Scope struct {
	UserID string
	Admin  bool
}

// ScopeFor construye el alcance a partir de una credencial autenticada.
func ScopeFor(cred *entity.Credential) Scope {
	if cred == nil {
		return Scope{}
	}
	return Scope{UserID: cred.Username, Admin: cred.IsAdmin()}
}

// Allows indica si el alcance puede ver un registro cuyo dueño es ownerID.
// Un alcance sin usuario no ve nada.
func (s Scope) Allows(ownerID string) bool {
	if s.Admin {
		return true
	}
	return s.UserID != "" && ownerID == s.UserID
}

// Filter devuelve la colección completa para admin; si no, solo los registros propios.
// Nunca modifica el slice de entrada.
func Filter[T Owned](items []T, scope Scope) []T {
	if scope.Admin {
		out := make([]T, len(items))
		copy(out, items)
		return out
	}
	out := make([]T, 0, len(items))
	for _, it := range items {
		if scope.Allows(it.OwnerID()) {
			out = append(out, it)
		}
	}
	return out
}
