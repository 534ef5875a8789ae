package dto

import "time"

// LoginRequest credenciales del formulario de login.
type LoginRequest struct {
	Username string `json:"usuario" validate:"required"`
	Password string `json:"senha" validate:"required"`
}

// SessionUserDTO usuario autenticado expuesto al cliente (nunca incluye la contraseña).
type SessionUserDTO struct {
	Username string `json:"usuario"`
	Role     string `json:"nivel"`
	Unit     string `json:"unidade"`
}

// LoginResponse token de sesión y usuario autenticado.
// StorageKey es la clave bajo la que el SPA persiste la sesión en el cliente.
type LoginResponse struct {
	Token      string         `json:"token"`
	ExpiresAt  *time.Time     `json:"expiresAt,omitempty"` // nil = sin expiración
	StorageKey string         `json:"storageKey"`
	User       SessionUserDTO `json:"user"`
}
