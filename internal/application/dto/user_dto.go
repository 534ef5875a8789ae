package dto

// UserRequest alta o edición de un usuario en la lista editable.
// En la edición el usuario lo fija la ruta; Password vacío conserva la contraseña actual.
type UserRequest struct {
	Username string `json:"usuario"`
	Password string `json:"senha"`
	Role     string `json:"nivel"`
	Unit     string `json:"unidade"`
}

// UserResponse salida de un usuario (sin contraseña).
type UserResponse struct {
	Username string `json:"usuario"`
	Role     string `json:"nivel"`
	Unit     string `json:"unidade"`
}

// UserListResponse lista de usuarios.
type UserListResponse struct {
	Items      []UserResponse `json:"items"`
	StorageKey string         `json:"storageKey"`
}
