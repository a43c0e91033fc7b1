package dto

// Wire names are camelCase to stay compatible with the existing web client.

type RegistrarUsuarioRequest struct {
	FullName string `json:"fullName" validate:"required"`
	CI       string `json:"ci"       validate:"required"`
	Email    string `json:"email"    validate:"required"`
	Phone    string `json:"phone"    validate:"required"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role"     validate:"required"`
}

type LoginRequest struct {
	CI       string `json:"ci"       validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	AccessToken string          `json:"accessToken"`
	TokenType   string          `json:"tokenType"`
	ExpiresIn   int             `json:"expiresIn"`
	User        UsuarioResponse `json:"user"`
}

type UsuarioResponse struct {
	ID       string `json:"id"`
	FullName string `json:"fullName"`
	CI       string `json:"ci"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Role     string `json:"role"`
}

// ActualizarUsuarioRequest carries a partial update; empty fields are left
// untouched. Password, when present, is re-hashed before persistence.
type ActualizarUsuarioRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}
