package dto

// LoginRequest body para POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest body para POST /api/auth/register (solo admin).
type RegisterRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Role      string `json:"role,omitempty"`
}

// MemberResponse miembro en respuestas.
type MemberResponse struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Role      string `json:"role"`
}

// LoginResponse token + miembro.
type LoginResponse struct {
	Token  string         `json:"token"`
	Member MemberResponse `json:"member"`
}

// AddressResponse dirección del miembro codificada en base64.
type AddressResponse struct {
	Address string `json:"address"`
}

// Base64Request body para POST /api/base64/decode.
type Base64Request struct {
	Value string `json:"value"`
}

// Base64Response resultado de la decodificación.
type Base64Response struct {
	Value string `json:"value"`
}
