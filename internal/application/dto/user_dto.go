package dto

// CreateUserRequest body para POST /api/users. La contraseña se almacena
// con hash bcrypt; nunca en texto plano.
type CreateUserRequest struct {
	Name     string `json:"name" validate:"required"`
	LastName string `json:"last_name"`
	Username string `json:"username" validate:"required,min=4"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role" validate:"required,oneof=Administrador Usuario"`
	BranchID string `json:"branch_id" validate:"required"`
}

// UpdateUserRequest body para PUT /api/users/:id.
type UpdateUserRequest struct {
	Name     *string `json:"name"`
	LastName *string `json:"last_name"`
	Password *string `json:"password" validate:"omitempty,min=8"`
	Role     *string `json:"role" validate:"omitempty,oneof=Administrador Usuario"`
	BranchID *string `json:"branch_id"`
}

// UserResponse usuario sin credenciales.
type UserResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	LastName string `json:"last_name,omitempty"`
	Username string `json:"username"`
	Role     string `json:"role"`
	BranchID string `json:"branch_id"`
}

// LoginRequest body para POST /api/auth/login.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse token emitido y datos básicos del usuario.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
