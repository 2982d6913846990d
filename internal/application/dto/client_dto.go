package dto

// CreateClientRequest body para POST /api/clients.
type CreateClientRequest struct {
	CINIT string `json:"ci_nit" validate:"required,min=6,max=20"`
	Name  string `json:"name" validate:"required"`
	Phone string `json:"phone" validate:"required,numeric,min=7,max=15"`
}

// UpdateClientRequest body para PUT /api/clients/:id.
type UpdateClientRequest struct {
	CINIT *string `json:"ci_nit" validate:"omitempty,min=6,max=20"`
	Name  *string `json:"name"`
	Phone *string `json:"phone" validate:"omitempty,numeric,min=7,max=15"`
}

// ClientResponse cliente registrado.
type ClientResponse struct {
	ID    string `json:"id"`
	CINIT string `json:"ci_nit"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}
