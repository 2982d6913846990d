package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MessageResponse cuerpo de éxito para operaciones sin registro de retorno
// (cancelaciones y eliminaciones).
type MessageResponse struct {
	Message string `json:"message"`
}
