package dto

// ErrorResponse cuerpo de error HTTP: código estable para el frontend y
// razón legible de la regla violada.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
