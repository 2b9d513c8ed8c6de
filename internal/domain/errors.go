package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// Los use cases los devuelven tal cual; la capa HTTP los traduce a códigos.
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrDuplicate    = errors.New("recurso duplicado")
	ErrUnauthorized = errors.New("no autorizado")

	// ErrUserNotFound usuario inexistente o inactivo en login.
	ErrUserNotFound = errors.New("usuario no encontrado")
	// ErrUsernameTaken ya existe un usuario con ese username.
	ErrUsernameTaken = errors.New("el username ya está registrado")

	// ErrNoAvailableBatch no hay ningún lote con cantidad positiva para el
	// par (tienda, producto). No es fatal: el planificador degrada a
	// sugerencia cero y estimación de quiebre nula.
	ErrNoAvailableBatch = errors.New("no hay lote disponible con stock")

	// ErrFifoViolation la solicitud excede el techo del lote más antiguo (o
	// apunta a un lote más nuevo) sin autorización de override.
	ErrFifoViolation = errors.New("excede la cantidad del lote más antiguo; se requiere override de manager")

	// ErrAuthorization el actor no tiene rol suficiente para la acción.
	ErrAuthorization = errors.New("se requiere rol manager para esta acción")

	// ErrInvalidCadence frecuencia de reposición fuera del rango permitido [1,3].
	ErrInvalidCadence = errors.New("la frecuencia de reposición debe estar entre 1 y 3 días")

	// ErrInsufficientStock la mutación dejaría la cantidad en negativo.
	ErrInsufficientStock = errors.New("stock insuficiente")
)
