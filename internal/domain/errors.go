package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas). La capa HTTP los traduce a
// código de estado con una tabla explícita; ver internal/interfaces/http/errors.go.
var (
	ErrValidation          = errors.New("entrada inválida")
	ErrDuplicate           = errors.New("recurso duplicado")
	ErrNotFound            = errors.New("recurso no encontrado")
	ErrCategoryNotFound    = errors.New("la categoría especificada no existe")
	ErrSubcategoryNotFound = errors.New("la subcategoría no existe o no pertenece a la categoría especificada")
	ErrInvalidID           = errors.New("ID inválido")
	ErrUnauthorized        = errors.New("no autorizado")
	ErrForbidden           = errors.New("acceso denegado")
	ErrEmailAlreadyExists  = errors.New("el email ya está registrado")
	ErrUserNotFound        = errors.New("usuario no encontrado")
)

// wrapped lleva un mensaje propio sin perder el sentinel para errors.Is.
type wrapped struct {
	sentinel error
	msg      string
}

func (e *wrapped) Error() string { return e.msg }
func (e *wrapped) Unwrap() error { return e.sentinel }

// Wrap devuelve un error cuyo mensaje es msg y que satisface errors.Is(err, sentinel).
func Wrap(sentinel error, msg string) error {
	return &wrapped{sentinel: sentinel, msg: msg}
}

// Validationf envuelve ErrValidation con un mensaje descriptivo para el caller.
func Validationf(format string, args ...interface{}) error {
	return Wrap(ErrValidation, fmt.Sprintf(format, args...))
}

// Duplicatef envuelve ErrDuplicate con un mensaje descriptivo.
func Duplicatef(format string, args ...interface{}) error {
	return Wrap(ErrDuplicate, fmt.Sprintf(format, args...))
}

// NotFoundf envuelve ErrNotFound con un mensaje descriptivo.
func NotFoundf(format string, args ...interface{}) error {
	return Wrap(ErrNotFound, fmt.Sprintf(format, args...))
}
