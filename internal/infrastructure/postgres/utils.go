package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
// Es la señal de clave duplicada del almacén: la carrera entre pre-check y escritura
// se resuelve aquí, reclasificando a ErrDuplicate en cada repositorio.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// isInvalidTextRepresentation verifica un identificador con formato inválido (22P02).
// Los casos de uso validan el UUID antes de consultar, así que esto es la última línea.
func isInvalidTextRepresentation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "22P02"
}
