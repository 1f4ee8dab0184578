package repository

import "errors"

var (
	// ErrNotFound indica que el ID no corresponde a ningún documento
	ErrNotFound = errors.New("document not found")
	// ErrInvalidID indica que el ID no es un ObjectID hexadecimal válido
	ErrInvalidID = errors.New("invalid document ID")
)
