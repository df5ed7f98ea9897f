package services

import "errors"

// Failure messages returned to API callers.
const (
	MsgUserExists        = "El usuario ya existe"
	MsgInvalidToken      = "Token inválido"
	MsgUserNotFound      = "Usuario no encontrado"
	MsgEmailRequired     = "Email es requerido"
	MsgEmailInvalid      = "Formato de email inválido"
	MsgPasswordRequired  = "Password es requerido"
	MsgPasswordMalformed = "Password debe tener una mayúscula, dos números, solo letras y números, entre 8-12 caracteres"
)

var (
	// ErrAlreadyExists is returned when signing up with an email that is taken.
	ErrAlreadyExists = errors.New(MsgUserExists)
	// ErrInvalidToken is returned for bad signature, expired or malformed tokens.
	ErrInvalidToken = errors.New(MsgInvalidToken)
	// ErrUserNotFound is returned when a valid token names a user that no longer exists.
	ErrUserNotFound = errors.New(MsgUserNotFound)
)

// ValidationError reports the first invalid field of a sign-up request.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}
