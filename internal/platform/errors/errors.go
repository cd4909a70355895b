package apperrors

import "errors"

var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrNotFound          = errors.New("not found")
	ErrLoadFailure       = errors.New("matrix load failed")
	ErrNoMatrix          = errors.New("no matrix loaded")
	ErrUnknownTheme      = errors.New("unknown theme")
	ErrDanglingReference = errors.New("dangling link reference")
)
