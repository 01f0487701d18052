package resolver

import "errors"

var (
	ErrEmptyDefaultLocale = errors.New("resolver: default locale cannot be empty")
)
