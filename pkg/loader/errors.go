package loader

import "errors"

var (
	ErrInvalidRoot      = errors.New("loader: translations root is not set")
	ErrNoFilesFound     = errors.New("loader: no translation files found")
	ErrUnknownKind      = errors.New("loader: unknown source kind")
	ErrUnsupportedFile  = errors.New("loader: unsupported file extension")
	ErrMalformedFile    = errors.New("loader: malformed translation file")
	ErrNotAnObject      = errors.New("loader: top-level value is not an object")
	ErrUnsupportedValue = errors.New("loader: unsupported leaf value")
	ErrModuleEval       = errors.New("loader: module evaluation failed")
	ErrNonObjectExport  = errors.New("loader: module export is not an object")
)
