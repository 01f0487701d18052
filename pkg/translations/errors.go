package translations

import "errors"

var (
	ErrEmptyOutDir = errors.New("translations: output directory cannot be empty")
)
