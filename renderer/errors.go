package renderer

import "errors"

var (
	ErrNoTracers        = errors.New("renderer: no tracers attached")
	ErrSceneNotDefined  = errors.New("renderer: no scene defined")
	ErrInvalidFrameDims = errors.New("renderer: invalid frame dimensions")
	ErrAlreadyClosed    = errors.New("renderer: already closed")
)
