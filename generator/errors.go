package generator

import "errors"

var (
	ErrNilMesh         = errors.New("generator: nil mesh")
	ErrInvalidSegments = errors.New("generator: segment count must be positive")
	ErrInvalidRadius   = errors.New("generator: radius must be positive")
	ErrNotRegistered   = errors.New("generator: primitive not registered")
	ErrUnknownShape    = errors.New("generator: unknown shape")
	ErrUnknownPreset   = errors.New("generator: unknown supershape preset")
)
