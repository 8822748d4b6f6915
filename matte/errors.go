package matte

import "github.com/pkg/errors"

var (
	ErrEmptyFrame   = errors.New("empty frame: width and height must be at least 1")
	ErrSizeMismatch = errors.New("region size does not match frame size")
)
