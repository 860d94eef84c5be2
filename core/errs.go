package core

import "errors"

var (
	ErrOrientationMismatch = errors.New("crosshair link requires identical orientation")
	ErrSingularTransform   = errors.New("singular transform")
)
