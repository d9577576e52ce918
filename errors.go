package sweep

import "errors"

var (
	// ErrControlPoints is returned when a control point set has the wrong size
	// for the requested spline.
	ErrControlPoints = errors.New("invalid number of control points")

	// ErrSteps is returned when fewer than one step is requested.
	ErrSteps = errors.New("number of steps must be at least 1")

	// ErrNotFlat is returned when a profile curve leaves the xy plane.
	ErrNotFlat = errors.New("profile curve must be flat on the xy plane")

	ErrEmptyCurve = errors.New("curve has no samples")

	ErrInvalidMesh = errors.New("invalid mesh")
)
