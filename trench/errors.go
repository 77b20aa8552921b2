package trench

import "errors"

var (
	// ErrMalformedInstruction indicates an edge with an unknown direction or
	// a non-positive length.
	ErrMalformedInstruction = errors.New("trench: malformed instruction")

	// ErrUnclosedLoop indicates that replaying the instructions does not
	// return to the starting point, or that there are no instructions.
	ErrUnclosedLoop = errors.New("trench: path does not return to its start")

	// ErrInvalidTurn indicates two consecutive edges that are not
	// perpendicular. Such a pair cannot occur on a rectilinear loop.
	ErrInvalidTurn = errors.New("trench: consecutive edges must be perpendicular")

	// ErrScanParity indicates that the scanner met open ground while its
	// top and bottom parity flags disagreed. The painted grid is corrupt.
	ErrScanParity = errors.New("trench: parity flags disagree outside the boundary")

	// ErrTooLarge indicates a plan whose bounding box exceeds MaxExtent, or
	// the cell limit given to DenseArea.
	ErrTooLarge = errors.New("trench: plan too large")
)
