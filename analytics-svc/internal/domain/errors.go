package domain

import (
	"errors"
	"fmt"
)

// Error kinds. Every specific error below wraps exactly one of them, so callers can
// branch on the kind with errors.Is.
var (
	ErrCapacity         = errors.New("capacity exceeded")
	ErrNotFound         = errors.New("not found")
	ErrInvalidInput     = errors.New("invalid input")
	ErrInvalidReference = errors.New("invalid reference")
)

var (
	ErrStoreFull = fmt.Errorf("%w: order store is full", ErrCapacity)
	ErrGraphFull = fmt.Errorf("%w: graph vertex table is full", ErrCapacity)

	ErrEmptyIndex     = fmt.Errorf("%w: no orders to filter", ErrNotFound)
	ErrDishNotFound   = fmt.Errorf("%w: dish", ErrNotFound)
	ErrVertexNotFound = fmt.Errorf("%w: vertex", ErrNotFound)

	ErrInvalidDate   = fmt.Errorf("%w: invalid date format", ErrInvalidInput)
	ErrInvalidMonth  = fmt.Errorf("%w: unrecognized month", ErrInvalidInput)
	ErrInvalidRange  = fmt.Errorf("%w: start date is after end date", ErrInvalidInput)
	ErrMalformedLine = fmt.Errorf("%w: malformed order line", ErrInvalidInput)

	ErrInvalidStart = fmt.Errorf("%w: invalid start vertex", ErrInvalidReference)
)
