package arena

import "errors"

var (
	// ErrZeroSize indicates a zero or negative size where a positive size is
	// required.
	ErrZeroSize = errors.New("arena: size must be positive")

	// ErrTooLarge indicates a reserve request above MaxCapacity.
	ErrTooLarge = errors.New("arena: reserve size exceeds MaxCapacity")

	// ErrOutOfReserved indicates a grow request that would pass the end of
	// the reserved range. The reservation is fixed at Reserve time and never
	// grows; callers that hit this must use a smaller request or a bigger
	// reservation.
	ErrOutOfReserved = errors.New("arena: out of reserved address space")

	// ErrNotReserved indicates an operation on an arena that holds no
	// reservation.
	ErrNotReserved = errors.New("arena: arena has not been reserved")

	// ErrDecommitBounds indicates a decommit larger than the committed size.
	ErrDecommitBounds = errors.New("arena: decommit exceeds committed size")
)
