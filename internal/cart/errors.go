package cart

import "errors"

var (
	// ErrLineNotFound is returned when no line exists for the given product ID.
	ErrLineNotFound = errors.New("cart line not found")
	// ErrInvalidQuantity is returned when an absolute quantity is not positive.
	ErrInvalidQuantity = errors.New("quantity must be positive")
)
