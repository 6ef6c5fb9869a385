package cart

import "errors"

var (
	// -- Validation & Input --
	ErrInvalidQuantity = errors.New("invalid cart quantity")

	// -- Resource State --
	ErrLineNotFound = errors.New("cart item not found")
)

// MaxQuantity bounds a single line; the storefront caps the picker at 99.
const MaxQuantity = 99
