package wishlist

import "errors"

var (
	ErrAlreadyWishlisted = errors.New("product already in wishlist")
	ErrItemNotFound      = errors.New("wishlist item not found")
)
