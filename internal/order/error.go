package order

import "errors"

var (
	ErrCartEmpty          = errors.New("cart is empty")
	ErrCheckoutInProgress = errors.New("checkout already in progress")
	ErrOrderNotFound      = errors.New("order not found")
	ErrForbidden          = errors.New("cannot access others' orders")
)
