package order

import (
	"math"

	"atelier-be/internal/cart"
)

const (
	// Shipping is waived only when the subtotal strictly exceeds the
	// threshold; a subtotal of exactly 200.00 still pays the flat fee.
	freeShippingThreshold = 200.00
	flatShippingFee       = 15.00

	taxRate = 0.08
)

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}

// ComputeTotals prices the given cart lines. Lines without a resolved
// product are skipped. Tax applies to the subtotal only, never to shipping.
func ComputeTotals(lines []*cart.Item) Totals {
	var subtotal float64
	for _, line := range lines {
		if line.Product == nil {
			continue
		}
		subtotal += line.Product.Price * float64(line.Quantity)
	}
	subtotal = roundCents(subtotal)

	shipping := flatShippingFee
	if subtotal > freeShippingThreshold {
		shipping = 0
	}

	tax := roundCents(subtotal * taxRate)

	return Totals{
		Subtotal: subtotal,
		Shipping: shipping,
		Tax:      tax,
		Total:    roundCents(subtotal + shipping + tax),
	}
}
