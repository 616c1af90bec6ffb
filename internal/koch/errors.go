package koch

import "errors"

var (
	// ErrOrderNegative is returned when the recursion order is below zero.
	ErrOrderNegative = errors.New("koch: order must be >= 0")

	// ErrOrderTooHigh is returned when the recursion order exceeds MaxOrder.
	ErrOrderTooHigh = errors.New("koch: order exceeds MaxOrder")

	// ErrLengthNotPositive is returned when the base segment length is <= 0
	// or not a finite number.
	ErrLengthNotPositive = errors.New("koch: length must be a positive finite number")

	// ErrAngleNotFinite is returned when the heading angle is NaN or infinite.
	ErrAngleNotFinite = errors.New("koch: angle must be finite")
)
