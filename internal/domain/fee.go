package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Fee is the result of pricing one parking session.
type Fee struct {
	// DurationHours is the elapsed time in hours, rounded to 2 decimals.
	DurationHours decimal.Decimal
	// Amount is the amount due in whole currency units.
	Amount int64
}

// ComputeFee prices the interval [entryTime, exitTime] at ratePerHour.
// It is pure: same inputs, same fee. exitTime before entryTime is a caller
// error and yields ErrInvalidInterval, never a negative fee.
func ComputeFee(entryTime, exitTime time.Time, ratePerHour decimal.Decimal) (Fee, error) {
	if exitTime.Before(entryTime) {
		return Fee{}, ErrInvalidInterval
	}

	hours := decimal.NewFromFloat(exitTime.Sub(entryTime).Hours()).Round(2)
	amount := hours.Mul(ratePerHour).Round(0).IntPart()

	return Fee{DurationHours: hours, Amount: amount}, nil
}
