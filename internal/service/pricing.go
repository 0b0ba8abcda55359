package service

import (
	"context"
	"time"
)

type rateReader interface {
	RateForRoom(ctx context.Context, roomID string) (int64, error)
}

// PricingCalculator computes stay totals from the room type's nightly rate.
// The rate is read at call time, so rate changes affect future quotes only.
type PricingCalculator struct {
	rates rateReader
}

func NewPricingCalculator(rates rateReader) *PricingCalculator {
	return &PricingCalculator{rates: rates}
}

// Quote returns nightly rate × whole nights between checkIn and checkOut.
// It does not floor at zero; callers validate date order upstream.
func (p *PricingCalculator) Quote(ctx context.Context, roomID string, checkIn, checkOut time.Time) (int64, error) {
	rate, err := p.rates.RateForRoom(ctx, roomID)
	if err != nil {
		return 0, err
	}
	return rate * nightsBetween(checkIn, checkOut), nil
}

func nightsBetween(checkIn, checkOut time.Time) int64 {
	return int64(checkOut.Sub(checkIn).Hours() / 24)
}
