package notify

import (
	"encoding/json"
	"fmt"
)

// Routing keys published by the API service.
const (
	RKBookingCreated   = "booking.created"
	RKBookingConfirmed = "booking.confirmed"
	RKBookingCancelled = "booking.cancelled"
	RKBookingCompleted = "booking.completed"

	RKPaymentRecorded = "payment.recorded"
	RKPaymentRefunded = "payment.refunded"
)

type BookingCreated struct {
	BookingID string `json:"booking_id"`
	UserID    string `json:"user_id"`
	RoomID    string `json:"room_id"`
	CheckIn   string `json:"check_in"`
	CheckOut  string `json:"check_out"`
	Total     int64  `json:"total"`
}

type BookingSimple struct {
	BookingID string `json:"booking_id"`
}

type PaymentRecorded struct {
	PaymentID string `json:"payment_id"`
	BookingID string `json:"booking_id"`
	Amount    int64  `json:"amount"`
	Method    string `json:"method"`
}

type PaymentRefunded struct {
	PaymentID  string `json:"payment_id"`
	OriginalID string `json:"original_id"`
	BookingID  string `json:"booking_id"`
	Amount     int64  `json:"amount"`
}

func unmarshal[T any](b []byte) (T, error) {
	var t T
	if err := json.Unmarshal(b, &t); err != nil {
		var zero T
		return zero, fmt.Errorf("decode payload: %w", err)
	}
	return t, nil
}
