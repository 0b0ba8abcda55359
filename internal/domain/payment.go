package domain

import "time"

type PaymentMethod string

const (
	MethodCash         PaymentMethod = "Cash"
	MethodCreditCard   PaymentMethod = "Credit Card"
	MethodBankTransfer PaymentMethod = "Bank Transfer"
	MethodEWallet      PaymentMethod = "E-Wallet"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case MethodCash, MethodCreditCard, MethodBankTransfer, MethodEWallet:
		return true
	}
	return false
}

// Payment is one append-only ledger entry against a booking. A refund is a
// new entry with a negative amount; rows are never updated or deleted.
type Payment struct {
	ID        string `gorm:"primaryKey"`
	BookingID string `gorm:"index"`
	Amount    int64
	Method    PaymentMethod
	CreatedAt time.Time
}
