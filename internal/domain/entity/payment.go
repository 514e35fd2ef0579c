package entity

import "time"

// PaymentInfo is the gateway's view of a payment.
type PaymentInfo struct {
	ID           int64
	Status       string
	StatusDetail string
}

// PreferenceItem is one product line of a checkout preference.
type PreferenceItem struct {
	ID        int64
	Title     string
	Quantity  int
	UnitPrice float64
}

// PreferenceInput describes a checkout preference for a buyer.
type PreferenceInput struct {
	User      *User
	Address   *Address
	Items     []PreferenceItem
	ExpiresAt time.Time
}

// Preference is an embeddable checkout created by the gateway.
type Preference struct {
	ID        string
	InitPoint string
}
