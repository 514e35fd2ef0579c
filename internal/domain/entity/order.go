package entity

import (
	"math"
	"time"
)

// Order is a paid purchase of one or more products delivered to an address.
type Order struct {
	ID            int64
	PaymentID     int64 // Gateway payment id, unique across orders.
	PaymentMethod string
	UserID        int64
	User          *User
	AddressID     *int64
	Address       *Address
	Lines         []OrderLine
	NetPrice      float64
	IVA           float64 // Tax rate in [0, 1].
	Total         float64
	Profit        float64
	CreatedAt     time.Time
}

// OrderLine is one product of an order.
type OrderLine struct {
	ID        int64
	OrderID   int64
	ProductID int64
	Product   *Product
	Quantity  int
}

// OrderFilter bounds an order listing by creation date.
type OrderFilter struct {
	MinDate *time.Time
	MaxDate *time.Time
}

// PricedLine is a line with the product's price and cost at order time.
type PricedLine struct {
	ProductID int64
	Quantity  int
	Price     float64
	Cost      float64
}

// OrderTotals are the monetary figures of an order.
type OrderTotals struct {
	NetPrice float64
	IVA      float64
	Total    float64
	Profit   float64
}

// PriceOrder computes net, total and profit for lines at the given tax rate.
func PriceOrder(lines []PricedLine, iva float64) OrderTotals {
	var net, cost float64
	for _, line := range lines {
		qty := float64(line.Quantity)
		net += line.Price * qty
		cost += line.Cost * qty
	}

	return OrderTotals{
		NetPrice: roundCents(net),
		IVA:      iva,
		Total:    roundCents(net + net*iva),
		Profit:   roundCents(net - cost),
	}
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
