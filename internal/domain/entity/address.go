package entity

// Address is a shipping destination. Several users may share one address.
type Address struct {
	ID         int64
	PostalCode string
	Street     string
	Number     string
}
