package model

import (
	"time"
)

// OrderModel mirrors the 'orders' table.
type OrderModel struct {
	ID            int64      `gorm:"primaryKey;autoIncrement"`
	PaymentID     int64      `gorm:"uniqueIndex;not null"`
	PaymentMethod string     `gorm:"type:varchar(30);not null;default:'MP_TRANSFER'"`
	UserID        int64      `gorm:"not null;index"`
	User          *UserModel `gorm:"foreignKey:UserID"`
	AddressID     *int64
	Address       *AddressModel `gorm:"foreignKey:AddressID"`
	NetPrice      float64       `gorm:"type:decimal(12,2);not null"`
	IVA           float64       `gorm:"column:iva;type:decimal(4,3);not null;default:0.21"`
	Total         float64       `gorm:"type:decimal(12,2);not null"`
	Profit        float64       `gorm:"type:decimal(12,2);not null"`
	CreatedAt     time.Time     `gorm:"index"`

	Lines []ProductOrderModel `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// ProductOrderModel mirrors the 'product_orders' table, one row per order line.
type ProductOrderModel struct {
	ID        int64         `gorm:"primaryKey;autoIncrement"`
	OrderID   int64         `gorm:"not null;index"`
	ProductID int64         `gorm:"not null;index"`
	Product   *ProductModel `gorm:"foreignKey:ProductID"`
	Quantity  int           `gorm:"not null;default:1"`
}

func (ProductOrderModel) TableName() string {
	return "product_orders"
}
