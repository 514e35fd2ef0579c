package model

// AddressModel is the GORM-specific struct for the 'addresses' table.
type AddressModel struct {
	ID            int64  `gorm:"primaryKey;autoIncrement"`
	PostalCode    string `gorm:"type:varchar(10);not null"`
	AddressStreet string `gorm:"type:varchar(30);not null"`
	AddressNumber string `gorm:"type:varchar(10);not null"`

	Users []UserModel `gorm:"many2many:user_addresses;joinForeignKey:AddressID;joinReferences:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (AddressModel) TableName() string {
	return "addresses"
}
