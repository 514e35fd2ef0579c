package model

import (
	"time"
)

// UserModel mirrors the 'users' table.
type UserModel struct {
	ID                     int64  `gorm:"primaryKey;autoIncrement"`
	Name                   string `gorm:"type:varchar(100);not null"`
	Surname                string `gorm:"type:varchar(100);not null"`
	Username               string `gorm:"type:varchar(50);uniqueIndex;not null"`
	Email                  string `gorm:"type:varchar(255);uniqueIndex;not null"`
	Phone                  string `gorm:"type:varchar(30)"`
	IDTypeID               *int64
	IDType                 *IDTypeModel `gorm:"foreignKey:IDTypeID"`
	IDNumber               *string      `gorm:"type:varchar(30);uniqueIndex"`
	Method                 string       `gorm:"type:varchar(10);not null;default:'local'"`
	IsActive               bool         `gorm:"not null;default:true"`
	Password               string       `gorm:"type:varchar(255)"`
	PasswordResetCode      string       `gorm:"type:varchar(6)"`
	PasswordResetExpiresAt *time.Time
	CreatedAt              time.Time
	UpdatedAt              time.Time

	Roles     []RoleModel    `gorm:"many2many:user_roles;joinForeignKey:UserID;joinReferences:RoleID"`
	Addresses []AddressModel `gorm:"many2many:user_addresses;joinForeignKey:UserID;joinReferences:AddressID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// RoleModel mirrors the 'roles' table.
type RoleModel struct {
	ID   int64  `gorm:"primaryKey;autoIncrement"`
	Name string `gorm:"type:varchar(30);uniqueIndex;not null"`
}

func (RoleModel) TableName() string {
	return "roles"
}
