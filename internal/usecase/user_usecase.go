package usecase

import (
	"context"

	"padelpoint/internal/domain/entity"
)

// AddressInput is a shipping address as submitted by clients.
type AddressInput struct {
	PostalCode string `json:"postalCode" validate:"required,max=16"`
	Street     string `json:"street" validate:"required,max=128"`
	Number     string `json:"number" validate:"required,max=16"`
}

// Entity converts the input into an unsaved address.
func (a AddressInput) Entity() entity.Address {
	return entity.Address{PostalCode: a.PostalCode, Street: a.Street, Number: a.Number}
}

// CreateUserInput defines the data required to register a local user.
type CreateUserInput struct {
	Name      string
	Surname   string
	Username  string
	Email     string
	Password  string
	Phone     string
	IDTypeID  *int64
	IDNumber  string
	Addresses []AddressInput
}

// UpdateUserInput carries profile changes. Nil fields are left untouched.
type UpdateUserInput struct {
	Name     *string
	Surname  *string
	Username *string
	Email    *string
	Phone    *string
	IDTypeID *int64
	IDNumber *string
}

// UserUsecase covers accounts, their addresses and password recovery.
type UserUsecase interface {
	Create(ctx context.Context, input CreateUserInput) (*entity.User, error)
	FindAll(ctx context.Context) ([]*entity.User, error)
	FindByID(ctx context.Context, id int64) (*entity.User, error)

	// FindAuthenticated loads the user the access token belongs to.
	FindAuthenticated(ctx context.Context, caller *entity.TokenPayload) (*entity.User, error)

	Update(ctx context.Context, caller *entity.TokenPayload, id int64, input UpdateUserInput) (*entity.User, error)

	// Remove deactivates the user.
	Remove(ctx context.Context, id int64) (*entity.User, error)

	Addresses(ctx context.Context, caller *entity.TokenPayload, id int64) ([]*entity.Address, error)

	// RequestPasswordReset stores a 6-digit code and mails it to the user.
	RequestPasswordReset(ctx context.Context, usernameOrEmail string) error

	// ValidateResetCode checks the code and returns a short-lived password-reset token.
	ValidateResetCode(ctx context.Context, code, email string) (string, error)

	ResetPassword(ctx context.Context, userID int64, newPassword string) error
}
