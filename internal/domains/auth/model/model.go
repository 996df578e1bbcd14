package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// User is the declared identity of the shopper. There is no password
// and no token: login means "declare who you are", nothing more.
// Presence of an identity is what gates checkout.
type User struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// LoginRequest carries the identity the shopper declares.
// Shape validation only — there is no credential to verify.
type LoginRequest struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email,
			validation.Required.Error("email is required"),
			is.Email.Error("invalid email format"),
		),
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.Length(1, 100),
		),
	)
}
