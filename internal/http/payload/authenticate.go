package payload

import (
	"betawave/internal/core"

	"github.com/jellydator/validation"
)

type AuthRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (a AuthRequest) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.Username, validation.Required),
		validation.Field(&a.Password, validation.Required),
	)
}

func (a AuthRequest) ToMessage() core.AuthMessage {
	return core.AuthMessage{
		Username: a.Username,
		Password: a.Password,
	}
}

type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
}

func (r RegisterRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username, validation.Required, validation.Length(3, 255)),
		validation.Field(&r.Password, validation.Required, validation.Length(6, 72)),
	)
}

func (r RegisterRequest) ToMessage() core.RegisterMessage {
	msg := core.RegisterMessage{
		Username: r.Username,
		Password: r.Password,
	}
	if r.Email != "" {
		email := r.Email
		msg.Email = &email
	}
	return msg
}
