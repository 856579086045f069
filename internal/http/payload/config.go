package payload

import (
	"betawave/internal/core"

	"github.com/jellydator/validation"
)

type SaveConfigRequest struct {
	DarkMode      bool `json:"darkMode"`
	DefaultVolume int  `json:"defaultVolume"`
}

func (s SaveConfigRequest) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.DefaultVolume, validation.Min(0), validation.Max(100)),
	)
}

func (s SaveConfigRequest) ToRecord() core.ConfigRecord {
	return core.ConfigRecord{
		DarkMode:      s.DarkMode,
		DefaultVolume: s.DefaultVolume,
	}
}

type DeleteUserRequest struct {
	UserID string `json:"userId"`
}

func (d DeleteUserRequest) Validate() error {
	return validation.ValidateStruct(&d,
		validation.Field(&d.UserID, validation.Required),
	)
}
