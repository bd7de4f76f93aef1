package dto

import "time"

type RegisterDTO struct {
	Email             string   `json:"email" validate:"required,email"`
	Password          string   `json:"password" validate:"required,min=6,max=64"`
	Name              string   `json:"name" validate:"required,max=100"`
	DateOfBirth       string   `json:"dateOfBirth" validate:"required,datetime=2006-01-02"`
	Gender            *string  `json:"gender,omitempty" validate:"omitempty,oneof=male female other"`
	Address           *string  `json:"address,omitempty" validate:"omitempty,max=255"`
	Pincode           *string  `json:"pincode,omitempty" validate:"omitempty,len=6,numeric"`
	MedicalConditions []string `json:"medicalConditions,omitempty"`
}

type CredentialDTO struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UserDTO struct {
	UserID            *uint64    `json:"userId,omitempty"`
	Email             *string    `json:"email,omitempty"`
	Name              *string    `json:"name,omitempty"`
	DateOfBirth       *string    `json:"dateOfBirth,omitempty"`
	Gender            *string    `json:"gender,omitempty"`
	Address           *string    `json:"address,omitempty"`
	Pincode           *string    `json:"pincode,omitempty"`
	MedicalConditions []string   `json:"medicalConditions,omitempty"`
	CreatedAt         *time.Time `json:"createdAt,omitempty"`
}

type UpdateUserDTO struct {
	Name              *string  `json:"name,omitempty" validate:"omitempty,max=100"`
	Gender            *string  `json:"gender,omitempty" validate:"omitempty,oneof=male female other"`
	Address           *string  `json:"address,omitempty" validate:"omitempty,max=255"`
	Pincode           *string  `json:"pincode,omitempty" validate:"omitempty,len=6,numeric"`
	MedicalConditions []string `json:"medicalConditions,omitempty"`
}

type PushTokenDTO struct {
	PushToken string `json:"pushToken" validate:"required,max=255"`
}
