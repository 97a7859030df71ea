package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID           primitive.ObjectID  `json:"id,omitempty" bson:"_id,omitempty"`
	Name         string              `json:"name" bson:"name,omitempty"`
	Email        string              `json:"email" bson:"email,omitempty"`
	Password     string              `json:"-" bson:"password,omitempty"`
	Role         string              `json:"role" bson:"role,omitempty"`
	PositionID   *primitive.ObjectID `json:"position_id,omitempty" bson:"position_id,omitempty"`
	JoinDate     string              `json:"join_date" bson:"join_date,omitempty"`
	Phone        string              `json:"phone" bson:"phone,omitempty"`
	Address      string              `json:"address" bson:"address,omitempty"`
	Status       string              `json:"status" bson:"status,omitempty"`
	Photo        string              `json:"photo,omitempty" bson:"photo,omitempty"`
	IsFirstLogin bool                `json:"is_first_login" bson:"is_first_login,omitempty"`
	CreatedAt    time.Time           `json:"created_at" bson:"created_at,omitempty"`
	UpdatedAt    time.Time           `json:"updated_at" bson:"updated_at,omitempty"`
}

// UserWithPosition adalah hasil $lookup users -> positions untuk listing admin.
type UserWithPosition struct {
	User          `bson:",inline"`
	PositionTitle string  `json:"position_title,omitempty" bson:"position_title,omitempty"`
	HourlyRate    float64 `json:"hourly_rate,omitempty" bson:"hourly_rate,omitempty"`
}

type UserCreatePayload struct {
	Name       string `json:"name" validate:"required,min=3,max=100"`
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required,min=8,max=50,hasuppercase"`
	Role       string `json:"role" validate:"required,oneof=admin employee"`
	PositionID string `json:"position_id" validate:"omitempty,len=24,hexadecimal"`
	JoinDate   string `json:"join_date" validate:"required,datetime=2006-01-02"`
	Phone      string `json:"phone" validate:"omitempty,min=8,max=20"`
	Address    string `json:"address" validate:"omitempty,min=5,max=255"`
	Status     string `json:"status" validate:"omitempty,oneof=active inactive"`
}

type UserLoginPayload struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserUpdatePayload dipakai endpoint PATCH: hanya field non-nil yang diterapkan.
type UserUpdatePayload struct {
	Name       *string `json:"name,omitempty" validate:"omitempty,min=3,max=100"`
	Email      *string `json:"email,omitempty" validate:"omitempty,email"`
	Password   *string `json:"password,omitempty" validate:"omitempty,min=8,max=50,hasuppercase"`
	Role       *string `json:"role,omitempty" validate:"omitempty,oneof=admin employee"`
	PositionID *string `json:"position_id,omitempty" validate:"omitempty,len=24,hexadecimal"`
	JoinDate   *string `json:"join_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Phone      *string `json:"phone,omitempty" validate:"omitempty,min=8,max=20"`
	Address    *string `json:"address,omitempty" validate:"omitempty,min=5,max=255"`
	Status     *string `json:"status,omitempty" validate:"omitempty,oneof=active inactive"`
}

type ChangePasswordPayload struct {
	OldPassword string `json:"old_password" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=8,max=50,hasuppercase"`
}
