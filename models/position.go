package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Position struct {
	ID         primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Title      string             `json:"title" bson:"title,omitempty"`
	HourlyRate float64            `json:"hourly_rate" bson:"hourly_rate"`
	CreatedAt  time.Time          `json:"created_at" bson:"created_at,omitempty"`
	UpdatedAt  time.Time          `json:"updated_at" bson:"updated_at,omitempty"`
}

type PositionCreatePayload struct {
	Title      string  `json:"title" validate:"required,min=3,max=100"`
	HourlyRate float64 `json:"hourly_rate" validate:"min=0"`
}

type PositionUpdatePayload struct {
	Title      *string  `json:"title,omitempty" validate:"omitempty,min=3,max=100"`
	HourlyRate *float64 `json:"hourly_rate,omitempty" validate:"omitempty,min=0"`
}
