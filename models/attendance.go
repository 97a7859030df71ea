package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	AttendanceStatusPresent = "present"
	AttendanceStatusLate    = "late"
	AttendanceStatusLeave   = "leave"
	AttendanceStatusSick    = "sick"

	ApprovalStatusPending  = "pending"
	ApprovalStatusApproved = "approved"
	ApprovalStatusRejected = "rejected"
)

type Attendance struct {
	ID                  primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	UserID              primitive.ObjectID `json:"user_id" bson:"user_id,omitempty"`
	Date                string             `json:"date" bson:"date,omitempty"`
	ClockIn             *time.Time         `json:"clock_in,omitempty" bson:"clock_in,omitempty"`
	ClockOut            *time.Time         `json:"clock_out,omitempty" bson:"clock_out,omitempty"`
	ClockInLat          string             `json:"clock_in_lat,omitempty" bson:"clock_in_lat,omitempty"`
	ClockInLng          string             `json:"clock_in_lng,omitempty" bson:"clock_in_lng,omitempty"`
	ClockOutLat         string             `json:"clock_out_lat,omitempty" bson:"clock_out_lat,omitempty"`
	ClockOutLng         string             `json:"clock_out_lng,omitempty" bson:"clock_out_lng,omitempty"`
	ClockInPhoto        string             `json:"clock_in_photo,omitempty" bson:"clock_in_photo,omitempty"`
	ClockOutPhoto       string             `json:"clock_out_photo,omitempty" bson:"clock_out_photo,omitempty"`
	IsWithinGeofenceIn  bool               `json:"is_within_geofence_in" bson:"is_within_geofence_in"`
	IsWithinGeofenceOut bool               `json:"is_within_geofence_out" bson:"is_within_geofence_out"`
	Status              string             `json:"status" bson:"status,omitempty"`
	ApprovalStatus      string             `json:"approval_status" bson:"approval_status,omitempty"`
	Note                string             `json:"note,omitempty" bson:"note,omitempty"`
	CreatedAt           time.Time          `json:"created_at" bson:"created_at,omitempty"`
	UpdatedAt           time.Time          `json:"updated_at" bson:"updated_at,omitempty"`
}

// AttendanceWithUser adalah hasil $lookup attendances -> users untuk listing admin.
type AttendanceWithUser struct {
	Attendance    `bson:",inline"`
	UserName      string `json:"user_name,omitempty" bson:"user_name,omitempty"`
	UserEmail     string `json:"user_email,omitempty" bson:"user_email,omitempty"`
	PositionTitle string `json:"position_title,omitempty" bson:"position_title,omitempty"`
}

// ClockPayload dikirim sebagai multipart/form-data; foto diambil dari FormFile "photo".
type ClockPayload struct {
	Latitude  string `json:"latitude" form:"latitude" validate:"required,latitude"`
	Longitude string `json:"longitude" form:"longitude" validate:"required,longitude"`
	Note      string `json:"note,omitempty" form:"note" validate:"omitempty,max=255"`
}

// AttendanceCreatePayload dipakai admin untuk input manual (koreksi / susulan).
type AttendanceCreatePayload struct {
	UserID         string `json:"user_id" validate:"required,len=24,hexadecimal"`
	Date           string `json:"date" validate:"required,datetime=2006-01-02"`
	ClockIn        string `json:"clock_in,omitempty" validate:"omitempty,datetime=15:04"`
	ClockOut       string `json:"clock_out,omitempty" validate:"omitempty,datetime=15:04"`
	Status         string `json:"status" validate:"required,oneof=present late leave sick"`
	ApprovalStatus string `json:"approval_status,omitempty" validate:"omitempty,oneof=pending approved rejected"`
	Note           string `json:"note,omitempty" validate:"omitempty,max=255"`
}

// AttendanceUpdatePayload dipakai endpoint PATCH: hanya field non-nil yang diterapkan.
type AttendanceUpdatePayload struct {
	ClockIn        *string `json:"clock_in,omitempty" validate:"omitempty,datetime=15:04"`
	ClockOut       *string `json:"clock_out,omitempty" validate:"omitempty,datetime=15:04"`
	Status         *string `json:"status,omitempty" validate:"omitempty,oneof=present late leave sick"`
	ApprovalStatus *string `json:"approval_status,omitempty" validate:"omitempty,oneof=pending approved rejected"`
	Note           *string `json:"note,omitempty" validate:"omitempty,max=255"`
}
