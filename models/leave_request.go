package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	LeaveStatusPending  = "pending"
	LeaveStatusApproved = "approved"
	LeaveStatusRejected = "rejected"
)

type LeaveRequest struct {
	ID          primitive.ObjectID  `json:"id,omitempty" bson:"_id,omitempty"`
	UserID      primitive.ObjectID  `json:"user_id" bson:"user_id,omitempty"`
	Type        string              `json:"type" bson:"type,omitempty"`
	StartDate   string              `json:"start_date" bson:"start_date,omitempty"`
	EndDate     string              `json:"end_date" bson:"end_date,omitempty"`
	Reason      string              `json:"reason" bson:"reason,omitempty"`
	Attachment  string              `json:"attachment,omitempty" bson:"attachment,omitempty"`
	WorkingDays int                 `json:"working_days" bson:"working_days,omitempty"`
	Status      string              `json:"status" bson:"status,omitempty"`
	ApprovedBy  *primitive.ObjectID `json:"approved_by,omitempty" bson:"approved_by,omitempty"`
	CreatedAt   time.Time           `json:"created_at" bson:"created_at,omitempty"`
	UpdatedAt   time.Time           `json:"updated_at" bson:"updated_at,omitempty"`
}

type LeaveRequestWithUser struct {
	LeaveRequest `bson:",inline"`
	UserName     string `json:"user_name,omitempty" bson:"user_name,omitempty"`
	UserEmail    string `json:"user_email,omitempty" bson:"user_email,omitempty"`
}

// LeaveRequestCreatePayload dikirim sebagai multipart/form-data; lampiran
// surat (mis. surat dokter) diambil dari FormFile "attachment".
type LeaveRequestCreatePayload struct {
	Type      string `json:"type" form:"type" validate:"required,oneof=annual sick unpaid"`
	StartDate string `json:"start_date" form:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate   string `json:"end_date" form:"end_date" validate:"required,datetime=2006-01-02"`
	Reason    string `json:"reason" form:"reason" validate:"required,min=5,max=500"`
}

// LeaveRequestUpdatePayload dipakai endpoint PATCH: hanya field non-nil yang
// diterapkan. Status tidak bisa diubah lewat sini, hanya lewat endpoint approve.
type LeaveRequestUpdatePayload struct {
	Type      *string `json:"type,omitempty" validate:"omitempty,oneof=annual sick unpaid"`
	StartDate *string `json:"start_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	EndDate   *string `json:"end_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Reason    *string `json:"reason,omitempty" validate:"omitempty,min=5,max=500"`
}

type LeaveApprovalPayload struct {
	Status string `json:"status" validate:"required"`
}
