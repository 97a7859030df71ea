package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	PayrollStatusDraft = "draft"
	PayrollStatusFinal = "final"
)

// Payroll adalah satu baris gaji per karyawan per periode (YYYY-MM).
// Semua nominal dalam rupiah utuh (hasil pembulatan ke bawah).
type Payroll struct {
	ID                   primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	UserID               primitive.ObjectID `json:"user_id" bson:"user_id,omitempty"`
	Period               string             `json:"period" bson:"period,omitempty"`
	BasicSalary          int64              `json:"basic_salary" bson:"basic_salary"`
	OvertimePay          int64              `json:"overtime_pay" bson:"overtime_pay"`
	Bonus                int64              `json:"bonus" bson:"bonus"`
	LateDeduction        int64              `json:"late_deduction" bson:"late_deduction"`
	BpjsDeduction        int64              `json:"bpjs_deduction" bson:"bpjs_deduction"`
	Pph21Deduction       int64              `json:"pph21_deduction" bson:"pph21_deduction"`
	OtherDeduction       int64              `json:"other_deduction" bson:"other_deduction"`
	TotalNet             int64              `json:"total_net" bson:"total_net"`
	Status               string             `json:"status" bson:"status,omitempty"`
	TotalWorkMinutes     int64              `json:"total_work_minutes" bson:"total_work_minutes"`
	TotalLateMinutes     int64              `json:"total_late_minutes" bson:"total_late_minutes"`
	TotalOvertimeMinutes int64              `json:"total_overtime_minutes" bson:"total_overtime_minutes"`
	GeneratedAt          time.Time          `json:"generated_at" bson:"generated_at,omitempty"`
	CreatedAt            time.Time          `json:"created_at" bson:"created_at,omitempty"`
	UpdatedAt            time.Time          `json:"updated_at" bson:"updated_at,omitempty"`
}

type PayrollWithUser struct {
	Payroll       `bson:",inline"`
	UserName      string `json:"user_name,omitempty" bson:"user_name,omitempty"`
	UserEmail     string `json:"user_email,omitempty" bson:"user_email,omitempty"`
	PositionTitle string `json:"position_title,omitempty" bson:"position_title,omitempty"`
}

type PayrollGeneratePayload struct {
	Period string `json:"period" validate:"required,datetime=2006-01"`
}

// PayrollCreatePayload dipakai admin untuk menambah baris payroll manual
// di luar proses generate. total_net selalu dihitung ulang di server.
type PayrollCreatePayload struct {
	UserID         string `json:"user_id" validate:"required"`
	Period         string `json:"period" validate:"required,datetime=2006-01"`
	BasicSalary    int64  `json:"basic_salary" validate:"min=0"`
	OvertimePay    int64  `json:"overtime_pay" validate:"min=0"`
	Bonus          int64  `json:"bonus" validate:"min=0"`
	LateDeduction  int64  `json:"late_deduction" validate:"min=0"`
	BpjsDeduction  int64  `json:"bpjs_deduction" validate:"min=0"`
	Pph21Deduction int64  `json:"pph21_deduction" validate:"min=0"`
	OtherDeduction int64  `json:"other_deduction" validate:"min=0"`
}

// PayrollUpdatePayload dipakai endpoint PATCH: hanya field non-nil yang
// diterapkan. Perubahan nominal akan menghitung ulang total_net.
type PayrollUpdatePayload struct {
	Bonus          *int64  `json:"bonus,omitempty" validate:"omitempty,min=0"`
	OtherDeduction *int64  `json:"other_deduction,omitempty" validate:"omitempty,min=0"`
	Status         *string `json:"status,omitempty" validate:"omitempty,oneof=draft final"`
}
