package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Kunci konfigurasi yang dibaca aplikasi. Kunci lain boleh disimpan tapi
// tidak dipakai.
const (
	ConfigKeyOfficeLat               = "officeLat"
	ConfigKeyOfficeLng               = "officeLng"
	ConfigKeyGeofenceRadius          = "geofenceRadius"
	ConfigKeyLatePenaltyPerMinute    = "latePenaltyPerMinute"
	ConfigKeyBpjsKesehatanRate       = "bpjsKesehatanRate"
	ConfigKeyBpjsKetenagakerjaanRate = "bpjsKetenagakerjaanRate"
)

type ConfigEntry struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Key         string             `json:"key" bson:"key"`
	Value       string             `json:"value" bson:"value"`
	Description string             `json:"description,omitempty" bson:"description,omitempty"`
	UpdatedAt   time.Time          `json:"updated_at" bson:"updated_at,omitempty"`
}

type ConfigUpsertPayload struct {
	Key         string `json:"key" validate:"required,min=1,max=100"`
	Value       string `json:"value" validate:"required,max=255"`
	Description string `json:"description,omitempty" validate:"omitempty,max=255"`
}

type ConfigBulkPayload struct {
	Entries []ConfigUpsertPayload `json:"entries" validate:"required,min=1,dive"`
}
