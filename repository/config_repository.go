package repository

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"Sistem-Payroll-Karyawan/config"
	"Sistem-Payroll-Karyawan/models"
	"Sistem-Payroll-Karyawan/pkg/geofence"
	"Sistem-Payroll-Karyawan/pkg/payroll"
)

type ConfigRepository interface {
	UpsertEntry(ctx context.Context, entry *models.ConfigEntry) error
	FindEntryByKey(ctx context.Context, key string) (*models.ConfigEntry, error)
	GetAllEntries(ctx context.Context) ([]models.ConfigEntry, error)
	DeleteEntry(ctx context.Context, key string) (*mongo.DeleteResult, error)

	// Loader bertipe untuk konsumen konfigurasi. Selalu membaca dari
	// database, tidak ada cache, supaya perubahan admin langsung dipakai
	// pengecekan berikutnya. Key yang kosong atau tidak bisa diparse
	// jatuh ke nilai default.
	LoadGeofenceSettings(ctx context.Context) geofence.Settings
	LoadPayrollSettings(ctx context.Context) payroll.Settings
}

type configRepository struct {
	collection *mongo.Collection
}

func NewConfigRepository() ConfigRepository {
	return &configRepository{
		collection: config.GetCollection(config.ConfigCollection),
	}
}

func (r *configRepository) UpsertEntry(ctx context.Context, entry *models.ConfigEntry) error {
	filter := bson.M{"key": entry.Key}
	update := bson.M{"$set": bson.M{
		"key":         entry.Key,
		"value":       entry.Value,
		"description": entry.Description,
		"updated_at":  time.Now(),
	}}

	_, err := r.collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("gagal menyimpan konfigurasi %s: %w", entry.Key, err)
	}
	return nil
}

func (r *configRepository) FindEntryByKey(ctx context.Context, key string) (*models.ConfigEntry, error) {
	var entry models.ConfigEntry

	err := r.collection.FindOne(ctx, bson.M{"key": key}).Decode(&entry)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("gagal menemukan konfigurasi %s: %w", key, err)
	}
	return &entry, nil
}

func (r *configRepository) GetAllEntries(ctx context.Context) ([]models.ConfigEntry, error) {
	cursor, err := r.collection.Find(ctx, bson.M{}, options.Find().SetSort(bson.M{"key": 1}))
	if err != nil {
		return nil, fmt.Errorf("gagal menemukan konfigurasi: %w", err)
	}
	defer cursor.Close(ctx)

	var entries []models.ConfigEntry
	if err = cursor.All(ctx, &entries); err != nil {
		return nil, fmt.Errorf("gagal mendecode konfigurasi: %w", err)
	}
	return entries, nil
}

func (r *configRepository) DeleteEntry(ctx context.Context, key string) (*mongo.DeleteResult, error) {
	result, err := r.collection.DeleteOne(ctx, bson.M{"key": key})
	if err != nil {
		return nil, fmt.Errorf("gagal menghapus konfigurasi %s: %w", key, err)
	}
	return result, nil
}

// parseFloatOrDefault mengembalikan fallback untuk nilai yang tidak bisa
// diparse. NaN dan Inf juga ditolak supaya tidak meracuni perhitungan jarak.
func parseFloatOrDefault(value string, fallback float64) float64 {
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil || math.IsNaN(parsed) || math.IsInf(parsed, 0) {
		return fallback
	}
	return parsed
}

func parseInt64OrDefault(value string, fallback int64) int64 {
	parsed, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return fallback
	}
	return parsed
}

func (r *configRepository) loadFloat(ctx context.Context, key string, fallback float64) float64 {
	entry, err := r.FindEntryByKey(ctx, key)
	if err != nil || entry == nil {
		return fallback
	}
	return parseFloatOrDefault(entry.Value, fallback)
}

func (r *configRepository) loadInt(ctx context.Context, key string, fallback int64) int64 {
	entry, err := r.FindEntryByKey(ctx, key)
	if err != nil || entry == nil {
		return fallback
	}
	return parseInt64OrDefault(entry.Value, fallback)
}

func (r *configRepository) LoadGeofenceSettings(ctx context.Context) geofence.Settings {
	defaults := geofence.DefaultSettings()
	return geofence.Settings{
		Latitude:     r.loadFloat(ctx, models.ConfigKeyOfficeLat, defaults.Latitude),
		Longitude:    r.loadFloat(ctx, models.ConfigKeyOfficeLng, defaults.Longitude),
		RadiusMeters: r.loadFloat(ctx, models.ConfigKeyGeofenceRadius, defaults.RadiusMeters),
	}
}

func (r *configRepository) LoadPayrollSettings(ctx context.Context) payroll.Settings {
	defaults := payroll.DefaultSettings()
	return payroll.Settings{
		LatePenaltyPerMinute:    r.loadInt(ctx, models.ConfigKeyLatePenaltyPerMinute, defaults.LatePenaltyPerMinute),
		BpjsKesehatanRate:       r.loadFloat(ctx, models.ConfigKeyBpjsKesehatanRate, defaults.BpjsKesehatanRate),
		BpjsKetenagakerjaanRate: r.loadFloat(ctx, models.ConfigKeyBpjsKetenagakerjaanRate, defaults.BpjsKetenagakerjaanRate),
	}
}
