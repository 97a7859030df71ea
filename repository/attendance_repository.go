package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"Sistem-Payroll-Karyawan/config"
	"Sistem-Payroll-Karyawan/models"
)

type AttendanceRepository interface {
	CreateAttendance(ctx context.Context, attendance *models.Attendance) (*mongo.InsertOneResult, error)
	FindAttendanceByID(ctx context.Context, id primitive.ObjectID) (*models.Attendance, error)
	FindAttendanceByUserAndDate(ctx context.Context, userID primitive.ObjectID, date string) (*models.Attendance, error)
	FindAttendancesByUserID(ctx context.Context, userID primitive.ObjectID, page, limit int64) ([]models.Attendance, int64, error)
	FindApprovedCompleteInPeriod(ctx context.Context, userID primitive.ObjectID, period string) ([]models.Attendance, error)
	GetAllAttendances(ctx context.Context, filter bson.M, page, limit int64) ([]models.AttendanceWithUser, int64, error)
	UpdateAttendance(ctx context.Context, id primitive.ObjectID, updateData bson.M) (*mongo.UpdateResult, error)
	DeleteAttendance(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error)
	CountByDate(ctx context.Context, date string) (int64, error)
	CountLateByDate(ctx context.Context, date string, lateAfter time.Time) (int64, error)
	CountPendingApproval(ctx context.Context) (int64, error)
}

type attendanceRepository struct {
	collection *mongo.Collection
}

func NewAttendanceRepository() AttendanceRepository {
	return &attendanceRepository{
		collection: config.GetCollection(config.AttendanceCollection),
	}
}

func (r *attendanceRepository) CreateAttendance(ctx context.Context, attendance *models.Attendance) (*mongo.InsertOneResult, error) {
	attendance.ID = primitive.NewObjectID()
	attendance.CreatedAt = time.Now()
	attendance.UpdatedAt = time.Now()

	result, err := r.collection.InsertOne(ctx, attendance)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, fmt.Errorf("absensi untuk tanggal tersebut sudah ada")
		}
		return nil, fmt.Errorf("gagal membuat absensi: %w", err)
	}
	return result, nil
}

func (r *attendanceRepository) FindAttendanceByID(ctx context.Context, id primitive.ObjectID) (*models.Attendance, error) {
	var attendance models.Attendance

	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&attendance)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("gagal menemukan absensi berdasarkan ID: %w", err)
	}
	return &attendance, nil
}

func (r *attendanceRepository) FindAttendanceByUserAndDate(ctx context.Context, userID primitive.ObjectID, date string) (*models.Attendance, error) {
	var attendance models.Attendance
	filter := bson.M{"user_id": userID, "date": date}

	err := r.collection.FindOne(ctx, filter).Decode(&attendance)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("gagal menemukan absensi user: %w", err)
	}
	return &attendance, nil
}

func (r *attendanceRepository) FindAttendancesByUserID(ctx context.Context, userID primitive.ObjectID, page, limit int64) ([]models.Attendance, int64, error) {
	filter := bson.M{"user_id": userID}
	findOptions := options.Find().
		SetSort(bson.M{"date": -1}).
		SetSkip((page - 1) * limit).
		SetLimit(limit)

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, 0, fmt.Errorf("gagal menemukan absensi user: %w", err)
	}
	defer cursor.Close(ctx)

	var attendances []models.Attendance
	if err = cursor.All(ctx, &attendances); err != nil {
		return nil, 0, fmt.Errorf("gagal mendecode absensi: %w", err)
	}

	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("gagal menghitung absensi: %w", err)
	}

	return attendances, total, nil
}

// FindApprovedCompleteInPeriod mengambil absensi yang dihitung payroll:
// approval_status approved dan punya clock in + clock out pada periode
// YYYY-MM tersebut.
func (r *attendanceRepository) FindApprovedCompleteInPeriod(ctx context.Context, userID primitive.ObjectID, period string) ([]models.Attendance, error) {
	filter := bson.M{
		"user_id":         userID,
		"date":            primitive.Regex{Pattern: "^" + period, Options: ""},
		"approval_status": models.ApprovalStatusApproved,
		"clock_in":        bson.M{"$ne": nil},
		"clock_out":       bson.M{"$ne": nil},
	}

	cursor, err := r.collection.Find(ctx, filter, options.Find().SetSort(bson.M{"date": 1}))
	if err != nil {
		return nil, fmt.Errorf("gagal menemukan absensi periode: %w", err)
	}
	defer cursor.Close(ctx)

	var attendances []models.Attendance
	if err = cursor.All(ctx, &attendances); err != nil {
		return nil, fmt.Errorf("gagal mendecode absensi periode: %w", err)
	}
	return attendances, nil
}

// GetAllAttendances mengembalikan absensi beserta identitas karyawan lewat
// $lookup ke users dan positions.
func (r *attendanceRepository) GetAllAttendances(ctx context.Context, filter bson.M, page, limit int64) ([]models.AttendanceWithUser, int64, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: filter}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         config.UserCollection,
			"localField":   "user_id",
			"foreignField": "_id",
			"as":           "user_info",
		}}},
		bson.D{{Key: "$unwind", Value: bson.M{
			"path":                       "$user_info",
			"preserveNullAndEmptyArrays": true,
		}}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         config.PositionCollection,
			"localField":   "user_info.position_id",
			"foreignField": "_id",
			"as":           "position_info",
		}}},
		bson.D{{Key: "$unwind", Value: bson.M{
			"path":                       "$position_info",
			"preserveNullAndEmptyArrays": true,
		}}},
		bson.D{{Key: "$addFields", Value: bson.M{
			"user_name":      "$user_info.name",
			"user_email":     "$user_info.email",
			"position_title": "$position_info.title",
		}}},
		bson.D{{Key: "$project", Value: bson.M{"user_info": 0, "position_info": 0}}},
		bson.D{{Key: "$sort", Value: bson.M{"date": -1, "created_at": -1}}},
		bson.D{{Key: "$skip", Value: (page - 1) * limit}},
		bson.D{{Key: "$limit", Value: limit}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, 0, fmt.Errorf("gagal menemukan absensi: %w", err)
	}
	defer cursor.Close(ctx)

	var attendances []models.AttendanceWithUser
	if err = cursor.All(ctx, &attendances); err != nil {
		return nil, 0, fmt.Errorf("gagal mendecode absensi: %w", err)
	}

	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("gagal menghitung absensi: %w", err)
	}

	return attendances, total, nil
}

func (r *attendanceRepository) UpdateAttendance(ctx context.Context, id primitive.ObjectID, updateData bson.M) (*mongo.UpdateResult, error) {
	updateData["updated_at"] = time.Now()

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": updateData})
	if err != nil {
		return nil, fmt.Errorf("gagal mengupdate absensi: %w", err)
	}
	return result, nil
}

func (r *attendanceRepository) DeleteAttendance(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error) {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return nil, fmt.Errorf("gagal menghapus absensi: %w", err)
	}
	return result, nil
}

func (r *attendanceRepository) CountByDate(ctx context.Context, date string) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"date": date})
	if err != nil {
		return 0, fmt.Errorf("gagal menghitung absensi hari ini: %w", err)
	}
	return count, nil
}

func (r *attendanceRepository) CountLateByDate(ctx context.Context, date string, lateAfter time.Time) (int64, error) {
	filter := bson.M{
		"date":     date,
		"clock_in": bson.M{"$gt": lateAfter},
	}
	count, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("gagal menghitung keterlambatan hari ini: %w", err)
	}
	return count, nil
}

func (r *attendanceRepository) CountPendingApproval(ctx context.Context) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"approval_status": models.ApprovalStatusPending})
	if err != nil {
		return 0, fmt.Errorf("gagal menghitung absensi pending: %w", err)
	}
	return count, nil
}
