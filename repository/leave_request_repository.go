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

type LeaveRequestRepository interface {
	CreateLeaveRequest(ctx context.Context, leave *models.LeaveRequest) (*mongo.InsertOneResult, error)
	FindLeaveRequestByID(ctx context.Context, id primitive.ObjectID) (*models.LeaveRequest, error)
	FindLeaveRequestsByUserID(ctx context.Context, userID primitive.ObjectID, page, limit int64) ([]models.LeaveRequest, int64, error)
	GetAllLeaveRequests(ctx context.Context, filter bson.M, page, limit int64) ([]models.LeaveRequestWithUser, int64, error)
	UpdateLeaveRequest(ctx context.Context, id primitive.ObjectID, updateData bson.M) (*mongo.UpdateResult, error)
	DeleteLeaveRequest(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error)
	CountByStatus(ctx context.Context, status string) (int64, error)
}

type leaveRequestRepository struct {
	collection *mongo.Collection
}

func NewLeaveRequestRepository() LeaveRequestRepository {
	return &leaveRequestRepository{
		collection: config.GetCollection(config.LeaveRequestCollection),
	}
}

func (r *leaveRequestRepository) CreateLeaveRequest(ctx context.Context, leave *models.LeaveRequest) (*mongo.InsertOneResult, error) {
	leave.ID = primitive.NewObjectID()
	leave.Status = models.LeaveStatusPending
	leave.CreatedAt = time.Now()
	leave.UpdatedAt = time.Now()

	result, err := r.collection.InsertOne(ctx, leave)
	if err != nil {
		return nil, fmt.Errorf("gagal membuat pengajuan cuti: %w", err)
	}
	return result, nil
}

func (r *leaveRequestRepository) FindLeaveRequestByID(ctx context.Context, id primitive.ObjectID) (*models.LeaveRequest, error) {
	var leave models.LeaveRequest

	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&leave)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("gagal menemukan pengajuan cuti: %w", err)
	}
	return &leave, nil
}

func (r *leaveRequestRepository) FindLeaveRequestsByUserID(ctx context.Context, userID primitive.ObjectID, page, limit int64) ([]models.LeaveRequest, int64, error) {
	filter := bson.M{"user_id": userID}
	findOptions := options.Find().
		SetSort(bson.M{"created_at": -1}).
		SetSkip((page - 1) * limit).
		SetLimit(limit)

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, 0, fmt.Errorf("gagal menemukan pengajuan cuti user: %w", err)
	}
	defer cursor.Close(ctx)

	var leaves []models.LeaveRequest
	if err = cursor.All(ctx, &leaves); err != nil {
		return nil, 0, fmt.Errorf("gagal mendecode pengajuan cuti: %w", err)
	}

	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("gagal menghitung pengajuan cuti: %w", err)
	}

	return leaves, total, nil
}

func (r *leaveRequestRepository) GetAllLeaveRequests(ctx context.Context, filter bson.M, page, limit int64) ([]models.LeaveRequestWithUser, int64, error) {
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
		bson.D{{Key: "$addFields", Value: bson.M{
			"user_name":  "$user_info.name",
			"user_email": "$user_info.email",
		}}},
		bson.D{{Key: "$project", Value: bson.M{"user_info": 0}}},
		bson.D{{Key: "$sort", Value: bson.M{"created_at": -1}}},
		bson.D{{Key: "$skip", Value: (page - 1) * limit}},
		bson.D{{Key: "$limit", Value: limit}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, 0, fmt.Errorf("gagal menemukan pengajuan cuti: %w", err)
	}
	defer cursor.Close(ctx)

	var leaves []models.LeaveRequestWithUser
	if err = cursor.All(ctx, &leaves); err != nil {
		return nil, 0, fmt.Errorf("gagal mendecode pengajuan cuti: %w", err)
	}

	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("gagal menghitung pengajuan cuti: %w", err)
	}

	return leaves, total, nil
}

func (r *leaveRequestRepository) UpdateLeaveRequest(ctx context.Context, id primitive.ObjectID, updateData bson.M) (*mongo.UpdateResult, error) {
	updateData["updated_at"] = time.Now()

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": updateData})
	if err != nil {
		return nil, fmt.Errorf("gagal mengupdate pengajuan cuti: %w", err)
	}
	return result, nil
}

func (r *leaveRequestRepository) DeleteLeaveRequest(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error) {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return nil, fmt.Errorf("gagal menghapus pengajuan cuti: %w", err)
	}
	return result, nil
}

func (r *leaveRequestRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"status": status})
	if err != nil {
		return 0, fmt.Errorf("gagal menghitung pengajuan cuti: %w", err)
	}
	return count, nil
}
