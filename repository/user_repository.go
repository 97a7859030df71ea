package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"Sistem-Payroll-Karyawan/config"
	"Sistem-Payroll-Karyawan/models"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User) (*mongo.InsertOneResult, error)
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
	FindUserByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	GetAllUsers(ctx context.Context, filter bson.M, page, limit int64) ([]models.UserWithPosition, int64, error)
	UpdateUser(ctx context.Context, id primitive.ObjectID, updateData bson.M) (*mongo.UpdateResult, error)
	UpdateUserPassword(ctx context.Context, id primitive.ObjectID, hashedPassword string) error
	DeleteUser(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error)
	FindEmployees(ctx context.Context) ([]models.User, error)
	CountEmployees(ctx context.Context) (int64, error)
	CountEmployeesWithPosition(ctx context.Context, positionID primitive.ObjectID) (int64, error)
}

type userRepository struct {
	collection *mongo.Collection
}

func NewUserRepository() UserRepository {
	return &userRepository{
		collection: config.GetCollection(config.UserCollection),
	}
}

func (r *userRepository) CreateUser(ctx context.Context, user *models.User) (*mongo.InsertOneResult, error) {
	user.ID = primitive.NewObjectID()
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()
	user.IsFirstLogin = true

	result, err := r.collection.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, fmt.Errorf("email sudah ada")
		}
		return nil, fmt.Errorf("gagal membuat user: %w", err)
	}
	return result, nil
}

func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	filter := bson.M{"email": email}

	err := r.collection.FindOne(ctx, filter).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("gagal menemukan user berdasarkan email: %w", err)
	}
	return &user, nil
}

func (r *userRepository) FindUserByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var user models.User
	filter := bson.M{"_id": id}

	err := r.collection.FindOne(ctx, filter).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("gagal menemukan user berdasarkan ID: %w", err)
	}
	return &user, nil
}

// GetAllUsers mengembalikan daftar user beserta nama posisi dan tarif per
// jamnya lewat $lookup ke koleksi positions.
func (r *userRepository) GetAllUsers(ctx context.Context, filter bson.M, page, limit int64) ([]models.UserWithPosition, int64, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: filter}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         config.PositionCollection,
			"localField":   "position_id",
			"foreignField": "_id",
			"as":           "position_info",
		}}},
		bson.D{{Key: "$unwind", Value: bson.M{
			"path":                       "$position_info",
			"preserveNullAndEmptyArrays": true,
		}}},
		bson.D{{Key: "$addFields", Value: bson.M{
			"position_title": "$position_info.title",
			"hourly_rate":    "$position_info.hourly_rate",
		}}},
		bson.D{{Key: "$project", Value: bson.M{"position_info": 0, "password": 0}}},
		bson.D{{Key: "$sort", Value: bson.M{"created_at": -1}}},
		bson.D{{Key: "$skip", Value: (page - 1) * limit}},
		bson.D{{Key: "$limit", Value: limit}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, 0, fmt.Errorf("gagal menemukan user: %w", err)
	}
	defer cursor.Close(ctx)

	var users []models.UserWithPosition
	if err = cursor.All(ctx, &users); err != nil {
		return nil, 0, fmt.Errorf("gagal mendecode user: %w", err)
	}

	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("gagal menghitung user: %w", err)
	}

	return users, total, nil
}

func (r *userRepository) UpdateUser(ctx context.Context, id primitive.ObjectID, updateData bson.M) (*mongo.UpdateResult, error) {
	updateData["updated_at"] = time.Now()
	filter := bson.M{"_id": id}
	update := bson.M{"$set": updateData}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, fmt.Errorf("email sudah ada")
		}
		return nil, fmt.Errorf("gagal mengupdate user: %w", err)
	}
	return result, nil
}

func (r *userRepository) UpdateUserPassword(ctx context.Context, id primitive.ObjectID, hashedPassword string) error {
	update := bson.M{
		"$set": bson.M{
			"password":       hashedPassword,
			"is_first_login": false,
			"updated_at":     time.Now(),
		},
	}
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return fmt.Errorf("gagal mengupdate password user: %w", err)
	}
	return nil
}

func (r *userRepository) DeleteUser(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error) {
	filter := bson.M{"_id": id}

	result, err := r.collection.DeleteOne(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("gagal menghapus user: %w", err)
	}
	return result, nil
}

// FindEmployees mengembalikan semua user non-admin, bahan perhitungan
// payroll. Admin tidak ikut payroll.
func (r *userRepository) FindEmployees(ctx context.Context) ([]models.User, error) {
	filter := bson.M{"role": bson.M{"$ne": "admin"}}

	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("gagal menemukan karyawan: %w", err)
	}
	defer cursor.Close(ctx)

	var users []models.User
	if err = cursor.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("gagal mendecode karyawan: %w", err)
	}
	return users, nil
}

func (r *userRepository) CountEmployees(ctx context.Context) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"role": bson.M{"$ne": "admin"}})
	if err != nil {
		return 0, fmt.Errorf("gagal menghitung karyawan: %w", err)
	}
	return count, nil
}

func (r *userRepository) CountEmployeesWithPosition(ctx context.Context, positionID primitive.ObjectID) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"position_id": positionID})
	if err != nil {
		return 0, fmt.Errorf("gagal menghitung karyawan dengan posisi: %w", err)
	}
	return count, nil
}
