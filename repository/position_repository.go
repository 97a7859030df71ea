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

type PositionRepository interface {
	CreatePosition(ctx context.Context, position *models.Position) (*mongo.InsertOneResult, error)
	FindPositionByID(ctx context.Context, id primitive.ObjectID) (*models.Position, error)
	FindPositionByTitle(ctx context.Context, title string) (*models.Position, error)
	GetAllPositions(ctx context.Context) ([]models.Position, error)
	UpdatePosition(ctx context.Context, id primitive.ObjectID, updateData bson.M) (*mongo.UpdateResult, error)
	DeletePosition(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error)
}

type positionRepository struct {
	collection *mongo.Collection
}

func NewPositionRepository() PositionRepository {
	return &positionRepository{
		collection: config.GetCollection(config.PositionCollection),
	}
}

func (r *positionRepository) CreatePosition(ctx context.Context, position *models.Position) (*mongo.InsertOneResult, error) {
	position.ID = primitive.NewObjectID()
	position.CreatedAt = time.Now()
	position.UpdatedAt = time.Now()

	result, err := r.collection.InsertOne(ctx, position)
	if err != nil {
		return nil, fmt.Errorf("gagal membuat posisi: %w", err)
	}
	return result, nil
}

func (r *positionRepository) FindPositionByID(ctx context.Context, id primitive.ObjectID) (*models.Position, error) {
	var position models.Position

	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&position)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("gagal menemukan posisi berdasarkan ID: %w", err)
	}
	return &position, nil
}

func (r *positionRepository) FindPositionByTitle(ctx context.Context, title string) (*models.Position, error) {
	var position models.Position

	err := r.collection.FindOne(ctx, bson.M{"title": title}).Decode(&position)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("gagal menemukan posisi berdasarkan nama: %w", err)
	}
	return &position, nil
}

func (r *positionRepository) GetAllPositions(ctx context.Context) ([]models.Position, error) {
	findOptions := options.Find().SetSort(bson.M{"title": 1})

	cursor, err := r.collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, fmt.Errorf("gagal menemukan posisi: %w", err)
	}
	defer cursor.Close(ctx)

	var positions []models.Position
	if err = cursor.All(ctx, &positions); err != nil {
		return nil, fmt.Errorf("gagal mendecode posisi: %w", err)
	}
	return positions, nil
}

func (r *positionRepository) UpdatePosition(ctx context.Context, id primitive.ObjectID, updateData bson.M) (*mongo.UpdateResult, error) {
	updateData["updated_at"] = time.Now()

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": updateData})
	if err != nil {
		return nil, fmt.Errorf("gagal mengupdate posisi: %w", err)
	}
	return result, nil
}

func (r *positionRepository) DeletePosition(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error) {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return nil, fmt.Errorf("gagal menghapus posisi: %w", err)
	}
	return result, nil
}
