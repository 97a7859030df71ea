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

type PayrollRepository interface {
	InsertPayrolls(ctx context.Context, payrolls []models.Payroll) error
	CreatePayroll(ctx context.Context, payroll *models.Payroll) (*mongo.InsertOneResult, error)
	DeleteByPeriod(ctx context.Context, period string) (int64, error)
	FindPayrollByID(ctx context.Context, id primitive.ObjectID) (*models.Payroll, error)
	FindPayrollsByUserID(ctx context.Context, userID primitive.ObjectID, page, limit int64) ([]models.Payroll, int64, error)
	FindPayrollsByPeriod(ctx context.Context, period string) ([]models.PayrollWithUser, error)
	GetAllPayrolls(ctx context.Context, filter bson.M, page, limit int64) ([]models.PayrollWithUser, int64, error)
	UpdatePayroll(ctx context.Context, id primitive.ObjectID, updateData bson.M) (*mongo.UpdateResult, error)
	DeletePayroll(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error)
	CountByStatusAndPeriod(ctx context.Context, status, period string) (int64, error)
}

type payrollRepository struct {
	collection *mongo.Collection
}

func NewPayrollRepository() PayrollRepository {
	return &payrollRepository{
		collection: config.GetCollection(config.PayrollCollection),
	}
}

func (r *payrollRepository) InsertPayrolls(ctx context.Context, payrolls []models.Payroll) error {
	if len(payrolls) == 0 {
		return nil
	}

	docs := make([]interface{}, 0, len(payrolls))
	for _, p := range payrolls {
		docs = append(docs, p)
	}

	_, err := r.collection.InsertMany(ctx, docs)
	if err != nil {
		return fmt.Errorf("gagal menyimpan payroll: %w", err)
	}
	return nil
}

func (r *payrollRepository) CreatePayroll(ctx context.Context, payroll *models.Payroll) (*mongo.InsertOneResult, error) {
	payroll.ID = primitive.NewObjectID()
	payroll.CreatedAt = time.Now()
	payroll.UpdatedAt = time.Now()

	result, err := r.collection.InsertOne(ctx, payroll)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, fmt.Errorf("payroll untuk periode tersebut sudah ada")
		}
		return nil, fmt.Errorf("gagal membuat payroll: %w", err)
	}
	return result, nil
}

// DeleteByPeriod menghapus semua baris payroll periode tersebut tanpa
// melihat status. Generate ulang memang menimpa hasil sebelumnya, termasuk
// yang sudah final.
func (r *payrollRepository) DeleteByPeriod(ctx context.Context, period string) (int64, error) {
	result, err := r.collection.DeleteMany(ctx, bson.M{"period": period})
	if err != nil {
		return 0, fmt.Errorf("gagal menghapus payroll periode %s: %w", period, err)
	}
	return result.DeletedCount, nil
}

func (r *payrollRepository) FindPayrollByID(ctx context.Context, id primitive.ObjectID) (*models.Payroll, error) {
	var payroll models.Payroll

	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&payroll)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("gagal menemukan payroll berdasarkan ID: %w", err)
	}
	return &payroll, nil
}

func (r *payrollRepository) FindPayrollsByUserID(ctx context.Context, userID primitive.ObjectID, page, limit int64) ([]models.Payroll, int64, error) {
	filter := bson.M{"user_id": userID}
	findOptions := options.Find().
		SetSort(bson.M{"period": -1}).
		SetSkip((page - 1) * limit).
		SetLimit(limit)

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, 0, fmt.Errorf("gagal menemukan payroll user: %w", err)
	}
	defer cursor.Close(ctx)

	var payrolls []models.Payroll
	if err = cursor.All(ctx, &payrolls); err != nil {
		return nil, 0, fmt.Errorf("gagal mendecode payroll: %w", err)
	}

	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("gagal menghitung payroll: %w", err)
	}

	return payrolls, total, nil
}

func payrollLookupStages() mongo.Pipeline {
	return mongo.Pipeline{
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
	}
}

// FindPayrollsByPeriod mengambil seluruh baris satu periode untuk export,
// diurutkan berdasarkan nama karyawan.
func (r *payrollRepository) FindPayrollsByPeriod(ctx context.Context, period string) ([]models.PayrollWithUser, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"period": period}}},
	}
	pipeline = append(pipeline, payrollLookupStages()...)
	pipeline = append(pipeline, bson.D{{Key: "$sort", Value: bson.M{"user_name": 1}}})

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("gagal menemukan payroll periode: %w", err)
	}
	defer cursor.Close(ctx)

	var payrolls []models.PayrollWithUser
	if err = cursor.All(ctx, &payrolls); err != nil {
		return nil, fmt.Errorf("gagal mendecode payroll periode: %w", err)
	}
	return payrolls, nil
}

func (r *payrollRepository) GetAllPayrolls(ctx context.Context, filter bson.M, page, limit int64) ([]models.PayrollWithUser, int64, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: filter}},
	}
	pipeline = append(pipeline, payrollLookupStages()...)
	pipeline = append(pipeline,
		bson.D{{Key: "$sort", Value: bson.M{"period": -1, "user_name": 1}}},
		bson.D{{Key: "$skip", Value: (page - 1) * limit}},
		bson.D{{Key: "$limit", Value: limit}},
	)

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, 0, fmt.Errorf("gagal menemukan payroll: %w", err)
	}
	defer cursor.Close(ctx)

	var payrolls []models.PayrollWithUser
	if err = cursor.All(ctx, &payrolls); err != nil {
		return nil, 0, fmt.Errorf("gagal mendecode payroll: %w", err)
	}

	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("gagal menghitung payroll: %w", err)
	}

	return payrolls, total, nil
}

func (r *payrollRepository) UpdatePayroll(ctx context.Context, id primitive.ObjectID, updateData bson.M) (*mongo.UpdateResult, error) {
	updateData["updated_at"] = time.Now()

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": updateData})
	if err != nil {
		return nil, fmt.Errorf("gagal mengupdate payroll: %w", err)
	}
	return result, nil
}

func (r *payrollRepository) DeletePayroll(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error) {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return nil, fmt.Errorf("gagal menghapus payroll: %w", err)
	}
	return result, nil
}

func (r *payrollRepository) CountByStatusAndPeriod(ctx context.Context, status, period string) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"status": status, "period": period})
	if err != nil {
		return 0, fmt.Errorf("gagal menghitung payroll: %w", err)
	}
	return count, nil
}
