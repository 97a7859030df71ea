package config

import (
	"context"
	"log"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/gridfs"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

var MongoConn *mongo.Client

var DBName string = "payroll-karyawan-db"
var UserCollection string = "users"
var PositionCollection string = "positions"
var AttendanceCollection string = "attendances"
var LeaveRequestCollection string = "leave_requests"
var PayrollCollection string = "payrolls"
var ConfigCollection string = "configs"

func MongoConnect() {

	mongoURI := os.Getenv("MONGOSTRING")

	if mongoURI == "" {
		log.Fatal("MONGOSTRING belum di setting di env. coba setting dulu")
	}

	client, err := mongo.NewClient(options.Client().ApplyURI(mongoURI))
	if err != nil {
		log.Fatalf("Failed to create MongoDB client: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err = client.Connect(ctx)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	err = client.Ping(ctx, readpref.Primary())
	if err != nil {
		log.Fatalf("Failed to ping MongoDB: %v", err)
	}

	log.Println("Connected to MongoDB!")
	MongoConn = client
}

func GetCollection(collectionName string) *mongo.Collection {
	if MongoConn == nil {
		log.Fatal("MongoDB untuk client tidak di inisialisasi. Panggil MongoConnect() first")
	}
	return MongoConn.Database(DBName).Collection(collectionName)
}

// GetGridFSBucket mengembalikan bucket GridFS untuk penyimpanan file
// (foto absensi, lampiran cuti, foto profil).
func GetGridFSBucket() (*gridfs.Bucket, error) {
	if MongoConn == nil {
		log.Fatal("MongoDB untuk client tidak di inisialisasi. Panggil MongoConnect() first")
	}
	return gridfs.NewBucket(MongoConn.Database(DBName))
}

// InitDatabase membuat index unik yang menjaga aturan data:
// email user unik, satu absensi per user per tanggal, satu baris payroll
// per user per periode, dan key konfigurasi unik.
func InitDatabase() {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	indexes := map[string][]mongo.IndexModel{
		UserCollection: {
			{
				Keys:    bson.D{{Key: "email", Value: 1}},
				Options: options.Index().SetUnique(true),
			},
		},
		AttendanceCollection: {
			{
				Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "date", Value: 1}},
				Options: options.Index().SetUnique(true),
			},
			{
				Keys: bson.D{{Key: "date", Value: 1}},
			},
		},
		PayrollCollection: {
			{
				Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "period", Value: 1}},
				Options: options.Index().SetUnique(true),
			},
			{
				Keys: bson.D{{Key: "period", Value: 1}},
			},
		},
		PositionCollection: {
			{
				Keys:    bson.D{{Key: "title", Value: 1}},
				Options: options.Index().SetUnique(true),
			},
		},
		ConfigCollection: {
			{
				Keys:    bson.D{{Key: "key", Value: 1}},
				Options: options.Index().SetUnique(true),
			},
		},
		LeaveRequestCollection: {
			{
				Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "status", Value: 1}},
			},
		},
	}

	for collName, models := range indexes {
		_, err := GetCollection(collName).Indexes().CreateMany(ctx, models)
		if err != nil {
			log.Fatalf("Gagal membuat index untuk koleksi %s: %v", collName, err)
		}
	}

	log.Println("Index database berhasil dibuat")
}

func DisconnectDB() {
	if MongoConn != nil {
		if err := MongoConn.Disconnect(context.Background()); err != nil {
			log.Fatalf("Error disconnecting from MongoDB: %v", err)
		}
		log.Println("Disconnect from MongoDB")
	}
}
