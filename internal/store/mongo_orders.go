// server/internal/store/mongo_orders.go
package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"taller-api-server/internal/models"
)

type MongoOrderStore struct {
	collection *mongo.Collection
}

func NewMongoOrderStore(db *mongo.Database) *MongoOrderStore {
	return &MongoOrderStore{collection: db.Collection("work_orders")}
}

func (s *MongoOrderStore) Create(ctx context.Context, o *models.WorkOrder) error {
	_, err := s.collection.InsertOne(ctx, o)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicate
	}
	return err
}

func (s *MongoOrderStore) GetByOrderID(ctx context.Context, orderID string) (*models.WorkOrder, error) {
	var o models.WorkOrder
	err := s.collection.FindOne(ctx, bson.M{"orderID": orderID}).Decode(&o)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (s *MongoOrderStore) Update(ctx context.Context, o *models.WorkOrder) error {
	res, err := s.collection.ReplaceOne(ctx, bson.M{"orderID": o.OrderID}, o)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoOrderStore) List(ctx context.Context, f OrderFilter) ([]models.WorkOrder, error) {
	filter := bson.M{}
	if f.State != "" {
		filter["state"] = f.State
	}
	if f.MechanicID != "" {
		filter["mechanicID"] = f.MechanicID
	}
	if f.Waitlisted != nil {
		filter["waitlisted"] = *f.Waitlisted
	}
	opts := options.Find().SetSort(bson.M{"createdAt": 1})
	cursor, err := s.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var orders []models.WorkOrder
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *MongoOrderStore) CountInProgressByZone(ctx context.Context, zoneID string) (int, error) {
	n, err := s.collection.CountDocuments(ctx, bson.M{
		"zoneID": zoneID,
		"state":  models.OrderInProgress,
	})
	return int(n), err
}

type MongoLogStore struct {
	collection *mongo.Collection
}

func NewMongoLogStore(db *mongo.Database) *MongoLogStore {
	return &MongoLogStore{collection: db.Collection("order_logs")}
}

func (s *MongoLogStore) Append(ctx context.Context, e *models.LogEntry) error {
	_, err := s.collection.InsertOne(ctx, e)
	return err
}

func (s *MongoLogStore) ListByOrder(ctx context.Context, orderID string) ([]models.LogEntry, error) {
	opts := options.Find().SetSort(bson.M{"timestamp": 1})
	cursor, err := s.collection.Find(ctx, bson.M{"orderID": orderID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var entries []models.LogEntry
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

type MongoQualityStore struct {
	collection *mongo.Collection
}

func NewMongoQualityStore(db *mongo.Database) *MongoQualityStore {
	return &MongoQualityStore{collection: db.Collection("quality_controls")}
}

// Create relies on the unique index on orderID to keep the control
// one-shot under concurrent submissions.
func (s *MongoQualityStore) Create(ctx context.Context, qc *models.QualityControl) error {
	_, err := s.collection.InsertOne(ctx, qc)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicate
	}
	return err
}

func (s *MongoQualityStore) GetByOrder(ctx context.Context, orderID string) (*models.QualityControl, error) {
	var qc models.QualityControl
	err := s.collection.FindOne(ctx, bson.M{"orderID": orderID}).Decode(&qc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &qc, nil
}
