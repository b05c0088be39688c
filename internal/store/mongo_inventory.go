// server/internal/store/mongo_inventory.go
package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"taller-api-server/internal/models"
)

type MongoPartStore struct {
	collection *mongo.Collection
}

func NewMongoPartStore(db *mongo.Database) *MongoPartStore {
	return &MongoPartStore{collection: db.Collection("parts")}
}

func (s *MongoPartStore) Create(ctx context.Context, p *models.Part) error {
	_, err := s.collection.InsertOne(ctx, p)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicate
	}
	return err
}

func (s *MongoPartStore) GetByCode(ctx context.Context, code string) (*models.Part, error) {
	var p models.Part
	err := s.collection.FindOne(ctx, bson.M{"code": code}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *MongoPartStore) Update(ctx context.Context, p *models.Part) error {
	res, err := s.collection.ReplaceOne(ctx, bson.M{"code": p.Code}, p)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoPartStore) List(ctx context.Context) ([]models.Part, error) {
	opts := options.Find().SetSort(bson.M{"code": 1})
	cursor, err := s.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var parts []models.Part
	if err := cursor.All(ctx, &parts); err != nil {
		return nil, err
	}
	return parts, nil
}

func (s *MongoPartStore) ListBelowStock(ctx context.Context, threshold int) ([]models.Part, error) {
	filter := bson.M{
		"stock":  bson.M{"$lt": threshold},
		"status": bson.M{"$ne": models.PartDiscontinued},
	}
	opts := options.Find().SetSort(bson.M{"code": 1})
	cursor, err := s.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var parts []models.Part
	if err := cursor.All(ctx, &parts); err != nil {
		return nil, err
	}
	return parts, nil
}

// AdjustStock guards decrements with a stock filter so two concurrent
// consumers cannot drive the count negative. The derived status is fixed
// up in a second write; a crash between the two leaves only a stale
// status, never a wrong stock.
func (s *MongoPartStore) AdjustStock(ctx context.Context, code string, delta int) (int, error) {
	filter := bson.M{"code": code}
	if delta < 0 {
		filter["stock"] = bson.M{"$gte": -delta}
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var p models.Part
	err := s.collection.FindOneAndUpdate(ctx, filter, bson.M{"$inc": bson.M{"stock": delta}}, opts).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		// Distinguish a missing part from an insufficient balance.
		if _, getErr := s.GetByCode(ctx, code); getErr != nil {
			return 0, getErr
		}
		return 0, ErrInsufficientStock
	}
	if err != nil {
		return 0, err
	}
	if next := p.StatusForStock(); next != p.Status {
		_, err = s.collection.UpdateOne(ctx, bson.M{"code": code}, bson.M{"$set": bson.M{"status": next}})
		if err != nil {
			return 0, err
		}
	}
	return p.Stock, nil
}

type MongoMovementStore struct {
	collection *mongo.Collection
}

func NewMongoMovementStore(db *mongo.Database) *MongoMovementStore {
	return &MongoMovementStore{collection: db.Collection("stock_movements")}
}

func (s *MongoMovementStore) Record(ctx context.Context, m *models.StockMovement) error {
	_, err := s.collection.InsertOne(ctx, m)
	return err
}

func (s *MongoMovementStore) ListByPart(ctx context.Context, code string) ([]models.StockMovement, error) {
	opts := options.Find().SetSort(bson.M{"createdAt": 1})
	cursor, err := s.collection.Find(ctx, bson.M{"partCode": code}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var movements []models.StockMovement
	if err := cursor.All(ctx, &movements); err != nil {
		return nil, err
	}
	return movements, nil
}
