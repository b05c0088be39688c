// server/internal/store/mongo_tools.go
package store

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"taller-api-server/internal/models"
)

type MongoToolStore struct {
	tools  *mongo.Collection
	usages *mongo.Collection
}

func NewMongoToolStore(db *mongo.Database) *MongoToolStore {
	return &MongoToolStore{
		tools:  db.Collection("tools"),
		usages: db.Collection("tool_usages"),
	}
}

func (s *MongoToolStore) Create(ctx context.Context, t *models.Tool) error {
	_, err := s.tools.InsertOne(ctx, t)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicate
	}
	return err
}

func (s *MongoToolStore) GetByCode(ctx context.Context, code string) (*models.Tool, error) {
	var t models.Tool
	err := s.tools.FindOne(ctx, bson.M{"code": code}).Decode(&t)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *MongoToolStore) Update(ctx context.Context, t *models.Tool) error {
	res, err := s.tools.ReplaceOne(ctx, bson.M{"code": t.Code}, t)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoToolStore) List(ctx context.Context) ([]models.Tool, error) {
	opts := options.Find().SetSort(bson.M{"code": 1})
	cursor, err := s.tools.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var tools []models.Tool
	if err := cursor.All(ctx, &tools); err != nil {
		return nil, err
	}
	return tools, nil
}

// OpenUsage depends on the partial unique index over open usages (see
// EnsureIndexes) to reject a second concurrent checkout.
func (s *MongoToolStore) OpenUsage(ctx context.Context, u *models.ToolUsage) error {
	_, err := s.usages.InsertOne(ctx, u)
	if mongo.IsDuplicateKeyError(err) {
		return ErrOpenUsageExists
	}
	return err
}

func (s *MongoToolStore) CloseOpenUsage(ctx context.Context, toolCode string, at time.Time) (bool, error) {
	res, err := s.usages.UpdateOne(ctx,
		bson.M{"toolCode": toolCode, "checkinTime": nil},
		bson.M{"$set": bson.M{"checkinTime": at}},
	)
	if err != nil {
		return false, err
	}
	return res.ModifiedCount > 0, nil
}

func (s *MongoToolStore) OpenUsageByTool(ctx context.Context, toolCode string) (*models.ToolUsage, error) {
	var u models.ToolUsage
	err := s.usages.FindOne(ctx, bson.M{"toolCode": toolCode, "checkinTime": nil}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}
