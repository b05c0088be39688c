// server/internal/store/mongo_notifications.go
package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"taller-api-server/internal/models"
)

type MongoNotificationStore struct {
	collection *mongo.Collection
}

func NewMongoNotificationStore(db *mongo.Database) *MongoNotificationStore {
	return &MongoNotificationStore{collection: db.Collection("notifications")}
}

func (s *MongoNotificationStore) Create(ctx context.Context, n *models.Notification) error {
	_, err := s.collection.InsertOne(ctx, n)
	return err
}

func (s *MongoNotificationStore) ListByRecipient(ctx context.Context, profileID string) ([]models.Notification, error) {
	opts := options.Find().SetSort(bson.M{"createdAt": -1})
	cursor, err := s.collection.Find(ctx, bson.M{"recipientID": profileID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var notifications []models.Notification
	if err := cursor.All(ctx, &notifications); err != nil {
		return nil, err
	}
	return notifications, nil
}

func (s *MongoNotificationStore) MarkRead(ctx context.Context, notificationID, recipientID string) error {
	res, err := s.collection.UpdateOne(ctx,
		bson.M{"notificationID": notificationID, "recipientID": recipientID},
		bson.M{"$set": bson.M{"read": true}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoNotificationStore) HasRecentLowStockAlert(ctx context.Context, partCode string, since time.Time) (bool, error) {
	n, err := s.collection.CountDocuments(ctx, bson.M{
		"type":      models.NotifLowStock,
		"partCode":  partCode,
		"read":      false,
		"createdAt": bson.M{"$gte": since},
	})
	return n > 0, err
}

func (s *MongoNotificationStore) HasDelayAlert(ctx context.Context, orderID string) (bool, error) {
	n, err := s.collection.CountDocuments(ctx, bson.M{
		"type":    models.NotifWorkDelayed,
		"orderID": orderID,
	})
	return n > 0, err
}
