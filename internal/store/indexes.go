// server/internal/store/indexes.go
package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the unique indexes the stores rely on. Safe to
// run on every startup; Mongo treats existing identical indexes as a
// no-op.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	unique := options.Index().SetUnique(true)

	indexes := map[string][]mongo.IndexModel{
		"user_profiles": {
			{Keys: bson.D{{Key: "username", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "profileID", Value: 1}}, Options: unique},
		},
		"mechanics": {
			{Keys: bson.D{{Key: "mechanicID", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "profileID", Value: 1}}, Options: unique},
		},
		"clients": {
			{Keys: bson.D{{Key: "rut", Value: 1}}, Options: unique},
		},
		"vehicles": {
			{Keys: bson.D{{Key: "plate", Value: 1}}, Options: unique},
		},
		"work_zones": {
			{Keys: bson.D{{Key: "zoneID", Value: 1}}, Options: unique},
		},
		"work_orders": {
			{Keys: bson.D{{Key: "orderID", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "state", Value: 1}, {Key: "zoneID", Value: 1}}},
		},
		"quality_controls": {
			{Keys: bson.D{{Key: "orderID", Value: 1}}, Options: unique},
		},
		"parts": {
			{Keys: bson.D{{Key: "code", Value: 1}}, Options: unique},
		},
		"tools": {
			{Keys: bson.D{{Key: "code", Value: 1}}, Options: unique},
		},
		"tool_usages": {
			// One open usage per tool. The partial filter scopes
			// uniqueness to rows without a checkin time.
			{
				Keys: bson.D{{Key: "toolCode", Value: 1}},
				Options: options.Index().SetUnique(true).SetPartialFilterExpression(
					bson.M{"checkinTime": bson.M{"$type": "null"}},
				),
			},
		},
		"notifications": {
			{Keys: bson.D{{Key: "recipientID", Value: 1}, {Key: "createdAt", Value: -1}}},
			{Keys: bson.D{{Key: "type", Value: 1}, {Key: "partCode", Value: 1}}},
		},
		"catalog_services": {
			{Keys: bson.D{{Key: "name", Value: 1}}, Options: unique},
		},
	}

	for collection, models := range indexes {
		if _, err := db.Collection(collection).Indexes().CreateMany(ctx, models); err != nil {
			return err
		}
	}
	return nil
}
