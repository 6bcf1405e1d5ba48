package migrations

import (
	"context"

	"MediSure/config/logger"
	"MediSure/util"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// CreateSessionTTLIndex lets mongo drop a session as soon as expiresAt passes.
func CreateSessionTTLIndex(ctx context.Context, database *mongo.Database) error {
	name, err := database.Collection(util.SessionCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "expiresAt", Value: 1}},
		Options: options.Index().SetExpireAfterSeconds(0).SetName("expiresAt_ttl"),
	})
	if err != nil {
		return err
	}
	logger.Log.Info("Migration applied", zap.String("index", name))
	return nil
}
