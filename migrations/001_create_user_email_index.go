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

func CreateUserEmailIndex(ctx context.Context, database *mongo.Database) error {
	name, err := database.Collection(util.UserCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("email_unique"),
	})
	if err != nil {
		return err
	}
	logger.Log.Info("Migration applied", zap.String("index", name))
	return nil
}
