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

func CreateScanReportIndexes(ctx context.Context, database *mongo.Database) error {
	names, err := database.Collection(util.ScanReportCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "timestamp", Value: -1}},
			Options: options.Index().SetName("userId_timestamp"),
		},
	})
	if err != nil {
		return err
	}
	_, err = database.Collection(util.DosageCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "date", Value: 1}},
		Options: options.Index().SetName("userId_date"),
	})
	if err != nil {
		return err
	}
	logger.Log.Info("Migration applied", zap.Strings("indexes", names))
	return nil
}
