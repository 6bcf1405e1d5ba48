package migrations

import (
	"context"
	"time"

	"MediSure/config/logger"
	"MediSure/services"
	"MediSure/util"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

/*
* Reports written before normalisation carry free-form scan types
* Keep the raw value in originalScanType and store the canonical one
* Unknown spellings are left as they are
 */
func BackfillScanType(ctx context.Context, database *mongo.Database) error {
	coll := database.Collection(util.ScanReportCollection)
	cursor, err := coll.Find(ctx, bson.M{"originalScanType": bson.M{"$exists": false}})
	if err != nil {
		return err
	}
	defer cursor.Close(ctx)

	updated, skipped := 0, 0
	for cursor.Next(ctx) {
		var doc struct {
			ID       primitive.ObjectID `bson:"_id"`
			ScanType string             `bson:"scanType"`
		}
		if err := cursor.Decode(&doc); err != nil {
			return err
		}
		canonical, ok := services.NormalizeScanType(doc.ScanType)
		if !ok {
			skipped++
			continue
		}
		_, err := coll.UpdateOne(ctx, bson.M{"_id": doc.ID}, bson.M{"$set": bson.M{
			"scanType":         canonical,
			"originalScanType": doc.ScanType,
			"updatedAt":        time.Now().UTC(),
		}})
		if err != nil {
			return err
		}
		updated++
	}
	if err := cursor.Err(); err != nil {
		return err
	}
	logger.Log.Info("Migration applied: scan types backfilled", zap.Int("updated", updated), zap.Int("skipped", skipped))
	return nil
}
