package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"MediSure/config/db"
	"MediSure/models"
	"MediSure/util"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return ErrNotFound
	case mongo.IsDuplicateKeyError(err):
		return ErrDuplicate
	default:
		return err
	}
}

type MongoUserRepository struct {
	coll *mongo.Collection
}

func NewMongoUserRepository(coll *mongo.Collection) *MongoUserRepository {
	return &MongoUserRepository{coll: coll}
}

func (r *MongoUserRepository) Create(ctx context.Context, user *models.User) error {
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	if _, err := db.CreateOne(ctx, r.coll, user); err != nil {
		return fmt.Errorf("insert user: %w", translate(err))
	}
	return nil
}

func (r *MongoUserRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var user models.User
	if err := db.FindOne(ctx, r.coll, bson.M{"_id": id}, &user); err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (r *MongoUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := db.FindOne(ctx, r.coll, bson.M{"email": email}, &user); err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

/*
* Build the $set from the non-nil fields only
* Return the document as it is after the update
 */
func (r *MongoUserRepository) Update(ctx context.Context, id primitive.ObjectID, update models.ProfileUpdate) (*models.User, error) {
	set := bson.M{"updatedAt": time.Now().UTC()}
	if update.DisplayName != nil {
		set["displayName"] = *update.DisplayName
	}
	if update.FirstName != nil {
		set["firstName"] = *update.FirstName
	}
	if update.LastName != nil {
		set["lastName"] = *update.LastName
	}
	if update.Title != nil {
		set["title"] = *update.Title
	}
	if update.Specialty != nil {
		set["specialty"] = *update.Specialty
	}
	if update.Gender != nil {
		set["gender"] = *update.Gender
	}
	if update.Dob != nil {
		set["dob"] = *update.Dob
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var user models.User
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&user)
	if err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

type MongoScanReportRepository struct {
	coll *mongo.Collection
}

func NewMongoScanReportRepository(coll *mongo.Collection) *MongoScanReportRepository {
	return &MongoScanReportRepository{coll: coll}
}

func (r *MongoScanReportRepository) Create(ctx context.Context, report *models.ScanReport) error {
	if report.ID.IsZero() {
		report.ID = primitive.NewObjectID()
	}
	if _, err := db.CreateOne(ctx, r.coll, report); err != nil {
		return fmt.Errorf("insert scan report: %w", translate(err))
	}
	return nil
}

func (r *MongoScanReportRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.ScanReport, error) {
	var report models.ScanReport
	if err := db.FindOne(ctx, r.coll, bson.M{"_id": id}, &report); err != nil {
		return nil, translate(err)
	}
	return &report, nil
}

func (r *MongoScanReportRepository) ListByUser(ctx context.Context, userID primitive.ObjectID, filter ReportFilter) ([]models.ScanReport, error) {
	query := bson.M{"userId": userID}
	ts := bson.M{}
	if filter.From != nil {
		ts["$gte"] = *filter.From
	}
	if filter.To != nil {
		ts["$lt"] = *filter.To
	}
	if len(ts) > 0 {
		query["timestamp"] = ts
	}

	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}})
	reports := []models.ScanReport{}
	if err := db.FindAll(ctx, r.coll, query, opts, &reports); err != nil {
		return nil, fmt.Errorf("list scan reports: %w", err)
	}
	return reports, nil
}

type MongoMedicationRepository struct {
	coll *mongo.Collection
}

func NewMongoMedicationRepository(coll *mongo.Collection) *MongoMedicationRepository {
	return &MongoMedicationRepository{coll: coll}
}

func (r *MongoMedicationRepository) Create(ctx context.Context, med *models.Medication) error {
	if med.ID.IsZero() {
		med.ID = primitive.NewObjectID()
	}
	if med.DosageHistory == nil {
		med.DosageHistory = []primitive.ObjectID{}
	}
	if _, err := db.CreateOne(ctx, r.coll, med); err != nil {
		return fmt.Errorf("insert medication: %w", translate(err))
	}
	return nil
}

func (r *MongoMedicationRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Medication, error) {
	var med models.Medication
	if err := db.FindOne(ctx, r.coll, bson.M{"_id": id}, &med); err != nil {
		return nil, translate(err)
	}
	return &med, nil
}

func (r *MongoMedicationRepository) ListByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Medication, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}, {Key: "_id", Value: 1}})
	meds := []models.Medication{}
	if err := db.FindAll(ctx, r.coll, bson.M{"userId": userID}, opts, &meds); err != nil {
		return nil, fmt.Errorf("list medications: %w", err)
	}
	return meds, nil
}

func (r *MongoMedicationRepository) ListActive(ctx context.Context, day time.Time) ([]models.Medication, error) {
	d := models.Day(day)
	filter := bson.M{
		"startDate": bson.M{"$lt": d.AddDate(0, 0, 1)},
		"endDate":   bson.M{"$gte": d},
	}
	meds := []models.Medication{}
	if err := db.FindAll(ctx, r.coll, filter, nil, &meds); err != nil {
		return nil, fmt.Errorf("list active medications: %w", err)
	}
	return meds, nil
}

func (r *MongoMedicationRepository) AddFrequency(ctx context.Context, id primitive.ObjectID, at string) error {
	update := bson.M{
		"$addToSet": bson.M{"frequency": at},
		"$set":      bson.M{"updatedAt": time.Now().UTC()},
	}
	res, err := db.UpdateOne(ctx, r.coll, bson.M{"_id": id}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoMedicationRepository) AppendDosage(ctx context.Context, id primitive.ObjectID, dosageID primitive.ObjectID) error {
	update := bson.M{
		"$push": bson.M{"dosageHistory": dosageID},
		"$set":  bson.M{"updatedAt": time.Now().UTC()},
	}
	res, err := db.UpdateOne(ctx, r.coll, bson.M{"_id": id}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

type MongoDosageRepository struct {
	coll *mongo.Collection
}

func NewMongoDosageRepository(coll *mongo.Collection) *MongoDosageRepository {
	return &MongoDosageRepository{coll: coll}
}

func (r *MongoDosageRepository) Create(ctx context.Context, dosage *models.Dosage) error {
	if dosage.ID.IsZero() {
		dosage.ID = primitive.NewObjectID()
	}
	if _, err := db.CreateOne(ctx, r.coll, dosage); err != nil {
		return fmt.Errorf("insert dosage: %w", translate(err))
	}
	return nil
}

func (r *MongoDosageRepository) ListByUserOnDay(ctx context.Context, userID primitive.ObjectID, day time.Time) ([]models.Dosage, error) {
	filter := bson.M{"userId": userID, "date": models.Day(day)}
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	dosages := []models.Dosage{}
	if err := db.FindAll(ctx, r.coll, filter, opts, &dosages); err != nil {
		return nil, fmt.Errorf("list dosages: %w", err)
	}
	return dosages, nil
}

func (r *MongoDosageRepository) Exists(ctx context.Context, medicationID primitive.ObjectID, day time.Time, at string) (bool, error) {
	filter := bson.M{"medicationId": medicationID, "date": models.Day(day), "time": at}
	count, err := r.coll.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// NewMongoRepositories opens every collection on the connected database.
func NewMongoRepositories() Repositories {
	return Repositories{
		Users:       NewMongoUserRepository(db.OpenCollections(util.UserCollection)),
		ScanReports: NewMongoScanReportRepository(db.OpenCollections(util.ScanReportCollection)),
		Medications: NewMongoMedicationRepository(db.OpenCollections(util.MedicationCollection)),
		Dosages:     NewMongoDosageRepository(db.OpenCollections(util.DosageCollection)),
	}
}
