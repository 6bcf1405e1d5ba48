package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"MediSure/config/db"
	"MediSure/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoStore keeps sessions in the sessions collection. A TTL index on
// expiresAt removes them eventually; Get also checks expiry itself.
type MongoStore struct {
	coll *mongo.Collection
	ttl  time.Duration
	now  func() time.Time
}

func NewMongoStore(coll *mongo.Collection, ttl time.Duration) *MongoStore {
	return &MongoStore{coll: coll, ttl: ttl, now: time.Now}
}

func (s *MongoStore) Create(ctx context.Context, userID primitive.ObjectID) (*models.Session, error) {
	sess := newSession(userID, s.now().UTC(), s.ttl)
	if _, err := db.CreateOne(ctx, s.coll, sess); err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}
	return sess, nil
}

func (s *MongoStore) Get(ctx context.Context, id string) (*models.Session, error) {
	var sess models.Session
	err := db.FindOne(ctx, s.coll, bson.M{"_id": id}, &sess)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	if sess.Expired(s.now()) {
		return nil, ErrNotFound
	}
	return &sess, nil
}

func (s *MongoStore) Destroy(ctx context.Context, id string) error {
	_, err := s.coll.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

func (s *MongoStore) PurgeExpired(ctx context.Context) (int64, error) {
	res, err := db.DeleteMany(ctx, s.coll, bson.M{"expiresAt": bson.M{"$lte": s.now().UTC()}})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
