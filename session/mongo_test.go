package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func sessionDoc(id string, userID primitive.ObjectID, expiresAt time.Time) bson.D {
	return bson.D{
		{Key: "_id", Value: id},
		{Key: "userId", Value: userID},
		{Key: "createdAt", Value: expiresAt.Add(-time.Hour)},
		{Key: "expiresAt", Value: expiresAt},
	}
}

func TestMongoStore(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	newStore := func(mt *mtest.T) *MongoStore {
		store := NewMongoStore(mt.Coll, time.Hour)
		store.now = func() time.Time { return now }
		return store
	}
	ns := func(mt *mtest.T) string {
		return mt.Coll.Database().Name() + "." + mt.Coll.Name()
	}

	mt.Run("create", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())
		sess, err := newStore(mt).Create(context.Background(), primitive.NewObjectID())
		require.NoError(mt, err)
		assert.Equal(mt, now.Add(time.Hour), sess.ExpiresAt)
	})

	mt.Run("create keeps the driver error", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{Index: 0, Code: 11000, Message: "duplicate key"}))
		_, err := newStore(mt).Create(context.Background(), primitive.NewObjectID())
		require.Error(mt, err)
		assert.True(mt, mongo.IsDuplicateKeyError(err))
	})

	mt.Run("get live session", func(mt *mtest.T) {
		userID := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns(mt), mtest.FirstBatch, sessionDoc("abc", userID, now.Add(time.Minute))))
		sess, err := newStore(mt).Get(context.Background(), "abc")
		require.NoError(mt, err)
		assert.Equal(mt, userID, sess.UserID)
	})

	mt.Run("get expired session", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns(mt), mtest.FirstBatch, sessionDoc("abc", primitive.NewObjectID(), now)))
		_, err := newStore(mt).Get(context.Background(), "abc")
		assert.ErrorIs(mt, err, ErrNotFound)
	})

	mt.Run("get unknown session", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns(mt), mtest.FirstBatch))
		_, err := newStore(mt).Get(context.Background(), "nope")
		assert.ErrorIs(mt, err, ErrNotFound)
	})

	mt.Run("destroy and purge", func(mt *mtest.T) {
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}),
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 3}),
		)
		store := newStore(mt)
		require.NoError(mt, store.Destroy(context.Background(), "abc"))

		purged, err := store.PurgeExpired(context.Background())
		require.NoError(mt, err)
		assert.Equal(mt, int64(3), purged)
	})
}
