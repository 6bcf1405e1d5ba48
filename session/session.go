// Package session stores server-side login sessions. The cookie only ever
// carries the opaque session id.
package session

import (
	"context"
	"errors"
	"time"

	"MediSure/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ErrNotFound = errors.New("session: not found")

//go:generate mockgen -source=session.go -destination=mocks/session.go -package=mocks

type Store interface {
	Create(ctx context.Context, userID primitive.ObjectID) (*models.Session, error)
	// Get returns ErrNotFound for unknown and expired sessions alike.
	Get(ctx context.Context, id string) (*models.Session, error)
	// Destroy is a no-op for unknown ids.
	Destroy(ctx context.Context, id string) error
}

// Purger is implemented by stores that do not expire records on their own.
type Purger interface {
	PurgeExpired(ctx context.Context) (int64, error)
}

func newSession(userID primitive.ObjectID, now time.Time, ttl time.Duration) *models.Session {
	return &models.Session{
		ID:        uuid.NewString(),
		UserID:    userID,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}
}
