package services

import (
	"context"
	"errors"

	"MediSure/config/authorization"
	"MediSure/config/jwt"
	"MediSure/config/logger"
	"MediSure/models"
	"MediSure/repository"
	"MediSure/session"
	"MediSure/util"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type AuthResolver struct {
	users    repository.UserRepository
	sessions session.Store
	tokens   *jwt.Manager
}

func NewAuthResolver(users repository.UserRepository, sessions session.Store, tokens *jwt.Manager) *AuthResolver {
	return &AuthResolver{users: users, sessions: sessions, tokens: tokens}
}

/*
* No credential at all is unauthenticated
* A token is verified and its id claim is the user id
* A session id is looked up in the session store
* Load the user and strip the password before returning it
 */
func (r *AuthResolver) Resolve(ctx context.Context, cred authorization.Credential) (*models.User, error) {
	var rawID string

	switch c := cred.(type) {
	case authorization.TokenCredential:
		claims, err := r.tokens.ValidateJWT(c.Raw)
		if err != nil {
			logger.Log.Debug("Rejected bearer token", zap.Error(err))
			return nil, util.AuthenticationError(util.INVALID_OR_EXPIRED)
		}
		rawID = claims.ID
	case authorization.SessionCredential:
		sess, err := r.sessions.Get(ctx, c.ID)
		if errors.Is(err, session.ErrNotFound) {
			return nil, util.AuthenticationError(util.SESSION_EXPIRED)
		}
		if err != nil {
			logger.Log.Error("Error while loading the session", zap.Error(err))
			return nil, util.InternalError(err)
		}
		rawID = sess.UserID.Hex()
	default:
		return nil, util.AuthenticationError(util.PLEASE_LOG_IN)
	}

	userID, err := primitive.ObjectIDFromHex(rawID)
	if err != nil {
		return nil, util.AuthenticationError(util.INVALID_OR_EXPIRED)
	}

	user, err := r.users.FindByID(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, util.NotFoundError(util.USER_NOT_FOUND)
	}
	if err != nil {
		logger.Log.Error("Error while fetching the user for auth", zap.Error(err))
		return nil, util.InternalError(err)
	}

	clean := user.Sanitized()
	return &clean, nil
}
