package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"MediSure/config/authorization"
	"MediSure/config/jwt"
	"MediSure/repository/mocks"
	"MediSure/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/mock/gomock"
)

func TestResolve_NoCredential(t *testing.T) {
	f := newAuthFixture(t)
	_, err := f.resolver.Resolve(context.Background(), nil)
	requireKind(t, err, util.KindAuthentication, util.PLEASE_LOG_IN)
	assert.Equal(t, 401, util.StatusOf(err))
}

func TestResolve_Token(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()
	res, err := f.auth.Signup(ctx, validSignup())
	require.NoError(t, err)

	user, err := f.resolver.Resolve(ctx, authorization.TokenCredential{Raw: res.Token})
	require.NoError(t, err)
	assert.Equal(t, res.UserID, user.ID.Hex())
	assert.Empty(t, user.Password)
}

func TestResolve_BadTokens(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()
	res, err := f.auth.Signup(ctx, validSignup())
	require.NoError(t, err)

	expired, err := jwt.NewManager("test-secret", time.Hour).
		WithClock(func() time.Time { return time.Now().Add(-2 * time.Hour) }).
		GenerateJWT(res.UserID, "jane@clinic.com")
	require.NoError(t, err)
	forged, err := jwt.NewManager("other-secret", time.Hour).GenerateJWT(res.UserID, "jane@clinic.com")
	require.NoError(t, err)
	notAnID, err := f.tokens.GenerateJWT("not-an-object-id", "jane@clinic.com")
	require.NoError(t, err)

	for name, raw := range map[string]string{
		"expired":  expired,
		"forged":   forged,
		"garbage":  "abc.def.ghi",
		"bad user": notAnID,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := f.resolver.Resolve(ctx, authorization.TokenCredential{Raw: raw})
			requireKind(t, err, util.KindAuthentication, util.INVALID_OR_EXPIRED)
		})
	}
}

func TestResolve_UnknownSession(t *testing.T) {
	f := newAuthFixture(t)
	_, err := f.resolver.Resolve(context.Background(), authorization.SessionCredential{ID: "nope"})
	requireKind(t, err, util.KindAuthentication, util.SESSION_EXPIRED)
}

func TestResolve_DeletedUser(t *testing.T) {
	f := newAuthFixture(t)
	ghost := primitive.NewObjectID()
	token, err := f.tokens.GenerateJWT(ghost.Hex(), "ghost@clinic.com")
	require.NoError(t, err)

	_, err = f.resolver.Resolve(context.Background(), authorization.TokenCredential{Raw: token})
	requireKind(t, err, util.KindNotFound, util.USER_NOT_FOUND)
	assert.Equal(t, 404, util.StatusOf(err))
}

func TestResolve_LookupFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mocks.NewMockUserRepository(ctrl)
	id := primitive.NewObjectID()
	users.EXPECT().FindByID(gomock.Any(), id).Return(nil, errors.New("mongo timeout"))

	f := newAuthFixture(t)
	resolver := NewAuthResolver(users, f.sessions, f.tokens)
	token, err := f.tokens.GenerateJWT(id.Hex(), "jane@clinic.com")
	require.NoError(t, err)

	_, err = resolver.Resolve(context.Background(), authorization.TokenCredential{Raw: token})
	requireKind(t, err, util.KindInternal, util.INTERNAL_SERVER_ERROR)
	assert.Equal(t, 500, util.StatusOf(err))
}

func TestResolve_SessionUserMissing(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()
	sess, err := f.sessions.Create(ctx, primitive.NewObjectID())
	require.NoError(t, err)

	_, err = f.resolver.Resolve(ctx, authorization.SessionCredential{ID: sess.ID})
	requireKind(t, err, util.KindNotFound, util.USER_NOT_FOUND)
}
