package services

import (
	"context"
	"testing"
	"time"

	"MediSure/models"
	"MediSure/repository"
	"MediSure/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func strPtr(s string) *string { return &s }

func seedUser(t *testing.T, users *repository.MemoryUserRepository) *models.User {
	t.Helper()
	user := &models.User{DisplayName: "Dr. Jane Doe", Email: "jane@clinic.com", Password: "hash"}
	require.NoError(t, users.Create(context.Background(), user))
	return user
}

func TestProfile_Get(t *testing.T) {
	users := repository.NewMemoryUserRepository()
	svc := NewProfileService(users)
	user := seedUser(t, users)

	got, err := svc.Get(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, "jane@clinic.com", got.Email)
	assert.Empty(t, got.Password)

	_, err = svc.Get(context.Background(), primitive.NewObjectID())
	requireKind(t, err, util.KindNotFound, util.USER_NOT_FOUND)
}

func TestProfile_Update(t *testing.T) {
	users := repository.NewMemoryUserRepository()
	svc := NewProfileService(users)
	user := seedUser(t, users)

	got, err := svc.Update(context.Background(), user.ID, ProfileInput{
		FirstName: strPtr("  Jane "),
		Specialty: strPtr("Radiology"),
		Gender:    strPtr("Female"),
		Dob:       strPtr("1980-05-17"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Jane", got.FirstName)
	assert.Equal(t, "Radiology", got.Specialty)
	assert.Equal(t, "Dr. Jane Doe", got.DisplayName)
	require.NotNil(t, got.Dob)
	assert.Equal(t, time.Date(1980, time.May, 17, 0, 0, 0, 0, time.UTC), *got.Dob)
	assert.Empty(t, got.Password)
}

func TestProfile_UpdateValidation(t *testing.T) {
	users := repository.NewMemoryUserRepository()
	svc := NewProfileService(users)
	user := seedUser(t, users)
	ctx := context.Background()

	_, err := svc.Update(ctx, user.ID, ProfileInput{DisplayName: strPtr("Jo")})
	requireKind(t, err, util.KindValidation, util.DISPLAY_NAME_TOO_SHORT)

	_, err = svc.Update(ctx, user.ID, ProfileInput{Gender: strPtr("unknown")})
	requireKind(t, err, util.KindValidation, util.INVALID_GENDER)

	_, err = svc.Update(ctx, user.ID, ProfileInput{Dob: strPtr("17/05/1980")})
	requireKind(t, err, util.KindValidation, util.INVALID_DATE_OF_BIRTH)
}

func TestProfile_EmptyUpdateReturnsProfile(t *testing.T) {
	users := repository.NewMemoryUserRepository()
	svc := NewProfileService(users)
	user := seedUser(t, users)

	got, err := svc.Update(context.Background(), user.ID, ProfileInput{})
	require.NoError(t, err)
	assert.Equal(t, user.DisplayName, got.DisplayName)
}
