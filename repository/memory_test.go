package repository

import (
	"context"
	"testing"
	"time"

	"MediSure/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestMemoryUserRepository_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryUserRepository()

	require.NoError(t, repo.Create(ctx, &models.User{Email: "jane@clinic.org"}))
	err := repo.Create(ctx, &models.User{Email: "JANE@clinic.org"})

	assert.ErrorIs(t, err, ErrDuplicate)
	assert.Equal(t, 1, repo.Count())
}

func TestMemoryUserRepository_Update(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryUserRepository()
	user := &models.User{Email: "jane@clinic.org", DisplayName: "Janey"}
	require.NoError(t, repo.Create(ctx, user))

	name := "Dr Jane"
	updated, err := repo.Update(ctx, user.ID, models.ProfileUpdate{DisplayName: &name})
	require.NoError(t, err)
	assert.Equal(t, "Dr Jane", updated.DisplayName)

	_, err = repo.Update(ctx, primitive.NewObjectID(), models.ProfileUpdate{DisplayName: &name})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryScanReportRepository_ListNewestFirstAndFiltered(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryScanReportRepository()
	owner := primitive.NewObjectID()
	base := time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)

	for i, name := range []string{"first", "second", "third"} {
		require.NoError(t, repo.Create(ctx, &models.ScanReport{
			PatientName: name,
			UserID:      owner,
			Timestamp:   base.Add(time.Duration(i) * 24 * time.Hour),
		}))
	}
	require.NoError(t, repo.Create(ctx, &models.ScanReport{PatientName: "other", UserID: primitive.NewObjectID(), Timestamp: base}))

	all, err := repo.ListByUser(ctx, owner, ReportFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []string{"third", "second", "first"}, []string{all[0].PatientName, all[1].PatientName, all[2].PatientName})

	from := base.AddDate(0, 0, 1)
	to := from.AddDate(0, 0, 1)
	day, err := repo.ListByUser(ctx, owner, ReportFilter{From: &from, To: &to})
	require.NoError(t, err)
	require.Len(t, day, 1)
	assert.Equal(t, "second", day[0].PatientName)
}

func TestMemoryMedicationRepository_ActiveAndHistory(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryMedicationRepository()
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	med := &models.Medication{MedicineName: "Metformin", StartDate: start, EndDate: start.AddDate(0, 0, 9), Frequency: []string{"08:00"}}
	require.NoError(t, repo.Create(ctx, med))

	active, err := repo.ListActive(ctx, start.AddDate(0, 0, 9).Add(20*time.Hour))
	require.NoError(t, err)
	assert.Len(t, active, 1)

	inactive, err := repo.ListActive(ctx, start.AddDate(0, 0, 10))
	require.NoError(t, err)
	assert.Empty(t, inactive)

	require.NoError(t, repo.AddFrequency(ctx, med.ID, "20:00"))
	require.NoError(t, repo.AddFrequency(ctx, med.ID, "20:00"))
	dosageID := primitive.NewObjectID()
	require.NoError(t, repo.AppendDosage(ctx, med.ID, dosageID))

	stored, err := repo.FindByID(ctx, med.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"08:00", "20:00"}, stored.Frequency)
	assert.Equal(t, []primitive.ObjectID{dosageID}, stored.DosageHistory)
}

func TestMemoryDosageRepository_Exists(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryDosageRepository()
	medID := primitive.NewObjectID()
	day := time.Date(2024, 3, 5, 15, 30, 0, 0, time.UTC)

	require.NoError(t, repo.Create(ctx, &models.Dosage{MedicationID: medID, Date: models.Day(day), Time: "08:00", Status: models.DoseTaken}))

	ok, err := repo.Exists(ctx, medID, day, "08:00")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.Exists(ctx, medID, day, "20:00")
	require.NoError(t, err)
	assert.False(t, ok)
}
