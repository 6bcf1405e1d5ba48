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

func newReportService(cache ReportCache) (*ScanReportService, *repository.MemoryScanReportRepository) {
	repo := repository.NewMemoryScanReportRepository()
	svc := NewScanReportService(repo, cache, "https://images.medisure.test/")
	svc.now = clock
	return svc, repo
}

func TestScanReport_CreateThenGetRoundTrip(t *testing.T) {
	svc, _ := newReportService(nil)
	ctx := context.Background()
	owner := primitive.NewObjectID()

	created, err := svc.Create(ctx, owner, ScanReportInput{
		PatientName: "  Sarah Johnson ",
		ScanType:    "CT scan",
		Predictions: []string{"Normal"},
	})
	require.NoError(t, err)
	require.False(t, created.ID.IsZero())

	got, err := svc.GetByID(ctx, owner, created.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, "Sarah Johnson", got.PatientName)
	assert.Equal(t, models.ScanTypeCT, got.ScanType)
	assert.Equal(t, []string{"Normal"}, got.Predictions)
	assert.Equal(t, "Mar 14, 2025", got.FormattedDate)
	assert.Equal(t, "from-cyan-500 to-blue-500", got.Color)
}

func TestScanReport_PredictionOrderIsKept(t *testing.T) {
	svc, _ := newReportService(nil)
	ctx := context.Background()
	owner := primitive.NewObjectID()
	preds := []string{"Pneumonia", "Normal", "Effusion"}

	created, err := svc.Create(ctx, owner, ScanReportInput{PatientName: "Robert", ScanType: "X-ray", Predictions: preds})
	require.NoError(t, err)

	got, err := svc.GetByID(ctx, owner, created.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, preds, got.Predictions)
}

func TestScanReport_Validation(t *testing.T) {
	svc, _ := newReportService(nil)
	owner := primitive.NewObjectID()

	_, err := svc.Create(context.Background(), owner, ScanReportInput{PatientName: " ", ScanType: "CT scan"})
	requireKind(t, err, util.KindValidation, util.PATIENT_NAME_REQUIRED)

	_, err = svc.Create(context.Background(), owner, ScanReportInput{PatientName: "Emma"})
	requireKind(t, err, util.KindValidation, util.SCAN_TYPE_REQUIRED)

	_, err = svc.Create(context.Background(), owner, ScanReportInput{PatientName: "Emma", ScanType: "MRI"})
	requireKind(t, err, util.KindValidation, util.INVALID_SCAN_TYPE)
}

func TestNormalizeScanType(t *testing.T) {
	for raw, want := range map[string]string{
		"CT scan": models.ScanTypeCT,
		"ct":      models.ScanTypeCT,
		"CT-Scan": models.ScanTypeCT,
		"X-ray":   models.ScanTypeXRay,
		" XRAY ":  models.ScanTypeXRay,
		"x ray":   models.ScanTypeXRay,
	} {
		got, ok := NormalizeScanType(raw)
		assert.True(t, ok, raw)
		assert.Equal(t, want, got, raw)
	}
	_, ok := NormalizeScanType("ultrasound")
	assert.False(t, ok)
}

func TestScanReport_AliasKeepsOriginal(t *testing.T) {
	svc, _ := newReportService(nil)
	created, err := svc.Create(context.Background(), primitive.NewObjectID(), ScanReportInput{PatientName: "Emma", ScanType: "xray"})
	require.NoError(t, err)
	assert.Equal(t, models.ScanTypeXRay, created.ScanType)
	assert.Equal(t, "xray", created.OriginalScanType)
}

func TestScanReport_ListNewestFirst(t *testing.T) {
	svc, repo := newReportService(nil)
	ctx := context.Background()
	owner := primitive.NewObjectID()

	t1 := fixedNow.Add(-48 * time.Hour)
	t2 := fixedNow.Add(-24 * time.Hour)
	t3 := fixedNow
	for _, ts := range []time.Time{t2, t3, t1} {
		require.NoError(t, repo.Create(ctx, &models.ScanReport{PatientName: ts.Format(time.RFC3339), ScanType: models.ScanTypeCT, UserID: owner, Timestamp: ts}))
	}
	require.NoError(t, repo.Create(ctx, &models.ScanReport{PatientName: "someone else", UserID: primitive.NewObjectID(), Timestamp: t3}))

	views, err := svc.List(ctx, owner, "")
	require.NoError(t, err)
	require.Len(t, views, 3)
	assert.Equal(t, t3, views[0].Timestamp)
	assert.Equal(t, t2, views[1].Timestamp)
	assert.Equal(t, t1, views[2].Timestamp)
}

func TestScanReport_ListDateFilter(t *testing.T) {
	svc, repo := newReportService(nil)
	ctx := context.Background()
	owner := primitive.NewObjectID()
	require.NoError(t, repo.Create(ctx, &models.ScanReport{PatientName: "a", UserID: owner, Timestamp: fixedNow}))
	require.NoError(t, repo.Create(ctx, &models.ScanReport{PatientName: "b", UserID: owner, Timestamp: fixedNow.AddDate(0, 0, -1)}))

	views, err := svc.List(ctx, owner, "2025-03-14")
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "a", views[0].PatientName)

	_, err = svc.List(ctx, owner, "14/03/2025")
	requireKind(t, err, util.KindValidation, util.INVALID_DATE_FILTER)
}

func TestScanReport_UnknownForeignAndMalformedIDs(t *testing.T) {
	svc, _ := newReportService(nil)
	ctx := context.Background()
	owner := primitive.NewObjectID()
	created, err := svc.Create(ctx, owner, ScanReportInput{PatientName: "Emma", ScanType: "CT scan"})
	require.NoError(t, err)

	for _, tc := range []struct {
		user primitive.ObjectID
		id   string
	}{
		{owner, primitive.NewObjectID().Hex()},
		{owner, "not-an-id"},
		{primitive.NewObjectID(), created.ID.Hex()},
	} {
		_, err := svc.GetByID(ctx, tc.user, tc.id)
		requireKind(t, err, util.KindNotFound, util.SCAN_REPORT_NOT_FOUND)
	}
}

func TestScanReport_ReadThroughCache(t *testing.T) {
	cache := newMapCache()
	svc, _ := newReportService(cache)
	ctx := context.Background()
	owner := primitive.NewObjectID()

	created, err := svc.Create(ctx, owner, ScanReportInput{PatientName: "Emma", ScanType: "CT scan", Predictions: []string{"Normal"}})
	require.NoError(t, err)
	assert.Contains(t, cache.entries, util.ScanReportKey+created.ID.Hex())

	got, err := svc.GetByID(ctx, owner, created.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, 1, cache.hits)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, []string{"Normal"}, got.Predictions)
}

func TestScanReport_CacheFailureFallsBack(t *testing.T) {
	cache := newMapCache()
	cache.failGet = true
	svc, _ := newReportService(cache)
	ctx := context.Background()
	owner := primitive.NewObjectID()

	created, err := svc.Create(ctx, owner, ScanReportInput{PatientName: "Emma", ScanType: "X-ray"})
	require.NoError(t, err)

	got, err := svc.GetByID(ctx, owner, created.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, "Emma", got.PatientName)
}

func TestScanReport_GetImages(t *testing.T) {
	svc, _ := newReportService(nil)
	ctx := context.Background()
	owner := primitive.NewObjectID()
	created, err := svc.Create(ctx, owner, ScanReportInput{
		PatientName: "Emma",
		ScanType:    "X-ray",
		Predictions: []string{"Fracture"},
		Images:      []string{"chest-1.png", "/chest-2.png", "https://cdn.example.com/chest-3.png"},
	})
	require.NoError(t, err)

	images, details, err := svc.GetImages(ctx, owner, created.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, []string{
		"https://images.medisure.test/api/uploads/chest-1.png",
		"https://images.medisure.test/api/uploads/chest-2.png",
		"https://cdn.example.com/chest-3.png",
	}, images)
	assert.Equal(t, created.ID.Hex(), details.ID)
	assert.Equal(t, []string{"Fracture"}, details.Predictions)
}

func TestDecorate_UnknownTypeGetsDefaultColor(t *testing.T) {
	view := Decorate(models.ScanReport{ScanType: "MRI", Timestamp: fixedNow})
	assert.Equal(t, defaultReportColor, view.Color)
}
