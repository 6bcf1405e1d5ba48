package jobs

import (
	"context"
	"errors"
	"testing"
	"time"

	"MediSure/models"
	"MediSure/repository"
	"MediSure/services"
	"MediSure/session"
	"MediSure/session/mocks"

	"github.com/robfig/cron/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type recordingSweeper struct {
	days []time.Time
	err  error
}

func (s *recordingSweeper) SweepMissed(_ context.Context, day time.Time) (int, error) {
	s.days = append(s.days, day)
	return len(s.days), s.err
}

func TestStartDailyScheduler_StopsCleanly(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctrl := gomock.NewController(t)
	c, err := StartDailyScheduler(Options{
		MissedDoseSpec:   "5 0 * * *",
		SessionPurgeSpec: "@hourly",
		Sweeper:          &recordingSweeper{},
		Purger:           mocks.NewMockPurger(ctrl),
	})
	require.NoError(t, err)
	assert.Len(t, c.Entries(), 2)
	assert.Equal(t, time.UTC, c.Location())
	Stop(c)
}

func TestZapCronLogger_RecoveredPanicIsLogged(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	cl := zapCronLogger{log: zap.New(core).Sugar()}

	job := cron.NewChain(cron.Recover(cl)).Then(cron.FuncJob(func() { panic("sweep exploded") }))
	assert.NotPanics(t, job.Run)

	errs := logs.FilterLevelExact(zapcore.ErrorLevel).All()
	require.Len(t, errs, 1)
	assert.Equal(t, "panic", errs[0].Message)
	assert.Contains(t, errs[0].ContextMap()["error"], "sweep exploded")

	cl.Info("start", "entries", 2)
	assert.Equal(t, 1, logs.FilterMessage("start").Len())
}

func TestStartDailyScheduler_SkipsPurgeWithoutPurger(t *testing.T) {
	defer goleak.VerifyNone(t)

	c, err := StartDailyScheduler(Options{MissedDoseSpec: "5 0 * * *", Sweeper: &recordingSweeper{}})
	require.NoError(t, err)
	assert.Len(t, c.Entries(), 1)
	Stop(c)
}

func TestStartDailyScheduler_BadSpec(t *testing.T) {
	defer goleak.VerifyNone(t)

	_, err := StartDailyScheduler(Options{MissedDoseSpec: "every day", Sweeper: &recordingSweeper{}})
	assert.Error(t, err)
}

func TestRunMissedDoseSweep_UsesYesterday(t *testing.T) {
	sweeper := &recordingSweeper{}
	now := time.Date(2025, time.March, 14, 0, 5, 0, 0, time.UTC)

	RunMissedDoseSweep(context.Background(), sweeper, now)
	require.Len(t, sweeper.days, 1)
	assert.Equal(t, models.Day(now.AddDate(0, 0, -1)), models.Day(sweeper.days[0]))

	sweeper.err = errors.New("mongo down")
	assert.NotPanics(t, func() { RunMissedDoseSweep(context.Background(), sweeper, now) })
}

func TestRunMissedDoseSweep_MarksUnrecordedDoses(t *testing.T) {
	repos := repository.NewMemoryRepositories()
	meds := services.NewMedicationService(repos.Medications, repos.Dosages)
	ctx := context.Background()
	owner := primitive.NewObjectID()

	_, err := meds.Add(ctx, owner, services.MedicationInput{
		MedicineName:    "Lisinopril",
		DosageQuantity:  "10",
		DosageUnit:      "mg",
		Frequency:       []string{"09:00", "21:00"},
		StartDate:       "2025-03-01",
		EndDate:         "2025-03-31",
		ExpiryDate:      "2026-03-01",
		CurrentQuantity: "30",
	})
	require.NoError(t, err)

	now := time.Date(2025, time.March, 14, 0, 5, 0, 0, time.UTC)
	assert.Equal(t, 2, RunMissedDoseSweep(ctx, meds, now))
	assert.Equal(t, 0, RunMissedDoseSweep(ctx, meds, now))

	dosages, err := repos.Dosages.ListByUserOnDay(ctx, owner, now.AddDate(0, 0, -1))
	require.NoError(t, err)
	require.Len(t, dosages, 2)
	for _, d := range dosages {
		assert.Equal(t, models.DoseMissed, d.Status)
	}
}

func TestRunSessionPurge(t *testing.T) {
	now := time.Now()
	store := session.NewMemoryStore(time.Hour).WithClock(func() time.Time { return now })
	_, err := store.Create(context.Background(), primitive.NewObjectID())
	require.NoError(t, err)

	now = now.Add(2 * time.Hour)
	assert.EqualValues(t, 1, RunSessionPurge(context.Background(), store))
	assert.Zero(t, store.Len())

	ctrl := gomock.NewController(t)
	failing := mocks.NewMockPurger(ctrl)
	failing.EXPECT().PurgeExpired(gomock.Any()).Return(int64(0), errors.New("mongo down"))
	assert.Zero(t, RunSessionPurge(context.Background(), failing))
}
