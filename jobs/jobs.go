package jobs

import (
	"context"
	"fmt"
	"time"

	"MediSure/config/logger"
	"MediSure/session"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const jobTimeout = 5 * time.Minute

type MissedDoseSweeper interface {
	SweepMissed(ctx context.Context, day time.Time) (int, error)
}

type Options struct {
	MissedDoseSpec   string
	SessionPurgeSpec string
	Sweeper          MissedDoseSweeper
	// Purger is nil when the session store expires records itself.
	Purger session.Purger
	Now    func() time.Time
}

/*
* Register the missed-dose sweep and, when the store needs it, the session purge
* The returned cron is already running; stop it on shutdown
 */
func StartDailyScheduler(opts Options) (*cron.Cron, error) {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	cl := zapCronLogger{log: logger.Log.Sugar()}
	c := cron.New(
		cron.WithLocation(time.UTC),
		cron.WithLogger(cl),
		cron.WithChain(cron.Recover(cl)),
	)

	// Runs every day at 00:05 UTC by default
	if _, err := c.AddFunc(opts.MissedDoseSpec, func() {
		logger.Log.Info("Running missed dose sweep")
		RunMissedDoseSweep(context.Background(), opts.Sweeper, opts.Now())
	}); err != nil {
		return nil, fmt.Errorf("schedule missed dose sweep: %w", err)
	}

	if opts.Purger != nil {
		if _, err := c.AddFunc(opts.SessionPurgeSpec, func() {
			RunSessionPurge(context.Background(), opts.Purger)
		}); err != nil {
			return nil, fmt.Errorf("schedule session purge: %w", err)
		}
	}

	c.Start()
	return c, nil
}

// zapCronLogger sends cron's own logging, recovered panics included, to zap.
type zapCronLogger struct {
	log *zap.SugaredLogger
}

func (l zapCronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.log.Debugw(msg, keysAndValues...)
}

func (l zapCronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.log.Errorw(msg, append(keysAndValues, "error", err)...)
}

// Stop waits for running jobs to finish.
func Stop(c *cron.Cron) {
	if c == nil {
		return
	}
	<-c.Stop().Done()
}

// RunMissedDoseSweep marks every unrecorded dose of the day before now as missed.
func RunMissedDoseSweep(ctx context.Context, sweeper MissedDoseSweeper, now time.Time) int {
	ctx, cancel := context.WithTimeout(ctx, jobTimeout)
	defer cancel()

	day := now.UTC().AddDate(0, 0, -1)
	written, err := sweeper.SweepMissed(ctx, day)
	if err != nil {
		logger.Log.Error("Error while sweeping missed doses", zap.Time("day", day), zap.Error(err))
	}
	logger.Log.Info("Missed dose sweep finished", zap.Time("day", day), zap.Int("marked", written))
	return written
}

func RunSessionPurge(ctx context.Context, purger session.Purger) int64 {
	ctx, cancel := context.WithTimeout(ctx, jobTimeout)
	defer cancel()

	removed, err := purger.PurgeExpired(ctx)
	if err != nil {
		logger.Log.Error("Error while purging sessions", zap.Error(err))
		return 0
	}
	logger.Log.Info("Expired sessions purged", zap.Int64("removed", removed))
	return removed
}
