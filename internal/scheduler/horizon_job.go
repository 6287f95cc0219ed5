package scheduler

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/AdiSal73/jaguars-da-teamflow-sub005/config"
	"github.com/AdiSal73/jaguars-da-teamflow-sub005/internal/usecase"
	"github.com/AdiSal73/jaguars-da-teamflow-sub005/pkg/timeofday"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// HorizonJob keeps every active pattern materialized a fixed number of days
// ahead. It leans on generation being idempotent: each run only fills the
// dates that entered the window since the last one.
type HorizonJob struct {
	cron        *cron.Cron
	generation  usecase.SlotGenerationUsecase
	log         *logrus.Logger
	schedule    string
	horizonDays int
	concurrency int
	now         func() time.Time
}

// RunResult summarizes one pass over the active patterns.
type RunResult struct {
	Horizon   time.Time
	Patterns  int
	Generated int64
	Failed    int
}

func NewHorizonJob(cfg config.SchedulerConfig, generation usecase.SlotGenerationUsecase, log *logrus.Logger) *HorizonJob {
	cronLogger := cron.PrintfLogger(log)

	concurrency := cfg.Concurrency
	if concurrency <= 0 {
		concurrency = 1
	}

	return &HorizonJob{
		cron: cron.New(
			cron.WithLocation(time.UTC),
			cron.WithLogger(cronLogger),
			cron.WithChain(cron.Recover(cronLogger), cron.SkipIfStillRunning(cronLogger)),
		),
		generation:  generation,
		log:         log,
		schedule:    cfg.Cron,
		horizonDays: cfg.HorizonDays,
		concurrency: concurrency,
		now:         time.Now,
	}
}

func (j *HorizonJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		if _, err := j.Run(context.Background()); err != nil {
			j.log.Errorf("Horizon job failed: %+v", err)
		}
	})
	if err != nil {
		return fmt.Errorf("schedule horizon job %q: %w", j.schedule, err)
	}

	j.cron.Start()
	j.log.Infof("Horizon job scheduled (%s, %d days ahead)", j.schedule, j.horizonDays)
	return nil
}

// Stop waits for a running pass to finish or for ctx to expire.
func (j *HorizonJob) Stop(ctx context.Context) {
	done := j.cron.Stop()
	select {
	case <-done.Done():
		j.log.Info("Horizon job stopped")
	case <-ctx.Done():
		j.log.Warn("Horizon job still running at shutdown deadline")
	}
}

// Run generates slots for every active pattern up to today plus the
// configured horizon. A failing pattern is logged and counted; it does not
// stop the others.
func (j *HorizonJob) Run(ctx context.Context) (*RunResult, error) {
	horizon := timeofday.Date(j.now()).AddDate(0, 0, j.horizonDays)

	ids, err := j.generation.ActivePatternIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("list active patterns: %w", err)
	}

	var generated atomic.Int64
	var failed atomic.Int32

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(j.concurrency)

	for _, id := range ids {
		id := id
		g.Go(func() error {
			res, err := j.generation.Generate(gctx, id, horizon, uuid.Nil)
			if err != nil {
				failed.Add(1)
				j.log.WithField("pattern_id", id).Warnf("Failed to roll pattern forward: %+v", err)
				return nil
			}
			generated.Add(res.Generated)
			return nil
		})
	}

	// Workers never return errors; Wait only joins them.
	_ = g.Wait()

	result := &RunResult{
		Horizon:   horizon,
		Patterns:  len(ids),
		Generated: generated.Load(),
		Failed:    int(failed.Load()),
	}

	j.log.WithFields(logrus.Fields{
		"horizon":   timeofday.FormatDate(horizon),
		"patterns":  result.Patterns,
		"generated": result.Generated,
		"failed":    result.Failed,
	}).Info("Horizon job finished")

	return result, nil
}
