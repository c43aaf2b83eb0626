// Package jobs holds the scheduled background tasks of the agent.
package jobs

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"

	"courier-agent/internal/logx"
)

const refreshTimeout = 30 * time.Second

// RefreshJob periodically re-fetches the courier's deliveries and swaps
// them into the registry. It does nothing while logged out.
type RefreshJob struct {
	session  sessionState
	api      deliveryFetcher
	registry deliveryReplacer
	cron     *cron.Cron
	schedule string
	logger   logx.Logger
}

// NewRefreshJob creates the job with the given cron schedule, e.g.
// "@every 30s".
func NewRefreshJob(session sessionState, api deliveryFetcher, registry deliveryReplacer, schedule string, logger logx.Logger) *RefreshJob {
	return &RefreshJob{
		session:  session,
		api:      api,
		registry: registry,
		cron:     cron.New(),
		schedule: schedule,
		logger:   logger.With(logx.String("component", "refresh_job")),
	}
}

// Start schedules the job and begins running it.
func (j *RefreshJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
		defer cancel()
		j.RunOnce(ctx)
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("refresh job started", logx.String("schedule", j.schedule))
	return nil
}

// Stop halts scheduling. A tick already in progress finishes on its own.
func (j *RefreshJob) Stop() {
	j.cron.Stop()
	j.logger.Info("refresh job stopped")
}

// RunOnce performs a single refresh cycle. Failures are logged and the
// registry keeps its previous contents.
func (j *RefreshJob) RunOnce(ctx context.Context) {
	if !j.session.IsAuthenticated() {
		j.logger.Debug("refresh skipped, not authenticated")
		return
	}

	courierID := j.session.CourierID()
	deliveries, _, err := j.api.FetchDeliveries(ctx, courierID, nil)
	if err != nil {
		j.logger.Error("delivery refresh failed",
			logx.Int64("courier_id", courierID),
			logx.Err(err),
		)
		return
	}

	j.registry.Replace(deliveries)
	j.logger.Debug("deliveries refreshed",
		logx.Int64("courier_id", courierID),
		logx.Int("count", len(deliveries)),
	)
}
