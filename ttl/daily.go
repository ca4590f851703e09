/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ttl

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

// Job is work run once per day by Daily.
type Job func(ctx context.Context) error

// Daily runs a job every day at a fixed UTC hour until its context is done.
type Daily struct {
	Hour   int
	Job    Job
	Logger logrus.FieldLogger

	// now and after are replaced in tests.
	now   func() time.Time
	after func(time.Duration) <-chan time.Time
}

// NewDaily returns a Daily that runs job at hour:00 UTC.
func NewDaily(hour int, job Job, logger logrus.FieldLogger) *Daily {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Daily{
		Hour:   hour,
		Job:    job,
		Logger: logger,
		now:    time.Now,
		after:  time.After,
	}
}

// Run blocks, running the job at each trigger, and returns ctx.Err() once
// ctx is done. A failing job is logged and retried at the next trigger.
func (d *Daily) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		wait := UntilNextDailyTrigger(d.now(), d.Hour)
		d.Logger.WithFields(logrus.Fields{
			"hour_utc": d.Hour,
			"wait_ms":  wait.Milliseconds(),
		}).Debug("scheduled next daily run")

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-d.after(wait):
		}

		start := d.now()
		if err := d.Job(ctx); err != nil {
			d.Logger.WithError(err).Error("daily job failed")
			continue
		}
		d.Logger.WithField("duration", d.now().Sub(start).String()).Info("daily job finished")
	}
}
