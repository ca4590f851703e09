/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package usage

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/segmentio/ksuid"
	"github.com/sirupsen/logrus"
	"github.com/suparena/storemeter/datastore"
	"github.com/suparena/storemeter/errors"
	"github.com/suparena/storemeter/sizing"
	"github.com/suparena/storemeter/storagemodels"
	"github.com/suparena/storemeter/ttl"
)

// Report is the outcome of one usage recomputation.
type Report struct {
	RunID      ksuid.KSUID
	Table      string
	Items      int64
	Pages      int
	Bytes      int64
	QuotaBytes int64
	StartedAt  time.Time
	FinishedAt time.Time
}

// OverQuota reports whether Bytes exceeds a non-zero quota.
func (r *Report) OverQuota() bool {
	return errors.IsQuotaExceeded(sizing.CheckQuota(r.Bytes, r.QuotaBytes))
}

func (r *Report) Duration() time.Duration {
	return r.FinishedAt.Sub(r.StartedAt)
}

// Recomputer walks a table and totals the estimated size of its items.
type Recomputer struct {
	table     string
	pager     datastore.Pager
	estimator sizing.Estimator
	quota     int64
	metrics   *Metrics
	logger    logrus.FieldLogger
	options   storagemodels.ScanOptions
	now       func() time.Time
}

// Option configures a Recomputer.
type Option func(*Recomputer)

// WithQuota sets the byte quota checked after each run; 0 disables it.
func WithQuota(bytes int64) Option {
	return func(r *Recomputer) { r.quota = bytes }
}

func WithEstimator(e sizing.Estimator) Option {
	return func(r *Recomputer) { r.estimator = e }
}

func WithMetrics(m *Metrics) Option {
	return func(r *Recomputer) { r.metrics = m }
}

func WithLogger(l logrus.FieldLogger) Option {
	return func(r *Recomputer) { r.logger = l }
}

// WithScanOptions sets the page size and progress handler of the walk.
func WithScanOptions(opts ...storagemodels.ScanOption) Option {
	return func(r *Recomputer) {
		for _, opt := range opts {
			opt(&r.options)
		}
	}
}

// NewRecomputer returns a Recomputer for table read through pager.
func NewRecomputer(table string, pager datastore.Pager, opts ...Option) *Recomputer {
	r := &Recomputer{
		table:     table,
		pager:     pager,
		estimator: sizing.NewEstimator(),
		logger:    logrus.StandardLogger(),
		options:   storagemodels.DefaultScanOptions(),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	r.logger = r.logger.WithField("table", table)
	return r
}

// Run walks the whole table once. When the total is over quota the report
// is returned together with a QuotaExceededError. On a read error the
// partial report is returned with the error.
func (r *Recomputer) Run(ctx context.Context) (*Report, error) {
	report := &Report{
		RunID:      ksuid.New(),
		Table:      r.table,
		QuotaBytes: r.quota,
		StartedAt:  r.now(),
	}
	logger := r.logger.WithField("run_id", report.RunID.String())
	logger.Info("usage recomputation started")

	params := storagemodels.QueryParams{TableName: r.table}
	if r.options.PageSize > 0 {
		params.Limit = aws.Int32(r.options.PageSize)
	}

	err := datastore.Walk(ctx, r.pager, params, func(page *storagemodels.Page) error {
		for _, rec := range page.Items {
			report.Bytes += r.estimator.Estimate(rec)
		}
		report.Items += int64(len(page.Items))
		report.Pages++
		r.reportProgress(report, page.LastEvaluatedKey)
		return nil
	})
	report.FinishedAt = r.now()
	elapsed := report.Duration().Seconds()

	if err != nil {
		r.observe(statusError, elapsed)
		logger.WithError(err).WithField("pages", report.Pages).Error("usage recomputation failed")
		return report, fmt.Errorf("usage run %s: %w", report.RunID, err)
	}

	if r.metrics != nil {
		r.metrics.recordUsage(r.table, report.Bytes, report.Items)
	}

	fields := logrus.Fields{
		"items":    report.Items,
		"pages":    report.Pages,
		"size":     sizing.FormatSize(report.Bytes, true),
		"duration": report.Duration().String(),
	}
	if err := sizing.CheckQuota(report.Bytes, r.quota); err != nil {
		r.observe(statusOverQuota, elapsed)
		logger.WithFields(fields).WithField("quota", sizing.FormatSize(r.quota, true)).Warn("table is over quota")
		return report, err
	}

	r.observe(statusSuccess, elapsed)
	logger.WithFields(fields).Info("usage recomputation finished")
	return report, nil
}

// Job adapts Run for ttl.Daily. Going over quota is logged by Run and is
// not treated as a failure of the job.
func (r *Recomputer) Job() ttl.Job {
	return func(ctx context.Context) error {
		_, err := r.Run(ctx)
		if errors.IsQuotaExceeded(err) {
			return nil
		}
		return err
	}
}

func (r *Recomputer) observe(status string, seconds float64) {
	if r.metrics != nil {
		r.metrics.recordRun(r.table, status, seconds)
	}
}

func (r *Recomputer) reportProgress(report *Report, lastKey storagemodels.Key) {
	if r.options.ProgressHandler == nil {
		return
	}
	progress := storagemodels.ScanProgress{
		ItemsProcessed: report.Items,
		PagesProcessed: report.Pages,
		BytesEstimated: report.Bytes,
		LastKey:        lastKey,
		StartTime:      report.StartedAt,
	}
	if elapsed := r.now().Sub(report.StartedAt).Seconds(); elapsed > 0 {
		progress.CurrentRate = float64(report.Items) / elapsed
	}
	r.options.ProgressHandler(progress)
}
