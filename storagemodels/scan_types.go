package storagemodels

import (
	"time"
)

// ScanOptions configures a full-table walk such as a usage recomputation.
type ScanOptions struct {
	PageSize        int32              // Items per DynamoDB page (default: 100)
	MaxRetries      int                // Retry attempts for transient errors (default: 3)
	RetryBackoff    time.Duration      // Backoff between retries (default: 1s)
	ProgressHandler func(ScanProgress) // Optional progress callback
}

// ScanProgress tracks progress of a full-table walk
type ScanProgress struct {
	ItemsProcessed int64     // Total items processed
	PagesProcessed int       // Total pages processed
	BytesEstimated int64     // Running size estimate
	LastKey        Key       // Last evaluated key
	StartTime      time.Time // When the walk started
	CurrentRate    float64   // Items per second
}

// ScanOption is a functional option for configuring scans
type ScanOption func(*ScanOptions)

// DefaultScanOptions returns default scan options
func DefaultScanOptions() ScanOptions {
	return ScanOptions{
		PageSize:     100,
		MaxRetries:   3,
		RetryBackoff: time.Second,
	}
}

// WithPageSize sets the DynamoDB page size
func WithPageSize(size int32) ScanOption {
	return func(opts *ScanOptions) {
		opts.PageSize = size
	}
}

// WithMaxRetries sets the maximum retry attempts
func WithMaxRetries(retries int) ScanOption {
	return func(opts *ScanOptions) {
		opts.MaxRetries = retries
	}
}

// WithRetryBackoff sets the retry backoff duration
func WithRetryBackoff(backoff time.Duration) ScanOption {
	return func(opts *ScanOptions) {
		opts.RetryBackoff = backoff
	}
}

// WithProgressHandler sets a progress callback
func WithProgressHandler(handler func(ScanProgress)) ScanOption {
	return func(opts *ScanOptions) {
		opts.ProgressHandler = handler
	}
}
