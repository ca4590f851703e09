/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/sirupsen/logrus"
	"github.com/suparena/storemeter/storagemodels"
)

// withRetry runs call until it succeeds, fails with a non-retryable error,
// or options.MaxRetries retries are used up.
func withRetry[O any](
	ctx context.Context,
	options storagemodels.ScanOptions,
	logger logrus.FieldLogger,
	call func() (O, error),
) (O, error) {
	var zero O
	var lastErr error

	for attempt := 0; attempt <= options.MaxRetries; attempt++ {
		// Check context before retry
		if err := ctx.Err(); err != nil {
			return zero, err
		}

		out, err := call()
		if err == nil {
			return out, nil
		}
		lastErr = err

		if !isRetryableError(err) {
			return zero, err
		}

		// Don't sleep after last attempt
		if attempt < options.MaxRetries {
			backoff := time.Duration(attempt+1) * options.RetryBackoff
			logger.WithError(err).WithFields(logrus.Fields{
				"attempt": attempt + 1,
				"backoff": backoff.String(),
			}).Warn("retrying DynamoDB request")
			select {
			case <-ctx.Done():
				return zero, ctx.Err()
			case <-time.After(backoff):
			}
		}
	}

	return zero, fmt.Errorf("request failed after %d retries: %w", options.MaxRetries, lastErr)
}

// isRetryableError determines if a DynamoDB error is retryable
func isRetryableError(err error) bool {
	var throughput *types.ProvisionedThroughputExceededException
	var requestLimit *types.RequestLimitExceeded
	var internal *types.InternalServerError
	switch {
	case errors.As(err, &throughput), errors.As(err, &requestLimit), errors.As(err, &internal):
		return true
	}

	// Check for AWS SDK retryable errors
	var retryable interface{ IsRetryable() bool }
	if errors.As(err, &retryable) {
		return retryable.IsRetryable()
	}

	return false
}
