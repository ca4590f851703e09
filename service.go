/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package storemeter

import (
	"context"
	stderrors "errors"
	"fmt"
	"sort"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/suparena/storemeter/cursor"
	"github.com/suparena/storemeter/datastore"
	"github.com/suparena/storemeter/errors"
	"github.com/suparena/storemeter/logging"
	"github.com/suparena/storemeter/registry"
	"github.com/suparena/storemeter/sizing"
	"github.com/suparena/storemeter/storagemodels"
)

// ListResult is one page of a listing plus the token for the next page.
type ListResult struct {
	Items []storagemodels.Record `json:"items"`
	// NextPageToken is empty when there are no more pages.
	NextPageToken string `json:"nextPageToken,omitempty"`
	HasMore       bool   `json:"hasMore"`
}

type table struct {
	pager datastore.Pager
	codec *cursor.Codec
}

// Service pages through registered tables with opaque cursors and measures
// records. It is safe for concurrent use.
type Service struct {
	mu        sync.RWMutex
	tables    map[string]table
	estimator sizing.Estimator
	logger    logrus.FieldLogger
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithEstimator replaces the default size estimator.
func WithEstimator(e sizing.Estimator) ServiceOption {
	return func(s *Service) { s.estimator = e }
}

func WithLogger(l logrus.FieldLogger) ServiceOption {
	return func(s *Service) { s.logger = l }
}

// NewService creates and returns an empty Service.
func NewService(opts ...ServiceOption) *Service {
	s := &Service{
		tables:    make(map[string]table),
		estimator: sizing.NewEstimator(),
		logger:    logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Register makes name listable through pager, with cursors keyed by schema.
func (s *Service) Register(name string, pager datastore.Pager, schema storagemodels.KeySchema) error {
	if name == "" {
		return errors.NewValidationError("table", "table name is empty")
	}
	if pager == nil {
		return errors.NewValidationError("pager", "pager is nil")
	}
	codec, err := cursor.New(schema)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.tables[name]; exists {
		return errors.NewAlreadyExistsError("Table", name)
	}
	s.tables[name] = table{pager: pager, codec: codec}
	return nil
}

// RegisterFromRegistry registers name with the schema held for it in reg.
func (s *Service) RegisterFromRegistry(reg *registry.SchemaRegistry, name string, pager datastore.Pager) error {
	schema, err := reg.Get(name)
	if err != nil {
		return err
	}
	return s.Register(name, pager, schema)
}

// Codec returns the cursor codec of a registered table.
func (s *Service) Codec(name string) (*cursor.Codec, error) {
	t, err := s.lookup(name)
	if err != nil {
		return nil, err
	}
	return t.codec, nil
}

// Tables returns the registered table names, sorted.
func (s *Service) Tables() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.tables))
	for name := range s.tables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ListPage reads the page of name that follows token. An empty token starts
// from the beginning. A token that cannot be decoded, or that a validator
// rejects, yields a BadPaginationTokenError; the cause is logged here and
// never returned to the caller in the message.
func (s *Service) ListPage(
	ctx context.Context,
	name string,
	params storagemodels.QueryParams,
	token string,
	validators ...cursor.Validator,
) (*ListResult, error) {
	t, err := s.lookup(name)
	if err != nil {
		return nil, err
	}
	logger := s.logger.WithField("table", name)

	start, err := t.codec.Decode(token, validators...)
	if err != nil {
		logger.WithError(stderrors.Unwrap(err)).WithField("token", logging.TruncateSessionID(token)).Warn("rejected page token")
		return nil, err
	}
	params.TableName = name
	params.ExclusiveStartKey = start

	page, err := t.pager.QueryPage(ctx, &params)
	if err != nil {
		return nil, fmt.Errorf("failed to read page of %s: %w", name, err)
	}

	next, err := t.codec.Encode(page.LastEvaluatedKey)
	if err != nil {
		return nil, fmt.Errorf("failed to encode page token of %s: %w", name, err)
	}

	logger.WithFields(logrus.Fields{
		"items":    len(page.Items),
		"has_more": next != "",
	}).Debug("listed page")
	return &ListResult{
		Items:         page.Items,
		NextPageToken: next,
		HasMore:       next != "",
	}, nil
}

// ItemSize estimates the stored size of rec in bytes.
func (s *Service) ItemSize(rec storagemodels.Record) int64 {
	return s.estimator.Estimate(rec)
}

// CheckItemQuota returns a QuotaExceededError if storing rec on top of used
// bytes would exceed allowed.
func (s *Service) CheckItemQuota(rec storagemodels.Record, used, allowed int64) error {
	return sizing.CheckQuota(used+s.ItemSize(rec), allowed)
}

func (s *Service) lookup(name string) (table, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.tables[name]
	if !ok {
		return table{}, errors.NewNotFoundError("Table", name)
	}
	return t, nil
}
