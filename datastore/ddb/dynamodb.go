/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	sdk "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/sirupsen/logrus"
	smconfig "github.com/suparena/storemeter/config"
	"github.com/suparena/storemeter/storagemodels"
)

// API is the part of the DynamoDB client the store uses.
type API interface {
	Query(ctx context.Context, params *sdk.QueryInput, optFns ...func(*sdk.Options)) (*sdk.QueryOutput, error)
	Scan(ctx context.Context, params *sdk.ScanInput, optFns ...func(*sdk.Options)) (*sdk.ScanOutput, error)
}

// DynamodbDataStore implements datastore.Pager on a DynamoDB table.
type DynamodbDataStore struct {
	client    API
	tableName string
	options   storagemodels.ScanOptions
	logger    logrus.FieldLogger
}

// NewDynamoDBClient initializes a DynamoDB client using AWS credentials.
// Empty keys fall back to the default credential chain.
func NewDynamoDBClient(ctx context.Context, awsCfg smconfig.AWSConfig, logger logrus.FieldLogger) (*sdk.Client, error) {
	opts := []func(*config.LoadOptions) error{config.WithRegion(awsCfg.Region)}
	if awsCfg.AccessKey != "" || awsCfg.SecretKey != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(awsCfg.AccessKey, awsCfg.SecretKey, ""),
		))
	}

	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	client := sdk.NewFromConfig(cfg)

	if logger != nil {
		logger.WithFields(logrus.Fields{
			"table":  awsCfg.Table,
			"region": awsCfg.Region,
		}).Info("DynamoDB client initialized")
	}
	return client, nil
}

// NewDynamodbDataStore constructs a store reading tableName through client.
func NewDynamodbDataStore(client API, tableName string, logger logrus.FieldLogger, opts ...storagemodels.ScanOption) *DynamodbDataStore {
	options := storagemodels.DefaultScanOptions()
	for _, opt := range opts {
		opt(&options)
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &DynamodbDataStore{
		client:    client,
		tableName: tableName,
		options:   options,
		logger:    logger.WithField("table", tableName),
	}
}

// NewDynamodbDataStoreFromConfig creates the client and a store for the configured table.
func NewDynamodbDataStoreFromConfig(ctx context.Context, awsCfg smconfig.AWSConfig, logger logrus.FieldLogger, opts ...storagemodels.ScanOption) (*DynamodbDataStore, error) {
	client, err := NewDynamoDBClient(ctx, awsCfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create DynamoDB client: %w", err)
	}
	return NewDynamodbDataStore(client, awsCfg.Table, logger, opts...), nil
}

// TableName returns the table every page is read from.
func (d *DynamodbDataStore) TableName() string {
	return d.tableName
}
