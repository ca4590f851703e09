package testmodels

import (
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/go-openapi/strfmt"
	"github.com/suparena/storemeter/storagemodels"
)

// AppKeySchema is the key of the apps table.
var AppKeySchema = storagemodels.KeySchema{
	{Name: "PK", Kind: storagemodels.KindString},
	{Name: "SK", Kind: storagemodels.KindString},
}

// AppKey is the typed form of an apps table key.
type AppKey struct {
	PK string `dynamodbav:"PK"`
	SK string `dynamodbav:"SK"`
}

type App struct {

	// Partition key, OWNER#<owner id>.
	// Required: true
	PK string `dynamodbav:"PK" json:"pk" validate:"required"`

	// Sort key, APP#<app id>.
	// Required: true
	SK string `dynamodbav:"SK" json:"sk" validate:"required"`

	// Display name of the app.
	// Required: true
	Name string `dynamodbav:"Name" json:"name" validate:"required,max=64"`

	// Contact address of the owner.
	// Required: true
	OwnerEmail string `dynamodbav:"OwnerEmail" json:"ownerEmail" validate:"required,email_syntax"`

	// Timestamp when the app was created.
	// Format: date-time
	CreatedAt string `dynamodbav:"CreatedAt" json:"createdAt" validate:"required"`

	// Expiry read by the table's TTL.
	ExpiresAt attributevalue.UnixTime `dynamodbav:"ExpiresAt" json:"expiresAt"`

	Tags []string `dynamodbav:"Tags,omitempty" json:"tags,omitempty"`
}

// NewApp returns app i of owner, created at created and expiring a day later.
func NewApp(owner string, i int, created time.Time) App {
	return App{
		PK:         "OWNER#" + owner,
		SK:         fmt.Sprintf("APP#%04d", i),
		Name:       fmt.Sprintf("app %d", i),
		OwnerEmail: owner + "@example.com",
		CreatedAt:  strfmt.DateTime(created.UTC()).String(),
		ExpiresAt:  attributevalue.UnixTime(created.Add(24 * time.Hour)),
		Tags:       []string{"test"},
	}
}

// Created parses CreatedAt.
func (a App) Created() (time.Time, error) {
	dt, err := strfmt.ParseDateTime(a.CreatedAt)
	if err != nil {
		return time.Time{}, err
	}
	return time.Time(dt), nil
}

// Record converts the app to its stored form.
func (a App) Record() (storagemodels.Record, error) {
	item, err := attributevalue.MarshalMap(a)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal app: %w", err)
	}
	return storagemodels.FromItem(item), nil
}

// Key returns the app's primary key.
func (a App) Key() storagemodels.Key {
	return storagemodels.Key{
		"PK": storagemodels.String(a.PK),
		"SK": storagemodels.String(a.SK),
	}
}
