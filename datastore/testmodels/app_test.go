package testmodels

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/suparena/storemeter/cursor"
	"github.com/suparena/storemeter/storagemodels"
	"github.com/suparena/storemeter/validation"
)

func TestAppRecord(t *testing.T) {
	created := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	app := NewApp("ada", 7, created)

	require.NoError(t, validation.ValidateStruct(app))

	rec, err := app.Record()
	require.NoError(t, err)
	assert.True(t, rec["SK"].Equal(storagemodels.String("APP#0007")))
	assert.True(t, rec["ExpiresAt"].Equal(storagemodels.Int(created.Add(24*time.Hour).Unix())))
	assert.Equal(t, storagemodels.KindList, rec["Tags"].Kind())
	assert.NoError(t, AppKeySchema.Conforms(app.Key()))

	got, err := app.Created()
	require.NoError(t, err)
	assert.True(t, created.Equal(got))
}

func TestAppKeyCursor(t *testing.T) {
	codec, err := cursor.NewTyped[AppKey](AppKeySchema)
	require.NoError(t, err)

	app := NewApp("ada", 3, time.Now())
	token, err := codec.Encode(AppKey{PK: app.PK, SK: app.SK})
	require.NoError(t, err)

	key, err := codec.Codec().Decode(token)
	require.NoError(t, err)
	assert.True(t, key.Equal(app.Key()))
}
