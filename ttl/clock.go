/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ttl

import (
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/go-openapi/strfmt"
)

const hoursPerDay = 24

// ToEpochSeconds returns t as whole seconds since the Unix epoch. Sub-second
// precision is truncated toward negative infinity, never rounded.
func ToEpochSeconds(t time.Time) int64 {
	return t.Unix()
}

// ToDate is the inverse of ToEpochSeconds, in UTC.
func ToDate(epochSeconds int64) time.Time {
	return time.Unix(epochSeconds, 0).UTC()
}

// UntilNextDailyTrigger returns the time from now until the next hour:00 UTC.
// When now is already at or past that hour today, the next day's is used, so
// the result is always positive. Hours outside 0-23 wrap around the day.
func UntilNextDailyTrigger(now time.Time, triggerUTCHour int) time.Duration {
	return NextDailyTrigger(now, triggerUTCHour).Sub(now)
}

// MsUntilNextDailyTrigger is UntilNextDailyTrigger in milliseconds, rounded
// up so a trigger less than a millisecond away still yields 1.
func MsUntilNextDailyTrigger(now time.Time, triggerUTCHour int) int64 {
	d := UntilNextDailyTrigger(now, triggerUTCHour)
	return int64((d + time.Millisecond - 1) / time.Millisecond)
}

// NextDailyTrigger returns the next instant strictly after now at which the
// UTC clock reads triggerUTCHour:00:00.
func NextDailyTrigger(now time.Time, triggerUTCHour int) time.Time {
	hour := ((triggerUTCHour % hoursPerDay) + hoursPerDay) % hoursPerDay

	utc := now.UTC()
	next := time.Date(utc.Year(), utc.Month(), utc.Day(), hour, 0, 0, 0, time.UTC)
	if utc.Hour() >= hour {
		next = next.AddDate(0, 0, 1)
	}
	return next
}

// ParseExpiration parses an RFC 3339 / OpenAPI date-time such as
// "2025-03-01T12:00:00.000Z" into an expiry time.
func ParseExpiration(s string) (time.Time, error) {
	dt, err := strfmt.ParseDateTime(s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid expiration date %q: %w", s, err)
	}
	return time.Time(dt), nil
}

// Attribute returns the DynamoDB number attribute holding t's epoch seconds,
// the form the table's time-to-live setting expects.
func Attribute(t time.Time) (types.AttributeValue, error) {
	av, err := attributevalue.Marshal(attributevalue.UnixTime(t))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal ttl: %w", err)
	}
	return av, nil
}

// FromAttribute reads an expiry time written by Attribute.
func FromAttribute(av types.AttributeValue) (time.Time, error) {
	var ut attributevalue.UnixTime
	if err := attributevalue.Unmarshal(av, &ut); err != nil {
		return time.Time{}, fmt.Errorf("failed to unmarshal ttl: %w", err)
	}
	return time.Time(ut).UTC(), nil
}
