/*
Package ttl converts between times and the epoch-second values DynamoDB's
time-to-live feature reads, and schedules daily background work.

	expires, _ := ttl.ParseExpiration("2025-03-01T12:00:00Z")
	item["ttl"], _ = ttl.Attribute(expires)

	daily := ttl.NewDaily(9, recompute, logger) // 09:00 UTC
	go daily.Run(ctx)
*/
package ttl
