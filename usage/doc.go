/*
Package usage recomputes how much storage a table uses.

A Recomputer walks every page of a table through a datastore.Pager, sums
sizing.Estimate over the items, compares the total against an optional quota
and publishes the result as Prometheus gauges:

	storemeter_table_size_bytes{table}
	storemeter_table_items{table}
	storemeter_usage_runs_total{table,status}
	storemeter_usage_run_duration_seconds{table}

Runs are usually scheduled once a day:

	r := usage.NewRecomputer("apps", store, usage.WithQuota(10<<20), usage.WithMetrics(m))
	go ttl.NewDaily(cfg.Usage.Hour, r.Job(), logger).Run(ctx)
*/
package usage
