/*
Package config loads storemeter settings.

Values are resolved in order: built-in defaults, an optional YAML file, then
environment variables (a .env file is loaded into the environment first).

	aws:
	  region: us-east-1
	  table: apps
	usage:
	  hour: 9
	  quota_bytes: 10485760
	tables:
	  - name: apps
	    key_schema:
	      - {name: PK, kind: S}
	      - {name: SK, kind: S}
*/
package config
