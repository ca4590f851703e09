// Package logging builds the logrus logger used across storemeter and keeps
// session identifiers and tokens out of log output in full.
package logging
