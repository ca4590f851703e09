// Package cmd implements the storemeter command line.
package cmd
