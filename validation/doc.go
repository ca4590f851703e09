// Package validation holds syntactic checks on user-supplied fields.
package validation
