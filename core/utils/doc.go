// Package utils provides small parsing and formatting helpers shared by the HTTP handlers
// and the CLI: flag-like query values, integer parameters and human readable byte counts.
package utils
