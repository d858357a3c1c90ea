// Package utils provides common helpers for turning raw table cells into typed
// values: blank detection, tolerant integer parsing, identifier case folding,
// and comma-list splitting.
package utils
