// Package y2024 registers the 2024 solutions with the harness.
package y2024
