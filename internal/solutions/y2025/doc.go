// Package y2025 registers the 2025 solutions with the harness.
package y2025
