// Package y2015 registers the 2015 solutions with the harness.
package y2015
