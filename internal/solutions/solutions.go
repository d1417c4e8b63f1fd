// Package solutions links every year's solutions into the binary. Importing
// it for side effects registers all days with the harness.
package solutions

import (
	_ "github.com/harrison/aoc/internal/solutions/y2015"
	_ "github.com/harrison/aoc/internal/solutions/y2024"
	_ "github.com/harrison/aoc/internal/solutions/y2025"
)
