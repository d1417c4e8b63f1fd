package y2015

import (
	"encoding/json"
	"fmt"

	"github.com/harrison/aoc/internal/harness"
)

func init() {
	harness.Register(2015, 12, harness.SolutionFunc(solveDay12),
		harness.Answer(harness.Part1, harness.Int(191164)),
		harness.Example(harness.Part1, harness.Int(6), `{"a":2,"b":4}`),
		harness.Answer(harness.Part2, harness.Int(87842)),
		harness.Example(harness.Part2, harness.Int(4), `[1,{"c":"red","b":2},3]`),
	)
}

func solveDay12(input string, part harness.Part) harness.Result {
	var doc any
	if err := json.Unmarshal([]byte(input), &doc); err != nil {
		panic(fmt.Sprintf("input is not JSON: %v", err))
	}
	return harness.Int(sumNumbers(doc, part == harness.Part2))
}

// sumNumbers adds every number in v. With skipRed, objects holding the value
// "red" are ignored along with everything inside them.
func sumNumbers(v any, skipRed bool) int64 {
	switch v := v.(type) {
	case float64:
		return int64(v)
	case []any:
		var sum int64
		for _, item := range v {
			sum += sumNumbers(item, skipRed)
		}
		return sum
	case map[string]any:
		var sum int64
		for _, item := range v {
			if skipRed && item == "red" {
				return 0
			}
			sum += sumNumbers(item, skipRed)
		}
		return sum
	default:
		return 0
	}
}
