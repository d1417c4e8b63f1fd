package y2015

import (
	"crypto/md5"
	"math"
	"runtime"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/harrison/aoc/internal/harness"
)

func init() {
	harness.Register(2015, 4, harness.SolutionFunc(solveDay04),
		harness.Answer(harness.Part1, harness.Int(254575)),
		harness.Example(harness.Part1, harness.Int(609043), "abcdef"),
		harness.Example(harness.Part1, harness.Int(1048970), "pqrstuv"),
		harness.Answer(harness.Part2, harness.Int(1038736)),
	)
}

func solveDay04(input string, part harness.Part) harness.Result {
	zeros := 5
	if part == harness.Part2 {
		zeros = 6
	}
	return harness.Int(lowestSuffix(strings.TrimSpace(input), zeros, runtime.GOMAXPROCS(0)))
}

// chunk is how many suffixes one worker checks per round.
const chunk = 8192

// lowestSuffix returns the smallest positive n such that md5(key+n) in hex
// starts with the given number of zeros. Workers scan adjacent chunks of one
// round; the round stops the search once any of its workers has a hit.
func lowestSuffix(key string, zeros, workers int) int64 {
	if workers < 1 {
		workers = 1
	}

	for base := int64(1); ; base += int64(workers) * chunk {
		var (
			mu   sync.Mutex
			best int64 = math.MaxInt64
		)

		var g errgroup.Group
		for w := 0; w < workers; w++ {
			start := base + int64(w)*chunk
			g.Go(func() error {
				buf := make([]byte, 0, len(key)+20)
				for n := start; n < start+chunk; n++ {
					buf = strconv.AppendInt(append(buf[:0], key...), n, 10)
					if hasLeadingZeros(md5.Sum(buf), zeros) {
						mu.Lock()
						best = min(best, n)
						mu.Unlock()
						return nil
					}
				}
				return nil
			})
		}
		g.Wait()

		if best != math.MaxInt64 {
			return best
		}
	}
}

// hasLeadingZeros checks the first zeros hex digits of sum.
func hasLeadingZeros(sum [md5.Size]byte, zeros int) bool {
	for i := 0; i < zeros/2; i++ {
		if sum[i] != 0 {
			return false
		}
	}
	if zeros%2 == 1 && sum[zeros/2]&0xf0 != 0 {
		return false
	}
	return true
}
