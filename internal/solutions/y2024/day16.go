package y2024

import (
	"container/heap"
	"math"

	"github.com/harrison/aoc/internal/aocutil"
	"github.com/harrison/aoc/internal/harness"
)

const day16Maze = `###############
#.......#....E#
#.#.###.#.###.#
#.....#.#...#.#
#.###.#####.#.#
#.#.#.......#.#
#.#.#####.###.#
#...........#.#
###.#.#####.#.#
#...#.....#.#.#
#.#.#.###.#.#.#
#.....#...#.#.#
#.###.#.#.#.#.#
#S..#.....#...#
###############`

const day16SecondMaze = `#################
#...#...#...#..E#
#.#.#.#.#.#.#.#.#
#.#.#.#...#...#.#
#.#.#.#.###.#.#.#
#...#.#.#.....#.#
#.#.#.#.#.#####.#
#.#...#.#.#.....#
#.#.#####.#.###.#
#.#.#.......#...#
#.#.###.#####.###
#.#.#...#.....#.#
#.#.#.#####.###.#
#.#.#.........#.#
#.#.#.#########.#
#S#.............#
#################`

func init() {
	harness.Register(2024, 16, harness.SolutionFunc(solveDay16),
		harness.Example(harness.Part1, harness.Int(7036), day16Maze),
		harness.Example(harness.Part1, harness.Int(11048), day16SecondMaze),
		harness.Answer(harness.Part1, harness.Int(93436)),
		harness.Example(harness.Part2, harness.Int(45), day16Maze),
		harness.Answer(harness.Part2, harness.Int(486)),
	)
}

const (
	stepCost = 1
	turnCost = 1000
)

// directions in clockwise order starting east.
var directions = [4]aocutil.Point[int]{
	{X: 1, Y: 0},
	{X: 0, Y: 1},
	{X: -1, Y: 0},
	{X: 0, Y: -1},
}

type reindeer struct {
	pos aocutil.Point[int]
	dir int
}

type maze struct {
	rows       []string
	start, end aocutil.Point[int]
}

func parseMaze(input string) *maze {
	m := &maze{rows: aocutil.Lines(input)}
	for y, row := range m.rows {
		for x, c := range row {
			switch c {
			case 'S':
				m.start = aocutil.Point[int]{X: x, Y: y}
			case 'E':
				m.end = aocutil.Point[int]{X: x, Y: y}
			}
		}
	}
	return m
}

func (m *maze) open(p aocutil.Point[int]) bool {
	if p.Y < 0 || p.Y >= len(m.rows) || p.X < 0 || p.X >= len(m.rows[p.Y]) {
		return false
	}
	return m.rows[p.Y][p.X] != '#'
}

type edge struct {
	to   reindeer
	cost int
}

// moves lists the states reachable from s. When backward is set the step is
// taken in reverse, which walks the graph's edges against their direction.
func (m *maze) moves(s reindeer, backward bool) []edge {
	step := directions[s.dir]
	if backward {
		step = aocutil.Point[int]{}.Sub(step)
	}

	out := make([]edge, 0, 3)
	if next := s.pos.Add(step); m.open(next) {
		out = append(out, edge{reindeer{next, s.dir}, stepCost})
	}
	out = append(out,
		edge{reindeer{s.pos, (s.dir + 1) % 4}, turnCost},
		edge{reindeer{s.pos, (s.dir + 3) % 4}, turnCost},
	)
	return out
}

// shortest runs Dijkstra from every state in starts.
func (m *maze) shortest(starts []reindeer, backward bool) map[reindeer]int {
	dist := map[reindeer]int{}
	pq := &stateQueue{}
	for _, s := range starts {
		dist[s] = 0
		heap.Push(pq, queued{s, 0})
	}

	for pq.Len() > 0 {
		cur := heap.Pop(pq).(queued)
		if cur.cost > dist[cur.state] {
			continue
		}
		for _, e := range m.moves(cur.state, backward) {
			cost := cur.cost + e.cost
			if old, seen := dist[e.to]; !seen || cost < old {
				dist[e.to] = cost
				heap.Push(pq, queued{e.to, cost})
			}
		}
	}
	return dist
}

// solveDay16 finds the cheapest route from S (facing east) to E. Part 2
// counts the tiles lying on at least one cheapest route.
func solveDay16(input string, part harness.Part) harness.Result {
	m := parseMaze(input)
	from := m.shortest([]reindeer{{m.start, 0}}, false)

	best := math.MaxInt
	for dir := range directions {
		if cost, ok := from[reindeer{m.end, dir}]; ok {
			best = min(best, cost)
		}
	}
	if part == harness.Part1 {
		return harness.Int(int64(best))
	}

	var ends []reindeer
	for dir := range directions {
		if from[reindeer{m.end, dir}] == best {
			ends = append(ends, reindeer{m.end, dir})
		}
	}
	to := m.shortest(ends, true)

	tiles := map[aocutil.Point[int]]bool{}
	for s, cost := range from {
		if back, ok := to[s]; ok && cost+back == best {
			tiles[s.pos] = true
		}
	}
	return harness.Int(int64(len(tiles)))
}

type queued struct {
	state reindeer
	cost  int
}

type stateQueue []queued

func (q stateQueue) Len() int           { return len(q) }
func (q stateQueue) Less(i, j int) bool { return q[i].cost < q[j].cost }
func (q stateQueue) Swap(i, j int)      { q[i], q[j] = q[j], q[i] }
func (q *stateQueue) Push(x any)        { *q = append(*q, x.(queued)) }
func (q *stateQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}
