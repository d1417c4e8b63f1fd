package y2024

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/harrison/aoc/internal/aocutil"
	"github.com/harrison/aoc/internal/harness"
)

const day23Example = `kh-tc
qp-kh
de-cg
ka-co
yn-aq
qp-ub
cg-tb
vc-aq
tb-ka
wh-tc
yn-cg
kh-ub
ta-co
de-co
tc-td
tb-wq
wh-td
ta-ka
td-qp
aq-cg
wq-ub
ub-vc
de-ta
wq-aq
wq-vc
wh-yn
ka-de
kh-ta
co-tc
wh-qp
tb-vc
td-yn`

func init() {
	harness.Register(2024, 23, harness.SolutionFunc(solveDay23),
		harness.Example(harness.Part1, harness.Int(7), day23Example),
		harness.Answer(harness.Part1, harness.Int(1485)),
		harness.Example(harness.Part2, harness.Text("co,de,ka,ta"), day23Example),
		harness.Unchecked(harness.Part2),
	)
}

// network is an undirected graph of computer names.
type network map[string]map[string]bool

func parseNetwork(input string) network {
	net := network{}
	link := func(a, b string) {
		if net[a] == nil {
			net[a] = map[string]bool{}
		}
		net[a][b] = true
	}
	for _, line := range aocutil.Lines(input) {
		a, b, ok := strings.Cut(line, "-")
		if !ok {
			panic(fmt.Sprintf("bad connection %q", line))
		}
		link(a, b)
		link(b, a)
	}
	return net
}

func (net network) names() []string {
	names := make([]string, 0, len(net))
	for n := range net {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}

// triangles counts sets of three mutually connected computers where at least
// one name starts with "t".
func (net network) triangles() int {
	names := net.names()
	count := 0
	for i, a := range names {
		for j := i + 1; j < len(names); j++ {
			b := names[j]
			if !net[a][b] {
				continue
			}
			for k := j + 1; k < len(names); k++ {
				c := names[k]
				if !net[a][c] || !net[b][c] {
					continue
				}
				if a[0] == 't' || b[0] == 't' || c[0] == 't' {
					count++
				}
			}
		}
	}
	return count
}

// largestClique runs Bron-Kerbosch with pivoting and returns the members of
// the biggest fully connected set, sorted.
func (net network) largestClique() []string {
	var best []string

	var expand func(r, p, x []string)
	expand = func(r, p, x []string) {
		if len(p) == 0 && len(x) == 0 {
			if len(r) > len(best) {
				best = slices.Clone(r)
			}
			return
		}

		pivot := ""
		for _, u := range slices.Concat(p, x) {
			if pivot == "" || len(net[u]) > len(net[pivot]) {
				pivot = u
			}
		}

		for _, v := range slices.Clone(p) {
			if net[pivot][v] {
				continue
			}
			expand(append(r, v), net.neighbours(v, p), net.neighbours(v, x))
			p = slices.DeleteFunc(p, func(s string) bool { return s == v })
			x = append(x, v)
		}
	}
	expand(nil, net.names(), nil)

	slices.Sort(best)
	return best
}

// neighbours filters set to the members connected to v.
func (net network) neighbours(v string, set []string) []string {
	var out []string
	for _, s := range set {
		if net[v][s] {
			out = append(out, s)
		}
	}
	return out
}

func solveDay23(input string, part harness.Part) harness.Result {
	net := parseNetwork(input)
	if part == harness.Part1 {
		return harness.Text(strconv.Itoa(net.triangles()))
	}
	return harness.Text(strings.Join(net.largestClique(), ","))
}
