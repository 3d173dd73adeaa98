package board

import (
	"fmt"
	"strings"
)

// Grid is a square board with no border points. Stones are placed with Set;
// chains are relabelled after every change.
type Grid struct {
	size     int
	stones   []Stone
	groups   []Group
	komi     float64
	handicap int
}

var _ Board = (*Grid)(nil)

func NewGrid(size int) *Grid {
	if size <= 0 {
		panic(fmt.Sprintf("invalid board size %d", size))
	}
	g := &Grid{
		size:   size,
		stones: make([]Stone, size*size),
		groups: make([]Group, size*size),
	}
	g.relabel()
	return g
}

// Parse reads a square board from rows of '.', 'X' and 'O'. Whitespace inside
// rows and blank lines are ignored.
func Parse(text string) (*Grid, error) {
	rows := []string{}
	for _, line := range strings.Split(text, "\n") {
		row := strings.Join(strings.Fields(line), "")
		if row != "" {
			rows = append(rows, row)
		}
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("empty board")
	}

	g := NewGrid(len(rows))
	for y, row := range rows {
		if len(row) != g.size {
			return nil, fmt.Errorf("row %d has %d points, want %d", y+1, len(row), g.size)
		}
		for x, ch := range row {
			var s Stone
			switch ch {
			case '.':
				s = None
			case 'X':
				s = Black
			case 'O':
				s = White
			default:
				return nil, fmt.Errorf("unexpected %q at row %d column %d", ch, y+1, x+1)
			}
			g.stones[y*g.size+x] = s
		}
	}
	g.relabel()
	return g, nil
}

func (g *Grid) WithKomi(komi float64) *Grid {
	g.komi = komi
	return g
}

func (g *Grid) WithHandicap(handicap int) *Grid {
	g.handicap = handicap
	return g
}

func (g *Grid) Copy() *Grid {
	stones := make([]Stone, len(g.stones))
	copy(stones, g.stones)
	groups := make([]Group, len(g.groups))
	copy(groups, g.groups)

	return &Grid{
		size:     g.size,
		stones:   stones,
		groups:   groups,
		komi:     g.komi,
		handicap: g.handicap,
	}
}

func (g *Grid) Point(x, y int) Point {
	return Point(y*g.size + x)
}

func (g *Grid) Coord(p Point) (x, y int) {
	return int(p) % g.size, int(p) / g.size
}

func (g *Grid) Set(p Point, s Stone) {
	g.stones[p] = s
	g.relabel()
}

// Transform replaces every point with f's result and relabels chains once.
func (g *Grid) Transform(f func(p Point, s Stone) Stone) {
	for i, s := range g.stones {
		g.stones[i] = f(Point(i), s)
	}
	g.relabel()
}

func (g *Grid) Size() int {
	return g.size
}

func (g *Grid) NumPoints() int {
	return len(g.stones)
}

func (g *Grid) At(p Point) Stone {
	return g.stones[p]
}

func (g *Grid) GroupAt(p Point) Group {
	return g.groups[p]
}

func (g *Grid) OnePointEye(p Point) Stone {
	if g.stones[p] != None {
		return None
	}

	eye := None
	for _, n := range g.neighbors(p) {
		s := g.stones[n]
		if s == None {
			return None
		}
		if eye == None {
			eye = s
		} else if s != eye {
			return None
		}
	}
	return eye
}

func (g *Grid) Komi() float64 {
	return g.komi
}

// HandicapCompensation gives white one point per handicap stone under area
// scoring.
func (g *Grid) HandicapCompensation() int {
	if g.handicap > 0 {
		return g.handicap
	}
	return 0
}

func (g *Grid) String() string {
	var sb strings.Builder
	for y := 0; y < g.size; y++ {
		for x := 0; x < g.size; x++ {
			sb.WriteString(g.stones[g.Point(x, y)].String())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (g *Grid) neighbors(p Point) []Point {
	x, y := g.Coord(p)
	ns := make([]Point, 0, 4)
	if x > 0 {
		ns = append(ns, p-1)
	}
	if x < g.size-1 {
		ns = append(ns, p+1)
	}
	if y > 0 {
		ns = append(ns, p-Point(g.size))
	}
	if y < g.size-1 {
		ns = append(ns, p+Point(g.size))
	}
	return ns
}

// relabel flood-fills every chain. Points are visited in ascending order, so
// a chain is labelled by its smallest point.
func (g *Grid) relabel() {
	for i := range g.groups {
		g.groups[i] = NoGroup
	}

	stack := []Point{}
	for i, s := range g.stones {
		p := Point(i)
		if s == None || g.groups[p] != NoGroup {
			continue
		}

		id := Group(p)
		g.groups[p] = id
		stack = append(stack[:0], p)
		for len(stack) > 0 {
			cur := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			for _, n := range g.neighbors(cur) {
				if g.stones[n] == s && g.groups[n] == NoGroup {
					g.groups[n] = id
					stack = append(stack, n)
				}
			}
		}
	}
}
