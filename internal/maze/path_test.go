package maze

import (
	"testing"
)

// openGrid is a wall-free Graph of the given size.
type openGrid struct {
	w, h int
}

func (g openGrid) Width() int  { return g.w }
func (g openGrid) Height() int { return g.h }
func (g openGrid) IsWalkable(c Coord) bool {
	return c.X >= 0 && c.X < g.w && c.Y >= 0 && c.Y < g.h
}

var mazeRows = []string{
	"###########",
	"#@....#...#",
	"#.###.#.#.#",
	"#.#...!.#.#",
	"#.#.#####.#",
	"#...#!!...#",
	"###########",
}

func TestNextStepSameCell(t *testing.T) {
	l := MustLoad(mazeRows, nil)
	for _, p := range l.Points() {
		if got := NextStep(l, p, p); got != p {
			t.Errorf("NextStep(%v, %v) = %v, expected start", p, p, got)
		}
	}
}

func TestNextStepTieBreak(t *testing.T) {
	g := openGrid{w: 5, h: 5}

	testCases := []struct {
		name          string
		start, target Coord
		expected      Coord
	}{
		// Up is expanded before right.
		{"up before right", C(2, 2), C(3, 1), C(2, 1)},
		// Down is expanded before right.
		{"down before right", C(2, 2), C(3, 3), C(2, 3)},
		// Up is expanded before left.
		{"up before left", C(2, 2), C(1, 1), C(2, 1)},
		{"straight line", C(0, 0), C(4, 0), C(1, 0)},
		{"adjacent", C(2, 2), C(1, 2), C(1, 2)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := NextStep(g, tc.start, tc.target)
			if got != tc.expected {
				t.Errorf("NextStep(%v, %v) = %v, expected %v", tc.start, tc.target, got, tc.expected)
			}
		})
	}
}

func TestNextStepUnreachable(t *testing.T) {
	rows := []string{
		"#########",
		"#@..#...#",
		"#...#.#.#",
		"#!!!#.#.#",
		"#########",
	}
	l := MustLoad(rows, nil)

	start := C(1, 1)
	target := C(6, 1) // right-hand room is walled off
	if got := NextStep(l, start, target); got != start {
		t.Errorf("expected start %v for unreachable target, got %v", start, got)
	}
	if _, ok := PathLength(l, start, target); ok {
		t.Error("PathLength should report unreachable")
	}

	// Wall and out-of-bounds targets are never reached.
	if got := NextStep(l, start, C(0, 0)); got != start {
		t.Errorf("wall target: expected %v, got %v", start, got)
	}
	if got := NextStep(l, start, C(-4, 2)); got != start {
		t.Errorf("out-of-bounds target: expected %v, got %v", start, got)
	}
}

func TestNextStepEnclosedTarget(t *testing.T) {
	rows := []string{
		"#######",
		"#@....#",
		"#.###.#",
		"#.#.#.#",
		"#.###.#",
		"#!!!..#",
		"#######",
	}
	l := MustLoad(rows, nil)

	target := C(3, 3)
	for _, start := range l.Points() {
		if start == target {
			continue
		}
		if got := NextStep(l, start, target); got != start {
			t.Errorf("NextStep(%v, enclosed) = %v, expected start", start, got)
		}
	}
}

func TestNextStepAlwaysAdjacentAndWalkable(t *testing.T) {
	l := MustLoad(mazeRows, nil)

	var cells []Coord
	for y := 0; y < l.Height(); y++ {
		for x := 0; x < l.Width(); x++ {
			if l.IsWalkable(C(x, y)) {
				cells = append(cells, C(x, y))
			}
		}
	}

	for _, a := range cells {
		for _, b := range cells {
			step := NextStep(l, a, b)
			if step != a && !step.Adjacent(a) {
				t.Fatalf("NextStep(%v, %v) = %v is not adjacent to start", a, b, step)
			}
			if !l.IsWalkable(step) {
				t.Fatalf("NextStep(%v, %v) = %v is not walkable", a, b, step)
			}
		}
	}
}

func TestNextStepFollowsShortestPath(t *testing.T) {
	l := MustLoad(mazeRows, nil)

	start := C(1, 1)
	target := C(9, 5)
	total, ok := PathLength(l, start, target)
	if !ok {
		t.Fatal("target should be reachable")
	}

	cur := start
	for i := 0; i < total; i++ {
		next := NextStep(l, cur, target)
		before, _ := PathLength(l, cur, target)
		after, _ := PathLength(l, next, target)
		if after != before-1 {
			t.Fatalf("step %d: distance went %d -> %d", i, before, after)
		}
		cur = next
	}
	if cur != target {
		t.Errorf("expected to arrive at %v after %d steps, at %v", target, total, cur)
	}
}

func TestNextStepOpenGridManhattan(t *testing.T) {
	g := openGrid{w: 7, h: 6}

	for sy := 0; sy < g.h; sy++ {
		for sx := 0; sx < g.w; sx++ {
			start := C(sx, sy)
			target := C(g.w-1-sx, g.h-1-sy)
			cur := start
			for cur != target {
				next := NextStep(g, cur, target)
				if next.Manhattan(target) != cur.Manhattan(target)-1 {
					t.Fatalf("from %v toward %v: step %v does not reduce Manhattan distance", cur, target, next)
				}
				cur = next
			}
		}
	}
}

func TestPathLength(t *testing.T) {
	g := openGrid{w: 5, h: 5}

	testCases := []struct {
		a, b     Coord
		expected int
	}{
		{C(0, 0), C(0, 0), 0},
		{C(0, 0), C(4, 4), 8},
		{C(2, 2), C(2, 0), 2},
		{C(4, 0), C(0, 1), 5},
	}
	for _, tc := range testCases {
		d, ok := PathLength(g, tc.a, tc.b)
		if !ok || d != tc.expected {
			t.Errorf("PathLength(%v, %v) = %d, %v; expected %d, true", tc.a, tc.b, d, ok, tc.expected)
		}
	}
}
