package maze

// Graph is the read-only view of a grid the pathfinder searches.
type Graph interface {
	Width() int
	Height() int
	IsWalkable(c Coord) bool
}

// moves is the neighbour expansion order: up, down, left, right.
// Ties between equal-length paths are broken by this order.
var moves = [4][2]int{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}

// search holds per-call scratch state for a breadth-first search.
type search struct {
	w, h int
	dist []int
	prev []Coord
}

const unreached = -1

// bfs explores from start until target is discovered or the frontier is
// exhausted. Scratch buffers are allocated fresh for every call.
func bfs(g Graph, start, target Coord) *search {
	w, h := g.Width(), g.Height()
	s := &search{
		w:    w,
		h:    h,
		dist: make([]int, w*h),
		prev: make([]Coord, w*h),
	}
	for i := range s.dist {
		s.dist[i] = unreached
	}
	if !s.inBounds(start) {
		return s
	}

	s.dist[s.idx(start)] = 0
	queue := make([]Coord, 0, w*h)
	queue = append(queue, start)

	for head := 0; head < len(queue); head++ {
		cur := queue[head]
		d := s.dist[s.idx(cur)]
		for _, m := range moves {
			next := cur.Add(m[0], m[1])
			if !s.inBounds(next) || !g.IsWalkable(next) || s.dist[s.idx(next)] != unreached {
				continue
			}
			s.dist[s.idx(next)] = d + 1
			s.prev[s.idx(next)] = cur
			if next == target {
				return s
			}
			queue = append(queue, next)
		}
	}
	return s
}

func (s *search) inBounds(c Coord) bool {
	return c.X >= 0 && c.X < s.w && c.Y >= 0 && c.Y < s.h
}

func (s *search) idx(c Coord) int {
	return c.Y*s.w + c.X
}

func (s *search) distance(c Coord) int {
	if !s.inBounds(c) {
		return unreached
	}
	return s.dist[s.idx(c)]
}

// NextStep returns the first cell of a shortest 4-directional path from
// start to target. It returns start when the two are equal or when target
// cannot be reached.
func NextStep(g Graph, start, target Coord) Coord {
	if start == target {
		return start
	}
	s := bfs(g, start, target)
	if s.distance(target) == unreached {
		return start
	}

	cur := target
	for {
		p := s.prev[s.idx(cur)]
		if p == start {
			return cur
		}
		cur = p
	}
}

// PathLength returns the number of steps on a shortest path from start to
// target, and false when target is unreachable.
func PathLength(g Graph, start, target Coord) (int, bool) {
	if start == target {
		return 0, true
	}
	s := bfs(g, start, target)
	d := s.distance(target)
	if d == unreached {
		return 0, false
	}
	return d, true
}
