// Package maze holds the tile grid of a chase level and the breadth-first
// pathfinder enemies use to pursue the hero. It is pure and deterministic:
// all randomness comes from an injected source.
package maze

import (
	"math/rand"
	"strings"

	"github.com/zyedidia/generic/mapset"
)

// EnemyCount is the number of enemy spawns every level ends up with.
const EnemyCount = 3

// Rand is the random source used for spawn placement.
// *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// Level is a parsed, normalized level grid.
// Tiles are stored in row-major order: index = y*width + x.
type Level struct {
	width  int
	height int
	tiles  []Tile

	heroSpawn   Coord
	enemySpawns []Coord
	points      mapset.Set[Coord]
}

// Load parses level rows into a Level.
// Short rows are right-padded with empty tiles. A missing hero spawn is
// drawn from the point tiles, and enemy spawns are topped up to EnemyCount
// from the remaining points; both draws use rng (nil means a fixed seed).
func Load(rows []string, rng Rand) (*Level, error) {
	if len(rows) == 0 {
		return nil, malformed("no rows")
	}

	width := 0
	grid := make([][]rune, len(rows))
	for y, row := range rows {
		grid[y] = []rune(row)
		width = max(width, len(grid[y]))
	}
	if width == 0 {
		return nil, malformed("all rows are empty")
	}

	l := &Level{
		width:  width,
		height: len(rows),
		tiles:  make([]Tile, width*len(rows)),
		points: mapset.New[Coord](),
	}

	hero := Coord{X: -1, Y: -1}
	var spawns []Coord
	for y := 0; y < l.height; y++ {
		for x := 0; x < l.width; x++ {
			ch := CharEmpty
			if x < len(grid[y]) {
				ch = grid[y][x]
			}
			t := TileFromRune(ch)
			l.tiles[l.index(C(x, y))] = t

			switch t {
			case TileHeroSpawn:
				// The last '@' wins; earlier ones become plain floor.
				if hero.X >= 0 {
					l.tiles[l.index(hero)] = TileEmpty
				}
				hero = C(x, y)
			case TileEnemySpawn:
				spawns = append(spawns, C(x, y))
			case TileFree:
				l.points.Put(C(x, y))
			}
		}
	}

	if l.points.Size() == 0 {
		return nil, malformed("no free tiles")
	}

	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}

	if hero.X < 0 {
		picked := l.sample(rng, 1)
		hero = picked[0]
		l.points.Remove(hero)
	}
	l.heroSpawn = hero

	if len(spawns) > EnemyCount {
		spawns = spawns[:EnemyCount]
	}
	if need := EnemyCount - len(spawns); need > 0 {
		if l.points.Size() < need {
			return nil, malformed("need %d more enemy spawns but only %d points remain", need, l.points.Size())
		}
		for _, c := range l.sample(rng, need) {
			l.points.Remove(c)
			l.tiles[l.index(c)] = TileEnemySpawn
			spawns = append(spawns, c)
		}
	}
	l.enemySpawns = spawns

	if l.points.Size() == 0 {
		return nil, malformed("no points remain after spawn placement")
	}

	return l, nil
}

// MustLoad is like Load but panics on error. Intended for tests and
// built-in levels.
func MustLoad(rows []string, rng Rand) *Level {
	l, err := Load(rows, rng)
	if err != nil {
		panic(err)
	}
	return l
}

// sample draws k distinct coordinates from the point set.
// Candidates are taken in row-major order so draws are reproducible.
func (l *Level) sample(rng Rand, k int) []Coord {
	cand := l.Points()
	for i := 0; i < k; i++ {
		j := i + rng.Intn(len(cand)-i)
		cand[i], cand[j] = cand[j], cand[i]
	}
	return cand[:k]
}

func (l *Level) index(c Coord) int {
	return c.Y*l.width + c.X
}

// Width returns the grid width in tiles.
func (l *Level) Width() int {
	return l.width
}

// Height returns the grid height in tiles.
func (l *Level) Height() int {
	return l.height
}

// InBounds reports whether c lies inside the grid.
func (l *Level) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < l.width && c.Y >= 0 && c.Y < l.height
}

// Tile returns the tile at c, or TileNone when out of bounds.
func (l *Level) Tile(c Coord) Tile {
	if !l.InBounds(c) {
		return TileNone
	}
	return l.tiles[l.index(c)]
}

// IsWalkable reports whether c is in bounds and not a wall.
func (l *Level) IsWalkable(c Coord) bool {
	return l.Tile(c).Walkable()
}

// HasPoint reports whether c still holds an uncollected point.
func (l *Level) HasPoint(c Coord) bool {
	return l.points.Has(c)
}

// ConsumePoint removes the point at c. It returns false, and changes
// nothing, when there is no point there.
func (l *Level) ConsumePoint(c Coord) bool {
	if !l.points.Has(c) {
		return false
	}
	l.points.Remove(c)
	return true
}

// RemainingPoints returns the number of uncollected points.
func (l *Level) RemainingPoints() int {
	return l.points.Size()
}

// Points returns the uncollected points in row-major order.
func (l *Level) Points() []Coord {
	out := make([]Coord, 0, l.points.Size())
	for y := 0; y < l.height; y++ {
		for x := 0; x < l.width; x++ {
			if l.points.Has(C(x, y)) {
				out = append(out, C(x, y))
			}
		}
	}
	return out
}

// Walls returns every wall coordinate in row-major order.
func (l *Level) Walls() []Coord {
	var out []Coord
	for i, t := range l.tiles {
		if t == TileWall {
			out = append(out, C(i%l.width, i/l.width))
		}
	}
	return out
}

// HeroSpawn returns the hero's start cell.
func (l *Level) HeroSpawn() Coord {
	return l.heroSpawn
}

// EnemySpawns returns the EnemyCount enemy start cells.
func (l *Level) EnemySpawns() []Coord {
	out := make([]Coord, len(l.enemySpawns))
	copy(out, l.enemySpawns)
	return out
}

// String renders the level back to text, marking collected points empty.
func (l *Level) String() string {
	var sb strings.Builder
	sb.Grow((l.width + 1) * l.height)
	for y := 0; y < l.height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < l.width; x++ {
			c := C(x, y)
			t := l.Tile(c)
			switch {
			case c == l.heroSpawn:
				sb.WriteRune(CharHeroSpawn)
			case t == TileFree && !l.points.Has(c):
				sb.WriteRune(CharEmpty)
			default:
				sb.WriteRune(t.Rune())
			}
		}
	}
	return sb.String()
}
