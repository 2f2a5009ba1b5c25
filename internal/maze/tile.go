package maze

// Tile is the classification of one grid cell.
type Tile uint8

const (
	// TileNone is returned for coordinates outside the grid.
	TileNone Tile = iota
	TileEmpty
	TileWall
	TileFree
	TileHeroSpawn
	TileEnemySpawn
)

// Level file characters.
const (
	CharWall       = '#'
	CharHeroSpawn  = '@'
	CharFree       = '.'
	CharEnemySpawn = '!'
	CharEmpty      = ' '
)

// TileFromRune classifies a level character. Unknown characters are empty.
func TileFromRune(r rune) Tile {
	switch r {
	case CharWall:
		return TileWall
	case CharHeroSpawn:
		return TileHeroSpawn
	case CharFree:
		return TileFree
	case CharEnemySpawn:
		return TileEnemySpawn
	default:
		return TileEmpty
	}
}

// Rune returns the level character for the tile.
func (t Tile) Rune() rune {
	switch t {
	case TileWall:
		return CharWall
	case TileHeroSpawn:
		return CharHeroSpawn
	case TileFree:
		return CharFree
	case TileEnemySpawn:
		return CharEnemySpawn
	default:
		return CharEmpty
	}
}

// Walkable reports whether an entity may stand on the tile.
func (t Tile) Walkable() bool {
	switch t {
	case TileFree, TileEmpty, TileHeroSpawn, TileEnemySpawn:
		return true
	default:
		return false
	}
}

// String returns the tile name.
func (t Tile) String() string {
	switch t {
	case TileNone:
		return "None"
	case TileEmpty:
		return "Empty"
	case TileWall:
		return "Wall"
	case TileFree:
		return "Free"
	case TileHeroSpawn:
		return "HeroSpawn"
	case TileEnemySpawn:
		return "EnemySpawn"
	default:
		return "Unknown"
	}
}
