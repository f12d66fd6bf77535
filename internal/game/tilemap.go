package game

// Tile is the content of one floor cell.
type Tile uint8

const (
	TileVoid  Tile = iota // outside the map
	TileFloor             // open ground
	TileWall              // edge wall drawn over the floor
)

// TileMap is the static room the actors start in. The scheduler never
// consults it; it is drawn underneath the actors only.
type TileMap struct {
	Width  int
	Height int
	tiles  []Tile
}

// NewTileMap lays out a w×h floor with walls along row 0 and column 0.
func NewTileMap(w, h int) *TileMap {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	tm := &TileMap{Width: w, Height: h, tiles: make([]Tile, w*h)}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			t := TileFloor
			if x == 0 || y == 0 {
				t = TileWall
			}
			tm.tiles[y*w+x] = t
		}
	}
	return tm
}

// At returns the tile at (x,y), or TileVoid outside the map.
func (tm *TileMap) At(x, y int) Tile {
	if x < 0 || y < 0 || x >= tm.Width || y >= tm.Height {
		return TileVoid
	}
	return tm.tiles[y*tm.Width+x]
}
