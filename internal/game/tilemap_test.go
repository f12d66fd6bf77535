package game

import "testing"

func TestTileMap_WallsAlongOriginEdges(t *testing.T) {
	tm := NewTileMap(10, 10)
	for i := 0; i < 10; i++ {
		if tm.At(i, 0) != TileWall || tm.At(0, i) != TileWall {
			t.Fatalf("expected wall on row 0 and column 0 at index %d", i)
		}
	}
	if tm.At(1, 1) != TileFloor || tm.At(9, 9) != TileFloor {
		t.Fatalf("expected interior floor")
	}
	if tm.At(10, 5) != TileVoid || tm.At(-1, 0) != TileVoid {
		t.Fatalf("expected void outside the map")
	}
}

func TestTileMap_NegativeSizeIsEmpty(t *testing.T) {
	tm := NewTileMap(-3, 4)
	if tm.Width != 0 || tm.At(0, 0) != TileVoid {
		t.Fatalf("expected empty map, got width=%d", tm.Width)
	}
}
