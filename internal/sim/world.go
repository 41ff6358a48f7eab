package sim

// lookaheadColumns is how many columns past the right screen edge the
// initial fill provides before steady-state one-per-tick generation
// takes over.
const lookaheadColumns = 5

// retirePitchFactor places the left retirement boundary at
// -retirePitchFactor * pitch.
const retirePitchFactor = 2

// Tile is one solid obstacle cell. A tile belongs to exactly one column
// for its whole life: created when the column is generated, destroyed
// when it scrolls past the retirement boundary. The world owns the live
// tile set; the collision resolver only reads it.
type Tile struct {
	ID     int
	Column int     // Generation index of the owning column
	Row    int     // 0 = bottom row
	X, Y   float64 // Center position in world pixels
}

// World owns the live obstacle set and the horizontal scroll. Each tick
// it shifts every tile left, retires tiles past the boundary and asks
// the generator for at most one new column.
type World struct {
	grid GridConfig
	view ViewConfig
	gen  *Generator

	tiles       []Tile
	lastColumnX float64 // Center x of the rightmost generated column
	nextTileID  int
	offset      float64 // Total distance scrolled this session
	events      []Event
}

// NewWorld creates an empty world; call Init to fill the runway.
func NewWorld(grid GridConfig, view ViewConfig, gen *Generator) *World {
	return &World{
		grid: grid,
		view: view,
		gen:  gen,
		// First column sits flush with the left edge.
		lastColumnX: grid.TileEdge/2 - grid.Pitch(),
	}
}

// Init fills the viewport plus the lookahead buffer with columns.
func (w *World) Init(level int) {
	limit := w.view.Width + lookaheadColumns*w.grid.Pitch()
	for w.lastColumnX < limit {
		w.spawnColumn(level)
	}
}

// Advance scrolls the world by scrollSpeed*dt, retires off-screen tiles
// and generates at most one column if the lookahead has drained. This
// keeps steady-state generation amortized at one column per tick.
func (w *World) Advance(dt, scrollSpeed float64, level int) {
	dx := scrollSpeed * dt
	w.offset += dx
	w.lastColumnX -= dx
	for i := range w.tiles {
		w.tiles[i].X -= dx
	}

	w.retire()

	if w.lastColumnX < w.view.Width+w.grid.Pitch() {
		w.spawnColumn(level)
	}
}

// retire destroys tiles whose x has crossed the retirement boundary.
func (w *World) retire() {
	boundary := -retirePitchFactor * w.grid.Pitch()
	live := w.tiles[:0]
	for _, t := range w.tiles {
		if t.X < boundary {
			w.events = append(w.events, Event{
				Kind:   EventTileDestroyed,
				TileID: t.ID,
				Column: t.Column,
				Row:    t.Row,
				X:      t.X,
				Y:      t.Y,
			})
			continue
		}
		live = append(live, t)
	}
	w.tiles = live
}

// spawnColumn generates one column at the next grid position. A column
// of height h places obstacle tiles on rows 0..h-1; rows above stay
// background and never participate in collision.
func (w *World) spawnColumn(level int) {
	column := w.gen.State().TotalGenerated
	h := w.gen.NextHeight(level)
	x := w.lastColumnX + w.grid.Pitch()
	w.lastColumnX = x

	for row := 0; row < h; row++ {
		t := Tile{
			ID:     w.nextTileID,
			Column: column,
			Row:    row,
			X:      x,
			Y:      w.rowCenterY(row),
		}
		w.nextTileID++
		w.tiles = append(w.tiles, t)
		w.events = append(w.events, Event{
			Kind:   EventTileCreated,
			TileID: t.ID,
			Column: t.Column,
			Row:    t.Row,
			X:      t.X,
			Y:      t.Y,
		})
	}
}

// rowCenterY returns the vertical center of a grid row. Row 0 sits at
// the bottom of the viewport; each row above steps up by one pitch.
func (w *World) rowCenterY(row int) float64 {
	return w.view.Height - w.grid.TileEdge/2 - float64(row)*w.grid.Pitch()
}

// Tiles returns the live obstacle tiles. Callers must not retain the
// slice across ticks.
func (w *World) Tiles() []Tile {
	return w.tiles
}

// Offset returns the total scrolled distance.
func (w *World) Offset() float64 {
	return w.offset
}

// drainEvents returns and clears the pending render-sink events.
func (w *World) drainEvents() []Event {
	ev := w.events
	w.events = nil
	return ev
}
