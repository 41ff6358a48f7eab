package sim

// EventKind identifies a render-sink event.
type EventKind int

const (
	// EventTileCreated fires when a generated column places an obstacle tile.
	EventTileCreated EventKind = iota
	// EventTileDestroyed fires when a tile crosses the retirement boundary.
	EventTileDestroyed
)

// Event is a data notification for the host's render sink. The core
// emits these as data, never as draw calls; tile positions and the
// player pose are read from the snapshot each frame.
type Event struct {
	Kind   EventKind
	TileID int
	Column int     // Generation index of the owning column
	Row    int     // 0 = bottom row
	X, Y   float64 // Tile center at the time of the event
}
