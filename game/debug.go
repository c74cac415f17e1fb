package game

// DebugState holds overlay toggles. It lives on the Game so it persists
// across restarts.
type DebugState struct {
	ShowCoords   bool // F3: player world coordinates
	ShowHitboxes bool // F5: outline every hitbox and obstacle
	ShowFPS      bool // F6: frame rate counter
}
