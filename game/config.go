package game

// Config holds window and presentation settings. Simulation tuning lives in
// sim.Config.
type Config struct {
	// ScreenWidth is the logical screen width in pixels
	ScreenWidth int

	// ScreenHeight is the logical screen height in pixels
	ScreenHeight int

	// Zoom is screen pixels per world unit
	Zoom float64

	// CameraLerp is the fraction of the distance to the player the camera
	// covers each frame
	CameraLerp float64

	// MaxFrameDelta caps the simulated time of a single frame, in seconds
	MaxFrameDelta float64

	// EndScreenDelay is how long the final scene stays visible before the
	// win or lose overlay appears, in seconds
	EndScreenDelay float64

	// MinimapSize is the side of the square minimap in pixels
	MinimapSize float64

	// MaxParticles caps the live hit and death sparks
	MaxParticles int
}

// DefaultConfig returns a 1280x720 window showing a 640x360 world view.
func DefaultConfig() Config {
	return Config{
		ScreenWidth:    1280,
		ScreenHeight:   720,
		Zoom:           2.0,
		CameraLerp:     0.1,
		MaxFrameDelta:  0.1,
		EndScreenDelay: 3.0,
		MinimapSize:    160,
		MaxParticles:   600,
	}
}
