package editor

// State is the persistent state of an editor, as stored by a host between
// sessions.
type State struct {
	// Serialized path data, see package pathdata.
	PathData     string
	CanvasWidth  int
	CanvasHeight int
	TotalFrames  int
	// Background image, as base64 or a data: URL. Empty if there is none.
	ImageBase64 string
}
