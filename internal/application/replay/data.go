package replay

// FrameInput records input state for a single frame
type FrameInput struct {
	F       int                `json:"f"`                 // Frame number
	DT      float64            `json:"dt"`                // Frame duration in seconds
	Axes    map[string]float64 `json:"axes,omitempty"`    // Axis values by name
	Pressed []string           `json:"pressed,omitempty"` // Bindings with a press edge
}

// ReplayData contains all data needed to replay a game session
type ReplayData struct {
	Version   string       `json:"version"`
	Stage     string       `json:"stage"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}

// Version is written into new recordings
const Version = "2.0"
