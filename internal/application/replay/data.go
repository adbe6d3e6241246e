package replay

// FormatVersion is written into every recording
const FormatVersion = "2.0"

// FrameInput records input state for a single frame
type FrameInput struct {
	F int  `json:"f"`           // Frame number
	L bool `json:"l,omitempty"` // Left
	R bool `json:"r,omitempty"` // Right
	J bool `json:"j,omitempty"` // Jump
	A bool `json:"a,omitempty"` // Action (grab / throw edge)
}

// ReplayData contains all data needed to replay a session.
// Seed is the world population seed, so the same props and trees come back.
type ReplayData struct {
	Version   string       `json:"version"`
	Seed      int64        `json:"seed"`
	World     string       `json:"world"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}
