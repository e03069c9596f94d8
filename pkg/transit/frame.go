package transit

// LaMetric icon identifiers. These are fixed icon gallery IDs and are part
// of the display contract.
const (
	IconTram    = "8958"
	IconBus     = "7956"
	IconNavette = "12186"
	IconError   = "555"
)

// NoServiceText is shown when the upstream reports no upcoming arrivals.
// It is a valid result, not an error.
const NoServiceText = "Aucun"

// DisplayFrame is one formatted output unit for the display client.
type DisplayFrame struct {
	Icon string `json:"icon"`
	Text string `json:"text"`
}

// FrameResponse is the body returned to the display client.
type FrameResponse struct {
	Frames []DisplayFrame `json:"frames"`
}

// ErrorFrame renders a caller-facing error as a single frame with the
// dedicated error icon.
func ErrorFrame(text string) FrameResponse {
	return FrameResponse{Frames: []DisplayFrame{{Icon: IconError, Text: text}}}
}

// NoArrivalsFrame is the frame served when a stop has nothing scheduled.
func NoArrivalsFrame() FrameResponse {
	return FrameResponse{Frames: []DisplayFrame{{Icon: IconTram, Text: NoServiceText}}}
}
