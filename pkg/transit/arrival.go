package transit

// Arrival is one upcoming vehicle passage at a stop, in upstream-provided
// order (soonest first). Arrival data is live and is never cached.
type Arrival struct {
	Line        string    `json:"line"`
	Direction   Direction `json:"direction"`
	Destination string    `json:"destination"`
	WaitMinutes int       `json:"waitMinutes"`
}
