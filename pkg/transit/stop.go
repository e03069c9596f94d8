package transit

// Stop is a physical boarding location identified by a short alphanumeric
// code. Stops are immutable once loaded into a directory generation.
type Stop struct {
	Code string `json:"code"`
	Name string `json:"name"`

	Lines []string `json:"lines,omitempty"`
}
