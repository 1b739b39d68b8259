package domain

// Report describes the outcome of a single export.
type Report struct {
	Source      string   `json:"source"`
	Destination string   `json:"destination,omitempty"`
	Removed     []string `json:"removed"`
	// Missing lists keys that were scheduled for removal but absent.
	// It is only populated when absent keys are tolerated.
	Missing     []string `json:"missing,omitempty"`
	InputBytes  int      `json:"input_bytes"`
	OutputBytes int      `json:"output_bytes"`
}

// Complete reports whether every scheduled key was present and removed.
func (r *Report) Complete() bool {
	return len(r.Missing) == 0
}
