package brief

// ProjectBrief is the free-text project description submitted by a user.
// It is immutable once constructed; decomposition and synthesis only read it.
type ProjectBrief struct {
	Description  string   `json:"description"`
	Requirements []string `json:"requirements,omitempty"`
	Constraints  []string `json:"constraints,omitempty"`
	Timeline     string   `json:"timeline,omitempty"`
}
