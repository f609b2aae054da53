package types

// CommandResult is returned by the commands that act on the store.
type CommandResult struct {
	Command string `json:"command"`
	// Message is the line shown to the user on success.
	Message string `json:"message"`
	// Changed is true when the store was modified and needs saving.
	Changed bool `json:"changed"`
}

// VerifyResult holds the outcome of checking a data file.
type VerifyResult struct {
	Path     string   `json:"path"`
	Found    bool     `json:"found"`
	Students int      `json:"students"`
	Courses  int      `json:"courses"`
	Problems []string `json:"problems"`
}

// OK reports whether the file loaded without reference problems.
func (r *VerifyResult) OK() bool {
	return len(r.Problems) == 0
}

// GenConfigResult holds the result of the 'gen-config' command.
type GenConfigResult struct {
	ConfigContent string   `json:"configContent"`
	FilesWritten  []string `json:"filesWritten"`
}
