package engine

// Issue is the per-file output record of a compatibility check.
type Issue struct {
	// FilePath identifies the checked file as supplied by the caller.
	FilePath string `json:"file_path"`

	// DetectedLicense is the raw expression string the check ran on.
	DetectedLicense string `json:"detected_license"`

	// Compatible is true only for an unconditional yes verdict.
	Compatible bool `json:"compatible"`

	// Reason is the human-readable derivation trace behind the verdict.
	Reason string `json:"reason"`
}

// Result is the outcome of a compatibility check across a set of files.
type Result struct {
	// MainLicense is the normalized main license the check ran against,
	// or the raw input (or "UNKNOWN") when no valid main license was
	// available.
	MainLicense string `json:"main_license"`

	// Issues holds exactly one record per input file, ordered by file
	// path.
	Issues []Issue `json:"issues"`
}

// CompatibleCount returns the number of issues marked compatible.
func (r Result) CompatibleCount() int {
	n := 0
	for _, issue := range r.Issues {
		if issue.Compatible {
			n++
		}
	}
	return n
}
