package matrix

import "strings"

// TriState is the verdict for a (main license, dependency license) pair.
//
// The zero value is Unknown, which keeps uninitialized lookups on the
// conservative path.
type TriState int

const (
	// Unknown means no compatibility data is available.
	Unknown TriState = iota
	// Yes means the dependency license is compatible.
	Yes
	// No means the dependency license is incompatible.
	No
	// Conditional means compatible only under conditions that need
	// manual review.
	Conditional
)

// String returns the lowercase form used in matrix sources and in
// user-facing reason text.
func (t TriState) String() string {
	switch t {
	case Yes:
		return "yes"
	case No:
		return "no"
	case Conditional:
		return "conditional"
	default:
		return "unknown"
	}
}

// CoerceStatus converts a raw status value from a matrix source into a
// TriState. Matching is case-insensitive and whitespace-trimmed; "same"
// is accepted as an alias for "yes". Non-string values and anything
// unrecognized coerce to Unknown rather than failing.
func CoerceStatus(v any) TriState {
	s, ok := v.(string)
	if !ok {
		return Unknown
	}
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes", "same":
		return Yes
	case "no":
		return No
	case "conditional":
		return Conditional
	default:
		return Unknown
	}
}
