package routes

import "fmt"

// DuplicatePolicy controls how a table treats two entries declaring the
// same path.
type DuplicatePolicy string

const (
	// DuplicateReject fails table construction.
	DuplicateReject DuplicatePolicy = "reject"
	// DuplicateFirstMatch accepts the table; the entry declared first
	// shadows the later ones.
	DuplicateFirstMatch DuplicatePolicy = "first-match"
)

func (p DuplicatePolicy) normalize() DuplicatePolicy {
	switch p {
	case DuplicateFirstMatch:
		return DuplicateFirstMatch
	default:
		return DuplicateReject
	}
}

// String returns the configuration name of the policy.
func (p DuplicatePolicy) String() string {
	return string(p.normalize())
}

// ParseDuplicatePolicy parses a policy name. The empty string selects
// DuplicateReject.
func ParseDuplicatePolicy(s string) (DuplicatePolicy, error) {
	switch DuplicatePolicy(s) {
	case "", DuplicateReject:
		return DuplicateReject, nil
	case DuplicateFirstMatch:
		return DuplicateFirstMatch, nil
	default:
		return DuplicateReject, fmt.Errorf("unknown duplicate path policy %q (want %q or %q)",
			s, DuplicateReject, DuplicateFirstMatch)
	}
}
