package routes

import (
	"strings"

	"github.com/hashicorp/go-multierror"

	"github.com/logsviewer/logsviewer/internal/errors"
)

// Table is an immutable, ordered route table. Build it once at startup and
// hand it to whatever renders routes and menus.
type Table struct {
	configs    []Config
	entries    []Entry
	duplicates []string
	policy     DuplicatePolicy
}

// Option configures table construction.
type Option func(*Table)

// WithDuplicatePolicy sets how repeated paths are treated.
// The default is DuplicateReject.
func WithDuplicatePolicy(p DuplicatePolicy) Option {
	return func(t *Table) {
		t.policy = p.normalize()
	}
}

// NewTable validates configs and builds a table. All problems found are
// reported together in one error.
func NewTable(configs []Config, opts ...Option) (*Table, error) {
	t := &Table{
		configs: append([]Config(nil), configs...),
		policy:  DuplicateReject,
	}
	for _, opt := range opts {
		opt(t)
	}

	var result *multierror.Error

	for i, c := range t.configs {
		if g, ok := asGroup(c); ok && g.Label == "" {
			result = multierror.Append(result,
				errors.New("E202").WithDetailf("group at position %d has %d members and no label", i, len(g.Members)))
		}
	}

	t.entries = Flatten(t.configs)

	seen := make(map[string]int, len(t.entries))
	for i, e := range t.entries {
		if e.Path == "" || !strings.HasPrefix(e.Path, "/") {
			result = multierror.Append(result,
				errors.New("E201").WithDetailf("entry %d (%q) has path %q", i, e.Title, e.Path))
		}
		if e.View == nil {
			result = multierror.Append(result,
				errors.New("E203").WithDetailf("entry %d (%s)", i, e.Path))
		}

		if first, dup := seen[e.Path]; dup {
			t.duplicates = append(t.duplicates, e.Path)
			if t.policy == DuplicateReject {
				result = multierror.Append(result,
					errors.New("E200").
						WithDetailf("%s is declared by entries %d and %d", e.Path, first, i).
						WithSuggestion("Remove one entry or set navigation.duplicatePaths to \"first-match\""))
			}
			continue
		}
		seen[e.Path] = i
	}

	if err := result.ErrorOrNil(); err != nil {
		return nil, err
	}
	return t, nil
}

func asGroup(c Config) (Group, bool) {
	switch g := c.(type) {
	case Group:
		return g, true
	case *Group:
		if g != nil {
			return *g, true
		}
	}
	return Group{}, false
}

// Configs returns a copy of the declared configs.
func (t *Table) Configs() []Config {
	return append([]Config(nil), t.configs...)
}

// Flatten returns a fresh copy of the flattened entries.
func (t *Table) Flatten() []Entry {
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}

// Len returns the number of routable entries.
func (t *Table) Len() int {
	return len(t.entries)
}

// Menu returns the navigation menu for the table.
func (t *Table) Menu() []MenuItem {
	return Menu(t.configs)
}

// Duplicates returns paths declared by more than one entry, once per
// shadowed entry, in declaration order. Only a DuplicateFirstMatch table
// can report any.
func (t *Table) Duplicates() []string {
	return append([]string(nil), t.duplicates...)
}

// Policy returns the duplicate path policy the table was built with.
func (t *Table) Policy() DuplicatePolicy {
	return t.policy
}
