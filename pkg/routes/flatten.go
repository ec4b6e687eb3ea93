package routes

// Flatten expands groups in place, producing the ordered list of routable
// entries. Standalone entries are kept as they are and relative order is
// preserved. Flatten never fails; configs of an unknown kind are skipped.
func Flatten(configs []Config) []Entry {
	out := make([]Entry, 0, len(configs))
	for _, c := range configs {
		switch c := c.(type) {
		case Entry:
			out = append(out, c)
		case *Entry:
			if c != nil {
				out = append(out, *c)
			}
		case Group:
			out = append(out, c.Members...)
		case *Group:
			if c != nil {
				out = append(out, c.Members...)
			}
		}
	}
	return out
}
