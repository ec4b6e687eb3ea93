package routes

// MenuItem is a navigation menu node. Items with children are sections
// built from groups; leaf items link to an entry.
type MenuItem struct {
	Label    string
	Path     string
	Exact    bool
	Children []MenuItem
}

// IsSection reports whether the item is a group heading.
func (m MenuItem) IsSection() bool {
	return len(m.Children) > 0
}

// Menu builds the navigation menu from a route table, keeping the
// declared order. Unlabeled entries are omitted, as are groups with no
// labeled member.
func Menu(configs []Config) []MenuItem {
	var items []MenuItem
	for _, c := range configs {
		switch c := c.(type) {
		case Entry:
			if item, ok := entryItem(c); ok {
				items = append(items, item)
			}
		case *Entry:
			if c == nil {
				continue
			}
			if item, ok := entryItem(*c); ok {
				items = append(items, item)
			}
		case Group:
			if item, ok := groupItem(c); ok {
				items = append(items, item)
			}
		case *Group:
			if c == nil {
				continue
			}
			if item, ok := groupItem(*c); ok {
				items = append(items, item)
			}
		}
	}
	return items
}

func entryItem(e Entry) (MenuItem, bool) {
	if e.Label == "" {
		return MenuItem{}, false
	}
	return MenuItem{Label: e.Label, Path: e.Path, Exact: e.Exact}, true
}

func groupItem(g Group) (MenuItem, bool) {
	var children []MenuItem
	for _, m := range g.Members {
		if item, ok := entryItem(m); ok {
			children = append(children, item)
		}
	}
	if len(children) == 0 {
		return MenuItem{}, false
	}
	return MenuItem{Label: g.Label, Children: children}, true
}
