package nav

import "strings"

// Link is one navigation entry.
type Link struct {
	Label  string
	Href   string
	Active bool
}

// Section returns the in-page section id the link scrolls to ("blog" -> "blog-section").
func (l Link) Section() string {
	return strings.ToLower(strings.TrimSpace(l.Label)) + "-section"
}

// IsAnchor reports whether the link stays on the current page.
func (l Link) IsAnchor() bool {
	return l.Href == "" || l.Href == "#" || strings.HasPrefix(l.Href, "#")
}

// Menu is an ordered list of navigation links.
type Menu []Link

// DefaultMenu is the site navigation.
func DefaultMenu() Menu {
	return Menu{
		{Label: "Home", Href: "/"},
		{Label: "Blog", Href: "/blog"},
		{Label: "About", Href: "/about"},
	}
}

// Activate returns a copy of the menu with at most one link marked active:
// the first whose href equals path. Trailing slashes are ignored except for "/".
func (m Menu) Activate(path string) Menu {
	path = trimSlash(path)
	out := make(Menu, len(m))
	found := false
	for i, l := range m {
		l.Active = false
		if !found && !l.IsAnchor() && trimSlash(l.Href) == path {
			l.Active = true
			found = true
		}
		out[i] = l
	}
	return out
}

func trimSlash(p string) string {
	if len(p) > 1 {
		return strings.TrimRight(p, "/")
	}
	return p
}
