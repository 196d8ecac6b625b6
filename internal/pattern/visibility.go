package pattern

import "strings"

// Visibility selects which symbol names survive member filtering.
// A name is private iff it starts with "_".
type Visibility int

const (
	ShowAll Visibility = iota
	PublicOnly
	PrivateOnly
)

// VisibilityFromFlags maps the --public/--private flag pair to a
// Visibility. The flags are mutually exclusive; anything else means all.
func VisibilityFromFlags(public, private bool) Visibility {
	switch {
	case public && !private:
		return PublicOnly
	case private && !public:
		return PrivateOnly
	}
	return ShowAll
}

// Keep reports whether a name passes the filter.
func (v Visibility) Keep(name string) bool {
	private := strings.HasPrefix(name, "_")
	switch v {
	case PublicOnly:
		return !private
	case PrivateOnly:
		return private
	}
	return true
}
