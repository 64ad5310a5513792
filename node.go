package navmenu

// Node is a single menu node. It is either a Link or a Section.
type Node interface {
	// Href returns the raw, unresolved URL of the node. An empty string
	// means that the node doesn't link anywhere.
	Href() string

	node()
}

// Link is a leaf node that is nothing more than a URL.
type Link string

func (l Link) Href() string {
	return string(l)
}

func (Link) node() {}

// Section is a node with an optional URL and an ordered list of child
// entries.
type Section struct {
	URL      string
	Children Menu
}

func (s Section) Href() string {
	return s.URL
}

func (Section) node() {}

// Entry is a labelled menu node.
type Entry struct {
	Label string
	Node  Node
}

// Menu is an ordered list of menu entries.
type Menu []Entry

// Walk visits every entry in the menu depth first, parents before their
// children. Walking stops when fn returns false.
func (m Menu) Walk(fn func(e Entry, level int) bool) {
	m.walk(fn, 0)
}

func (m Menu) walk(fn func(e Entry, level int) bool, level int) bool {
	for _, e := range m {
		if !fn(e, level) {
			return false
		}

		s, ok := e.Node.(Section)
		if !ok {
			continue
		}

		if !s.Children.walk(fn, level+1) {
			return false
		}
	}

	return true
}

// Hrefs returns the non-empty URLs of all nodes in the menu in walk
// order, without duplicates.
func (m Menu) Hrefs() []string {
	var (
		hrefs []string
		seen  = make(map[string]bool)
	)

	m.Walk(func(e Entry, _ int) bool {
		href := e.Node.Href()
		if href == "" || seen[href] {
			return true
		}

		seen[href] = true
		hrefs = append(hrefs, href)

		return true
	})

	return hrefs
}
