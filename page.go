package navmenu

import (
	"net/url"
	"strings"
)

// PageContext answers questions about the page that a menu is being
// rendered for. All methods must be free of side effects.
type PageContext interface {
	// URL resolves a raw menu URL against the site. The result is used as
	// the href as is, so it must not be a script URL.
	URL(raw string) string
	// IsActive reports whether the current page is the given URL.
	IsActive(href string) bool
	// IsActiveParent reports whether the current page lies below the
	// section, without being the section itself.
	IsActiveParent(s Section) bool
}

var _ PageContext = SitePage{}

var unsafeSchemes = map[string]bool{
	"javascript": true,
	"vbscript":   true,
	"data":       true,
}

// SitePage is a PageContext for a page at Path on a site served from
// BasePath.
type SitePage struct {
	BasePath string
	Path     string
}

// URL resolves raw against the base path. Absolute URLs are kept as
// they are, unless their scheme can execute script, in which case "#" is
// returned. URLs with only a query or fragment are kept as they are.
func (p SitePage) URL(raw string) string {
	u, err := url.Parse(raw)
	if err == nil && unsafeSchemes[strings.ToLower(u.Scheme)] {
		return "#"
	}

	if isAbsolute(raw) || (raw != "" && sitePath(raw) == "") {
		return raw
	}

	root := normalizePath(p.BasePath)
	if !strings.HasSuffix(root, "/") {
		root += "/"
	}

	joined := root + strings.TrimPrefix(raw, "/")

	if joined != "/" && !strings.HasSuffix(raw, "/") {
		joined = strings.TrimSuffix(joined, "/")
	}

	return joined
}

func (p SitePage) IsActive(href string) bool {
	if href == "" || isAbsolute(href) {
		return false
	}

	target := sitePath(href)
	if target == "" {
		return false
	}

	return p.current() == target
}

func (p SitePage) IsActiveParent(s Section) bool {
	if s.URL != "" && p.IsActive(s.URL) {
		return false
	}

	for _, child := range s.Children {
		if p.IsActive(child.Node.Href()) {
			return true
		}

		sub, ok := child.Node.(Section)
		if ok && p.IsActiveParent(sub) {
			return true
		}
	}

	return false
}

// current returns the normalized site-relative path of the page.
func (p SitePage) current() string {
	current := normalizePath(p.Path)
	base := normalizePath(p.BasePath)

	if base == "/" {
		return current
	}

	if current == base {
		return "/"
	}

	if strings.HasPrefix(current, base+"/") {
		return strings.TrimPrefix(current, base)
	}

	return current
}

// sitePath normalizes a menu URL, ignoring query and fragment. URLs
// without a path give an empty string.
func sitePath(href string) string {
	u, err := url.Parse(href)
	if err == nil {
		if u.Path == "" {
			return ""
		}

		href = u.Path
	}

	return normalizePath(href)
}

func isAbsolute(href string) bool {
	u, err := url.Parse(href)

	return err == nil && (u.Scheme != "" || u.Host != "")
}

func normalizePath(path string) string {
	path = strings.TrimSpace(path)
	if path == "" {
		return "/"
	}

	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	for strings.Contains(path, "//") {
		path = strings.ReplaceAll(path, "//", "/")
	}

	if len(path) > 1 {
		path = strings.TrimRight(path, "/")
	}

	return path
}
