package navmenu

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"strings"
)

//go:embed templates
var templateFS embed.FS

const (
	itemClass   = "nav-menu__item hover:text-teal-accent-400"
	activeClass = "active font-semibold text-teal-accent-700"
)

// ItemView is the resolved presentation of a menu entry for a specific
// page.
type ItemView struct {
	Label    string       `json:"label"`
	Level    int          `json:"level"`
	Linked   bool         `json:"linked"`
	Href     template.URL `json:"href,omitempty"`
	Class    string       `json:"class,omitempty"`
	Children []ItemView   `json:"children,omitempty"`
}

// BuildItem resolves the presentation of a node for the given page. The
// children of a section are resolved at level+1.
func BuildItem(node Node, label string, level int, page PageContext) ItemView {
	view := ItemView{
		Label: label,
		Level: level,
	}

	switch n := node.(type) {
	case Link:
		if n != "" {
			view.link(string(n), false, page)
		}
	case Section:
		if n.URL != "" {
			view.link(n.URL, page.IsActiveParent(n), page)
		}

		view.Children = BuildMenu(n.Children, level+1, page)
	}

	return view
}

// BuildMenu resolves the presentation of all entries in a menu at the
// given level.
func BuildMenu(menu Menu, level int, page PageContext) []ItemView {
	if len(menu) == 0 {
		return nil
	}

	views := make([]ItemView, len(menu))

	for i, e := range menu {
		views[i] = BuildItem(e.Node, e.Label, level, page)
	}

	return views
}

func (v *ItemView) link(href string, parentActive bool, page PageContext) {
	classes := []string{fmt.Sprintf("lvl%d", v.Level)}

	if parentActive {
		classes = append(classes, fmt.Sprintf("lvl%d-active", v.Level))
	}

	if page.IsActive(href) {
		classes = append(classes, activeClass)
	}

	classes = append(classes, itemClass)

	v.Linked = true
	// The page context decides which URLs are safe to link to.
	v.Href = template.URL(page.URL(href))
	v.Class = strings.Join(classes, " ")
}

// Renderer writes menu markup.
type Renderer struct {
	tpl *template.Template
}

func NewRenderer() (*Renderer, error) {
	tpl, err := template.New("templates").ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	return &Renderer{tpl: tpl}, nil
}

// RenderItem writes a single list item for the node, followed by a
// nested list of its children if it has any. Rendering only fails if
// writing to w fails.
func (r *Renderer) RenderItem(
	w io.Writer, node Node, label string, level int, page PageContext,
) error {
	return r.RenderView(w, BuildItem(node, label, level, page))
}

// RenderMenu writes a list containing all entries of the menu.
func (r *Renderer) RenderMenu(
	w io.Writer, menu Menu, level int, page PageContext,
) error {
	views := BuildMenu(menu, level, page)

	err := r.tpl.ExecuteTemplate(w, "menu", views)
	if err != nil {
		return fmt.Errorf("render menu: %w", err)
	}

	return nil
}

// RenderView writes an already resolved item.
func (r *Renderer) RenderView(w io.Writer, view ItemView) error {
	err := r.tpl.ExecuteTemplate(w, "menu_item", view)
	if err != nil {
		return fmt.Errorf("render menu item: %w", err)
	}

	return nil
}
