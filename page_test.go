package navmenu

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSitePageURL(t *testing.T) {
	t.Parallel()

	cases := []struct {
		base string
		raw  string
		want string
	}{
		{base: "", raw: "/", want: "/"},
		{base: "", raw: "/about", want: "/about"},
		{base: "", raw: "about", want: "/about"},
		{base: "/docs", raw: "/about", want: "/docs/about"},
		{base: "/docs/", raw: "/about/", want: "/docs/about/"},
		{base: "/docs", raw: "/", want: "/docs/"},
		{base: "/docs", raw: "https://example.com/x", want: "https://example.com/x"},
		{base: "/docs", raw: "//cdn.example.com/x", want: "//cdn.example.com/x"},
		{base: "/docs", raw: "tel:+4612345", want: "tel:+4612345"},
		{base: "/docs", raw: "#top", want: "#top"},
		{base: "/docs", raw: "?q=1", want: "?q=1"},
		{base: "/docs", raw: "javascript:alert(1)", want: "#"},
		{base: "/docs", raw: "data:text/plain,x", want: "#"},
	}

	for _, c := range cases {
		page := SitePage{BasePath: c.base}

		require.Equal(t, c.want, page.URL(c.raw),
			"base %q, raw %q", c.base, c.raw)
	}
}

func TestSitePageIsActive(t *testing.T) {
	t.Parallel()

	page := SitePage{BasePath: "/docs", Path: "/docs/guides/install/"}

	require.True(t, page.IsActive("/guides/install"))
	require.True(t, page.IsActive("guides//install/"))
	require.True(t, page.IsActive("/guides/install#setup"))
	require.False(t, page.IsActive("/guides"))
	require.False(t, page.IsActive(""))
	require.False(t, page.IsActive("https://example.com/guides/install"))

	home := SitePage{BasePath: "/docs", Path: "/docs/"}

	require.True(t, home.IsActive("/"))
	require.False(t, home.IsActive("#top"))
	require.False(t, home.IsActive("?q=1"))

	root := SitePage{BasePath: "/docs", Path: "/docs"}

	require.True(t, root.IsActive("/"))
}

func TestSitePageIsActiveParent(t *testing.T) {
	t.Parallel()

	guides := Section{
		URL: "/guides",
		Children: Menu{
			{Label: "Install", Node: Link("/guides/install")},
			{Label: "Advanced", Node: Section{
				Children: Menu{
					{Label: "Tuning", Node: Link("/guides/advanced/tuning")},
				},
			}},
		},
	}

	cases := []struct {
		path string
		want bool
	}{
		{path: "/guides/install", want: true},
		{path: "/guides/advanced/tuning", want: true},
		{path: "/guides", want: false},
		{path: "/other", want: false},
	}

	for _, c := range cases {
		page := SitePage{Path: c.path}

		require.Equal(t, c.want, page.IsActiveParent(guides), "path %q", c.path)
	}
}

func TestSitePageIsActiveParentExcludesSelf(t *testing.T) {
	t.Parallel()

	guides := Section{
		URL: "/guides",
		Children: Menu{
			{Label: "Overview", Node: Link("/guides")},
			{Label: "Install", Node: Link("/guides/install")},
		},
	}

	require.False(t, SitePage{Path: "/guides"}.IsActiveParent(guides))
	require.True(t, SitePage{Path: "/guides/install"}.IsActiveParent(guides))

	// Sections without a URL are never the current page themselves.
	unlinked := Section{Children: guides.Children}

	require.True(t, SitePage{Path: "/guides"}.IsActiveParent(unlinked))
}
