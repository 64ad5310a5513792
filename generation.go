package navmenu

import (
	"context"
	"fmt"
	"io"
	"path"
	"path/filepath"

	"github.com/ttab/navmenu/internal"
	"golang.org/x/sync/errgroup"
)

const defaultWorkers = 16

type GenerateOptions struct {
	// BasePath is the path that the site is served from.
	BasePath string
	// Workers is the number of pages rendered concurrently.
	Workers int
}

// Generate renders the menu for every page linked from the menu, and any
// extra pages listed in the configuration. Each page gets a "menu.html"
// fragment and a "menu.json" with the resolved menu in its own directory
// under outDir.
func Generate(
	ctx context.Context, outDir string, conf Config, opts GenerateOptions,
	uiPrintln func(format string, a ...any),
) error {
	menu, err := LoadMenu(conf.Menu)
	if err != nil {
		return fmt.Errorf("load menu: %w", err)
	}

	renderer, err := NewRenderer()
	if err != nil {
		return fmt.Errorf("create renderer: %w", err)
	}

	pages := collectPages(menu, conf.Pages)

	workers := opts.Workers
	if workers <= 0 {
		workers = defaultWorkers
	}

	jobs := make(chan string)

	grp, gCtx := errgroup.WithContext(ctx)

	// Queue the rendering of each page.
	grp.Go(func() error {
		defer close(jobs)

		for _, page := range pages {
			if err := gCtx.Err(); err != nil {
				return err
			}

			select {
			case jobs <- page:
			case <-gCtx.Done():
				return gCtx.Err()
			}
		}

		return nil
	})

	for i := 0; i < workers; i++ {
		grp.Go(func() error {
			for page := range jobs {
				err := renderPageMenu(
					outDir, opts.BasePath, renderer, menu, page)
				if err != nil {
					return fmt.Errorf("render menu for %q: %w",
						page, err)
				}
			}

			return nil
		})
	}

	err = grp.Wait()
	if err != nil {
		return fmt.Errorf("render menus: %w", err)
	}

	uiPrintln("Rendered menus for %d pages", len(pages))

	return nil
}

// collectPages returns the site paths of all internal menu URLs followed
// by the extra pages, cleaned and without duplicates.
func collectPages(menu Menu, extra []string) []string {
	var (
		pages []string
		seen  = make(map[string]bool)
	)

	candidates := append(menu.Hrefs(), extra...)

	for _, href := range candidates {
		if isAbsolute(href) {
			continue
		}

		site := sitePath(href)
		if site == "" {
			continue
		}

		page := path.Clean(site)
		if seen[page] {
			continue
		}

		seen[page] = true
		pages = append(pages, page)
	}

	return pages
}

func renderPageMenu(
	outDir string, basePath string,
	renderer *Renderer, menu Menu, page string,
) error {
	site := SitePage{BasePath: basePath}
	site.Path = site.URL(page)

	views := BuildMenu(menu, 0, site)

	dir := filepath.Join(outDir, filepath.FromSlash(page))

	err := internal.MarshalFile(filepath.Join(dir, "menu.json"), views)
	if err != nil {
		return fmt.Errorf("write menu data: %w", err)
	}

	err = internal.WriteFile(filepath.Join(dir, "menu.html"),
		func(w io.Writer) error {
			return renderer.RenderMenu(w, menu, 0, site)
		})
	if err != nil {
		return fmt.Errorf("write menu.html: %w", err)
	}

	return nil
}
