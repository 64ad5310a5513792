package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/ttab/navmenu"
	"github.com/urfave/cli/v2"
)

func main() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLogLevel(os.Getenv("LOG_LEVEL")),
	})))

	app := cli.App{
		Name:   "navmenu",
		Usage:  "Render navigation menu fragments for every page of a site",
		Action: generateAction,
		Flags: []cli.Flag{
			&cli.PathFlag{
				Name:  "config",
				Value: "navmenu.json",
			},
			&cli.PathFlag{
				Name:     "out",
				Usage:    "output directory for menu fragments",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "base-path",
				Value: "",
			},
			&cli.IntFlag{
				Name:  "workers",
				Usage: "number of pages to render concurrently (default 16)",
			},
			&cli.StringFlag{
				Name:  "serve",
				Usage: "Serve menus for local preview: -serve :8080",
			},
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		TUIPrintln("error: %v", err)
		os.Exit(1)
	}
}

func generateAction(c *cli.Context) error {
	var (
		configPath = c.Path("config")
		outDir     = c.Path("out")
		basePath   = c.String("base-path")
		workers    = c.Int("workers")
		serveAddr  = c.String("serve")
	)

	start := time.Now()

	err := os.RemoveAll(outDir)
	if err != nil {
		return fmt.Errorf("clear output directory: %w", err)
	}

	err = os.MkdirAll(outDir, 0o770)
	if err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	var conf navmenu.Config

	confData, err := os.ReadFile(configPath)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	err = json.Unmarshal(confData, &conf)
	if err != nil {
		return fmt.Errorf("unmarshal config: %w", err)
	}

	if conf.Menu != "" && !filepath.IsAbs(conf.Menu) {
		conf.Menu = filepath.Join(filepath.Dir(configPath), conf.Menu)
	}

	err = navmenu.Generate(c.Context, outDir, conf, navmenu.GenerateOptions{
		BasePath: basePath,
		Workers:  workers,
	}, TUIPrintln)
	if err != nil {
		return fmt.Errorf("generate menus: %w", err)
	}

	duration := time.Since(start)

	TUIPrintln("Generated menus in %s", duration.String())

	if serveAddr == "" {
		return nil
	}

	menu, err := navmenu.LoadMenu(conf.Menu)
	if err != nil {
		return fmt.Errorf("load menu: %w", err)
	}

	renderer, err := navmenu.NewRenderer()
	if err != nil {
		return fmt.Errorf("create renderer: %w", err)
	}

	preview, err := navmenu.NewPreviewHandler(
		renderer, menu, basePath, prometheus.NewRegistry())
	if err != nil {
		return fmt.Errorf("create preview handler: %w", err)
	}

	TUIPrintln("Serving menu previews at %s", serveAddr)

	err = http.ListenAndServe(serveAddr, preview)
	if err != nil {
		return fmt.Errorf("serve menu previews: %w", err)
	}

	return nil
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func TUIPrintln(format string, a ...any) {
	_, err := fmt.Fprintf(os.Stderr, format, a...)
	if err != nil {
		println(err.Error())

		return
	}

	println()
}
