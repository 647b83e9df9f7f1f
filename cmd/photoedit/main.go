// Package main provides the CLI entry point for photoedit.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"syscall"

	"github.com/ideamans/go-l10n"
	"github.com/urfave/cli/v2"

	"github.com/Jia-cheng-Lin/Photo-Editor/pkg/adapters/logger"
	"github.com/Jia-cheng-Lin/Photo-Editor/pkg/adapters/osfilesystem"
	"github.com/Jia-cheng-Lin/Photo-Editor/pkg/config"
	"github.com/Jia-cheng-Lin/Photo-Editor/pkg/orchestrator"
	"github.com/Jia-cheng-Lin/Photo-Editor/pkg/photoedit"
	"github.com/Jia-cheng-Lin/Photo-Editor/pkg/ports"
	"github.com/Jia-cheng-Lin/Photo-Editor/pkg/summarizer"
)

var version = "dev"

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:    "photoedit",
		Usage:   l10n.T("Draw text overlays onto photos"),
		Version: version,
		Flags:   loggingFlags(),
		Commands: []*cli.Command{
			{
				Name:      "render",
				Usage:     l10n.T("Render every scene of a project onto its photo"),
				ArgsUsage: "<project.yaml>",
				Flags:     renderFlags(),
				Action: func(c *cli.Context) error {
					return runProject(c, false)
				},
			},
			{
				Name:      "layer",
				Usage:     l10n.T("Render only the transparent layer scenes of a project"),
				ArgsUsage: "<project.yaml>",
				Flags:     renderFlags(),
				Action: func(c *cli.Context) error {
					return runProject(c, true)
				},
			},
			{
				Name:  "fonts",
				Usage: l10n.T("List available font families and weights"),
				Flags: []cli.Flag{fontDirFlag()},
				Action: func(c *cli.Context) error {
					return listFonts(c)
				},
			},
			{
				Name:  "version",
				Usage: l10n.T("Show version information"),
				Action: func(c *cli.Context) error {
					fmt.Fprintln(c.App.Writer, l10n.F("photoedit version %s", version))
					return nil
				},
			},
		},
	}
}

func loggingFlags() []cli.Flag {
	category := l10n.T("Logging")
	return []cli.Flag{
		&cli.StringFlag{
			Name:     "log-level",
			Aliases:  []string{"l"},
			Value:    "info",
			Usage:    l10n.T("Log level (debug, info, warn, error)"),
			Category: category,
		},
		&cli.BoolFlag{
			Name:     "quiet",
			Aliases:  []string{"q"},
			Usage:    l10n.T("Suppress all log output"),
			Category: category,
		},
	}
}

func fontDirFlag() cli.Flag {
	return &cli.StringFlag{
		Name:     "font-dir",
		Usage:    l10n.T("Directory of .ttf/.otf fonts to load (overrides the project)"),
		Category: l10n.T("Fonts"),
	}
}

func renderFlags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Name:     "workers",
			Aliases:  []string{"w"},
			Usage:    l10n.T("Number of scenes composited in parallel (default: project or CPU count)"),
			Category: l10n.T("Output"),
		},
		&cli.StringFlag{
			Name:     "out-dir",
			Aliases:  []string{"o"},
			Usage:    l10n.T("Directory for rendered images (overrides the project)"),
			Category: l10n.T("Output"),
		},
		&cli.IntFlag{
			Name:     "max-size",
			Usage:    l10n.T("Longest output side in pixels; larger renders are downscaled"),
			Category: l10n.T("Output"),
		},
		&cli.StringFlag{
			Name:     "summary",
			Usage:    l10n.T("Write a run summary to file (Markdown, or JSON for .json paths)"),
			Category: l10n.T("Output"),
		},
		fontDirFlag(),
		&cli.BoolFlag{
			Name:     "guides",
			Usage:    l10n.T("Outline every text box"),
			Category: l10n.T("Debug"),
		},
		&cli.BoolFlag{
			Name:     "debug",
			Aliases:  []string{"d"},
			Usage:    l10n.T("Enable debug output"),
			Category: l10n.T("Debug"),
		},
		&cli.StringFlag{
			Name:     "debug-dir",
			Usage:    l10n.T("Directory for debug output"),
			Category: l10n.T("Debug"),
		},
	}
}

func newLogger(c *cli.Context) ports.Logger {
	if c.Bool("quiet") {
		return logger.NewNoop()
	}
	return logger.New(ports.ParseLogLevel(strings.ToLower(c.String("log-level"))))
}

// applyFlags lets command-line flags override project values.
func applyFlags(c *cli.Context, cfg *config.Config) {
	if c.IsSet("workers") {
		cfg.Workers = c.Int("workers")
	}
	if c.IsSet("out-dir") {
		cfg.OutDir = c.String("out-dir")
	}
	if c.IsSet("max-size") {
		cfg.MaxSize = c.Int("max-size")
	}
	if c.IsSet("font-dir") {
		cfg.FontDir = c.String("font-dir")
	}
	if c.Bool("guides") {
		cfg.Guides = true
	}
	if c.Bool("debug") {
		cfg.Debug = true
	}
	if c.IsSet("debug-dir") {
		cfg.DebugDir = c.String("debug-dir")
	}
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.NumCPU()
	}
}

// signalContext cancels on SIGINT or SIGTERM.
func signalContext(parent context.Context, log ports.Logger) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		select {
		case <-sigCh:
			log.Warn("Interrupted, shutting down...")
			cancel()
		case <-ctx.Done():
		}
	}()

	return ctx, func() {
		signal.Stop(sigCh)
		cancel()
	}
}

func runProject(c *cli.Context, layersOnly bool) error {
	path := c.Args().First()
	if path == "" {
		return cli.Exit(l10n.T("Project file argument is required"), 2)
	}

	log := newLogger(c)

	cfg, err := config.LoadFromFile(path)
	if err != nil {
		return fmt.Errorf("load project: %w", err)
	}
	applyFlags(c, &cfg)

	orchConfig, err := cfg.ToOrchestratorConfig(layersOnly)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	ctx, stop := signalContext(c.Context, log)
	defer stop()

	var debugDir string
	if cfg.Debug {
		debugDir = cfg.DebugDir
	}
	geometry := cfg.CompositorOptions()
	editor, err := photoedit.New(photoedit.Options{
		Workers:  cfg.Workers,
		FontDir:  cfg.FontDir,
		Geometry: &geometry,
		DebugDir: debugDir,
		Logger:   log,
	})
	if err != nil {
		return err
	}

	log.Info("Rendering %s", path)
	result, err := editor.Run(ctx, orchConfig)
	if err != nil {
		return err
	}

	if summaryPath := c.String("summary"); summaryPath != "" {
		s := buildSummary(path, cfg, result, editor.Fonts().Families(), editor.Compositor().Fallbacks())
		w := summarizer.NewWriter(osfilesystem.New(), summarizer.FormatterFor(summaryPath))
		if err := w.Write(summaryPath, s); err != nil {
			log.Error("Failed to write summary: %v", err)
			return fmt.Errorf("write summary: %w", err)
		}
		log.Info("Summary saved to %s", summaryPath)
	}

	return nil
}

func buildSummary(project string, cfg config.Config, result orchestrator.RunResult, families, fallbacks []string) *summarizer.Summary {
	opts := cfg.CompositorOptions()
	b := summarizer.NewBuilder().
		WithProject(project).
		WithTotals(result.TotalBytes, result.DurationMs).
		WithSettings(summarizer.Settings{
			Workers:      cfg.Workers,
			PaddingX:     opts.PaddingX,
			PaddingY:     opts.PaddingY,
			CornerRadius: opts.CornerRadius,
			LineSpacing:  opts.LineSpacing,
			WrapInset:    opts.WrapInset,
			Guides:       opts.Guides,
		}).
		WithFonts(families, fallbacks)

	for _, sc := range result.Scenes {
		b.WithScene(summarizer.SceneInfo{
			Name:     sc.Name,
			Input:    sc.Input,
			Layer:    sc.LayerOnly,
			Scale:    sc.Scale,
			Output:   sc.Output,
			Format:   sc.Format.String(),
			Width:    sc.Width,
			Height:   sc.Height,
			Bytes:    sc.Bytes,
			Overlays: sc.Overlays,
		})
	}
	return b.Build()
}

func listFonts(c *cli.Context) error {
	log := newLogger(c)
	editor, err := photoedit.New(photoedit.Options{FontDir: c.String("font-dir"), Logger: log})
	if err != nil {
		return err
	}
	book := editor.Fonts()

	for _, family := range book.Families() {
		weights := book.Weights(family)
		names := make([]string, len(weights))
		for i, w := range weights {
			names[i] = w.String()
		}
		fmt.Fprintf(c.App.Writer, "%s\t%s\n", family, strings.Join(names, ", "))
	}
	return nil
}
