// Package photoedit provides a high-level API for drawing text overlays onto
// photos and writing the results to disk.
package photoedit

import (
	"context"
	"fmt"
	"runtime"

	"github.com/Jia-cheng-Lin/Photo-Editor/pkg/adapters/filesink"
	"github.com/Jia-cheng-Lin/Photo-Editor/pkg/adapters/fontbook"
	"github.com/Jia-cheng-Lin/Photo-Editor/pkg/adapters/ggrenderer"
	"github.com/Jia-cheng-Lin/Photo-Editor/pkg/adapters/logger"
	"github.com/Jia-cheng-Lin/Photo-Editor/pkg/adapters/nullsink"
	"github.com/Jia-cheng-Lin/Photo-Editor/pkg/adapters/osfilesystem"
	"github.com/Jia-cheng-Lin/Photo-Editor/pkg/compositor"
	"github.com/Jia-cheng-Lin/Photo-Editor/pkg/orchestrator"
	"github.com/Jia-cheng-Lin/Photo-Editor/pkg/ports"
	"github.com/Jia-cheng-Lin/Photo-Editor/pkg/stages/composite"
	"github.com/Jia-cheng-Lin/Photo-Editor/pkg/stages/decode"
	"github.com/Jia-cheng-Lin/Photo-Editor/pkg/stages/export"
)

// Options configures an Editor.
type Options struct {
	// Workers is the number of scenes composited in parallel
	// (default: CPU count).
	Workers int

	// FontDir, when set, is scanned for .ttf/.otf files.
	FontDir string

	// Geometry is the overlay geometry (default: compositor.DefaultOptions).
	Geometry *compositor.Options

	// DebugDir, when set, receives the project JSON, decoded sources and
	// composites.
	DebugDir string

	// FileSystem defaults to the OS file system.
	FileSystem ports.FileSystem

	// Logger defaults to a no-op logger.
	Logger ports.Logger
}

// Editor renders projects. Create one with New.
type Editor struct {
	fs         ports.FileSystem
	renderer   ports.Renderer
	fonts      *fontbook.Book
	compositor *compositor.Compositor
	sink       ports.DebugSink
	logger     ports.Logger
	workers    int
}

// New wires an Editor from opts.
func New(opts Options) (*Editor, error) {
	e := &Editor{
		fs:       opts.FileSystem,
		renderer: ggrenderer.New(),
		fonts:    fontbook.New(),
		logger:   opts.Logger,
		workers:  opts.Workers,
	}
	if e.fs == nil {
		e.fs = osfilesystem.New()
	}
	if e.logger == nil {
		e.logger = logger.NewNoop()
	}
	if e.workers <= 0 {
		e.workers = runtime.NumCPU()
	}

	if opts.FontDir != "" {
		loaded, skipped, err := e.fonts.LoadDir(e.fs, opts.FontDir)
		if err != nil {
			return nil, fmt.Errorf("load fonts: %w", err)
		}
		e.logger.Info("Loaded %d fonts from %s (%d skipped)", loaded, opts.FontDir, skipped)
	}

	if opts.DebugDir != "" {
		if err := e.fs.MkdirAll(opts.DebugDir); err != nil {
			return nil, fmt.Errorf("create debug directory: %w", err)
		}
		e.sink = filesink.New(opts.DebugDir, e.fs, e.renderer)
	} else {
		e.sink = nullsink.New()
	}

	geometry := compositor.DefaultOptions()
	if opts.Geometry != nil {
		geometry = *opts.Geometry
	}
	e.compositor = compositor.New(e.renderer, e.fonts, e.logger, geometry)

	return e, nil
}

// Run renders every job in cfg.
func (e *Editor) Run(ctx context.Context, cfg orchestrator.Config) (orchestrator.RunResult, error) {
	orch := orchestrator.New(
		decode.NewStage(e.fs, e.renderer, e.sink, e.logger),
		composite.NewStage(e.compositor, e.sink, e.logger, e.workers),
		export.NewStage(e.fs, e.renderer, e.logger),
		e.sink,
		e.logger,
	)
	return orch.Run(ctx, cfg)
}

// Compositor returns the compositor for direct RenderLayer/RenderOnto use.
func (e *Editor) Compositor() *compositor.Compositor {
	return e.compositor
}

// Fonts returns the font book.
func (e *Editor) Fonts() *fontbook.Book {
	return e.fonts
}

// Workers returns the worker count in use.
func (e *Editor) Workers() int {
	return e.workers
}
