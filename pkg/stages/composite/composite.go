// Package composite implements the overlay composition stage.
package composite

import (
	"context"
	"fmt"
	"image"
	"runtime"
	"sort"
	"sync"
	"time"

	"github.com/Jia-cheng-Lin/Photo-Editor/pkg/overlay"
	"github.com/Jia-cheng-Lin/Photo-Editor/pkg/pipeline"
	"github.com/Jia-cheng-Lin/Photo-Editor/pkg/ports"
)

// Composer flattens overlays. *compositor.Compositor implements it.
type Composer interface {
	RenderLayer(canvasSize, pixelScale float64, overlays []overlay.Overlay) (image.Image, error)
	RenderOnto(photo pipeline.Photo, overlays []overlay.Overlay) (image.Image, error)
}

// Stage composes scenes concurrently.
type Stage struct {
	composer   Composer
	sink       ports.DebugSink
	logger     ports.Logger
	numWorkers int
}

// NewStage creates a new composite stage. numWorkers <= 0 uses one worker
// per CPU.
func NewStage(composer Composer, sink ports.DebugSink, logger ports.Logger, numWorkers int) *Stage {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	return &Stage{
		composer:   composer,
		sink:       sink,
		logger:     logger.WithComponent("composite"),
		numWorkers: numWorkers,
	}
}

// Execute composes all scenes. Results keep scene order; the first failure
// stops the remaining work.
func (s *Stage) Execute(ctx context.Context, input pipeline.CompositeInput) (pipeline.CompositeResult, error) {
	if len(input.Scenes) == 0 {
		return pipeline.CompositeResult{Images: []pipeline.ComposedImage{}}, nil
	}

	workers := s.numWorkers
	if workers > len(input.Scenes) {
		workers = len(input.Scenes)
	}
	s.logger.Debug("Compositing %d scenes with %d workers", len(input.Scenes), workers)

	result, err := s.executeParallel(ctx, input, workers)
	if err != nil {
		return result, err
	}

	s.logger.Debug("Composition completed")
	return result, nil
}

// indexedImage holds a result with its scene index for sorting.
type indexedImage struct {
	index int
	image pipeline.ComposedImage
}

func (s *Stage) executeParallel(ctx context.Context, input pipeline.CompositeInput, workers int) (pipeline.CompositeResult, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	n := len(input.Scenes)
	jobs := make(chan int, n)
	results := make(chan indexedImage, n)
	errChan := make(chan error, 1)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go s.worker(ctx, cancel, &wg, input.Scenes, jobs, results, errChan)
	}

	for i := 0; i < n; i++ {
		jobs <- i
	}
	close(jobs)

	go func() {
		wg.Wait()
		close(results)
		close(errChan)
	}()

	images := make([]indexedImage, 0, n)
	for r := range results {
		images = append(images, r)

		if s.sink.Enabled() {
			if err := s.sink.SaveComposite(r.image.Name, r.image.Image); err != nil {
				s.logger.Warn("Failed to save debug output: %v", err)
			}
		}
	}

	if err := <-errChan; err != nil {
		return pipeline.CompositeResult{}, err
	}
	if len(images) != n {
		// Workers stopped early without an error of their own.
		if err := ctx.Err(); err != nil {
			return pipeline.CompositeResult{}, err
		}
		return pipeline.CompositeResult{}, fmt.Errorf("composed %d of %d scenes", len(images), n)
	}

	sort.Slice(images, func(i, j int) bool {
		return images[i].index < images[j].index
	})

	out := make([]pipeline.ComposedImage, n)
	for i, img := range images {
		out[i] = img.image
	}
	return pipeline.CompositeResult{Images: out}, nil
}

func (s *Stage) worker(
	ctx context.Context,
	cancel context.CancelFunc,
	wg *sync.WaitGroup,
	scenes []pipeline.Scene,
	jobs <-chan int,
	results chan<- indexedImage,
	errChan chan<- error,
) {
	defer wg.Done()

	for idx := range jobs {
		if ctx.Err() != nil {
			return
		}

		img, err := s.composeScene(scenes[idx])
		if err != nil {
			select {
			case errChan <- fmt.Errorf("compose scene %q: %w", scenes[idx].Name, err):
			default:
			}
			cancel()
			return
		}

		results <- indexedImage{index: idx, image: img}
	}
}

func (s *Stage) composeScene(scene pipeline.Scene) (pipeline.ComposedImage, error) {
	start := time.Now()

	var (
		img image.Image
		err error
	)
	if scene.LayerOnly {
		img, err = s.composer.RenderLayer(scene.CanvasSize, scene.Photo.Scale, scene.Overlays)
	} else {
		img, err = s.composer.RenderOnto(scene.Photo, scene.Overlays)
	}
	if err != nil {
		return pipeline.ComposedImage{}, err
	}

	b := img.Bounds()
	s.logger.Debug("Scene %s composed: %dx%d, %d overlays in %d ms",
		scene.Name, b.Dx(), b.Dy(), len(scene.Overlays), time.Since(start).Milliseconds())

	return pipeline.ComposedImage{Name: scene.Name, Image: img}, nil
}
