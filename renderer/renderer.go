// Package renderer orchestrates a pool of tracers over the rows of a frame
// and assembles the resulting color buffer.
package renderer

import (
	"fmt"
	"runtime"
	"time"

	"github.com/achilleasa/rigel/frame"
	"github.com/achilleasa/rigel/log"
	"github.com/achilleasa/rigel/scene"
	"github.com/achilleasa/rigel/tracer"
)

var logger = log.New("renderer")

type Renderer interface {
	// Render frame.
	Render() (*frame.Buffer, error)

	// Shutdown renderer and any attached tracers.
	Close()

	// Get render statistics.
	Stats() FrameStats
}

// The default renderer splits the frame into row blocks, assigns each block
// to a CPU tracer and joins on their completion. Scene data is shared
// read-only between all tracers; each tracer writes to a disjoint region of
// the frame buffer so no synchronization is needed beyond the join.
type defaultRenderer struct {
	options   Options
	scheduler tracer.BlockScheduler
	tracers   []tracer.Tracer
	buffer    *frame.Buffer
	stats     FrameStats
	closed    bool
}

// Create a new default renderer for the given scene. The renderer attaches
// its tracers immediately; the caller must call Close to release them.
func NewDefault(sc *scene.Scene, scheduler tracer.BlockScheduler, options Options) (Renderer, error) {
	if sc == nil {
		return nil, ErrSceneNotDefined
	}
	if options.FrameW == 0 || options.FrameH == 0 {
		return nil, ErrInvalidFrameDims
	}
	if options.FOV == 0 {
		options.FOV = DefaultFOV
	}
	if options.NumTracers <= 0 {
		options.NumTracers = runtime.NumCPU()
	}
	if uint32(options.NumTracers) > options.FrameH {
		options.NumTracers = int(options.FrameH)
	}

	camera := scene.NewCamera(options.FOV, options.FrameW, options.FrameH)
	buffer := frame.NewBuffer(options.FrameW, options.FrameH)

	r := &defaultRenderer{
		options:   options,
		scheduler: scheduler,
		buffer:    buffer,
	}
	for i := 0; i < options.NumTracers; i++ {
		tr := tracer.NewCPUTracer(fmt.Sprintf("cpu-%d", i), sc)
		if err := tr.Setup(camera, buffer.Pix()); err != nil {
			r.Close()
			return nil, err
		}
		r.tracers = append(r.tracers, tr)
	}
	if len(r.tracers) == 0 {
		return nil, ErrNoTracers
	}

	return r, nil
}

// Render frame.
func (r *defaultRenderer) Render() (*frame.Buffer, error) {
	if r.closed {
		return nil, ErrAlreadyClosed
	}

	blockAssignment := r.scheduler.Schedule(r.tracers, r.options.FrameH)
	logger.Debugf("block assignment for %d tracer(s): %v", len(r.tracers), blockAssignment)

	doneChan := make(chan uint32, len(r.tracers))
	errChan := make(chan error, len(r.tracers))

	start := time.Now()
	var blockY uint32
	for idx, tr := range r.tracers {
		tr.Enqueue(tracer.BlockRequest{
			BlockY:   blockY,
			BlockH:   blockAssignment[idx],
			DoneChan: doneChan,
			ErrChan:  errChan,
		})
		blockY += blockAssignment[idx]
	}

	var pendingRows = r.options.FrameH
	for pendingRows > 0 {
		select {
		case rows := <-doneChan:
			pendingRows -= rows
		case err := <-errChan:
			return nil, err
		}
	}

	r.collectStats(blockAssignment, time.Since(start))
	return r.buffer, nil
}

// Shutdown renderer and any attached tracers.
func (r *defaultRenderer) Close() {
	if r.closed {
		return
	}
	r.closed = true
	for _, tr := range r.tracers {
		tr.Close()
	}
}

// Get render statistics.
func (r *defaultRenderer) Stats() FrameStats {
	return r.stats
}

func (r *defaultRenderer) collectStats(blockAssignment []uint32, renderTime time.Duration) {
	r.stats = FrameStats{
		Tracers:    make([]TracerStat, len(r.tracers)),
		RenderTime: renderTime,
	}
	for idx, tr := range r.tracers {
		stats := tr.Stats()
		r.stats.Tracers[idx] = TracerStat{
			Id:           tr.Id(),
			BlockH:       blockAssignment[idx],
			FramePercent: 100 * float32(blockAssignment[idx]) / float32(r.options.FrameH),
			RenderTime:   time.Duration(stats.BlockTime),
		}
	}
}
