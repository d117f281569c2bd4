package tracer

import (
	"time"

	"github.com/achilleasa/rigel/scene"
)

// cpuTracer renders row blocks on a single goroutine using the Whitted
// tracer. A pool of cpuTracers attached to the same frame buffer provides
// fork-join parallelism over frame rows.
type cpuTracer struct {
	id      string
	whitted *Whitted

	camera      *scene.Camera
	frameBuffer []float32

	workChan chan BlockRequest
	stats    Stats
}

// Create a new CPU tracer for the given scene.
func NewCPUTracer(id string, sc *scene.Scene) Tracer {
	return &cpuTracer{
		id:      id,
		whitted: NewWhitted(sc),
	}
}

func (t *cpuTracer) Id() string {
	return t.id
}

// All CPU tracers run the same code on symmetric cores.
func (t *cpuTracer) SpeedEstimate() float32 {
	return 1.0
}

// Attach the tracer to a camera and a shared frame buffer and spin up its
// worker goroutine.
func (t *cpuTracer) Setup(camera *scene.Camera, frameBuffer []float32) error {
	if t.workChan != nil {
		return ErrAlreadySetup
	}
	if uint32(len(frameBuffer)) != camera.FrameW*camera.FrameH*3 {
		return ErrInvalidFrameDims
	}

	t.camera = camera
	t.frameBuffer = frameBuffer
	t.workChan = make(chan BlockRequest)
	go t.run()
	return nil
}

// Enqueue block request.
func (t *cpuTracer) Enqueue(req BlockRequest) {
	t.workChan <- req
}

// Retrieve last block statistics.
func (t *cpuTracer) Stats() *Stats {
	return &t.stats
}

// Shutdown and cleanup tracer.
func (t *cpuTracer) Close() {
	if t.workChan != nil {
		close(t.workChan)
		t.workChan = nil
	}
}

func (t *cpuTracer) run() {
	for req := range t.workChan {
		start := time.Now()
		t.traceBlock(req.BlockY, req.BlockH)
		t.stats.BlockH = req.BlockH
		t.stats.BlockTime = time.Since(start).Nanoseconds()
		req.DoneChan <- req.BlockH
	}
}

// Trace every pixel in rows [blockY, blockY+blockH) and write the resulting
// colors to the tracer's slice of the shared frame buffer.
func (t *cpuTracer) traceBlock(blockY, blockH uint32) {
	orig := t.camera.Origin()
	for y := blockY; y < blockY+blockH; y++ {
		offset := y * t.camera.FrameW * 3
		for x := uint32(0); x < t.camera.FrameW; x++ {
			color := t.whitted.CastRay(orig, t.camera.RayDirection(x, y), 0)
			t.frameBuffer[offset] = color[0]
			t.frameBuffer[offset+1] = color[1]
			t.frameBuffer[offset+2] = color[2]
			offset += 3
		}
	}
}
