package tracer

import (
	"errors"

	"github.com/achilleasa/rigel/scene"
)

var (
	ErrAlreadySetup     = errors.New("tracer: already set up")
	ErrInvalidFrameDims = errors.New("tracer: frame buffer size does not match camera frame dims")
)

// A unit of work that is processed by a tracer.
type BlockRequest struct {
	// Block start row and height.
	BlockY uint32
	BlockH uint32

	// A channel to signal on block completion with the number of completed rows.
	DoneChan chan<- uint32

	// A channel to signal if an error occurs.
	ErrChan chan<- error
}

// Tracer statistics.
type Stats struct {
	// The rendered block height.
	BlockH uint32

	// The time for rendering this block (in nanoseconds).
	BlockTime int64
}

type Tracer interface {
	// Get tracer id.
	Id() string

	// Get the tracer's computation speed estimate relative to its peers.
	SpeedEstimate() float32

	// Attach the tracer to a camera and a shared frame buffer. The buffer
	// stores 3 float32 values per pixel in row-major order and is written
	// to concurrently by all attached tracers; each tracer only touches
	// the rows assigned to it.
	Setup(camera *scene.Camera, frameBuffer []float32) error

	// Enqueue block request.
	Enqueue(BlockRequest)

	// Retrieve last block statistics.
	Stats() *Stats

	// Shutdown and cleanup tracer.
	Close()
}
