package tracer

import "math"

// The BlockScheduler interface is implemented by all block scheduling
// algorithms.
type BlockScheduler interface {
	// Split frame rows into consecutive blocks and assign one block to
	// each tracer in the input list.
	//
	// This function returns the block height assignment for each tracer
	// in the input list.
	Schedule(tracers []Tracer, frameH uint32) []uint32
}

// The naive scheduler distributes rows proportionally to each tracer's speed
// estimate.
type naiveScheduler struct {
}

// Create a new naive scheduler instance.
func NaiveScheduler() BlockScheduler {
	return &naiveScheduler{}
}

// Split frame rows into blocks proportional to each tracer's speed estimate.
// Every tracer is assigned at least one row; rows that do not divide evenly
// are appended to the first tracer's block.
func (sch *naiveScheduler) Schedule(tracers []Tracer, frameH uint32) []uint32 {
	var total float64
	for _, tr := range tracers {
		total += float64(tr.SpeedEstimate())
	}
	scaler := float64(frameH) / total

	blockAssignment := make([]uint32, len(tracers))
	var scheduledRows uint32
	for idx, tr := range tracers {
		blockAssignment[idx] = uint32(math.Max(1.0, math.Floor(float64(tr.SpeedEstimate())*scaler)))
		scheduledRows += blockAssignment[idx]
	}

	blockAssignment[0] += frameH - scheduledRows

	return blockAssignment
}
