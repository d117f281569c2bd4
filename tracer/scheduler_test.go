package tracer

import (
	"testing"

	"github.com/achilleasa/rigel/scene"
)

func TestNaiveScheduler(t *testing.T) {
	type spec struct {
		speed1   float32
		speed2   float32
		frameH   uint32
		expRows1 uint32
		expRows2 uint32
	}
	specs := []spec{
		{1, 2, 10, 4, 6},
		{2, 1, 10, 7, 3},
		{1, 1000, 10, 1, 9},
		{1, 1, 11, 6, 5},
	}

	for index, s := range specs {
		tr1 := &mockTracer{id: "mock-1", speed: s.speed1}
		tr2 := &mockTracer{id: "mock-2", speed: s.speed2}
		tracers := []Tracer{tr1, tr2}

		sch := NaiveScheduler()
		blockAssignment := sch.Schedule(tracers, s.frameH)

		if blockAssignment[0] != s.expRows1 {
			t.Fatalf("[spec %d] expected tracer 0 to be assigned %d rows; got %d", index, s.expRows1, blockAssignment[0])
		}

		if blockAssignment[1] != s.expRows2 {
			t.Fatalf("[spec %d] expected tracer 1 to be assigned %d rows; got %d", index, s.expRows2, blockAssignment[1])
		}

		if blockAssignment[0]+blockAssignment[1] != s.frameH {
			t.Fatalf("[spec %d] expected assigned rows to cover the frame; got %d", index, blockAssignment[0]+blockAssignment[1])
		}
	}
}

type mockTracer struct {
	id    string
	speed float32
	stats Stats
}

func (t *mockTracer) Id() string                           { return t.id }
func (t *mockTracer) SpeedEstimate() float32               { return t.speed }
func (t *mockTracer) Setup(*scene.Camera, []float32) error { return nil }
func (t *mockTracer) Enqueue(req BlockRequest)             { req.DoneChan <- req.BlockH }
func (t *mockTracer) Stats() *Stats                        { return &t.stats }
func (t *mockTracer) Close()                               {}
