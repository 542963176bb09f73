package scene

import (
	"errors"

	"github.com/gogpu/collage"
)

// RecorderName is the registry name of the Recorder sink.
const RecorderName = "recorder"

func init() {
	Register(RecorderName, func() Sink { return NewRecorder() })
}

// Errors returned by Recorder when its calls arrive out of order.
var (
	ErrNotBegun     = errors.New("scene: draw outside Begin/End")
	ErrAlreadyBegun = errors.New("scene: Begin called twice")
)

// Recorder is a Sink that keeps every primitive it receives. It is useful
// for tests and for re-playing a frame into another sink later.
//
// The Recorder is not safe for concurrent use.
type Recorder struct {
	builder *Builder
	bounds  collage.Rect
	frames  int
	active  bool
	last    *Scene
}

// NewRecorder returns an idle Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Begin implements Sink.
func (r *Recorder) Begin(bounds collage.Rect) error {
	if r.active {
		return ErrAlreadyBegun
	}
	r.builder = NewBuilder(0)
	r.bounds = bounds
	r.active = true
	return nil
}

// Draw implements Sink.
func (r *Recorder) Draw(p Primitive) error {
	if !r.active {
		return ErrNotBegun
	}
	r.builder.Add(p)
	return nil
}

// End implements Sink.
func (r *Recorder) End() error {
	if !r.active {
		return ErrNotBegun
	}
	r.last = r.builder.Scene()
	r.builder = nil
	r.active = false
	r.frames++
	return nil
}

// Scene returns the primitives of the last completed frame.
func (r *Recorder) Scene() *Scene {
	if r.last == nil {
		return New()
	}
	return r.last
}

// Bounds returns the bounds passed to the last Begin.
func (r *Recorder) Bounds() collage.Rect { return r.bounds }

// Frames returns the number of completed frames.
func (r *Recorder) Frames() int { return r.frames }
