package scene

import (
	"errors"
	"fmt"
	"iter"

	"github.com/gogpu/collage"
)

// Scene is an immutable, ordered sequence of primitives in back-to-front
// paint order. Renderers may batch consecutive primitives with identical
// styles but must not reorder them.
type Scene struct {
	prims []Primitive
}

// New returns a scene holding copies of prims.
func New(prims ...Primitive) *Scene {
	b := NewBuilder(len(prims))
	for _, p := range prims {
		b.Add(p)
	}
	return b.Scene()
}

// Len returns the number of primitives.
func (s *Scene) Len() int {
	if s == nil {
		return 0
	}
	return len(s.prims)
}

// At returns a copy of the i-th primitive.
func (s *Scene) At(i int) Primitive {
	return s.prims[i].clone()
}

// All iterates over the primitives in paint order.
func (s *Scene) All() iter.Seq2[int, Primitive] {
	return func(yield func(int, Primitive) bool) {
		if s == nil {
			return
		}
		for i, p := range s.prims {
			if !yield(i, p.clone()) {
				return
			}
		}
	}
}

// Primitives returns a copy of all primitives.
func (s *Scene) Primitives() []Primitive {
	out := make([]Primitive, 0, s.Len())
	for _, p := range s.All() {
		out = append(out, p)
	}
	return out
}

// Bounds returns the union of all primitive bounds.
func (s *Scene) Bounds() collage.Rect {
	r := collage.EmptyRect()
	if s == nil {
		return r
	}
	for _, p := range s.prims {
		r = r.Union(p.Bounds())
	}
	return r
}

// Playback replays the scene into sink: Begin with the scene bounds, one
// Draw per primitive in order, then End. A Draw error stops the replay;
// End is still called so the sink can release its resources.
func (s *Scene) Playback(sink Sink) error {
	if err := sink.Begin(s.Bounds()); err != nil {
		return fmt.Errorf("scene: begin: %w", err)
	}
	var drawErr error
	for i, p := range s.All() {
		if err := sink.Draw(p); err != nil {
			drawErr = fmt.Errorf("scene: draw primitive %d: %w", i, err)
			break
		}
	}
	if err := sink.End(); err != nil {
		return errors.Join(drawErr, fmt.Errorf("scene: end: %w", err))
	}
	return drawErr
}

// Builder accumulates primitives into a Scene.
// A Builder is not safe for concurrent use.
type Builder struct {
	prims []Primitive
}

// NewBuilder returns a builder with room for capacity primitives.
func NewBuilder(capacity int) *Builder {
	return &Builder{prims: make([]Primitive, 0, max(capacity, 0))}
}

// Add appends a copy of p.
func (b *Builder) Add(p Primitive) {
	b.prims = append(b.prims, p.clone())
}

// AddScene appends every primitive of s.
func (b *Builder) AddScene(s *Scene) {
	if s == nil {
		return
	}
	// Scene primitives are never mutated; share their backing data.
	b.prims = append(b.prims, s.prims...)
}

// Len returns the number of primitives added so far.
func (b *Builder) Len() int { return len(b.prims) }

// Scene returns the accumulated scene. The builder is reset and may be
// reused.
func (b *Builder) Scene() *Scene {
	s := &Scene{prims: b.prims}
	b.prims = nil
	return s
}
