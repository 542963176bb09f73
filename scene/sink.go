package scene

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/gogpu/collage"
)

// Sink consumes a scene. Renderers, exporters and test recorders
// implement it.
//
// # Implementation Contract
//
// Scene.Playback calls Begin once, Draw once per primitive in paint order,
// then End. A sink must draw primitives in the order received and must not
// keep references to primitive data after Draw returns unless it copies it.
type Sink interface {
	// Begin starts a frame covering bounds, the union of all primitive
	// bounds in scene space.
	Begin(bounds collage.Rect) error

	// Draw consumes one primitive.
	Draw(p Primitive) error

	// End finishes the frame.
	End() error
}

// SinkFactory creates a new sink instance.
// Factories are registered via Register() and called by NewSink().
type SinkFactory func() Sink

// ErrUnknownSink is returned by NewSink for names nobody registered.
var ErrUnknownSink = errors.New("scene: unknown sink")

var (
	registryMu sync.RWMutex
	sinks      = make(map[string]SinkFactory)
)

// Register registers a sink factory with the given name.
// This function is typically called from init() in renderer packages,
// following the database/sql driver pattern:
//
//	func init() {
//	    scene.Register("svg", func() scene.Sink {
//	        return NewSVGSink()
//	    })
//	}
//
// Register panics if factory is nil or if name is already registered.
func Register(name string, factory SinkFactory) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if factory == nil {
		panic("scene: Register factory is nil")
	}
	if _, dup := sinks[name]; dup {
		panic("scene: Register called twice for " + name)
	}
	sinks[name] = factory
}

// Unregister removes a sink from the registry.
// If the sink is not registered, this is a no-op.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(sinks, name)
}

// NewSink creates a new sink instance by name.
func NewSink(name string) (Sink, error) {
	registryMu.RLock()
	factory, ok := sinks[name]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w %q (forgotten import?)", ErrUnknownSink, name)
	}
	return factory(), nil
}

// MustSink creates a new sink instance by name, panicking on error.
func MustSink(name string) Sink {
	s, err := NewSink(name)
	if err != nil {
		panic(err)
	}
	return s
}

// Sinks returns the registered sink names in alphabetical order.
func Sinks() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(sinks))
	for name := range sinks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsRegistered checks if a sink with the given name is registered.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := sinks[name]
	return ok
}
