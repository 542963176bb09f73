package scene

import (
	"errors"
	"slices"
	"testing"

	"github.com/gogpu/collage"
)

type nopSink struct{}

func (nopSink) Begin(collage.Rect) error { return nil }
func (nopSink) Draw(Primitive) error     { return nil }
func (nopSink) End() error               { return nil }

// withRegistry isolates a test from the global registry and restores it
// afterwards.
func withRegistry(t *testing.T) {
	t.Helper()

	registryMu.Lock()
	saved := sinks
	sinks = make(map[string]SinkFactory)
	registryMu.Unlock()

	t.Cleanup(func() {
		registryMu.Lock()
		sinks = saved
		registryMu.Unlock()
	})
}

func TestRecorderIsRegistered(t *testing.T) {
	if !IsRegistered(RecorderName) {
		t.Fatal("recorder sink is not registered")
	}
	s, err := NewSink(RecorderName)
	if err != nil {
		t.Fatalf("NewSink(recorder) error = %v", err)
	}
	if _, ok := s.(*Recorder); !ok {
		t.Errorf("NewSink(recorder) returned %T, want *Recorder", s)
	}
}

func TestRegisterAndNewSink(t *testing.T) {
	withRegistry(t)

	Register("nop", func() Sink { return nopSink{} })
	Register("b", func() Sink { return NewRecorder() })

	if got := Sinks(); !slices.Equal(got, []string{"b", "nop"}) {
		t.Errorf("Sinks() = %v, want [b nop]", got)
	}
	if _, err := NewSink("nop"); err != nil {
		t.Errorf("NewSink(nop) error = %v", err)
	}

	Unregister("nop")
	if IsRegistered("nop") {
		t.Error("nop still registered after Unregister")
	}
	Unregister("nop") // no-op
}

func TestNewSinkUnknown(t *testing.T) {
	withRegistry(t)

	if _, err := NewSink("missing"); !errors.Is(err, ErrUnknownSink) {
		t.Errorf("NewSink(missing) error = %v, want ErrUnknownSink", err)
	}

	defer func() {
		if recover() == nil {
			t.Error("MustSink(missing) did not panic")
		}
	}()
	MustSink("missing")
}

func TestRegisterPanics(t *testing.T) {
	withRegistry(t)

	tests := []struct {
		name string
		fn   func()
	}{
		{"nil factory", func() { Register("x", nil) }},
		{"duplicate", func() {
			Register("dup", func() Sink { return nopSink{} })
			Register("dup", func() Sink { return nopSink{} })
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected panic")
				}
			}()
			tt.fn()
		})
	}
}
