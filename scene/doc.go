// Package scene is the boundary between the drawing model and renderers.
//
// A Scene is the flat, immutable result of flattening a form or an element
// layout: an ordered list of Primitives, each carrying its geometry in local
// coordinates, the transform into scene space, the resolved paint and an
// optional clip rectangle. Nothing in a Scene refers back to the trees it
// was built from.
//
// Renderers implement Sink and consume a scene with Playback:
//
//	rec := scene.NewRecorder()
//	if err := s.Playback(rec); err != nil {
//	    return err
//	}
//
// Sinks can be registered by name, following the database/sql driver
// pattern, so applications pick a renderer without importing it directly:
//
//	import _ "example.com/collage-svg" // registers "svg"
//
//	sink, err := scene.NewSink("svg")
//
// Renderers built on golang.org/x/image can use Primitive.Aff3 to get the
// transform in the layout x/image expects.
package scene
