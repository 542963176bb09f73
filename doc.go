// Package collage provides the value types of a purely functional 2D
// graphics and layout library: points, rectangles, affine matrices,
// colors, gradients, line and fill styles, and styled text.
//
// # Overview
//
// collage describes pictures as immutable data. Vector drawings are built
// from forms (package form), arranged widgets from elements (package
// element), and both are flattened into a linear list of positioned,
// styled primitives (package flatten) that any rasterizer can replay
// through the scene.Sink interface (package scene).
//
// # Quick Start
//
//	import (
//		"github.com/gogpu/collage"
//		"github.com/gogpu/collage/element"
//		"github.com/gogpu/collage/flatten"
//		"github.com/gogpu/collage/form"
//	)
//
//	star := form.FilledColor(collage.Orange, form.Ngon(5, 40))
//	pic := element.Must(element.Collage(200, 200, form.Rotate(collage.Degrees(18), star)))
//	page := element.Above(element.Centered(collage.FromString("Stars").Height(24)), pic)
//
//	s, err := flatten.Element(page, 200, 240)
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, p := range s.All() {
//		fmt.Println(p.Geometry, p.Transform)
//	}
//
// # Packages
//
//   - collage: geometry, transforms, colors, styles, text and the Measurer interface
//   - form: the form algebra (paths, shapes, text, images, groups, transforms)
//   - element: the layout engine (spacers, collages, text, images, containers, flows)
//   - flatten: turns forms and laid-out elements into scenes
//   - scene: primitives, scenes, and the sink registry
//   - text: font-backed text measurement with the Go fonts built in
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left of each element box
//   - X increases right
//   - Y increases down
//   - Angles in radians; positive angles turn +x toward +y (clockwise on screen)
//
// Inside a collage element the origin of its forms is the center of the
// collage.
//
// # Errors
//
// Invalid input is rejected at construction with errors wrapping
// [ErrInvalidLayoutSpec], [ErrInvalidGradientStops] or
// [ErrSingularTransform]. Degenerate visual input, such as a shape with
// fewer than three distinct points, is accepted and draws nothing.
package collage

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0-alpha.1"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0

	// VersionPrerelease is the prerelease identifier
	VersionPrerelease = "alpha.1"
)
