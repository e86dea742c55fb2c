// Package render draws the kit scene into a tcell screen.
//
// Each terminal cell shows two vertically stacked surface pixels through the upper
// half-block glyph. Pixels are ray cast from the camera against the scene meshes and shaded
// with the scene's ambient and point lights, including point-light shadows.
package render
