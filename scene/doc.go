// Package scene is a small retained 3D scene graph: cylinder meshes with standard materials,
// ambient and point lights, a perspective camera and a ray caster.
//
// Everything is float64 and rigid: meshes carry a position and an XYZ Euler rotation but no
// scale, so distances along a ray are the same in world and local space.
package scene
