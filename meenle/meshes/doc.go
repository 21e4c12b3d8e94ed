// Package meshes supplies the models the demo can show: procedural primitives, solids
// tessellated from signed distance fields, and a catalog that poses each one for the
// 500×500 frame.
package meshes
