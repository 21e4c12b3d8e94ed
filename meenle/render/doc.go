// Package render is a minimal, deterministic software wireframe renderer.
//
// Pipeline (fixed):
//
//	Mesh → Scale/Rotate (clone) → Clear from background → Bresenham edges → Frame output.
//
// Projection is orthographic: vertex X/Y are used directly as centered screen coordinates
// and Z is ignored. There is no depth test; triangles drawn later overdraw earlier ones.
//
// The frame buffer is an owned object rather than process state. Callers render into it
// and then read it (Pix, CopyTo) once the render call has returned; nothing here is safe
// for concurrent use.
package render
