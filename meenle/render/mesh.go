package render

import "github.com/jinzhu/copier"

// Triangle is three vertices. The drawn edges are v0-v1, v1-v2, v2-v0.
type Triangle struct {
	V [3]Vec3
}

func Tri(a, b, c Vec3) Triangle { return Triangle{V: [3]Vec3{a, b, c}} }

// Mesh is an ordered triangle list.
//
// Vertices are not shared between triangles: every transform visits every vertex of
// every triangle, so coincident corners stay coincident.
type Mesh struct {
	Name string
	Tris []Triangle
}

// triangleBytes is the storage cost of one Triangle, used for heap accounting.
const triangleBytes = 3 * 3 * 8

// SizeBytes reports the vertex storage held by the mesh.
func (m Mesh) SizeBytes() int { return len(m.Tris) * triangleBytes }

// VertexRefs returns the number of vertex references (3 per triangle).
func (m Mesh) VertexRefs() int { return len(m.Tris) * 3 }

// Transform replaces every vertex v with mat·v.
func (m *Mesh) Transform(mat Mat3) {
	for i := range m.Tris {
		for j := range m.Tris[i].V {
			m.Tris[i].V[j] = mat.MulVec(m.Tris[i].V[j])
		}
	}
}

// Scale scales every vertex by s about the origin.
func (m *Mesh) Scale(s float64) { m.Transform(Scaled(s)) }

// Rotate rotates every vertex by angle radians about axis.
func (m *Mesh) Rotate(axis Axis, angle float64) { m.Transform(Rotation(angle, axis)) }

// RotateSinCos is Rotate with a caller-provided trig primitive.
func (m *Mesh) RotateSinCos(sc SinCos, axis Axis, angle float64) {
	m.Transform(RotationSinCos(sc, angle, axis))
}

// Clone returns a deep copy that shares no storage with m.
func (m Mesh) Clone() Mesh {
	var out Mesh
	if err := copier.CopyWithOption(&out, &m, copier.Option{DeepCopy: true}); err != nil {
		out = Mesh{Name: m.Name, Tris: append([]Triangle(nil), m.Tris...)}
	}
	return out
}

// WithTransform returns a transformed copy of m. m itself is never modified.
func WithTransform(m Mesh, fn func(*Mesh)) Mesh {
	out := m.Clone()
	if fn != nil {
		fn(&out)
	}
	return out
}

// Cube builds an axis-aligned box between two opposing corners.
//
// Faces are emitted south, east, north, west, top, bottom with two triangles each.
func Cube(a, b Vec3) Mesh {
	v := func(x, y, z float64) Vec3 { return Vec3{X: x, Y: y, Z: z} }
	return Mesh{
		Name: "cube",
		Tris: []Triangle{
			// south
			Tri(v(a.X, a.Y, a.Z), v(a.X, b.Y, a.Z), v(b.X, b.Y, a.Z)),
			Tri(v(a.X, a.Y, a.Z), v(b.X, b.Y, a.Z), v(b.X, a.Y, a.Z)),
			// east
			Tri(v(b.X, a.Y, a.Z), v(b.X, b.Y, a.Z), v(b.X, b.Y, b.Z)),
			Tri(v(b.X, a.Y, a.Z), v(b.X, b.Y, b.Z), v(b.X, a.Y, b.Z)),
			// north
			Tri(v(b.X, a.Y, b.Z), v(b.X, b.Y, b.Z), v(a.X, b.Y, b.Z)),
			Tri(v(b.X, a.Y, b.Z), v(a.X, b.Y, b.Z), v(a.X, a.Y, b.Z)),
			// west
			Tri(v(a.X, a.Y, b.Z), v(a.X, b.Y, b.Z), v(a.X, b.Y, a.Z)),
			Tri(v(a.X, a.Y, b.Z), v(a.X, b.Y, a.Z), v(a.X, a.Y, a.Z)),
			// top
			Tri(v(a.X, b.Y, a.Z), v(a.X, b.Y, b.Z), v(b.X, b.Y, b.Z)),
			Tri(v(a.X, b.Y, a.Z), v(b.X, b.Y, b.Z), v(b.X, b.Y, a.Z)),
			// bottom
			Tri(v(b.X, a.Y, b.Z), v(a.X, a.Y, b.Z), v(a.X, a.Y, a.Z)),
			Tri(v(b.X, a.Y, b.Z), v(a.X, a.Y, a.Z), v(b.X, a.Y, a.Z)),
		},
	}
}
