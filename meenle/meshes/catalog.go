package meshes

import (
	"fmt"
	"math"

	"meenle/meenle/render"
)

// Entry is one selectable model and the pose it is shown in.
type Entry struct {
	Name  string
	Build func() (render.Mesh, error)
	// Scale is applied first, then a rotation of TiltX about X.
	Scale float64
	TiltX float64
}

// Catalog is an ordered list of models.
type Catalog []Entry

// Default returns the built-in models. Imported shapes are scaled into pixel units and
// flipped upright by a half turn about X; the cube is already in pixel units.
func Default() Catalog {
	return Catalog{
		{Name: "icosphere", Build: func() (render.Mesh, error) { return Icosphere(1), nil }, Scale: 50, TiltX: math.Pi},
		{Name: "cube", Build: func() (render.Mesh, error) {
			return render.Cube(render.V3(-50, -50, -50), render.V3(50, 50, 50)), nil
		}, Scale: 1},
		{Name: "tetrahedron", Build: func() (render.Mesh, error) { return Tetrahedron(), nil }, Scale: 40, TiltX: math.Pi},
		{Name: "spool", Build: Spool, Scale: 60, TiltX: math.Pi / 2},
		{Name: "pillar", Build: Pillar, Scale: 50, TiltX: math.Pi},
	}
}

func (c Catalog) Len() int { return len(c) }

// Names lists the entries in order.
func (c Catalog) Names() []string {
	out := make([]string, len(c))
	for i, e := range c {
		out[i] = e.Name
	}
	return out
}

// Index finds an entry by name.
func (c Catalog) Index(name string) (int, bool) {
	for i, e := range c {
		if e.Name == name {
			return i, true
		}
	}
	return 0, false
}

// Load builds entry i in its pose. An index outside the catalog returns ok == false and
// leaves the caller's current mesh in place.
func (c Catalog) Load(i int) (m render.Mesh, ok bool, err error) {
	if i < 0 || i >= len(c) {
		return render.Mesh{}, false, nil
	}
	e := c[i]
	m, err = e.Build()
	if err != nil {
		return render.Mesh{}, false, fmt.Errorf("build %s: %w", e.Name, err)
	}
	m.Name = e.Name
	if e.Scale != 0 && e.Scale != 1 {
		m.Scale(e.Scale)
	}
	if e.TiltX != 0 {
		m.Rotate(render.AxisX, e.TiltX)
	}
	return m, true, nil
}

// Extent is the largest absolute coordinate over all vertices.
func Extent(m render.Mesh) float64 {
	var ext float64
	for _, t := range m.Tris {
		for _, v := range t.V {
			ext = math.Max(ext, math.Max(math.Abs(v.X), math.Max(math.Abs(v.Y), math.Abs(v.Z))))
		}
	}
	return ext
}

// FitToScreen returns a copy of m scaled so its extent covers proportion of the
// half-width of the frame. An empty or point-sized mesh is returned unscaled.
func FitToScreen(m render.Mesh, proportion float64) render.Mesh {
	ext := Extent(m)
	if ext == 0 {
		return m.Clone()
	}
	k := proportion * (render.Width / 2) / ext
	return render.WithTransform(m, func(c *render.Mesh) { c.Scale(k) })
}
