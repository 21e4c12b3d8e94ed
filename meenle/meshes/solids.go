package meshes

import (
	"fmt"

	"meenle/meenle/render"

	sdfrender "github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Marching cubes resolution along the longest side of a solid.
const solidCells = 20

// Spool is a thread spool: an axle between two flanges, about 1.6 units across.
func Spool() (render.Mesh, error) {
	axle, err := sdf.Cylinder3D(1.2, 0.3, 0)
	if err != nil {
		return render.Mesh{}, fmt.Errorf("spool axle: %w", err)
	}
	flange, err := sdf.Cylinder3D(0.2, 0.8, 0.05)
	if err != nil {
		return render.Mesh{}, fmt.Errorf("spool flange: %w", err)
	}
	top := sdf.Transform3D(flange, sdf.Translate3d(v3.Vec{Z: 0.5}))
	bottom := sdf.Transform3D(flange, sdf.Translate3d(v3.Vec{Z: -0.5}))
	return tessellate("spool", sdf.Union3D(axle, top, bottom)), nil
}

// Pillar is a square column with a wider base and capital, 2 units tall along Y.
func Pillar() (render.Mesh, error) {
	shaft, err := sdf.Box3D(v3.Vec{X: 0.5, Y: 1.6, Z: 0.5}, 0)
	if err != nil {
		return render.Mesh{}, fmt.Errorf("pillar shaft: %w", err)
	}
	slab, err := sdf.Box3D(v3.Vec{X: 0.9, Y: 0.2, Z: 0.9}, 0.02)
	if err != nil {
		return render.Mesh{}, fmt.Errorf("pillar slab: %w", err)
	}
	capital := sdf.Transform3D(slab, sdf.Translate3d(v3.Vec{Y: 0.9}))
	base := sdf.Transform3D(slab, sdf.Translate3d(v3.Vec{Y: -0.9}))
	return tessellate("pillar", sdf.Union3D(shaft, capital, base)), nil
}

// tessellate runs marching cubes over s and drops zero-area triangles.
func tessellate(name string, s sdf.SDF3) render.Mesh {
	tris := sdfrender.ToTriangles(s, sdfrender.NewMarchingCubesUniform(solidCells))
	m := render.Mesh{Name: name, Tris: make([]render.Triangle, 0, len(tris))}
	for _, tri := range tris {
		var t render.Triangle
		for j := 0; j < 3; j++ {
			v := tri[j]
			t.V[j] = render.V3(v.X, v.Y, v.Z)
		}
		if degenerate(t) {
			continue
		}
		m.Tris = append(m.Tris, t)
	}
	return m
}

func degenerate(t render.Triangle) bool {
	a, b, c := t.V[0], t.V[1], t.V[2]
	ux, uy, uz := b.X-a.X, b.Y-a.Y, b.Z-a.Z
	vx, vy, vz := c.X-a.X, c.Y-a.Y, c.Z-a.Z
	cx := uy*vz - uz*vy
	cy := uz*vx - ux*vz
	cz := ux*vy - uy*vx
	return cx*cx+cy*cy+cz*cz < 1e-18
}
