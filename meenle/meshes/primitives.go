package meshes

import (
	"math"

	"meenle/meenle/render"
)

// Icosphere returns a unit sphere built from an icosahedron whose faces are split into
// four subdivisions times. 0 yields the 20-face icosahedron.
func Icosphere(subdivisions int) render.Mesh {
	t := (1 + math.Sqrt(5)) / 2
	verts := []render.Vec3{
		{X: -1, Y: t}, {X: 1, Y: t}, {X: -1, Y: -t}, {X: 1, Y: -t},
		{Y: -1, Z: t}, {Y: 1, Z: t}, {Y: -1, Z: -t}, {Y: 1, Z: -t},
		{X: t, Z: -1}, {X: t, Z: 1}, {X: -t, Z: -1}, {X: -t, Z: 1},
	}
	faces := [][3]int{
		{0, 11, 5}, {0, 5, 1}, {0, 1, 7}, {0, 7, 10}, {0, 10, 11},
		{1, 5, 9}, {5, 11, 4}, {11, 10, 2}, {10, 7, 6}, {7, 1, 8},
		{3, 9, 4}, {3, 4, 2}, {3, 2, 6}, {3, 6, 8}, {3, 8, 9},
		{4, 9, 5}, {2, 4, 11}, {6, 2, 10}, {8, 6, 7}, {9, 8, 1},
	}

	tris := make([]render.Triangle, 0, len(faces))
	for _, f := range faces {
		tris = append(tris, render.Tri(unit(verts[f[0]]), unit(verts[f[1]]), unit(verts[f[2]])))
	}
	for i := 0; i < subdivisions; i++ {
		next := make([]render.Triangle, 0, len(tris)*4)
		for _, tri := range tris {
			a, b, c := tri.V[0], tri.V[1], tri.V[2]
			ab, bc, ca := unit(mid(a, b)), unit(mid(b, c)), unit(mid(c, a))
			next = append(next,
				render.Tri(a, ab, ca),
				render.Tri(b, bc, ab),
				render.Tri(c, ca, bc),
				render.Tri(ab, bc, ca),
			)
		}
		tris = next
	}
	return render.Mesh{Name: "icosphere", Tris: tris}
}

// Tetrahedron returns a regular tetrahedron inscribed in the cube [-1,1]³.
func Tetrahedron() render.Mesh {
	a := render.V3(1, 1, 1)
	b := render.V3(1, -1, -1)
	c := render.V3(-1, 1, -1)
	d := render.V3(-1, -1, 1)
	return render.Mesh{
		Name: "tetrahedron",
		Tris: []render.Triangle{
			render.Tri(a, b, c),
			render.Tri(a, d, b),
			render.Tri(a, c, d),
			render.Tri(b, d, c),
		},
	}
}

func mid(a, b render.Vec3) render.Vec3 {
	return render.V3((a.X+b.X)/2, (a.Y+b.Y)/2, (a.Z+b.Z)/2)
}

func unit(v render.Vec3) render.Vec3 {
	n := math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
	if n == 0 {
		return v
	}
	return v.Scale(1 / n)
}
