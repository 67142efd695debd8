package scene

import "github.com/go-gl/mathgl/mgl32"

// CreateGround builds a flat plane on the XZ axes. Grounds are not pickable:
// clicking them counts as clicking empty space.
func CreateGround(name string, width, depth float32) *Mesh {
	m := newMesh(name, KindGround)
	m.Width = width
	m.Depth = depth
	m.Pickable = false
	m.Material.DiffuseColor = Gray()
	m.Material.SpecularColor = Black()
	return m
}

// CreateSphere builds a sphere. Segments is the tessellation hint for the renderer.
func CreateSphere(name string, segments int, diameter float32) *Mesh {
	m := newMesh(name, KindSphere)
	m.Segments = segments
	m.Radius = diameter / 2
	m.Material.DiffuseColor = mgl32.Vec3{0.4, 0.4, 0.4}
	m.Material.SpecularColor = mgl32.Vec3{0.4, 0.4, 0.4}
	m.Material.EmissiveColor = Black()
	return m
}

// CreateBox builds a cube of the given edge size.
func CreateBox(name string, size float32) *Mesh {
	m := newMesh(name, KindBox)
	half := size / 2
	m.Radius = mgl32.Vec3{half, half, half}.Len()
	return m
}
