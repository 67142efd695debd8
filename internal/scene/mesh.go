package scene

import (
	"github.com/go-gl/mathgl/mgl32"
)

// MeshKind tells the picker which shape to hit-test.
type MeshKind int

const (
	KindSphere MeshKind = iota
	KindBox
	KindGround
)

func (k MeshKind) String() string {
	switch k {
	case KindSphere:
		return "sphere"
	case KindBox:
		return "box"
	case KindGround:
		return "ground"
	}
	return "unknown"
}

// Mesh is a manipulable entity of the scene.
type Mesh struct {
	Name      string
	Kind      MeshKind
	Transform *Transform
	Material  *Material
	Pickable  bool

	// Local extents. Radius is used by spheres and boxes, Width/Depth by ground planes.
	Radius   float32
	Width    float32
	Depth    float32
	Segments int

	highlighted     bool
	wireframe       bool
	savedEmissive   mgl32.Vec3
	highlightColour mgl32.Vec3
}

func newMesh(name string, kind MeshKind) *Mesh {
	return &Mesh{
		Name:            name,
		Kind:            kind,
		Transform:       NewTransform(),
		Material:        NewMaterial(name),
		Pickable:        true,
		highlightColour: Gray(),
	}
}

// Highlighted reports whether the mesh is currently shown as selected.
func (m *Mesh) Highlighted() bool {
	return m.highlighted
}

// Wireframe reports whether the mesh renders as wireframe.
func (m *Mesh) Wireframe() bool {
	return m.wireframe
}

// SetHighlighted turns the selection cue on or off. While highlighted the mesh
// renders as wireframe with a gray emissive colour; turning it off restores the
// emissive colour it had before.
func (m *Mesh) SetHighlighted(on bool) {
	if m.highlighted == on {
		return
	}
	m.highlighted = on
	m.wireframe = on
	if m.Material == nil {
		return
	}
	if on {
		m.savedEmissive = m.Material.EmissiveColor
		m.Material.EmissiveColor = m.highlightColour
	} else {
		m.Material.EmissiveColor = m.savedEmissive
	}
}

// BoundingSphere returns the world space centre and radius enclosing the mesh.
func (m *Mesh) BoundingSphere() (mgl32.Vec3, float32) {
	s := m.Transform.Scale
	maxScale := s.X()
	if s.Y() > maxScale {
		maxScale = s.Y()
	}
	if s.Z() > maxScale {
		maxScale = s.Z()
	}

	radius := m.Radius
	if m.Kind == KindGround {
		half := mgl32.Vec2{m.Width / 2, m.Depth / 2}
		radius = half.Len()
	}
	return m.Transform.Position, radius * maxScale
}

// Corners returns the four world space corners of a ground plane, counter
// clockwise seen from above. It returns nil for other kinds.
func (m *Mesh) Corners() []mgl32.Vec3 {
	if m.Kind != KindGround {
		return nil
	}
	hw, hd := m.Width/2, m.Depth/2
	local := []mgl32.Vec3{
		{-hw, 0, -hd},
		{-hw, 0, hd},
		{hw, 0, hd},
		{hw, 0, -hd},
	}
	model := m.Transform.Matrix()
	out := make([]mgl32.Vec3, len(local))
	for i, p := range local {
		out[i] = mgl32.TransformCoordinate(p, model)
	}
	return out
}
