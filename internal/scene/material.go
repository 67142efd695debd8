package scene

import "github.com/go-gl/mathgl/mgl32"

// Material is the standard material of a mesh. Colours are linear RGB in [0, 1].
type Material struct {
	Name          string
	DiffuseColor  mgl32.Vec3
	SpecularColor mgl32.Vec3
	EmissiveColor mgl32.Vec3
}

func NewMaterial(name string) *Material {
	return &Material{
		Name:          name,
		DiffuseColor:  mgl32.Vec3{1, 1, 1},
		SpecularColor: mgl32.Vec3{1, 1, 1},
		EmissiveColor: Black(),
	}
}

func Gray() mgl32.Vec3 {
	return mgl32.Vec3{0.5, 0.5, 0.5}
}

func Black() mgl32.Vec3 {
	return mgl32.Vec3{0, 0, 0}
}
