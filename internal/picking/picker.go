package picking

import (
	"Viewer3D/internal/scene"

	"github.com/go-gl/mathgl/mgl32"
)

// Hit is the result of a successful pick.
type Hit struct {
	Mesh     *scene.Mesh
	Distance float32
	Point    mgl32.Vec3
}

// Pick returns the nearest pickable mesh hit by ray. Meshes outside the
// camera frustum are skipped; a nil camera disables the frustum test.
func Pick(camera *Camera, meshes []*scene.Mesh, ray Ray) (Hit, bool) {
	var frustum *Frustum
	if camera != nil {
		f := camera.CalculateFrustum()
		frustum = &f
	}

	var best Hit
	found := false
	for _, m := range meshes {
		if m == nil || !m.Pickable {
			continue
		}
		if frustum != nil {
			center, radius := m.BoundingSphere()
			if !frustum.IntersectsSphere(center, radius) {
				continue
			}
		}
		ok, dist, point := intersectMesh(ray, m)
		if !ok {
			continue
		}
		if !found || dist < best.Distance {
			best = Hit{Mesh: m, Distance: dist, Point: point}
			found = true
		}
	}
	return best, found
}

func intersectMesh(ray Ray, m *scene.Mesh) (bool, float32, mgl32.Vec3) {
	if m.Kind == scene.KindGround {
		c := m.Corners()
		if ok, d, p := RayIntersectTriangle(ray, c[0], c[1], c[2]); ok {
			return ok, d, p
		}
		return RayIntersectTriangle(ray, c[0], c[2], c[3])
	}
	center, radius := m.BoundingSphere()
	return RayIntersectSphere(ray, center, radius)
}
