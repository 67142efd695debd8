package picking

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestNewCamera(t *testing.T) {
	cam := NewCamera(800, 600)

	if cam == nil {
		t.Fatal("NewCamera returned nil")
	}

	if math.Abs(float64(cam.AspectRatio)-800.0/600.0) > 1e-5 {
		t.Errorf("Expected aspect 4:3, got %f", cam.AspectRatio)
	}

	if !cam.Front.ApproxEqualThreshold(mgl32.Vec3{0, 0, -1}, 1e-5) {
		t.Errorf("Expected front (0,0,-1), got %v", cam.Front)
	}
}

func TestCameraSetTarget(t *testing.T) {
	cam := NewCamera(800, 600)
	cam.Position = mgl32.Vec3{0, 5, -10}

	cam.SetTarget(mgl32.Vec3{0, 0, 0})

	expected := mgl32.Vec3{0, -5, 10}.Normalize()
	if !cam.Front.ApproxEqualThreshold(expected, 1e-4) {
		t.Errorf("Expected front %v, got %v", expected, cam.Front)
	}

	frontLen := cam.Front.Len()
	if math.Abs(float64(frontLen)-1.0) > 0.01 {
		t.Errorf("Front vector should be normalized, length=%f", frontLen)
	}
}

func TestCameraSetTargetStraightDown(t *testing.T) {
	cam := NewCamera(800, 600)
	cam.Position = mgl32.Vec3{0, 10, 0}

	cam.SetTarget(mgl32.Vec3{0, 0, 0})

	if !cam.Front.ApproxEqualThreshold(mgl32.Vec3{0, -1, 0}, 1e-5) {
		t.Errorf("Expected front (0,-1,0), got %v", cam.Front)
	}
	if !cam.Right.ApproxEqualThreshold(mgl32.Vec3{1, 0, 0}, 1e-5) {
		t.Errorf("Right should be kept when looking straight down, got %v", cam.Right)
	}
	if math.IsNaN(float64(cam.Up.Len())) || math.Abs(float64(cam.Up.Len())-1) > 1e-4 {
		t.Errorf("Up should stay a unit vector, got %v", cam.Up)
	}
}

func TestCameraGetProjectionMatrix(t *testing.T) {
	cam := NewCamera(800, 600)

	if cam.Projection.At(3, 3) != 0.0 {
		t.Error("Perspective projection should have w=0 at (3,3)")
	}
}

func TestCameraSetAspectRatioZeroHeight(t *testing.T) {
	cam := NewCamera(800, 600)

	cam.SetAspectRatio(800, 0)

	if cam.AspectRatio != 1 {
		t.Errorf("Expected aspect 1 for a zero height viewport, got %f", cam.AspectRatio)
	}
}

func TestFrustumIntersectsSphere(t *testing.T) {
	cam := NewCamera(800, 600)
	cam.Position = mgl32.Vec3{0, 0, 10}
	frustum := cam.CalculateFrustum()

	if !frustum.IntersectsSphere(mgl32.Vec3{0, 0, 0}, 1) {
		t.Error("Sphere in front of the camera should be inside the frustum")
	}
	if frustum.IntersectsSphere(mgl32.Vec3{0, 0, 20}, 1) {
		t.Error("Sphere behind the camera should be outside the frustum")
	}
}
