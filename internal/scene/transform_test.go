package scene

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestNewTransform(t *testing.T) {
	tr := NewTransform()

	if tr.Position != (mgl32.Vec3{0, 0, 0}) {
		t.Errorf("Expected position (0,0,0), got %v", tr.Position)
	}

	if tr.Scale != (mgl32.Vec3{1, 1, 1}) {
		t.Errorf("Expected scale (1,1,1), got %v", tr.Scale)
	}

	if tr.Rotation != mgl32.QuatIdent() {
		t.Errorf("Expected identity rotation, got %v", tr.Rotation)
	}
}

func TestTransformTranslate(t *testing.T) {
	tr := NewTransform()
	tr.SetPosition(mgl32.Vec3{5, 5, 5})

	tr.Translate(mgl32.Vec3{1, 2, 3})

	expected := mgl32.Vec3{6, 7, 8}
	if tr.Position != expected {
		t.Errorf("Expected position %v, got %v", expected, tr.Position)
	}
}

func TestTransformRotate(t *testing.T) {
	tr := NewTransform()

	tr.Rotate(mgl32.Vec3{0, 1, 0}, float32(math.Pi/2))

	// Forward (0,0,-1) turned 90 degrees around Y points down -X.
	forward := tr.Forward()
	if !forward.ApproxEqualThreshold(mgl32.Vec3{-1, 0, 0}, 1e-5) {
		t.Errorf("Expected forward (-1,0,0), got %v", forward)
	}
}

func TestTransformMatrix(t *testing.T) {
	tr := NewTransform()
	tr.SetPosition(mgl32.Vec3{1, 2, 3})
	tr.SetScale(mgl32.Vec3{2, 2, 2})

	p := mgl32.TransformCoordinate(mgl32.Vec3{1, 0, 0}, tr.Matrix())

	if !p.ApproxEqualThreshold(mgl32.Vec3{3, 2, 3}, 1e-5) {
		t.Errorf("Expected (3,2,3), got %v", p)
	}
}
