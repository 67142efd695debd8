package gizmo

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

var (
	ErrNotAttached    = errors.New("gizmo is not attached to a mesh")
	ErrHandleDisabled = errors.New("no gizmo handle is enabled")
)

// Axis is one of the three manipulation axes.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// ParseAxis accepts "x", "y" or "z".
func ParseAxis(s string) (Axis, error) {
	switch s {
	case "x", "X":
		return AxisX, nil
	case "y", "Y":
		return AxisY, nil
	case "z", "Z":
		return AxisZ, nil
	}
	return 0, fmt.Errorf("invalid axis %q", s)
}

func (a Axis) String() string {
	return [...]string{"x", "y", "z"}[a]
}

func (a Axis) unit() mgl32.Vec3 {
	var v mgl32.Vec3
	v[a] = 1
	return v
}

// Drag applies a drag of amount along axis to the attached mesh using the
// enabled handle set: world units for position (times Sensitivity), radians
// for rotation and a relative factor for scale.
func (g *Manager) Drag(axis Axis, amount float32) error {
	if axis < AxisX || axis > AxisZ {
		return fmt.Errorf("invalid axis %d", axis)
	}
	if g.attached == nil {
		return ErrNotAttached
	}

	tr := g.attached.Transform
	switch {
	case g.handles.Position:
		tr.Translate(axis.unit().Mul(amount * g.Sensitivity))
	case g.handles.Rotation:
		worldAxis := g.HandleOrientation().Rotate(axis.unit())
		tr.RotateWorld(worldAxis, amount)
	case g.handles.Scale:
		factor := 1 + amount
		if factor <= 0 {
			return fmt.Errorf("scale factor %f must be positive", factor)
		}
		if g.uniformScaling {
			tr.SetScale(tr.Scale.Mul(factor))
		} else {
			s := tr.Scale
			s[axis] *= factor
			tr.SetScale(s)
		}
	default:
		return ErrHandleDisabled
	}

	g.log.Debug("Gizmo drag",
		zap.String("mesh", g.attached.Name),
		zap.Stringer("axis", axis),
		zap.Float32("amount", amount))
	return nil
}
