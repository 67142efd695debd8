package gizmo

import (
	"Viewer3D/internal/logger"
	"Viewer3D/internal/scene"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

// Handles selects which handle sets of the gizmo are shown.
type Handles struct {
	Position bool
	Rotation bool
	Scale    bool
}

// Any reports whether at least one handle set is enabled.
func (h Handles) Any() bool {
	return h.Position || h.Rotation || h.Scale
}

// Manager attaches a single gizmo to at most one mesh and tracks which handle
// sets are enabled on it.
type Manager struct {
	attached          *scene.Mesh
	attachOrientation mgl32.Quat
	handles           Handles
	uniformScaling    bool
	rotationSync      bool

	// Sensitivity scales position drags.
	Sensitivity float32

	log *zap.Logger
}

func NewManager(log *zap.Logger) *Manager {
	return &Manager{
		attachOrientation: mgl32.QuatIdent(),
		uniformScaling:    true,
		Sensitivity:       1,
		log:               logger.OrNop(log),
	}
}

// Attach binds the gizmo to m and captures its current rotation as the handle
// orientation. Attaching nil detaches.
func (g *Manager) Attach(m *scene.Mesh) {
	if m == nil {
		g.Detach()
		return
	}
	g.attached = m
	g.attachOrientation = m.Transform.Rotation
	g.log.Debug("Gizmo attached", zap.String("mesh", m.Name))
}

// Detach unbinds the gizmo. Handle flags are left as they are.
func (g *Manager) Detach() {
	if g.attached != nil {
		g.log.Debug("Gizmo detached", zap.String("mesh", g.attached.Name))
	}
	g.attached = nil
	g.attachOrientation = mgl32.QuatIdent()
}

func (g *Manager) Attached() *scene.Mesh {
	return g.attached
}

func (g *Manager) SetHandles(h Handles) {
	g.handles = h
}

func (g *Manager) Handles() Handles {
	return g.handles
}

func (g *Manager) SetUniformScaling(on bool) {
	g.uniformScaling = on
}

func (g *Manager) UniformScaling() bool {
	return g.uniformScaling
}

// SetRotationSync controls whether the rotation handles follow the attached
// mesh's live rotation instead of the rotation it had when attached.
func (g *Manager) SetRotationSync(on bool) {
	g.rotationSync = on
}

func (g *Manager) RotationSync() bool {
	return g.rotationSync
}

// HandleOrientation is the rotation the rotation handles are drawn with.
func (g *Manager) HandleOrientation() mgl32.Quat {
	if g.attached != nil && g.rotationSync {
		return g.attached.Transform.Rotation
	}
	return g.attachOrientation
}

// Visible reports whether any handle is on screen.
func (g *Manager) Visible() bool {
	return g.attached != nil && g.handles.Any()
}
