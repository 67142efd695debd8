package selection

import (
	"Viewer3D/internal/gizmo"
	"Viewer3D/internal/logger"
	"Viewer3D/internal/scene"

	"go.uber.org/zap"
)

// Gizmo is what the controller needs from a gizmo manager.
type Gizmo interface {
	Attach(m *scene.Mesh)
	Detach()
	SetHandles(h gizmo.Handles)
	SetUniformScaling(on bool)
	SetRotationSync(on bool)
}

type Options struct {
	// DefaultTool is the tool active at session start.
	DefaultTool Tool
	// Fallback, when set, becomes the picked mesh after a reset. The
	// selection still starts empty.
	Fallback *scene.Mesh
	// RotationSync makes rotation handles follow the attached mesh rotation.
	RotationSync bool
	Logger       *zap.Logger
}

// State is a read-only view of the controller for the UI layer.
type State struct {
	Tool   Tool
	Picked string
}

// Controller owns the picked mesh and the active tool and is the only writer
// of gizmo attachment. It is not safe for concurrent use; all calls are
// expected on the event loop thread.
type Controller struct {
	gizmo        Gizmo
	picked       *scene.Mesh
	tool         Tool
	fallback     *scene.Mesh
	rotationSync bool
	log          *zap.Logger
}

func NewController(g Gizmo, opts Options) *Controller {
	c := &Controller{
		gizmo:        g,
		tool:         opts.DefaultTool,
		fallback:     opts.Fallback,
		rotationSync: opts.RotationSync,
		log:          logger.OrNop(opts.Logger),
	}
	if c.tool.String() == "unknown" {
		c.tool = ToolCursor
	}
	c.disableGizmo()
	return c
}

func (c *Controller) Tool() Tool {
	return c.tool
}

func (c *Controller) Picked() *scene.Mesh {
	return c.picked
}

func (c *Controller) State() State {
	s := State{Tool: c.tool}
	if c.picked != nil {
		s.Picked = c.picked.Name
	}
	return s
}

// OnPick selects m. Picking the mesh that is already selected does nothing.
func (c *Controller) OnPick(m *scene.Mesh) {
	if m == nil {
		c.log.Warn("Ignoring pick without a mesh")
		return
	}
	if m == c.picked {
		return
	}
	if c.picked != nil {
		c.picked.SetHighlighted(false)
	}
	c.picked = m
	m.SetHighlighted(true)
	c.log.Info("Mesh picked", zap.String("mesh", m.Name), zap.Stringer("tool", c.tool))
	c.applyGizmo()
}

// OnReset drops m from the selection if it is the picked mesh. The gizmo is
// switched off entirely; if a fallback mesh is configured it is then picked
// again through the normal pick path.
func (c *Controller) OnReset(m *scene.Mesh) {
	if m == nil || m != c.picked {
		return
	}
	m.SetHighlighted(false)
	c.picked = nil
	c.disableGizmo()
	c.log.Info("Selection cleared", zap.String("mesh", m.Name))

	if c.fallback != nil && c.fallback != m {
		c.OnPick(c.fallback)
	}
}

// Deselect resets whatever mesh is currently picked.
func (c *Controller) Deselect() {
	c.OnReset(c.picked)
}

// Release makes the controller drop every reference to m before it leaves
// the scene: it is reset if picked and stops being the fallback.
func (c *Controller) Release(m *scene.Mesh) {
	if m == nil {
		return
	}
	if c.fallback == m {
		c.fallback = nil
	}
	c.OnReset(m)
}

// SetTool switches the active tool and reconfigures the gizmo on the picked mesh.
func (c *Controller) SetTool(t Tool) {
	if t.String() == "unknown" {
		c.log.Warn("Ignoring unknown tool", zap.Int("tool", int(t)))
		return
	}
	c.tool = t
	c.log.Info("Tool selected", zap.Stringer("tool", t))
	if c.picked != nil {
		c.applyGizmo()
	}
}

// SetToolName is SetTool for a tool name. Unknown names keep the current tool
// and report false.
func (c *Controller) SetToolName(name string) bool {
	t, ok := ParseTool(name)
	if !ok {
		c.log.Warn("Ignoring unknown tool", zap.String("tool", name))
		return false
	}
	c.SetTool(t)
	return true
}

// Handle dispatches an event to the matching operation.
func (c *Controller) Handle(ev Event) {
	switch e := ev.(type) {
	case PickEvent:
		switch e.Trigger {
		case TriggerLeftPick:
			c.OnPick(e.Mesh)
		case TriggerPickOut:
			c.OnReset(e.Mesh)
		default:
			c.log.Debug("Ignoring pick trigger", zap.Stringer("trigger", e.Trigger))
		}
	case ResetEvent:
		c.OnReset(e.Mesh)
	case DeselectEvent:
		c.Deselect()
	case ToolEvent:
		c.SetToolName(e.Name)
	default:
		c.log.Warn("Ignoring unknown event", zap.Any("event", ev))
	}
}

func (c *Controller) applyGizmo() {
	c.gizmo.Attach(c.picked)
	c.gizmo.SetHandles(c.tool.Handles())
	c.gizmo.SetUniformScaling(true)
	c.gizmo.SetRotationSync(c.rotationSync)
}

func (c *Controller) disableGizmo() {
	c.gizmo.SetHandles(gizmo.Handles{})
	c.gizmo.Detach()
}
